/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package hresult

import (
	"testing"

	"dirpx.dev/resultcode/code"
)

func TestDecompose(t *testing.T) {
	tests := []struct {
		name     string
		in       code.Code
		failure  bool
		facility Facility
		errCode  uint16
	}{
		{"zero", 0, false, FacilityNull, 0},
		{"small win32", 2, false, FacilityNull, 2},
		{"sched success", 267009, false, FacilityITF, 0x1301},
		{"sched error unsigned", 2147750687, true, FacilityITF, 0x131F},
		{"sched error signed", -2147216609, true, FacilityITF, 0x131F},
		{"win32 file not found", 2147942402, true, FacilityWin32, 2},
		{"minus one", -1, true, MaxFacility, 0xFFFF},
		{"wider than 32 bits is masked", 0x1_80070002, true, FacilityWin32, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Decompose(tt.in)
			if p.IsFailure != tt.failure || p.Facility != tt.facility || p.Code != tt.errCode {
				t.Fatalf("Decompose(%d) = %+v; want failure=%v facility=%d code=%d",
					int64(tt.in), p, tt.failure, tt.facility, tt.errCode)
			}
		})
	}
}

func TestDecompose_Flags(t *testing.T) {
	p := Decompose(code.Code(0xE0000001))
	if !p.IsFailure || !p.Customer || p.NTStatus {
		t.Fatalf("unexpected flags for 0xE0000001: %+v", p)
	}
	p = Decompose(code.Code(0xD0000022))
	if !p.NTStatus {
		t.Fatalf("NTStatus bit must be set for 0xD0000022: %+v", p)
	}
}

func TestMake_RoundTrip(t *testing.T) {
	h := Make(true, FacilityITF, 0x131F)
	if h != 0x8004131F {
		t.Fatalf("Make() = %s, want 0x8004131F", h)
	}
	p := Decompose(h.Code())
	if !p.IsFailure || p.Facility != FacilityITF || p.Code != 0x131F {
		t.Fatalf("Decompose(Make()) = %+v", p)
	}
	if got := Make(false, 0xFFFF, 1); got != 0x1FFF0001 {
		t.Fatalf("facility must be masked to 13 bits, got %s", got)
	}
}

func TestFromWin32(t *testing.T) {
	if got := FromWin32(2); got != 0x80070002 {
		t.Fatalf("FromWin32(2) = %s, want 0x80070002", got)
	}
	if got := FromWin32(0); got != 0 {
		t.Fatalf("FromWin32(0) = %s, want 0x00000000", got)
	}
}

func TestFacilityName(t *testing.T) {
	tests := []struct {
		in   Facility
		want string
	}{
		{FacilityWin32, "FACILITY_WIN32"},
		{FacilityITF, "FACILITY_ITF"},
		{FacilityNull, "FACILITY_NULL"},
		{5, "FACILITY_5"},
		{MaxFacility, "FACILITY_8191"},
	}
	for _, tt := range tests {
		if got := FacilityName(tt.in); got != tt.want {
			t.Fatalf("FacilityName(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFacilities_SortedAndUnique(t *testing.T) {
	all := Facilities()
	if len(all) == 0 {
		t.Fatal("facility table must not be empty")
	}
	seen := make(map[string]bool, len(all))
	for i, e := range all {
		if e.Code > MaxFacility {
			t.Fatalf("facility %d exceeds 13 bits", e.Code)
		}
		if i > 0 && all[i-1].Code >= e.Code {
			t.Fatalf("Facilities() not strictly sorted at %d", i)
		}
		if seen[e.Name] {
			t.Fatalf("duplicate facility name %q", e.Name)
		}
		seen[e.Name] = true
	}
}

func TestParts_String(t *testing.T) {
	got := Decompose(2147942402).String()
	want := "0x80070002 severity=failure facility=FACILITY_WIN32(7) code=2"
	if got != want {
		t.Fatalf("Parts.String() = %q, want %q", got, want)
	}
}
