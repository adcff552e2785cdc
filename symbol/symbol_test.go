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

package symbol

import (
	"encoding"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trim+upper", "  sched_e_already_running  ", "SCHED_E_ALREADY_RUNNING"},
		{"dash to underscore", "error-file-not-found", "ERROR_FILE_NOT_FOUND"},
		{"dot to underscore", "facility.win32", "FACILITY_WIN32"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		in   string
		want Symbol
	}{
		{"S_OK", "S_OK"},
		{"SCHED_S_TASK_RUNNING", "SCHED_S_TASK_RUNNING"},
		{"error_success", "ERROR_SUCCESS"},
		{"FACILITY_WIN32", "FACILITY_WIN32"},
		{"", Empty},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"SCHED__E", ErrSymbolInvalidFormat},
		{"1ERROR", ErrSymbolInvalidFormat},
		{"ERROR_", ErrSymbolInvalidFormat},
		{"ERROR FILE", ErrSymbolInvalidFormat},
		{"E", ErrSymbolInvalidLength},
		{"E" + strings.Repeat("_X", MaxLength), ErrSymbolInvalidLength},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != tt.want {
			t.Fatalf("Parse(%q) = (%q, %v), want error %v", tt.in, got, err, tt.want)
		}
		if got != Empty {
			t.Fatalf("Parse(%q) on error must return Empty, got %q", tt.in, got)
		}
	}
}

func TestMustParse(t *testing.T) {
	if got := MustParse("sched_s_task_ready"); got != "SCHED_S_TASK_READY" {
		t.Fatalf("MustParse() = %q", got)
	}
	for _, in := range []string{"", "1BAD"} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("MustParse(%q) must panic", in)
				}
			}()
			_ = MustParse(in)
		}()
	}
}

func TestHasPrefix(t *testing.T) {
	s := Symbol("SCHED_E_ALREADY_RUNNING")
	tests := []struct {
		prefix string
		want   bool
	}{
		{"", true},
		{"SCHED", true},
		{"sched_e", true},
		{"SCHED_E_ALREADY_RUNNING", true},
		{"SCHED_E_ALR", false},
		{"SCHED_S", false},
	}
	for _, tt := range tests {
		if got := s.HasPrefix(tt.prefix); got != tt.want {
			t.Fatalf("HasPrefix(%q) = %v, want %v", tt.prefix, got, tt.want)
		}
	}
}

func TestSeverity(t *testing.T) {
	tests := []struct {
		in   Symbol
		want Severity
		rule string
	}{
		{"SCHED_S_TASK_RUNNING", SeveritySuccess, "SCHED_S"},
		{"SCHED_E_ALREADY_RUNNING", SeverityError, "SCHED_E"},
		{"S_OK", SeveritySuccess, "S"},
		{"E_FAIL", SeverityError, "E"},
		{"CO_E_SERVER_EXEC_FAILURE", SeverityError, "*_E"},
		{"ERROR_FILE_NOT_FOUND", SeverityError, "ERROR"},
		{"ERROR_SUCCESS", SeveritySuccess, "ERROR_SUCCESS"},
		{"RPC_S_SERVER_UNAVAILABLE", SeverityUnknown, "RPC_S"},
		{"WAIT_TIMEOUT", SeverityUnknown, ""},
		{Empty, SeverityUnknown, ""},
	}
	for _, tt := range tests {
		sev, rule := tt.in.Classify()
		if sev != tt.want || rule != tt.rule {
			t.Fatalf("Classify(%q) = (%s, %q), want (%s, %q)", tt.in, sev, rule, tt.want, tt.rule)
		}
	}
}

func TestAgrees(t *testing.T) {
	if !Symbol("SCHED_S_TASK_READY").Agrees(true) || Symbol("SCHED_S_TASK_READY").Agrees(false) {
		t.Fatal("success name must agree only with success")
	}
	if Symbol("SCHED_E_TASK_DISABLED").Agrees(true) {
		t.Fatal("error name must not agree with success")
	}
	if !Symbol("WAIT_TIMEOUT").Agrees(true) || !Symbol("WAIT_TIMEOUT").Agrees(false) {
		t.Fatal("unmarked name agrees with anything")
	}
}

func TestSymbol_Text(t *testing.T) {
	var s Symbol
	if err := s.UnmarshalText([]byte("  error-access-denied ")); err != nil {
		t.Fatalf("UnmarshalText() unexpected error: %v", err)
	}
	if s != "ERROR_ACCESS_DENIED" {
		t.Fatalf("UnmarshalText() = %q", s)
	}
	if _, err := Symbol("bad__x").MarshalText(); err == nil {
		t.Fatal("MarshalText() on invalid symbol must fail")
	}
	var _ encoding.TextMarshaler = (*Symbol)(nil)
	var _ encoding.TextUnmarshaler = (*Symbol)(nil)
}
