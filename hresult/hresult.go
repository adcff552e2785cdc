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
	"fmt"

	"dirpx.dev/resultcode/code"
)

// HRESULT is the raw 32-bit status layout:
//
//	 3 3 2 2 2 2 2 2 2 2 2 2 1 1 1 1 1 1 1 1 1 1
//	 1 0 9 8 7 6 5 4 3 2 1 0 9 8 7 6 5 4 3 2 1 0 9 8 7 6 5 4 3 2 1 0
//	+-+-+-+-+-+---------------------+-------------------------------+
//	|S|R|C|N|X|      Facility       |              Code             |
//	+-+-+-+-+-+---------------------+-------------------------------+
//
// S is the severity (failure) bit, C the customer bit and N the NTSTATUS
// mapping bit. The facility occupies bits 16..28.
type HRESULT uint32

const (
	severityBit = 1 << 31
	customerBit = 1 << 29
	ntStatusBit = 1 << 28

	facilityShift = 16
	facilityMask  = 0x1FFF
	codeMask      = 0xFFFF
)

// Parts is the decomposition of a result code's low 32 bits.
type Parts struct {
	// HRESULT is the low 32 bits the other fields were derived from.
	HRESULT HRESULT
	// IsFailure is the severity bit (bit 31).
	IsFailure bool
	// Customer is bit 29, set for vendor-defined codes.
	Customer bool
	// NTStatus is bit 28, set when the value maps an NTSTATUS.
	NTStatus bool
	// Facility is bits 16..28.
	Facility Facility
	// Code is bits 0..15.
	Code uint16
}

// Decompose splits c into severity, facility and error number.
//
// Values wider than 32 bits are masked to their low 32 bits, so 0x80070002,
// -2147024894 and 0x1_80070002 decompose identically.
func Decompose(c code.Code) Parts {
	v := HRESULT(c.Low32())
	return Parts{
		HRESULT:   v,
		IsFailure: v&severityBit != 0,
		Customer:  v&customerBit != 0,
		NTStatus:  v&ntStatusBit != 0,
		Facility:  Facility((v >> facilityShift) & facilityMask),
		Code:      uint16(v & codeMask),
	}
}

// Make composes an HRESULT from its parts. The facility is masked to 13 bits.
func Make(failure bool, f Facility, errCode uint16) HRESULT {
	v := (HRESULT(f)&facilityMask)<<facilityShift | HRESULT(errCode)
	if failure {
		v |= severityBit
	}
	return v
}

// FromWin32 builds the HRESULT_FROM_WIN32 form of a Win32 error number.
// Zero stays zero (S_OK).
func FromWin32(errCode uint16) HRESULT {
	if errCode == 0 {
		return 0
	}
	return Make(true, FacilityWin32, errCode)
}

// Code returns the HRESULT as a normalized, non-negative result code.
func (h HRESULT) Code() code.Code { return code.Code(int64(h)) }

// String renders the HRESULT as 0x-prefixed, 8-digit uppercase hex.
func (h HRESULT) String() string { return fmt.Sprintf("0x%08X", uint32(h)) }

// String renders the parts in a compact, log-friendly form.
func (p Parts) String() string {
	sev := "success"
	if p.IsFailure {
		sev = "failure"
	}
	return fmt.Sprintf("%s severity=%s facility=%s(%d) code=%d", p.HRESULT, sev, FacilityName(p.Facility), uint16(p.Facility), p.Code)
}
