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
	"cmp"
	"slices"
	"strconv"
)

// Facility is the 13-bit subsystem identifier of an HRESULT (0..8191).
// It names the table that governs the meaning of the low 16 bits.
type Facility uint16

// MaxFacility is the largest value that fits the 13-bit facility field.
const MaxFacility Facility = 0x1FFF

// Well-known facilities referenced by resolution logic and tests.
const (
	// FacilityNull is used by generic codes such as E_FAIL and S_OK.
	FacilityNull Facility = 0
	// FacilityRPC covers RPC runtime errors.
	FacilityRPC Facility = 1
	// FacilityITF covers interface-specific codes. Task Scheduler status
	// codes (SCHED_S_*, SCHED_E_*) live here.
	FacilityITF Facility = 4
	// FacilityWin32 wraps a Win32 error number in the low 16 bits
	// (HRESULT_FROM_WIN32). Codes in this facility are decoded by the OS
	// error table.
	FacilityWin32 Facility = 7
	// FacilityWindows covers Windows subsystem codes.
	FacilityWindows Facility = 8
)

// facilityNames is the canonical facility table, sourced from winerror.h.
//
// The table is append-only: existing keys are never renumbered, otherwise
// already deployed callers would silently see different facility names.
var facilityNames = map[Facility]string{
	0:    "FACILITY_NULL",
	1:    "FACILITY_RPC",
	2:    "FACILITY_DISPATCH",
	3:    "FACILITY_STORAGE",
	4:    "FACILITY_ITF",
	7:    "FACILITY_WIN32",
	8:    "FACILITY_WINDOWS",
	9:    "FACILITY_SECURITY",
	10:   "FACILITY_CONTROL",
	11:   "FACILITY_CERT",
	12:   "FACILITY_INTERNET",
	13:   "FACILITY_MEDIASERVER",
	14:   "FACILITY_MSMQ",
	15:   "FACILITY_SETUPAPI",
	16:   "FACILITY_SCARD",
	17:   "FACILITY_COMPLUS",
	18:   "FACILITY_AAF",
	19:   "FACILITY_URT",
	20:   "FACILITY_ACS",
	21:   "FACILITY_DPLAY",
	22:   "FACILITY_UMI",
	23:   "FACILITY_SXS",
	24:   "FACILITY_WINDOWS_CE",
	25:   "FACILITY_HTTP",
	26:   "FACILITY_USERMODE_COMMONLOG",
	27:   "FACILITY_WER",
	31:   "FACILITY_USERMODE_FILTER_MANAGER",
	32:   "FACILITY_BACKGROUNDCOPY",
	33:   "FACILITY_CONFIGURATION",
	34:   "FACILITY_STATE_MANAGEMENT",
	35:   "FACILITY_METADIRECTORY",
	36:   "FACILITY_WINDOWSUPDATE",
	37:   "FACILITY_DIRECTORYSERVICE",
	38:   "FACILITY_GRAPHICS",
	39:   "FACILITY_SHELL",
	40:   "FACILITY_TPM_SERVICES",
	41:   "FACILITY_TPM_SOFTWARE",
	48:   "FACILITY_PLA",
	49:   "FACILITY_FVE",
	50:   "FACILITY_FWP",
	51:   "FACILITY_WINRM",
	52:   "FACILITY_NDIS",
	53:   "FACILITY_USERMODE_HYPERVISOR",
	54:   "FACILITY_CMI",
	55:   "FACILITY_USERMODE_VIRTUALIZATION",
	56:   "FACILITY_USERMODE_VOLMGR",
	57:   "FACILITY_BCD",
	58:   "FACILITY_USERMODE_VHD",
	60:   "FACILITY_SDIAG",
	61:   "FACILITY_WEBSERVICES",
	80:   "FACILITY_WINDOWS_DEFENDER",
	81:   "FACILITY_OPC",
	2047: "FACILITY_WINDOWS_SETUP",
}

// FacilityName returns the canonical name of f, or "FACILITY_<n>" when the
// facility is not in the table.
func FacilityName(f Facility) string {
	if name, ok := facilityNames[f]; ok {
		return name
	}
	return "FACILITY_" + strconv.Itoa(int(f))
}

// LookupFacility returns the canonical name of f and whether it is known.
func LookupFacility(f Facility) (string, bool) {
	name, ok := facilityNames[f]
	return name, ok
}

// FacilityEntry is one row of the facility table.
type FacilityEntry struct {
	Code Facility `json:"code" yaml:"code"`
	Name string   `json:"name" yaml:"name"`
}

// Facilities returns the whole facility table sorted by code.
// The returned slice is a fresh copy.
func Facilities() []FacilityEntry {
	out := make([]FacilityEntry, 0, len(facilityNames))
	for f, name := range facilityNames {
		out = append(out, FacilityEntry{Code: f, Name: name})
	}
	slices.SortFunc(out, func(a, b FacilityEntry) int { return cmp.Compare(a.Code, b.Code) })
	return out
}

// String returns the canonical facility name.
func (f Facility) String() string { return FacilityName(f) }
