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

package apis

// Result is the structured translation of one result code.
//
// For parsed input ResultCode, HexCode, Facility, FacilityCode and IsSuccess
// are always populated. For input that could not be parsed, only Input,
// Message, Source (SourceUnknown) and an empty Meanings list are set; every
// classification field is nil or empty.
//
// Invariants:
//   - Meanings never holds two entries with the same Message;
//   - when Meanings is non-empty, Message, Source, ConstantName and IsSuccess
//     mirror Meanings[0];
//   - when Meanings is empty, Source is SourceUnknown.
type Result struct {
	// Input is the raw input as text. It is set only on parse failures, so
	// that batch callers can match degraded results to what they submitted;
	// every spelling of a parsed code yields the same Result.
	Input string `json:"input,omitempty" yaml:"input,omitempty"`

	// ResultCode is the normalized signed 64-bit code.
	ResultCode *int64 `json:"result_code" yaml:"result_code"`

	// HexCode is "0x" followed by 8 or 16 uppercase hex digits.
	HexCode string `json:"hex_code,omitempty" yaml:"hex_code,omitempty"`

	// Message is the primary interpretation.
	Message string `json:"message" yaml:"message"`

	// Source is the authority of the primary interpretation.
	Source Source `json:"source" yaml:"source"`

	// ConstantName is the canonical symbolic name, if any.
	ConstantName string `json:"constant_name,omitempty" yaml:"constant_name,omitempty"`

	// IsSuccess is nil only when the input could not be parsed. Under
	// SourceUnknown it is a best-effort guess from the severity bit.
	IsSuccess *bool `json:"is_success" yaml:"is_success"`

	// Facility is the canonical facility name or "FACILITY_<n>".
	Facility string `json:"facility,omitempty" yaml:"facility,omitempty"`

	// FacilityCode is bits 16..28 of the low 32 bits of ResultCode.
	FacilityCode *int `json:"facility_code" yaml:"facility_code"`

	// Meanings lists every tier contribution, in tier-priority order.
	// It is never nil.
	Meanings []Meaning `json:"meanings" yaml:"meanings"`
}

// Parsed reports whether the result was produced from a parsed code.
func (r Result) Parsed() bool { return r.ResultCode != nil }

// Known reports whether any table recognized the code.
func (r Result) Known() bool { return r.Source != SourceUnknown }

// Success returns IsSuccess, treating nil as false.
func (r Result) Success() bool { return r.IsSuccess != nil && *r.IsSuccess }

// Code returns ResultCode, treating nil as zero.
func (r Result) Code() int64 {
	if r.ResultCode == nil {
		return 0
	}
	return *r.ResultCode
}
