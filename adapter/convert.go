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

package adapter

import (
	"dirpx.dev/resultcode/apis"
)

// View statuses.
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
	StatusUnknown = "unknown"
)

// ToDescriptor converts a Result into a portable Descriptor.
//
// The descriptor is intended for structured logging, tracing, or message bus
// propagation. Only the primary interpretation is carried; alternatives
// are dropped.
func ToDescriptor(r apis.Result) apis.Descriptor {
	return apis.Descriptor{
		HexCode:      r.HexCode,
		ConstantName: r.ConstantName,
		Source:       r.Source.String(),
		Facility:     r.Facility,
		Success:      r.Success(),
		Message:      r.Message,
	}
}

// ToView converts a Result into an operator-facing View.
//
// Status is "unknown" whenever no authority recognized the code, even when
// the severity bit suggests an outcome: a guess is never presented as a
// classification. For input that could not be parsed, Code holds the raw
// input.
func ToView(r apis.Result) apis.View {
	v := apis.View{
		Code:    r.HexCode,
		Name:    r.ConstantName,
		Status:  Status(r),
		Message: r.Message,
	}
	if !r.Parsed() {
		v.Code = r.Input
	}
	if len(r.Meanings) > 1 {
		v.Alternatives = make([]string, 0, len(r.Meanings)-1)
		for _, m := range r.Meanings[1:] {
			v.Alternatives = append(v.Alternatives, m.Message)
		}
	}
	return v
}

// Status returns the View status of r.
func Status(r apis.Result) string {
	switch {
	case r.Source == apis.SourceUnknown || r.IsSuccess == nil:
		return StatusUnknown
	case *r.IsSuccess:
		return StatusSuccess
	default:
		return StatusFailure
	}
}
