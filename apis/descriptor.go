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

// Descriptor is a flat, transport-friendly description of one translated
// result code.
//
// This type intentionally uses plain strings and integers (not the internal
// code.Code / symbol.Symbol value types) so that it can live in the public
// "apis" layer and be used for structured logging, tracing, or message bus
// propagation.
type Descriptor struct {
	// HexCode is the canonical hex rendering, e.g. "0x8004131F".
	HexCode string `json:"hex_code"`

	// ConstantName is the symbolic name, e.g. "SCHED_E_ALREADY_RUNNING".
	// It MAY be empty when no authority provides one.
	ConstantName string `json:"constant_name,omitempty"`

	// Source is the authority of the primary interpretation.
	Source string `json:"source"`

	// Facility is the canonical facility name, e.g. "FACILITY_ITF".
	Facility string `json:"facility,omitempty"`

	// Success mirrors Result.IsSuccess; false when unknown.
	Success bool `json:"success"`

	// Message is the primary human-readable interpretation.
	Message string `json:"message,omitempty"`
}
