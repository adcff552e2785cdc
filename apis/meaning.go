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

// Source identifies which authority produced an interpretation.
type Source string

const (
	// SourceDomainTaxonomy is the domain-specific status table
	// (Task Scheduler SCHED_* codes).
	SourceDomainTaxonomy Source = "DomainTaxonomy"

	// SourceOSError is the generic OS error table (Win32 messages), either
	// decoded from FACILITY_WIN32 or looked up directly for small codes.
	SourceOSError Source = "OSError"

	// SourceUnknown marks a code no table recognized, or input that could
	// not be parsed. Consumers must treat it as "unrecognized" and must not
	// coerce it to success or failure.
	SourceUnknown Source = "Unknown"
)

// String returns the source name as it appears on the wire.
func (s Source) String() string { return string(s) }

// Meaning is one candidate interpretation of a result code.
//
// Meanings are accumulated in strict tier order: domain taxonomy first,
// then OS decodes, then synthesized ones.
type Meaning struct {
	// Source is the authority that produced this interpretation. It is
	// either SourceDomainTaxonomy or SourceOSError, never SourceUnknown.
	Source Source `json:"source" yaml:"source"`

	// ConstantName is the canonical symbolic name, e.g.
	// "SCHED_E_ALREADY_RUNNING". Empty when the authority only provides a
	// message.
	ConstantName string `json:"constant_name,omitempty" yaml:"constant_name,omitempty"`

	// Message is the human-readable description.
	Message string `json:"message" yaml:"message"`

	// IsSuccess is the authority's success/failure classification.
	IsSuccess bool `json:"is_success" yaml:"is_success"`
}
