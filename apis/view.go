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

// View is a minimal, serializable representation of a Result intended for
// operators: the primary interpretation plus the alternatives that other
// tiers produced.
//
// This is *not* the full Result; it is the shape we are comfortable showing
// in dashboards and chat notifications.
type View struct {
	// Code is the hex rendering of the result code, or the raw input when
	// it could not be parsed.
	Code string `json:"code"`

	// Name is the symbolic name of the primary interpretation, if any.
	Name string `json:"name,omitempty"`

	// Status is "success", "failure" or "unknown".
	Status string `json:"status"`

	// Message is the primary interpretation.
	Message string `json:"message"`

	// Alternatives holds the messages of Meanings[1:], if any.
	Alternatives []string `json:"alternatives,omitempty"`
}
