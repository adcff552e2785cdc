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
	"fmt"

	"dirpx.dev/resultcode/symbol/internal/segmenttrie"
)

// Severity is what a constant name says about success or failure, following
// the winerror.h naming conventions (SCHED_S_* vs SCHED_E_*, S_OK vs E_FAIL).
type Severity uint8

const (
	// SeverityUnknown means the name carries no severity marker.
	SeverityUnknown Severity = iota
	// SeveritySuccess is a success or informational name.
	SeveritySuccess
	// SeverityError is a failure name.
	SeverityError
)

// String returns "unknown", "success" or "error".
func (s Severity) String() string {
	switch s {
	case SeveritySuccess:
		return "success"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// severityRules maps name prefixes onto severities. The longest matching
// prefix wins, so ERROR_SUCCESS overrides ERROR.
var severityRules = []struct {
	prefix string
	sev    Severity
}{
	{"S", SeveritySuccess},
	{"E", SeverityError},
	{"*_S", SeveritySuccess},
	{"*_E", SeverityError},
	{"SCHED_S", SeveritySuccess},
	{"SCHED_E", SeverityError},
	{"ERROR", SeverityError},
	{"ERROR_SUCCESS", SeveritySuccess},
	// RPC_S_* are Win32 failures despite the S segment.
	{"RPC_S", SeverityUnknown},
}

var severityIndex = buildSeverityIndex()

func buildSeverityIndex() *segmenttrie.Trie[Severity] {
	t := segmenttrie.New[Severity]()
	for _, r := range severityRules {
		if err := t.Insert(r.prefix, r.sev); err != nil {
			panic(fmt.Sprintf("symbol: bad severity rule %q: %v", r.prefix, err))
		}
	}
	return t
}

// Severity classifies the symbol by its naming convention.
func (s Symbol) Severity() Severity {
	sev, _ := s.Classify()
	return sev
}

// Classify returns the severity implied by the name together with the rule
// that decided it. The rule is empty when no convention applies.
func (s Symbol) Classify() (Severity, string) {
	if s == Empty {
		return SeverityUnknown, ""
	}
	sev, rule, ok := severityIndex.Match(string(s))
	if !ok {
		return SeverityUnknown, ""
	}
	return sev, rule
}

// Agrees reports whether a success flag is consistent with the name.
// Names without a severity marker agree with anything.
func (s Symbol) Agrees(success bool) bool {
	switch s.Severity() {
	case SeveritySuccess:
		return success
	case SeverityError:
		return !success
	default:
		return true
	}
}
