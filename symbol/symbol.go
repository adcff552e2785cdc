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
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Symbol is the canonical, validated constant name of a result code, such
// as "SCHED_E_ALREADY_RUNNING" or "ERROR_FILE_NOT_FOUND".
//
// Symbols are optional: the zero value ("") means "no symbolic name is
// known", which is common for codes decoded by the OS error table.
type Symbol string

// MinLength and MaxLength define the allowed length range for a non-empty
// symbol.
const (
	// MinLength keeps "S_OK" valid while rejecting single letters.
	MinLength = 3

	// MaxLength is well above the longest name in winerror.h.
	MaxLength = 96
)

const (
	// symbolFmt accepts underscore-separated segments of uppercase ASCII
	// letters and digits, starting with a letter.
	//
	// Examples that match:
	//
	//	"S_OK"
	//	"SCHED_S_TASK_RUNNING"
	//	"ERROR_INVALID_FUNCTION"
	//	"FACILITY_WIN32"
	//
	// Examples that DO NOT match:
	//
	//	"sched_s_task_running" (lowercase, fixed by Normalize)
	//	"SCHED__E"             (empty segment)
	//	"1ERROR"               (digit first)
	//	"ERROR_"               (trailing separator)
	symbolFmt = `^[A-Z][A-Z0-9]*(_[A-Z0-9]+)*$`
)

var (
	// symbolRe is the compiled regexp for symbolFmt.
	symbolRe = regexp.MustCompile(symbolFmt)
)

var (
	// ErrSymbolInvalidFormat is returned when a symbol does not conform to
	// the expected format.
	ErrSymbolInvalidFormat = errors.New("resultcode: invalid symbol format")
	// ErrSymbolInvalidLength is returned when a symbol is too short or too long.
	ErrSymbolInvalidLength = errors.New("resultcode: invalid symbol length")
)

// Ensure Symbol implements encoding.TextMarshaler / encoding.TextUnmarshaler.
var (
	_ encoding.TextMarshaler   = (*Symbol)(nil)
	_ encoding.TextUnmarshaler = (*Symbol)(nil)
)

// Empty is the zero-value symbol. It is considered "not known".
var Empty Symbol = ""

// Normalize brings an arbitrary string closer to the canonical symbol form:
//
//   - trim spaces
//   - upper-case
//   - replace "-" and "." with "_"
//
// It does NOT guarantee validity; callers should still call Parse/Validate.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToUpper(s)
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, ".", "_")
	return s
}

// Parse normalizes and validates s. The empty string yields Empty without
// error.
func Parse(s string) (Symbol, error) {
	s = Normalize(s)
	if s == "" {
		return Empty, nil
	}
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Symbol(s), nil
}

// MustParse is the panic-on-error variant of Parse, for static tables.
//
// NOTE: unlike Parse, MustParse does NOT allow the empty string.
func MustParse(s string) Symbol {
	sym, err := Parse(s)
	if err != nil {
		panic(err)
	}
	if sym == Empty {
		panic("resultcode: empty symbol in MustParse")
	}
	return sym
}

// Validate checks whether sym is in canonical form. Empty is valid.
func Validate(sym Symbol) error {
	if sym == Empty {
		return nil
	}
	return validate(string(sym))
}

// Segments splits the symbol on underscores.
func (s Symbol) Segments() []string {
	if s == Empty {
		return nil
	}
	return strings.Split(string(s), "_")
}

// HasPrefix reports whether prefix matches s on segment boundaries:
// "SCHED_E" matches "SCHED_E_ALREADY_RUNNING" but "SCHED_E_ALR" does not.
// The prefix is normalized first; an empty prefix matches everything.
func (s Symbol) HasPrefix(prefix string) bool {
	p := Normalize(prefix)
	if p == "" {
		return true
	}
	str := string(s)
	if !strings.HasPrefix(str, p) {
		return false
	}
	return len(str) == len(p) || str[len(p)] == '_'
}

// String returns the canonical string representation of the symbol.
func (s Symbol) String() string {
	return string(s)
}

// MarshalText implements encoding.TextMarshaler.
func (s Symbol) MarshalText() ([]byte, error) {
	if err := Validate(s); err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning. Empty
// input produces Empty.
func (s *Symbol) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// validate checks length and format.
func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrSymbolInvalidLength
	}
	if !symbolRe.MatchString(s) {
		return ErrSymbolInvalidFormat
	}
	return nil
}
