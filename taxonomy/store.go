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

package taxonomy

import (
	"errors"
	"fmt"
	"math"

	"dirpx.dev/resultcode/code"
	"dirpx.dev/resultcode/symbol"
)

// Entry is one domain-specific status code.
type Entry struct {
	// Code is the numeric key. Error codes are written in their unsigned
	// HRESULT form (0x8004131F); lookups also accept the signed 32-bit form.
	Code code.Code `json:"code" yaml:"code"`

	// Name is the canonical constant name, e.g. SCHED_E_ALREADY_RUNNING.
	Name symbol.Symbol `json:"name" yaml:"name"`

	// Message is the human-readable description.
	Message string `json:"message" yaml:"message"`

	// Success is true for success/informational codes.
	Success bool `json:"success" yaml:"success"`
}

// Key tells which representation of a code matched during lookup.
type Key uint8

const (
	// KeyNone means nothing matched.
	KeyNone Key = iota
	// Key64 means the normalized value matched an entry exactly.
	Key64
	// Key32 means the value matched after switching the signedness of its
	// 32-bit representation (-2147216609 <-> 0x8004131F).
	Key32
)

// String returns "64", "32" or "none".
func (k Key) String() string {
	switch k {
	case Key64:
		return "64"
	case Key32:
		return "32"
	default:
		return "none"
	}
}

var (
	// ErrDuplicateCode is returned by New when two entries share a key,
	// including the case where one is the 32-bit alias of the other.
	ErrDuplicateCode = errors.New("taxonomy: duplicate code")
	// ErrDuplicateName is returned by New when two entries share a name.
	ErrDuplicateName = errors.New("taxonomy: duplicate name")
	// ErrInvalidEntry is returned by New for entries with an empty or
	// malformed name, an empty message, or a success flag that contradicts
	// the name.
	ErrInvalidEntry = errors.New("taxonomy: invalid entry")
)

// Store is an immutable taxonomy snapshot.
//
// A Store is safe for concurrent use. It keeps entries in declaration order,
// which is also the order All returns.
type Store struct {
	entries []Entry
	byCode  map[code.Code]int
	byName  map[symbol.Symbol]int
}

// New builds a Store from entries, validating each one.
//
// Validation rules:
//   - Name must be a valid, non-empty symbol;
//   - Message must be non-empty;
//   - Success must agree with the name's naming convention (SCHED_S_* is
//     success, SCHED_E_* is failure);
//   - neither codes (including their 32-bit aliases) nor names may repeat.
func New(entries ...Entry) (*Store, error) {
	s := &Store{
		entries: make([]Entry, 0, len(entries)),
		byCode:  make(map[code.Code]int, len(entries)),
		byName:  make(map[symbol.Symbol]int, len(entries)),
	}
	for _, e := range entries {
		if err := validateEntry(e); err != nil {
			return nil, err
		}
		if _, ok := s.byCode[e.Code]; ok {
			return nil, fmt.Errorf("%w: %s (%s)", ErrDuplicateCode, e.Code.Hex(), e.Name)
		}
		if alias, ok := alias32(e.Code); ok {
			if _, dup := s.byCode[alias]; dup {
				return nil, fmt.Errorf("%w: %s is an alias of an existing entry (%s)", ErrDuplicateCode, e.Code.Hex(), e.Name)
			}
		}
		if _, ok := s.byName[e.Name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, e.Name)
		}
		s.byCode[e.Code] = len(s.entries)
		s.byName[e.Name] = len(s.entries)
		s.entries = append(s.entries, e)
	}
	return s, nil
}

// MustNew is the panic-on-error variant of New, for static tables.
func MustNew(entries ...Entry) *Store {
	s, err := New(entries...)
	if err != nil {
		panic(err)
	}
	return s
}

func validateEntry(e Entry) error {
	if e.Name == symbol.Empty {
		return fmt.Errorf("%w: code %s has no name", ErrInvalidEntry, e.Code.Hex())
	}
	if err := symbol.Validate(e.Name); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidEntry, e.Name, err)
	}
	if e.Message == "" {
		return fmt.Errorf("%w: %s has no message", ErrInvalidEntry, e.Name)
	}
	if !e.Name.Agrees(e.Success) {
		return fmt.Errorf("%w: %s is named %s but success=%v", ErrInvalidEntry, e.Name, e.Name.Severity(), e.Success)
	}
	return nil
}

// Lookup returns the entry for c, trying the 64-bit key first and the
// 32-bit alias second.
func (s *Store) Lookup(c code.Code) (Entry, bool) {
	e, k := s.LookupKey(c)
	return e, k != KeyNone
}

// LookupKey is Lookup that also reports which key matched.
func (s *Store) LookupKey(c code.Code) (Entry, Key) {
	if s == nil {
		return Entry{}, KeyNone
	}
	if i, ok := s.byCode[c]; ok {
		return s.entries[i], Key64
	}
	if alias, ok := alias32(c); ok {
		if i, ok := s.byCode[alias]; ok {
			return s.entries[i], Key32
		}
	}
	return Entry{}, KeyNone
}

// ByName returns the entry with the given canonical name.
func (s *Store) ByName(name symbol.Symbol) (Entry, bool) {
	if s == nil {
		return Entry{}, false
	}
	i, ok := s.byName[name]
	if !ok {
		return Entry{}, false
	}
	return s.entries[i], true
}

// All returns a copy of every entry in declaration order.
func (s *Store) All() []Entry {
	if s == nil {
		return nil
	}
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Filter returns the entries whose name matches prefix on segment
// boundaries (see symbol.Symbol.HasPrefix), in declaration order.
func (s *Store) Filter(prefix string) []Entry {
	if s == nil {
		return nil
	}
	var out []Entry
	for _, e := range s.entries {
		if e.Name.HasPrefix(prefix) {
			out = append(out, e)
		}
	}
	return out
}

// Len returns the number of entries.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// alias32 returns the same 32 bits read with the opposite signedness.
// Only values representable in 32 bits (signed or unsigned) have an alias,
// and only when the two readings differ.
func alias32(c code.Code) (code.Code, bool) {
	v := int64(c)
	switch {
	case v > math.MaxInt32 && v <= math.MaxUint32:
		return code.Code(int64(int32(uint32(v)))), true
	case v < 0 && v >= math.MinInt32:
		return code.Code(int64(uint32(v))), true
	default:
		return 0, false
	}
}
