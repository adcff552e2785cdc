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

package oserr

import (
	"cmp"
	"fmt"
	"slices"

	"dirpx.dev/resultcode/apis"
	"dirpx.dev/resultcode/symbol"
)

// Entry is one Win32 error code with its constant name and system message.
type Entry struct {
	Code    uint32        `json:"code" yaml:"code"`
	Name    symbol.Symbol `json:"name" yaml:"name"`
	Message string        `json:"message" yaml:"message"`
}

// Table is an immutable code -> Entry index. It implements apis.Lookup and
// apis.Namer and is safe for concurrent use.
type Table struct {
	byCode map[uint32]Entry
}

var (
	_ apis.Lookup = (*Table)(nil)
	_ apis.Namer  = (*Table)(nil)
)

// NewTable builds a Table. Codes and names must be unique and every entry
// needs a valid name and a non-empty message.
func NewTable(entries ...Entry) (*Table, error) {
	t := &Table{byCode: make(map[uint32]Entry, len(entries))}
	names := make(map[symbol.Symbol]struct{}, len(entries))
	for _, e := range entries {
		if e.Name == symbol.Empty || symbol.Validate(e.Name) != nil {
			return nil, fmt.Errorf("oserr: invalid name %q for code %d", e.Name, e.Code)
		}
		if e.Message == "" {
			return nil, fmt.Errorf("oserr: %s has no message", e.Name)
		}
		if _, dup := t.byCode[e.Code]; dup {
			return nil, fmt.Errorf("oserr: duplicate code %d (%s)", e.Code, e.Name)
		}
		if _, dup := names[e.Name]; dup {
			return nil, fmt.Errorf("oserr: duplicate name %s", e.Name)
		}
		t.byCode[e.Code] = e
		names[e.Name] = struct{}{}
	}
	return t, nil
}

// Message implements apis.Lookup.
func (t *Table) Message(code uint32) (string, bool) {
	if t == nil {
		return "", false
	}
	e, ok := t.byCode[code]
	return e.Message, ok
}

// Name implements apis.Namer.
func (t *Table) Name(code uint32) (string, bool) {
	if t == nil {
		return "", false
	}
	e, ok := t.byCode[code]
	return e.Name.String(), ok
}

// All returns every entry ordered by code.
func (t *Table) All() []Entry {
	if t == nil {
		return nil
	}
	out := make([]Entry, 0, len(t.byCode))
	for _, e := range t.byCode {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b Entry) int { return cmp.Compare(a.Code, b.Code) })
	return out
}

// Len returns the number of entries.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.byCode)
}
