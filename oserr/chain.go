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
	"strings"

	"dirpx.dev/resultcode/apis"
)

// None never knows a code.
var None apis.Lookup = apis.LookupFunc(func(uint32) (string, bool) { return "", false })

// Chain consults lookups in order and returns the first non-empty message.
// Name likewise returns the first name known by a link implementing
// apis.Namer. Nil links are skipped.
func Chain(lookups ...apis.Lookup) *Chained {
	c := &Chained{links: make([]apis.Lookup, 0, len(lookups))}
	for _, l := range lookups {
		if l != nil {
			c.links = append(c.links, l)
		}
	}
	return c
}

// Chained is the lookup returned by Chain.
type Chained struct {
	links []apis.Lookup
}

var (
	_ apis.Lookup = (*Chained)(nil)
	_ apis.Namer  = (*Chained)(nil)
)

// Message implements apis.Lookup.
func (c *Chained) Message(code uint32) (string, bool) {
	for _, l := range c.links {
		if msg, ok := l.Message(code); ok && strings.TrimSpace(msg) != "" {
			return msg, true
		}
	}
	return "", false
}

// Name implements apis.Namer.
func (c *Chained) Name(code uint32) (string, bool) {
	for _, l := range c.links {
		n, ok := l.(apis.Namer)
		if !ok {
			continue
		}
		if name, ok := n.Name(code); ok && name != "" {
			return name, true
		}
	}
	return "", false
}

// Safe wraps l so that a panic inside it is reported as a miss. onPanic,
// if non-nil, receives the code and the recovered value.
func Safe(l apis.Lookup, onPanic func(code uint32, recovered any)) *Guarded {
	return &Guarded{inner: l, onPanic: onPanic}
}

// Guarded is the lookup returned by Safe.
type Guarded struct {
	inner   apis.Lookup
	onPanic func(code uint32, recovered any)
}

var (
	_ apis.Lookup = (*Guarded)(nil)
	_ apis.Namer  = (*Guarded)(nil)
)

// Message implements apis.Lookup.
func (g *Guarded) Message(code uint32) (msg string, ok bool) {
	if g.inner == nil {
		return "", false
	}
	defer g.catch(code, &msg, &ok)
	return g.inner.Message(code)
}

// Name implements apis.Namer. It misses when the wrapped lookup is not a
// Namer.
func (g *Guarded) Name(code uint32) (name string, ok bool) {
	n, isNamer := g.inner.(apis.Namer)
	if !isNamer {
		return "", false
	}
	defer g.catch(code, &name, &ok)
	return n.Name(code)
}

func (g *Guarded) catch(code uint32, s *string, ok *bool) {
	if r := recover(); r != nil {
		*s, *ok = "", false
		if g.onPanic != nil {
			g.onPanic(code, r)
		}
	}
}
