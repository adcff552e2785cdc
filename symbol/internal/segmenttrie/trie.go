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

package segmenttrie

import (
	"errors"
	"strings"
)

// Sep separates segments in keys and patterns: "SCHED_E_ALREADY_RUNNING"
// has the segments SCHED, E, ALREADY and RUNNING.
const Sep = '_'

// Wildcard is the pattern segment that matches exactly one key segment.
const Wildcard = "*"

// Trie is a segment-aware prefix index for underscore-separated symbolic
// names. Each node represents one segment; the wildcard "*" matches exactly
// one segment. Lookups use longest-prefix-match (LPM) on segment boundaries,
// so "SCHED_E" matches "SCHED_E_ALREADY_RUNNING" but not "SCHED_EX".
type Trie[T any] struct {
	children map[string]*Trie[T]
	hasVal   bool
	val      T
	// pattern is the prefix as inserted; set only when hasVal is true.
	pattern string
}

var (
	// ErrInvalidPrefix is returned when inserting a prefix that is empty,
	// has empty segments, contains invalid characters, or consists only of
	// wildcards.
	ErrInvalidPrefix = errors.New("segmenttrie: invalid prefix")
)

// New creates an empty trie ready for inserts.
func New[T any]() *Trie[T] {
	return &Trie[T]{children: make(map[string]*Trie[T])}
}

// Insert associates val with prefix.
//
// Examples:
//
//	"SCHED_S"
//	"ERROR_SUCCESS"
//	"*_E"
//
// A prefix made only of "*" segments is rejected, because it is too generic.
func (t *Trie[T]) Insert(prefix string, val T) error {
	if t == nil {
		return ErrInvalidPrefix
	}
	segs, ok := split(prefix, true)
	if !ok || len(segs) == 0 {
		return ErrInvalidPrefix
	}
	allWild := true
	for _, s := range segs {
		if s != Wildcard {
			allWild = false
			break
		}
	}
	if allWild {
		return ErrInvalidPrefix
	}

	cur := t
	for _, s := range segs {
		child, exists := cur.children[s]
		if !exists {
			child = New[T]()
			cur.children[s] = child
		}
		cur = child
	}
	cur.hasVal = true
	cur.val = val
	if cur.pattern == "" {
		cur.pattern = prefix
	}
	return nil
}

// Match finds the deepest stored prefix of key and returns its value and
// pattern. Both exact segments and "*" branches are explored; on equal depth
// the exact branch wins because it is visited first.
func (t *Trie[T]) Match(key string) (T, string, bool) {
	var zero T
	if t == nil {
		return zero, "", false
	}
	segs, ok := split(key, false)
	if !ok {
		return zero, "", false
	}

	bestDepth := -1
	var best *Trie[T]

	var dfs func(n *Trie[T], depth int)
	dfs = func(n *Trie[T], depth int) {
		if n.hasVal && depth > bestDepth {
			bestDepth = depth
			best = n
		}
		if depth >= len(segs) {
			return
		}
		if next, ok := n.children[segs[depth]]; ok {
			dfs(next, depth+1)
		}
		if next, ok := n.children[Wildcard]; ok {
			dfs(next, depth+1)
		}
	}

	dfs(t, 0)
	if best == nil {
		return zero, "", false
	}
	return best.val, best.pattern, true
}

// split splits s on Sep and validates each segment. An empty string is a
// valid, empty segment list.
func split(s string, allowWildcard bool) ([]string, bool) {
	if s == "" {
		return []string{}, true
	}
	segs := strings.Split(s, string(Sep))
	for _, seg := range segs {
		if !validSegment(seg, allowWildcard) {
			return nil, false
		}
	}
	return segs, true
}

// validSegment reports whether seg matches [A-Z0-9]+ (or is "*" when
// wildcards are allowed).
func validSegment(seg string, allowWildcard bool) bool {
	if seg == "" {
		return false
	}
	if allowWildcard && seg == Wildcard {
		return true
	}
	for i := 0; i < len(seg); i++ {
		c := seg[i]
		if (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			continue
		}
		return false
	}
	return true
}
