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

package resolve

import "dirpx.dev/resultcode/apis"

// collector accumulates meanings in insertion order, dropping any candidate
// whose Message equals one already collected (case-sensitive).
type collector struct {
	out []apis.Meaning
}

// add appends m unless its Message is a duplicate. It reports whether m was
// kept.
func (c *collector) add(m apis.Meaning) bool {
	for _, e := range c.out {
		if e.Message == m.Message {
			return false
		}
	}
	c.out = append(c.out, m)
	return true
}

func (c *collector) size() int { return len(c.out) }

// list returns the collected meanings; never nil.
func (c *collector) list() []apis.Meaning {
	if c.out == nil {
		return []apis.Meaning{}
	}
	return c.out
}
