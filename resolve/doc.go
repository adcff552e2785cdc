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

// Package resolve turns a normalized result code into the ordered list of
// its interpretations (apis.Meaning).
//
// # Overview
//
// A result code can mean several things at once. 0x8004131F is a Task
// Scheduler status; 0x80070002 is a Win32 error wrapped into an HRESULT;
// 5 is a bare Win32 error number. A Resolver consults its authorities in a
// fixed order and collects every distinct interpretation:
//
//  1. domain taxonomy: exact 64-bit key, then the 32-bit alias;
//  2. OS facility decode: only for FACILITY_WIN32 (7), the low 16 bits are
//     passed to the OS-error lookup;
//  3. direct small-code decode: only when the taxonomy missed and the value
//     is in [1, 65535], the value itself is passed to the OS-error lookup;
//  4. synthesis: the value 0 with nothing collected becomes ERROR_SUCCESS.
//
// A candidate whose Message equals an already collected Message is dropped.
// Tiers 2 and 3 never fire together: a value in [1, 65535] always has
// facility 0.
//
// # Building a resolver
//
// A Resolver is created once and reused:
//
//	r, err := resolve.New(
//	    resolve.WithLookup(oserr.Win32()),
//	    resolve.WithLogger(logger),
//	)
//	if err != nil {
//	    // nil taxonomy, etc.
//	}
//
//	c := code.MustParse("0x80070002")
//	meanings := r.Resolve(c, hresult.Decompose(c))
//
// # Failure tolerance
//
// The OS-error lookup is an external collaborator. A lookup that panics or
// has no mapping contributes nothing; resolution always completes. Panics
// are recovered and logged at warn level.
//
// # Diagnostics
//
// Resolver.Explain returns a human-readable trace of every tier decision for
// one code. It is intended for inspection and logging, not for stable
// machine parsing.
package resolve
