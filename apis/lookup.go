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

// Lookup is the OS-error-lookup capability: given a Win32 error number (or
// another small positive code) it returns the platform's description.
//
// Implementations MUST be safe for concurrent use and SHOULD NOT block.
// A missing mapping is reported as ("", false); an empty message with true
// is treated the same way by callers.
type Lookup interface {
	// Message returns the description for code, or ("", false) if the
	// platform has no mapping.
	Message(code uint32) (string, bool)
}

// Namer is an optional extension of Lookup. Lookups that also know the
// symbolic constant name of a code (e.g. ERROR_FILE_NOT_FOUND for 2)
// implement it so that OS meanings carry a ConstantName too.
type Namer interface {
	// Name returns the constant name for code, or ("", false) if unknown.
	Name(code uint32) (string, bool)
}

// LookupFunc adapts an ordinary function to the Lookup interface.
type LookupFunc func(code uint32) (string, bool)

// Message calls f(code).
func (f LookupFunc) Message(code uint32) (string, bool) { return f(code) }
