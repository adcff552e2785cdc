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

// Package resultcode translates numeric execution-result codes into
// structured diagnostics.
//
// A result code is whatever a task engine or the operating system reported
// for a run: 267009, -2147216609, "0x8004131F", 2147942402. Translate turns
// it into an apis.Result with a canonical constant name, a message, a
// success flag, the HRESULT facility and the authority that produced the
// interpretation:
//
//	r, ok := resultcode.Translate("0x8004131F")
//	// ok == true
//	// r.ConstantName == "SCHED_E_ALREADY_RUNNING"
//	// r.Message == "An instance of this task is already running"
//	// *r.IsSuccess == false
//
// Resolution consults the Task Scheduler taxonomy first and the OS error
// table second; see package resolve for the exact tiers. Codes nobody
// recognizes degrade to Source "Unknown" instead of failing.
//
// The engine is pure input to output: it keeps no state between calls, and
// Translator values are safe for concurrent use.
package resultcode
