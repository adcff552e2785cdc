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

// Package symbol defines canonical constant names for result codes.
//
// A symbol is the name a vendor header gives to a numeric code:
//
//   - "SCHED_S_TASK_RUNNING"  (Task Scheduler, success)
//   - "SCHED_E_ALREADY_RUNNING" (Task Scheduler, error)
//   - "ERROR_FILE_NOT_FOUND"  (Win32)
//
// Symbols are optional: the zero value ("") means no name is known. Names
// follow the winerror.h conventions, which lets Severity tell success names
// from failure names; the taxonomy uses that to reject entries whose
// success flag contradicts their name.
package symbol
