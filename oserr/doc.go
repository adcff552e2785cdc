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

// Package oserr provides implementations of apis.Lookup, the OS-error-lookup
// capability consulted by Tiers 2 and 3 of the resolver.
//
// Four building blocks are available:
//
//   - Win32 returns the bundled table of common Win32 error codes. It is
//     platform independent and also implements apis.Namer, so OS meanings
//     resolved through it carry a constant name (ERROR_FILE_NOT_FOUND).
//   - System returns the platform lookup. On Windows it asks the operating
//     system (FormatMessageW) and falls back to the bundled table; on other
//     platforms it is the bundled table.
//   - Chain consults several lookups in order.
//   - Safe turns panics raised by a lookup into misses.
//
// None is a lookup that never knows anything; it disables Tiers 2 and 3.
package oserr
