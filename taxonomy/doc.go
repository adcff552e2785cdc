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

// Package taxonomy holds the domain-specific result-code table.
//
// The bundled taxonomy is the Windows Task Scheduler status set
// (SCHED_S_* success codes and SCHED_E_* error codes). It is the first
// and highest-precedence authority consulted by the resolver.
//
// A Store is an immutable snapshot. Default returns the process-wide
// Task Scheduler store, built once at package initialization; New builds
// additional stores, for example to extend or replace the bundled table in
// tests. Lookups accept both the unsigned HRESULT form of an error code
// (2147750687) and its signed 32-bit form (-2147216609).
package taxonomy
