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

// Package hresult decomposes result codes using the HRESULT bit layout and
// names their facilities.
//
// Decomposition always operates on the low 32 bits of a normalized
// code.Code. It is computed for every parsed code, whether or not any
// taxonomy recognizes it, because both the resolver's tier gating and the
// final facility display depend on it.
package hresult
