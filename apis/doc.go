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

// Package apis defines the public Go-level contracts of resultcode.
//
// The goal of this package is to provide *small, composable* types that the
// other resultcode packages (resolver, translator, HTTP and gRPC adapters)
// and callers can share without importing each other:
//
//   - Lookup / Namer: the injected OS-error-lookup capability;
//   - Source / Meaning: one candidate interpretation of a code;
//   - Result: the structured translation of one input;
//   - Translator: the engine surface adapters depend on;
//   - Descriptor / View: flat, transport-friendly projections.
//
// This package must remain lightweight and should not introduce heavy
// dependencies. It only depends on the standard library.
package apis
