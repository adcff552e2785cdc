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

import "context"

// Translator is the engine surface transport adapters depend on.
// Implementations are immutable and safe for concurrent use.
type Translator interface {
	// Translate interprets a single value. The boolean is false when there
	// was nothing to translate (nil or blank input); in that case the
	// returned Result must be ignored.
	Translate(v any) (Result, bool)

	// TranslateAll translates a batch. Output order mirrors input order;
	// blank entries produce no record. The only error is a canceled ctx.
	TranslateAll(ctx context.Context, vs []any) ([]Result, error)
}
