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

import (
	"go.uber.org/zap"

	"dirpx.dev/resultcode/apis"
	"dirpx.dev/resultcode/taxonomy"
)

// Option configures the Resolver at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Resolver.
type Option func(*builder)

// WithTaxonomy replaces the domain taxonomy consulted by Tier 1.
// The default is taxonomy.Default(). A nil store is rejected by New.
func WithTaxonomy(s *taxonomy.Store) Option {
	return func(b *builder) { b.store = s }
}

// WithLookup sets the OS-error lookup consulted by Tiers 2 and 3.
// The default is oserr.System(). A nil lookup disables both tiers.
//
// If l also implements apis.Namer, OS meanings carry its constant names.
func WithLookup(l apis.Lookup) Option {
	return func(b *builder) { b.lookup = l }
}

// WithLogger sets the logger for tier decisions (debug) and lookup
// failures (warn). The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(b *builder) { b.logger = l }
}
