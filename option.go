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

package resultcode

import (
	"go.uber.org/zap"

	"dirpx.dev/resultcode/apis"
	"dirpx.dev/resultcode/resolve"
	"dirpx.dev/resultcode/taxonomy"
)

// Option is a functional option for constructing a Translator.
type Option func(*builder)

type builder struct {
	// logger receives parse failures (warn) and is handed to the resolver.
	logger *zap.Logger
	// jobs bounds TranslateAll parallelism; <= 0 means GOMAXPROCS.
	jobs int
	// resolve collects the options forwarded to resolve.New.
	resolve []resolve.Option
}

func newBuilder() *builder {
	return &builder{logger: zap.NewNop()}
}

// WithLogger sets the logger used by the Translator and its resolver.
func WithLogger(l *zap.Logger) Option {
	return func(b *builder) {
		if l == nil {
			l = zap.NewNop()
		}
		b.logger = l
		b.resolve = append(b.resolve, resolve.WithLogger(l))
	}
}

// WithJobs bounds the number of goroutines TranslateAll uses.
// Zero or a negative value selects runtime.GOMAXPROCS(0).
func WithJobs(n int) Option {
	return func(b *builder) { b.jobs = n }
}

// WithLookup sets the OS-error lookup. See resolve.WithLookup.
func WithLookup(l apis.Lookup) Option {
	return func(b *builder) { b.resolve = append(b.resolve, resolve.WithLookup(l)) }
}

// WithTaxonomy replaces the domain taxonomy. See resolve.WithTaxonomy.
func WithTaxonomy(s *taxonomy.Store) Option {
	return func(b *builder) { b.resolve = append(b.resolve, resolve.WithTaxonomy(s)) }
}
