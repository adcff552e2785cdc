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
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"dirpx.dev/resultcode/apis"
	"dirpx.dev/resultcode/code"
	"dirpx.dev/resultcode/hresult"
	"dirpx.dev/resultcode/resolve"
)

const (
	// ParseFailureMessage is the Message of a result built from input that
	// could not be parsed.
	ParseFailureMessage = "Unable to parse result code"

	// UnknownMessagePrefix starts the Message of a parsed code that no
	// authority recognized. The hex code follows.
	UnknownMessagePrefix = "Unknown result code: "
)

// Translator turns raw result codes into apis.Result values.
//
// A Translator is immutable after New and safe for concurrent use.
type Translator struct {
	resolver *resolve.Resolver
	log      *zap.Logger
	jobs     int
}

var _ apis.Translator = (*Translator)(nil)

// New builds a Translator.
//
// Without options it consults the bundled Task Scheduler taxonomy and the
// platform OS-error lookup (oserr.System), logs nothing and runs batches
// with GOMAXPROCS goroutines.
func New(opts ...Option) (*Translator, error) {
	b := newBuilder()
	for _, opt := range opts {
		opt(b)
	}

	r, err := resolve.New(b.resolve...)
	if err != nil {
		return nil, fmt.Errorf("resultcode: %w", err)
	}

	jobs := b.jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	return &Translator{resolver: r, log: b.logger, jobs: jobs}, nil
}

var defaultTranslator = sync.OnceValue(func() *Translator {
	t, err := New()
	if err != nil {
		panic(err)
	}
	return t
})

// Default returns the process-wide Translator built with no options.
func Default() *Translator { return defaultTranslator() }

// Translate translates v with the Default translator.
func Translate(v any) (apis.Result, bool) { return Default().Translate(v) }

// Resolver returns the resolver behind t.
func (t *Translator) Resolver() *resolve.Resolver { return t.resolver }

// Translate translates one raw result code.
//
// The boolean is false only for "nothing to translate" input (nil, empty
// or whitespace-only); in that case no record exists and the Result is the
// zero value. Malformed input is not an error: it yields a degraded Result
// whose Message is ParseFailureMessage.
func (t *Translator) Translate(v any) (apis.Result, bool) {
	in := code.Of(v)
	c, err := in.Code()
	switch {
	case errors.Is(err, code.ErrNoInput):
		return apis.Result{}, false
	case err != nil:
		t.log.Warn("unable to parse result code",
			zap.String("input", in.String()),
			zap.Stringer("kind", in.Kind),
			zap.Error(err),
		)
		return parseFailure(in.String()), true
	}
	return t.assemble(c), true
}

// TranslateAll translates vs with bounded parallelism.
//
// The output preserves input order; inputs with nothing to translate
// produce no record, so the output may be shorter than vs. The only error
// is ctx's, in which case no results are returned.
func (t *Translator) TranslateAll(ctx context.Context, vs []any) ([]apis.Result, error) {
	if len(vs) == 0 {
		return []apis.Result{}, ctx.Err()
	}

	// Each goroutine owns exactly one slot, no mutex needed.
	slots := make([]apis.Result, len(vs))
	present := make([]bool, len(vs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(t.jobs, len(vs)))

	for i, v := range vs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			slots[i], present[i] = t.Translate(v)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]apis.Result, 0, len(vs))
	for i, ok := range present {
		if ok {
			out = append(out, slots[i])
		}
	}
	return out, nil
}

// Explain returns the resolver trace for v.
func (t *Translator) Explain(v any) (string, error) {
	c, err := code.Parse(v)
	if err != nil {
		return "", err
	}
	return t.resolver.Explain(c), nil
}

// assemble builds the Result of a parsed code.
//
// Steps:
//
//  1. Decompose the low 32 bits into severity and facility.
//  2. Collect the meanings of every resolution tier.
//  3. Mirror Meanings[0] at the top level, or fall back to Unknown with
//     the severity bit as a best-effort success flag.
func (t *Translator) assemble(c code.Code) apis.Result {
	// (1)
	p := hresult.Decompose(c)

	// (2)
	meanings := t.resolver.Resolve(c, p)

	v := c.Int64()
	fc := int(p.Facility)
	r := apis.Result{
		ResultCode:   &v,
		HexCode:      c.Hex(),
		Facility:     hresult.FacilityName(p.Facility),
		FacilityCode: &fc,
		Meanings:     meanings,
	}

	// (3)
	if len(meanings) > 0 {
		m := meanings[0]
		ok := m.IsSuccess
		r.Message = m.Message
		r.Source = m.Source
		r.ConstantName = m.ConstantName
		r.IsSuccess = &ok
		return r
	}
	ok := !p.IsFailure
	r.Message = UnknownMessagePrefix + r.HexCode
	r.Source = apis.SourceUnknown
	r.IsSuccess = &ok
	return r
}

func parseFailure(input string) apis.Result {
	return apis.Result{
		Input:    input,
		Message:  ParseFailureMessage,
		Source:   apis.SourceUnknown,
		Meanings: []apis.Meaning{},
	}
}
