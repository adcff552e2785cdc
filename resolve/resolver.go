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
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"dirpx.dev/resultcode/apis"
	"dirpx.dev/resultcode/code"
	"dirpx.dev/resultcode/hresult"
	"dirpx.dev/resultcode/oserr"
	"dirpx.dev/resultcode/taxonomy"
)

const (
	// maxDirectCode is the upper bound of Tier 3.
	maxDirectCode = 65535

	successName    = "ERROR_SUCCESS"
	successMessage = "The operation completed successfully"
)

// ErrNoTaxonomy is returned by New when WithTaxonomy(nil) was given.
var ErrNoTaxonomy = errors.New("resolve: nil taxonomy store")

// New constructs an immutable Resolver snapshot.
//
// Build process overview:
//
//  1. Seed the builder with package defaults (bundled taxonomy, system
//     lookup, no-op logger).
//  2. Apply user-provided options.
//  3. Validate: a taxonomy store is mandatory.
//  4. Freeze: a nil lookup becomes oserr.None, a nil logger zap.NewNop, the
//     lookup is wrapped with oserr.Safe and the optional apis.Namer
//     capability is detected once.
func New(opts ...Option) (*Resolver, error) {
	// (1) Defaults.
	b := newBuilder()

	// (2) User options.
	for _, opt := range opts {
		opt(b)
	}

	// (3) Validation.
	if b.store == nil {
		return nil, ErrNoTaxonomy
	}

	// (4) Freeze.
	r := &Resolver{
		store: b.store,
		log:   b.logger,
	}
	if r.log == nil {
		r.log = zap.NewNop()
	}
	lookup := b.lookup
	if lookup == nil {
		lookup = oserr.None
	}
	_, r.named = lookup.(apis.Namer)
	r.lookup = oserr.Safe(lookup, func(osCode uint32, rec any) {
		r.log.Warn("os error lookup panicked",
			zap.Uint32("code", osCode),
			zap.Any("panic", rec),
		)
	})
	return r, nil
}

// Resolver applies the four resolution tiers. It is immutable after New and
// safe for concurrent use.
type Resolver struct {
	// store is the domain taxonomy (Tier 1).
	store *taxonomy.Store

	// lookup is the panic-guarded OS-error lookup (Tiers 2 and 3).
	lookup *oserr.Guarded

	// named reports whether the wrapped lookup implements apis.Namer.
	named bool

	log *zap.Logger
}

// Taxonomy returns the store consulted by Tier 1.
func (r *Resolver) Taxonomy() *taxonomy.Store { return r.store }

// Resolve returns every distinct interpretation of c in tier-priority order.
// p must be hresult.Decompose(c). The result may be empty, never nil.
func (r *Resolver) Resolve(c code.Code, p hresult.Parts) []apis.Meaning {
	out := r.run(c, p, nil)
	r.log.Debug("result code resolved",
		zap.String("hex", c.Hex()),
		zap.Int("meanings", len(out)),
	)
	return out
}

// Explain produces a textual trace of how the resolver handled c.
//
// Example output:
//
//	code=2147942402 hex=0x80070002
//	hresult: 0x80070002 severity=failure facility=FACILITY_WIN32(7) code=2
//	tier1: miss
//	tier2: source=os code=2 -> ERROR_FILE_NOT_FOUND "The system cannot find the file specified."
//	tier3: skipped (out of range)
//	tier4: skipped (code!=0)
//	result: source=OSError meanings=1
func (r *Resolver) Explain(c code.Code) string {
	p := hresult.Decompose(c)

	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "code=%d hex=%s\n", int64(c), c.Hex())
	_, _ = fmt.Fprintf(&b, "hresult: %s\n", p)

	out := r.run(c, p, &b)

	src := apis.SourceUnknown
	if len(out) > 0 {
		src = out[0].Source
	}
	_, _ = fmt.Fprintf(&b, "result: source=%s meanings=%d", src, len(out))
	return b.String()
}

// run is the shared tier pipeline. When tr is non-nil every tier writes one
// trace line to it.
func (r *Resolver) run(c code.Code, p hresult.Parts, tr *strings.Builder) []apis.Meaning {
	var (
		m  collector
		v  = int64(c)
		t1 bool
	)
	trace := func(format string, args ...any) {
		if tr != nil {
			_, _ = fmt.Fprintf(tr, format+"\n", args...)
		}
	}

	// Tier 1: domain taxonomy.
	if e, key := r.store.LookupKey(c); key != taxonomy.KeyNone {
		t1 = true
		m.add(apis.Meaning{
			Source:       apis.SourceDomainTaxonomy,
			ConstantName: e.Name.String(),
			Message:      e.Message,
			IsSuccess:    e.Success,
		})
		trace("tier1: source=taxonomy key=%s -> %s", key, e.Name)
	} else {
		trace("tier1: miss")
	}

	// Tier 2: FACILITY_WIN32.
	if p.Facility != hresult.FacilityWin32 {
		trace("tier2: skipped (facility=%d)", p.Facility)
	} else {
		osCode := uint32(p.Code)
		msg, ok := r.message(osCode)
		switch {
		case !ok:
			trace("tier2: miss (code=%d)", osCode)
		default:
			mean := apis.Meaning{
				Source:       apis.SourceOSError,
				ConstantName: r.name(osCode),
				Message:      msg,
				IsSuccess:    !p.IsFailure,
			}
			if m.add(mean) {
				trace("tier2: source=os code=%d -> %s", osCode, describe(mean))
			} else {
				trace("tier2: duplicate (code=%d)", osCode)
			}
		}
	}

	// Tier 3: bare small codes.
	switch {
	case t1:
		trace("tier3: skipped (tier1 matched)")
	case v < 1 || v > maxDirectCode:
		trace("tier3: skipped (out of range)")
	default:
		osCode := uint32(v)
		msg, ok := r.message(osCode)
		switch {
		case !ok:
			trace("tier3: miss (code=%d)", osCode)
		case strings.TrimSpace(msg) == strconv.FormatInt(v, 10):
			trace("tier3: rejected (message restates code)")
		default:
			mean := apis.Meaning{
				Source:       apis.SourceOSError,
				ConstantName: r.name(osCode),
				Message:      msg,
				IsSuccess:    v == 0,
			}
			if m.add(mean) {
				trace("tier3: source=os code=%d -> %s", osCode, describe(mean))
			} else {
				trace("tier3: duplicate (code=%d)", osCode)
			}
		}
	}

	// Tier 4: synthesized success.
	switch {
	case v != 0:
		trace("tier4: skipped (code!=0)")
	case m.size() > 0:
		trace("tier4: skipped (meanings collected)")
	default:
		m.add(apis.Meaning{
			Source:       apis.SourceOSError,
			ConstantName: successName,
			Message:      successMessage,
			IsSuccess:    true,
		})
		trace("tier4: synthesized -> %s", successName)
	}

	return m.list()
}

// message consults the lookup, treating panics and blank messages as misses.
func (r *Resolver) message(osCode uint32) (string, bool) {
	msg, ok := r.lookup.Message(osCode)
	if !ok || strings.TrimSpace(msg) == "" {
		return "", false
	}
	return msg, true
}

// name returns the constant name of an OS code, or "".
func (r *Resolver) name(osCode uint32) string {
	if !r.named {
		return ""
	}
	if n, ok := r.lookup.Name(osCode); ok {
		return n
	}
	return ""
}

// describe renders a meaning for the trace.
func describe(m apis.Meaning) string {
	if m.ConstantName == "" {
		return strconv.Quote(m.Message)
	}
	return m.ConstantName + " " + strconv.Quote(m.Message)
}
