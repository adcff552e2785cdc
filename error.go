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
	"fmt"

	"dirpx.dev/resultcode/apis"
)

// Error is a failing result code promoted to a Go error.
//
// It carries:
//   - Result: the full translation of the code (required);
//   - Op: what produced the code, e.g. a task path (optional);
//   - Details: arbitrary key/value payload for logs and transports;
//   - Cause: wrapped underlying error for errors.Is / errors.As.
//
// All mutation helpers (WithX) return a shallow copy, so Error instances
// can be safely shared and modified in a functional style.
type Error struct {
	// Result is the translation of the failing code.
	Result apis.Result

	// Op names the operation or task that reported the code.
	Op string

	// Details is an optional, shallow map of extra fields. The map is
	// treated as immutable: WithDetail always copies it.
	Details map[string]any

	// Cause holds the wrapped underlying error (if any).
	Cause error
}

// ErrorOption is a functional option for constructing an Error.
// It always takes an *Error and returns a (possibly new) *Error.
type ErrorOption func(*Error) *Error

// WithOpOption sets Op on the error being constructed.
func WithOpOption(op string) ErrorOption {
	return func(e *Error) *Error { return e.WithOp(op) }
}

// WithDetailOption adds a single detail key/value on construction.
func WithDetailOption(k string, v any) ErrorOption {
	return func(e *Error) *Error { return e.WithDetail(k, v) }
}

// WithCauseOption attaches a cause on construction.
func WithCauseOption(err error) ErrorOption {
	return func(e *Error) *Error { return e.WithCause(err) }
}

// E is a convenience constructor for Error.
//
// It always returns a *new* Error and applies all provided options in order.
func E(r apis.Result, opts ...ErrorOption) *Error {
	e := &Error{Result: r}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// Check translates v and returns an *Error unless the code is a success.
//
// Nothing-to-translate input yields nil. Malformed input yields an *Error
// whose Result is the degraded parse-failure result.
//
//	if err := tr.Check(lastResult, resultcode.WithOpOption(`\Backup\Nightly`)); err != nil {
//	    return err
//	}
func (t *Translator) Check(v any, opts ...ErrorOption) error {
	r, ok := t.Translate(v)
	if !ok || r.Success() {
		return nil
	}
	return E(r, opts...)
}

// Check is Translator.Check on the Default translator.
func Check(v any, opts ...ErrorOption) error { return Default().Check(v, opts...) }

// Error implements the built-in error interface.
//
// The format is:
//
//	[<op>: ]<name> (<hex>): <message>
//
// <name> falls back to the source when the code has no constant name, and
// "(<hex>)" is omitted for input that could not be parsed.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	r := e.Result
	name := r.ConstantName
	if name == "" {
		name = r.Source.String()
	}
	s := name
	if r.HexCode != "" {
		s = fmt.Sprintf("%s (%s)", name, r.HexCode)
	}
	s += ": " + r.Message
	if e.Op != "" {
		s = e.Op + ": " + s
	}
	return s
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (e *Error) Unwrap() error { return e.Cause }

// ResultCode returns the normalized code, or 0 for unparsed input.
// Transports use it to recognize result-code errors.
func (e *Error) ResultCode() int64 { return e.Result.Code() }

// Translation returns the translated result. Transports use it to build
// their own error payloads.
func (e *Error) Translation() apis.Result { return e.Result }

// WithOp returns a shallow copy of e with Op set.
func (e *Error) WithOp(op string) *Error {
	cp := *e
	cp.Op = op
	return &cp
}

// WithDetail returns a shallow copy of e with one extra key/value in Details.
//
// The method always copies the map to preserve immutability.
func (e *Error) WithDetail(k string, v any) *Error {
	cp := *e
	m := make(map[string]any, len(cp.Details)+1)
	for k0, v0 := range cp.Details {
		m[k0] = v0
	}
	m[k] = v
	cp.Details = m
	return &cp
}

// WithCause returns a shallow copy of e with the given underlying cause attached.
// If err is nil, the original error is returned unchanged.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}
