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

package code

import (
	"bytes"
	"encoding"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"fortio.org/safecast"
)

// Code is the canonical, normalized representation of a result code.
//
// It is defined as a separate type (not just int64) so that other packages
// can explicitly declare that they expect a normalized value and to avoid
// accidental mixing of raw user input with normalized values.
type Code int64

const (
	// hexFmt is the regular expression a string must match to be read as
	// base 16. The 0x / 0X prefix is mandatory: a string such as "ABCD" is
	// never treated as hexadecimal.
	hexFmt = `^0[xX][0-9a-fA-F]+$`

	// MaxHexDigits is the widest hex literal accepted by Parse. Sixteen
	// digits cover the full 64-bit two's-complement range.
	MaxHexDigits = 16
)

var (
	// hexRe is the compiled form of hexFmt.
	hexRe = regexp.MustCompile(hexFmt)
)

var (
	// ErrNoInput is returned when there is nothing to translate: nil, the
	// empty string or a whitespace-only string.
	//
	// It is deliberately distinct from ErrCodeInvalid. Callers must be able
	// to tell "nothing to translate" apart from "malformed input".
	ErrNoInput = errors.New("resultcode: no input")

	// ErrCodeInvalid is returned when a value cannot be parsed as a result
	// code: malformed strings, out-of-range unsigned integers and
	// unsupported Go types.
	ErrCodeInvalid = errors.New("resultcode: invalid result code")
)

// Ensure Code implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into larger config or API structs.
var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// Parse normalizes an arbitrary value into a Code.
//
// Supported inputs are native signed and unsigned integers of any width,
// decimal strings and 0x-prefixed hex strings. See Of for the exact set of
// accepted Go types.
func Parse(v any) (Code, error) {
	return Of(v).Code()
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level values in var blocks and tests.
func MustParse(v any) Code {
	c, err := Parse(v)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseString normalizes a textual result code.
//
// Rules:
//
//   - empty or whitespace-only input yields ErrNoInput;
//   - a string matching ^0[xX][0-9a-fA-F]+$ is read as base 16 and the
//     resulting bits are reinterpreted as int64, so "0xFFFFFFFFFFFFFFFF"
//     is -1;
//   - anything else is read as base 10; a failure yields ErrCodeInvalid.
//
// Surrounding whitespace is trimmed before matching.
func ParseString(s string) (Code, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrNoInput
	}
	if hexRe.MatchString(s) {
		return parseHex(s[2:])
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a decimal integer", ErrCodeInvalid, s)
	}
	return Code(n), nil
}

// parseHex parses the digits after the 0x prefix.
func parseHex(digits string) (Code, error) {
	// Leading zeros do not count towards the width limit: "0x00041301" is a
	// perfectly fine 32-bit value.
	significant := strings.TrimLeft(digits, "0")
	if len(significant) > MaxHexDigits {
		return 0, fmt.Errorf("%w: hex value 0x%s is wider than 64 bits", ErrCodeInvalid, digits)
	}
	if significant == "" {
		return 0, nil
	}
	u, err := strconv.ParseUint(significant, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrCodeInvalid, err)
	}
	return Code(int64(u)), nil
}

// Int64 returns the code as a plain int64.
func (c Code) Int64() int64 { return int64(c) }

// Low32 returns the low 32 bits of the code. HRESULT decomposition always
// works on this view.
func (c Code) Low32() uint32 { return uint32(c) }

// FitsInt32 reports whether the code is representable as a signed 32-bit
// integer without loss.
func (c Code) FitsInt32() bool {
	_, err := safecast.Conv[int32](int64(c))
	return err == nil
}

// Hex renders the code as "0x" followed by uppercase hex digits:
//
//   - non-negative values use at least 8 digits of the value itself;
//   - negative values within int32 range use the 8-digit two's complement
//     (so -1 is "0xFFFFFFFF");
//   - more negative values use the 16-digit two's complement.
func (c Code) Hex() string {
	v := int64(c)
	switch {
	case v >= 0:
		return fmt.Sprintf("0x%08X", v)
	case v >= math.MinInt32:
		return fmt.Sprintf("0x%08X", uint32(v))
	default:
		return fmt.Sprintf("0x%016X", uint64(v))
	}
}

// String returns the decimal representation of the code.
func (c Code) String() string {
	return strconv.FormatInt(int64(c), 10)
}

// MarshalText implements encoding.TextMarshaler.
//
// It always returns the decimal representation.
func (c Code) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It accepts both the decimal and the 0x-prefixed hex forms. Empty text is
// rejected with ErrNoInput.
func (c *Code) UnmarshalText(text []byte) error {
	parsed, err := ParseString(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
