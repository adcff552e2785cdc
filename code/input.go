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
	"encoding/json"
	"fmt"
	"strings"
)

// Kind classifies a raw input value before normalization.
type Kind uint8

const (
	// KindNone is nil, "" or a whitespace-only string.
	KindNone Kind = iota
	// KindSigned is any native signed integer.
	KindSigned
	// KindUnsigned is any native unsigned integer.
	KindUnsigned
	// KindDecimal is a string without a hex prefix.
	KindDecimal
	// KindHex is a string matching ^0[xX][0-9a-fA-F]+$.
	KindHex
	// KindUnsupported is any other Go value.
	KindUnsupported
)

var kindNames = [...]string{
	KindNone:        "none",
	KindSigned:      "signed",
	KindUnsigned:    "unsigned",
	KindDecimal:     "decimal",
	KindHex:         "hex",
	KindUnsupported: "unsupported",
}

// String returns a short lowercase name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Input is a raw result code classified into one of the supported shapes.
//
// Exactly one of the payload fields is meaningful, selected by Kind:
//
//	KindSigned   -> Signed
//	KindUnsigned -> Unsigned
//	KindDecimal  -> Text
//	KindHex      -> Text
//
// KindNone and KindUnsupported carry no payload; Raw always holds the
// original value for diagnostics.
type Input struct {
	Kind     Kind
	Signed   int64
	Unsigned uint64
	Text     string
	Raw      any
}

// Of classifies v. It never fails: values that cannot possibly be a result
// code are reported as KindUnsupported and rejected later by Input.Code.
func Of(v any) Input {
	switch x := v.(type) {
	case nil:
		return Input{Kind: KindNone}
	case Code:
		return Input{Kind: KindSigned, Signed: int64(x), Raw: v}
	case int:
		return Input{Kind: KindSigned, Signed: int64(x), Raw: v}
	case int8:
		return Input{Kind: KindSigned, Signed: int64(x), Raw: v}
	case int16:
		return Input{Kind: KindSigned, Signed: int64(x), Raw: v}
	case int32:
		return Input{Kind: KindSigned, Signed: int64(x), Raw: v}
	case int64:
		return Input{Kind: KindSigned, Signed: x, Raw: v}
	case uint:
		return Input{Kind: KindUnsigned, Unsigned: uint64(x), Raw: v}
	case uint8:
		return Input{Kind: KindUnsigned, Unsigned: uint64(x), Raw: v}
	case uint16:
		return Input{Kind: KindUnsigned, Unsigned: uint64(x), Raw: v}
	case uint32:
		return Input{Kind: KindUnsigned, Unsigned: uint64(x), Raw: v}
	case uint64:
		return Input{Kind: KindUnsigned, Unsigned: x, Raw: v}
	case uintptr:
		return Input{Kind: KindUnsigned, Unsigned: uint64(x), Raw: v}
	case json.Number:
		return ofString(string(x), v)
	case string:
		return ofString(x, v)
	case *string:
		if x == nil {
			return Input{Kind: KindNone}
		}
		return ofString(*x, v)
	default:
		return Input{Kind: KindUnsupported, Raw: v}
	}
}

func ofString(s string, raw any) Input {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return Input{Kind: KindNone, Raw: raw}
	case hexRe.MatchString(s):
		return Input{Kind: KindHex, Text: s, Raw: raw}
	default:
		return Input{Kind: KindDecimal, Text: s, Raw: raw}
	}
}

// Code normalizes the input into a Code.
//
// KindNone yields ErrNoInput; KindUnsupported and malformed text yield an
// error wrapping ErrCodeInvalid. Unsigned values are reinterpreted as the
// int64 bit pattern, exactly like hex text: uint64(math.MaxUint64) and
// "0xFFFFFFFFFFFFFFFF" both yield -1.
func (in Input) Code() (Code, error) {
	switch in.Kind {
	case KindNone:
		return 0, ErrNoInput
	case KindSigned:
		return Code(in.Signed), nil
	case KindUnsigned:
		// Same bit reinterpretation as a 16-digit hex string.
		return Code(int64(in.Unsigned)), nil
	case KindDecimal, KindHex:
		return ParseString(in.Text)
	case KindUnsupported:
		return 0, fmt.Errorf("%w: unsupported type %T", ErrCodeInvalid, in.Raw)
	default:
		return 0, fmt.Errorf("%w: unknown input kind %s", ErrCodeInvalid, in.Kind)
	}
}

// String renders the raw input for logs and degraded results.
func (in Input) String() string {
	switch in.Kind {
	case KindNone:
		return ""
	case KindSigned:
		return fmt.Sprint(in.Signed)
	case KindUnsigned:
		return fmt.Sprint(in.Unsigned)
	case KindDecimal, KindHex:
		return in.Text
	default:
		return fmt.Sprintf("%v", in.Raw)
	}
}
