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

// Package code provides parsing and normalization of raw result codes.
//
// A result code reaches resultcode in many shapes: a native integer of any
// width (task engines report int32, WMI reports uint32, some shells report
// int64), a decimal string, or a 0x-prefixed hex string copied from a log.
// This package turns all of them into a single canonical signed 64-bit
// value, Code.
//
// Classification happens in two steps. Of maps an arbitrary value onto the
// Input tagged union without any reflection; Input.Code then normalizes it.
// Two sentinel errors describe the outcome when normalization is not
// possible:
//
//   - ErrNoInput: nil or blank input, nothing to translate;
//   - ErrCodeInvalid: malformed or unsupported input.
//
// IMPORTANT: a string is only read as hexadecimal when it carries the 0x or
// 0X prefix. "41301" is decimal forty-one thousand three hundred and one.
package code
