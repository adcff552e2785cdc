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

package errors

import (
	"bytes"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategory_String(t *testing.T) {
	t.Parallel()

	tests := map[Category]string{
		Argument:      "Argument Error",
		Configuration: "Configuration Error",
		Input:         "Input Error",
		Runtime:       "Runtime Error",
		Category(99):  "Error",
	}
	for c, want := range tests {
		assert.Equal(t, want, c.String())
	}
}

func TestWrap(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Wrap(nil, Runtime))
	assert.Nil(t, WrapWithMessage(nil, Runtime, "x"))

	cause := stderrors.New("boom")
	err := WrapWithMessage(cause, Configuration, "loading config", "check the file")
	require.NotNil(t, err)
	assert.Equal(t, "loading config: boom", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, Configuration, err.Category)

	var cli *CLIError
	require.ErrorAs(t, error(Wrap(cause, Input)), &cli)
	assert.Equal(t, Input, cli.Category)
}

func TestFormatErrorPlain(t *testing.T) {
	t.Parallel()

	err := NewArgumentErrorWithUsage("missing result code", "resultcode translate <code>...",
		"pass at least one code", "or pipe codes on stdin")

	want := "Error [Argument Error]: missing result code\n" +
		"\nUsage: resultcode translate <code>...\n" +
		"\nTo fix this:\n" +
		"  • pass at least one code\n" +
		"  • or pipe codes on stdin\n"
	assert.Equal(t, want, FormatErrorPlain(err))
	assert.Empty(t, FormatErrorPlain(nil))
}

func TestFprintError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	FprintError(&buf, nil)
	assert.Empty(t, buf.String())

	FprintError(&buf, NewArgumentError("bad"))
	assert.Contains(t, buf.String(), "bad")
}
