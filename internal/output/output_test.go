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

package output

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"dirpx.dev/resultcode"
	"dirpx.dev/resultcode/adapter"
	"dirpx.dev/resultcode/apis"
	"dirpx.dev/resultcode/hresult"
	"dirpx.dev/resultcode/internal/config"
	"dirpx.dev/resultcode/oserr"
	"dirpx.dev/resultcode/taxonomy"
)

func translate(t *testing.T, vs ...any) []apis.Result {
	t.Helper()
	tr, err := resultcode.New(resultcode.WithLookup(oserr.Win32()))
	require.NoError(t, err)
	rs, err := tr.TranslateAll(context.Background(), vs)
	require.NoError(t, err)
	return rs
}

func TestNew_UnsupportedFormat(t *testing.T) {
	t.Parallel()

	_, err := New(&bytes.Buffer{}, "xml", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
}

func TestResults_Text(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p, err := New(&buf, config.OutputText, false)
	require.NoError(t, err)

	rs := translate(t, "0x8004131F", "0x80070002", "bogus")
	require.NoError(t, p.Results(rs))

	out := buf.String()
	assert.Contains(t, out, "0x8004131F  SCHED_E_ALREADY_RUNNING  [DomainTaxonomy] failure")
	assert.Contains(t, out, "  An instance of this task is already running\n")
	assert.Contains(t, out, "0x80070002  ERROR_FILE_NOT_FOUND  [OSError] failure")
	assert.Contains(t, out, "  facility: FACILITY_WIN32\n")
	assert.Contains(t, out, "bogus  unparseable\n  Unable to parse result code\n")
	assert.NotContains(t, out, "\x1b[", "colors disabled")
}

func TestResults_TextAlternatives(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p, err := New(&buf, config.OutputText, false)
	require.NoError(t, err)

	ok := false
	rc := int64(0x80041300)
	fc := 4
	r := apis.Result{
		ResultCode:   &rc,
		HexCode:      "0x80041300",
		Message:      "primary",
		Source:       apis.SourceDomainTaxonomy,
		ConstantName: "SCHED_X",
		IsSuccess:    &ok,
		Facility:     "FACILITY_ITF",
		FacilityCode: &fc,
		Meanings: []apis.Meaning{
			{Source: apis.SourceDomainTaxonomy, ConstantName: "SCHED_X", Message: "primary"},
			{Source: apis.SourceOSError, ConstantName: "ERROR_Y", Message: "secondary"},
		},
	}
	require.NoError(t, p.Results([]apis.Result{r}))
	assert.Contains(t, buf.String(), "  also: ERROR_Y: secondary (OSError)\n")
}

func TestResults_Color(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p, err := New(&buf, config.OutputText, true)
	require.NoError(t, err)

	require.NoError(t, p.Results(translate(t, 0)))
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "ERROR_SUCCESS")
}

func TestResults_Structured(t *testing.T) {
	t.Parallel()

	rs := translate(t, "0x8004131F", "")

	tests := map[string]struct {
		format string
		decode func([]byte, any) error
	}{
		"json":    {format: config.OutputJSON, decode: json.Unmarshal},
		"yaml":    {format: config.OutputYAML, decode: yaml.Unmarshal},
		"msgpack": {format: config.OutputMsgpack, decode: msgpack.Unmarshal},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			p, err := New(&buf, tt.format, true)
			require.NoError(t, err)
			require.NoError(t, p.Results(rs))
			assert.NotContains(t, buf.String(), "\x1b[")

			var got []map[string]any
			require.NoError(t, tt.decode(buf.Bytes(), &got))
			require.Len(t, got, 1, "blank input produces no record")
			assert.Equal(t, "SCHED_E_ALREADY_RUNNING", got[0]["constant_name"])
			assert.Equal(t, "DomainTaxonomy", got[0]["source"])
			assert.Equal(t, false, got[0]["is_success"])
		})
	}
}

func TestViews_Text(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p, err := New(&buf, config.OutputText, false)
	require.NoError(t, err)

	rs := translate(t, 0x00041300, "nope")
	views := make([]apis.View, 0, len(rs))
	for _, r := range rs {
		views = append(views, adapter.ToView(r))
	}
	require.NoError(t, p.Views(views))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "0x00041300 success SCHED_S_TASK_READY The task is ready to run at its next scheduled time", lines[0])
	assert.Equal(t, "nope unknown Unable to parse result code", lines[1])
}

func TestEntries(t *testing.T) {
	t.Parallel()

	entries := taxonomy.Default().Filter("SCHED_E_ALREADY_RUNNING")
	require.NotEmpty(t, entries)

	var text bytes.Buffer
	p, err := New(&text, config.OutputText, false)
	require.NoError(t, err)
	require.NoError(t, p.Entries(entries))
	assert.Equal(t, "0x8004131F E SCHED_E_ALREADY_RUNNING  An instance of this task is already running\n", text.String())

	var js bytes.Buffer
	p, err = New(&js, config.OutputJSON, false)
	require.NoError(t, err)
	require.NoError(t, p.Entries(entries))

	var got []Entry
	require.NoError(t, json.Unmarshal(js.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, int64(0x8004131F), got[0].Code)
	assert.Equal(t, "0x8004131F", got[0].HexCode)
	assert.False(t, got[0].Success)
}

func TestFacilities(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p, err := New(&buf, config.OutputText, false)
	require.NoError(t, err)

	require.NoError(t, p.Facilities(hresult.Facilities()))
	assert.Contains(t, buf.String(), "    7  FACILITY_WIN32\n")
	assert.True(t, strings.HasPrefix(buf.String(), "    0  FACILITY_NULL\n"))
}

func TestExplain(t *testing.T) {
	t.Parallel()

	trace := "code=5 hex=0x00000005\ntier1: miss\nresult: source=OSError meanings=1\n"

	var text bytes.Buffer
	p, err := New(&text, config.OutputText, false)
	require.NoError(t, err)
	require.NoError(t, p.Explain("5", trace))
	assert.Equal(t, trace, text.String())

	var y bytes.Buffer
	p, err = New(&y, config.OutputYAML, false)
	require.NoError(t, err)
	require.NoError(t, p.Explain("5", trace))

	var got Trace
	require.NoError(t, yaml.Unmarshal(y.Bytes(), &got))
	assert.Equal(t, "5", got.Input)
	assert.Equal(t, []string{"code=5 hex=0x00000005", "tier1: miss", "result: source=OSError meanings=1"}, got.Lines)
}
