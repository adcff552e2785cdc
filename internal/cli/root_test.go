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

package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"dirpx.dev/resultcode"
	"dirpx.dev/resultcode/apis"
	"dirpx.dev/resultcode/internal/config"
	clierrors "dirpx.dev/resultcode/internal/errors"
)

// execute runs a fresh command tree with no user config and no colors.
func execute(t *testing.T, stdin string, args ...string) (stdout, stderr string, code int) {
	t.Helper()

	cmd := newRootCommand(&app{loadOptions: config.LoadOptions{SkipUser: true}})
	var out, errb bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errb)
	cmd.SetIn(strings.NewReader(stdin))

	code = run(cmd, append([]string{"--no-color"}, args...), &errb)
	return out.String(), errb.String(), code
}

func TestRootCmd_Structure(t *testing.T) {
	t.Parallel()

	cmd := NewRootCommand()
	assert.Equal(t, "resultcode", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.NotEmpty(t, cmd.Example)

	names := make([]string, 0, len(cmd.Commands()))
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"translate", "explain", "list", "facilities", "name", "serve"}, names)
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		flagName  string
		shorthand string
	}{
		"config flag exists":   {flagName: "config", shorthand: "c"},
		"output flag exists":   {flagName: "output", shorthand: "o"},
		"lookup flag exists":   {flagName: "lookup"},
		"jobs flag exists":     {flagName: "jobs", shorthand: "j"},
		"verbose flag exists":  {flagName: "verbose", shorthand: "v"},
		"no-color flag exists": {flagName: "no-color"},
	}

	cmd := NewRootCommand()
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			flag := cmd.PersistentFlags().Lookup(tt.flagName)
			if assert.NotNil(t, flag, "Flag %s should exist", tt.flagName) {
				assert.Equal(t, tt.shorthand, flag.Shorthand)
			}
		})
	}
}

func TestRootCmd_ConfigErrors(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		args     []string
		wantCode int
		wantErr  string
	}{
		"missing config file": {
			args:     []string{"--config", "/nonexistent/resultcode.yml", "facilities"},
			wantCode: ExitConfiguration,
			wantErr:  "Configuration Error",
		},
		"bad output flag": {
			args:     []string{"--output", "xml", "facilities"},
			wantCode: ExitInvalidArguments,
			wantErr:  "output",
		},
		"bad lookup flag": {
			args:     []string{"--lookup", "remote", "facilities"},
			wantCode: ExitInvalidArguments,
			wantErr:  "lookup",
		},
		"negative jobs": {
			args:     []string{"--jobs", "-1", "facilities"},
			wantCode: ExitInvalidArguments,
			wantErr:  "jobs",
		},
		"unknown flag": {
			args:     []string{"--nope", "facilities"},
			wantCode: ExitInvalidArguments,
			wantErr:  "nope",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, stderr, code := execute(t, "", tt.args...)
			assert.Equal(t, tt.wantCode, code)
			assert.Contains(t, stderr, tt.wantErr)
		})
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	failure := resultcode.E(apis.Result{Source: apis.SourceDomainTaxonomy})

	tests := map[string]struct {
		err  error
		want int
	}{
		"nil":           {err: nil, want: ExitSuccess},
		"result error":  {err: failure, want: ExitFailureResult},
		"argument":      {err: clierrors.NewArgumentError("x"), want: ExitInvalidArguments},
		"configuration": {err: clierrors.Wrap(errors.New("x"), clierrors.Configuration), want: ExitConfiguration},
		"input":         {err: clierrors.Wrap(errors.New("x"), clierrors.Input), want: ExitInput},
		"runtime":       {err: clierrors.Wrap(errors.New("x"), clierrors.Runtime), want: ExitRuntime},
		"plain error":   {err: errors.New("x"), want: ExitRuntime},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}
