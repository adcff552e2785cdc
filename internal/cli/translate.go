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
	"bufio"
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"dirpx.dev/resultcode"
	"dirpx.dev/resultcode/adapter"
	"dirpx.dev/resultcode/apis"
	clierrors "dirpx.dev/resultcode/internal/errors"
)

type translateOptions struct {
	json        bool
	compact     bool
	failOnError bool
}

func newTranslateCmd(a *app) *cobra.Command {
	var opts translateOptions

	cmd := &cobra.Command{
		Use:     "translate [code...]",
		Aliases: []string{"t"},
		Short:   "Translate result codes",
		Long: `Translate one or more result codes.

Codes are decimal (267009, -2147024894) or hexadecimal (0x8004131F).
Without arguments, codes are read from stdin, one per line; with --json,
stdin holds a JSON value or array whose elements are numbers, strings or null.
Blank entries produce no output. Malformed entries produce a degraded record.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTranslate(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.json, "json", false, "read stdin as a JSON value or array")
	cmd.Flags().BoolVar(&opts.compact, "compact", false, "print one compact view per code")
	cmd.Flags().BoolVar(&opts.failOnError, "fail-on-error", false, "exit non-zero when a code is a failure")
	return cmd
}

func (a *app) runTranslate(cmd *cobra.Command, args []string, opts translateOptions) error {
	var inputs []any
	switch {
	case len(args) > 0:
		inputs = make([]any, len(args))
		for i, arg := range args {
			inputs[i] = arg
		}
	case opts.json:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return clierrors.WrapWithMessage(err, clierrors.Input, "reading stdin")
		}
		if inputs, err = jsonInputs(data); err != nil {
			return err
		}
	default:
		var err error
		if inputs, err = lineInputs(cmd.InOrStdin()); err != nil {
			return clierrors.WrapWithMessage(err, clierrors.Input, "reading stdin")
		}
	}
	if len(inputs) == 0 {
		return clierrors.NewArgumentErrorWithUsage("no result codes given", cmd.UseLine(),
			"pass codes as arguments", "or pipe them on stdin")
	}

	results, err := a.translator.TranslateAll(cmd.Context(), inputs)
	if err != nil {
		return clierrors.Wrap(err, clierrors.Runtime)
	}
	a.logger.Debug("translated batch", zap.Int("inputs", len(inputs)), zap.Int("results", len(results)))

	if opts.compact {
		views := make([]apis.View, 0, len(results))
		for _, r := range results {
			views = append(views, adapter.ToView(r))
		}
		err = a.printer.Views(views)
	} else {
		err = a.printer.Results(results)
	}
	if err != nil {
		return clierrors.Wrap(err, clierrors.Runtime)
	}

	if opts.failOnError {
		for _, r := range results {
			if r.Known() && !r.Success() {
				return resultcode.E(r, resultcode.WithOpOption("translate"))
			}
		}
	}
	return nil
}

func lineInputs(r io.Reader) ([]any, error) {
	var out []any
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	return out, sc.Err()
}

// jsonInputs accepts a single JSON value or an array of values. Numbers keep
// their literal text so that 64-bit codes survive unchanged.
func jsonInputs(data []byte) ([]any, error) {
	if !gjson.ValidBytes(data) {
		return nil, &clierrors.CLIError{
			Category:    clierrors.Input,
			Message:     "stdin is not valid JSON",
			Remediation: []string{`pass an array such as [267009, "0x8004131F", null]`},
		}
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return []any{jsonValue(root)}, nil
	}
	var out []any
	root.ForEach(func(_, v gjson.Result) bool {
		out = append(out, jsonValue(v))
		return true
	})
	return out, nil
}

func jsonValue(v gjson.Result) any {
	switch v.Type {
	case gjson.Null:
		return nil
	case gjson.Number:
		return json.Number(v.Raw)
	case gjson.String:
		return v.Str
	default:
		return v.Raw
	}
}
