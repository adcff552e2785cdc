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
	"fmt"

	"github.com/spf13/cobra"

	"dirpx.dev/resultcode/apis"
	"dirpx.dev/resultcode/hresult"
	clierrors "dirpx.dev/resultcode/internal/errors"
	"dirpx.dev/resultcode/symbol"
	"dirpx.dev/resultcode/taxonomy"
)

func newListCmd(a *app) *cobra.Command {
	var (
		prefix      string
		onlySuccess bool
		onlyErrors  bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the Task Scheduler status taxonomy",
		Args:  exactArgs(0, "arguments"),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if onlySuccess && onlyErrors {
				return clierrors.NewArgumentErrorWithUsage("--success and --errors are mutually exclusive", cmd.UseLine())
			}
			entries := taxonomy.Default().Filter(prefix)
			filtered := entries[:0:0]
			for _, e := range entries {
				if (onlySuccess && !e.Success) || (onlyErrors && e.Success) {
					continue
				}
				filtered = append(filtered, e)
			}
			return wrapRuntime(a.printer.Entries(filtered))
		},
	}

	cmd.Flags().StringVarP(&prefix, "prefix", "p", "", "only names starting with these segments, e.g. SCHED_E")
	cmd.Flags().BoolVar(&onlySuccess, "success", false, "only success codes")
	cmd.Flags().BoolVar(&onlyErrors, "errors", false, "only error codes")
	return cmd
}

func newFacilitiesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "facilities",
		Short: "List known HRESULT facilities",
		Args:  exactArgs(0, "arguments"),
		RunE: func(*cobra.Command, []string) error {
			return wrapRuntime(a.printer.Facilities(hresult.Facilities()))
		},
	}
}

func newNameCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "name <SYMBOL>",
		Short: "Translate a taxonomy constant by name",
		Long: `Look up a Task Scheduler constant by name and translate its code.
Names are case-insensitive: sched_e_already_running works.`,
		Args: exactArgs(1, "constant name"),
		RunE: func(cmd *cobra.Command, args []string) error {
			sym, err := symbol.Parse(args[0])
			if err != nil {
				return clierrors.NewArgumentErrorWithUsage(err.Error(), cmd.UseLine())
			}
			entry, ok := taxonomy.Default().ByName(sym)
			if !ok {
				return clierrors.NewArgumentError(fmt.Sprintf("unknown constant %s", sym),
					"run `resultcode list` to see every known constant")
			}
			r, _ := a.translator.Translate(entry.Code)
			return wrapRuntime(a.printer.Results([]apis.Result{r}))
		},
	}
}

func wrapRuntime(err error) error {
	if err == nil {
		return nil
	}
	return clierrors.Wrap(err, clierrors.Runtime)
}
