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
	"github.com/spf13/cobra"

	clierrors "dirpx.dev/resultcode/internal/errors"
)

func newExplainCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "explain <code>",
		Short: "Show how a result code is resolved, tier by tier",
		Args:  exactArgs(1, "result code"),
		RunE: func(cmd *cobra.Command, args []string) error {
			trace, err := a.translator.Explain(args[0])
			if err != nil {
				return clierrors.NewArgumentErrorWithUsage(err.Error(), cmd.UseLine(),
					"use a decimal (267009) or hexadecimal (0x8004131F) code")
			}
			if err := a.printer.Explain(args[0], trace); err != nil {
				return clierrors.Wrap(err, clierrors.Runtime)
			}
			return nil
		},
	}
}
