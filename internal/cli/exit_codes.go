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
	"errors"

	"dirpx.dev/resultcode"
	clierrors "dirpx.dev/resultcode/internal/errors"
)

// Exit codes for the resultcode CLI.
// Scripts rely on these values; do not renumber.
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitFailureResult indicates a translated code is a failure
	// (translate --fail-on-error)
	ExitFailureResult = 1

	// ExitInvalidArguments indicates invalid command arguments or flags
	ExitInvalidArguments = 2

	// ExitConfiguration indicates an invalid config file or environment
	ExitConfiguration = 3

	// ExitInput indicates unreadable or malformed stdin
	ExitInput = 4

	// ExitRuntime indicates any other failure
	ExitRuntime = 5
)

// exitCode maps a command error to a process exit code.
func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var rc *resultcode.Error
	if errors.As(err, &rc) {
		return ExitFailureResult
	}

	var cli *clierrors.CLIError
	if !errors.As(err, &cli) {
		return ExitRuntime
	}
	switch cli.Category {
	case clierrors.Argument:
		return ExitInvalidArguments
	case clierrors.Configuration:
		return ExitConfiguration
	case clierrors.Input:
		return ExitInput
	default:
		return ExitRuntime
	}
}
