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

// Package errors provides categorized CLI errors with remediation hints.
package errors

import "fmt"

// Category classifies a CLI error. It selects the process exit code.
type Category int

const (
	// Argument errors are caused by invalid or missing command arguments.
	Argument Category = iota
	// Configuration errors are caused by an invalid config file or environment.
	Configuration
	// Input errors are caused by unreadable or malformed stdin payloads.
	Input
	// Runtime errors occur during command execution.
	Runtime
)

// String returns a human-readable name for the category.
func (c Category) String() string {
	switch c {
	case Argument:
		return "Argument Error"
	case Configuration:
		return "Configuration Error"
	case Input:
		return "Input Error"
	case Runtime:
		return "Runtime Error"
	default:
		return "Error"
	}
}

// CLIError is a structured error with category and remediation guidance.
type CLIError struct {
	Category    Category
	Message     string
	Remediation []string
	// Usage shows the correct command syntax (argument errors only).
	Usage string
	Cause error
}

// Error implements the error interface.
func (e *CLIError) Error() string { return e.Message }

// Unwrap returns the underlying cause, if any.
func (e *CLIError) Unwrap() error { return e.Cause }

// NewArgumentError creates an argument error.
func NewArgumentError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Argument, Message: message, Remediation: remediation}
}

// NewArgumentErrorWithUsage creates an argument error that includes correct usage syntax.
func NewArgumentErrorWithUsage(message, usage string, remediation ...string) *CLIError {
	return &CLIError{Category: Argument, Message: message, Usage: usage, Remediation: remediation}
}

// Wrap wraps err with a category, keeping its message.
func Wrap(err error, category Category, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{Category: category, Message: err.Error(), Remediation: remediation, Cause: err}
}

// WrapWithMessage wraps err with a custom message prefix.
func WrapWithMessage(err error, category Category, message string, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category:    category,
		Message:     fmt.Sprintf("%s: %v", message, err),
		Remediation: remediation,
		Cause:       err,
	}
}
