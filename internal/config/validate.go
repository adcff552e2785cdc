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

package config

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidValue is wrapped by every validation error.
var ErrInvalidValue = errors.New("config: invalid value")

var (
	validOutputs   = []string{OutputText, OutputJSON, OutputYAML, OutputMsgpack}
	validLookups   = []string{LookupSystem, LookupBundled, LookupNone}
	validLogLevels = []string{"debug", "info", "warn", "error"}
)

// Validate checks enum fields and ranges.
func Validate(cfg *Config) error {
	if err := oneOf("output", cfg.Output, validOutputs); err != nil {
		return err
	}
	if err := oneOf("lookup", cfg.Lookup, validLookups); err != nil {
		return err
	}
	if err := oneOf("log_level", cfg.LogLevel, validLogLevels); err != nil {
		return err
	}
	if cfg.Jobs < 0 {
		return fmt.Errorf("%w: jobs must be >= 0, got %d", ErrInvalidValue, cfg.Jobs)
	}
	if cfg.Listen == "" {
		return fmt.Errorf("%w: listen must not be empty", ErrInvalidValue)
	}
	return nil
}

func oneOf(key, value string, valid []string) error {
	if slices.Contains(valid, value) {
		return nil
	}
	return fmt.Errorf("%w: %s must be one of %v, got %q", ErrInvalidValue, key, valid, value)
}
