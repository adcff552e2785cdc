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

// Package config provides layered configuration for the resultcode CLI
// using koanf. Values are loaded with priority: environment variables
// (RESULTCODE_*) > project or explicit config file > user config
// (~/.config/resultcode/config.yml) > defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"dirpx.dev/resultcode/apis"
	"dirpx.dev/resultcode/oserr"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "RESULTCODE_"

// Config is the resultcode CLI configuration.
type Config struct {
	// Output selects the renderer: text, json, yaml or msgpack.
	Output string `koanf:"output"`

	// Jobs bounds batch parallelism; 0 means GOMAXPROCS.
	Jobs int `koanf:"jobs"`

	// Lookup selects the OS-error lookup: system, bundled or none.
	Lookup string `koanf:"lookup"`

	// Color enables ANSI colors in text output.
	Color bool `koanf:"color"`

	// LogLevel is the minimum zap level: debug, info, warn or error.
	LogLevel string `koanf:"log_level"`

	// Listen is the address of `resultcode serve`.
	Listen string `koanf:"listen"`
}

// LoadOptions configures how configuration is loaded.
type LoadOptions struct {
	// ConfigPath is an explicit config file (--config). It must exist.
	// When empty, .resultcode.yml in the working directory is used if present.
	ConfigPath string

	// UserConfigPath overrides the user config location (for tests).
	UserConfigPath string

	// SkipUser disables the user config layer.
	SkipUser bool
}

// ErrConfigNotFound is returned when an explicit config file is missing.
var ErrConfigNotFound = errors.New("config: file not found")

// Load loads configuration with an optional explicit config file.
func Load(configPath string) (*Config, error) {
	return LoadWithOptions(LoadOptions{ConfigPath: configPath})
}

// LoadWithOptions loads configuration with custom options.
func LoadWithOptions(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	loadDefaults(k)

	if !opts.SkipUser {
		if err := loadUserConfig(k, opts.UserConfigPath); err != nil {
			return nil, err
		}
	}

	if err := loadProjectConfig(k, opts.ConfigPath); err != nil {
		return nil, err
	}

	if err := loadEnvironmentConfig(k); err != nil {
		return nil, err
	}

	return finalizeConfig(k)
}

// loadDefaults applies default configuration values.
func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		_ = k.Set(key, value)
	}
}

// loadUserConfig loads the user-level config if it exists.
func loadUserConfig(k *koanf.Koanf, path string) error {
	if path == "" {
		path, _ = UserConfigPath()
	}
	if !fileExists(path) {
		return nil
	}
	if err := loadConfigFile(k, path, "user"); err != nil {
		return fmt.Errorf("loading user config: %w", err)
	}
	return nil
}

// loadProjectConfig loads the explicit config file, or the project file
// when no explicit path was given.
func loadProjectConfig(k *koanf.Koanf, explicit string) error {
	if explicit != "" {
		if !fileExists(explicit) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, explicit)
		}
		return loadConfigFile(k, explicit, "explicit")
	}
	path := ProjectConfigPath()
	if !fileExists(path) {
		return nil
	}
	if err := loadConfigFile(k, path, "project"); err != nil {
		return fmt.Errorf("loading project config: %w", err)
	}
	return nil
}

// loadConfigFile loads a config file. Files ending in .json are parsed as
// JSON, everything else as YAML.
func loadConfigFile(k *koanf.Koanf, path, configType string) error {
	var parser koanf.Parser = yaml.Parser()
	if strings.EqualFold(filepath.Ext(path), ".json") {
		parser = json.Parser()
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return fmt.Errorf("failed to load %s config %s: %w", configType, path, err)
	}
	return nil
}

// loadEnvironmentConfig loads environment variable overrides.
func loadEnvironmentConfig(k *koanf.Koanf) error {
	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return fmt.Errorf("failed to load environment config: %w", err)
	}
	return nil
}

// finalizeConfig unmarshals, normalizes and validates.
func finalizeConfig(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Output = strings.ToLower(strings.TrimSpace(cfg.Output))
	cfg.Lookup = strings.ToLower(strings.TrimSpace(cfg.Lookup))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// OSLookup returns the OS-error lookup selected by Lookup.
func (c *Config) OSLookup() apis.Lookup {
	switch c.Lookup {
	case LookupBundled:
		return oserr.Win32()
	case LookupNone:
		return oserr.None
	default:
		return oserr.System()
	}
}

// fileExists returns true if the file exists and is readable.
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// envTransform converts environment variable names to config keys.
// Example: RESULTCODE_LOG_LEVEL -> log_level
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}
