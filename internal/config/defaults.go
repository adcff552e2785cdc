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

// Output formats.
const (
	OutputText    = "text"
	OutputJSON    = "json"
	OutputYAML    = "yaml"
	OutputMsgpack = "msgpack"
)

// Lookup modes.
const (
	LookupSystem  = "system"
	LookupBundled = "bundled"
	LookupNone    = "none"
)

// DefaultListen is the default address of the HTTP server.
const DefaultListen = "127.0.0.1:8087"

// GetDefaults returns the default configuration values keyed by koanf path.
func GetDefaults() map[string]any {
	return map[string]any{
		"output":    OutputText,
		"jobs":      0,
		"lookup":    LookupSystem,
		"color":     true,
		"log_level": "error",
		"listen":    DefaultListen,
	}
}
