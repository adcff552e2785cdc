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

package resolve

import (
	"go.uber.org/zap"

	"dirpx.dev/resultcode/apis"
	"dirpx.dev/resultcode/oserr"
	"dirpx.dev/resultcode/taxonomy"
)

type builder struct {
	// store is the Tier 1 authority.
	store *taxonomy.Store

	// lookup is the Tier 2/3 authority.
	lookup apis.Lookup

	logger *zap.Logger
}

// newBuilder creates a builder seeded with the package defaults.
func newBuilder() *builder {
	return &builder{
		store:  taxonomy.Default(),
		lookup: oserr.System(),
		logger: zap.NewNop(),
	}
}
