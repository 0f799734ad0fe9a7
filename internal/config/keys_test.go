// Copyright 2025 Greenmask
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeys(t *testing.T) {
	keys := Keys()
	for _, k := range []string{
		"log.level",
		"log.format",
		"storage.type",
		"storage.directory.path",
		"storage.s3.bucket",
		"storage.s3.force_path_style",
		"run.jobs",
		"run.timeout",
		"run.scripts",
		"run.use_pgzip",
		"components.format",
		"components.max_width",
	} {
		assert.Contains(t, keys, k)
	}
	// Sections are not leaves.
	assert.NotContains(t, keys, "storage")
	assert.NotContains(t, keys, "storage.s3")
	require.IsIncreasing(t, keys)
}
