// Copyright 2023 Greenmask
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

package storages

import (
	"context"
	"fmt"
	"path"

	"github.com/clusterlink/clusterlink/internal/interfaces"
)

// Walk - returns the paths of all files in the storage and its sub-storages relative to the cwd
// joined with the parent.
func Walk(ctx context.Context, st interfaces.Storager, parent string) ([]string, error) {
	var res []string
	files, dirs, err := st.ListDir(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing directory: %w", err)
	}
	for _, f := range files {
		res = append(res, path.Join(parent, f))
	}
	for _, d := range dirs {
		subFiles, err := Walk(ctx, d, d.Dirname())
		if err != nil {
			return nil, fmt.Errorf("error walking through directory: %w", err)
		}
		for _, f := range subFiles {
			res = append(res, path.Join(parent, f))
		}
	}
	return res, nil
}
