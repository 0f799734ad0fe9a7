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

package cmdrun

import (
	"context"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog/log"

	"github.com/clusterlink/clusterlink/internal/config"
	"github.com/clusterlink/clusterlink/internal/interfaces"
	"github.com/clusterlink/clusterlink/internal/storages"
	stringsutils "github.com/clusterlink/clusterlink/internal/utils/strings"
)

// RunListScripts - prints the scripts available in the storage.
func RunListScripts(ctx context.Context, cfg *config.Config, quiet bool, w io.Writer) error {
	ctx, cancel := runContext(ctx, cfg)
	defer cancel()

	st, err := getStorage(ctx, cfg)
	if err != nil {
		return err
	}
	return listScripts(ctx, st, quiet, w)
}

func listScripts(ctx context.Context, st interfaces.Storager, quiet bool, w io.Writer) error {
	names, err := storages.Walk(ctx, st, "")
	if err != nil {
		return fmt.Errorf("walk storage: %w", err)
	}
	slices.Sort(names)

	if quiet {
		for _, name := range names {
			if _, err := fmt.Fprintln(w, name); err != nil {
				return err
			}
		}
		return nil
	}

	data := make([][]string, 0, len(names))
	for _, name := range names {
		stat, err := st.Stat(ctx, name)
		if err != nil {
			log.Ctx(ctx).
				Warn().
				Err(err).
				Str(MetaKeyScript, name).
				Msg("cannot get script stat, skipping")
			continue
		}
		data = append(data, []string{
			name,
			stringsutils.SizePretty(stat.Size),
			stat.LastModified.Format(time.RFC3339),
		})
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"script", "size", "last modified"})
	table.AppendBulk(data)
	table.Render()
	return nil
}
