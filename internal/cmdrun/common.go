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
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/clusterlink/clusterlink/internal/commands"
	"github.com/clusterlink/clusterlink/internal/config"
	"github.com/clusterlink/clusterlink/internal/connectivity"
	"github.com/clusterlink/clusterlink/internal/interfaces"
	"github.com/clusterlink/clusterlink/internal/storages"
	"github.com/clusterlink/clusterlink/internal/utils/ioutils"
)

const gzipExtension = ".gz"

const (
	MetaKeyRunID  = "RunID"
	MetaKeyScript = "Script"
)

// runContext - sets the run id into the logger context and applies the run timeout.
func runContext(ctx context.Context, cfg *config.Config) (context.Context, context.CancelFunc) {
	ctx = log.Ctx(ctx).With().
		Str(MetaKeyRunID, uuid.NewString()).
		Logger().
		WithContext(ctx)
	if cfg.Run.Timeout > 0 {
		return context.WithTimeout(ctx, cfg.Run.Timeout)
	}
	return context.WithCancel(ctx)
}

func getStorage(ctx context.Context, cfg *config.Config) (interfaces.Storager, error) {
	st, err := storages.Get(
		ctx,
		cfg.Storage.Type,
		cfg.Storage.S3.ToS3Config(),
		cfg.Storage.Directory.ToDirectoryConfig(),
		cfg.Log.Level,
	)
	if err != nil {
		return nil, fmt.Errorf("get storage: %w", err)
	}
	return st, nil
}

func processorOptions(cfg config.Run) []commands.Option {
	return []commands.Option{
		commands.WithStopOnBlankLine(cfg.StopOnBlankLine),
	}
}

// openScript - opens the script from the storage. Scripts with the .gz extension are decompressed. The reader
// must be closed by the caller.
func openScript(ctx context.Context, st interfaces.Storager, name string, usePgzip bool) (io.ReadCloser, error) {
	stat, err := st.Stat(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("stat script: %w", err)
	}
	if !stat.Exist {
		return nil, ErrScriptNotFound
	}
	r, err := st.GetObject(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("get script: %w", err)
	}
	if !strings.HasSuffix(name, gzipExtension) {
		return r, nil
	}
	gz, err := ioutils.NewGzipReader(r, usePgzip)
	if err != nil {
		return nil, fmt.Errorf("decompress script: %w", err)
	}
	return gz, nil
}

// processScript - applies the commands from r to a new index and writes the query results into w.
func processScript(
	ctx context.Context, r io.Reader, w io.Writer, opts ...commands.Option,
) (*connectivity.Index[string], commands.Stats, error) {
	ix := connectivity.New[string]()
	stats, err := commands.NewProcessor(ix, w, opts...).Process(ctx, r)
	if err != nil {
		return nil, stats, err
	}
	log.Ctx(ctx).Debug().
		Int("Links", stats.Links).
		Int("Unlinks", stats.Unlinks).
		Int("Queries", stats.Queries).
		Int("Skipped", stats.Skipped).
		Int("Vertexes", ix.Len()).
		Int("Clusters", ix.ClusterCount()).
		Msg("script processed")
	return ix, stats, nil
}

func closeScript(ctx context.Context, name string, r io.Closer) {
	if err := r.Close(); err != nil {
		log.Ctx(ctx).Warn().
			Err(err).
			Str(MetaKeyScript, name).
			Msg("error closing script")
	}
}
