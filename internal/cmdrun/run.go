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
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/clusterlink/clusterlink/internal/commands"
	"github.com/clusterlink/clusterlink/internal/config"
	"github.com/clusterlink/clusterlink/internal/interfaces"
	"github.com/clusterlink/clusterlink/internal/utils/ioutils"
)

var (
	ErrScriptNotFound = errors.New("script not found")
)

// RunScripts - processes the scripts and writes the query results into w. When no script is provided the
// scripts from the config are used, and if there are none either the commands are read from r.
func RunScripts(ctx context.Context, cfg *config.Config, scripts []string, r io.Reader, w io.Writer) error {
	ctx, cancel := runContext(ctx, cfg)
	defer cancel()

	if len(scripts) == 0 {
		scripts = cfg.Run.Scripts
	}
	if len(scripts) == 0 {
		log.Ctx(ctx).Debug().Msg("reading commands from stdin")
		if _, _, err := processScript(ctx, r, w, processorOptions(cfg.Run)...); err != nil {
			return fmt.Errorf("process stdin: %w", err)
		}
		return nil
	}

	st, err := getStorage(ctx, cfg)
	if err != nil {
		return err
	}
	return runScripts(ctx, st, scripts, cfg.Run, w)
}

// runScripts - processes the scripts concurrently with at most cfg.Jobs at a time. The output of each script is
// buffered and written in the order of the scripts. If there is more than one script every output is preceded by
// the "==> name <==" header. Nothing is written if any script fails.
func runScripts(ctx context.Context, st interfaces.Storager, scripts []string, cfg config.Run, w io.Writer) error {
	outputs := make([]*bytes.Buffer, len(scripts))
	eg, gtx := errgroup.WithContext(ctx)
	eg.SetLimit(max(cfg.Jobs, 1))
	for idx, name := range scripts {
		outputs[idx] = bytes.NewBuffer(nil)
		eg.Go(func() error {
			if err := runScript(gtx, st, name, cfg.UsePgzip, outputs[idx], processorOptions(cfg)...); err != nil {
				return fmt.Errorf("script %s: %w", name, err)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	for idx, out := range outputs {
		if len(scripts) > 1 {
			sep := ""
			if idx > 0 {
				sep = "\n"
			}
			if _, err := fmt.Fprintf(w, "%s==> %s <==\n", sep, scripts[idx]); err != nil {
				return fmt.Errorf("write header: %w", err)
			}
		}
		if _, err := io.Copy(w, out); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}

func runScript(
	ctx context.Context, st interfaces.Storager, name string, usePgzip bool, w io.Writer, opts ...commands.Option,
) error {
	ctx = log.Ctx(ctx).With().
		Str(MetaKeyScript, name).
		Logger().
		WithContext(ctx)

	obj, err := openScript(ctx, st, name, usePgzip)
	if err != nil {
		return err
	}
	r := ioutils.NewCountReader(obj)
	defer closeScript(ctx, name, r)

	if _, _, err = processScript(ctx, r, w, opts...); err != nil {
		return err
	}
	log.Ctx(ctx).Debug().
		Int64("BytesRead", r.GetCount()).
		Msg("script read")
	return nil
}
