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

package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/rs/zerolog/log"
)

const maxLineSize = 1024 * 1024

// Graph - the connectivity operations the script is applied to.
type Graph interface {
	Link(a, b string)
	Unlink(a, b string)
	Connected(a, b string) bool
}

// Stats - the count of the processed commands by kind.
type Stats struct {
	Links   int `json:"links" yaml:"links"`
	Unlinks int `json:"unlinks" yaml:"unlinks"`
	Queries int `json:"queries" yaml:"queries"`
	Skipped int `json:"skipped" yaml:"skipped"`
}

type Option func(p *Processor)

// WithStopOnBlankLine - when enabled the processing stops on the first empty line as if the input ended.
func WithStopOnBlankLine(v bool) Option {
	return func(p *Processor) {
		p.stopOnBlankLine = v
	}
}

// WithQuiet - do not print query results.
func WithQuiet() Option {
	return func(p *Processor) {
		p.quiet = true
	}
}

// Processor - reads the script line by line and applies the commands to the Graph. The result of each
// query is written as "true" or "false" on its own line. Malformed lines are skipped.
type Processor struct {
	g               Graph
	w               io.Writer
	stopOnBlankLine bool
	quiet           bool
}

func NewProcessor(g Graph, w io.Writer, opts ...Option) *Processor {
	p := &Processor{
		g:               g,
		w:               w,
		stopOnBlankLine: true,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Process - processes the script until the end of the input (or an empty line if enabled). The context
// is checked between the lines.
func (p *Processor) Process(ctx context.Context, r io.Reader) (Stats, error) {
	var stats Stats
	bw := bufio.NewWriter(p.w)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)

	var lineNum int
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		lineNum++
		line := scanner.Text()
		if line == "" && p.stopOnBlankLine {
			log.Ctx(ctx).Debug().
				Int("LineNum", lineNum).
				Msg("empty line: stop processing")
			break
		}

		cmd, ok := Parse(line)
		if !ok {
			log.Ctx(ctx).Debug().
				Int("LineNum", lineNum).
				Str("Line", line).
				Msg("malformed command: skipping")
			stats.Skipped++
			continue
		}

		if err := p.apply(bw, cmd, &stats); err != nil {
			return stats, fmt.Errorf("line %d: %w", lineNum, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("read script: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return stats, fmt.Errorf("flush output: %w", err)
	}
	return stats, nil
}

func (p *Processor) apply(w *bufio.Writer, cmd Command, stats *Stats) error {
	switch cmd.Kind {
	case KindLink:
		p.g.Link(cmd.A, cmd.B)
		stats.Links++
	case KindUnlink:
		p.g.Unlink(cmd.A, cmd.B)
		stats.Unlinks++
	case KindQuery:
		res := p.g.Connected(cmd.A, cmd.B)
		stats.Queries++
		if p.quiet {
			return nil
		}
		if _, err := w.WriteString(strconv.FormatBool(res) + "\n"); err != nil {
			return fmt.Errorf("write query result: %w", err)
		}
	}
	return nil
}
