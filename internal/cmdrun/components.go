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
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/clusterlink/clusterlink/internal/commands"
	"github.com/clusterlink/clusterlink/internal/config"
	"github.com/clusterlink/clusterlink/internal/connectivity"
	stringsutils "github.com/clusterlink/clusterlink/internal/utils/strings"
)

var (
	errUnknownFormat = errors.New("unknown format")
)

type Component struct {
	Size    int      `json:"size" yaml:"size"`
	Members []string `json:"members" yaml:"members"`
}

// ComponentsReport - the state of the index after the script was applied.
type ComponentsReport struct {
	Commands   commands.Stats     `json:"commands" yaml:"commands"`
	Graph      connectivity.Stats `json:"graph" yaml:"graph"`
	Components []Component        `json:"components" yaml:"components"`
}

// RunComponents - applies the script silently and prints the clusters of the final state. When script is empty
// the commands are read from r.
func RunComponents(ctx context.Context, cfg *config.Config, script string, r io.Reader, w io.Writer) error {
	ctx, cancel := runContext(ctx, cfg)
	defer cancel()

	if script != "" {
		st, err := getStorage(ctx, cfg)
		if err != nil {
			return err
		}
		sr, err := openScript(ctx, st, script, cfg.Run.UsePgzip)
		if err != nil {
			return fmt.Errorf("script %s: %w", script, err)
		}
		defer closeScript(ctx, script, sr)
		r = sr
	}

	report, err := BuildComponentsReport(ctx, r, cfg.Run.StopOnBlankLine)
	if err != nil {
		return err
	}
	return renderComponents(w, report, cfg.Components)
}

// BuildComponentsReport - applies the commands from r to a new index and collects its clusters. The clusters are
// ordered by size descending and then by the first member.
func BuildComponentsReport(ctx context.Context, r io.Reader, stopOnBlankLine bool) (*ComponentsReport, error) {
	ix, stats, err := processScript(
		ctx, r, io.Discard,
		commands.WithStopOnBlankLine(stopOnBlankLine),
		commands.WithQuiet(),
	)
	if err != nil {
		return nil, fmt.Errorf("process script: %w", err)
	}

	clusters := ix.Components()
	res := &ComponentsReport{
		Commands:   stats,
		Graph:      ix.Stats(),
		Components: make([]Component, 0, len(clusters)),
	}
	for _, members := range clusters {
		slices.SortFunc(members, compareVertexes)
		res.Components = append(res.Components, Component{
			Size:    len(members),
			Members: members,
		})
	}
	slices.SortFunc(res.Components, func(a, b Component) int {
		if c := cmp.Compare(b.Size, a.Size); c != 0 {
			return c
		}
		return compareVertexes(a.Members[0], b.Members[0])
	})
	return res, nil
}

// compareVertexes - integer identifiers are compared numerically and go before any other identifiers.
func compareVertexes(a, b string) int {
	ai, aErr := strconv.ParseInt(a, 10, 64)
	bi, bErr := strconv.ParseInt(b, 10, 64)
	switch {
	case aErr == nil && bErr == nil:
		return cmp.Compare(ai, bi)
	case aErr == nil:
		return -1
	case bErr == nil:
		return 1
	}
	return cmp.Compare(a, b)
}

func renderComponents(w io.Writer, report *ComponentsReport, cfg config.Components) error {
	switch cfg.Format {
	case config.ComponentsFormatJson:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	case config.ComponentsFormatYaml:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("close yaml encoder: %w", err)
		}
	case config.ComponentsFormatText:
		renderComponentsTable(w, report, cfg.MaxWidth)
	default:
		return fmt.Errorf("components format %s: %w", cfg.Format, errUnknownFormat)
	}
	return nil
}

func renderComponentsTable(w io.Writer, report *ComponentsReport, maxWidth int) {
	data := make([][]string, 0, len(report.Components))
	for idx, c := range report.Components {
		data = append(data, []string{
			strconv.Itoa(idx + 1),
			strconv.Itoa(c.Size),
			stringsutils.WrapList(c.Members, maxWidth),
		})
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "size", "members"})
	table.SetAutoWrapText(false)
	table.AppendBulk(data)
	table.SetFooter([]string{
		"",
		strconv.Itoa(report.Graph.Vertexes),
		fmt.Sprintf("%d clusters, %d edges", report.Graph.Clusters, report.Graph.Edges),
	})
	table.Render()
}
