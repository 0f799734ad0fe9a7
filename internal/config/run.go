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

import "time"

const (
	defaultRunJobs = 1
)

const (
	ComponentsFormatText = "text"
	ComponentsFormatJson = "json"
	ComponentsFormatYaml = "yaml"
)

const (
	defaultComponentsMaxWidth = 80
)

// Run - settings of the script processing.
type Run struct {
	// Jobs - the count of scripts processed concurrently. Each script gets its own graph.
	Jobs int `mapstructure:"jobs" yaml:"jobs" json:"jobs"`
	// StopOnBlankLine - stop reading a script on the first empty line.
	StopOnBlankLine bool `mapstructure:"stop_on_blank_line" yaml:"stop_on_blank_line" json:"stop_on_blank_line"`
	// Timeout - the time limit for the whole run. Zero means no limit.
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout" json:"timeout,omitempty"`
	// Scripts - the scripts to run when no script is passed as an argument.
	Scripts []string `mapstructure:"scripts" yaml:"scripts" json:"scripts,omitempty"`
	// UsePgzip - decompress *.gz scripts with pgzip instead of compress/gzip.
	UsePgzip bool `mapstructure:"use_pgzip" yaml:"use_pgzip" json:"use_pgzip"`
}

func NewRun() Run {
	return Run{
		Jobs:            defaultRunJobs,
		StopOnBlankLine: true,
	}
}

// Components - settings of the components rendering.
type Components struct {
	// Format - text, json or yaml.
	Format string `mapstructure:"format" yaml:"format" json:"format"`
	// MaxWidth - the members column is wrapped to this width in the text format.
	MaxWidth int `mapstructure:"max_width" yaml:"max_width" json:"max_width"`
}

func NewComponents() Components {
	return Components{
		Format:   ComponentsFormatText,
		MaxWidth: defaultComponentsMaxWidth,
	}
}
