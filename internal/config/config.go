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
	"sync"
)

var (
	cfg  *Config
	once sync.Once
)

// NewConfig - returns the process-wide config instance initialized with defaults. The cobra commands
// decode viper settings into it.
func NewConfig() *Config {
	once.Do(
		func() {
			cfg = Default()
		},
	)
	return cfg
}

// Default - creates a new config with the default values.
func Default() *Config {
	return &Config{
		Log:        NewLog(),
		Storage:    NewStorageConfig(),
		Run:        NewRun(),
		Components: NewComponents(),
	}
}

type Config struct {
	Log        Log           `mapstructure:"log" yaml:"log" json:"log"`
	Storage    StorageConfig `mapstructure:"storage" yaml:"storage" json:"storage"`
	Run        Run           `mapstructure:"run" yaml:"run" json:"run"`
	Components Components    `mapstructure:"components" yaml:"components" json:"components"`
}
