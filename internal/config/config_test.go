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
	"strings"
	"testing"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clusterlink/clusterlink/internal/storages"
	"github.com/clusterlink/clusterlink/internal/utils/logger"
)

const testConfig = `
log:
  level: debug
  format: json
storage:
  type: s3
  s3:
    bucket: scripts
    region: eu-west-1
    force_path_style: false
    role_arn: arn:aws:iam::123456789012:role/scripts-reader
    session_name: clusterlink
run:
  jobs: 4
  stop_on_blank_line: false
  timeout: 30s
components:
  format: yaml
`

func decode(t *testing.T, v *viper.Viper) *Config {
	t.Helper()
	cfg := Default()
	err := v.Unmarshal(cfg, func(c *mapstructure.DecoderConfig) {
		c.DecodeHook = DecodeHooks()
		c.ErrorUnused = true
	})
	require.NoError(t, err)
	return cfg
}

func TestNewConfig_Singleton(t *testing.T) {
	assert.Same(t, NewConfig(), NewConfig())
	assert.NotSame(t, Default(), Default())
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, zerolog.LevelInfoValue, cfg.Log.Level)
	assert.Equal(t, logger.LogFormatTextValue, cfg.Log.Format)
	assert.Equal(t, storages.DirectoryStorageType, cfg.Storage.Type)
	assert.Equal(t, ".", cfg.Storage.Directory.Path)
	assert.Equal(t, -1, cfg.Storage.S3.MaxRetries)
	assert.Equal(t, 1, cfg.Run.Jobs)
	assert.True(t, cfg.Run.StopOnBlankLine)
	assert.Equal(t, ComponentsFormatText, cfg.Components.Format)
	require.NoError(t, cfg.Validate())
}

func TestConfig_Decode(t *testing.T) {
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(testConfig)))

	cfg := decode(t, v)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, logger.LogFormatJsonValue, cfg.Log.Format)
	assert.Equal(t, storages.S3StorageType, cfg.Storage.Type)
	assert.Equal(t, "scripts", cfg.Storage.S3.Bucket)
	require.NotNil(t, cfg.Storage.S3.ForcePathStyle)
	assert.False(t, *cfg.Storage.S3.ForcePathStyle)
	// Unset values keep the defaults.
	assert.Equal(t, -1, cfg.Storage.S3.MaxRetries)
	assert.Equal(t, ".", cfg.Storage.Directory.Path)
	assert.Equal(t, 4, cfg.Run.Jobs)
	assert.False(t, cfg.Run.StopOnBlankLine)
	assert.Equal(t, 30*time.Second, cfg.Run.Timeout)
	assert.Equal(t, ComponentsFormatYaml, cfg.Components.Format)
	assert.Equal(t, 80, cfg.Components.MaxWidth)

	s3Cfg := cfg.Storage.S3.ToS3Config()
	assert.Equal(t, "scripts", s3Cfg.Bucket)
	assert.Equal(t, "eu-west-1", s3Cfg.Region)
	assert.Equal(t, "arn:aws:iam::123456789012:role/scripts-reader", s3Cfg.Credentials.RoleArn)
	assert.Equal(t, "clusterlink", s3Cfg.Credentials.SessionName)
	assert.Same(t, cfg.Storage.S3.ForcePathStyle, s3Cfg.ForcePathStyle)
	assert.Equal(t, -1, s3Cfg.MaxRetries)
	assert.Equal(t, ".", cfg.Storage.Directory.ToDirectoryConfig().Path)
}

func TestConfig_DecodeUnknownKey(t *testing.T) {
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader("run:\n  workers: 2\n")))
	err := v.Unmarshal(Default(), func(c *mapstructure.DecoderConfig) {
		c.DecodeHook = DecodeHooks()
		c.ErrorUnused = true
	})
	require.Error(t, err)
}

func TestStringToSliceWithBracketHookFunc(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected []string
	}{
		{name: "brackets", value: `["a.txt", "nightly/b.txt"]`, expected: []string{"a.txt", "nightly/b.txt"}},
		{name: "comma separated", value: "a.txt,b.txt", expected: []string{"a.txt", "b.txt"}},
		{name: "empty", value: "", expected: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			v.Set("run.scripts", tt.value)
			cfg := decode(t, v)
			assert.Equal(t, tt.expected, cfg.Run.Scripts)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name     string
		modify   func(cfg *Config)
		expected error
	}{
		{name: "unknown log level", modify: func(cfg *Config) { cfg.Log.Level = "trace" }, expected: logger.ErrUnknownLogLevel},
		{name: "unknown log format", modify: func(cfg *Config) { cfg.Log.Format = "xml" }, expected: logger.ErrUnknownLogFormat},
		{name: "unknown storage", modify: func(cfg *Config) { cfg.Storage.Type = "gcs" }, expected: storages.ErrUnknownStorageType},
		{name: "zero jobs", modify: func(cfg *Config) { cfg.Run.Jobs = 0 }, expected: ErrInvalidJobs},
		{name: "negative timeout", modify: func(cfg *Config) { cfg.Run.Timeout = -time.Second }, expected: ErrInvalidTimeout},
		{name: "unknown components format", modify: func(cfg *Config) { cfg.Components.Format = "csv" }, expected: ErrUnknownComponentsFormat},
		{name: "negative width", modify: func(cfg *Config) { cfg.Components.MaxWidth = -1 }, expected: ErrInvalidMaxWidth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			require.ErrorIs(t, cfg.Validate(), tt.expected)
		})
	}
}
