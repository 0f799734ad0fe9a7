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

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/clusterlink/clusterlink/cmd/clusterlink/cmd/components"
	"github.com/clusterlink/clusterlink/cmd/clusterlink/cmd/list_scripts"
	"github.com/clusterlink/clusterlink/cmd/clusterlink/cmd/run"
	"github.com/clusterlink/clusterlink/internal/config"
)

const (
	appName           = "clusterlink"
	defaultConfigName = "config.yml"
	envPrefix         = "CLUSTERLINK"
)

var (
	Version    string
	Commit     string
	CommitDate string

	RootCmd = &cobra.Command{
		Use:   appName,
		Short: "clusterlink answers connectivity queries over a graph built by a script of commands",
		Long: "Reads scripts of \"add A B\", \"remove A B\" and \"is linked A B\" commands and prints " +
			"true or false for every query. The graph keeps its clusters up to date on every " +
			"change, so the queries are answered in constant time. Scripts are read from stdin " +
			"or from a storage (directory and S3)",
	}
	cfgFile string
	Config  = config.NewConfig()
)

func Execute(ctx context.Context) error {
	return RootCmd.ExecuteContext(ctx)
}

func init() {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				Commit = setting.Value
			}
			if setting.Key == "vcs.time" {
				CommitDate = setting.Value
			}
		}
	}
	if Version != "" {
		RootCmd.Version = fmt.Sprintf("%s %s %s", Version, Commit, CommitDate)
	} else {
		RootCmd.Version = fmt.Sprintf("%s %s", Commit, CommitDate)
	}

	cobra.OnInitialize(initConfig)
	// Removing short help flag from default
	RootCmd.PersistentFlags().BoolP("help", "", false, "help for clusterlink")
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file ")
	RootCmd.PersistentFlags().StringP("log-format", "", "text", "logging format [text|json]")
	RootCmd.PersistentFlags().StringP("log-level", "", zerolog.LevelInfoValue,
		fmt.Sprintf(
			"logging level %s|%s|%s",
			zerolog.LevelDebugValue,
			zerolog.LevelInfoValue,
			zerolog.LevelWarnValue,
		),
	)

	RootCmd.AddCommand(run.Cmd)
	RootCmd.AddCommand(components.Cmd)
	RootCmd.AddCommand(list_scripts.Cmd)

	if err := viper.BindPFlag("log.format", RootCmd.PersistentFlags().Lookup("log-format")); err != nil {
		log.Fatal().Err(err).Msg("")
	}

	if err := viper.BindPFlag("log.level", RootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		log.Fatal().Err(err).Msg("")
	}

	RootCmd.InitDefaultCompletionCmd()
	RootCmd.InitDefaultHelpCmd()
	RootCmd.InitDefaultVersionFlag()

	for _, c := range RootCmd.Commands() {
		if c.Name() == "completion" || c.Name() == "help" {
			c.DisableFlagParsing = true
			for _, subc := range c.Commands() {
				subc.DisableFlagParsing = true
			}
		}
	}
}

// defaultConfigFile - returns the path of the config in the user config directory if it exists.
func defaultConfigFile() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Debug().Err(err).Msg("cannot determine user config directory")
		return ""
	}
	p := filepath.Join(configDir, appName, defaultConfigName)
	if _, err := os.Stat(p); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Warn().Err(err).Str("Path", p).Msg("cannot access default config file")
		}
		return ""
	}
	return p
}

func initConfig() {
	if cfgFile == "" {
		cfgFile = defaultConfigFile()
	}
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			log.Fatal().Err(err).Msg("error reading from config file")
		}
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	// AutomaticEnv only applies to keys viper already knows, so settings missing from the config file are bound
	// explicitly.
	for _, key := range config.Keys() {
		if err := viper.BindEnv(key); err != nil {
			log.Fatal().Err(err).Str("Key", key).Msg("cannot bind env variable")
		}
	}

	decoderCfg := func(cfg *mapstructure.DecoderConfig) {
		cfg.DecodeHook = config.DecodeHooks()
		cfg.ErrorUnused = true
	}

	if err := viper.Unmarshal(Config, decoderCfg); err != nil {
		log.Fatal().Err(err).Msg("")
	}
}
