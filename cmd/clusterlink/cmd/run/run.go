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

package run

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/clusterlink/clusterlink/internal/cmdrun"
	"github.com/clusterlink/clusterlink/internal/config"
	"github.com/clusterlink/clusterlink/internal/utils/logger"
)

var (
	Cmd = &cobra.Command{
		Use:   "run [flags] [script ...]",
		Short: "apply the scripts and print the result of every \"is linked\" query",
		Long: "Applies the scripts from the storage, each one to its own graph, and prints \"true\" or " +
			"\"false\" for every query. Without arguments the scripts from the config are used, and " +
			"if there are none the commands are read from stdin",
		Run: func(cmd *cobra.Command, args []string) {
			if err := logger.SetDefaultContextLogger(Config.Log.Level, Config.Log.Format); err != nil {
				log.Fatal().Err(err).Msg("")
			}
			if noStopOnBlank {
				Config.Run.StopOnBlankLine = false
			}
			if err := Config.Validate(); err != nil {
				log.Fatal().Err(err).Msg("invalid config")
			}

			if err := cmdrun.RunScripts(cmd.Context(), Config, args, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
				log.Fatal().Err(err).Msg("")
			}
		},
	}
	Config        = config.NewConfig()
	noStopOnBlank bool
)

func init() {
	Cmd.Flags().IntP("jobs", "j", 1, "count of scripts processed concurrently")
	Cmd.Flags().BoolVar(&noStopOnBlank, "no-stop-on-blank", false, "keep reading past an empty line")

	if err := viper.BindPFlag("run.jobs", Cmd.Flags().Lookup("jobs")); err != nil {
		log.Fatal().Err(err).Msg("")
	}
}
