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

package components

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/clusterlink/clusterlink/internal/cmdrun"
	"github.com/clusterlink/clusterlink/internal/config"
	"github.com/clusterlink/clusterlink/internal/utils/logger"
)

var (
	Cmd = &cobra.Command{
		Use:   "components [flags] [script]",
		Short: "apply the script silently and print the clusters of the final graph",
		Args:  cobra.MaximumNArgs(1),
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

			var script string
			if len(args) > 0 {
				script = args[0]
			}
			if err := cmdrun.RunComponents(cmd.Context(), Config, script, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
				log.Fatal().Err(err).Msg("")
			}
		},
	}
	Config        = config.NewConfig()
	noStopOnBlank bool
)

func init() {
	Cmd.Flags().StringP("format", "f", config.ComponentsFormatText,
		fmt.Sprintf(
			"output format [%s|%s|%s]",
			config.ComponentsFormatText,
			config.ComponentsFormatJson,
			config.ComponentsFormatYaml,
		),
	)
	Cmd.Flags().Int("max-width", 80, "members column width in the text format, 0 disables wrapping")
	Cmd.Flags().BoolVar(&noStopOnBlank, "no-stop-on-blank", false, "keep reading past an empty line")

	if err := viper.BindPFlag("components.format", Cmd.Flags().Lookup("format")); err != nil {
		log.Fatal().Err(err).Msg("")
	}
	if err := viper.BindPFlag("components.max_width", Cmd.Flags().Lookup("max-width")); err != nil {
		log.Fatal().Err(err).Msg("")
	}
}
