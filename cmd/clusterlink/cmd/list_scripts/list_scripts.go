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

package list_scripts

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/clusterlink/clusterlink/internal/cmdrun"
	"github.com/clusterlink/clusterlink/internal/config"
	"github.com/clusterlink/clusterlink/internal/utils/logger"
)

var (
	Cmd = &cobra.Command{
		Use:   "list-scripts",
		Short: "list the scripts in the storage",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if err := logger.SetDefaultContextLogger(Config.Log.Level, Config.Log.Format); err != nil {
				log.Fatal().Err(err).Msg("")
			}
			if err := Config.Validate(); err != nil {
				log.Fatal().Err(err).Msg("invalid config")
			}

			if err := cmdrun.RunListScripts(cmd.Context(), Config, quiet, cmd.OutOrStdout()); err != nil {
				log.Fatal().Err(err).Msg("")
			}
		},
	}
	Config = config.NewConfig()
	quiet  bool
)

func init() {
	Cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print only script names")
}
