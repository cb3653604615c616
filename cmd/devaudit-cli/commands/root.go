// Copyright (C) 2025 Tim Bastin, l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "devaudit-cli",
	Short: "Management cli",
	Long:  `The devaudit cli can be used to administrate a running devaudit instance: seed and verify the control catalog, or inspect the exposure scoring.`,

	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// POSTGRES_* and friends can also come prefixed via DEVAUDIT_
		viper.SetEnvPrefix("DEVAUDIT")
		viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
		viper.AutomaticEnv()
	},
}

func GetRootCmd() *cobra.Command {
	return rootCmd
}
