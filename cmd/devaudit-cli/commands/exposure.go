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
	"fmt"

	"github.com/l3montree-dev/devaudit/internal/core/org"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewExposureCommand scores an org without touching the database. Useful to
// sanity-check the banding before creating the org for real.
func NewExposureCommand() *cobra.Command {
	exposureCmd := &cobra.Command{
		Use:   "exposure",
		Short: "Compute the exposure indicator for an organization profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := viper.BindPFlags(cmd.Flags()); err != nil {
				return err
			}

			exposure := org.ComputeExposure(
				viper.GetString("sector"),
				viper.GetInt("employees"),
				viper.GetString("system-type"),
			)

			fmt.Printf("score: %d\nlevel: %s\n", exposure.Score, exposure.Level)
			return nil
		},
	}

	exposureCmd.Flags().String("sector", "", "business sector, e.g. Finance")
	exposureCmd.Flags().Int("employees", 1, "employee count")
	exposureCmd.Flags().String("system-type", "", "system type, e.g. Cloud or Internal Network")
	return exposureCmd
}
