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
	"log/slog"

	"github.com/l3montree-dev/devaudit/internal/core"
	"github.com/l3montree-dev/devaudit/internal/core/catalog"
	"github.com/l3montree-dev/devaudit/internal/database"
	"github.com/l3montree-dev/devaudit/internal/database/repositories"
	"github.com/spf13/cobra"
)

func NewCatalogCommand() *cobra.Command {
	catalogCmd := cobra.Command{
		Use:   "catalog",
		Short: "Manage the vulnerability and control catalogs",
	}

	catalogCmd.AddCommand(newSeedCommand())
	catalogCmd.AddCommand(newCheckCommand())
	return &catalogCmd
}

func connectDB() (core.DB, error) {
	db, err := core.DatabaseFactory()
	if err != nil {
		return nil, err
	}

	if err := database.RunMigrations(db); err != nil {
		return nil, err
	}
	return db, nil
}

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the built-in vulnerability and control catalogs (idempotent)",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := connectDB()
			if err != nil {
				return err
			}
			svc := catalog.NewService(repositories.NewVulnerabilityRepository(db), repositories.NewControlRepository(db))

			if err := svc.Seed(); err != nil {
				return err
			}
			slog.Info("catalog seeded")

			return svc.CheckIntegrity()
		},
	}
}

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify that every control maps to an existing vulnerability name",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := connectDB()
			if err != nil {
				return err
			}
			svc := catalog.NewService(repositories.NewVulnerabilityRepository(db), repositories.NewControlRepository(db))
			return svc.CheckIntegrity()
		},
	}
}
