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

// Package catalog owns the read-only vulnerability and control catalogs. The
// engine never mutates catalog rows during normal operation; seeding and the
// integrity check are administrative.
package catalog

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/l3montree-dev/devaudit/internal/core"
	"github.com/l3montree-dev/devaudit/internal/database/models"
	"gorm.io/gorm"
)

type vulnerabilityRepository interface {
	All() ([]models.Vulnerability, error)
	Read(id uuid.UUID) (models.Vulnerability, error)
	ReadByName(name string) (models.Vulnerability, error)
	UpsertByName(tx core.DB, vuln *models.Vulnerability) error
	Transaction(txFunc func(core.DB) error) error
}

type controlRepository interface {
	All() ([]models.Control, error)
	GetByMappedVulnName(name string) ([]models.Control, error)
	CreateIfMissing(tx core.DB, control *models.Control) error
	DistinctMappedVulnNames() ([]string, error)
}

type service struct {
	vulnerabilityRepository vulnerabilityRepository
	controlRepository       controlRepository
}

func NewService(vulnerabilityRepository vulnerabilityRepository, controlRepository controlRepository) *service {
	return &service{
		vulnerabilityRepository: vulnerabilityRepository,
		controlRepository:       controlRepository,
	}
}

func (s *service) ListVulnerabilities() ([]models.Vulnerability, error) {
	return s.vulnerabilityRepository.All()
}

func (s *service) ListControls() ([]models.Control, error) {
	return s.controlRepository.All()
}

func (s *service) GetVulnerability(id uuid.UUID) (models.Vulnerability, error) {
	vuln, err := s.vulnerabilityRepository.Read(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Vulnerability{}, core.ErrNotFound
		}
		return models.Vulnerability{}, err
	}
	return vuln, nil
}

// ControlsForVulnerability resolves the governing control set of a
// vulnerability over the denormalized name mapping.
func (s *service) ControlsForVulnerability(vulnName string) ([]models.Control, error) {
	return s.controlRepository.GetByMappedVulnName(vulnName)
}

// CheckIntegrity verifies the catalog contract: every mapped vulnerability
// name referenced by a control resolves to an actual vulnerability. Run at
// seed time and on server start, never per request.
func (s *service) CheckIntegrity() error {
	names, err := s.controlRepository.DistinctMappedVulnNames()
	if err != nil {
		return fmt.Errorf("could not list mapped vulnerability names: %w", err)
	}

	var dangling []string
	for _, name := range names {
		if _, err := s.vulnerabilityRepository.ReadByName(name); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				dangling = append(dangling, name)
				continue
			}
			return fmt.Errorf("could not resolve mapped vulnerability name %q: %w", name, err)
		}
	}

	if len(dangling) > 0 {
		return fmt.Errorf("control catalog references unknown vulnerability names: %v", dangling)
	}

	slog.Info("catalog integrity check passed", "mappedNames", len(names))
	return nil
}

// Seed loads the built-in vulnerability and control catalogs. Upserts keep
// the operation idempotent across restarts.
func (s *service) Seed() error {
	return s.vulnerabilityRepository.Transaction(func(tx core.DB) error {
		for _, vuln := range seedVulnerabilities {
			v := vuln
			if err := s.vulnerabilityRepository.UpsertByName(tx, &v); err != nil {
				return fmt.Errorf("could not seed vulnerability %q: %w", vuln.Name, err)
			}
		}

		for _, control := range seedControls {
			c := control
			if err := s.controlRepository.CreateIfMissing(tx, &c); err != nil {
				return fmt.Errorf("could not seed control %q: %w", control.Name, err)
			}
		}
		return nil
	})
}
