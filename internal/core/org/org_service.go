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

package org

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/l3montree-dev/devaudit/internal/accesscontrol"
	"github.com/l3montree-dev/devaudit/internal/core"
	"github.com/l3montree-dev/devaudit/internal/database/models"
	"gorm.io/gorm"
)

type orgRepository interface {
	All() ([]models.Org, error)
	Read(id uuid.UUID) (models.Org, error)
	Create(tx core.DB, org *models.Org) error
	Save(tx core.DB, org *models.Org) error
	Delete(tx core.DB, id uuid.UUID) error
	CountAssets(orgID uuid.UUID) (int64, error)
	Transaction(txFunc func(core.DB) error) error
}

type assignmentRepository interface {
	DeleteByOrgID(tx core.DB, orgID uuid.UUID) error
}

type service struct {
	orgRepository        orgRepository
	assignmentRepository assignmentRepository
	accessScope          accesscontrol.AccessScope
}

func NewService(orgRepository orgRepository, assignmentRepository assignmentRepository, accessScope accesscontrol.AccessScope) *service {
	return &service{
		orgRepository:        orgRepository,
		assignmentRepository: assignmentRepository,
		accessScope:          accessScope,
	}
}

func (s *service) List(role models.UserRole) ([]models.Org, error) {
	if err := s.accessScope.RequireAdmin(role, accesscontrol.ObjectOrg, accesscontrol.ActionRead); err != nil {
		return nil, err
	}
	return s.orgRepository.All()
}

// CreateOrg computes the exposure indicator and persists the org.
func (s *service) CreateOrg(role models.UserRole, org models.Org) (models.Org, error) {
	if err := s.accessScope.RequireAdmin(role, accesscontrol.ObjectOrg, accesscontrol.ActionCreate); err != nil {
		return models.Org{}, err
	}

	if org.Employees < 1 {
		return models.Org{}, core.NewValidationError("employees must be a positive number")
	}

	exposure := ComputeExposure(org.Sector, org.Employees, org.SystemType)
	org.ExposureScore = exposure.Score
	org.ExposureLevel = exposure.Level

	if err := s.orgRepository.Create(nil, &org); err != nil {
		return models.Org{}, fmt.Errorf("could not create org: %w", err)
	}
	return org, nil
}

// RecomputeExposure refreshes the derived exposure columns for orgs created
// before a scoring change.
func (s *service) RecomputeExposure(role models.UserRole, orgID uuid.UUID) (models.Org, error) {
	if err := s.accessScope.RequireAdmin(role, accesscontrol.ObjectOrg, accesscontrol.ActionUpdate); err != nil {
		return models.Org{}, err
	}

	org, err := s.orgRepository.Read(orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Org{}, core.ErrNotFound
		}
		return models.Org{}, fmt.Errorf("could not read org: %w", err)
	}

	exposure := ComputeExposure(org.Sector, org.Employees, org.SystemType)
	org.ExposureScore = exposure.Score
	org.ExposureLevel = exposure.Level

	if err := s.orgRepository.Save(nil, &org); err != nil {
		return models.Org{}, fmt.Errorf("could not save org: %w", err)
	}
	return org, nil
}

// DeleteOrg removes an org and its assignments. Orgs that still own assets
// cannot be deleted.
func (s *service) DeleteOrg(role models.UserRole, orgID uuid.UUID) error {
	if err := s.accessScope.RequireAdmin(role, accesscontrol.ObjectOrg, accesscontrol.ActionDelete); err != nil {
		return err
	}

	assetCount, err := s.orgRepository.CountAssets(orgID)
	if err != nil {
		return fmt.Errorf("could not count assets: %w", err)
	}
	if assetCount > 0 {
		return core.NewValidationError("org still owns assets, delete them first")
	}

	return s.orgRepository.Transaction(func(tx core.DB) error {
		if err := s.assignmentRepository.DeleteByOrgID(tx, orgID); err != nil {
			return fmt.Errorf("could not delete assignments: %w", err)
		}
		if err := s.orgRepository.Delete(tx, orgID); err != nil {
			return fmt.Errorf("could not delete org: %w", err)
		}
		return nil
	})
}
