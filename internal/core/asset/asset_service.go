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

package asset

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/l3montree-dev/devaudit/internal/accesscontrol"
	"github.com/l3montree-dev/devaudit/internal/core"
	"github.com/l3montree-dev/devaudit/internal/database"
	"github.com/l3montree-dev/devaudit/internal/database/models"
	"gorm.io/gorm"
)

type assetRepository interface {
	Read(id uuid.UUID) (models.Asset, error)
	Create(tx core.DB, asset *models.Asset) error
	GetByOrgID(orgID uuid.UUID) ([]models.Asset, error)
	DeleteWithDerivedState(tx core.DB, assetID uuid.UUID) error
	Transaction(txFunc func(core.DB) error) error
}

type orgRepository interface {
	Read(id uuid.UUID) (models.Org, error)
}

type service struct {
	assetRepository assetRepository
	orgRepository   orgRepository
	accessScope     accesscontrol.AccessScope
}

func NewService(assetRepository assetRepository, orgRepository orgRepository, accessScope accesscontrol.AccessScope) *service {
	return &service{
		assetRepository: assetRepository,
		orgRepository:   orgRepository,
		accessScope:     accessScope,
	}
}

func (s *service) ListAssets(session core.AuthSession, orgID uuid.UUID) ([]models.Asset, error) {
	if err := s.accessScope.RequireOrgAccess(session.GetUserID(), session.GetRole(), orgID, accesscontrol.ObjectAsset, accesscontrol.ActionRead); err != nil {
		return nil, err
	}
	return s.assetRepository.GetByOrgID(orgID)
}

func (s *service) GetAsset(session core.AuthSession, assetID uuid.UUID) (models.Asset, error) {
	asset, err := s.readAsset(assetID)
	if err != nil {
		return models.Asset{}, err
	}
	if err := s.accessScope.RequireOrgAccess(session.GetUserID(), session.GetRole(), asset.OrgID, accesscontrol.ObjectAsset, accesscontrol.ActionRead); err != nil {
		return models.Asset{}, err
	}
	return asset, nil
}

// CreateAsset registers an asset under an org. Asset administration is an
// admin surface; auditors work on assets, they do not create them.
func (s *service) CreateAsset(session core.AuthSession, asset models.Asset) (models.Asset, error) {
	if err := s.accessScope.RequireAdmin(session.GetRole(), accesscontrol.ObjectAsset, accesscontrol.ActionCreate); err != nil {
		return models.Asset{}, err
	}

	if !asset.CIA.Valid() {
		return models.Asset{}, core.NewValidationError(fmt.Sprintf("invalid cia classification: %s", asset.CIA))
	}

	if _, err := s.orgRepository.Read(asset.OrgID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Asset{}, core.ErrNotFound
		}
		return models.Asset{}, fmt.Errorf("could not read org: %w", err)
	}

	if err := s.assetRepository.Create(nil, &asset); err != nil {
		if database.IsDuplicateKeyError(err) {
			return models.Asset{}, core.ErrConflict
		}
		return models.Asset{}, fmt.Errorf("could not create asset: %w", err)
	}
	return asset, nil
}

// DeleteAsset removes the asset together with its selections, checklist,
// findings and evidence metadata in one transaction.
func (s *service) DeleteAsset(session core.AuthSession, assetID uuid.UUID) error {
	if err := s.accessScope.RequireAdmin(session.GetRole(), accesscontrol.ObjectAsset, accesscontrol.ActionDelete); err != nil {
		return err
	}

	if _, err := s.readAsset(assetID); err != nil {
		return err
	}

	return s.assetRepository.Transaction(func(tx core.DB) error {
		return s.assetRepository.DeleteWithDerivedState(tx, assetID)
	})
}

func (s *service) readAsset(assetID uuid.UUID) (models.Asset, error) {
	asset, err := s.assetRepository.Read(assetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Asset{}, core.ErrNotFound
		}
		return models.Asset{}, fmt.Errorf("could not read asset: %w", err)
	}
	return asset, nil
}
