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

// Package checklist exposes the manual side of the audit checklist: reading
// the derived rows and transitioning their status. Row creation and removal
// is owned by the selection package.
package checklist

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/l3montree-dev/devaudit/internal/accesscontrol"
	"github.com/l3montree-dev/devaudit/internal/core"
	"github.com/l3montree-dev/devaudit/internal/database/models"
	"gorm.io/gorm"
)

type auditResultRepository interface {
	Read(id uuid.UUID) (models.AuditResult, error)
	Save(tx core.DB, result *models.AuditResult) error
	GetByAssetID(assetID uuid.UUID) ([]models.AuditResult, error)
}

type assetRepository interface {
	Read(id uuid.UUID) (models.Asset, error)
}

type service struct {
	auditResultRepository auditResultRepository
	assetRepository       assetRepository
	accessScope           accesscontrol.AccessScope
}

func NewService(auditResultRepository auditResultRepository, assetRepository assetRepository, accessScope accesscontrol.AccessScope) *service {
	return &service{
		auditResultRepository: auditResultRepository,
		assetRepository:       assetRepository,
		accessScope:           accessScope,
	}
}

func (s *service) GetChecklist(session core.AuthSession, assetID uuid.UUID) ([]models.AuditResult, error) {
	asset, err := s.assetRepository.Read(assetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, core.ErrNotFound
		}
		return nil, fmt.Errorf("could not read asset: %w", err)
	}

	if err := s.accessScope.RequireOrgAccess(session.GetUserID(), session.GetRole(), asset.OrgID, accesscontrol.ObjectChecklist, accesscontrol.ActionRead); err != nil {
		return nil, err
	}
	return s.auditResultRepository.GetByAssetID(assetID)
}

// UpdateAuditStatus transitions a checklist row. The four statuses have no
// forced ordering; auditors move freely between them. NOT_APPLICABLE
// requires a justification, and the justification does not survive a
// transition away from NOT_APPLICABLE.
func (s *service) UpdateAuditStatus(session core.AuthSession, auditID uuid.UUID, status models.AuditStatus, notes string, justification *string) (models.AuditResult, error) {
	if !status.Valid() {
		return models.AuditResult{}, core.NewValidationError(fmt.Sprintf("invalid audit status: %s", status))
	}

	result, err := s.auditResultRepository.Read(auditID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.AuditResult{}, core.ErrNotFound
		}
		return models.AuditResult{}, fmt.Errorf("could not read audit result: %w", err)
	}

	asset, err := s.assetRepository.Read(result.AssetID)
	if err != nil {
		return models.AuditResult{}, fmt.Errorf("could not read asset: %w", err)
	}

	if err := s.accessScope.RequireOrgAccess(session.GetUserID(), session.GetRole(), asset.OrgID, accesscontrol.ObjectChecklist, accesscontrol.ActionUpdate); err != nil {
		return models.AuditResult{}, err
	}

	if status == models.AuditStatusNotApplicable {
		if justification == nil || strings.TrimSpace(*justification) == "" {
			return models.AuditResult{}, core.NewValidationError("a justification is required for NOT_APPLICABLE")
		}
		result.Justification = justification
	} else {
		result.Justification = nil
	}

	result.Status = status
	result.Notes = notes

	if err := s.auditResultRepository.Save(nil, &result); err != nil {
		return models.AuditResult{}, fmt.Errorf("could not save audit result: %w", err)
	}
	return result, nil
}
