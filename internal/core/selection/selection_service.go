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

// Package selection implements the toggle that attaches vulnerabilities to
// assets and keeps the derived checklist in sync with the selection set.
package selection

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/l3montree-dev/devaudit/internal/accesscontrol"
	"github.com/l3montree-dev/devaudit/internal/core"
	"github.com/l3montree-dev/devaudit/internal/core/risk"
	"github.com/l3montree-dev/devaudit/internal/database/models"
	"gorm.io/gorm"
)

type assetRepository interface {
	Read(id uuid.UUID) (models.Asset, error)
}

type vulnerabilityRepository interface {
	Read(id uuid.UUID) (models.Vulnerability, error)
}

type controlRepository interface {
	GetByMappedVulnName(name string) ([]models.Control, error)
}

type assetVulnerabilityRepository interface {
	FindByAssetAndVulnerability(assetID, vulnerabilityID uuid.UUID) (models.AssetVulnerability, error)
	GetByAssetID(assetID uuid.UUID) ([]models.AssetVulnerability, error)
	CreateIdempotent(tx core.DB, selection *models.AssetVulnerability) error
	DeleteByAssetAndVulnerability(tx core.DB, assetID, vulnerabilityID uuid.UUID) error
	GetRemainingVulnNames(tx core.DB, assetID, excludedVulnerabilityID uuid.UUID) ([]string, error)
	Transaction(txFunc func(core.DB) error) error
}

type auditResultRepository interface {
	UpsertKeepExisting(tx core.DB, result *models.AuditResult) error
	DeleteByAssetAndControlIDs(tx core.DB, assetID uuid.UUID, controlIDs []uuid.UUID) error
}

// ToggleResult reports what a toggle did, so the caller can tell a select
// from a deselect without a second query.
type ToggleResult struct {
	Selected       bool
	Selection      models.AssetVulnerability
	SeededControls int
	RemovedResults []uuid.UUID
}

type service struct {
	assetRepository              assetRepository
	vulnerabilityRepository      vulnerabilityRepository
	controlRepository            controlRepository
	assetVulnerabilityRepository assetVulnerabilityRepository
	auditResultRepository        auditResultRepository
	accessScope                  accesscontrol.AccessScope
}

func NewService(assetRepository assetRepository, vulnerabilityRepository vulnerabilityRepository, controlRepository controlRepository, assetVulnerabilityRepository assetVulnerabilityRepository, auditResultRepository auditResultRepository, accessScope accesscontrol.AccessScope) *service {
	return &service{
		assetRepository:              assetRepository,
		vulnerabilityRepository:      vulnerabilityRepository,
		controlRepository:            controlRepository,
		assetVulnerabilityRepository: assetVulnerabilityRepository,
		auditResultRepository:        auditResultRepository,
		accessScope:                  accessScope,
	}
}

func (s *service) ListSelections(session core.AuthSession, assetID uuid.UUID) ([]models.AssetVulnerability, error) {
	asset, err := s.readAsset(assetID)
	if err != nil {
		return nil, err
	}
	if err := s.accessScope.RequireOrgAccess(session.GetUserID(), session.GetRole(), asset.OrgID, accesscontrol.ObjectSelection, accesscontrol.ActionRead); err != nil {
		return nil, err
	}
	return s.assetVulnerabilityRepository.GetByAssetID(assetID)
}

// Toggle flips a vulnerability selection on an asset. Selecting scores the
// risk and seeds a NON_COMPLIANT checklist row per mapped control; auditor
// edits on existing rows survive a re-select. Deselecting removes only the
// checklist rows that no remaining selection still requires, since controls
// can be shared across vulnerabilities.
func (s *service) Toggle(session core.AuthSession, assetID, vulnerabilityID uuid.UUID) (ToggleResult, error) {
	asset, err := s.readAsset(assetID)
	if err != nil {
		return ToggleResult{}, err
	}

	if err := s.accessScope.RequireOrgAccess(session.GetUserID(), session.GetRole(), asset.OrgID, accesscontrol.ObjectSelection, accesscontrol.ActionCreate); err != nil {
		return ToggleResult{}, err
	}

	vuln, err := s.vulnerabilityRepository.Read(vulnerabilityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ToggleResult{}, core.ErrNotFound
		}
		return ToggleResult{}, fmt.Errorf("could not read vulnerability: %w", err)
	}

	existing, err := s.assetVulnerabilityRepository.FindByAssetAndVulnerability(assetID, vulnerabilityID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return ToggleResult{}, fmt.Errorf("could not look up selection: %w", err)
	}

	if err == nil {
		return s.deselect(asset, vuln, existing)
	}
	return s.selectVulnerability(asset, vuln)
}

func (s *service) selectVulnerability(asset models.Asset, vuln models.Vulnerability) (ToggleResult, error) {
	likelihood := vuln.DefaultLikelihood
	impact := risk.AdjustedImpact(asset.CIA, vuln.DefaultImpact)
	score := risk.Score(likelihood, impact)

	selection := models.AssetVulnerability{
		AssetID:         asset.ID,
		VulnerabilityID: vuln.ID,
		Likelihood:      likelihood,
		Impact:          impact,
		RiskScore:       score,
		RiskLevel:       risk.LevelFromScore(score),
	}

	controls, err := s.controlRepository.GetByMappedVulnName(vuln.Name)
	if err != nil {
		return ToggleResult{}, fmt.Errorf("could not resolve controls: %w", err)
	}

	err = s.assetVulnerabilityRepository.Transaction(func(tx core.DB) error {
		if err := s.assetVulnerabilityRepository.CreateIdempotent(tx, &selection); err != nil {
			return fmt.Errorf("could not create selection: %w", err)
		}
		for _, control := range controls {
			result := models.AuditResult{
				AssetID:   asset.ID,
				ControlID: control.ID,
				Status:    models.AuditStatusNonCompliant,
				Notes:     fmt.Sprintf("Auto-generated from vulnerability: %s", vuln.Name),
			}
			if err := s.auditResultRepository.UpsertKeepExisting(tx, &result); err != nil {
				return fmt.Errorf("could not seed checklist row: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return ToggleResult{}, err
	}

	return ToggleResult{
		Selected:       true,
		Selection:      selection,
		SeededControls: len(controls),
	}, nil
}

func (s *service) deselect(asset models.Asset, vuln models.Vulnerability, existing models.AssetVulnerability) (ToggleResult, error) {
	result := ToggleResult{Selected: false, Selection: existing}

	err := s.assetVulnerabilityRepository.Transaction(func(tx core.DB) error {
		remaining, err := s.assetVulnerabilityRepository.GetRemainingVulnNames(tx, asset.ID, vuln.ID)
		if err != nil {
			return fmt.Errorf("could not list remaining selections: %w", err)
		}

		stillRequired := make(map[uuid.UUID]bool)
		for _, name := range remaining {
			controls, err := s.controlRepository.GetByMappedVulnName(name)
			if err != nil {
				return fmt.Errorf("could not resolve controls: %w", err)
			}
			for _, control := range controls {
				stillRequired[control.ID] = true
			}
		}

		controls, err := s.controlRepository.GetByMappedVulnName(vuln.Name)
		if err != nil {
			return fmt.Errorf("could not resolve controls: %w", err)
		}

		var removable []uuid.UUID
		for _, control := range controls {
			if !stillRequired[control.ID] {
				removable = append(removable, control.ID)
			}
		}

		if err := s.assetVulnerabilityRepository.DeleteByAssetAndVulnerability(tx, asset.ID, vuln.ID); err != nil {
			return fmt.Errorf("could not delete selection: %w", err)
		}
		if err := s.auditResultRepository.DeleteByAssetAndControlIDs(tx, asset.ID, removable); err != nil {
			return fmt.Errorf("could not delete checklist rows: %w", err)
		}

		result.RemovedResults = removable
		return nil
	})
	if err != nil {
		return ToggleResult{}, err
	}
	return result, nil
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
