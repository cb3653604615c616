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

// Package finding materializes a findings register from checklist problems
// and lets auditors maintain the remediation fields on it.
package finding

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/devaudit/internal/accesscontrol"
	"github.com/l3montree-dev/devaudit/internal/core"
	"github.com/l3montree-dev/devaudit/internal/database/models"
	"gorm.io/gorm"
)

type findingRepository interface {
	Read(id uuid.UUID) (models.Finding, error)
	Save(tx core.DB, finding *models.Finding) error
	Delete(tx core.DB, id uuid.UUID) error
	GetByAssetID(assetID uuid.UUID) ([]models.Finding, error)
	UpsertRefreshDerived(tx core.DB, finding *models.Finding) error
	Transaction(txFunc func(core.DB) error) error
}

type auditResultRepository interface {
	GetProblematicByAssetID(assetID uuid.UUID) ([]models.AuditResult, error)
}

type assetRepository interface {
	Read(id uuid.UUID) (models.Asset, error)
}

type service struct {
	findingRepository     findingRepository
	auditResultRepository auditResultRepository
	assetRepository       assetRepository
	accessScope           accesscontrol.AccessScope
}

func NewService(findingRepository findingRepository, auditResultRepository auditResultRepository, assetRepository assetRepository, accessScope accesscontrol.AccessScope) *service {
	return &service{
		findingRepository:     findingRepository,
		auditResultRepository: auditResultRepository,
		assetRepository:       assetRepository,
		accessScope:           accessScope,
	}
}

func (s *service) ListFindings(session core.AuthSession, assetID uuid.UUID) ([]models.Finding, error) {
	asset, err := s.readAsset(assetID)
	if err != nil {
		return nil, err
	}
	if err := s.accessScope.RequireOrgAccess(session.GetUserID(), session.GetRole(), asset.OrgID, accesscontrol.ObjectFinding, accesscontrol.ActionRead); err != nil {
		return nil, err
	}
	return s.findingRepository.GetByAssetID(assetID)
}

// issueText composes the uniqueness key of a finding. A status change on the
// underlying checklist row produces a different issue text and therefore a
// new finding; the old one stays until closed by an auditor.
func issueText(result models.AuditResult) string {
	return fmt.Sprintf("%s: %s is %s", result.Control.Framework, result.Control.Name, result.Status)
}

func recommendationFor(result models.AuditResult) string {
	if strings.TrimSpace(result.Notes) != "" {
		return fmt.Sprintf("Based on audit notes: %s", result.Notes)
	}
	return fmt.Sprintf("Implement and verify control (%s): %s. Collect evidence (policy, screenshot, configuration) and re-audit.", result.Control.Framework, result.Control.Name)
}

func severityFor(status models.AuditStatus) string {
	if status == models.AuditStatusNonCompliant {
		return "High"
	}
	return "Medium"
}

// Generate derives findings from all NON_COMPLIANT and PARTIAL checklist
// rows of the asset. On conflict only the derived columns are refreshed;
// whatever the auditor entered survives. Findings whose checklist row has
// since turned COMPLIANT are left in place.
func (s *service) Generate(session core.AuthSession, assetID uuid.UUID) (int, error) {
	asset, err := s.readAsset(assetID)
	if err != nil {
		return 0, err
	}

	if err := s.accessScope.RequireOrgAccess(session.GetUserID(), session.GetRole(), asset.OrgID, accesscontrol.ObjectFinding, accesscontrol.ActionCreate); err != nil {
		return 0, err
	}

	problematic, err := s.auditResultRepository.GetProblematicByAssetID(assetID)
	if err != nil {
		return 0, fmt.Errorf("could not read checklist: %w", err)
	}

	err = s.findingRepository.Transaction(func(tx core.DB) error {
		for _, result := range problematic {
			severity := severityFor(result.Status)
			finding := models.Finding{
				AssetID:        assetID,
				ControlID:      result.ControlID,
				Issue:          issueText(result),
				Risk:           severity,
				Severity:       severity,
				Recommendation: recommendationFor(result),
				Status:         models.FindingStatusOpen,
				Treatment:      models.TreatmentMitigate,
			}
			if err := s.findingRepository.UpsertRefreshDerived(tx, &finding); err != nil {
				return fmt.Errorf("could not upsert finding: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(problematic), nil
}

// UpdateRequest carries the auditor-owned fields. Nil pointers leave the
// current value untouched.
type UpdateRequest struct {
	Status      *models.FindingStatus
	Owner       *string
	DueDate     *time.Time
	RootCause   *string
	EvidenceRef *string
	Treatment   *models.RiskTreatment
}

func (s *service) UpdateFinding(session core.AuthSession, findingID uuid.UUID, req UpdateRequest) (models.Finding, error) {
	finding, err := s.readFinding(findingID)
	if err != nil {
		return models.Finding{}, err
	}

	asset, err := s.readAsset(finding.AssetID)
	if err != nil {
		return models.Finding{}, err
	}

	if err := s.accessScope.RequireOrgAccess(session.GetUserID(), session.GetRole(), asset.OrgID, accesscontrol.ObjectFinding, accesscontrol.ActionUpdate); err != nil {
		return models.Finding{}, err
	}

	if req.Status != nil {
		if *req.Status != models.FindingStatusOpen && *req.Status != models.FindingStatusClosed {
			return models.Finding{}, core.NewValidationError(fmt.Sprintf("invalid finding status: %s", *req.Status))
		}
		finding.Status = *req.Status
	}
	if req.Treatment != nil {
		if !req.Treatment.Valid() {
			return models.Finding{}, core.NewValidationError(fmt.Sprintf("invalid risk treatment: %s", *req.Treatment))
		}
		finding.Treatment = *req.Treatment
	}
	if req.Owner != nil {
		finding.Owner = req.Owner
	}
	if req.DueDate != nil {
		finding.DueDate = req.DueDate
	}
	if req.RootCause != nil {
		finding.RootCause = req.RootCause
	}
	if req.EvidenceRef != nil {
		finding.EvidenceRef = req.EvidenceRef
	}

	if err := s.findingRepository.Save(nil, &finding); err != nil {
		return models.Finding{}, fmt.Errorf("could not save finding: %w", err)
	}
	return finding, nil
}

func (s *service) DeleteFinding(session core.AuthSession, findingID uuid.UUID) error {
	finding, err := s.readFinding(findingID)
	if err != nil {
		return err
	}

	asset, err := s.readAsset(finding.AssetID)
	if err != nil {
		return err
	}

	if err := s.accessScope.RequireOrgAccess(session.GetUserID(), session.GetRole(), asset.OrgID, accesscontrol.ObjectFinding, accesscontrol.ActionDelete); err != nil {
		return err
	}
	return s.findingRepository.Delete(nil, findingID)
}

func (s *service) readFinding(findingID uuid.UUID) (models.Finding, error) {
	finding, err := s.findingRepository.Read(findingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Finding{}, core.ErrNotFound
		}
		return models.Finding{}, fmt.Errorf("could not read finding: %w", err)
	}
	return finding, nil
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
