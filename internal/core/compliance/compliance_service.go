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

package compliance

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/devaudit/internal/accesscontrol"
	"github.com/l3montree-dev/devaudit/internal/core"
	"github.com/l3montree-dev/devaudit/internal/database/models"
	"gorm.io/gorm"
)

type assetRepository interface {
	Read(id uuid.UUID) (models.Asset, error)
}

type auditResultRepository interface {
	GetByAssetID(assetID uuid.UUID) ([]models.AuditResult, error)
}

type assetVulnerabilityRepository interface {
	GetByAssetID(assetID uuid.UUID) ([]models.AssetVulnerability, error)
}

type findingRepository interface {
	GetByAssetID(assetID uuid.UUID) ([]models.Finding, error)
}

type evidenceRepository interface {
	CountPerControl(assetID uuid.UUID) (map[uuid.UUID]int, error)
}

type service struct {
	assetRepository              assetRepository
	auditResultRepository        auditResultRepository
	assetVulnerabilityRepository assetVulnerabilityRepository
	findingRepository            findingRepository
	evidenceRepository           evidenceRepository
	accessScope                  accesscontrol.AccessScope
}

func NewService(assetRepository assetRepository, auditResultRepository auditResultRepository, assetVulnerabilityRepository assetVulnerabilityRepository, findingRepository findingRepository, evidenceRepository evidenceRepository, accessScope accesscontrol.AccessScope) *service {
	return &service{
		assetRepository:              assetRepository,
		auditResultRepository:        auditResultRepository,
		assetVulnerabilityRepository: assetVulnerabilityRepository,
		findingRepository:            findingRepository,
		evidenceRepository:           evidenceRepository,
		accessScope:                  accessScope,
	}
}

func (s *service) ComputeCompliance(session core.AuthSession, assetID uuid.UUID) (Summary, error) {
	if err := s.authorize(session, assetID); err != nil {
		return Summary{}, err
	}

	results, err := s.auditResultRepository.GetByAssetID(assetID)
	if err != nil {
		return Summary{}, fmt.Errorf("could not read checklist: %w", err)
	}
	return Summarize(results), nil
}

func (s *service) GetStatementOfApplicability(session core.AuthSession, assetID uuid.UUID) ([]SoARow, error) {
	if err := s.authorize(session, assetID); err != nil {
		return nil, err
	}

	results, err := s.auditResultRepository.GetByAssetID(assetID)
	if err != nil {
		return nil, fmt.Errorf("could not read checklist: %w", err)
	}

	evidenceCounts, err := s.evidenceRepository.CountPerControl(assetID)
	if err != nil {
		return nil, fmt.Errorf("could not count evidence: %w", err)
	}
	return StatementOfApplicability(results, evidenceCounts), nil
}

// ReportSummary condenses an asset into the numbers an audit report leads
// with: compliance metrics, the three highest-scoring risks and the state of
// the findings register.
type ReportSummary struct {
	Compliance      Summary
	TopRisks        []models.AssetVulnerability
	OpenFindings    int
	ClosedFindings  int
	OverdueFindings int
}

func (s *service) GetReportSummary(session core.AuthSession, assetID uuid.UUID) (ReportSummary, error) {
	if err := s.authorize(session, assetID); err != nil {
		return ReportSummary{}, err
	}

	results, err := s.auditResultRepository.GetByAssetID(assetID)
	if err != nil {
		return ReportSummary{}, fmt.Errorf("could not read checklist: %w", err)
	}

	selections, err := s.assetVulnerabilityRepository.GetByAssetID(assetID)
	if err != nil {
		return ReportSummary{}, fmt.Errorf("could not read selections: %w", err)
	}

	findings, err := s.findingRepository.GetByAssetID(assetID)
	if err != nil {
		return ReportSummary{}, fmt.Errorf("could not read findings: %w", err)
	}

	sort.SliceStable(selections, func(i, j int) bool {
		return selections[i].RiskScore > selections[j].RiskScore
	})
	if len(selections) > 3 {
		selections = selections[:3]
	}

	summary := ReportSummary{
		Compliance: Summarize(results),
		TopRisks:   selections,
	}

	now := time.Now()
	for _, finding := range findings {
		switch finding.Status {
		case models.FindingStatusOpen:
			summary.OpenFindings++
		case models.FindingStatusClosed:
			summary.ClosedFindings++
		}
		if finding.Overdue(now) {
			summary.OverdueFindings++
		}
	}
	return summary, nil
}

func (s *service) authorize(session core.AuthSession, assetID uuid.UUID) error {
	asset, err := s.assetRepository.Read(assetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.ErrNotFound
		}
		return fmt.Errorf("could not read asset: %w", err)
	}
	return s.accessScope.RequireOrgAccess(session.GetUserID(), session.GetRole(), asset.OrgID, accesscontrol.ObjectChecklist, accesscontrol.ActionRead)
}
