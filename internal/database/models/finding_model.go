// Copyright (C) 2024 Tim Bastin, l3montree GmbH
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

package models

import (
	"time"

	"github.com/google/uuid"
)

type FindingStatus string

const (
	FindingStatusOpen   FindingStatus = "OPEN"
	FindingStatusClosed FindingStatus = "CLOSED"
)

type RiskTreatment string

const (
	TreatmentMitigate RiskTreatment = "MITIGATE"
	TreatmentAccept   RiskTreatment = "ACCEPT"
	TreatmentTransfer RiskTreatment = "TRANSFER"
	TreatmentAvoid    RiskTreatment = "AVOID"
)

func (t RiskTreatment) Valid() bool {
	switch t {
	case TreatmentMitigate, TreatmentAccept, TreatmentTransfer, TreatmentAvoid:
		return true
	}
	return false
}

// Finding is a tracked remediation item derived from a non-compliant or
// partial checklist entry. The composed issue text is part of the uniqueness
// key: a changed audit status creates a new finding instead of updating the
// old one. Auditor-owned fields survive regeneration, and findings are never
// deleted by regeneration - remediation history is preserved until an auditor
// closes or deletes them explicitly.
type Finding struct {
	Model
	AssetID   uuid.UUID `json:"assetId" gorm:"uniqueIndex:idx_finding_asset_control_issue;type:uuid;not null;"`
	ControlID uuid.UUID `json:"controlId" gorm:"uniqueIndex:idx_finding_asset_control_issue;type:uuid;not null;"`
	Issue     string    `json:"issue" gorm:"uniqueIndex:idx_finding_asset_control_issue;type:text;not null;"`

	// refreshed on every regeneration
	Risk           string `json:"risk" gorm:"type:text;not null;"`
	Severity       string `json:"severity" gorm:"type:text;not null;"`
	Recommendation string `json:"recommendation" gorm:"type:text;not null;"`

	// auditor-owned, never touched by the generator
	Status      FindingStatus `json:"status" gorm:"type:text;not null;default:'OPEN';"`
	Owner       *string       `json:"owner" gorm:"type:text;"`
	DueDate     *time.Time    `json:"dueDate" gorm:"type:timestamp with time zone;"`
	RootCause   *string       `json:"rootCause" gorm:"type:text;"`
	EvidenceRef *string       `json:"evidenceRef" gorm:"type:text;"`
	Treatment   RiskTreatment `json:"riskTreatment" gorm:"type:text;not null;default:'MITIGATE';"`

	Asset   Asset   `json:"asset" gorm:"foreignKey:AssetID;constraint:OnDelete:CASCADE;"`
	Control Control `json:"control" gorm:"foreignKey:ControlID;constraint:OnDelete:CASCADE;"`
}

func (m Finding) TableName() string {
	return "findings"
}

// Overdue reports whether the finding is still open past its due date.
func (m Finding) Overdue(now time.Time) bool {
	if m.Status != FindingStatusOpen || m.DueDate == nil {
		return false
	}
	y, mo, d := m.DueDate.Date()
	due := time.Date(y, mo, d, 0, 0, 0, 0, now.Location())
	y, mo, d = now.Date()
	today := time.Date(y, mo, d, 0, 0, 0, 0, now.Location())
	return due.Before(today)
}
