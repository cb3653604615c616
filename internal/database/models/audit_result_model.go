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

import "github.com/google/uuid"

type AuditStatus string

const (
	AuditStatusCompliant     AuditStatus = "COMPLIANT"
	AuditStatusPartial       AuditStatus = "PARTIAL"
	AuditStatusNonCompliant  AuditStatus = "NON_COMPLIANT"
	AuditStatusNotApplicable AuditStatus = "NOT_APPLICABLE"
)

func (s AuditStatus) Valid() bool {
	switch s {
	case AuditStatusCompliant, AuditStatusPartial, AuditStatusNonCompliant, AuditStatusNotApplicable:
		return true
	}
	return false
}

// AuditResult is a checklist item: the compliance status of a single control
// on a single asset. Rows are auto-created by the checklist synchronizer when
// a vulnerability is selected and manually transitioned by an auditor. There
// is no forced ordering between the four states. Justification is mandatory
// iff status is NOT_APPLICABLE and is cleared on any transition away.
type AuditResult struct {
	Model
	AssetID   uuid.UUID `json:"assetId" gorm:"uniqueIndex:idx_audit_asset_control;type:uuid;not null;"`
	ControlID uuid.UUID `json:"controlId" gorm:"uniqueIndex:idx_audit_asset_control;type:uuid;not null;"`

	Status        AuditStatus `json:"status" gorm:"type:text;not null;default:'NON_COMPLIANT';"`
	Notes         string      `json:"notes" gorm:"type:text;"`
	Justification *string     `json:"justification" gorm:"type:text;"`

	Asset   Asset   `json:"asset" gorm:"foreignKey:AssetID;constraint:OnDelete:CASCADE;"`
	Control Control `json:"control" gorm:"foreignKey:ControlID;constraint:OnDelete:CASCADE;"`
}

func (m AuditResult) TableName() string {
	return "audit_results"
}
