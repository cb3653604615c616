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

// SensitivityLevel is the CIA classification of a single asset. A high
// classification perturbs the impact part of the risk score.
type SensitivityLevel string

const (
	SensitivityLow    SensitivityLevel = "Low"
	SensitivityMedium SensitivityLevel = "Medium"
	SensitivityHigh   SensitivityLevel = "High"
)

func (s SensitivityLevel) Valid() bool {
	switch s {
	case SensitivityLow, SensitivityMedium, SensitivityHigh:
		return true
	}
	return false
}

type Asset struct {
	Model
	Name     string           `json:"name" gorm:"type:text;not null;"`
	Slug     string           `json:"slug" gorm:"type:text;uniqueIndex:idx_asset_org_slug;not null;"`
	OrgID    uuid.UUID        `json:"orgId" gorm:"uniqueIndex:idx_asset_org_slug;type:uuid;not null;"`
	Owner    string           `json:"owner" gorm:"type:text;"`
	Location string           `json:"location" gorm:"type:text;"`
	Type     string           `json:"type" gorm:"type:text;"`
	CIA      SensitivityLevel `json:"cia" gorm:"type:text;not null;default:'Medium';"`

	Org Org `json:"org" gorm:"foreignKey:OrgID;constraint:OnDelete:CASCADE;"`

	Selections []AssetVulnerability `json:"selections" gorm:"foreignKey:AssetID;constraint:OnDelete:CASCADE;"`
}

func (m Asset) TableName() string {
	return "assets"
}

func (m *Asset) GetSlug() string {
	return m.Slug
}

func (m *Asset) SetSlug(slug string) {
	m.Slug = slug
}
