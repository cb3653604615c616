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

type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "Low"
	RiskLevelMedium   RiskLevel = "Medium"
	RiskLevelHigh     RiskLevel = "High"
	RiskLevelCritical RiskLevel = "Critical"
)

// AssetVulnerability is the selection row of a vulnerability on an asset.
// It is the sole source of truth for "is this vulnerability active on this
// asset". The unique index on (asset, vulnerability) is the authoritative
// de-duplication mechanism under concurrent toggles.
type AssetVulnerability struct {
	Model
	AssetID         uuid.UUID `json:"assetId" gorm:"uniqueIndex:idx_asset_vulnerability;type:uuid;not null;"`
	VulnerabilityID uuid.UUID `json:"vulnerabilityId" gorm:"uniqueIndex:idx_asset_vulnerability;type:uuid;not null;"`

	Likelihood int       `json:"likelihood" gorm:"not null;"`
	Impact     int       `json:"impact" gorm:"not null;"`
	RiskScore  int       `json:"riskScore" gorm:"not null;"`
	RiskLevel  RiskLevel `json:"riskLevel" gorm:"type:text;not null;"`

	Asset         Asset         `json:"asset" gorm:"foreignKey:AssetID;constraint:OnDelete:CASCADE;"`
	Vulnerability Vulnerability `json:"vulnerability" gorm:"foreignKey:VulnerabilityID;constraint:OnDelete:CASCADE;"`
}

func (m AssetVulnerability) TableName() string {
	return "asset_vulnerabilities"
}
