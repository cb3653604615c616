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

type ExposureLevel string

const (
	ExposureLevelLow    ExposureLevel = "LOW"
	ExposureLevelMedium ExposureLevel = "MEDIUM"
	ExposureLevelHigh   ExposureLevel = "HIGH"
)

type Org struct {
	Model
	Name       string `json:"name" gorm:"type:text;not null;"`
	Slug       string `json:"slug" gorm:"type:text;uniqueIndex;not null;"`
	Sector     string `json:"sector" gorm:"type:text;not null;"`
	Employees  int    `json:"employees" gorm:"not null;"`
	SystemType string `json:"systemType" gorm:"type:text;not null;"`

	// derived by the exposure calculator on create and on-demand recompute
	ExposureScore int           `json:"exposureScore" gorm:"not null;default:0;"`
	ExposureLevel ExposureLevel `json:"exposureLevel" gorm:"type:text;not null;default:'LOW';"`

	Assets           []Asset           `json:"assets" gorm:"foreignKey:OrgID;constraint:OnDelete:CASCADE;"`
	AuditAssignments []AuditAssignment `json:"auditAssignments" gorm:"foreignKey:OrgID;constraint:OnDelete:CASCADE;"`
}

func (m Org) TableName() string {
	return "orgs"
}

func (m *Org) GetSlug() string {
	return m.Slug
}

func (m *Org) SetSlug(slug string) {
	m.Slug = slug
}
