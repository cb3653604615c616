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

package repositories

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/devaudit/internal/database/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type vulnerabilityRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Vulnerability]
}

func NewVulnerabilityRepository(db *gorm.DB) *vulnerabilityRepository {
	return &vulnerabilityRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Vulnerability](db),
	}
}

func (g *vulnerabilityRepository) ReadByName(name string) (models.Vulnerability, error) {
	var vuln models.Vulnerability
	err := g.db.Where("name = ?", name).First(&vuln).Error
	return vuln, err
}

// UpsertByName refreshes a catalog entry during seeding without duplicating
// rows. The vulnerability name is the conflict target.
func (g *vulnerabilityRepository) UpsertByName(tx *gorm.DB, vuln *models.Vulnerability) error {
	return g.GetDB(tx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"category", "default_likelihood", "default_impact", "updated_at"}),
	}).Create(vuln).Error
}

type controlRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Control]
}

func NewControlRepository(db *gorm.DB) *controlRepository {
	return &controlRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Control](db),
	}
}

func (g *controlRepository) GetByMappedVulnName(name string) ([]models.Control, error) {
	var controls []models.Control
	err := g.db.Where("mapped_vuln_name = ?", name).Find(&controls).Error
	return controls, err
}

// CreateIfMissing seeds a control row. A control is not unique by name alone,
// so the whole (framework, name, mapped vuln name) triple identifies it.
func (g *controlRepository) CreateIfMissing(tx *gorm.DB, control *models.Control) error {
	db := g.GetDB(tx)
	var count int64
	err := db.Model(&models.Control{}).
		Where("framework = ? AND name = ? AND mapped_vuln_name = ?", control.Framework, control.Name, control.MappedVulnName).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return db.Create(control).Error
}

// DistinctMappedVulnNames returns every mapped vulnerability name referenced
// by the control catalog. Used by the catalog integrity check.
func (g *controlRepository) DistinctMappedVulnNames() ([]string, error) {
	var names []string
	err := g.db.Model(&models.Control{}).Distinct("mapped_vuln_name").Pluck("mapped_vuln_name", &names).Error
	return names, err
}
