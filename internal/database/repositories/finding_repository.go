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

type findingRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Finding]
}

func NewFindingRepository(db *gorm.DB) *findingRepository {
	return &findingRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Finding](db),
	}
}

func (g *findingRepository) GetByAssetID(assetID uuid.UUID) ([]models.Finding, error) {
	var findings []models.Finding
	err := g.db.Preload("Control").
		Where("asset_id = ?", assetID).
		Order("created_at DESC").
		Find(&findings).Error
	return findings, err
}

// UpsertRefreshDerived inserts a finding or, on conflict with the
// (asset, control, issue) key, refreshes only the derived columns. The
// auditor-owned columns (status, owner, due date, root cause, evidence ref,
// treatment) are never part of the update set.
func (g *findingRepository) UpsertRefreshDerived(tx *gorm.DB, finding *models.Finding) error {
	return g.GetDB(tx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "asset_id"}, {Name: "control_id"}, {Name: "issue"}},
		DoUpdates: clause.AssignmentColumns([]string{"risk", "severity", "recommendation", "updated_at"}),
	}).Create(finding).Error
}
