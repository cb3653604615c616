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
)

type evidenceRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Evidence]
}

func NewEvidenceRepository(db *gorm.DB) *evidenceRepository {
	return &evidenceRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Evidence](db),
	}
}

func (g *evidenceRepository) GetByAssetID(assetID uuid.UUID) ([]models.Evidence, error) {
	var evidences []models.Evidence
	err := g.db.Where("asset_id = ?", assetID).Order("created_at DESC").Find(&evidences).Error
	return evidences, err
}

func (g *evidenceRepository) CountByAssetID(assetID uuid.UUID) (int64, error) {
	var count int64
	err := g.db.Model(&models.Evidence{}).Where("asset_id = ?", assetID).Count(&count).Error
	return count, err
}

// CountPerControl returns the number of evidence rows per control for the
// asset. Feeds the evidence column of the statement of applicability.
func (g *evidenceRepository) CountPerControl(assetID uuid.UUID) (map[uuid.UUID]int, error) {
	var rows []struct {
		ControlID uuid.UUID
		Count     int
	}
	err := g.db.Model(&models.Evidence{}).
		Select("control_id, count(*) as count").
		Where("asset_id = ?", assetID).
		Group("control_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uuid.UUID]int, len(rows))
	for _, row := range rows {
		counts[row.ControlID] = row.Count
	}
	return counts, nil
}
