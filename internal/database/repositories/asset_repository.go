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

type assetRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Asset]
}

func NewAssetRepository(db *gorm.DB) *assetRepository {
	return &assetRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Asset](db),
	}
}

func (g *assetRepository) GetByOrgID(orgID uuid.UUID) ([]models.Asset, error) {
	var assets []models.Asset
	err := g.db.Where("org_id = ?", orgID).Order("name ASC").Find(&assets).Error
	return assets, err
}

// DeleteWithDerivedState removes the asset together with all rows derived
// from it. Foreign keys cascade already; the explicit deletes keep the
// operation transactional next to other statements.
func (g *assetRepository) DeleteWithDerivedState(tx *gorm.DB, assetID uuid.UUID) error {
	db := g.GetDB(tx)
	if err := db.Where("asset_id = ?", assetID).Delete(&models.AssetVulnerability{}).Error; err != nil {
		return err
	}
	if err := db.Where("asset_id = ?", assetID).Delete(&models.AuditResult{}).Error; err != nil {
		return err
	}
	if err := db.Where("asset_id = ?", assetID).Delete(&models.Finding{}).Error; err != nil {
		return err
	}
	if err := db.Where("asset_id = ?", assetID).Delete(&models.Evidence{}).Error; err != nil {
		return err
	}
	return db.Delete(&models.Asset{}, "id = ?", assetID).Error
}
