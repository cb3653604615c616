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
	"github.com/l3montree-dev/devaudit/internal/database"
	"github.com/l3montree-dev/devaudit/internal/database/models"
	"gorm.io/gorm"
)

type assetVulnerabilityRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.AssetVulnerability]
}

func NewAssetVulnerabilityRepository(db *gorm.DB) *assetVulnerabilityRepository {
	return &assetVulnerabilityRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.AssetVulnerability](db),
	}
}

func (g *assetVulnerabilityRepository) FindByAssetAndVulnerability(assetID, vulnerabilityID uuid.UUID) (models.AssetVulnerability, error) {
	var selection models.AssetVulnerability
	err := g.db.Where("asset_id = ? AND vulnerability_id = ?", assetID, vulnerabilityID).First(&selection).Error
	return selection, err
}

func (g *assetVulnerabilityRepository) GetByAssetID(assetID uuid.UUID) ([]models.AssetVulnerability, error) {
	var selections []models.AssetVulnerability
	err := g.db.Preload("Vulnerability").Where("asset_id = ?", assetID).Find(&selections).Error
	return selections, err
}

// CreateIdempotent inserts a selection row. A concurrent toggle racing on the
// (asset, vulnerability) unique index is absorbed as already-applied instead
// of surfacing a conflict.
func (g *assetVulnerabilityRepository) CreateIdempotent(tx *gorm.DB, selection *models.AssetVulnerability) error {
	err := g.GetDB(tx).Create(selection).Error
	if err != nil && database.IsDuplicateKeyError(err) {
		return nil
	}
	return err
}

func (g *assetVulnerabilityRepository) DeleteByAssetAndVulnerability(tx *gorm.DB, assetID, vulnerabilityID uuid.UUID) error {
	return g.GetDB(tx).
		Where("asset_id = ? AND vulnerability_id = ?", assetID, vulnerabilityID).
		Delete(&models.AssetVulnerability{}).Error
}

// GetRemainingVulnNames returns the names of all vulnerabilities still
// selected on the asset, excluding the one being deselected. The selection
// manager uses this to decide which checklist rows are still required.
func (g *assetVulnerabilityRepository) GetRemainingVulnNames(tx *gorm.DB, assetID, excludedVulnerabilityID uuid.UUID) ([]string, error) {
	var names []string
	err := g.GetDB(tx).Model(&models.AssetVulnerability{}).
		Joins("JOIN vulnerabilities ON vulnerabilities.id = asset_vulnerabilities.vulnerability_id").
		Where("asset_vulnerabilities.asset_id = ? AND asset_vulnerabilities.vulnerability_id <> ?", assetID, excludedVulnerabilityID).
		Pluck("vulnerabilities.name", &names).Error
	return names, err
}
