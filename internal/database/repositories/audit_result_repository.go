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

type auditResultRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.AuditResult]
}

func NewAuditResultRepository(db *gorm.DB) *auditResultRepository {
	return &auditResultRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.AuditResult](db),
	}
}

func (g *auditResultRepository) GetByAssetID(assetID uuid.UUID) ([]models.AuditResult, error) {
	var results []models.AuditResult
	err := g.db.Preload("Control").
		Where("asset_id = ?", assetID).
		Order("created_at DESC").
		Find(&results).Error
	return results, err
}

func (g *auditResultRepository) GetProblematicByAssetID(assetID uuid.UUID) ([]models.AuditResult, error) {
	var results []models.AuditResult
	err := g.db.Preload("Control").
		Where("asset_id = ? AND status IN ?", assetID, []models.AuditStatus{models.AuditStatusNonCompliant, models.AuditStatusPartial}).
		Find(&results).Error
	return results, err
}

// UpsertKeepExisting seeds a checklist row for a freshly selected
// vulnerability. An existing row keeps its status and notes - the conflict
// policy is an explicit no-op, which makes re-selection idempotent.
func (g *auditResultRepository) UpsertKeepExisting(tx *gorm.DB, result *models.AuditResult) error {
	return g.GetDB(tx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "asset_id"}, {Name: "control_id"}},
		DoNothing: true,
	}).Create(result).Error
}

func (g *auditResultRepository) DeleteByAssetAndControlIDs(tx *gorm.DB, assetID uuid.UUID, controlIDs []uuid.UUID) error {
	if len(controlIDs) == 0 {
		return nil
	}
	return g.GetDB(tx).
		Where("asset_id = ? AND control_id IN ?", assetID, controlIDs).
		Delete(&models.AuditResult{}).Error
}
