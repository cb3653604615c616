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

type auditAssignmentRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.AuditAssignment]
}

func NewAuditAssignmentRepository(db *gorm.DB) *auditAssignmentRepository {
	return &auditAssignmentRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.AuditAssignment](db),
	}
}

// Exists reports whether the auditor is assigned to the org. This is the
// scope half of the access resolver: no assignment means no access for
// non-admins.
func (g *auditAssignmentRepository) Exists(orgID, auditorID uuid.UUID) (bool, error) {
	var count int64
	err := g.db.Model(&models.AuditAssignment{}).
		Where("org_id = ? AND auditor_id = ?", orgID, auditorID).
		Count(&count).Error
	return count > 0, err
}

// UpsertIgnoreExisting creates an assignment; an already existing
// (org, auditor) pair is not an error.
func (g *auditAssignmentRepository) UpsertIgnoreExisting(tx *gorm.DB, assignment *models.AuditAssignment) error {
	return g.GetDB(tx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "org_id"}, {Name: "auditor_id"}},
		DoNothing: true,
	}).Create(assignment).Error
}

func (g *auditAssignmentRepository) DeleteByOrgID(tx *gorm.DB, orgID uuid.UUID) error {
	return g.GetDB(tx).Where("org_id = ?", orgID).Delete(&models.AuditAssignment{}).Error
}
