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

type orgRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Org]
}

func NewOrgRepository(db *gorm.DB) *orgRepository {
	return &orgRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Org](db),
	}
}

func (g *orgRepository) ReadBySlug(slug string) (models.Org, error) {
	var org models.Org
	err := g.db.Where("slug = ?", slug).First(&org).Error
	return org, err
}

func (g *orgRepository) CountAssets(orgID uuid.UUID) (int64, error) {
	var count int64
	err := g.db.Model(&models.Asset{}).Where("org_id = ?", orgID).Count(&count).Error
	return count, err
}
