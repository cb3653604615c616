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

package accesscontrol

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/devaudit/internal/database/models"
)

type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

type Object string

const (
	ObjectOrg        Object = "org"
	ObjectAsset      Object = "asset"
	ObjectSelection  Object = "selection"
	ObjectChecklist  Object = "checklist"
	ObjectFinding    Object = "finding"
	ObjectEvidence   Object = "evidence"
	ObjectAssignment Object = "assignment"
	ObjectCatalog    Object = "catalog"
)

// RoleVerifier answers the capability half of authorization: may this role
// perform this action on this kind of object at all. Backed by casbin in
// production, mockable in tests.
type RoleVerifier interface {
	IsAllowed(role models.UserRole, object Object, action Action) (bool, error)
}

// AccessScope is the single authorization gate consulted by every mutating
// operation of the engine. It combines the role capability check with the
// assignment-based org scoping of auditors. The failure mode is a Forbidden
// error, never a degraded response.
type AccessScope interface {
	// RequireOrgAccess checks object/action capability plus org scope.
	RequireOrgAccess(userID uuid.UUID, role models.UserRole, orgID uuid.UUID, object Object, action Action) error
	// RequireAdmin checks object/action capability without any org scope,
	// for catalog and administration surfaces.
	RequireAdmin(role models.UserRole, object Object, action Action) error
}
