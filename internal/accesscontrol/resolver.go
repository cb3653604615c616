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
	"fmt"

	"github.com/google/uuid"
	"github.com/l3montree-dev/devaudit/internal/core"
	"github.com/l3montree-dev/devaudit/internal/database/models"
)

type assignmentRepository interface {
	Exists(orgID, auditorID uuid.UUID) (bool, error)
}

var _ AccessScope = &resolver{}

type resolver struct {
	rbac        RoleVerifier
	assignments assignmentRepository
}

func NewResolver(rbac RoleVerifier, assignments assignmentRepository) *resolver {
	return &resolver{
		rbac:        rbac,
		assignments: assignments,
	}
}

func (r *resolver) RequireOrgAccess(userID uuid.UUID, role models.UserRole, orgID uuid.UUID, object Object, action Action) error {
	allowed, err := r.rbac.IsAllowed(role, object, action)
	if err != nil {
		return fmt.Errorf("could not verify role capability: %w", err)
	}
	if !allowed {
		return core.ErrForbidden
	}

	switch role {
	case models.RoleAdmin:
		// admins are not scoped
		return nil
	case models.RoleAuditor:
		assigned, err := r.assignments.Exists(orgID, userID)
		if err != nil {
			return fmt.Errorf("could not check audit assignment: %w", err)
		}
		if !assigned {
			return core.ErrForbidden
		}
		return nil
	case models.RoleAuditee:
		// auditees will be scoped by org membership once that relation
		// exists. Until then the scope check fails closed.
		return core.ErrForbidden
	}

	return core.ErrForbidden
}

func (r *resolver) RequireAdmin(role models.UserRole, object Object, action Action) error {
	if role != models.RoleAdmin {
		return core.ErrForbidden
	}
	allowed, err := r.rbac.IsAllowed(role, object, action)
	if err != nil {
		return fmt.Errorf("could not verify role capability: %w", err)
	}
	if !allowed {
		return core.ErrForbidden
	}
	return nil
}
