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

package assignment

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/l3montree-dev/devaudit/internal/accesscontrol"
	"github.com/l3montree-dev/devaudit/internal/core"
	"github.com/l3montree-dev/devaudit/internal/database/models"
	"gorm.io/gorm"
)

type assignmentRepository interface {
	Read(id uuid.UUID) (models.AuditAssignment, error)
	UpsertIgnoreExisting(tx core.DB, assignment *models.AuditAssignment) error
	Delete(tx core.DB, id uuid.UUID) error
	All() ([]models.AuditAssignment, error)
}

type orgRepository interface {
	Read(id uuid.UUID) (models.Org, error)
}

type userRepository interface {
	Read(id uuid.UUID) (models.User, error)
}

type service struct {
	assignmentRepository assignmentRepository
	orgRepository        orgRepository
	userRepository       userRepository
	accessScope          accesscontrol.AccessScope
}

func NewService(assignmentRepository assignmentRepository, orgRepository orgRepository, userRepository userRepository, accessScope accesscontrol.AccessScope) *service {
	return &service{
		assignmentRepository: assignmentRepository,
		orgRepository:        orgRepository,
		userRepository:       userRepository,
		accessScope:          accessScope,
	}
}

func (s *service) ListAssignments(session core.AuthSession) ([]models.AuditAssignment, error) {
	if err := s.accessScope.RequireAdmin(session.GetRole(), accesscontrol.ObjectAssignment, accesscontrol.ActionRead); err != nil {
		return nil, err
	}
	return s.assignmentRepository.All()
}

// AssignAuditor grants an auditor scope over an org. Assigning the same
// auditor twice is a no-op, not a conflict.
func (s *service) AssignAuditor(session core.AuthSession, orgID, auditorID uuid.UUID) (models.AuditAssignment, error) {
	if err := s.accessScope.RequireAdmin(session.GetRole(), accesscontrol.ObjectAssignment, accesscontrol.ActionCreate); err != nil {
		return models.AuditAssignment{}, err
	}

	if _, err := s.orgRepository.Read(orgID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.AuditAssignment{}, core.ErrNotFound
		}
		return models.AuditAssignment{}, fmt.Errorf("could not read org: %w", err)
	}

	auditor, err := s.userRepository.Read(auditorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.AuditAssignment{}, core.ErrNotFound
		}
		return models.AuditAssignment{}, fmt.Errorf("could not read user: %w", err)
	}
	if auditor.Role != models.RoleAuditor {
		return models.AuditAssignment{}, core.NewValidationError("assignments can only name users with the AUDITOR role")
	}

	assignment := models.AuditAssignment{OrgID: orgID, AuditorID: auditorID}
	if err := s.assignmentRepository.UpsertIgnoreExisting(nil, &assignment); err != nil {
		return models.AuditAssignment{}, fmt.Errorf("could not create assignment: %w", err)
	}
	return assignment, nil
}

func (s *service) RevokeAssignment(session core.AuthSession, assignmentID uuid.UUID) error {
	if err := s.accessScope.RequireAdmin(session.GetRole(), accesscontrol.ObjectAssignment, accesscontrol.ActionDelete); err != nil {
		return err
	}

	if _, err := s.assignmentRepository.Read(assignmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.ErrNotFound
		}
		return fmt.Errorf("could not read assignment: %w", err)
	}
	return s.assignmentRepository.Delete(nil, assignmentID)
}
