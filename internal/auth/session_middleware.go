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

// Package auth builds the per-request session from the identity provider.
// The engine trusts the forwarded identity as-is; authenticating the caller
// is the upstream proxy's job.
package auth

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/devaudit/internal/core"
	"github.com/l3montree-dev/devaudit/internal/database/models"
	"github.com/labstack/echo/v4"
)

const (
	userIDHeader = "X-User-Id"
	roleHeader   = "X-User-Role"
)

type session struct {
	userID uuid.UUID
	role   models.UserRole
}

func (s session) GetUserID() uuid.UUID {
	return s.userID
}

func (s session) GetRole() models.UserRole {
	return s.role
}

func NewSession(userID uuid.UUID, role models.UserRole) core.AuthSession {
	return session{userID: userID, role: role}
}

// SessionMiddleware reads the forwarded identity headers and rejects the
// request if they are missing or malformed. Every route behind it can rely
// on core.GetSession returning a valid session.
func SessionMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, err := uuid.Parse(c.Request().Header.Get(userIDHeader))
			if err != nil {
				return echo.NewHTTPError(401, "missing or invalid user identity").WithInternal(err)
			}

			role := models.UserRole(c.Request().Header.Get(roleHeader))
			if !role.Valid() {
				return echo.NewHTTPError(401, "missing or invalid user role")
			}

			core.SetSession(c, NewSession(userID, role))
			return next(c)
		}
	}
}
