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

package core

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/devaudit/internal/database/models"
	"github.com/labstack/echo/v4"
)

// AuthSession is what the identity provider hands us per request. The engine
// trusts the value as-is; role changes require a new session.
type AuthSession interface {
	GetUserID() uuid.UUID
	GetRole() models.UserRole
}

func GetSession(ctx Context) AuthSession {
	return ctx.Get("session").(AuthSession)
}

func SetSession(ctx Context, session AuthSession) {
	ctx.Set("session", session)
}

func GetAsset(ctx Context) models.Asset {
	return ctx.Get("asset").(models.Asset)
}

func SetAsset(ctx Context, asset models.Asset) {
	ctx.Set("asset", asset)
}

func GetOrg(ctx Context) models.Org {
	return ctx.Get("org").(models.Org)
}

func SetOrg(ctx Context, org models.Org) {
	ctx.Set("org", org)
}

// ParseUUIDParam reads a path parameter as uuid, raising a 400 on malformed
// input before any service is invoked.
func ParseUUIDParam(ctx Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(400, "invalid "+name).WithInternal(err)
	}
	return id, nil
}
