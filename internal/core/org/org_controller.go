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

package org

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/devaudit/internal/core"
	"github.com/l3montree-dev/devaudit/internal/database/models"
	"github.com/labstack/echo/v4"
)

type orgService interface {
	List(role models.UserRole) ([]models.Org, error)
	CreateOrg(role models.UserRole, org models.Org) (models.Org, error)
	RecomputeExposure(role models.UserRole, orgID uuid.UUID) (models.Org, error)
	DeleteOrg(role models.UserRole, orgID uuid.UUID) error
}

type httpController struct {
	orgService orgService
}

func NewHTTPController(orgService orgService) *httpController {
	return &httpController{
		orgService: orgService,
	}
}

func (c *httpController) List(ctx core.Context) error {
	orgs, err := c.orgService.List(core.GetSession(ctx).GetRole())
	if err != nil {
		return core.TranslateError(err)
	}
	return ctx.JSON(200, toDTOs(orgs))
}

func (c *httpController) Create(ctx core.Context) error {
	var req createRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := core.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	org, err := c.orgService.CreateOrg(core.GetSession(ctx).GetRole(), req.toModel())
	if err != nil {
		return core.TranslateError(err)
	}
	return ctx.JSON(200, toDTO(org))
}

func (c *httpController) RecomputeExposure(ctx core.Context) error {
	orgID, err := core.ParseUUIDParam(ctx, "orgID")
	if err != nil {
		return err
	}

	org, err := c.orgService.RecomputeExposure(core.GetSession(ctx).GetRole(), orgID)
	if err != nil {
		return core.TranslateError(err)
	}
	return ctx.JSON(200, toDTO(org))
}

func (c *httpController) Delete(ctx core.Context) error {
	orgID, err := core.ParseUUIDParam(ctx, "orgID")
	if err != nil {
		return err
	}

	if err := c.orgService.DeleteOrg(core.GetSession(ctx).GetRole(), orgID); err != nil {
		return core.TranslateError(err)
	}
	return ctx.NoContent(200)
}
