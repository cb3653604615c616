package asset

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/devaudit/internal/core"
	"github.com/l3montree-dev/devaudit/internal/database/models"
	"github.com/labstack/echo/v4"
)

type assetService interface {
	ListAssets(session core.AuthSession, orgID uuid.UUID) ([]models.Asset, error)
	GetAsset(session core.AuthSession, assetID uuid.UUID) (models.Asset, error)
	CreateAsset(session core.AuthSession, asset models.Asset) (models.Asset, error)
	DeleteAsset(session core.AuthSession, assetID uuid.UUID) error
}

type httpController struct {
	assetService assetService
}

func NewHTTPController(assetService assetService) *httpController {
	return &httpController{
		assetService: assetService,
	}
}

func (c *httpController) List(ctx core.Context) error {
	orgID, err := core.ParseUUIDParam(ctx, "orgID")
	if err != nil {
		return err
	}

	assets, err := c.assetService.ListAssets(core.GetSession(ctx), orgID)
	if err != nil {
		return core.TranslateError(err)
	}
	return ctx.JSON(200, toDTOs(assets))
}

func (c *httpController) Get(ctx core.Context) error {
	assetID, err := core.ParseUUIDParam(ctx, "assetID")
	if err != nil {
		return err
	}

	asset, err := c.assetService.GetAsset(core.GetSession(ctx), assetID)
	if err != nil {
		return core.TranslateError(err)
	}
	return ctx.JSON(200, toDTO(asset))
}

func (c *httpController) Create(ctx core.Context) error {
	orgID, err := core.ParseUUIDParam(ctx, "orgID")
	if err != nil {
		return err
	}

	var req createRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := core.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	asset, err := c.assetService.CreateAsset(core.GetSession(ctx), req.toModel(orgID))
	if err != nil {
		return core.TranslateError(err)
	}
	return ctx.JSON(200, toDTO(asset))
}

func (c *httpController) Delete(ctx core.Context) error {
	assetID, err := core.ParseUUIDParam(ctx, "assetID")
	if err != nil {
		return err
	}

	if err := c.assetService.DeleteAsset(core.GetSession(ctx), assetID); err != nil {
		return core.TranslateError(err)
	}
	return ctx.NoContent(200)
}
