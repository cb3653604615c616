package finding

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/devaudit/internal/core"
	"github.com/l3montree-dev/devaudit/internal/database/models"
	"github.com/labstack/echo/v4"
)

type findingService interface {
	ListFindings(session core.AuthSession, assetID uuid.UUID) ([]models.Finding, error)
	Generate(session core.AuthSession, assetID uuid.UUID) (int, error)
	UpdateFinding(session core.AuthSession, findingID uuid.UUID, req UpdateRequest) (models.Finding, error)
	DeleteFinding(session core.AuthSession, findingID uuid.UUID) error
}

type httpController struct {
	findingService findingService
}

func NewHTTPController(findingService findingService) *httpController {
	return &httpController{
		findingService: findingService,
	}
}

func (c *httpController) List(ctx core.Context) error {
	assetID, err := core.ParseUUIDParam(ctx, "assetID")
	if err != nil {
		return err
	}

	findings, err := c.findingService.ListFindings(core.GetSession(ctx), assetID)
	if err != nil {
		return core.TranslateError(err)
	}
	return ctx.JSON(200, toDTOs(findings))
}

func (c *httpController) Generate(ctx core.Context) error {
	assetID, err := core.ParseUUIDParam(ctx, "assetID")
	if err != nil {
		return err
	}

	processed, err := c.findingService.Generate(core.GetSession(ctx), assetID)
	if err != nil {
		return core.TranslateError(err)
	}
	return ctx.JSON(200, map[string]int{"processed": processed})
}

func (c *httpController) Update(ctx core.Context) error {
	findingID, err := core.ParseUUIDParam(ctx, "findingID")
	if err != nil {
		return err
	}

	var req updateFindingRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := core.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	finding, err := c.findingService.UpdateFinding(core.GetSession(ctx), findingID, req.toUpdateRequest())
	if err != nil {
		return core.TranslateError(err)
	}
	return ctx.JSON(200, toDTO(finding))
}

func (c *httpController) Delete(ctx core.Context) error {
	findingID, err := core.ParseUUIDParam(ctx, "findingID")
	if err != nil {
		return err
	}

	if err := c.findingService.DeleteFinding(core.GetSession(ctx), findingID); err != nil {
		return core.TranslateError(err)
	}
	return ctx.NoContent(200)
}
