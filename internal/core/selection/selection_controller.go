package selection

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/devaudit/internal/core"
	"github.com/l3montree-dev/devaudit/internal/database/models"
)

type selectionService interface {
	ListSelections(session core.AuthSession, assetID uuid.UUID) ([]models.AssetVulnerability, error)
	Toggle(session core.AuthSession, assetID, vulnerabilityID uuid.UUID) (ToggleResult, error)
}

type httpController struct {
	selectionService selectionService
}

func NewHTTPController(selectionService selectionService) *httpController {
	return &httpController{
		selectionService: selectionService,
	}
}

func (c *httpController) List(ctx core.Context) error {
	assetID, err := core.ParseUUIDParam(ctx, "assetID")
	if err != nil {
		return err
	}

	selections, err := c.selectionService.ListSelections(core.GetSession(ctx), assetID)
	if err != nil {
		return core.TranslateError(err)
	}
	return ctx.JSON(200, toDTOs(selections))
}

func (c *httpController) Toggle(ctx core.Context) error {
	assetID, err := core.ParseUUIDParam(ctx, "assetID")
	if err != nil {
		return err
	}
	vulnerabilityID, err := core.ParseUUIDParam(ctx, "vulnerabilityID")
	if err != nil {
		return err
	}

	result, err := c.selectionService.Toggle(core.GetSession(ctx), assetID, vulnerabilityID)
	if err != nil {
		return core.TranslateError(err)
	}
	return ctx.JSON(200, toToggleDTO(result))
}
