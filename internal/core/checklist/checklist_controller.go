package checklist

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/devaudit/internal/core"
	"github.com/l3montree-dev/devaudit/internal/database/models"
	"github.com/labstack/echo/v4"
)

type checklistService interface {
	GetChecklist(session core.AuthSession, assetID uuid.UUID) ([]models.AuditResult, error)
	UpdateAuditStatus(session core.AuthSession, auditID uuid.UUID, status models.AuditStatus, notes string, justification *string) (models.AuditResult, error)
}

type httpController struct {
	checklistService checklistService
}

func NewHTTPController(checklistService checklistService) *httpController {
	return &httpController{
		checklistService: checklistService,
	}
}

func (c *httpController) List(ctx core.Context) error {
	assetID, err := core.ParseUUIDParam(ctx, "assetID")
	if err != nil {
		return err
	}

	results, err := c.checklistService.GetChecklist(core.GetSession(ctx), assetID)
	if err != nil {
		return core.TranslateError(err)
	}
	return ctx.JSON(200, toDTOs(results))
}

func (c *httpController) UpdateStatus(ctx core.Context) error {
	auditID, err := core.ParseUUIDParam(ctx, "auditID")
	if err != nil {
		return err
	}

	var req updateStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := core.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	result, err := c.checklistService.UpdateAuditStatus(core.GetSession(ctx), auditID, models.AuditStatus(req.Status), req.Notes, req.Justification)
	if err != nil {
		return core.TranslateError(err)
	}
	return ctx.JSON(200, toDTO(result))
}
