package compliance

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/devaudit/internal/core"
)

type complianceService interface {
	ComputeCompliance(session core.AuthSession, assetID uuid.UUID) (Summary, error)
	GetStatementOfApplicability(session core.AuthSession, assetID uuid.UUID) ([]SoARow, error)
	GetReportSummary(session core.AuthSession, assetID uuid.UUID) (ReportSummary, error)
}

type httpController struct {
	complianceService complianceService
}

func NewHTTPController(complianceService complianceService) *httpController {
	return &httpController{
		complianceService: complianceService,
	}
}

func (c *httpController) Compliance(ctx core.Context) error {
	assetID, err := core.ParseUUIDParam(ctx, "assetID")
	if err != nil {
		return err
	}

	summary, err := c.complianceService.ComputeCompliance(core.GetSession(ctx), assetID)
	if err != nil {
		return core.TranslateError(err)
	}
	return ctx.JSON(200, summary)
}

func (c *httpController) StatementOfApplicability(ctx core.Context) error {
	assetID, err := core.ParseUUIDParam(ctx, "assetID")
	if err != nil {
		return err
	}

	rows, err := c.complianceService.GetStatementOfApplicability(core.GetSession(ctx), assetID)
	if err != nil {
		return core.TranslateError(err)
	}
	return ctx.JSON(200, toSoADTOs(rows))
}

func (c *httpController) ReportSummary(ctx core.Context) error {
	assetID, err := core.ParseUUIDParam(ctx, "assetID")
	if err != nil {
		return err
	}

	summary, err := c.complianceService.GetReportSummary(core.GetSession(ctx), assetID)
	if err != nil {
		return core.TranslateError(err)
	}
	return ctx.JSON(200, toReportDTO(summary))
}
