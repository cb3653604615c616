package catalog

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/devaudit/internal/core"
	"github.com/l3montree-dev/devaudit/internal/database/models"
)

type catalogService interface {
	ListVulnerabilities() ([]models.Vulnerability, error)
	ListControls() ([]models.Control, error)
	GetVulnerability(id uuid.UUID) (models.Vulnerability, error)
	ControlsForVulnerability(vulnName string) ([]models.Control, error)
}

type httpController struct {
	catalogService catalogService
}

func NewHTTPController(catalogService catalogService) *httpController {
	return &httpController{
		catalogService: catalogService,
	}
}

func (c *httpController) ListVulnerabilities(ctx core.Context) error {
	vulns, err := c.catalogService.ListVulnerabilities()
	if err != nil {
		return core.TranslateError(err)
	}
	return ctx.JSON(200, toVulnerabilityDTOs(vulns))
}

func (c *httpController) ListControls(ctx core.Context) error {
	controls, err := c.catalogService.ListControls()
	if err != nil {
		return core.TranslateError(err)
	}
	return ctx.JSON(200, toControlDTOs(controls))
}

func (c *httpController) ControlsForVulnerability(ctx core.Context) error {
	vulnID, err := core.ParseUUIDParam(ctx, "vulnerabilityID")
	if err != nil {
		return err
	}

	vuln, err := c.catalogService.GetVulnerability(vulnID)
	if err != nil {
		return core.TranslateError(err)
	}

	controls, err := c.catalogService.ControlsForVulnerability(vuln.Name)
	if err != nil {
		return core.TranslateError(err)
	}
	return ctx.JSON(200, toControlDTOs(controls))
}
