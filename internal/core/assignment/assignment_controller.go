package assignment

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/devaudit/internal/core"
	"github.com/l3montree-dev/devaudit/internal/database/models"
	"github.com/labstack/echo/v4"
)

type assignmentService interface {
	ListAssignments(session core.AuthSession) ([]models.AuditAssignment, error)
	AssignAuditor(session core.AuthSession, orgID, auditorID uuid.UUID) (models.AuditAssignment, error)
	RevokeAssignment(session core.AuthSession, assignmentID uuid.UUID) error
}

type httpController struct {
	assignmentService assignmentService
}

func NewHTTPController(assignmentService assignmentService) *httpController {
	return &httpController{
		assignmentService: assignmentService,
	}
}

type createRequest struct {
	OrgID     string `json:"orgId" validate:"required,uuid"`
	AuditorID string `json:"auditorId" validate:"required,uuid"`
}

type assignmentDTO struct {
	ID        string `json:"id"`
	OrgID     string `json:"orgId"`
	AuditorID string `json:"auditorId"`
}

func toDTO(assignment models.AuditAssignment) assignmentDTO {
	return assignmentDTO{
		ID:        assignment.ID.String(),
		OrgID:     assignment.OrgID.String(),
		AuditorID: assignment.AuditorID.String(),
	}
}

func (c *httpController) List(ctx core.Context) error {
	assignments, err := c.assignmentService.ListAssignments(core.GetSession(ctx))
	if err != nil {
		return core.TranslateError(err)
	}

	dtos := make([]assignmentDTO, len(assignments))
	for i, assignment := range assignments {
		dtos[i] = toDTO(assignment)
	}
	return ctx.JSON(200, dtos)
}

func (c *httpController) Create(ctx core.Context) error {
	var req createRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := core.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	orgID := uuid.MustParse(req.OrgID)
	auditorID := uuid.MustParse(req.AuditorID)

	assignment, err := c.assignmentService.AssignAuditor(core.GetSession(ctx), orgID, auditorID)
	if err != nil {
		return core.TranslateError(err)
	}
	return ctx.JSON(200, toDTO(assignment))
}

func (c *httpController) Delete(ctx core.Context) error {
	assignmentID, err := core.ParseUUIDParam(ctx, "assignmentID")
	if err != nil {
		return err
	}

	if err := c.assignmentService.RevokeAssignment(core.GetSession(ctx), assignmentID); err != nil {
		return core.TranslateError(err)
	}
	return ctx.NoContent(200)
}
