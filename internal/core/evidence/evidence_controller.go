package evidence

import (
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/devaudit/internal/core"
	"github.com/l3montree-dev/devaudit/internal/database/models"
	"github.com/labstack/echo/v4"
)

type evidenceService interface {
	ListEvidence(session core.AuthSession, assetID uuid.UUID) ([]models.Evidence, error)
	Upload(session core.AuthSession, assetID, controlID uuid.UUID, fileName string, mimeType *string, reader io.Reader) (models.Evidence, error)
	DeleteEvidence(session core.AuthSession, evidenceID uuid.UUID) error
}

type httpController struct {
	evidenceService evidenceService
}

func NewHTTPController(evidenceService evidenceService) *httpController {
	return &httpController{
		evidenceService: evidenceService,
	}
}

func (c *httpController) List(ctx core.Context) error {
	assetID, err := core.ParseUUIDParam(ctx, "assetID")
	if err != nil {
		return err
	}

	evidences, err := c.evidenceService.ListEvidence(core.GetSession(ctx), assetID)
	if err != nil {
		return core.TranslateError(err)
	}
	return ctx.JSON(200, toDTOs(evidences))
}

func (c *httpController) Upload(ctx core.Context) error {
	assetID, err := core.ParseUUIDParam(ctx, "assetID")
	if err != nil {
		return err
	}
	controlID, err := core.ParseUUIDParam(ctx, "controlID")
	if err != nil {
		return err
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(400, "missing file upload").WithInternal(err)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(400, "unable to read file upload").WithInternal(err)
	}
	defer file.Close()

	var mimeType *string
	if contentType := fileHeader.Header.Get("Content-Type"); contentType != "" {
		mimeType = &contentType
	}

	evidence, err := c.evidenceService.Upload(core.GetSession(ctx), assetID, controlID, fileHeader.Filename, mimeType, file)
	if err != nil {
		return core.TranslateError(err)
	}
	return ctx.JSON(200, toDTO(evidence))
}

func (c *httpController) Delete(ctx core.Context) error {
	evidenceID, err := core.ParseUUIDParam(ctx, "evidenceID")
	if err != nil {
		return err
	}

	if err := c.evidenceService.DeleteEvidence(core.GetSession(ctx), evidenceID); err != nil {
		return core.TranslateError(err)
	}
	return ctx.NoContent(200)
}

type evidenceDTO struct {
	ID        string    `json:"id"`
	AssetID   string    `json:"assetId"`
	ControlID string    `json:"controlId"`
	FileName  string    `json:"fileName"`
	MimeType  *string   `json:"mimeType"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"createdAt"`
}

func toDTO(evidence models.Evidence) evidenceDTO {
	return evidenceDTO{
		ID:        evidence.ID.String(),
		AssetID:   evidence.AssetID.String(),
		ControlID: evidence.ControlID.String(),
		FileName:  evidence.FileName,
		MimeType:  evidence.MimeType,
		Size:      evidence.Size,
		CreatedAt: evidence.CreatedAt,
	}
}

func toDTOs(evidences []models.Evidence) []evidenceDTO {
	dtos := make([]evidenceDTO, len(evidences))
	for i, evidence := range evidences {
		dtos[i] = toDTO(evidence)
	}
	return dtos
}
