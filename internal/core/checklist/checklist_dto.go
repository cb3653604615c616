package checklist

import (
	"time"

	"github.com/l3montree-dev/devaudit/internal/database/models"
)

type updateStatusRequest struct {
	Status        string  `json:"status" validate:"required,oneof=COMPLIANT PARTIAL NON_COMPLIANT NOT_APPLICABLE"`
	Notes         string  `json:"notes"`
	Justification *string `json:"justification"`
}

type auditResultDTO struct {
	ID            string             `json:"id"`
	AssetID       string             `json:"assetId"`
	ControlID     string             `json:"controlId"`
	Framework     string             `json:"framework,omitempty"`
	ControlName   string             `json:"controlName,omitempty"`
	Status        models.AuditStatus `json:"status"`
	Notes         string             `json:"notes"`
	Justification *string            `json:"justification"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

func toDTO(result models.AuditResult) auditResultDTO {
	return auditResultDTO{
		ID:            result.ID.String(),
		AssetID:       result.AssetID.String(),
		ControlID:     result.ControlID.String(),
		Framework:     result.Control.Framework,
		ControlName:   result.Control.Name,
		Status:        result.Status,
		Notes:         result.Notes,
		Justification: result.Justification,
		UpdatedAt:     result.UpdatedAt,
	}
}

func toDTOs(results []models.AuditResult) []auditResultDTO {
	dtos := make([]auditResultDTO, len(results))
	for i, result := range results {
		dtos[i] = toDTO(result)
	}
	return dtos
}
