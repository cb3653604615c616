package asset

import (
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/l3montree-dev/devaudit/internal/database/models"
)

type createRequest struct {
	Name     string `json:"name" validate:"required"`
	Owner    string `json:"owner"`
	Location string `json:"location"`
	Type     string `json:"type"`
	CIA      string `json:"cia" validate:"required,oneof=Low Medium High"`
}

func (r *createRequest) toModel(orgID uuid.UUID) models.Asset {
	return models.Asset{
		Name:     r.Name,
		Slug:     slug.Make(r.Name),
		OrgID:    orgID,
		Owner:    r.Owner,
		Location: r.Location,
		Type:     r.Type,
		CIA:      models.SensitivityLevel(r.CIA),
	}
}

type assetDTO struct {
	ID       string                  `json:"id"`
	Name     string                  `json:"name"`
	Slug     string                  `json:"slug"`
	OrgID    string                  `json:"orgId"`
	Owner    string                  `json:"owner"`
	Location string                  `json:"location"`
	Type     string                  `json:"type"`
	CIA      models.SensitivityLevel `json:"cia"`
}

func toDTO(asset models.Asset) assetDTO {
	return assetDTO{
		ID:       asset.ID.String(),
		Name:     asset.Name,
		Slug:     asset.Slug,
		OrgID:    asset.OrgID.String(),
		Owner:    asset.Owner,
		Location: asset.Location,
		Type:     asset.Type,
		CIA:      asset.CIA,
	}
}

func toDTOs(assets []models.Asset) []assetDTO {
	dtos := make([]assetDTO, len(assets))
	for i, asset := range assets {
		dtos[i] = toDTO(asset)
	}
	return dtos
}
