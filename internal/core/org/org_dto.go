package org

import (
	"github.com/gosimple/slug"
	"github.com/l3montree-dev/devaudit/internal/database/models"
)

type createRequest struct {
	Name       string `json:"name" validate:"required"`
	Sector     string `json:"sector" validate:"required"`
	Employees  int    `json:"employees" validate:"required,gt=0"`
	SystemType string `json:"systemType" validate:"required"`
}

func (r *createRequest) toModel() models.Org {
	return models.Org{
		Name:       r.Name,
		Slug:       slug.Make(r.Name),
		Sector:     r.Sector,
		Employees:  r.Employees,
		SystemType: r.SystemType,
	}
}

type orgDTO struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	Slug          string               `json:"slug"`
	Sector        string               `json:"sector"`
	Employees     int                  `json:"employees"`
	SystemType    string               `json:"systemType"`
	ExposureScore int                  `json:"exposureScore"`
	ExposureLevel models.ExposureLevel `json:"exposureLevel"`
}

func toDTO(org models.Org) orgDTO {
	return orgDTO{
		ID:            org.ID.String(),
		Name:          org.Name,
		Slug:          org.Slug,
		Sector:        org.Sector,
		Employees:     org.Employees,
		SystemType:    org.SystemType,
		ExposureScore: org.ExposureScore,
		ExposureLevel: org.ExposureLevel,
	}
}

func toDTOs(orgs []models.Org) []orgDTO {
	dtos := make([]orgDTO, len(orgs))
	for i, org := range orgs {
		dtos[i] = toDTO(org)
	}
	return dtos
}
