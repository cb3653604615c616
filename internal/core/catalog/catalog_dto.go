package catalog

import "github.com/l3montree-dev/devaudit/internal/database/models"

type vulnerabilityDTO struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Category          string `json:"category"`
	DefaultLikelihood int    `json:"defaultLikelihood"`
	DefaultImpact     int    `json:"defaultImpact"`
}

func toVulnerabilityDTOs(vulns []models.Vulnerability) []vulnerabilityDTO {
	dtos := make([]vulnerabilityDTO, len(vulns))
	for i, vuln := range vulns {
		dtos[i] = vulnerabilityDTO{
			ID:                vuln.ID.String(),
			Name:              vuln.Name,
			Category:          vuln.Category,
			DefaultLikelihood: vuln.DefaultLikelihood,
			DefaultImpact:     vuln.DefaultImpact,
		}
	}
	return dtos
}

type controlDTO struct {
	ID             string `json:"id"`
	Framework      string `json:"framework"`
	Name           string `json:"name"`
	MappedVulnName string `json:"mappedVulnName"`
}

func toControlDTOs(controls []models.Control) []controlDTO {
	dtos := make([]controlDTO, len(controls))
	for i, control := range controls {
		dtos[i] = controlDTO{
			ID:             control.ID.String(),
			Framework:      control.Framework,
			Name:           control.Name,
			MappedVulnName: control.MappedVulnName,
		}
	}
	return dtos
}
