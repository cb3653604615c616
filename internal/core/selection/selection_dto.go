package selection

import "github.com/l3montree-dev/devaudit/internal/database/models"

type selectionDTO struct {
	ID                string           `json:"id"`
	AssetID           string           `json:"assetId"`
	VulnerabilityID   string           `json:"vulnerabilityId"`
	VulnerabilityName string           `json:"vulnerabilityName,omitempty"`
	Likelihood        int              `json:"likelihood"`
	Impact            int              `json:"impact"`
	RiskScore         int              `json:"riskScore"`
	RiskLevel         models.RiskLevel `json:"riskLevel"`
}

func toDTO(selection models.AssetVulnerability) selectionDTO {
	dto := selectionDTO{
		ID:              selection.ID.String(),
		AssetID:         selection.AssetID.String(),
		VulnerabilityID: selection.VulnerabilityID.String(),
		Likelihood:      selection.Likelihood,
		Impact:          selection.Impact,
		RiskScore:       selection.RiskScore,
		RiskLevel:       selection.RiskLevel,
	}
	if selection.Vulnerability.Name != "" {
		dto.VulnerabilityName = selection.Vulnerability.Name
	}
	return dto
}

func toDTOs(selections []models.AssetVulnerability) []selectionDTO {
	dtos := make([]selectionDTO, len(selections))
	for i, selection := range selections {
		dtos[i] = toDTO(selection)
	}
	return dtos
}

type toggleDTO struct {
	Selected       bool         `json:"selected"`
	Selection      selectionDTO `json:"selection"`
	SeededControls int          `json:"seededControls"`
	RemovedResults []string     `json:"removedResults,omitempty"`
}

func toToggleDTO(result ToggleResult) toggleDTO {
	dto := toggleDTO{
		Selected:       result.Selected,
		Selection:      toDTO(result.Selection),
		SeededControls: result.SeededControls,
	}
	for _, id := range result.RemovedResults {
		dto.RemovedResults = append(dto.RemovedResults, id.String())
	}
	return dto
}
