package compliance

import (
	"time"

	"github.com/l3montree-dev/devaudit/internal/database/models"
)

type soaDTO struct {
	ControlID     string             `json:"controlId"`
	Framework     string             `json:"framework"`
	ControlName   string             `json:"controlName"`
	Status        models.AuditStatus `json:"status"`
	Justification *string            `json:"justification"`
	EvidenceCount int                `json:"evidenceCount"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

func toSoADTOs(rows []SoARow) []soaDTO {
	dtos := make([]soaDTO, len(rows))
	for i, row := range rows {
		dtos[i] = soaDTO{
			ControlID:     row.Result.ControlID.String(),
			Framework:     row.Result.Control.Framework,
			ControlName:   row.Result.Control.Name,
			Status:        row.Result.Status,
			Justification: row.Result.Justification,
			EvidenceCount: row.EvidenceCount,
			UpdatedAt:     row.Result.UpdatedAt,
		}
	}
	return dtos
}

type topRiskDTO struct {
	VulnerabilityID   string           `json:"vulnerabilityId"`
	VulnerabilityName string           `json:"vulnerabilityName,omitempty"`
	RiskScore         int              `json:"riskScore"`
	RiskLevel         models.RiskLevel `json:"riskLevel"`
}

type reportDTO struct {
	Compliance      Summary      `json:"compliance"`
	TopRisks        []topRiskDTO `json:"topRisks"`
	OpenFindings    int          `json:"openFindings"`
	ClosedFindings  int          `json:"closedFindings"`
	OverdueFindings int          `json:"overdueFindings"`
}

func toReportDTO(summary ReportSummary) reportDTO {
	dto := reportDTO{
		Compliance:      summary.Compliance,
		TopRisks:        make([]topRiskDTO, len(summary.TopRisks)),
		OpenFindings:    summary.OpenFindings,
		ClosedFindings:  summary.ClosedFindings,
		OverdueFindings: summary.OverdueFindings,
	}
	for i, selection := range summary.TopRisks {
		dto.TopRisks[i] = topRiskDTO{
			VulnerabilityID:   selection.VulnerabilityID.String(),
			VulnerabilityName: selection.Vulnerability.Name,
			RiskScore:         selection.RiskScore,
			RiskLevel:         selection.RiskLevel,
		}
	}
	return dto
}
