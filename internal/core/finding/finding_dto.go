package finding

import (
	"time"

	"github.com/l3montree-dev/devaudit/internal/database/models"
)

type updateFindingRequest struct {
	Status      *string    `json:"status" validate:"omitempty,oneof=OPEN CLOSED"`
	Owner       *string    `json:"owner"`
	DueDate     *time.Time `json:"dueDate"`
	RootCause   *string    `json:"rootCause"`
	EvidenceRef *string    `json:"evidenceRef"`
	Treatment   *string    `json:"riskTreatment" validate:"omitempty,oneof=MITIGATE ACCEPT TRANSFER AVOID"`
}

func (r *updateFindingRequest) toUpdateRequest() UpdateRequest {
	req := UpdateRequest{
		Owner:       r.Owner,
		DueDate:     r.DueDate,
		RootCause:   r.RootCause,
		EvidenceRef: r.EvidenceRef,
	}
	if r.Status != nil {
		status := models.FindingStatus(*r.Status)
		req.Status = &status
	}
	if r.Treatment != nil {
		treatment := models.RiskTreatment(*r.Treatment)
		req.Treatment = &treatment
	}
	return req
}

type findingDTO struct {
	ID             string               `json:"id"`
	AssetID        string               `json:"assetId"`
	ControlID      string               `json:"controlId"`
	Issue          string               `json:"issue"`
	Risk           string               `json:"risk"`
	Severity       string               `json:"severity"`
	Recommendation string               `json:"recommendation"`
	Status         models.FindingStatus `json:"status"`
	Owner          *string              `json:"owner"`
	DueDate        *time.Time           `json:"dueDate"`
	RootCause      *string              `json:"rootCause"`
	EvidenceRef    *string              `json:"evidenceRef"`
	Treatment      models.RiskTreatment `json:"riskTreatment"`
	Overdue        bool                 `json:"overdue"`
	CreatedAt      time.Time            `json:"createdAt"`
	UpdatedAt      time.Time            `json:"updatedAt"`
}

func toDTO(finding models.Finding) findingDTO {
	return findingDTO{
		ID:             finding.ID.String(),
		AssetID:        finding.AssetID.String(),
		ControlID:      finding.ControlID.String(),
		Issue:          finding.Issue,
		Risk:           finding.Risk,
		Severity:       finding.Severity,
		Recommendation: finding.Recommendation,
		Status:         finding.Status,
		Owner:          finding.Owner,
		DueDate:        finding.DueDate,
		RootCause:      finding.RootCause,
		EvidenceRef:    finding.EvidenceRef,
		Treatment:      finding.Treatment,
		Overdue:        finding.Overdue(time.Now()),
		CreatedAt:      finding.CreatedAt,
		UpdatedAt:      finding.UpdatedAt,
	}
}

func toDTOs(findings []models.Finding) []findingDTO {
	dtos := make([]findingDTO, len(findings))
	for i, finding := range findings {
		dtos[i] = toDTO(finding)
	}
	return dtos
}
