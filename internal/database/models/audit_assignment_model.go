package models

import "github.com/google/uuid"

// AuditAssignment grants an auditor visibility and mutation rights over
// all assets of an org. No assignment means no access for non-admins.
type AuditAssignment struct {
	Model
	OrgID     uuid.UUID `json:"orgId" gorm:"uniqueIndex:idx_assignment_org_auditor;type:uuid;not null;"`
	AuditorID uuid.UUID `json:"auditorId" gorm:"uniqueIndex:idx_assignment_org_auditor;type:uuid;not null;"`

	Org     Org  `json:"org" gorm:"foreignKey:OrgID;constraint:OnDelete:CASCADE;"`
	Auditor User `json:"auditor" gorm:"foreignKey:AuditorID;constraint:OnDelete:CASCADE;"`
}

func (m AuditAssignment) TableName() string {
	return "audit_assignments"
}
