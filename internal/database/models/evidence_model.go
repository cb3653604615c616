package models

import "github.com/google/uuid"

// Evidence is file metadata attached to a checklist control of an asset. The
// file bytes themselves live in the object storage collaborator; the engine
// only records the locator and counts rows for reporting.
type Evidence struct {
	Model
	AssetID   uuid.UUID `json:"assetId" gorm:"index;type:uuid;not null;"`
	ControlID uuid.UUID `json:"controlId" gorm:"index;type:uuid;not null;"`

	FileName string  `json:"fileName" gorm:"type:text;not null;"`
	Locator  string  `json:"locator" gorm:"type:text;not null;"`
	MimeType *string `json:"mimeType" gorm:"type:text;"`
	Size     int64   `json:"size" gorm:"not null;default:0;"`

	Asset   Asset   `json:"asset" gorm:"foreignKey:AssetID;constraint:OnDelete:CASCADE;"`
	Control Control `json:"control" gorm:"foreignKey:ControlID;constraint:OnDelete:CASCADE;"`
}

func (m Evidence) TableName() string {
	return "evidences"
}
