package models

// Control is a catalog entry of a compliance framework safeguard. The mapping
// to vulnerabilities is denormalized by vulnerability name, not by id - many
// controls may map to one vulnerability name, and a control row is not unique
// by name alone. The catalog integrity check (internal/core/catalog) verifies
// at seed time that every MappedVulnName resolves to a vulnerability.
type Control struct {
	Model
	Framework      string `json:"framework" gorm:"type:text;not null;"`
	Name           string `json:"name" gorm:"type:text;not null;"`
	MappedVulnName string `json:"mappedVulnName" gorm:"type:text;index;not null;"`
}

func (m Control) TableName() string {
	return "controls"
}
