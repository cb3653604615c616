package models

// Vulnerability is a catalog entry. The name is globally unique - it is the
// join key used by Control.MappedVulnName. The catalog is read-only during
// normal operation and only mutated by administrative seeding.
type Vulnerability struct {
	Model
	Name              string `json:"name" gorm:"type:text;uniqueIndex;not null;"`
	Category          string `json:"category" gorm:"type:text;not null;"`
	DefaultLikelihood int    `json:"defaultLikelihood" gorm:"not null;check:default_likelihood BETWEEN 1 AND 5;"`
	DefaultImpact     int    `json:"defaultImpact" gorm:"not null;check:default_impact BETWEEN 1 AND 5;"`
}

func (m Vulnerability) TableName() string {
	return "vulnerabilities"
}
