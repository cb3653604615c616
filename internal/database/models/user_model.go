package models

type UserRole string

const (
	RoleAdmin   UserRole = "ADMIN"
	RoleAuditor UserRole = "AUDITOR"
	RoleAuditee UserRole = "AUDITEE"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleAuditor, RoleAuditee:
		return true
	}
	return false
}

type User struct {
	Model
	Name  string   `json:"name" gorm:"type:text;not null;"`
	Email string   `json:"email" gorm:"type:text;uniqueIndex;not null;"`
	Role  UserRole `json:"role" gorm:"type:text;not null;default:'AUDITOR';"`
}

func (m User) TableName() string {
	return "users"
}
