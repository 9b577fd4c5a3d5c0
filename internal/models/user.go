package models

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin           Role = "admin"
	RoleDistrictOfficer Role = "district_officer"
	RoleBlockOfficer    Role = "block_officer"
	RolePublicViewer    Role = "public_viewer"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleDistrictOfficer, RoleBlockOfficer, RolePublicViewer:
		return true
	}
	return false
}

// User is an account that can create projects and reports. The password
// column only ever holds a bcrypt hash.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Username  string    `gorm:"size:255;not null;uniqueIndex" json:"username"`
	Email     string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	Role      Role      `gorm:"size:20;not null;default:'public_viewer'" json:"role"`
	District  string    `gorm:"type:text" json:"district"`
	Block     string    `gorm:"type:text" json:"block"`
	CreatedAt time.Time `json:"created_at"`
}
