package models

import (
	"time"

	"github.com/google/uuid"
)

type ProjectStatus string

const (
	StatusPlanning  ProjectStatus = "planning"
	StatusOngoing   ProjectStatus = "ongoing"
	StatusCompleted ProjectStatus = "completed"
	StatusDelayed   ProjectStatus = "delayed"
	StatusCancelled ProjectStatus = "cancelled"
)

// ValidProjectStatus reports whether s is a known project status.
func ValidProjectStatus(s ProjectStatus) bool {
	switch s {
	case StatusPlanning, StatusOngoing, StatusCompleted, StatusDelayed, StatusCancelled:
		return true
	}
	return false
}

// Project is a development project belonging to one village, created by one
// user. UpdatedAt advances on every mutation.
type Project struct {
	ID          uuid.UUID     `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	VillageID   uuid.UUID     `gorm:"type:uuid;not null;index" json:"village_id"`
	Title       string        `gorm:"type:text;not null" json:"title"`
	Description string        `gorm:"type:text;not null" json:"description"`
	Status      ProjectStatus `gorm:"size:20;not null;default:'planning';index" json:"status"`
	StartDate   *time.Time    `json:"start_date"`
	EndDate     *time.Time    `json:"end_date"`
	Budget      float64       `gorm:"type:decimal(12,2);default:0" json:"budget"`
	Progress    int           `gorm:"default:0;check:progress >= 0 AND progress <= 100" json:"progress"`
	CreatedBy   uuid.UUID     `gorm:"type:uuid;not null;index" json:"created_by"`
	CreatedAt   time.Time     `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`

	Village *Village `gorm:"foreignKey:VillageID" json:"-"`
	Creator *User    `gorm:"foreignKey:CreatedBy" json:"-"`
}
