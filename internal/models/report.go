package models

import (
	"time"

	"github.com/google/uuid"
)

type ReportType string

const (
	ReportProgress    ReportType = "progress"
	ReportCompletion  ReportType = "completion"
	ReportGapAnalysis ReportType = "gap_analysis"
	ReportMonthly     ReportType = "monthly"
)

// ValidReportType reports whether t is a known report type.
func ValidReportType(t ReportType) bool {
	switch t {
	case ReportProgress, ReportCompletion, ReportGapAnalysis, ReportMonthly:
		return true
	}
	return false
}

// Report is a filed document, optionally attached to a project.
type Report struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProjectID  *uuid.UUID `gorm:"type:uuid;index" json:"project_id"`
	ReportType ReportType `gorm:"size:20;not null;default:'progress'" json:"report_type"`
	Title      string     `gorm:"type:text;not null" json:"title"`
	Content    string     `gorm:"type:text" json:"content"`
	FileURL    string     `gorm:"type:text" json:"file_url"`
	CreatedBy  uuid.UUID  `gorm:"type:uuid;not null;index" json:"created_by"`
	CreatedAt  time.Time  `gorm:"index" json:"created_at"`

	Project *Project `gorm:"foreignKey:ProjectID" json:"-"`
	Creator *User    `gorm:"foreignKey:CreatedBy" json:"-"`
}
