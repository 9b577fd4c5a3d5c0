package dto

import (
	"github.com/google/uuid"
	"github.com/village360/village360-backend/internal/models"
)

type CreateReportRequest struct {
	ProjectID  *uuid.UUID        `json:"project_id"`
	ReportType models.ReportType `json:"report_type"`
	Title      string            `json:"title"`
	Content    string            `json:"content"`
	FileURL    string            `json:"file_url"`
}
