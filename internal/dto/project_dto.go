package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/village360/village360-backend/internal/models"
)

type CreateProjectRequest struct {
	VillageID   uuid.UUID            `json:"village_id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Status      models.ProjectStatus `json:"status"`
	StartDate   *time.Time           `json:"start_date"`
	EndDate     *time.Time           `json:"end_date"`
	Budget      float64              `json:"budget"`
	Progress    int                  `json:"progress"`
}

// UpdateProjectRequest is a partial patch. Nil fields are left untouched;
// UpdatedAt is refreshed whenever any field is applied.
type UpdateProjectRequest struct {
	Title       *string               `json:"title"`
	Description *string               `json:"description"`
	Status      *models.ProjectStatus `json:"status"`
	StartDate   *time.Time            `json:"start_date"`
	EndDate     *time.Time            `json:"end_date"`
	Budget      *float64              `json:"budget"`
	Progress    *int                  `json:"progress"`
}
