// Package store is the persistence gateway. The Store interface is the
// contract the domain services program against; Gorm serves live traffic
// and Memory serves mock mode when the database is unreachable at startup
// (writes in mock mode mutate the in-process dataset and do not persist).
package store

import (
	"errors"

	"github.com/google/uuid"
	"github.com/village360/village360-backend/internal/dto"
	"github.com/village360/village360-backend/internal/models"
)

var (
	// ErrNotFound is returned by point lookups, updates and aggregate reads
	// when the id does not exist. Handlers translate it to 404.
	ErrNotFound = errors.New("record not found")

	// ErrHasDependents is returned when a delete is blocked by rows that
	// still reference the target.
	ErrHasDependents = errors.New("record has dependent rows")
)

type Store interface {
	// MockMode reports whether this store serves the fixed in-memory
	// dataset instead of the database.
	MockMode() bool
	Ping() error

	CreateUser(u *models.User) error
	GetUser(id uuid.UUID) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	ListUsers() ([]models.User, error)
	DeleteUser(id uuid.UUID) (bool, error)

	CreateRefreshToken(t *models.RefreshToken) error
	GetRefreshToken(tokenHash string) (*models.RefreshToken, error)
	RevokeRefreshToken(tokenHash string) error

	CreateVillage(v *models.Village) error
	GetVillage(id uuid.UUID) (*models.Village, error)
	GetVillageWithAmenities(id uuid.UUID) (*dto.VillageWithAmenities, error)
	ListVillages() ([]models.Village, error)
	UpdateVillage(id uuid.UUID, patch *dto.UpdateVillageRequest) (*models.Village, error)
	DeleteVillage(id uuid.UUID) (bool, error)

	CreateProject(p *models.Project) error
	GetProject(id uuid.UUID) (*models.Project, error)
	ListProjects() ([]models.Project, error)
	ListProjectsByVillage(villageID uuid.UUID) ([]models.Project, error)
	ListProjectsByUser(userID uuid.UUID) ([]models.Project, error)
	UpdateProject(id uuid.UUID, patch *dto.UpdateProjectRequest) (*models.Project, error)
	DeleteProject(id uuid.UUID) (bool, error)

	CreateReport(r *models.Report) error
	GetReport(id uuid.UUID) (*models.Report, error)
	ListReports() ([]models.Report, error)
	ListReportsByProject(projectID uuid.UUID) ([]models.Report, error)
	DeleteReport(id uuid.UUID) (bool, error)

	ListAmenitiesByVillage(villageID uuid.UUID) ([]models.Amenity, error)
	UpsertAmenity(villageID uuid.UUID, req *dto.UpsertAmenityRequest) (*models.Amenity, error)

	DashboardStats() (*dto.DashboardStats, error)
}
