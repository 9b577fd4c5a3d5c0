package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/village360/village360-backend/internal/dto"
	"github.com/village360/village360-backend/internal/models"
	"github.com/village360/village360-backend/internal/store"
)

var (
	ErrProjectTitleRequired       = errors.New("title is required")
	ErrProjectDescriptionRequired = errors.New("description is required")
	ErrProjectVillageRequired     = errors.New("village_id is required")
	ErrInvalidStatus              = errors.New("unknown project status")
	ErrInvalidProgress            = errors.New("progress must be between 0 and 100")
	ErrInvalidBudget              = errors.New("budget must not be negative")
	ErrVillageNotFound            = errors.New("village not found")
	ErrProjectHasReports          = errors.New("project still has reports")
)

type ProjectService struct {
	store store.Store
}

func NewProjectService(st store.Store) *ProjectService {
	return &ProjectService{store: st}
}

// Create inserts a project owned by the authenticated user.
func (s *ProjectService) Create(createdBy uuid.UUID, req *dto.CreateProjectRequest) (*models.Project, error) {
	if req.Title == "" {
		return nil, ErrProjectTitleRequired
	}
	if req.Description == "" {
		return nil, ErrProjectDescriptionRequired
	}
	if req.VillageID == uuid.Nil {
		return nil, ErrProjectVillageRequired
	}
	status := req.Status
	if status == "" {
		status = models.StatusPlanning
	}
	if !models.ValidProjectStatus(status) {
		return nil, ErrInvalidStatus
	}
	if req.Progress < 0 || req.Progress > 100 {
		return nil, ErrInvalidProgress
	}
	if req.Budget < 0 {
		return nil, ErrInvalidBudget
	}

	if _, err := s.store.GetVillage(req.VillageID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrVillageNotFound
		}
		return nil, err
	}

	now := time.Now().UTC()
	project := models.Project{
		ID:          uuid.New(),
		VillageID:   req.VillageID,
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Budget:      req.Budget,
		Progress:    req.Progress,
		CreatedBy:   createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.store.CreateProject(&project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *ProjectService) Get(id uuid.UUID) (*models.Project, error) {
	return s.store.GetProject(id)
}

func (s *ProjectService) List() ([]models.Project, error) {
	return s.store.ListProjects()
}

func (s *ProjectService) ListByVillage(villageID uuid.UUID) ([]models.Project, error) {
	return s.store.ListProjectsByVillage(villageID)
}

func (s *ProjectService) ListByUser(userID uuid.UUID) ([]models.Project, error) {
	return s.store.ListProjectsByUser(userID)
}

func (s *ProjectService) Update(id uuid.UUID, patch *dto.UpdateProjectRequest) (*models.Project, error) {
	if patch.Title != nil && *patch.Title == "" {
		return nil, ErrProjectTitleRequired
	}
	if patch.Description != nil && *patch.Description == "" {
		return nil, ErrProjectDescriptionRequired
	}
	if patch.Status != nil && !models.ValidProjectStatus(*patch.Status) {
		return nil, ErrInvalidStatus
	}
	if patch.Progress != nil && (*patch.Progress < 0 || *patch.Progress > 100) {
		return nil, ErrInvalidProgress
	}
	if patch.Budget != nil && *patch.Budget < 0 {
		return nil, ErrInvalidBudget
	}
	return s.store.UpdateProject(id, patch)
}

func (s *ProjectService) Delete(id uuid.UUID) (bool, error) {
	removed, err := s.store.DeleteProject(id)
	if errors.Is(err, store.ErrHasDependents) {
		return false, ErrProjectHasReports
	}
	return removed, err
}
