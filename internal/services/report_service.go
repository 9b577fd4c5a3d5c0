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
	ErrReportTitleRequired = errors.New("title is required")
	ErrInvalidReportType   = errors.New("unknown report type")
	ErrProjectNotFound     = errors.New("project not found")
)

type ReportService struct {
	store store.Store
}

func NewReportService(st store.Store) *ReportService {
	return &ReportService{store: st}
}

func (s *ReportService) Create(createdBy uuid.UUID, req *dto.CreateReportRequest) (*models.Report, error) {
	if req.Title == "" {
		return nil, ErrReportTitleRequired
	}
	reportType := req.ReportType
	if reportType == "" {
		reportType = models.ReportProgress
	}
	if !models.ValidReportType(reportType) {
		return nil, ErrInvalidReportType
	}

	if req.ProjectID != nil {
		if _, err := s.store.GetProject(*req.ProjectID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, ErrProjectNotFound
			}
			return nil, err
		}
	}

	report := models.Report{
		ID:         uuid.New(),
		ProjectID:  req.ProjectID,
		ReportType: reportType,
		Title:      req.Title,
		Content:    req.Content,
		FileURL:    req.FileURL,
		CreatedBy:  createdBy,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.store.CreateReport(&report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (s *ReportService) Get(id uuid.UUID) (*models.Report, error) {
	return s.store.GetReport(id)
}

func (s *ReportService) List() ([]models.Report, error) {
	return s.store.ListReports()
}

func (s *ReportService) ListByProject(projectID uuid.UUID) ([]models.Report, error) {
	return s.store.ListReportsByProject(projectID)
}

func (s *ReportService) Delete(id uuid.UUID) (bool, error) {
	return s.store.DeleteReport(id)
}
