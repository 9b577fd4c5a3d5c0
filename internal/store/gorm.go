package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/village360/village360-backend/internal/dto"
	"github.com/village360/village360-backend/internal/models"
	"gorm.io/gorm"
)

// Gorm is the live-mode Store backed by PostgreSQL. Every write runs as a
// single transaction, so a failed multi-field patch leaves no partial state.
type Gorm struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

func (s *Gorm) MockMode() bool { return false }

func (s *Gorm) Ping() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// --- Users ---

func (s *Gorm) CreateUser(u *models.User) error {
	if err := s.db.Create(u).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (s *Gorm) GetUser(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &user, nil
}

func (s *Gorm) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "username = ?", username).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &user, nil
}

func (s *Gorm) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "email = ?", email).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &user, nil
}

func (s *Gorm) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Gorm) DeleteUser(id uuid.UUID) (bool, error) {
	var deleted bool
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Project{}).Where("created_by = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrHasDependents
		}
		if err := tx.Model(&models.Report{}).Where("created_by = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrHasDependents
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.RefreshToken{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.User{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

// --- Refresh tokens ---

func (s *Gorm) CreateRefreshToken(t *models.RefreshToken) error {
	return s.db.Create(t).Error
}

func (s *Gorm) GetRefreshToken(tokenHash string) (*models.RefreshToken, error) {
	var token models.RefreshToken
	if err := s.db.First(&token, "token_hash = ? AND revoked = false", tokenHash).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &token, nil
}

func (s *Gorm) RevokeRefreshToken(tokenHash string) error {
	return s.db.Model(&models.RefreshToken{}).
		Where("token_hash = ?", tokenHash).
		Update("revoked", true).Error
}

// --- Villages ---

func (s *Gorm) CreateVillage(v *models.Village) error {
	if err := s.db.Create(v).Error; err != nil {
		return fmt.Errorf("failed to create village: %w", err)
	}
	return nil
}

func (s *Gorm) GetVillage(id uuid.UUID) (*models.Village, error) {
	var village models.Village
	if err := s.db.First(&village, "id = ?", id).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &village, nil
}

func (s *Gorm) GetVillageWithAmenities(id uuid.UUID) (*dto.VillageWithAmenities, error) {
	var village models.Village
	if err := s.db.First(&village, "id = ?", id).Error; err != nil {
		return nil, mapNotFound(err)
	}
	amenities := []models.Amenity{}
	if err := s.db.Where("village_id = ?", id).Find(&amenities).Error; err != nil {
		return nil, err
	}
	return &dto.VillageWithAmenities{Village: village, Amenities: amenities}, nil
}

func (s *Gorm) ListVillages() ([]models.Village, error) {
	var villages []models.Village
	if err := s.db.Order("name ASC").Find(&villages).Error; err != nil {
		return nil, err
	}
	return villages, nil
}

func (s *Gorm) UpdateVillage(id uuid.UUID, patch *dto.UpdateVillageRequest) (*models.Village, error) {
	var village models.Village
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&village, "id = ?", id).Error; err != nil {
			return mapNotFound(err)
		}
		updates := map[string]interface{}{}
		if patch.Name != nil {
			updates["name"] = *patch.Name
		}
		if patch.District != nil {
			updates["district"] = *patch.District
		}
		if patch.Block != nil {
			updates["block"] = *patch.Block
		}
		if patch.Latitude != nil {
			updates["latitude"] = *patch.Latitude
		}
		if patch.Longitude != nil {
			updates["longitude"] = *patch.Longitude
		}
		if patch.Population != nil {
			updates["population"] = *patch.Population
		}
		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&village).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}
	return &village, nil
}

func (s *Gorm) DeleteVillage(id uuid.UUID) (bool, error) {
	var deleted bool
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Project{}).Where("village_id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrHasDependents
		}
		// Amenities are weak entities, removed with their village.
		if err := tx.Where("village_id = ?", id).Delete(&models.Amenity{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Village{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

// --- Projects ---

func (s *Gorm) CreateProject(p *models.Project) error {
	if err := s.db.Create(p).Error; err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

func (s *Gorm) GetProject(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	if err := s.db.First(&project, "id = ?", id).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &project, nil
}

func (s *Gorm) ListProjects() ([]models.Project, error) {
	var projects []models.Project
	if err := s.db.Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *Gorm) ListProjectsByVillage(villageID uuid.UUID) ([]models.Project, error) {
	var projects []models.Project
	if err := s.db.Where("village_id = ?", villageID).Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *Gorm) ListProjectsByUser(userID uuid.UUID) ([]models.Project, error) {
	var projects []models.Project
	if err := s.db.Where("created_by = ?", userID).Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *Gorm) UpdateProject(id uuid.UUID, patch *dto.UpdateProjectRequest) (*models.Project, error) {
	var project models.Project
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&project, "id = ?", id).Error; err != nil {
			return mapNotFound(err)
		}
		updates := map[string]interface{}{}
		if patch.Title != nil {
			updates["title"] = *patch.Title
		}
		if patch.Description != nil {
			updates["description"] = *patch.Description
		}
		if patch.Status != nil {
			updates["status"] = *patch.Status
		}
		if patch.StartDate != nil {
			updates["start_date"] = *patch.StartDate
		}
		if patch.EndDate != nil {
			updates["end_date"] = *patch.EndDate
		}
		if patch.Budget != nil {
			updates["budget"] = *patch.Budget
		}
		if patch.Progress != nil {
			updates["progress"] = *patch.Progress
		}
		updates["updated_at"] = time.Now().UTC()
		return tx.Model(&project).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *Gorm) DeleteProject(id uuid.UUID) (bool, error) {
	var deleted bool
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Report{}).Where("project_id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrHasDependents
		}
		res := tx.Delete(&models.Project{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

// --- Reports ---

func (s *Gorm) CreateReport(r *models.Report) error {
	if err := s.db.Create(r).Error; err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	return nil
}

func (s *Gorm) GetReport(id uuid.UUID) (*models.Report, error) {
	var report models.Report
	if err := s.db.First(&report, "id = ?", id).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &report, nil
}

func (s *Gorm) ListReports() ([]models.Report, error) {
	var reports []models.Report
	if err := s.db.Order("created_at DESC").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (s *Gorm) ListReportsByProject(projectID uuid.UUID) ([]models.Report, error) {
	var reports []models.Report
	if err := s.db.Where("project_id = ?", projectID).Order("created_at DESC").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (s *Gorm) DeleteReport(id uuid.UUID) (bool, error) {
	res := s.db.Delete(&models.Report{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// --- Amenities ---

func (s *Gorm) ListAmenitiesByVillage(villageID uuid.UUID) ([]models.Amenity, error) {
	amenities := []models.Amenity{}
	if err := s.db.Where("village_id = ?", villageID).Find(&amenities).Error; err != nil {
		return nil, err
	}
	return amenities, nil
}

func (s *Gorm) UpsertAmenity(villageID uuid.UUID, req *dto.UpsertAmenityRequest) (*models.Amenity, error) {
	var amenity models.Amenity
	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("village_id = ? AND amenity_type = ?", villageID, req.AmenityType).
			First(&amenity).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			amenity = models.Amenity{
				ID:          uuid.New(),
				VillageID:   villageID,
				AmenityType: req.AmenityType,
				UpdatedAt:   time.Now().UTC(),
			}
			if req.Available != nil {
				amenity.Available = *req.Available
			}
			if req.Required != nil {
				amenity.Required = *req.Required
			}
			return tx.Create(&amenity).Error
		}
		if err != nil {
			return err
		}
		updates := map[string]interface{}{"updated_at": time.Now().UTC()}
		if req.Available != nil {
			updates["available"] = *req.Available
		}
		if req.Required != nil {
			updates["required"] = *req.Required
		}
		return tx.Model(&amenity).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}
	return &amenity, nil
}

// --- Dashboard ---

func (s *Gorm) DashboardStats() (*dto.DashboardStats, error) {
	stats := dto.DashboardStats{}
	if err := s.db.Model(&models.Village{}).Count(&stats.TotalVillages).Error; err != nil {
		return nil, err
	}
	counts := []struct {
		status models.ProjectStatus
		dest   *int64
	}{
		{models.StatusOngoing, &stats.ActiveProjects},
		{models.StatusCompleted, &stats.CompletedProjects},
		{models.StatusDelayed, &stats.DelayedProjects},
	}
	for _, c := range counts {
		if err := s.db.Model(&models.Project{}).Where("status = ?", c.status).Count(c.dest).Error; err != nil {
			return nil, err
		}
	}
	return &stats, nil
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
