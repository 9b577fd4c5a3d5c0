package store

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/village360/village360-backend/internal/dto"
	"github.com/village360/village360-backend/internal/models"
)

// Memory is the mock-mode Store. It holds everything in process memory
// behind one RWMutex: reads see the seeded sample dataset, writes mutate it
// for the process lifetime and are lost on restart. It doubles as the test
// fake for the domain services.
type Memory struct {
	mu            sync.RWMutex
	users         []models.User
	villages      []models.Village
	projects      []models.Project
	reports       []models.Report
	amenities     []models.Amenity
	refreshTokens []models.RefreshToken
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) MockMode() bool { return true }

func (m *Memory) Ping() error { return nil }

// --- Users ---

func (m *Memory) CreateUser(u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users = append(m.users, *u)
	return nil
}

func (m *Memory) GetUser(id uuid.UUID) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.users {
		if m.users[i].ID == id {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) GetUserByUsername(username string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.users {
		if m.users[i].Username == username {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) GetUserByEmail(email string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.users {
		if m.users[i].Email == email {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) ListUsers() ([]models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	users := make([]models.User, len(m.users))
	copy(users, m.users)
	sort.SliceStable(users, func(i, j int) bool {
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})
	return users, nil
}

func (m *Memory) DeleteUser(id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.projects {
		if m.projects[i].CreatedBy == id {
			return false, ErrHasDependents
		}
	}
	for i := range m.reports {
		if m.reports[i].CreatedBy == id {
			return false, ErrHasDependents
		}
	}
	kept := m.refreshTokens[:0]
	for _, t := range m.refreshTokens {
		if t.UserID != id {
			kept = append(kept, t)
		}
	}
	m.refreshTokens = kept
	for i := range m.users {
		if m.users[i].ID == id {
			m.users = append(m.users[:i], m.users[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// --- Refresh tokens ---

func (m *Memory) CreateRefreshToken(t *models.RefreshToken) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refreshTokens = append(m.refreshTokens, *t)
	return nil
}

func (m *Memory) GetRefreshToken(tokenHash string) (*models.RefreshToken, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.refreshTokens {
		if m.refreshTokens[i].TokenHash == tokenHash && !m.refreshTokens[i].Revoked {
			t := m.refreshTokens[i]
			return &t, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) RevokeRefreshToken(tokenHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.refreshTokens {
		if m.refreshTokens[i].TokenHash == tokenHash {
			m.refreshTokens[i].Revoked = true
		}
	}
	return nil
}

// --- Villages ---

func (m *Memory) CreateVillage(v *models.Village) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.villages = append(m.villages, *v)
	return nil
}

func (m *Memory) GetVillage(id uuid.UUID) (*models.Village, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.findVillage(id)
}

func (m *Memory) findVillage(id uuid.UUID) (*models.Village, error) {
	for i := range m.villages {
		if m.villages[i].ID == id {
			v := m.villages[i]
			return &v, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) GetVillageWithAmenities(id uuid.UUID) (*dto.VillageWithAmenities, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	village, err := m.findVillage(id)
	if err != nil {
		return nil, err
	}
	amenities := []models.Amenity{}
	for _, a := range m.amenities {
		if a.VillageID == id {
			amenities = append(amenities, a)
		}
	}
	return &dto.VillageWithAmenities{Village: *village, Amenities: amenities}, nil
}

func (m *Memory) ListVillages() ([]models.Village, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	villages := make([]models.Village, len(m.villages))
	copy(villages, m.villages)
	sort.SliceStable(villages, func(i, j int) bool {
		return villages[i].Name < villages[j].Name
	})
	return villages, nil
}

func (m *Memory) UpdateVillage(id uuid.UUID, patch *dto.UpdateVillageRequest) (*models.Village, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.villages {
		if m.villages[i].ID != id {
			continue
		}
		v := &m.villages[i]
		if patch.Name != nil {
			v.Name = *patch.Name
		}
		if patch.District != nil {
			v.District = *patch.District
		}
		if patch.Block != nil {
			v.Block = *patch.Block
		}
		if patch.Latitude != nil {
			v.Latitude = *patch.Latitude
		}
		if patch.Longitude != nil {
			v.Longitude = *patch.Longitude
		}
		if patch.Population != nil {
			v.Population = *patch.Population
		}
		out := *v
		return &out, nil
	}
	return nil, ErrNotFound
}

func (m *Memory) DeleteVillage(id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.projects {
		if m.projects[i].VillageID == id {
			return false, ErrHasDependents
		}
	}
	for i := range m.villages {
		if m.villages[i].ID == id {
			m.villages = append(m.villages[:i], m.villages[i+1:]...)
			kept := m.amenities[:0]
			for _, a := range m.amenities {
				if a.VillageID != id {
					kept = append(kept, a)
				}
			}
			m.amenities = kept
			return true, nil
		}
	}
	return false, nil
}

// --- Projects ---

func (m *Memory) CreateProject(p *models.Project) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.projects = append(m.projects, *p)
	return nil
}

func (m *Memory) GetProject(id uuid.UUID) (*models.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.projects {
		if m.projects[i].ID == id {
			p := m.projects[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) ListProjects() ([]models.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.selectProjects(func(models.Project) bool { return true }), nil
}

func (m *Memory) ListProjectsByVillage(villageID uuid.UUID) ([]models.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.selectProjects(func(p models.Project) bool { return p.VillageID == villageID }), nil
}

func (m *Memory) ListProjectsByUser(userID uuid.UUID) ([]models.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.selectProjects(func(p models.Project) bool { return p.CreatedBy == userID }), nil
}

// selectProjects returns matching projects newest-first; created_at ties
// keep insertion order. Callers must hold the lock.
func (m *Memory) selectProjects(match func(models.Project) bool) []models.Project {
	projects := []models.Project{}
	for _, p := range m.projects {
		if match(p) {
			projects = append(projects, p)
		}
	}
	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].CreatedAt.After(projects[j].CreatedAt)
	})
	return projects
}

func (m *Memory) UpdateProject(id uuid.UUID, patch *dto.UpdateProjectRequest) (*models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.projects {
		if m.projects[i].ID != id {
			continue
		}
		p := &m.projects[i]
		if patch.Title != nil {
			p.Title = *patch.Title
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.Status != nil {
			p.Status = *patch.Status
		}
		if patch.StartDate != nil {
			p.StartDate = patch.StartDate
		}
		if patch.EndDate != nil {
			p.EndDate = patch.EndDate
		}
		if patch.Budget != nil {
			p.Budget = *patch.Budget
		}
		if patch.Progress != nil {
			p.Progress = *patch.Progress
		}
		p.UpdatedAt = time.Now().UTC()
		out := *p
		return &out, nil
	}
	return nil, ErrNotFound
}

func (m *Memory) DeleteProject(id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.reports {
		if m.reports[i].ProjectID != nil && *m.reports[i].ProjectID == id {
			return false, ErrHasDependents
		}
	}
	for i := range m.projects {
		if m.projects[i].ID == id {
			m.projects = append(m.projects[:i], m.projects[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// --- Reports ---

func (m *Memory) CreateReport(r *models.Report) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reports = append(m.reports, *r)
	return nil
}

func (m *Memory) GetReport(id uuid.UUID) (*models.Report, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.reports {
		if m.reports[i].ID == id {
			r := m.reports[i]
			return &r, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) ListReports() ([]models.Report, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.selectReports(func(models.Report) bool { return true }), nil
}

func (m *Memory) ListReportsByProject(projectID uuid.UUID) ([]models.Report, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.selectReports(func(r models.Report) bool {
		return r.ProjectID != nil && *r.ProjectID == projectID
	}), nil
}

func (m *Memory) selectReports(match func(models.Report) bool) []models.Report {
	reports := []models.Report{}
	for _, r := range m.reports {
		if match(r) {
			reports = append(reports, r)
		}
	}
	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].CreatedAt.After(reports[j].CreatedAt)
	})
	return reports
}

func (m *Memory) DeleteReport(id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.reports {
		if m.reports[i].ID == id {
			m.reports = append(m.reports[:i], m.reports[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// --- Amenities ---

func (m *Memory) ListAmenitiesByVillage(villageID uuid.UUID) ([]models.Amenity, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	amenities := []models.Amenity{}
	for _, a := range m.amenities {
		if a.VillageID == villageID {
			amenities = append(amenities, a)
		}
	}
	return amenities, nil
}

func (m *Memory) UpsertAmenity(villageID uuid.UUID, req *dto.UpsertAmenityRequest) (*models.Amenity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.amenities {
		a := &m.amenities[i]
		if a.VillageID == villageID && a.AmenityType == req.AmenityType {
			if req.Available != nil {
				a.Available = *req.Available
			}
			if req.Required != nil {
				a.Required = *req.Required
			}
			a.UpdatedAt = time.Now().UTC()
			out := *a
			return &out, nil
		}
	}
	amenity := models.Amenity{
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
	m.amenities = append(m.amenities, amenity)
	return &amenity, nil
}

// --- Dashboard ---

func (m *Memory) DashboardStats() (*dto.DashboardStats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	stats := dto.DashboardStats{TotalVillages: int64(len(m.villages))}
	for _, p := range m.projects {
		switch p.Status {
		case models.StatusOngoing:
			stats.ActiveProjects++
		case models.StatusCompleted:
			stats.CompletedProjects++
		case models.StatusDelayed:
			stats.DelayedProjects++
		}
	}
	return &stats, nil
}
