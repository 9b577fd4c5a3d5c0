package store

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/village360/village360-backend/internal/dto"
	"github.com/village360/village360-backend/internal/models"
)

type MemoryStoreSuite struct {
	suite.Suite
	store *Memory
}

func TestMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreSuite))
}

func (s *MemoryStoreSuite) SetupTest() {
	s.store = NewMemory()
}

func (s *MemoryStoreSuite) newVillage(name string) *models.Village {
	return &models.Village{
		ID:        uuid.New(),
		Name:      name,
		District:  "District A",
		Block:     "Block X",
		Latitude:  12.34,
		Longitude: 56.78,
		CreatedAt: time.Now().UTC(),
	}
}

func (s *MemoryStoreSuite) newProject(villageID, createdBy uuid.UUID, status models.ProjectStatus, createdAt time.Time) *models.Project {
	return &models.Project{
		ID:          uuid.New(),
		VillageID:   villageID,
		Title:       "Road Upgrade",
		Description: "Resurface the main road",
		Status:      status,
		CreatedBy:   createdBy,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
}

func (s *MemoryStoreSuite) TestVillageCRUD() {
	village := s.newVillage("Rampur")
	s.Require().NoError(s.store.CreateVillage(village))

	found, err := s.store.GetVillage(village.ID)
	s.Require().NoError(err)
	s.Equal("Rampur", found.Name)

	removed, err := s.store.DeleteVillage(village.ID)
	s.Require().NoError(err)
	s.True(removed)

	_, err = s.store.GetVillage(village.ID)
	s.ErrorIs(err, ErrNotFound)

	// Second delete reports absence, not an error.
	removed, err = s.store.DeleteVillage(village.ID)
	s.Require().NoError(err)
	s.False(removed)
}

func (s *MemoryStoreSuite) TestVillagesOrderedByName() {
	for _, name := range []string{"Chakur", "Ambari", "Belpada"} {
		s.Require().NoError(s.store.CreateVillage(s.newVillage(name)))
	}

	villages, err := s.store.ListVillages()
	s.Require().NoError(err)
	s.Require().Len(villages, 3)
	s.Equal("Ambari", villages[0].Name)
	s.Equal("Belpada", villages[1].Name)
	s.Equal("Chakur", villages[2].Name)
}

func (s *MemoryStoreSuite) TestVillagePartialPatch() {
	village := s.newVillage("Rampur")
	s.Require().NoError(s.store.CreateVillage(village))

	pop := 4200
	updated, err := s.store.UpdateVillage(village.ID, &dto.UpdateVillageRequest{Population: &pop})
	s.Require().NoError(err)
	s.Equal(4200, updated.Population)
	s.Equal(village.Name, updated.Name)
	s.Equal(village.Latitude, updated.Latitude)

	_, err = s.store.UpdateVillage(uuid.New(), &dto.UpdateVillageRequest{Population: &pop})
	s.ErrorIs(err, ErrNotFound)
}

func (s *MemoryStoreSuite) TestProjectsNewestFirst() {
	village := s.newVillage("Rampur")
	s.Require().NoError(s.store.CreateVillage(village))
	creator := uuid.New()

	base := time.Now().UTC()
	oldest := s.newProject(village.ID, creator, models.StatusPlanning, base.Add(-2*time.Hour))
	middle := s.newProject(village.ID, creator, models.StatusOngoing, base.Add(-1*time.Hour))
	newest := s.newProject(village.ID, creator, models.StatusOngoing, base)
	for _, p := range []*models.Project{oldest, newest, middle} {
		s.Require().NoError(s.store.CreateProject(p))
	}

	projects, err := s.store.ListProjects()
	s.Require().NoError(err)
	s.Require().Len(projects, 3)
	s.Equal(newest.ID, projects[0].ID)
	s.Equal(middle.ID, projects[1].ID)
	s.Equal(oldest.ID, projects[2].ID)
}

func (s *MemoryStoreSuite) TestProjectsByForeignKey() {
	v1 := s.newVillage("Rampur")
	v2 := s.newVillage("Sitapur")
	s.Require().NoError(s.store.CreateVillage(v1))
	s.Require().NoError(s.store.CreateVillage(v2))

	alice := uuid.New()
	bob := uuid.New()
	now := time.Now().UTC()
	s.Require().NoError(s.store.CreateProject(s.newProject(v1.ID, alice, models.StatusOngoing, now)))
	s.Require().NoError(s.store.CreateProject(s.newProject(v1.ID, bob, models.StatusPlanning, now)))
	s.Require().NoError(s.store.CreateProject(s.newProject(v2.ID, alice, models.StatusOngoing, now)))

	byVillage, err := s.store.ListProjectsByVillage(v1.ID)
	s.Require().NoError(err)
	s.Len(byVillage, 2)

	byUser, err := s.store.ListProjectsByUser(alice)
	s.Require().NoError(err)
	s.Len(byUser, 2)
}

func (s *MemoryStoreSuite) TestProjectPatchRefreshesUpdatedAt() {
	village := s.newVillage("Rampur")
	s.Require().NoError(s.store.CreateVillage(village))

	created := time.Now().UTC().Add(-time.Minute)
	project := s.newProject(village.ID, uuid.New(), models.StatusPlanning, created)
	s.Require().NoError(s.store.CreateProject(project))

	status := models.StatusOngoing
	updated, err := s.store.UpdateProject(project.ID, &dto.UpdateProjectRequest{Status: &status})
	s.Require().NoError(err)

	s.Equal(models.StatusOngoing, updated.Status)
	s.True(updated.UpdatedAt.After(project.UpdatedAt), "updated_at must strictly increase")

	// Everything not in the patch is untouched.
	s.Equal(project.Title, updated.Title)
	s.Equal(project.Description, updated.Description)
	s.Equal(project.Budget, updated.Budget)
	s.Equal(project.Progress, updated.Progress)
	s.Equal(project.CreatedAt, updated.CreatedAt)
}

func (s *MemoryStoreSuite) TestDeleteRestrictions() {
	village := s.newVillage("Rampur")
	s.Require().NoError(s.store.CreateVillage(village))

	creator := uuid.New()
	s.Require().NoError(s.store.CreateUser(&models.User{
		ID: creator, Username: "officer", Email: "officer@example.com",
		Password: "x", Role: models.RoleBlockOfficer, CreatedAt: time.Now().UTC(),
	}))

	project := s.newProject(village.ID, creator, models.StatusOngoing, time.Now().UTC())
	s.Require().NoError(s.store.CreateProject(project))

	_, err := s.store.DeleteVillage(village.ID)
	s.ErrorIs(err, ErrHasDependents)

	_, err = s.store.DeleteUser(creator)
	s.ErrorIs(err, ErrHasDependents)

	report := models.Report{
		ID: uuid.New(), ProjectID: &project.ID, ReportType: models.ReportProgress,
		Title: "Week 1", CreatedBy: creator, CreatedAt: time.Now().UTC(),
	}
	s.Require().NoError(s.store.CreateReport(&report))

	_, err = s.store.DeleteProject(project.ID)
	s.ErrorIs(err, ErrHasDependents)

	removed, err := s.store.DeleteReport(report.ID)
	s.Require().NoError(err)
	s.True(removed)

	removed, err = s.store.DeleteProject(project.ID)
	s.Require().NoError(err)
	s.True(removed)

	removed, err = s.store.DeleteVillage(village.ID)
	s.Require().NoError(err)
	s.True(removed)
}

func (s *MemoryStoreSuite) TestAmenityUpsertKeepsOneRow() {
	village := s.newVillage("Rampur")
	s.Require().NoError(s.store.CreateVillage(village))

	two, five := 2, 5
	first, err := s.store.UpsertAmenity(village.ID, &dto.UpsertAmenityRequest{
		AmenityType: "school", Available: &two, Required: &five,
	})
	s.Require().NoError(err)
	s.Equal(2, first.Available)

	three := 3
	second, err := s.store.UpsertAmenity(village.ID, &dto.UpsertAmenityRequest{
		AmenityType: "school", Available: &three,
	})
	s.Require().NoError(err)

	s.Equal(first.ID, second.ID, "upsert must not create a second row")
	s.Equal(3, second.Available)
	s.Equal(5, second.Required, "omitted count keeps its value")
	s.True(second.UpdatedAt.After(first.UpdatedAt) || second.UpdatedAt.Equal(first.UpdatedAt))

	amenities, err := s.store.ListAmenitiesByVillage(village.ID)
	s.Require().NoError(err)
	s.Len(amenities, 1)
}

func (s *MemoryStoreSuite) TestVillageWithAmenities() {
	village := s.newVillage("Rampur")
	s.Require().NoError(s.store.CreateVillage(village))

	// Zero amenities still yields the village with an empty list.
	agg, err := s.store.GetVillageWithAmenities(village.ID)
	s.Require().NoError(err)
	s.Equal(village.ID, agg.Village.ID)
	s.NotNil(agg.Amenities)
	s.Empty(agg.Amenities)

	one := 1
	_, err = s.store.UpsertAmenity(village.ID, &dto.UpsertAmenityRequest{
		AmenityType: "well", Available: &one,
	})
	s.Require().NoError(err)

	agg, err = s.store.GetVillageWithAmenities(village.ID)
	s.Require().NoError(err)
	s.Len(agg.Amenities, 1)

	_, err = s.store.GetVillageWithAmenities(uuid.New())
	s.ErrorIs(err, ErrNotFound)
}

func (s *MemoryStoreSuite) TestDashboardStatsAreLive() {
	stats, err := s.store.DashboardStats()
	s.Require().NoError(err)
	s.Equal(int64(0), stats.TotalVillages)

	village := s.newVillage("Rampur")
	s.Require().NoError(s.store.CreateVillage(village))
	project := s.newProject(village.ID, uuid.New(), models.StatusOngoing, time.Now().UTC())
	s.Require().NoError(s.store.CreateProject(project))

	stats, err = s.store.DashboardStats()
	s.Require().NoError(err)
	s.Equal(int64(1), stats.TotalVillages)
	s.Equal(int64(1), stats.ActiveProjects)
	s.Equal(int64(0), stats.CompletedProjects)
	s.Equal(int64(0), stats.DelayedProjects)

	completed := models.StatusCompleted
	_, err = s.store.UpdateProject(project.ID, &dto.UpdateProjectRequest{Status: &completed})
	s.Require().NoError(err)

	stats, err = s.store.DashboardStats()
	s.Require().NoError(err)
	s.Equal(int64(0), stats.ActiveProjects)
	s.Equal(int64(1), stats.CompletedProjects)
}

func (s *MemoryStoreSuite) TestUsersOrderedByCreation() {
	base := time.Now().UTC()
	for i, name := range []string{"carol", "alice", "bob"} {
		s.Require().NoError(s.store.CreateUser(&models.User{
			ID: uuid.New(), Username: name, Email: name + "@example.com",
			Password: "x", Role: models.RolePublicViewer,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}

	users, err := s.store.ListUsers()
	s.Require().NoError(err)
	s.Require().Len(users, 3)
	s.Equal("carol", users[0].Username)
	s.Equal("alice", users[1].Username)
	s.Equal("bob", users[2].Username)
}

func (s *MemoryStoreSuite) TestSeedSampleData() {
	s.Require().NoError(s.store.SeedSampleData())

	villages, err := s.store.ListVillages()
	s.Require().NoError(err)
	s.Require().Len(villages, 2)
	s.Equal("Village 1", villages[0].Name)
	s.Equal("Village 2", villages[1].Name)

	stats, err := s.store.DashboardStats()
	s.Require().NoError(err)
	s.Equal(int64(2), stats.TotalVillages)
	s.Equal(int64(1), stats.ActiveProjects)
	s.Equal(int64(0), stats.CompletedProjects)
	s.Equal(int64(0), stats.DelayedProjects)

	user, err := s.store.GetUserByUsername(SampleUsername)
	s.Require().NoError(err)
	s.Equal(models.RoleAdmin, user.Role)
	s.NotEqual(SampleUserPassword, user.Password, "password must be stored hashed")

	// Mock-mode writes mutate the in-process dataset.
	pop := 1500
	_, err = s.store.UpdateVillage(SampleVillage1ID, &dto.UpdateVillageRequest{Population: &pop})
	s.Require().NoError(err)
	v, err := s.store.GetVillage(SampleVillage1ID)
	s.Require().NoError(err)
	s.Equal(1500, v.Population)
}
