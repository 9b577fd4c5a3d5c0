package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/village360/village360-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Fixed ids so the mock dataset is stable across restarts and the frontend
// can deep-link into it.
var (
	SampleUserID     = uuid.MustParse("a0000000-0000-4000-8000-000000000001")
	SampleVillage1ID = uuid.MustParse("b0000000-0000-4000-8000-000000000001")
	SampleVillage2ID = uuid.MustParse("b0000000-0000-4000-8000-000000000002")
	SampleProject1ID = uuid.MustParse("c0000000-0000-4000-8000-000000000001")
	SampleProject2ID = uuid.MustParse("c0000000-0000-4000-8000-000000000002")
)

// SampleUserPassword is the plaintext credential of the seeded admin. Mock
// mode has no registration UI, so the login is documented here.
const (
	SampleUsername     = "testuser"
	SampleUserPassword = "test@123"
)

// SeedSampleData loads the fixed mock dataset: two villages, two projects
// (one ongoing, one planning) and a single admin user that can log in.
func (m *Memory) SeedSampleData() error {
	hash, err := bcrypt.GenerateFromPassword([]byte(SampleUserPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash sample password: %w", err)
	}

	now := time.Now().UTC()

	m.mu.Lock()
	defer m.mu.Unlock()

	m.users = []models.User{{
		ID:        SampleUserID,
		Username:  SampleUsername,
		Email:     "testuser@example.com",
		Password:  string(hash),
		Role:      models.RoleAdmin,
		CreatedAt: now,
	}}

	m.villages = []models.Village{
		{
			ID:         SampleVillage1ID,
			Name:       "Village 1",
			District:   "District A",
			Block:      "Block X",
			Latitude:   12.34,
			Longitude:  56.78,
			Population: 1000,
			CreatedAt:  now,
		},
		{
			ID:         SampleVillage2ID,
			Name:       "Village 2",
			District:   "District B",
			Block:      "Block Y",
			Latitude:   23.45,
			Longitude:  67.89,
			Population: 2000,
			CreatedAt:  now,
		},
	}

	m.projects = []models.Project{
		{
			ID:          SampleProject1ID,
			VillageID:   SampleVillage1ID,
			Title:       "Project 1",
			Description: "Desc",
			Status:      models.StatusOngoing,
			CreatedBy:   SampleUserID,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          SampleProject2ID,
			VillageID:   SampleVillage2ID,
			Title:       "Project 2",
			Description: "Desc",
			Status:      models.StatusPlanning,
			CreatedBy:   SampleUserID,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}

	return nil
}
