//go:build integration

package store_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/village360/village360-backend/internal/config"
	"github.com/village360/village360-backend/internal/database"
	"github.com/village360/village360-backend/internal/dto"
	"github.com/village360/village360-backend/internal/models"
	"github.com/village360/village360-backend/internal/store"
)

// PostgresStoreSuite runs the Store contract against a real database.
// Requires a Docker daemon; run with -tags integration.
type PostgresStoreSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	store     *store.Gorm
}

func TestPostgresStoreSuite(t *testing.T) {
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("village360_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := database.Connect(&config.Config{DatabaseURL: dsn})
	s.Require().NoError(err)
	s.Require().NoError(database.Migrate(db))

	s.store = store.NewGorm(db)
}

func (s *PostgresStoreSuite) TearDownSuite() {
	if s.container != nil {
		_ = s.container.Terminate(context.Background())
	}
}

func (s *PostgresStoreSuite) TestLiveModeAndPing() {
	s.False(s.store.MockMode())
	s.NoError(s.store.Ping())
}

func (s *PostgresStoreSuite) TestVillageRoundTrip() {
	village := models.Village{
		ID:        uuid.New(),
		Name:      "Rampur",
		District:  "District A",
		Block:     "Block X",
		Latitude:  12.34,
		Longitude: 56.78,
		CreatedAt: time.Now().UTC(),
	}
	s.Require().NoError(s.store.CreateVillage(&village))

	found, err := s.store.GetVillage(village.ID)
	s.Require().NoError(err)
	s.Equal("Rampur", found.Name)

	pop := 900
	updated, err := s.store.UpdateVillage(village.ID, &dto.UpdateVillageRequest{Population: &pop})
	s.Require().NoError(err)
	s.Equal(900, updated.Population)
	s.Equal("Rampur", updated.Name)

	removed, err := s.store.DeleteVillage(village.ID)
	s.Require().NoError(err)
	s.True(removed)

	_, err = s.store.GetVillage(village.ID)
	s.ErrorIs(err, store.ErrNotFound)
}

func (s *PostgresStoreSuite) TestDeleteRestrictedByProjects() {
	village := models.Village{
		ID: uuid.New(), Name: "Sitapur", District: "D", Block: "B",
		Latitude: 1, Longitude: 2, CreatedAt: time.Now().UTC(),
	}
	s.Require().NoError(s.store.CreateVillage(&village))

	user := models.User{
		ID: uuid.New(), Username: "officer-" + uuid.NewString()[:8],
		Email: uuid.NewString()[:8] + "@example.com", Password: "x",
		Role: models.RoleBlockOfficer, CreatedAt: time.Now().UTC(),
	}
	s.Require().NoError(s.store.CreateUser(&user))

	now := time.Now().UTC()
	project := models.Project{
		ID: uuid.New(), VillageID: village.ID, Title: "Road", Description: "Main road",
		Status: models.StatusOngoing, CreatedBy: user.ID, CreatedAt: now, UpdatedAt: now,
	}
	s.Require().NoError(s.store.CreateProject(&project))

	_, err := s.store.DeleteVillage(village.ID)
	s.ErrorIs(err, store.ErrHasDependents)

	_, err = s.store.DeleteUser(user.ID)
	s.ErrorIs(err, store.ErrHasDependents)

	removed, err := s.store.DeleteProject(project.ID)
	s.Require().NoError(err)
	s.True(removed)

	removed, err = s.store.DeleteVillage(village.ID)
	s.Require().NoError(err)
	s.True(removed)
}

func (s *PostgresStoreSuite) TestAmenityUpsertHitsUniqueIndex() {
	village := models.Village{
		ID: uuid.New(), Name: "Belpada", District: "D", Block: "B",
		Latitude: 1, Longitude: 2, CreatedAt: time.Now().UTC(),
	}
	s.Require().NoError(s.store.CreateVillage(&village))

	two, five := 2, 5
	first, err := s.store.UpsertAmenity(village.ID, &dto.UpsertAmenityRequest{
		AmenityType: "school", Available: &two, Required: &five,
	})
	s.Require().NoError(err)

	three := 3
	second, err := s.store.UpsertAmenity(village.ID, &dto.UpsertAmenityRequest{
		AmenityType: "school", Available: &three,
	})
	s.Require().NoError(err)
	s.Equal(first.ID, second.ID)
	s.Equal(3, second.Available)
	s.Equal(5, second.Required)

	amenities, err := s.store.ListAmenitiesByVillage(village.ID)
	s.Require().NoError(err)
	s.Len(amenities, 1)
}

func (s *PostgresStoreSuite) TestRefreshTokenLifecycle() {
	user := models.User{
		ID: uuid.New(), Username: "token-" + uuid.NewString()[:8],
		Email: uuid.NewString()[:8] + "@example.com", Password: "x",
		Role: models.RolePublicViewer, CreatedAt: time.Now().UTC(),
	}
	s.Require().NoError(s.store.CreateUser(&user))

	hash := sha256.Sum256([]byte(uuid.NewString()))
	token := models.RefreshToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		TokenHash: hex.EncodeToString(hash[:]),
		ExpiresAt: time.Now().Add(time.Hour),
		CreatedAt: time.Now().UTC(),
	}
	s.Require().NoError(s.store.CreateRefreshToken(&token))

	found, err := s.store.GetRefreshToken(token.TokenHash)
	s.Require().NoError(err)
	s.Equal(user.ID, found.UserID)

	s.Require().NoError(s.store.RevokeRefreshToken(token.TokenHash))

	_, err = s.store.GetRefreshToken(token.TokenHash)
	s.ErrorIs(err, store.ErrNotFound)
}
