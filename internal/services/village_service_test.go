package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/village360/village360-backend/internal/dto"
	"github.com/village360/village360-backend/internal/store"
)

type VillageServiceSuite struct {
	suite.Suite
	store *store.Memory
	svc   *VillageService
}

func TestVillageServiceSuite(t *testing.T) {
	suite.Run(t, new(VillageServiceSuite))
}

func (s *VillageServiceSuite) SetupTest() {
	s.store = store.NewMemory()
	s.svc = NewVillageService(s.store)
}

func floatPtr(f float64) *float64 { return &f }

func (s *VillageServiceSuite) validRequest() *dto.CreateVillageRequest {
	return &dto.CreateVillageRequest{
		Name:       "Rampur",
		District:   "District A",
		Block:      "Block X",
		Latitude:   floatPtr(12.34),
		Longitude:  floatPtr(56.78),
		Population: 1200,
	}
}

func (s *VillageServiceSuite) TestCreateAssignsFreshIDs() {
	seen := map[uuid.UUID]bool{}
	for i := 0; i < 10; i++ {
		village, err := s.svc.Create(s.validRequest())
		s.Require().NoError(err)
		s.False(seen[village.ID], "ids must be unique across creations")
		seen[village.ID] = true
		s.False(village.CreatedAt.IsZero())
	}
}

func (s *VillageServiceSuite) TestCreateValidation() {
	cases := []struct {
		name    string
		mutate  func(*dto.CreateVillageRequest)
		wantErr error
	}{
		{"missing name", func(r *dto.CreateVillageRequest) { r.Name = "" }, ErrVillageNameRequired},
		{"missing district", func(r *dto.CreateVillageRequest) { r.District = "" }, ErrVillageDistrictRequired},
		{"missing block", func(r *dto.CreateVillageRequest) { r.Block = "" }, ErrVillageBlockRequired},
		{"missing latitude", func(r *dto.CreateVillageRequest) { r.Latitude = nil }, ErrCoordinatesRequired},
		{"missing longitude", func(r *dto.CreateVillageRequest) { r.Longitude = nil }, ErrCoordinatesRequired},
		{"latitude out of range", func(r *dto.CreateVillageRequest) { r.Latitude = floatPtr(91) }, ErrInvalidLatitude},
		{"longitude out of range", func(r *dto.CreateVillageRequest) { r.Longitude = floatPtr(-181) }, ErrInvalidLongitude},
		{"negative population", func(r *dto.CreateVillageRequest) { r.Population = -1 }, ErrInvalidPopulation},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			req := s.validRequest()
			tc.mutate(req)
			_, err := s.svc.Create(req)
			s.ErrorIs(err, tc.wantErr)
		})
	}
}

func (s *VillageServiceSuite) TestUpdateValidation() {
	village, err := s.svc.Create(s.validRequest())
	s.Require().NoError(err)

	empty := ""
	_, err = s.svc.Update(village.ID, &dto.UpdateVillageRequest{Name: &empty})
	s.ErrorIs(err, ErrVillageNameRequired)

	_, err = s.svc.Update(village.ID, &dto.UpdateVillageRequest{Latitude: floatPtr(123)})
	s.ErrorIs(err, ErrInvalidLatitude)

	name := "Rampur Khurd"
	updated, err := s.svc.Update(village.ID, &dto.UpdateVillageRequest{Name: &name})
	s.Require().NoError(err)
	s.Equal("Rampur Khurd", updated.Name)
	s.Equal(village.District, updated.District)
}

func (s *VillageServiceSuite) TestDeleteBlockedByProjects() {
	village, err := s.svc.Create(s.validRequest())
	s.Require().NoError(err)

	projects := NewProjectService(s.store)
	_, err = projects.Create(uuid.New(), &dto.CreateProjectRequest{
		VillageID:   village.ID,
		Title:       "Water Supply",
		Description: "Piped water to every household",
	})
	s.Require().NoError(err)

	_, err = s.svc.Delete(village.ID)
	s.ErrorIs(err, ErrVillageHasProjects)
}

func (s *VillageServiceSuite) TestGetNotFoundIsNotAnError() {
	_, err := s.svc.Get(uuid.New())
	s.ErrorIs(err, store.ErrNotFound)
}

func (s *VillageServiceSuite) TestUpsertAmenityRequiresVillage() {
	amenities := NewAmenityService(s.store)

	one := 1
	_, err := amenities.Upsert(uuid.New(), &dto.UpsertAmenityRequest{
		AmenityType: "school", Available: &one,
	})
	s.ErrorIs(err, ErrVillageNotFound)

	village, err := s.svc.Create(s.validRequest())
	s.Require().NoError(err)

	_, err = amenities.Upsert(village.ID, &dto.UpsertAmenityRequest{})
	s.ErrorIs(err, ErrAmenityTypeRequired)

	minus := -1
	_, err = amenities.Upsert(village.ID, &dto.UpsertAmenityRequest{
		AmenityType: "school", Available: &minus,
	})
	s.ErrorIs(err, ErrInvalidCount)

	amenity, err := amenities.Upsert(village.ID, &dto.UpsertAmenityRequest{
		AmenityType: "school", Available: &one,
	})
	s.Require().NoError(err)
	s.Equal(1, amenity.Available)
	s.Equal(0, amenity.Required)
}
