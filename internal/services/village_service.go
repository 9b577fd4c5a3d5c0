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
	ErrVillageNameRequired     = errors.New("name is required")
	ErrVillageDistrictRequired = errors.New("district is required")
	ErrVillageBlockRequired    = errors.New("block is required")
	ErrCoordinatesRequired     = errors.New("latitude and longitude are required")
	ErrInvalidLatitude         = errors.New("latitude must be between -90 and 90")
	ErrInvalidLongitude        = errors.New("longitude must be between -180 and 180")
	ErrInvalidPopulation       = errors.New("population must not be negative")
	ErrVillageHasProjects      = errors.New("village still has projects")
)

type VillageService struct {
	store store.Store
}

func NewVillageService(st store.Store) *VillageService {
	return &VillageService{store: st}
}

func (s *VillageService) Create(req *dto.CreateVillageRequest) (*models.Village, error) {
	if req.Name == "" {
		return nil, ErrVillageNameRequired
	}
	if req.District == "" {
		return nil, ErrVillageDistrictRequired
	}
	if req.Block == "" {
		return nil, ErrVillageBlockRequired
	}
	if req.Latitude == nil || req.Longitude == nil {
		return nil, ErrCoordinatesRequired
	}
	if err := validateCoordinates(*req.Latitude, *req.Longitude); err != nil {
		return nil, err
	}
	if req.Population < 0 {
		return nil, ErrInvalidPopulation
	}

	village := models.Village{
		ID:         uuid.New(),
		Name:       req.Name,
		District:   req.District,
		Block:      req.Block,
		Latitude:   *req.Latitude,
		Longitude:  *req.Longitude,
		Population: req.Population,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.store.CreateVillage(&village); err != nil {
		return nil, err
	}
	return &village, nil
}

func (s *VillageService) Get(id uuid.UUID) (*models.Village, error) {
	return s.store.GetVillage(id)
}

func (s *VillageService) GetWithAmenities(id uuid.UUID) (*dto.VillageWithAmenities, error) {
	return s.store.GetVillageWithAmenities(id)
}

func (s *VillageService) List() ([]models.Village, error) {
	return s.store.ListVillages()
}

func (s *VillageService) Update(id uuid.UUID, patch *dto.UpdateVillageRequest) (*models.Village, error) {
	if patch.Name != nil && *patch.Name == "" {
		return nil, ErrVillageNameRequired
	}
	if patch.District != nil && *patch.District == "" {
		return nil, ErrVillageDistrictRequired
	}
	if patch.Block != nil && *patch.Block == "" {
		return nil, ErrVillageBlockRequired
	}
	if patch.Latitude != nil && (*patch.Latitude < -90 || *patch.Latitude > 90) {
		return nil, ErrInvalidLatitude
	}
	if patch.Longitude != nil && (*patch.Longitude < -180 || *patch.Longitude > 180) {
		return nil, ErrInvalidLongitude
	}
	if patch.Population != nil && *patch.Population < 0 {
		return nil, ErrInvalidPopulation
	}
	return s.store.UpdateVillage(id, patch)
}

func (s *VillageService) Delete(id uuid.UUID) (bool, error) {
	removed, err := s.store.DeleteVillage(id)
	if errors.Is(err, store.ErrHasDependents) {
		return false, ErrVillageHasProjects
	}
	return removed, err
}

func validateCoordinates(lat, lng float64) error {
	if lat < -90 || lat > 90 {
		return ErrInvalidLatitude
	}
	if lng < -180 || lng > 180 {
		return ErrInvalidLongitude
	}
	return nil
}
