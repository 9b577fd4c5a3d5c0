package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/village360/village360-backend/internal/dto"
	"github.com/village360/village360-backend/internal/models"
	"github.com/village360/village360-backend/internal/store"
)

var (
	ErrAmenityTypeRequired = errors.New("amenity_type is required")
	ErrInvalidCount        = errors.New("available and required must not be negative")
)

type AmenityService struct {
	store store.Store
}

func NewAmenityService(st store.Store) *AmenityService {
	return &AmenityService{store: st}
}

func (s *AmenityService) ListByVillage(villageID uuid.UUID) ([]models.Amenity, error) {
	if _, err := s.store.GetVillage(villageID); err != nil {
		return nil, err
	}
	return s.store.ListAmenitiesByVillage(villageID)
}

// Upsert updates the amenity row keyed on (villageID, amenity_type),
// creating it when absent.
func (s *AmenityService) Upsert(villageID uuid.UUID, req *dto.UpsertAmenityRequest) (*models.Amenity, error) {
	if req.AmenityType == "" {
		return nil, ErrAmenityTypeRequired
	}
	if (req.Available != nil && *req.Available < 0) || (req.Required != nil && *req.Required < 0) {
		return nil, ErrInvalidCount
	}
	if _, err := s.store.GetVillage(villageID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrVillageNotFound
		}
		return nil, err
	}
	return s.store.UpsertAmenity(villageID, req)
}
