package dto

import "github.com/village360/village360-backend/internal/models"

type CreateVillageRequest struct {
	Name       string   `json:"name"`
	District   string   `json:"district"`
	Block      string   `json:"block"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
	Population int      `json:"population"`
}

// UpdateVillageRequest is a partial patch. Nil fields are left untouched.
type UpdateVillageRequest struct {
	Name       *string  `json:"name"`
	District   *string  `json:"district"`
	Block      *string  `json:"block"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
	Population *int     `json:"population"`
}

// VillageWithAmenities is the aggregate read for GET /villages/:id.
// Amenities is always a list, never null.
type VillageWithAmenities struct {
	models.Village
	Amenities []models.Amenity `json:"amenities"`
}
