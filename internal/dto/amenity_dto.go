package dto

// UpsertAmenityRequest updates the amenity row keyed on
// (village_id from the path, amenity_type). Missing counts keep their
// current value on update and default to zero on insert.
type UpsertAmenityRequest struct {
	AmenityType string `json:"amenity_type"`
	Available   *int   `json:"available"`
	Required    *int   `json:"required"`
}
