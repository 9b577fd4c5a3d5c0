package models

import (
	"time"

	"github.com/google/uuid"
)

// Amenity tracks availability of one amenity type in one village.
// (village_id, amenity_type) is the natural key; updates are upserts.
type Amenity struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	VillageID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_amenities_village_type" json:"village_id"`
	AmenityType string    `gorm:"type:text;not null;uniqueIndex:idx_amenities_village_type" json:"amenity_type"`
	Available   int       `gorm:"default:0;check:available >= 0" json:"available"`
	Required    int       `gorm:"default:0;check:required >= 0" json:"required"`
	UpdatedAt   time.Time `json:"updated_at"`

	Village *Village `gorm:"foreignKey:VillageID" json:"-"`
}
