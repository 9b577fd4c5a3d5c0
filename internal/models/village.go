package models

import (
	"time"

	"github.com/google/uuid"
)

// Village is the root geographic entity. Coordinates are stored with the
// same precision the GIS frontend expects.
type Village struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name       string    `gorm:"type:text;not null;index" json:"name"`
	District   string    `gorm:"type:text;not null" json:"district"`
	Block      string    `gorm:"type:text;not null" json:"block"`
	Latitude   float64   `gorm:"type:decimal(10,8);not null" json:"latitude"`
	Longitude  float64   `gorm:"type:decimal(11,8);not null" json:"longitude"`
	Population int       `gorm:"default:0" json:"population"`
	CreatedAt  time.Time `json:"created_at"`
}
