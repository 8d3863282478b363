package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Barber is the read-only catalog entry the booking flow picks from.
type Barber struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name        string   `gorm:"size:100;not null" json:"name"`
	Specialties []string `gorm:"serializer:json" json:"specialties"`
	Rating      float64  `json:"rating"`
	ImageURL    string   `gorm:"size:255" json:"image_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Barber) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
