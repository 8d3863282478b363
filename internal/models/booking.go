package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Booking struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	UserID string `gorm:"size:36;index;not null" json:"user_id"`

	BarberID string `gorm:"size:36" json:"barber_id"`
	// Denormalized copy of the barber's name at booking time, so the
	// card keeps its label even if the catalog entry changes later.
	BarberName string `gorm:"size:100" json:"barber_name"`

	Service string `gorm:"size:100" json:"service"`

	// Nullable: a booking without a date/time can never be upcoming.
	DateTime *time.Time `json:"date_time"`

	Status string `gorm:"size:20;default:'upcoming'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
