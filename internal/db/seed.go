package db

import (
	"log"

	"gorm.io/gorm"

	"github.com/owiro17/smarttrimz/internal/models"
)

// SeedBarbers fills an empty catalog so a fresh environment has
// someone to book with. No-op once any barber exists.
func SeedBarbers(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Barber{}).Count(&count).Error; err != nil {
		log.Println("seed: count barbers failed:", err)
		return
	}
	if count > 0 {
		return
	}

	barbers := []models.Barber{
		{
			Name:        "Mike Johnson",
			Specialties: []string{"Classic Haircut", "Fade"},
			Rating:      4.8,
		},
		{
			Name:        "Alex Smith",
			Specialties: []string{"Haircut", "Beard Trim"},
			Rating:      4.6,
		},
		{
			Name:        "Chris Brown",
			Specialties: []string{"Beard Styling", "Hot Towel Shave"},
			Rating:      4.9,
		},
	}

	if err := db.Create(&barbers).Error; err != nil {
		log.Println("seed: create barbers failed:", err)
		return
	}
	log.Printf("seed: created %d barbers", len(barbers))
}
