package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	FullName string

	// Health data shown on the profile page
	HeightCm            float64
	WeightKg            float64
	ActivityLevel       string `gorm:"size:20"` // SEDENTARY|LIGHT|MODERATE|ACTIVE|VERY_ACTIVE
	DietaryRestrictions string // comma-separated
	Allergies           string // comma-separated
}
