package models

import (
	"time"

	"gorm.io/gorm"
)

// Meal types a user can log an entry under.
const (
	MealBreakfast = "BREAKFAST"
	MealLunch     = "LUNCH"
	MealDinner    = "DINNER"
	MealSnack     = "SNACK"
)

// ValidMealType reports whether t is one of the known meal types.
func ValidMealType(t string) bool {
	switch t {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

// DietaryEntry is one logged consumption event. Immutable once created
// except for deletion.
type DietaryEntry struct {
	gorm.Model
	UserID     uint `gorm:"index;not null"`
	FoodItemID uint `gorm:"not null"`
	FoodItem   FoodItem

	Portion    float64   `gorm:"default:1"` // multiplier on the food's standard portion
	MealType   string    `gorm:"size:10"`
	ConsumedAt time.Time `gorm:"index;not null"`
}
