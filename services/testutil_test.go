package services

import (
	"testing"

	"github.com/Lullucoder/DietSphere/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an in-memory sqlite database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.FoodItem{},
		&models.NutrientProfile{},
		&models.DietaryEntry{},
		&models.NutritionGoal{},
		&models.ChatMessage{},
	))
	return db
}

// createFood inserts one active catalog food with a profile.
func createFood(t *testing.T, db *gorm.DB, name string, profile models.NutrientProfile) models.FoodItem {
	t.Helper()
	food := models.FoodItem{Name: name, Category: "OTHER", IsActive: true, Profile: profile}
	require.NoError(t, db.Create(&food).Error)
	return food
}
