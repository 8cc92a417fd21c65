package config

import (
	"fmt"
	"log"
	"os"

	"github.com/Lullucoder/DietSphere/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found, relying on environment")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.FoodItem{},
		&models.NutrientProfile{},
		&models.DietaryEntry{},
		&models.NutritionGoal{},
		&models.ChatMessage{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	if err := SeedFoods(DB); err != nil {
		log.Fatalf("seeding food catalog failed: %v", err)
	}
}

// SeedFoods populates the starter food catalog when the table is empty.
func SeedFoods(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.FoodItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	type seed struct {
		name, desc, category string
		profile              models.NutrientProfile
	}
	seeds := []seed{
		{"Apple", "Fresh medium apple", "FRUIT",
			models.NutrientProfile{Calories: 95, Protein: 0.5, Carbs: 25, Fat: 0.3, Fiber: 4.4, VitaminC: 8.4, VitaminK: 4, Potassium: 195}},
		{"Banana", "Medium banana", "FRUIT",
			models.NutrientProfile{Calories: 105, Protein: 1.3, Carbs: 27, Fat: 0.4, Fiber: 3.1, VitaminC: 10.3, Magnesium: 32, Potassium: 422}},
		{"Chicken Breast", "Grilled skinless chicken breast (100g)", "PROTEIN",
			models.NutrientProfile{Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6, VitaminB12: 0.3, Iron: 1, Magnesium: 29, Zinc: 1, Potassium: 256}},
		{"Brown Rice", "Cooked brown rice (1 cup)", "GRAIN",
			models.NutrientProfile{Calories: 216, Protein: 5, Carbs: 45, Fat: 1.8, Fiber: 3.5, Iron: 0.8, Magnesium: 84, Zinc: 1.2, Potassium: 84}},
		{"Broccoli", "Steamed broccoli (1 cup)", "VEGETABLE",
			models.NutrientProfile{Calories: 55, Protein: 3.7, Carbs: 11, Fat: 0.6, Fiber: 5.1, VitaminA: 120, VitaminC: 101, VitaminK: 220, Calcium: 62, Iron: 1, Potassium: 457}},
		{"Milk", "Whole milk (1 cup)", "DAIRY",
			models.NutrientProfile{Calories: 149, Protein: 7.7, Carbs: 11.7, Fat: 7.9, VitaminA: 112, VitaminD: 3.2, VitaminB12: 1.1, Calcium: 276, Magnesium: 24, Zinc: 0.9, Potassium: 322}},
		{"Egg", "Large boiled egg", "PROTEIN",
			models.NutrientProfile{Calories: 78, Protein: 6.3, Carbs: 0.6, Fat: 5.3, VitaminA: 75, VitaminD: 1.1, VitaminB12: 0.6, Iron: 0.6, Zinc: 0.5}},
		{"Salmon", "Grilled salmon fillet (100g)", "PROTEIN",
			models.NutrientProfile{Calories: 206, Protein: 22, Carbs: 0, Fat: 13, VitaminD: 13.1, VitaminE: 1.1, VitaminB12: 2.8, Magnesium: 27, Potassium: 384}},
		{"Spinach", "Raw spinach (1 cup)", "VEGETABLE",
			models.NutrientProfile{Calories: 7, Protein: 0.9, Carbs: 1.1, Fat: 0.1, Fiber: 0.7, VitaminA: 141, VitaminC: 8.4, VitaminK: 145, Calcium: 30, Iron: 0.8, Magnesium: 24, Potassium: 167}},
		{"Almonds", "Raw almonds (28g)", "NUT_SEED",
			models.NutrientProfile{Calories: 164, Protein: 6, Carbs: 6, Fat: 14, Fiber: 3.5, VitaminE: 7.3, Calcium: 76, Iron: 1, Magnesium: 76, Zinc: 0.9, Potassium: 208}},
	}

	for _, s := range seeds {
		food := models.FoodItem{
			Name:        s.name,
			Description: s.desc,
			Category:    s.category,
			IsActive:    true,
			Profile:     s.profile,
		}
		food.Profile.ServingSize = 100
		if err := db.Create(&food).Error; err != nil {
			return err
		}
	}
	return nil
}
