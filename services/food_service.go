package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Lullucoder/DietSphere/models"

	"gorm.io/gorm"
)

type FoodService struct{ db *gorm.DB }

func NewFoodService(db *gorm.DB) *FoodService { return &FoodService{db: db} }

// List returns active catalog foods, optionally filtered by a name query
// and/or category.
func (s *FoodService) List(ctx context.Context, query, category string) ([]models.FoodItem, error) {
	q := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Preload("Profile").
		Order("name ASC")
	if query != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(query)+"%")
	}
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var foods []models.FoodItem
	err := q.Find(&foods).Error
	return foods, err
}

// Get returns one active food with its profile.
func (s *FoodService) Get(ctx context.Context, id uint) (*models.FoodItem, error) {
	var food models.FoodItem
	err := s.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		Preload("Profile").
		First(&food).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrFoodNotFound
	}
	if err != nil {
		return nil, err
	}
	return &food, nil
}

// GetProfile resolves a food's nutrient profile. This is the engine's
// FoodCatalog lookup; a missing or deactivated food maps to ErrFoodNotFound.
func (s *FoodService) GetProfile(ctx context.Context, foodID uint) (*models.NutrientProfile, error) {
	var profile models.NutrientProfile
	err := s.db.WithContext(ctx).
		Joins("JOIN food_items ON food_items.id = nutrient_profiles.food_item_id").
		Where("nutrient_profiles.food_item_id = ? AND food_items.is_active = ? AND food_items.deleted_at IS NULL", foodID, true).
		First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrFoodNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// SuggestFoods returns the names of active foods richest in the nutrient
// per calorie, best first. Used to back recommendations with live catalog
// data instead of a hardcoded table.
func (s *FoodService) SuggestFoods(ctx context.Context, n models.Nutrient, limit int) ([]string, error) {
	col, ok := profileColumn(n)
	if !ok {
		return nil, fmt.Errorf("untracked nutrient %q", n)
	}
	var names []string
	err := s.db.WithContext(ctx).
		Model(&models.NutrientProfile{}).
		Joins("JOIN food_items ON food_items.id = nutrient_profiles.food_item_id").
		Where("food_items.is_active = ? AND food_items.deleted_at IS NULL AND nutrient_profiles."+col+" > 0", true).
		Order(fmt.Sprintf("nutrient_profiles.%s / (CASE WHEN nutrient_profiles.calories > 0 THEN nutrient_profiles.calories ELSE 1 END) DESC", col)).
		Limit(limit).
		Pluck("food_items.name", &names).Error
	return names, err
}

// profileColumn maps a nutrient key to its nutrient_profiles column. Keys
// never come from user input, but the whitelist keeps column names out of
// reach of the query string regardless.
func profileColumn(n models.Nutrient) (string, bool) {
	switch n {
	case models.NutrientCalories:
		return "calories", true
	case models.NutrientProtein:
		return "protein", true
	case models.NutrientCarbohydrates:
		return "carbs", true
	case models.NutrientFat:
		return "fat", true
	case models.NutrientFiber:
		return "fiber", true
	case models.NutrientVitaminA:
		return "vitamin_a", true
	case models.NutrientVitaminC:
		return "vitamin_c", true
	case models.NutrientVitaminD:
		return "vitamin_d", true
	case models.NutrientVitaminE:
		return "vitamin_e", true
	case models.NutrientVitaminK:
		return "vitamin_k", true
	case models.NutrientVitaminB12:
		return "vitamin_b12", true
	case models.NutrientCalcium:
		return "calcium", true
	case models.NutrientIron:
		return "iron", true
	case models.NutrientMagnesium:
		return "magnesium", true
	case models.NutrientZinc:
		return "zinc", true
	case models.NutrientPotassium:
		return "potassium", true
	}
	return "", false
}
