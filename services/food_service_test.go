package services

import (
	"context"
	"testing"

	"github.com/Lullucoder/DietSphere/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFoodList(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFoodService(db)
	createFood(t, db, "Apple", models.NutrientProfile{Calories: 95})
	createFood(t, db, "Almonds", models.NutrientProfile{Calories: 164})
	inactive := createFood(t, db, "Banana", models.NutrientProfile{Calories: 105})
	require.NoError(t, db.Model(&inactive).Update("is_active", false).Error)

	foods, err := svc.List(context.Background(), "", "")
	require.NoError(t, err)
	require.Len(t, foods, 2, "inactive foods hidden")

	foods, err = svc.List(context.Background(), "alm", "")
	require.NoError(t, err)
	require.Len(t, foods, 1)
	assert.Equal(t, "Almonds", foods[0].Name)
}

func TestGetProfileNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFoodService(db)
	food := createFood(t, db, "Apple", models.NutrientProfile{Calories: 95, Fiber: 4.4})

	profile, err := svc.GetProfile(context.Background(), food.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.4, profile.Fiber)

	_, err = svc.GetProfile(context.Background(), 999)
	assert.ErrorIs(t, err, ErrFoodNotFound)

	// Soft-deleted foods resolve as not found, so logged entries referencing
	// them are skipped by the analysis instead of failing it.
	require.NoError(t, db.Delete(&food).Error)
	_, err = svc.GetProfile(context.Background(), food.ID)
	assert.ErrorIs(t, err, ErrFoodNotFound)
}

func TestSuggestFoodsRichestPerCalorie(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFoodService(db)
	// Spinach: 30mg calcium / 7 kcal beats milk's 276 / 149.
	createFood(t, db, "Milk", models.NutrientProfile{Calories: 149, Calcium: 276})
	createFood(t, db, "Spinach", models.NutrientProfile{Calories: 7, Calcium: 30})
	createFood(t, db, "Chicken Breast", models.NutrientProfile{Calories: 165, Calcium: 0})

	names, err := svc.SuggestFoods(context.Background(), models.NutrientCalcium, 4)
	require.NoError(t, err)
	require.Equal(t, []string{"Spinach", "Milk"}, names, "zero-calcium foods excluded")

	names, err = svc.SuggestFoods(context.Background(), models.NutrientCalcium, 1)
	require.NoError(t, err)
	require.Equal(t, []string{"Spinach"}, names)
}

func TestSuggestFoodsEmptyCatalog(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFoodService(db)

	names, err := svc.SuggestFoods(context.Background(), models.NutrientIron, 4)
	require.NoError(t, err)
	assert.Empty(t, names)
}
