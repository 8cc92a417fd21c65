package services

import (
	"context"
	"testing"
	"time"

	"github.com/Lullucoder/DietSphere/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogEntry(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEntryService(db)
	food := createFood(t, db, "Apple", models.NutrientProfile{Calories: 95, Fiber: 4.4})

	entry, err := svc.LogEntry(context.Background(), 1, LogEntryRequest{
		FoodItemID: food.ID,
		MealType:   models.MealBreakfast,
	})
	require.NoError(t, err)

	assert.Equal(t, 1.0, entry.Portion, "portion defaults to 1.0")
	assert.Equal(t, food.ID, entry.FoodItemID)
	assert.WithinDuration(t, time.Now(), entry.ConsumedAt, time.Minute)
}

func TestLogEntryValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEntryService(db)
	food := createFood(t, db, "Apple", models.NutrientProfile{Calories: 95})

	_, err := svc.LogEntry(context.Background(), 1, LogEntryRequest{
		FoodItemID: food.ID,
		MealType:   "BRUNCH",
	})
	assert.Error(t, err, "unknown meal type rejected")

	_, err = svc.LogEntry(context.Background(), 1, LogEntryRequest{
		FoodItemID: food.ID,
		MealType:   models.MealLunch,
		Portion:    -1,
	})
	assert.Error(t, err, "negative portion rejected")

	_, err = svc.LogEntry(context.Background(), 1, LogEntryRequest{
		FoodItemID: 999,
		MealType:   models.MealLunch,
	})
	assert.ErrorIs(t, err, ErrFoodNotFound)
}

func TestListForUserInRange(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEntryService(db)
	food := createFood(t, db, "Apple", models.NutrientProfile{Calories: 95})

	now := time.Now()
	inRange := now.AddDate(0, 0, -2)
	outOfRange := now.AddDate(0, 0, -10)
	for _, at := range []time.Time{inRange, outOfRange} {
		at := at
		_, err := svc.LogEntry(context.Background(), 1, LogEntryRequest{
			FoodItemID: food.ID, MealType: models.MealDinner, ConsumedAt: &at,
		})
		require.NoError(t, err)
	}
	// another user's entry must not leak
	otherAt := inRange
	_, err := svc.LogEntry(context.Background(), 2, LogEntryRequest{
		FoodItemID: food.ID, MealType: models.MealDinner, ConsumedAt: &otherAt,
	})
	require.NoError(t, err)

	entries, err := svc.ListForUserInRange(context.Background(), 1, now.AddDate(0, 0, -6), now)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Apple", entries[0].FoodItem.Name)
}

func TestDeleteEntryOwnership(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEntryService(db)
	food := createFood(t, db, "Apple", models.NutrientProfile{Calories: 95})

	entry, err := svc.LogEntry(context.Background(), 1, LogEntryRequest{
		FoodItemID: food.ID, MealType: models.MealSnack,
	})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(context.Background(), 2, entry.ID), ErrEntryNotFound)
	require.NoError(t, svc.Delete(context.Background(), 1, entry.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), 1, entry.ID), ErrEntryNotFound)
}
