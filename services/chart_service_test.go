package services

import (
	"context"
	"testing"
	"time"

	"github.com/Lullucoder/DietSphere/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetChartData(t *testing.T) {
	db := setupTestDB(t)
	cfg := models.DefaultNutrientConfig()
	svc := NewChartService(db, cfg)
	entrySvc := NewEntryService(db)

	chicken := createFood(t, db, "Chicken Breast", models.NutrientProfile{Calories: 165, Protein: 31, Fat: 3.6})
	rice := createFood(t, db, "Brown Rice", models.NutrientProfile{Calories: 216, Protein: 5, Carbs: 45, Fat: 1.8})

	_, err := entrySvc.LogEntry(context.Background(), 1, LogEntryRequest{
		FoodItemID: chicken.ID, MealType: models.MealLunch,
	})
	require.NoError(t, err)
	_, err = entrySvc.LogEntry(context.Background(), 1, LogEntryRequest{
		FoodItemID: rice.ID, MealType: models.MealLunch,
	})
	require.NoError(t, err)
	yesterday := time.Now().AddDate(0, 0, -1)
	_, err = entrySvc.LogEntry(context.Background(), 1, LogEntryRequest{
		FoodItemID: chicken.ID, MealType: models.MealDinner, ConsumedAt: &yesterday,
	})
	require.NoError(t, err)

	data, err := svc.GetChartData(context.Background(), 1, 7)
	require.NoError(t, err)

	require.Len(t, data.DailyTrend, 7)
	today := data.DailyTrend[6]
	assert.Equal(t, 2, today.Meals)
	assert.Equal(t, 381.0, today.Calories)

	// Macro split covers the whole window (3 entries).
	pro := 31.0 + 5 + 31
	carb := 45.0
	fat := 3.6 + 1.8 + 3.6
	total := pro + carb + fat
	assert.InDelta(t, pro/total*100, data.MacroSplit.ProteinPct, 0.11)

	require.Len(t, data.MealTypeBreakdown, 2)
	assert.Equal(t, models.MealLunch, data.MealTypeBreakdown[0].MealType, "display order is fixed")

	require.NotEmpty(t, data.TopFoods)
	assert.Equal(t, "Chicken Breast", data.TopFoods[0].Name)
	assert.Equal(t, 2, data.TopFoods[0].Count)

	for _, p := range data.NutrientRadar {
		assert.LessOrEqual(t, p.Percent, 150.0)
		assert.GreaterOrEqual(t, p.Percent, 0.0)
	}
}

func TestGetChartDataEmpty(t *testing.T) {
	db := setupTestDB(t)
	svc := NewChartService(db, models.DefaultNutrientConfig())

	data, err := svc.GetChartData(context.Background(), 1, 7)
	require.NoError(t, err)

	require.Len(t, data.DailyTrend, 7)
	for _, d := range data.DailyTrend {
		assert.Zero(t, d.Meals)
		assert.Zero(t, d.Calories)
	}
	assert.Zero(t, data.MacroSplit.ProteinPct)
	assert.Empty(t, data.MealTypeBreakdown)
	assert.Empty(t, data.TopFoods)
}
