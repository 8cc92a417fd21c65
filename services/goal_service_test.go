package services

import (
	"context"
	"testing"
	"time"

	"github.com/Lullucoder/DietSphere/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreateSeedsDefaults(t *testing.T) {
	db := setupTestDB(t)
	cfg := models.DefaultNutrientConfig()
	svc := NewGoalService(db, cfg)

	goal, err := svc.GetOrCreate(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2000.0, goal.Calories)
	assert.Equal(t, 50.0, goal.Protein)
	assert.Equal(t, 1000.0, goal.Calcium)

	// Second access returns the same row, not a duplicate.
	again, err := svc.GetOrCreate(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, goal.ID, again.ID)

	var count int64
	require.NoError(t, db.Model(&models.NutritionGoal{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpdateGoalsPartial(t *testing.T) {
	db := setupTestDB(t)
	cfg := models.DefaultNutrientConfig()
	svc := NewGoalService(db, cfg)

	protein := 120.0
	goal, err := svc.UpdateGoals(context.Background(), 1, UpdateGoalsRequest{Protein: &protein})
	require.NoError(t, err)

	assert.Equal(t, 120.0, goal.Protein)
	assert.Equal(t, 2000.0, goal.Calories, "untouched fields keep defaults")

	negative := -5.0
	_, err = svc.UpdateGoals(context.Background(), 1, UpdateGoalsRequest{Iron: &negative})
	assert.Error(t, err)

	// Zero is allowed: it excludes the nutrient from scoring.
	zero := 0.0
	goal, err = svc.UpdateGoals(context.Background(), 1, UpdateGoalsRequest{Zinc: &zero})
	require.NoError(t, err)
	assert.Zero(t, goal.Zinc)
}

func TestGetGoalsMapCoversAllNutrients(t *testing.T) {
	db := setupTestDB(t)
	cfg := models.DefaultNutrientConfig()
	svc := NewGoalService(db, cfg)

	targets, err := svc.GetGoals(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, targets, len(cfg.Defs))
	assert.Equal(t, 2.4, targets[models.NutrientVitaminB12])
}

func TestProgress(t *testing.T) {
	db := setupTestDB(t)
	cfg := models.DefaultNutrientConfig()
	svc := NewGoalService(db, cfg)
	entrySvc := NewEntryService(db)
	food := createFood(t, db, "Chicken Breast", models.NutrientProfile{Calories: 165, Protein: 31})

	_, err := entrySvc.LogEntry(context.Background(), 1, LogEntryRequest{
		FoodItemID: food.ID, MealType: models.MealLunch, Portion: 2,
	})
	require.NoError(t, err)

	// Yesterday's entry must not count toward today's progress.
	yesterday := time.Now().AddDate(0, 0, -1)
	_, err = entrySvc.LogEntry(context.Background(), 1, LogEntryRequest{
		FoodItemID: food.ID, MealType: models.MealDinner, ConsumedAt: &yesterday,
	})
	require.NoError(t, err)

	progress, err := svc.Progress(context.Background(), 1)
	require.NoError(t, err)

	p := progress[string(models.NutrientProtein)]
	assert.Equal(t, 62.0, p.Consumed)
	assert.Equal(t, 50.0, p.Goal)
	assert.Equal(t, 124.0, p.Percent)

	cal := progress[string(models.NutrientCalories)]
	assert.Equal(t, 330.0, cal.Consumed)
}
