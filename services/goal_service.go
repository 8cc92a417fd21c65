package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Lullucoder/DietSphere/models"

	"gorm.io/gorm"
)

type GoalService struct {
	db  *gorm.DB
	cfg models.NutrientConfig
}

func NewGoalService(db *gorm.DB, cfg models.NutrientConfig) *GoalService {
	return &GoalService{db: db, cfg: cfg}
}

// GetOrCreate returns the user's goal row, creating it with system defaults
// on first access.
func (s *GoalService) GetOrCreate(ctx context.Context, userID uint) (*models.NutritionGoal, error) {
	var goal models.NutritionGoal
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		goal = models.DefaultGoal(userID, s.cfg)
		if err := s.db.WithContext(ctx).Create(&goal).Error; err != nil {
			return nil, err
		}
		return &goal, nil
	}
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// GetGoals flattens the stored row to a nutrient→target map. This is the
// engine's GoalStore.
func (s *GoalService) GetGoals(ctx context.Context, userID uint) (map[models.Nutrient]float64, error) {
	goal, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	return goal.TargetMap(s.cfg), nil
}

// UpdateGoalsRequest carries a partial update; nil fields keep the stored
// value. Zero is accepted on purpose: a zeroed target excludes that
// nutrient from scoring without deleting the row.
type UpdateGoalsRequest struct {
	Calories   *float64 `json:"calories"`
	Protein    *float64 `json:"protein"`
	Carbs      *float64 `json:"carbs"`
	Fat        *float64 `json:"fat"`
	Fiber      *float64 `json:"fiber"`
	VitaminA   *float64 `json:"vitaminA"`
	VitaminC   *float64 `json:"vitaminC"`
	VitaminD   *float64 `json:"vitaminD"`
	VitaminE   *float64 `json:"vitaminE"`
	VitaminK   *float64 `json:"vitaminK"`
	VitaminB12 *float64 `json:"vitaminB12"`
	Calcium    *float64 `json:"calcium"`
	Iron       *float64 `json:"iron"`
	Magnesium  *float64 `json:"magnesium"`
	Zinc       *float64 `json:"zinc"`
	Potassium  *float64 `json:"potassium"`
}

func (s *GoalService) UpdateGoals(ctx context.Context, userID uint, req UpdateGoalsRequest) (*models.NutritionGoal, error) {
	goal, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	apply := func(dst *float64, src *float64) error {
		if src == nil {
			return nil
		}
		if *src < 0 {
			return fmt.Errorf("goal values must not be negative")
		}
		*dst = *src
		return nil
	}
	for _, p := range []struct {
		dst *float64
		src *float64
	}{
		{&goal.Calories, req.Calories},
		{&goal.Protein, req.Protein},
		{&goal.Carbs, req.Carbs},
		{&goal.Fat, req.Fat},
		{&goal.Fiber, req.Fiber},
		{&goal.VitaminA, req.VitaminA},
		{&goal.VitaminC, req.VitaminC},
		{&goal.VitaminD, req.VitaminD},
		{&goal.VitaminE, req.VitaminE},
		{&goal.VitaminK, req.VitaminK},
		{&goal.VitaminB12, req.VitaminB12},
		{&goal.Calcium, req.Calcium},
		{&goal.Iron, req.Iron},
		{&goal.Magnesium, req.Magnesium},
		{&goal.Zinc, req.Zinc},
		{&goal.Potassium, req.Potassium},
	} {
		if err := apply(p.dst, p.src); err != nil {
			return nil, err
		}
	}

	if err := s.db.WithContext(ctx).Save(goal).Error; err != nil {
		return nil, err
	}
	return goal, nil
}

// NutrientProgress is one row of the dashboard's today view.
type NutrientProgress struct {
	Consumed float64 `json:"consumed"`
	Goal     float64 `json:"goal"`
	Percent  float64 `json:"percent"`
	Unit     string  `json:"unit"`
}

// Progress sums today's logged intake against the user's goals.
func (s *GoalService) Progress(ctx context.Context, userID uint) (map[string]NutrientProgress, error) {
	goal, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var entries []models.DietaryEntry
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND consumed_at BETWEEN ? AND ?", userID, dayStart(now), now).
		Preload("FoodItem.Profile").
		Find(&entries).Error; err != nil {
		return nil, err
	}

	totals := map[models.Nutrient]float64{}
	for _, e := range entries {
		profile := e.FoodItem.Profile
		if profile.ID == 0 {
			continue
		}
		portion := e.Portion
		if portion <= 0 {
			portion = 1
		}
		for _, def := range s.cfg.Defs {
			totals[def.Key] += profile.Amount(def.Key) * portion
		}
	}

	out := make(map[string]NutrientProgress, len(s.cfg.Defs))
	for _, def := range s.cfg.Defs {
		target := goal.Target(def.Key)
		out[string(def.Key)] = NutrientProgress{
			Consumed: round2(totals[def.Key]),
			Goal:     target,
			Percent:  pct(totals[def.Key], target),
			Unit:     def.Unit,
		}
	}
	return out, nil
}

func pct(actual, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	return round2((actual / goal) * 100.0)
}
