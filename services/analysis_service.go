package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Lullucoder/DietSphere/models"

	"golang.org/x/sync/errgroup"
)

// ErrFoodNotFound is returned by a FoodCatalog when an entry references a
// food that is no longer in the catalog.
var ErrFoodNotFound = errors.New("food not found")

// Collaborators the engine reads from. The engine itself holds no state:
// every report is recomputed fresh from (entries, profiles, goals, period).

type EntrySource interface {
	ListForUserInRange(ctx context.Context, userID uint, start, end time.Time) ([]models.DietaryEntry, error)
}

type FoodCatalog interface {
	GetProfile(ctx context.Context, foodID uint) (*models.NutrientProfile, error)
	// SuggestFoods returns catalog foods richest in the nutrient per calorie.
	SuggestFoods(ctx context.Context, n models.Nutrient, limit int) ([]string, error)
}

type GoalStore interface {
	// GetGoals returns the user's daily targets, falling back to system
	// defaults when the user has never set goals.
	GetGoals(ctx context.Context, userID uint) (map[models.Nutrient]float64, error)
}

// ---------- Report types ----------

// Severity buckets for percent-of-target.
const (
	LevelDeficient  = "DEFICIENT"  // < 50%
	LevelLow        = "LOW"        // 50–79%
	LevelAdequate   = "ADEQUATE"   // 80–99%
	LevelSufficient = "SUFFICIENT" // >= 100%
)

// Recommendation priorities. PriorityLow is defined but currently unused:
// only LOW and DEFICIENT nutrients produce recommendations.
const (
	PriorityHigh   = "HIGH"
	PriorityMedium = "MEDIUM"
	PriorityLow    = "LOW"
)

type NutrientDetail struct {
	Name        string  `json:"name"`
	Consumed    float64 `json:"consumed"`
	Recommended float64 `json:"recommended"`
	Percentage  float64 `json:"percentage"`
	Unit        string  `json:"unit"`
}

type Deficiency struct {
	NutrientName      string  `json:"nutrientName"`
	CurrentIntake     float64 `json:"currentIntake"`
	RecommendedIntake float64 `json:"recommendedIntake"`
	PercentOfTarget   float64 `json:"percentOfTarget"`
	Unit              string  `json:"unit"`
	Level             string  `json:"level"`
}

type Recommendation struct {
	Nutrient string   `json:"nutrient"`
	Message  string   `json:"message"`
	Priority string   `json:"priority"`
	Foods    []string `json:"foods"`
}

type AnalysisReport struct {
	Period          string           `json:"period"`
	TotalCalories   float64          `json:"totalCalories"`
	MealCount       int              `json:"mealCount"`
	SkippedEntries  int              `json:"skippedEntries"`
	OverallScore    float64          `json:"overallScore"`
	Macronutrients  []NutrientDetail `json:"macronutrients"`
	Micronutrients  []NutrientDetail `json:"micronutrients"`
	Deficiencies    []Deficiency     `json:"deficiencies"`
	Recommendations []Recommendation `json:"recommendations"`
}

// ---------- Service ----------

type AnalysisService struct {
	entries EntrySource
	catalog FoodCatalog
	goals   GoalStore
	cfg     models.NutrientConfig
	now     func() time.Time
}

func NewAnalysisService(entries EntrySource, catalog FoodCatalog, goals GoalStore, cfg models.NutrientConfig) *AnalysisService {
	return &AnalysisService{
		entries: entries,
		catalog: catalog,
		goals:   goals,
		cfg:     cfg,
		now:     time.Now,
	}
}

// GetAnalysis builds the full nutrient report for (user, period).
//
// Zero resolvable entries yields a well-formed empty report, never an error:
// the UI distinguishes "no data yet" from "request failed".
func (s *AnalysisService) GetAnalysis(ctx context.Context, userID uint, period Period) (*AnalysisReport, error) {
	rng, err := ResolvePeriod(period, s.now())
	if err != nil {
		return nil, err
	}

	// Entries and goals are independent reads; fetch them concurrently.
	var (
		entries []models.DietaryEntry
		targets map[models.Nutrient]float64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		entries, err = s.entries.ListForUserInRange(gctx, userID, rng.Start, rng.End)
		return err
	})
	g.Go(func() error {
		var err error
		targets, err = s.goals.GetGoals(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &AnalysisReport{
		Period:          string(period),
		Macronutrients:  []NutrientDetail{},
		Micronutrients:  []NutrientDetail{},
		Deficiencies:    []Deficiency{},
		Recommendations: []Recommendation{},
	}

	// ---------- Aggregation ----------

	totals := make(map[models.Nutrient]float64, len(s.cfg.Defs))
	var rawCalories float64
	for _, e := range entries {
		profile, err := s.catalog.GetProfile(ctx, e.FoodItemID)
		if errors.Is(err, ErrFoodNotFound) {
			// Entry references a deleted food: skip its contribution
			// rather than failing the whole report.
			report.SkippedEntries++
			continue
		}
		if err != nil {
			return nil, err
		}

		portion := e.Portion
		if portion <= 0 {
			portion = 1
		}
		for _, def := range s.cfg.Defs {
			totals[def.Key] += profile.Amount(def.Key) * portion
		}
		rawCalories += profile.Calories * portion
		report.MealCount++
	}

	if report.MealCount == 0 {
		return report, nil
	}
	report.TotalCalories = round2(rawCalories)

	// ---------- Classification, scoring, recommendations ----------

	days := float64(rng.Days)
	var scoreSum float64
	var scored int
	for _, def := range s.cfg.Defs {
		if def.Key == models.NutrientCalories {
			// Calories are reported as a summary total, not classified.
			continue
		}
		consumed := totals[def.Key] / days

		target, ok := targets[def.Key]
		if !ok {
			target = def.DailyTarget
		}

		pct := 0.0
		validGoal := target > 0
		if validGoal {
			pct = consumed / target * 100
			if pct < 0 {
				pct = 0
			}
		}

		detail := NutrientDetail{
			Name:        def.DisplayName,
			Consumed:    round2(consumed),
			Recommended: target,
			Percentage:  round2(pct), // uncapped for display
			Unit:        def.Unit,
		}
		if def.Macro {
			report.Macronutrients = append(report.Macronutrients, detail)
		} else {
			report.Micronutrients = append(report.Micronutrients, detail)
		}

		// Non-positive targets are excluded from scoring, deficiencies and
		// recommendations; the nutrient still shows in the breakdown.
		if !validGoal {
			continue
		}

		scoreSum += math.Min(pct, 100)
		scored++

		level := severityFor(pct)
		if level != LevelDeficient && level != LevelLow {
			continue
		}
		report.Deficiencies = append(report.Deficiencies, Deficiency{
			NutrientName:      def.DisplayName,
			CurrentIntake:     round2(consumed),
			RecommendedIntake: target,
			PercentOfTarget:   round2(pct),
			Unit:              def.Unit,
			Level:             level,
		})
		report.Recommendations = append(report.Recommendations, s.recommend(ctx, def, pct, level))
	}

	if scored > 0 {
		report.OverallScore = round2(scoreSum / float64(scored))
	}
	return report, nil
}

// severityFor maps percent-of-target to a severity bucket. First match
// wins, in this order.
func severityFor(pct float64) string {
	switch {
	case pct >= 100:
		return LevelSufficient
	case pct >= 80:
		return LevelAdequate
	case pct >= 50:
		return LevelLow
	default:
		return LevelDeficient
	}
}

func (s *AnalysisService) recommend(ctx context.Context, def models.NutrientDef, pct float64, level string) Recommendation {
	rec := Recommendation{Nutrient: def.DisplayName}
	if level == LevelDeficient {
		rec.Priority = PriorityHigh
		rec.Message = fmt.Sprintf("Your %s intake is very low (%.0f%% of daily goal). Consider adding more %s-rich foods.",
			def.DisplayName, pct, strings.ToLower(def.DisplayName))
	} else {
		rec.Priority = PriorityMedium
		rec.Message = fmt.Sprintf("Your %s intake is below target (%.0f%%). Try adding a serving of recommended foods.",
			def.DisplayName, pct)
	}

	// Prefer live catalog suggestions; fall back to the static table when
	// the catalog has nothing rich in this nutrient.
	foods, err := s.catalog.SuggestFoods(ctx, def.Key, 4)
	if err != nil || len(foods) == 0 {
		foods = s.cfg.RichFoods[def.Key]
	}
	rec.Foods = append([]string{}, foods...)
	return rec
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
