package services

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/Lullucoder/DietSphere/models"

	"gorm.io/gorm"
)

// ChartService aggregates dietary entries into the shapes the frontend
// charts consume.
type ChartService struct {
	db  *gorm.DB
	cfg models.NutrientConfig
}

func NewChartService(db *gorm.DB, cfg models.NutrientConfig) *ChartService {
	return &ChartService{db: db, cfg: cfg}
}

type DayData struct {
	Date     string  `json:"date"`
	Label    string  `json:"label"` // short weekday
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Meals    int     `json:"meals"`
}

type MacroSplit struct {
	Protein    float64 `json:"protein"`
	Carbs      float64 `json:"carbs"`
	Fat        float64 `json:"fat"`
	ProteinPct float64 `json:"proteinPct"`
	CarbsPct   float64 `json:"carbsPct"`
	FatPct     float64 `json:"fatPct"`
}

type MealTypeBreakdown struct {
	MealType string  `json:"mealType"`
	Calories float64 `json:"calories"`
	Count    int     `json:"count"`
}

type TopFood struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Count    int     `json:"count"`
}

type RadarPoint struct {
	Nutrient string  `json:"nutrient"`
	Percent  float64 `json:"percent"` // of daily target, capped at 150
}

type ChartData struct {
	DailyTrend        []DayData           `json:"dailyTrend"`
	MacroSplit        MacroSplit          `json:"macroSplit"`
	MealTypeBreakdown []MealTypeBreakdown `json:"mealTypeBreakdown"`
	TopFoods          []TopFood           `json:"topFoods"`
	NutrientRadar     []RadarPoint        `json:"nutrientRadar"`
}

// GetChartData builds all chart series over the past `days` days.
func (s *ChartService) GetChartData(ctx context.Context, userID uint, days int) (*ChartData, error) {
	if days <= 0 {
		days = 7
	}
	now := time.Now()
	start := dayStart(now.AddDate(0, 0, -(days - 1)))

	var entries []models.DietaryEntry
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND consumed_at BETWEEN ? AND ?", userID, start, now).
		Preload("FoodItem.Profile").
		Find(&entries).Error; err != nil {
		return nil, err
	}

	return &ChartData{
		DailyTrend:        s.buildDailyTrend(entries, now, days),
		MacroSplit:        buildMacroSplit(entries),
		MealTypeBreakdown: buildMealTypeBreakdown(entries),
		TopFoods:          buildTopFoods(entries),
		NutrientRadar:     s.buildNutrientRadar(entries, days),
	}, nil
}

func (s *ChartService) buildDailyTrend(entries []models.DietaryEntry, now time.Time, days int) []DayData {
	byDate := map[string][]models.DietaryEntry{}
	for _, e := range entries {
		key := e.ConsumedAt.Format("2006-01-02")
		byDate[key] = append(byDate[key], e)
	}

	trend := make([]DayData, 0, days)
	for i := days - 1; i >= 0; i-- {
		d := dayStart(now.AddDate(0, 0, -i))
		key := d.Format("2006-01-02")
		dayEntries := byDate[key]

		var cal, pro, carb, fat float64
		for _, e := range dayEntries {
			profile := e.FoodItem.Profile
			if profile.ID == 0 {
				continue
			}
			p := portionOf(e)
			cal += profile.Calories * p
			pro += profile.Protein * p
			carb += profile.Carbs * p
			fat += profile.Fat * p
		}
		trend = append(trend, DayData{
			Date:     key,
			Label:    d.Format("Mon"),
			Calories: round1(cal),
			Protein:  round1(pro),
			Carbs:    round1(carb),
			Fat:      round1(fat),
			Meals:    len(dayEntries),
		})
	}
	return trend
}

func buildMacroSplit(entries []models.DietaryEntry) MacroSplit {
	var pro, carb, fat float64
	for _, e := range entries {
		profile := e.FoodItem.Profile
		if profile.ID == 0 {
			continue
		}
		p := portionOf(e)
		pro += profile.Protein * p
		carb += profile.Carbs * p
		fat += profile.Fat * p
	}
	total := pro + carb + fat
	if total == 0 {
		total = 1 // avoid /0
	}
	return MacroSplit{
		Protein:    round1(pro),
		Carbs:      round1(carb),
		Fat:        round1(fat),
		ProteinPct: round1(pro / total * 100),
		CarbsPct:   round1(carb / total * 100),
		FatPct:     round1(fat / total * 100),
	}
}

func buildMealTypeBreakdown(entries []models.DietaryEntry) []MealTypeBreakdown {
	order := []string{models.MealBreakfast, models.MealLunch, models.MealDinner, models.MealSnack}
	agg := map[string]*MealTypeBreakdown{}
	for _, e := range entries {
		b := agg[e.MealType]
		if b == nil {
			b = &MealTypeBreakdown{MealType: e.MealType}
			agg[e.MealType] = b
		}
		if profile := e.FoodItem.Profile; profile.ID != 0 {
			b.Calories = round1(b.Calories + profile.Calories*portionOf(e))
		}
		b.Count++
	}

	out := []MealTypeBreakdown{}
	for _, mt := range order {
		if b, ok := agg[mt]; ok {
			out = append(out, *b)
		}
	}
	return out
}

func buildTopFoods(entries []models.DietaryEntry) []TopFood {
	agg := map[string]*TopFood{}
	for _, e := range entries {
		name := e.FoodItem.Name
		if name == "" {
			name = "Unknown"
		}
		f := agg[name]
		if f == nil {
			f = &TopFood{Name: name}
			agg[name] = f
		}
		if profile := e.FoodItem.Profile; profile.ID != 0 {
			f.Calories = round1(f.Calories + profile.Calories*portionOf(e))
		}
		f.Count++
	}

	out := make([]TopFood, 0, len(agg))
	for _, f := range agg {
		out = append(out, *f)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > 10 {
		out = out[:10]
	}
	return out
}

func (s *ChartService) buildNutrientRadar(entries []models.DietaryEntry, days int) []RadarPoint {
	totals := map[models.Nutrient]float64{}
	for _, e := range entries {
		profile := e.FoodItem.Profile
		if profile.ID == 0 {
			continue
		}
		p := portionOf(e)
		for _, def := range s.cfg.Defs {
			totals[def.Key] += profile.Amount(def.Key) * p
		}
	}

	d := float64(days)
	if d < 1 {
		d = 1
	}
	points := []RadarPoint{}
	for _, def := range s.cfg.Defs {
		if def.Key == models.NutrientCalories || def.DailyTarget <= 0 {
			continue
		}
		p := totals[def.Key] / d / def.DailyTarget * 100
		points = append(points, RadarPoint{
			Nutrient: def.DisplayName,
			Percent:  math.Min(round1(p), 150),
		})
	}
	return points
}

func portionOf(e models.DietaryEntry) float64 {
	if e.Portion <= 0 {
		return 1
	}
	return e.Portion
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
