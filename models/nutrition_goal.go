package models

import "gorm.io/gorm"

// NutritionGoal holds a user's daily nutrient targets. One active row per
// user; created with system defaults on first access, mutated only through
// explicit edits on the goal settings page.
type NutritionGoal struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null"`

	Calories   float64 // kcal
	Protein    float64 // g
	Carbs      float64 // g
	Fat        float64 // g
	Fiber      float64 // g
	VitaminA   float64 // mcg
	VitaminC   float64 // mg
	VitaminD   float64 // mcg
	VitaminE   float64 // mg
	VitaminK   float64 // mcg
	VitaminB12 float64 // mcg
	Calcium    float64 // mg
	Iron       float64 // mg
	Magnesium  float64 // mg
	Zinc       float64 // mg
	Potassium  float64 // mg
}

// Target returns the stored daily target for one nutrient key.
func (g *NutritionGoal) Target(n Nutrient) float64 {
	switch n {
	case NutrientCalories:
		return g.Calories
	case NutrientProtein:
		return g.Protein
	case NutrientCarbohydrates:
		return g.Carbs
	case NutrientFat:
		return g.Fat
	case NutrientFiber:
		return g.Fiber
	case NutrientVitaminA:
		return g.VitaminA
	case NutrientVitaminC:
		return g.VitaminC
	case NutrientVitaminD:
		return g.VitaminD
	case NutrientVitaminE:
		return g.VitaminE
	case NutrientVitaminK:
		return g.VitaminK
	case NutrientVitaminB12:
		return g.VitaminB12
	case NutrientCalcium:
		return g.Calcium
	case NutrientIron:
		return g.Iron
	case NutrientMagnesium:
		return g.Magnesium
	case NutrientZinc:
		return g.Zinc
	case NutrientPotassium:
		return g.Potassium
	}
	return 0
}

// TargetMap flattens the row into a nutrient→target map covering every
// nutrient in cfg.
func (g *NutritionGoal) TargetMap(cfg NutrientConfig) map[Nutrient]float64 {
	out := make(map[Nutrient]float64, len(cfg.Defs))
	for _, d := range cfg.Defs {
		out[d.Key] = g.Target(d.Key)
	}
	return out
}

// DefaultGoal builds a goal row seeded with the system default targets.
func DefaultGoal(userID uint, cfg NutrientConfig) NutritionGoal {
	g := NutritionGoal{UserID: userID}
	for _, d := range cfg.Defs {
		switch d.Key {
		case NutrientCalories:
			g.Calories = d.DailyTarget
		case NutrientProtein:
			g.Protein = d.DailyTarget
		case NutrientCarbohydrates:
			g.Carbs = d.DailyTarget
		case NutrientFat:
			g.Fat = d.DailyTarget
		case NutrientFiber:
			g.Fiber = d.DailyTarget
		case NutrientVitaminA:
			g.VitaminA = d.DailyTarget
		case NutrientVitaminC:
			g.VitaminC = d.DailyTarget
		case NutrientVitaminD:
			g.VitaminD = d.DailyTarget
		case NutrientVitaminE:
			g.VitaminE = d.DailyTarget
		case NutrientVitaminK:
			g.VitaminK = d.DailyTarget
		case NutrientVitaminB12:
			g.VitaminB12 = d.DailyTarget
		case NutrientCalcium:
			g.Calcium = d.DailyTarget
		case NutrientIron:
			g.Iron = d.DailyTarget
		case NutrientMagnesium:
			g.Magnesium = d.DailyTarget
		case NutrientZinc:
			g.Zinc = d.DailyTarget
		case NutrientPotassium:
			g.Potassium = d.DailyTarget
		}
	}
	return g
}
