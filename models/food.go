package models

import "gorm.io/gorm"

// FoodItem is one entry in the food catalog.
type FoodItem struct {
	gorm.Model
	Name        string `gorm:"index;not null"`
	Description string
	Category    string `gorm:"size:20"` // FRUIT|VEGETABLE|GRAIN|PROTEIN|DAIRY|LEGUME|NUT_SEED|BEVERAGE|SNACK|DESSERT|OTHER
	IsActive    bool   `gorm:"default:true"`

	Profile NutrientProfile `gorm:"foreignKey:FoodItemID"`
}

// NutrientProfile holds the nutrient amounts for one standard portion of a
// food. Read-only to everything outside the catalog.
type NutrientProfile struct {
	gorm.Model
	FoodItemID  uint    `gorm:"uniqueIndex;not null"`
	ServingSize float64 // grams per standard portion

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

// Amount returns the per-portion amount for one nutrient key.
func (p *NutrientProfile) Amount(n Nutrient) float64 {
	switch n {
	case NutrientCalories:
		return p.Calories
	case NutrientProtein:
		return p.Protein
	case NutrientCarbohydrates:
		return p.Carbs
	case NutrientFat:
		return p.Fat
	case NutrientFiber:
		return p.Fiber
	case NutrientVitaminA:
		return p.VitaminA
	case NutrientVitaminC:
		return p.VitaminC
	case NutrientVitaminD:
		return p.VitaminD
	case NutrientVitaminE:
		return p.VitaminE
	case NutrientVitaminK:
		return p.VitaminK
	case NutrientVitaminB12:
		return p.VitaminB12
	case NutrientCalcium:
		return p.Calcium
	case NutrientIron:
		return p.Iron
	case NutrientMagnesium:
		return p.Magnesium
	case NutrientZinc:
		return p.Zinc
	case NutrientPotassium:
		return p.Potassium
	}
	return 0
}
