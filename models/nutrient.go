package models

// Nutrient is the key for one tracked nutrient.
type Nutrient string

const (
	NutrientCalories      Nutrient = "CALORIES"
	NutrientProtein       Nutrient = "PROTEIN"
	NutrientCarbohydrates Nutrient = "CARBOHYDRATES"
	NutrientFat           Nutrient = "FAT"
	NutrientFiber         Nutrient = "FIBER"
	NutrientVitaminA      Nutrient = "VITAMIN_A"
	NutrientVitaminC      Nutrient = "VITAMIN_C"
	NutrientVitaminD      Nutrient = "VITAMIN_D"
	NutrientVitaminE      Nutrient = "VITAMIN_E"
	NutrientVitaminK      Nutrient = "VITAMIN_K"
	NutrientVitaminB12    Nutrient = "VITAMIN_B12"
	NutrientCalcium       Nutrient = "CALCIUM"
	NutrientIron          Nutrient = "IRON"
	NutrientMagnesium     Nutrient = "MAGNESIUM"
	NutrientZinc          Nutrient = "ZINC"
	NutrientPotassium     Nutrient = "POTASSIUM"
)

// NutrientDef describes one tracked nutrient: display name, unit,
// the system default daily target, and whether it belongs in the
// macronutrient group on the analysis page.
type NutrientDef struct {
	Key         Nutrient
	DisplayName string
	Unit        string
	DailyTarget float64
	Macro       bool
}

// NutrientConfig is passed into the analysis engine at construction so the
// engine stays a pure function of its inputs. Defs order is the display
// order everywhere (breakdown, deficiencies, recommendations).
type NutrientConfig struct {
	Defs      []NutrientDef
	RichFoods map[Nutrient][]string // static fallback food suggestions
}

// Def returns the definition for a key, if tracked.
func (c NutrientConfig) Def(key Nutrient) (NutrientDef, bool) {
	for _, d := range c.Defs {
		if d.Key == key {
			return d, true
		}
	}
	return NutrientDef{}, false
}

// DefaultNutrientConfig returns the tracked nutrient set with adult
// approximate recommended daily values.
func DefaultNutrientConfig() NutrientConfig {
	return NutrientConfig{
		Defs: []NutrientDef{
			{NutrientCalories, "Calories", "kcal", 2000, false},
			{NutrientProtein, "Protein", "g", 50, true},
			{NutrientCarbohydrates, "Carbohydrates", "g", 275, true},
			{NutrientFat, "Fat", "g", 78, true},
			{NutrientFiber, "Fiber", "g", 28, true},
			{NutrientVitaminA, "Vitamin A", "mcg", 900, false},
			{NutrientVitaminC, "Vitamin C", "mg", 90, false},
			{NutrientVitaminD, "Vitamin D", "mcg", 20, false},
			{NutrientVitaminE, "Vitamin E", "mg", 15, false},
			{NutrientVitaminK, "Vitamin K", "mcg", 120, false},
			{NutrientVitaminB12, "Vitamin B12", "mcg", 2.4, false},
			{NutrientCalcium, "Calcium", "mg", 1000, false},
			{NutrientIron, "Iron", "mg", 18, false},
			{NutrientMagnesium, "Magnesium", "mg", 400, false},
			{NutrientZinc, "Zinc", "mg", 11, false},
			{NutrientPotassium, "Potassium", "mg", 2600, false},
		},
		RichFoods: map[Nutrient][]string{
			NutrientProtein:       {"Chicken Breast", "Egg", "Salmon", "Almonds"},
			NutrientCarbohydrates: {"Brown Rice", "Banana", "Apple"},
			NutrientFat:           {"Salmon", "Almonds", "Egg"},
			NutrientFiber:         {"Broccoli", "Brown Rice", "Apple", "Spinach"},
			NutrientVitaminA:      {"Spinach", "Broccoli", "Egg"},
			NutrientVitaminC:      {"Broccoli", "Spinach", "Banana"},
			NutrientVitaminD:      {"Salmon", "Egg", "Milk"},
			NutrientVitaminE:      {"Almonds", "Spinach", "Salmon"},
			NutrientVitaminK:      {"Spinach", "Broccoli"},
			NutrientVitaminB12:    {"Salmon", "Egg", "Milk"},
			NutrientCalcium:       {"Milk", "Broccoli", "Almonds"},
			NutrientIron:          {"Spinach", "Chicken Breast", "Brown Rice"},
			NutrientMagnesium:     {"Almonds", "Spinach", "Brown Rice"},
			NutrientZinc:          {"Chicken Breast", "Almonds", "Milk"},
			NutrientPotassium:     {"Banana", "Spinach", "Milk"},
		},
	}
}
