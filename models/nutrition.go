package models

// NutritionTotals is the summed nutrition of a set of servings.
type NutritionTotals struct {
	Calories float64 `json:"calories"`
	Carbs    float64 `json:"carbs"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
}

// Add accumulates another set of totals into n.
func (n *NutritionTotals) Add(o NutritionTotals) {
	n.Calories += o.Calories
	n.Carbs += o.Carbs
	n.Protein += o.Protein
	n.Fat += o.Fat
}

// FoodServing is one entry of a per-food breakdown: the resolved
// quantity (in 100g servings) and the nutrition it works out to.
type FoodServing struct {
	Quantity float64 `json:"quantity"`
	Calories float64 `json:"calories"`
	Carbs    float64 `json:"carbs"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
}

// MealRecord is one processed meal slot. Re-processing the same meal
// type in a session replaces the record outright (last write wins).
type MealRecord struct {
	Type          MealType               `json:"type"`
	Foods         map[string]FoodServing `json:"foods"`
	TotalCalories float64                `json:"total_calories"`
}
