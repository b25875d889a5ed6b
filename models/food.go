package models

// FoodCategory is the closed set of food groups the catalog uses.
// Every catalog entry belongs to exactly one category.
type FoodCategory string

const (
	CategoryBreakfast FoodCategory = "breakfast"
	CategoryMain      FoodCategory = "main"
	CategoryProtein   FoodCategory = "protein"
	CategoryVegetable FoodCategory = "vegetable"
	CategorySnack     FoodCategory = "snack"
	CategoryDessert   FoodCategory = "dessert"
	CategoryBeverage  FoodCategory = "beverage"
)

// FoodFact holds the reference nutrition for one canonical food,
// per 100g serving. The catalog is loaded once and never mutated.
type FoodFact struct {
	Name     string       `json:"name"`
	Calories float64      `json:"calories"`
	Carbs    float64      `json:"carbs"`
	Protein  float64      `json:"protein"`
	Fat      float64      `json:"fat"`
	Category FoodCategory `json:"category"`
}

// MealType identifies one of the four daily meal slots.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnacks    MealType = "snacks"
	MealUnknown   MealType = "unknown"
)

// MealTypes is the fixed enumeration order. Classification precedence
// depends on it, so it must not be reordered.
var MealTypes = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnacks}
