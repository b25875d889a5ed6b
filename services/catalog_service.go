package services

import (
	"sort"
	"strings"

	"backend/models"
)

// Catalog bundles the food table, the synonym table and the unit
// multipliers. It is built once at startup and shared read-only; the
// pipeline services take it as a constructor dependency.
type Catalog struct {
	foods    map[string]models.FoodFact
	synonyms map[string]string  // free-text phrase -> canonical food name
	units    map[string]float64 // quantity word -> serving multiplier
}

func NewCatalog() *Catalog {
	c := &Catalog{
		foods:    make(map[string]models.FoodFact, len(foodTable)),
		synonyms: make(map[string]string, len(synonymTable)),
		units:    make(map[string]float64, len(unitTable)),
	}
	for _, f := range foodTable {
		c.foods[f.Name] = f
	}
	for k, v := range synonymTable {
		c.synonyms[k] = v
	}
	for k, v := range unitTable {
		c.units[k] = v
	}
	return c
}

// Food looks up a canonical food name.
func (c *Catalog) Food(name string) (models.FoodFact, bool) {
	f, ok := c.foods[name]
	return f, ok
}

// Resolve looks up a phrase through the synonym table first, then the
// food table, so "idly" and "idli" both land on the same entry.
func (c *Catalog) Resolve(phrase string) (models.FoodFact, bool) {
	name := strings.ToLower(strings.TrimSpace(phrase))
	if canonical, ok := c.synonyms[name]; ok {
		name = canonical
	}
	return c.Food(name)
}

// Foods returns every canonical food name, sorted.
func (c *Catalog) Foods() []string {
	names := make([]string, 0, len(c.foods))
	for name := range c.foods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// UnitMultiplier returns the serving multiplier for a quantity word.
func (c *Catalog) UnitMultiplier(word string) (float64, bool) {
	m, ok := c.units[word]
	return m, ok
}

// Nutrition reference per 100g serving.
var foodTable = []models.FoodFact{
	// Breakfast items
	{Name: "idli", Calories: 39, Carbs: 8, Protein: 2, Fat: 0.5, Category: models.CategoryBreakfast},
	{Name: "dosa", Calories: 117, Carbs: 18, Protein: 4, Fat: 3.5, Category: models.CategoryBreakfast},
	{Name: "poha", Calories: 120, Carbs: 25, Protein: 3, Fat: 2, Category: models.CategoryBreakfast},
	{Name: "upma", Calories: 130, Carbs: 20, Protein: 4, Fat: 4, Category: models.CategoryBreakfast},
	{Name: "oats", Calories: 150, Carbs: 27, Protein: 5, Fat: 3, Category: models.CategoryBreakfast},
	{Name: "cereal", Calories: 120, Carbs: 24, Protein: 3, Fat: 1, Category: models.CategoryBreakfast},
	{Name: "sandwich", Calories: 180, Carbs: 25, Protein: 8, Fat: 5, Category: models.CategoryBreakfast},
	{Name: "paratha", Calories: 200, Carbs: 25, Protein: 5, Fat: 9, Category: models.CategoryBreakfast},
	{Name: "pancake", Calories: 150, Carbs: 22, Protein: 4, Fat: 5, Category: models.CategoryBreakfast},
	{Name: "eggs", Calories: 155, Carbs: 1.1, Protein: 13, Fat: 11, Category: models.CategoryBreakfast},
	{Name: "toast", Calories: 75, Carbs: 13, Protein: 3, Fat: 1, Category: models.CategoryBreakfast},

	// Main dishes
	{Name: "rice", Calories: 130, Carbs: 28, Protein: 3, Fat: 0.5, Category: models.CategoryMain},
	{Name: "roti", Calories: 100, Carbs: 20, Protein: 3, Fat: 1, Category: models.CategoryMain},
	{Name: "naan", Calories: 150, Carbs: 25, Protein: 5, Fat: 4, Category: models.CategoryMain},
	{Name: "bread", Calories: 80, Carbs: 15, Protein: 3, Fat: 1, Category: models.CategoryMain},
	{Name: "pasta", Calories: 130, Carbs: 25, Protein: 5, Fat: 1, Category: models.CategoryMain},
	{Name: "noodles", Calories: 140, Carbs: 26, Protein: 4, Fat: 2, Category: models.CategoryMain},
	{Name: "quinoa", Calories: 120, Carbs: 21, Protein: 4, Fat: 2, Category: models.CategoryMain},
	{Name: "pizza", Calories: 250, Carbs: 30, Protein: 10, Fat: 10, Category: models.CategoryMain},
	{Name: "burger", Calories: 300, Carbs: 30, Protein: 15, Fat: 15, Category: models.CategoryMain},

	// Protein sources
	{Name: "chicken", Calories: 165, Carbs: 0, Protein: 31, Fat: 3.6, Category: models.CategoryProtein},
	{Name: "fish", Calories: 120, Carbs: 0, Protein: 22, Fat: 3, Category: models.CategoryProtein},
	{Name: "paneer", Calories: 260, Carbs: 4, Protein: 18, Fat: 20, Category: models.CategoryProtein},
	{Name: "tofu", Calories: 75, Carbs: 2, Protein: 8, Fat: 4, Category: models.CategoryProtein},
	{Name: "dal", Calories: 120, Carbs: 20, Protein: 8, Fat: 1, Category: models.CategoryProtein},
	{Name: "lentils", Calories: 115, Carbs: 20, Protein: 9, Fat: 0.4, Category: models.CategoryProtein},
	{Name: "beans", Calories: 130, Carbs: 23, Protein: 9, Fat: 0.5, Category: models.CategoryProtein},
	{Name: "steak", Calories: 200, Carbs: 0, Protein: 25, Fat: 12, Category: models.CategoryProtein},

	// Vegetables
	{Name: "potato", Calories: 75, Carbs: 17, Protein: 2, Fat: 0.1, Category: models.CategoryVegetable},
	{Name: "broccoli", Calories: 35, Carbs: 7, Protein: 2.5, Fat: 0.5, Category: models.CategoryVegetable},
	{Name: "carrot", Calories: 40, Carbs: 9, Protein: 1, Fat: 0.2, Category: models.CategoryVegetable},
	{Name: "spinach", Calories: 25, Carbs: 4, Protein: 3, Fat: 0.5, Category: models.CategoryVegetable},
	{Name: "cabbage", Calories: 25, Carbs: 6, Protein: 1.5, Fat: 0.1, Category: models.CategoryVegetable},
	{Name: "cauliflower", Calories: 25, Carbs: 5, Protein: 2, Fat: 0.5, Category: models.CategoryVegetable},
	{Name: "salad", Calories: 30, Carbs: 5, Protein: 1, Fat: 0.5, Category: models.CategoryVegetable},

	// Snacks
	{Name: "vada", Calories: 155, Carbs: 18, Protein: 5, Fat: 7, Category: models.CategorySnack},
	{Name: "samosa", Calories: 250, Carbs: 30, Protein: 5, Fat: 12, Category: models.CategorySnack},
	{Name: "chips", Calories: 150, Carbs: 15, Protein: 2, Fat: 9, Category: models.CategorySnack},
	{Name: "biscuit", Calories: 100, Carbs: 15, Protein: 2, Fat: 4, Category: models.CategorySnack},
	{Name: "nuts", Calories: 180, Carbs: 6, Protein: 5, Fat: 16, Category: models.CategorySnack},
	{Name: "fruit", Calories: 60, Carbs: 15, Protein: 1, Fat: 0.5, Category: models.CategorySnack},
	{Name: "yogurt", Calories: 60, Carbs: 5, Protein: 4, Fat: 2, Category: models.CategorySnack},

	// Sweets
	{Name: "cake", Calories: 350, Carbs: 45, Protein: 5, Fat: 16, Category: models.CategoryDessert},
	{Name: "ice cream", Calories: 200, Carbs: 25, Protein: 4, Fat: 10, Category: models.CategoryDessert},
	{Name: "chocolate", Calories: 220, Carbs: 25, Protein: 3, Fat: 13, Category: models.CategoryDessert},
	{Name: "cookie", Calories: 150, Carbs: 20, Protein: 2, Fat: 7, Category: models.CategoryDessert},

	// Beverages
	{Name: "coffee", Calories: 50, Carbs: 6, Protein: 1, Fat: 2, Category: models.CategoryBeverage},
	{Name: "tea", Calories: 45, Carbs: 7, Protein: 1, Fat: 1.5, Category: models.CategoryBeverage},
	{Name: "milk", Calories: 60, Carbs: 5, Protein: 3, Fat: 3, Category: models.CategoryBeverage},
	{Name: "smoothie", Calories: 120, Carbs: 20, Protein: 5, Fat: 3, Category: models.CategoryBeverage},
	{Name: "juice", Calories: 100, Carbs: 24, Protein: 1, Fat: 0.5, Category: models.CategoryBeverage},
	{Name: "soda", Calories: 150, Carbs: 40, Protein: 0, Fat: 0, Category: models.CategoryBeverage},
}

// Common spellings and variations. Every value must be a key of the
// food table, so rewriting is idempotent.
var synonymTable = map[string]string{
	"idly": "idli", "idlis": "idli",
	"masala dosa": "dosa", "plain dosa": "dosa", "dosas": "dosa",
	"medu vada": "vada", "vadas": "vada",
	"chai": "tea", "green tea": "tea",
	"butter milk": "milk", "curd": "yogurt", "yoghurt": "yogurt",
	"pulses": "dal", "legumes": "beans",
	"fries": "potato", "baked potato": "potato", "mashed potato": "potato",
	"fried rice": "rice", "brown rice": "rice", "white rice": "rice",
	"whole wheat bread": "bread", "white bread": "bread", "toasts": "toast",
	"vegetable salad": "salad", "fruit salad": "fruit",
	"paneer curry": "paneer", "chicken curry": "chicken", "fish curry": "fish",
	"orange juice": "juice", "apple juice": "juice", "fruit juice": "juice",
	"cookies": "cookie", "biscuits": "biscuit",
	"almonds": "nuts", "walnuts": "nuts", "peanuts": "nuts",
}

// Quantity words and their serving multipliers.
var unitTable = map[string]float64{
	"piece": 1, "pieces": 1, "pc": 1, "pcs": 1,
	"bowl": 2, "bowls": 2,
	"cup": 1.5, "cups": 1.5,
	"plate": 2.5, "plates": 2.5,
	"serving": 2, "servings": 2,
	"small": 0.7, "medium": 1, "large": 1.5,
	"glass": 1.5, "glasses": 1.5,
	"slice": 0.5, "slices": 0.5,
}
