package services

import (
	"fmt"
	"sort"

	"backend/models"
)

// Severity categorizes how strongly a suggestion should be surfaced.
type Severity string

const (
	Info    Severity = "info"
	Caution Severity = "caution"
	High    Severity = "high"
)

// Suggestion is a structured finding from the advice rules.
type Suggestion struct {
	Code     string   `json:"code"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// AdviceService runs the fixed set of independent rule generators over
// a processed meal. Rules never suppress each other; everything that
// fires is returned.
type AdviceService struct {
	catalog *Catalog
}

func NewAdviceService(catalog *Catalog) *AdviceService {
	return &AdviceService{catalog: catalog}
}

// Foods the replacement rules treat as high-carb staples.
var highCarbFoods = []string{"rice", "pasta", "bread", "potato", "noodles"}

// Specific substitutes per staple.
var replacementOptions = map[string][]string{
	"rice":        {"quinoa", "cauliflower rice", "steamed vegetables"},
	"pasta":       {"zucchini noodles", "spaghetti squash", "shirataki noodles"},
	"bread":       {"lettuce wraps", "collard green wraps", "whole grain bread"},
	"potato":      {"sweet potato", "cauliflower mash", "turnips"},
	"sugar":       {"stevia", "monk fruit", "erythritol"},
	"white flour": {"almond flour", "coconut flour", "whole wheat flour"},
}

var proteinAlternatives = []string{"chicken", "fish", "tofu", "paneer", "eggs", "lentils", "beans", "dal", "yogurt", "nuts"}

var saladAdditions = []string{"spinach", "cabbage", "carrot", "broccoli", "cauliflower", "cucumber", "tomato", "bell pepper"}

// HealthSuggestions evaluates the profile-conditioned rules for one
// meal. Expects the session's consumed calories to already include
// this meal. When nothing fires it returns the positive affirmation.
func (a *AdviceService) HealthSuggestions(totals models.NutritionTotals, sess *Session) []Suggestion {
	var out []Suggestion

	if sess.HbA1c >= 5.7 && totals.Carbs > 30 {
		out = append(out, Suggestion{
			Code:     "high_carbs",
			Severity: High,
			Message:  "Your meal is high in carbohydrates. Consider replacing some carbs with protein or vegetables.",
		})
	}

	if totals.Calories > sess.RemainingCalories()*0.5 {
		out = append(out, Suggestion{
			Code:     "calorie_dense",
			Severity: Caution,
			Message:  "This meal is quite calorie-dense. You might want to consider a lighter option.",
		})
	}

	if sess.StepsToday < 5000 {
		out = append(out, Suggestion{
			Code:     "low_activity",
			Severity: Info,
			Message:  "You haven't reached your step goal today. Try to take a walk after your meal.",
		})
	}

	if len(out) == 0 {
		out = append(out, Suggestion{
			Code:     "balanced_meal",
			Severity: Info,
			Message:  "Your meal looks balanced. Keep up the good eating habits!",
		})
	}
	return out
}

// ReplacementSuggestions proposes protein pairings and substitutes for
// high-carb staples, plus vegetable and protein completeness nudges.
func (a *AdviceService) ReplacementSuggestions(quantities map[string]float64) []Suggestion {
	var out []Suggestion

	foods := make([]string, 0, len(quantities))
	for food := range quantities {
		foods = append(foods, food)
	}
	sort.Strings(foods)

	for _, food := range foods {
		if !contains(highCarbFoods, food) {
			continue
		}
		out = append(out, Suggestion{
			Code:     "pair_protein",
			Severity: Info,
			Message: fmt.Sprintf("Consider reducing %s portion and adding %s or %s for better protein balance.",
				food, proteinAlternatives[0], proteinAlternatives[1]),
		})
		if alts, ok := replacementOptions[food]; ok {
			out = append(out, Suggestion{
				Code:     "swap_staple",
				Severity: Info,
				Message: fmt.Sprintf("You could replace %s with %s or %s for a healthier option.",
					food, alts[0], alts[1]),
			})
		}
	}

	vegetables := 0
	hasProtein := false
	for _, food := range foods {
		fact, ok := a.catalog.Food(food)
		if !ok {
			continue
		}
		switch fact.Category {
		case models.CategoryVegetable:
			vegetables++
		case models.CategoryProtein:
			hasProtein = true
		}
	}

	if vegetables < 2 {
		out = append(out, Suggestion{
			Code:     "add_salad",
			Severity: Info,
			Message: fmt.Sprintf("Consider adding a salad with %s, %s, and %s for more fiber and nutrients.",
				saladAdditions[0], saladAdditions[1], saladAdditions[2]),
		})
	}
	if !hasProtein {
		out = append(out, Suggestion{
			Code:     "add_protein",
			Severity: Info,
			Message: fmt.Sprintf("Your meal could use more protein. Consider adding %s, %s, or %s.",
				proteinAlternatives[0], proteinAlternatives[1], proteinAlternatives[2]),
		})
	}
	return out
}

// PreviousMealQuestions asks about earlier slots the session has no
// record for: lunch checks breakfast; dinner checks both.
func (a *AdviceService) PreviousMealQuestions(current models.MealType, sess *Session) []string {
	var questions []string

	missing := func(t models.MealType) bool {
		rec := sess.Meal(t)
		return rec == nil || len(rec.Foods) == 0
	}

	if current == models.MealLunch && missing(models.MealBreakfast) {
		questions = append(questions, "What did you have for breakfast today?")
	}
	if current == models.MealDinner {
		if missing(models.MealBreakfast) {
			questions = append(questions, "What did you have for breakfast today?")
		}
		if missing(models.MealLunch) {
			questions = append(questions, "What did you have for lunch today?")
		}
	}
	return questions
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
