package services

import (
	"strings"
	"testing"

	"backend/models"
)

func hasCode(suggestions []Suggestion, code string) bool {
	for _, s := range suggestions {
		if s.Code == code {
			return true
		}
	}
	return false
}

func TestHighCarbRuleNeedsElevatedHbA1c(t *testing.T) {
	a := NewAdviceService(NewCatalog())
	totals := models.NutritionTotals{Calories: 200, Carbs: 56}

	elevated := &Session{HbA1c: 6.0, DailyCalorieTarget: 2000, StepsToday: 9000,
		Meals: map[models.MealType]*models.MealRecord{}}
	if !hasCode(a.HealthSuggestions(totals, elevated), "high_carbs") {
		t.Fatalf("expected high_carbs for hba1c 6.0 and 56g carbs")
	}

	normal := &Session{HbA1c: 5.0, DailyCalorieTarget: 2000, StepsToday: 9000,
		Meals: map[models.MealType]*models.MealRecord{}}
	if hasCode(a.HealthSuggestions(totals, normal), "high_carbs") {
		t.Fatalf("high_carbs must not fire for normal hba1c")
	}
}

func TestCalorieDenseRule(t *testing.T) {
	a := NewAdviceService(NewCatalog())

	// 900 of 2000 consumed leaves 1100; a 600 kcal meal is over half
	sess := &Session{DailyCalorieTarget: 2000, CaloriesConsumed: 900, StepsToday: 9000,
		Meals: map[models.MealType]*models.MealRecord{}}
	got := a.HealthSuggestions(models.NutritionTotals{Calories: 600, Carbs: 10}, sess)
	if !hasCode(got, "calorie_dense") {
		t.Fatalf("expected calorie_dense, got %v", got)
	}
}

func TestActivityRule(t *testing.T) {
	a := NewAdviceService(NewCatalog())

	sess := &Session{DailyCalorieTarget: 2000, StepsToday: 3000,
		Meals: map[models.MealType]*models.MealRecord{}}
	got := a.HealthSuggestions(models.NutritionTotals{Calories: 100}, sess)
	if !hasCode(got, "low_activity") {
		t.Fatalf("expected low_activity for 3000 steps, got %v", got)
	}
}

func TestBalancedFallback(t *testing.T) {
	a := NewAdviceService(NewCatalog())

	sess := &Session{HbA1c: 5.0, DailyCalorieTarget: 2000, StepsToday: 9000,
		Meals: map[models.MealType]*models.MealRecord{}}
	got := a.HealthSuggestions(models.NutritionTotals{Calories: 100, Carbs: 10}, sess)
	if len(got) != 1 || got[0].Code != "balanced_meal" {
		t.Fatalf("expected only the balanced_meal affirmation, got %v", got)
	}
}

func TestReplacementSuggestionsForStaples(t *testing.T) {
	a := NewAdviceService(NewCatalog())

	got := a.ReplacementSuggestions(map[string]float64{"rice": 2.0, "chicken": 1.0, "salad": 1.0, "spinach": 1.0})
	if !hasCode(got, "pair_protein") {
		t.Fatalf("expected pair_protein for rice, got %v", got)
	}
	if !hasCode(got, "swap_staple") {
		t.Fatalf("expected swap_staple for rice, got %v", got)
	}
	var swap string
	for _, s := range got {
		if s.Code == "swap_staple" {
			swap = s.Message
		}
	}
	if !strings.Contains(swap, "quinoa") {
		t.Fatalf("expected quinoa as the rice substitute, got %q", swap)
	}
	// two vegetables and a protein present, completeness rules quiet
	if hasCode(got, "add_salad") || hasCode(got, "add_protein") {
		t.Fatalf("completeness rules must not fire here: %v", got)
	}
}

func TestVegetableAndProteinCompleteness(t *testing.T) {
	a := NewAdviceService(NewCatalog())

	got := a.ReplacementSuggestions(map[string]float64{"tea": 1.5, "idli": 2.0})
	if !hasCode(got, "add_salad") {
		t.Fatalf("expected add_salad for a meal with no vegetables, got %v", got)
	}
	if !hasCode(got, "add_protein") {
		t.Fatalf("expected add_protein for a meal with no protein, got %v", got)
	}
}

func TestPreviousMealQuestions(t *testing.T) {
	a := NewAdviceService(NewCatalog())

	sess := &Session{Meals: map[models.MealType]*models.MealRecord{}}

	qs := a.PreviousMealQuestions(models.MealLunch, sess)
	if len(qs) != 1 || !strings.Contains(qs[0], "breakfast") {
		t.Fatalf("lunch with no breakfast should ask one breakfast question, got %v", qs)
	}

	qs = a.PreviousMealQuestions(models.MealDinner, sess)
	if len(qs) != 2 {
		t.Fatalf("dinner with no earlier meals should ask two questions, got %v", qs)
	}

	sess.Meals[models.MealBreakfast] = &models.MealRecord{
		Type:  models.MealBreakfast,
		Foods: map[string]models.FoodServing{"idli": {Quantity: 2}},
	}
	qs = a.PreviousMealQuestions(models.MealDinner, sess)
	if len(qs) != 1 || !strings.Contains(qs[0], "lunch") {
		t.Fatalf("dinner with breakfast logged should only ask about lunch, got %v", qs)
	}

	if qs := a.PreviousMealQuestions(models.MealBreakfast, sess); len(qs) != 0 {
		t.Fatalf("breakfast asks no follow-ups, got %v", qs)
	}
}
