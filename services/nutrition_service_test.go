package services

import (
	"math"
	"testing"
)

func approx(t *testing.T, got, want float64, what string) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", what, got, want)
	}
}

func TestCalculateBreakdown(t *testing.T) {
	s := NewNutritionService(NewCatalog())

	totals, breakdown := s.Calculate(map[string]float64{"idli": 2.0, "tea": 1.5})

	idli := breakdown["idli"]
	approx(t, idli.Quantity, 2.0, "idli quantity")
	approx(t, idli.Calories, 78.0, "idli calories")
	approx(t, idli.Carbs, 16.0, "idli carbs")

	tea := breakdown["tea"]
	approx(t, tea.Calories, 67.5, "tea calories")

	approx(t, totals.Calories, 145.5, "total calories")
	approx(t, totals.Carbs, 26.5, "total carbs")
}

func TestCalculateIsLinear(t *testing.T) {
	s := NewNutritionService(NewCatalog())

	combined, _ := s.Calculate(map[string]float64{"rice": 2.0, "dal": 1.0})
	riceOnly, _ := s.Calculate(map[string]float64{"rice": 2.0})
	dalOnly, _ := s.Calculate(map[string]float64{"dal": 1.0})

	approx(t, combined.Calories, riceOnly.Calories+dalOnly.Calories, "calories additivity")
	approx(t, combined.Carbs, riceOnly.Carbs+dalOnly.Carbs, "carbs additivity")
	approx(t, combined.Protein, riceOnly.Protein+dalOnly.Protein, "protein additivity")
	approx(t, combined.Fat, riceOnly.Fat+dalOnly.Fat, "fat additivity")
}

func TestCalculateSkipsUnknownFood(t *testing.T) {
	s := NewNutritionService(NewCatalog())

	totals, breakdown := s.Calculate(map[string]float64{"unobtainium": 3.0})
	if len(breakdown) != 0 {
		t.Fatalf("expected empty breakdown, got %v", breakdown)
	}
	approx(t, totals.Calories, 0, "totals for unknown food")
}

func TestCalculateEmptyInput(t *testing.T) {
	s := NewNutritionService(NewCatalog())

	totals, breakdown := s.Calculate(nil)
	if len(breakdown) != 0 || totals.Calories != 0 {
		t.Fatalf("expected zero output for nil input, got %v %v", totals, breakdown)
	}
}
