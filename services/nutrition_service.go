package services

import (
	"backend/models"
)

// NutritionService turns extracted food quantities into totals and a
// per-food breakdown. Pure arithmetic over the catalog's per-100g
// reference values; foods missing from the catalog are skipped.
type NutritionService struct {
	catalog *Catalog
}

func NewNutritionService(catalog *Catalog) *NutritionService {
	return &NutritionService{catalog: catalog}
}

func (s *NutritionService) Calculate(quantities map[string]float64) (models.NutritionTotals, map[string]models.FoodServing) {
	var totals models.NutritionTotals
	breakdown := make(map[string]models.FoodServing, len(quantities))

	for food, qty := range quantities {
		fact, ok := s.catalog.Food(food)
		if !ok {
			continue
		}
		serving := models.FoodServing{
			Quantity: qty,
			Calories: fact.Calories * qty,
			Carbs:    fact.Carbs * qty,
			Protein:  fact.Protein * qty,
			Fat:      fact.Fat * qty,
		}
		breakdown[food] = serving
		totals.Add(models.NutritionTotals{
			Calories: serving.Calories,
			Carbs:    serving.Carbs,
			Protein:  serving.Protein,
			Fat:      serving.Fat,
		})
	}
	return totals, breakdown
}
