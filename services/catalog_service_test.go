package services

import (
	"testing"

	"backend/models"
)

func TestSynonymsResolveToCatalogEntries(t *testing.T) {
	c := NewCatalog()
	for phrase, canonical := range c.synonyms {
		if _, ok := c.Food(canonical); !ok {
			t.Fatalf("synonym %q points at %q, which is not a catalog food", phrase, canonical)
		}
	}
}

func TestResolveThroughSynonym(t *testing.T) {
	c := NewCatalog()

	fact, ok := c.Resolve("idly")
	if !ok {
		t.Fatalf("expected idly to resolve")
	}
	if fact.Name != "idli" {
		t.Fatalf("expected idly to canonicalize to idli, got %q", fact.Name)
	}

	fact, ok = c.Resolve("  Chai ")
	if !ok || fact.Name != "tea" {
		t.Fatalf("expected chai to canonicalize to tea, got %q ok=%v", fact.Name, ok)
	}

	if _, ok := c.Resolve("motor oil"); ok {
		t.Fatalf("expected unknown phrase to not resolve")
	}
}

func TestFoodsSortedAndComplete(t *testing.T) {
	c := NewCatalog()
	names := c.Foods()
	if len(names) != len(c.foods) {
		t.Fatalf("expected %d names, got %d", len(c.foods), len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("names not sorted: %q before %q", names[i-1], names[i])
		}
	}
}

func TestUnitMultipliersPositive(t *testing.T) {
	c := NewCatalog()
	for word, m := range c.units {
		if m <= 0 {
			t.Fatalf("unit %q has non-positive multiplier %v", word, m)
		}
	}
	if m, ok := c.UnitMultiplier("bowl"); !ok || m != 2.0 {
		t.Fatalf("expected bowl multiplier 2.0, got %v ok=%v", m, ok)
	}
}

func TestEveryFoodHasOneCategory(t *testing.T) {
	valid := map[models.FoodCategory]bool{
		models.CategoryBreakfast: true,
		models.CategoryMain:      true,
		models.CategoryProtein:   true,
		models.CategoryVegetable: true,
		models.CategorySnack:     true,
		models.CategoryDessert:   true,
		models.CategoryBeverage:  true,
	}
	c := NewCatalog()
	for name, fact := range c.foods {
		if !valid[fact.Category] {
			t.Fatalf("food %q has invalid category %q", name, fact.Category)
		}
	}
}
