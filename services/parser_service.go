package services

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"backend/models"
)

// ParserService turns one free-text meal statement into a meal type and
// a map of canonical food name -> quantity (in 100g servings). All
// matching is deterministic pattern/lookup work; there is no language
// model behind it.
type ParserService struct {
	catalog *Catalog

	synonymRules []synonymRule
	foodNames    []string
	wordRes      map[string]*regexp.Regexp // whole-word food mention
	qtyRes       map[string]*regexp.Regexp // "<n> [unit] [of] food"
	articleRes   map[string]*regexp.Regexp // "a/an <unit> [of] food"
}

type synonymRule struct {
	re        *regexp.Regexp
	canonical string
}

// Trigger phrases per meal type. Classification walks models.MealTypes
// in its fixed order, so the first meal type with any matching phrase
// wins and breakfast shadows dinner when a statement mentions both
// "morning" and "dinner" words.
var mealPatterns = map[models.MealType][]string{
	models.MealBreakfast: {"breakfast", "morning", "first meal", "early meal"},
	models.MealLunch:     {"lunch", "afternoon", "midday", "noon"},
	models.MealDinner:    {"dinner", "evening", "night", "supper"},
	models.MealSnacks:    {"snack", "munch", "bite", "nibble"},
}

func NewParserService(catalog *Catalog) *ParserService {
	p := &ParserService{
		catalog:    catalog,
		foodNames:  catalog.Foods(),
		wordRes:    make(map[string]*regexp.Regexp),
		qtyRes:     make(map[string]*regexp.Regexp),
		articleRes: make(map[string]*regexp.Regexp),
	}

	// Longest phrase first keeps rewriting deterministic and stops a
	// short synonym from clobbering part of a longer one.
	phrases := make([]string, 0, len(catalog.synonyms))
	for phrase := range catalog.synonyms {
		phrases = append(phrases, phrase)
	}
	sort.Slice(phrases, func(i, j int) bool {
		if len(phrases[i]) != len(phrases[j]) {
			return len(phrases[i]) > len(phrases[j])
		}
		return phrases[i] < phrases[j]
	})
	for _, phrase := range phrases {
		p.synonymRules = append(p.synonymRules, synonymRule{
			re:        regexp.MustCompile(`\b` + regexp.QuoteMeta(phrase) + `\b`),
			canonical: catalog.synonyms[phrase],
		})
	}

	units := make([]string, 0, len(catalog.units))
	for u := range catalog.units {
		units = append(units, u)
	}
	sort.Slice(units, func(i, j int) bool {
		if len(units[i]) != len(units[j]) {
			return len(units[i]) > len(units[j])
		}
		return units[i] < units[j]
	})
	unitAlt := strings.Join(units, "|")

	for _, name := range p.foodNames {
		quoted := regexp.QuoteMeta(name)
		p.wordRes[name] = regexp.MustCompile(`\b` + quoted + `\b`)
		p.qtyRes[name] = regexp.MustCompile(
			`\b(\d+)\s*(?:(` + unitAlt + `)\s+)?(?:of\s+)?` + quoted + `\b`)
		p.articleRes[name] = regexp.MustCompile(
			`\ban?\s+(` + unitAlt + `)\s+(?:of\s+)?` + quoted + `\b`)
	}
	return p
}

// Normalize lowercases the text and rewrites every whole-word synonym
// occurrence to its canonical food name. Running it on already
// normalized text is a no-op.
func (p *ParserService) Normalize(text string) string {
	out := strings.ToLower(text)
	for _, rule := range p.synonymRules {
		out = rule.re.ReplaceAllString(out, rule.canonical)
	}
	return out
}

// ExtractMealType classifies normalized text into a meal slot, or
// MealUnknown when nothing matches. A secondary pass over broader
// time-of-day words runs before giving up.
func (p *ParserService) ExtractMealType(text string) models.MealType {
	for _, mealType := range models.MealTypes {
		for _, pattern := range mealPatterns[mealType] {
			if strings.Contains(text, pattern) {
				return mealType
			}
		}
	}

	switch {
	case strings.Contains(text, "morning") || strings.Contains(text, "first"):
		return models.MealBreakfast
	case strings.Contains(text, "afternoon") || strings.Contains(text, "midday"):
		return models.MealLunch
	case strings.Contains(text, "evening") || strings.Contains(text, "night"):
		return models.MealDinner
	case strings.Contains(text, "snack") || strings.Contains(text, "munch"):
		return models.MealSnacks
	}
	return models.MealUnknown
}

// ExtractFoodItems finds catalog foods mentioned in normalized text and
// resolves a quantity for each. An empty map means no food was
// identified and the caller should ask for clarification.
func (p *ParserService) ExtractFoodItems(text string) map[string]float64 {
	found := p.scanFoods(text)

	quantities := make(map[string]float64, len(found))
	for _, food := range found {
		quantities[food] = p.extractQuantity(text, food)
	}
	return quantities
}

// scanFoods does a whole-word scan first. Only when that yields nothing
// does it fall back to a loose shared-word scan; that pass can attribute
// text to unintended foods sharing a word and is kept deliberately
// separate as a lower-confidence match.
func (p *ParserService) scanFoods(text string) []string {
	var found []string
	for _, name := range p.foodNames {
		if p.wordRes[name].MatchString(text) {
			found = append(found, name)
		}
	}
	if found != nil {
		return found
	}

	words := make(map[string]bool)
	for _, w := range strings.Fields(text) {
		words[w] = true
	}
	for _, name := range p.foodNames {
		for _, part := range strings.Fields(name) {
			if words[part] {
				found = append(found, name)
				break
			}
		}
	}
	return found
}

// extractQuantity resolves one food's quantity, in priority order:
// an explicit number with optional unit word, an article plus unit
// ("a cup of tea"), a vague phrase anywhere in the text, then the
// 1.0-serving default. The map is keyed by food name, so when a food
// is mentioned more than once the last applicable match wins.
func (p *ParserService) extractQuantity(text, food string) float64 {
	if ms := p.qtyRes[food].FindAllStringSubmatch(text, -1); len(ms) > 0 {
		m := ms[len(ms)-1]
		n, err := strconv.Atoi(m[1])
		if err == nil {
			mult := 1.0
			if m[2] != "" {
				if u, ok := p.catalog.UnitMultiplier(m[2]); ok {
					mult = u
				}
			}
			return float64(n) * mult
		}
	}

	if ms := p.articleRes[food].FindAllStringSubmatch(text, -1); len(ms) > 0 {
		m := ms[len(ms)-1]
		if u, ok := p.catalog.UnitMultiplier(m[1]); ok {
			return u
		}
	}

	if containsAny(text, "some", "a little", "bit of") {
		return 0.5
	}
	if containsAny(text, "a lot of", "plenty of") {
		return 2
	}
	return 1
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
