package services

import (
	"fmt"
	"math/rand"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"backend/models"
	"backend/utils"
)

// AdvisorService wires the pipeline together: normalize, classify,
// extract, aggregate, advise, compose. One Respond call handles one
// user turn against one session.
type AdvisorService struct {
	catalog   *Catalog
	parser    *ParserService
	nutrition *NutritionService
	advice    *AdviceService
}

func NewAdvisorService(catalog *Catalog) *AdvisorService {
	return &AdvisorService{
		catalog:   catalog,
		parser:    NewParserService(catalog),
		nutrition: NewNutritionService(catalog),
		advice:    NewAdviceService(catalog),
	}
}

func (s *AdvisorService) Catalog() *Catalog { return s.catalog }

// Turn kinds, for callers that need to react to what a turn did.
const (
	TurnMeal        = "meal"
	TurnSteps       = "steps"
	TurnGlucose     = "glucose"
	TurnClarifyMeal = "clarify_meal"
	TurnClarifyFood = "clarify_food"
)

// TurnResult carries the composed reply plus the structured outcome so
// the surrounding surface can persist or broadcast without re-parsing.
type TurnResult struct {
	Kind        string                        `json:"kind"`
	Reply       string                        `json:"reply"`
	MealType    models.MealType               `json:"meal_type,omitempty"`
	Totals      models.NutritionTotals        `json:"totals,omitempty"`
	Breakdown   map[string]models.FoodServing `json:"breakdown,omitempty"`
	Suggestions []Suggestion                  `json:"suggestions,omitempty"`
}

// SetProfile stores the physiology and derives the daily calorie
// target from BMR and the HbA1c band.
func (s *AdvisorService) SetProfile(sess *Session, name string, age int, weightKg, heightCm, hba1c float64) {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.Name = name
	sess.Age = age
	sess.WeightKg = weightKg
	sess.HeightCm = heightCm
	sess.HbA1c = hba1c

	bmr := utils.CalculateBMR(age, weightKg, heightCm)
	sess.DailyCalorieTarget = utils.DailyCalorieTarget(bmr, hba1c)
}

// SetSteps records the step count and scales the current calorie
// target by activity. The adjustment multiplies whatever the target
// already is, so repeated calls compound; daily reset recomputes the
// base from the profile.
func (s *AdvisorService) SetSteps(sess *Session, steps int) {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	s.setSteps(sess, steps)
}

// setSteps expects the session lock to be held.
func (s *AdvisorService) setSteps(sess *Session, steps int) {
	sess.StepsToday = steps

	if steps > 10000 {
		sess.DailyCalorieTarget *= 1.2
	} else if steps > 5000 {
		sess.DailyCalorieTarget *= 1.1
	}
}

// ProcessMeal aggregates nutrition for the extracted quantities and
// records the meal. Re-logging a slot replaces its record, but the
// consumed-calories counter only ever grows within a session.
func (s *AdvisorService) ProcessMeal(sess *Session, mealType models.MealType, quantities map[string]float64) (models.NutritionTotals, map[string]models.FoodServing) {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return s.processMeal(sess, mealType, quantities)
}

// processMeal expects the session lock to be held.
func (s *AdvisorService) processMeal(sess *Session, mealType models.MealType, quantities map[string]float64) (models.NutritionTotals, map[string]models.FoodServing) {
	totals, breakdown := s.nutrition.Calculate(quantities)

	sess.Meals[mealType] = &models.MealRecord{
		Type:          mealType,
		Foods:         breakdown,
		TotalCalories: totals.Calories,
	}
	sess.CaloriesConsumed += totals.Calories

	return totals, breakdown
}

var stepsRe = regexp.MustCompile(`(\d+)\s*steps?`)

// Respond handles one free-text turn. Meal statements run the full
// pipeline; "N steps" and glucose-sensor questions are handled as
// direct commands; anything unresolvable produces a clarification.
// The session lock is held for the whole turn, so a user's turns
// serialize against each other and against the daily reset.
func (s *AdvisorService) Respond(sess *Session, input string) *TurnResult {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	lower := strings.ToLower(input)

	if strings.Contains(lower, "sensor") || strings.Contains(lower, "glucose") {
		reading := glucoseReading()
		status := "normal"
		if reading > 140 {
			status = "high"
		} else if reading < 70 {
			status = "low"
		}
		return &TurnResult{
			Kind:  TurnGlucose,
			Reply: fmt.Sprintf("Your current glucose reading is %d mg/dL, which is %s.", reading, status),
		}
	}

	// plural "steps" required; "I climbed 1 step" is not a step update
	if strings.Contains(lower, "steps") {
		if m := stepsRe.FindStringSubmatch(lower); m != nil {
			steps, err := strconv.Atoi(m[1])
			if err == nil {
				s.setSteps(sess, steps)
				return &TurnResult{
					Kind:  TurnSteps,
					Reply: fmt.Sprintf("Thanks for updating your step count to %d. I've adjusted your calorie target accordingly.", steps),
				}
			}
		}
	}

	text := s.parser.Normalize(input)

	mealType := s.parser.ExtractMealType(text)
	if mealType == models.MealUnknown {
		return &TurnResult{
			Kind:  TurnClarifyMeal,
			Reply: "I'm not sure which meal you're referring to. Could you specify if this is breakfast, lunch, dinner, or a snack?",
		}
	}

	quantities := s.parser.ExtractFoodItems(text)
	if len(quantities) == 0 {
		return &TurnResult{
			Kind:  TurnClarifyFood,
			Reply: "I couldn't identify any foods in your message. Could you please specify what you're planning to eat? For example, 'I'm having 2 dosas and a cup of coffee'.",
		}
	}

	totals, breakdown := s.processMeal(sess, mealType, quantities)

	health := s.advice.HealthSuggestions(totals, sess)
	replacements := s.advice.ReplacementSuggestions(quantities)
	questions := s.advice.PreviousMealQuestions(mealType, sess)

	suggestions := append(append([]Suggestion{}, health...), replacements...)

	return &TurnResult{
		Kind:        TurnMeal,
		Reply:       composeReport(sess, mealType, totals, breakdown, health, replacements, questions),
		MealType:    mealType,
		Totals:      totals,
		Breakdown:   breakdown,
		Suggestions: suggestions,
	}
}

// composeReport renders the structured outcome as the chat reply. Pure
// formatting; every decision was made upstream.
func composeReport(sess *Session, mealType models.MealType, totals models.NutritionTotals,
	breakdown map[string]models.FoodServing, health, replacements []Suggestion, questions []string) string {

	var b strings.Builder
	fmt.Fprintf(&b, "Okay, I've recorded your %s:\n\n", mealType)

	foods := make([]string, 0, len(breakdown))
	for food := range breakdown {
		foods = append(foods, food)
	}
	sort.Strings(foods)
	for _, food := range foods {
		info := breakdown[food]
		fmt.Fprintf(&b, "- %g serving(s) of %s: %.1f calories\n", info.Quantity, food, info.Calories)
	}

	fmt.Fprintf(&b, "\nTotal for this meal: %.1f calories\n", totals.Calories)
	fmt.Fprintf(&b, "Daily calorie target: %.1f\n", sess.DailyCalorieTarget)
	fmt.Fprintf(&b, "Calories consumed today: %.1f\n", sess.CaloriesConsumed)
	fmt.Fprintf(&b, "Remaining calories: %.1f\n\n", sess.RemainingCalories())

	b.WriteString("Health suggestions:\n")
	for i, sg := range health {
		fmt.Fprintf(&b, "%d. %s\n", i+1, sg.Message)
	}

	if len(replacements) > 0 {
		b.WriteString("\nMeal improvement suggestions:\n")
		for i, sg := range replacements {
			fmt.Fprintf(&b, "%d. %s\n", i+1, sg.Message)
		}
	}

	if len(questions) > 0 {
		b.WriteString("\nTo give you better advice, I need to know about your previous meals:\n")
		for _, q := range questions {
			fmt.Fprintf(&b, "- %s\n", q)
		}
	}
	return b.String()
}

// glucoseReading stands in for the IR sensor hardware.
func glucoseReading() int {
	return rand.Intn(131) + 70
}

// Process-wide advisor wiring, set once from main.
type advisorDeps struct {
	svc   *AdvisorService
	store *SessionStore
}

var _advisor advisorDeps

func InitAdvisor(svc *AdvisorService, store *SessionStore) {
	_advisor = advisorDeps{svc: svc, store: store}
}

func Advisor() *AdvisorService { return _advisor.svc }
func Sessions() *SessionStore  { return _advisor.store }
