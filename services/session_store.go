package services

import (
	"sync"

	"backend/models"
	"backend/utils"

	"github.com/google/uuid"
)

// Session is one user's running advisor state. It lives for the
// process lifetime only; nothing here is persisted. Request handlers
// and the daily reset job mutate a session concurrently, so every
// mutation holds mu; serialized reads go through Snapshot.
type Session struct {
	mu sync.Mutex

	ID     uuid.UUID `json:"id"`
	UserID uint      `json:"user_id"`

	Name     string  `json:"name"`
	Age      int     `json:"age"`
	WeightKg float64 `json:"weight_kg"`
	HeightCm float64 `json:"height_cm"`
	HbA1c    float64 `json:"hba1c"`

	DailyCalorieTarget float64 `json:"daily_calorie_target"`
	CaloriesConsumed   float64 `json:"calories_consumed"`
	StepsToday         int     `json:"steps_today"`

	Meals map[models.MealType]*models.MealRecord `json:"meals"`
}

// Meal returns the session's record for a slot, nil when nothing has
// been logged there yet.
func (s *Session) Meal(t models.MealType) *models.MealRecord {
	return s.Meals[t]
}

// Snapshot copies the session for serialization while other goroutines
// may be mutating it. Meal records are replaced wholesale and never
// mutated in place, so sharing their pointers is safe.
func (s *Session) Snapshot() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := &Session{
		ID:                 s.ID,
		UserID:             s.UserID,
		Name:               s.Name,
		Age:                s.Age,
		WeightKg:           s.WeightKg,
		HeightCm:           s.HeightCm,
		HbA1c:              s.HbA1c,
		DailyCalorieTarget: s.DailyCalorieTarget,
		CaloriesConsumed:   s.CaloriesConsumed,
		StepsToday:         s.StepsToday,
		Meals:              make(map[models.MealType]*models.MealRecord, len(s.Meals)),
	}
	for t, rec := range s.Meals {
		cp.Meals[t] = rec
	}
	return cp
}

// RemainingCalories may go negative; it is deliberately not clamped.
func (s *Session) RemainingCalories() float64 {
	return s.DailyCalorieTarget - s.CaloriesConsumed
}

// SessionStore keeps the in-memory sessions, one per user.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[uint]*Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[uint]*Session)}
}

// Get returns the user's session, creating a fresh one on first use.
func (st *SessionStore) Get(userID uint) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	if s, ok := st.sessions[userID]; ok {
		return s
	}
	s := &Session{
		ID:                 uuid.New(),
		UserID:             userID,
		DailyCalorieTarget: 2000, // until a profile is set
		Meals:              make(map[models.MealType]*models.MealRecord),
	}
	st.sessions[userID] = s
	return s
}

// ResetDaily clears every session's day counters at rollover. The
// profile survives; the calorie target is recomputed from it, which
// also drops any accumulated step multipliers.
func (st *SessionStore) ResetDaily() {
	st.mu.Lock()
	defer st.mu.Unlock()
	for _, s := range st.sessions {
		s.mu.Lock()
		s.CaloriesConsumed = 0
		s.StepsToday = 0
		s.Meals = make(map[models.MealType]*models.MealRecord)
		if s.Age > 0 {
			bmr := utils.CalculateBMR(s.Age, s.WeightKg, s.HeightCm)
			s.DailyCalorieTarget = utils.DailyCalorieTarget(bmr, s.HbA1c)
		}
		s.mu.Unlock()
	}
}
