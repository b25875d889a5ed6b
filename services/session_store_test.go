package services

import (
	"sync"
	"testing"

	"backend/models"
)

func TestGetCreatesSessionOnce(t *testing.T) {
	st := NewSessionStore()

	a := st.Get(7)
	if a == nil || a.UserID != 7 {
		t.Fatalf("expected a session for user 7, got %+v", a)
	}
	approx(t, a.DailyCalorieTarget, 2000, "default target before a profile is set")
	if a.Meals == nil {
		t.Fatalf("meals map must be initialized")
	}

	b := st.Get(7)
	if a != b {
		t.Fatalf("expected the same session on repeat Get")
	}
	if c := st.Get(8); c == a {
		t.Fatalf("different users must not share a session")
	}
}

func TestResetDailyClearsCountersKeepsProfile(t *testing.T) {
	st := NewSessionStore()
	svc := NewAdvisorService(NewCatalog())

	sess := st.Get(1)
	svc.SetProfile(sess, "asha", 30, 70, 170, 5.0)
	svc.SetSteps(sess, 12000) // inflate the target with the activity multiplier
	sess.CaloriesConsumed = 900
	sess.Meals[models.MealBreakfast] = &models.MealRecord{Type: models.MealBreakfast}

	st.ResetDaily()

	if sess.CaloriesConsumed != 0 || sess.StepsToday != 0 || len(sess.Meals) != 0 {
		t.Fatalf("day counters not cleared: %+v", sess)
	}
	if sess.Name != "asha" || sess.HbA1c != 5.0 {
		t.Fatalf("profile must survive the reset: %+v", sess)
	}
	// target recomputed from the profile, step multiplier gone
	approx(t, sess.DailyCalorieTarget, 1935.0, "target after reset")
}

// Meant to run under the race detector: meal turns, step updates and
// reads must not race the midnight reset or each other.
func TestConcurrentTurnsAndDailyReset(t *testing.T) {
	st := NewSessionStore()
	svc := NewAdvisorService(NewCatalog())
	sess := st.Get(1)
	svc.SetProfile(sess, "asha", 30, 70, 170, 5.0)

	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			svc.ProcessMeal(sess, models.MealLunch, map[string]float64{"rice": 1})
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			svc.Respond(sess, "I had 2 idlis for breakfast")
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			_ = sess.Snapshot()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			st.ResetDaily()
		}
	}()
	wg.Wait()
}

func TestSnapshotIsDetached(t *testing.T) {
	st := NewSessionStore()
	svc := NewAdvisorService(NewCatalog())
	sess := st.Get(1)
	svc.ProcessMeal(sess, models.MealBreakfast, map[string]float64{"idli": 2})

	snap := sess.Snapshot()
	svc.ProcessMeal(sess, models.MealBreakfast, map[string]float64{"dosa": 1})

	approx(t, snap.CaloriesConsumed, 78.0, "snapshot must not track later mutation")
	if _, ok := snap.Meals[models.MealBreakfast].Foods["idli"]; !ok {
		t.Fatalf("snapshot lost the breakfast record taken at copy time")
	}
}

func TestResetDailyWithoutProfileKeepsDefaultTarget(t *testing.T) {
	st := NewSessionStore()
	sess := st.Get(1)
	sess.CaloriesConsumed = 300

	st.ResetDaily()

	if sess.CaloriesConsumed != 0 {
		t.Fatalf("counters not cleared")
	}
	approx(t, sess.DailyCalorieTarget, 2000, "no profile means the default target stays")
}
