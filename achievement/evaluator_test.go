package achievement

import (
	"context"
	"errors"
	"testing"

	"github.com/cppla/travelquest/models"
)

type fakeUnlocker struct {
	set      map[string]struct{}
	calls    int
	failAt   int
	failWith error
}

func newFakeUnlocker() *fakeUnlocker {
	return &fakeUnlocker{set: map[string]struct{}{}}
}

func (f *fakeUnlocker) Unlock(_ context.Context, _ uint, id string) (bool, error) {
	f.calls++
	if f.failWith != nil && f.calls >= f.failAt {
		return false, f.failWith
	}
	if _, ok := f.set[id]; ok {
		return false, nil
	}
	f.set[id] = struct{}{}
	return true, nil
}

func (f *fakeUnlocker) ids() []string {
	out := make([]string, 0, len(f.set))
	for id := range f.set {
		out = append(out, id)
	}
	return out
}

func statsWith(fn func(*models.UserStatistics)) models.UserStatistics {
	s := models.NewUserStatistics()
	fn(&s)
	return s
}

func TestEvaluateFirstCheckin(t *testing.T) {
	u := newFakeUnlocker()
	e := NewEvaluator(u)
	stats := statsWith(func(s *models.UserStatistics) {
		s.TotalCheckins = 1
		s.CategoryVisits["mountain"] = 1
	})
	got, err := e.Evaluate(context.Background(), 1, stats, nil)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if len(got) != 1 || got[0].ID != "first_checkin" || got[0].Points != 10 {
		t.Fatalf("expected first_checkin only, got %+v", got)
	}
}

func TestEvaluateIsIdempotent(t *testing.T) {
	u := newFakeUnlocker()
	e := NewEvaluator(u)
	stats := statsWith(func(s *models.UserStatistics) {
		s.TotalCheckins = 10
		s.TotalReviews = 1
		s.NightCheckins = 1
	})
	first, err := e.Evaluate(context.Background(), 1, stats, nil)
	if err != nil || len(first) == 0 {
		t.Fatalf("first run: %v %v", first, err)
	}
	second, err := e.Evaluate(context.Background(), 1, stats, u.ids())
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if len(second) != 0 {
		t.Fatalf("expected no new achievements, got %+v", second)
	}
}

func TestEvaluateRetryWithStaleUnlockedSet(t *testing.T) {
	u := newFakeUnlocker()
	e := NewEvaluator(u)
	stats := statsWith(func(s *models.UserStatistics) { s.TotalCheckins = 1 })
	if _, err := e.Evaluate(context.Background(), 1, stats, nil); err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	// the caller passes the old unlocked set; the atomic add still prevents a double unlock
	again, err := e.Evaluate(context.Background(), 1, stats, nil)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if len(again) != 0 {
		t.Fatalf("achievement unlocked twice: %+v", again)
	}
}

func TestEvaluateDefinitionOrder(t *testing.T) {
	u := newFakeUnlocker()
	e := NewEvaluator(u)
	stats := statsWith(func(s *models.UserStatistics) {
		s.TotalCheckins = 10
		s.NightCheckins = 5
		s.TotalReviews = 1
	})
	got, err := e.Evaluate(context.Background(), 1, stats, nil)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	want := []string{"first_checkin", "explorer_10", "first_review", "night_owl"}
	if len(got) != len(want) {
		t.Fatalf("got %d achievements, want %d: %+v", len(got), len(want), got)
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: got %s want %s", i, got[i].ID, id)
		}
	}
	if SumPoints(got) != 10+50+20+50 {
		t.Fatalf("unexpected sum %d", SumPoints(got))
	}
}

func TestEvaluateStoreFailureReturnsNothing(t *testing.T) {
	boom := errors.New("unreachable")
	u := newFakeUnlocker()
	u.failAt, u.failWith = 2, boom
	e := NewEvaluator(u)
	stats := statsWith(func(s *models.UserStatistics) {
		s.TotalCheckins = 10
	})
	got, err := e.Evaluate(context.Background(), 1, stats, nil)
	if !errors.Is(err, boom) {
		t.Fatalf("expected store error, got %v", err)
	}
	if got != nil {
		t.Fatalf("expected no achievements on failure, got %+v", got)
	}
}

func TestBoard(t *testing.T) {
	stats := statsWith(func(s *models.UserStatistics) {
		s.TotalCheckins = 5
		s.CategoryVisits["mountain"] = 7
	})
	board := Board(stats, []string{"first_checkin"})
	rows := map[string]Progress{}
	for _, p := range board {
		rows[p.ID] = p
	}
	if len(board) != 15 {
		t.Fatalf("expected 15 rows, got %d", len(board))
	}
	if r := rows["first_checkin"]; !r.Unlocked || r.Percentage != 100 {
		t.Fatalf("first_checkin row %+v", r)
	}
	if r := rows["explorer_10"]; r.Unlocked || r.Current != 5 || r.Percentage != 50 {
		t.Fatalf("explorer_10 row %+v", r)
	}
	if r := rows["mountain_lover"]; r.Current != 5 || r.Percentage != 100 {
		t.Fatalf("mountain_lover should cap at threshold, got %+v", r)
	}
	if UnlockedPoints([]string{"first_checkin", "unknown"}) != 10 {
		t.Fatalf("unexpected unlocked points")
	}
}
