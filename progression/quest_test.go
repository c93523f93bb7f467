package progression

import (
	"testing"

	"github.com/cppla/travelquest/catalog"
)

func TestQuestProgressCappedAndMonotonic(t *testing.T) {
	q, ok := catalog.QuestByID("daily_checkin_3")
	if !ok {
		t.Fatal("daily_checkin_3 missing")
	}
	prev := -1
	for n := 0; n <= 10; n++ {
		got := QuestProgress(q, PeriodCounters{CheckinsToday: n})
		if got < prev {
			t.Fatalf("progress decreased from %d to %d at counter %d", prev, got, n)
		}
		if got > q.Target {
			t.Fatalf("progress %d exceeds target %d", got, q.Target)
		}
		prev = got
	}
	if prev != q.Target {
		t.Fatalf("progress should cap at target, got %d", prev)
	}
}

func TestQuestMetricDispatch(t *testing.T) {
	counters := PeriodCounters{
		CheckinsToday:      2,
		CheckinsThisWeek:   7,
		NewPlacesToday:     1,
		ReviewsToday:       1,
		CategoriesThisWeek: []string{"beach", "cafe"},
		RegionsThisWeek:    []string{"busan", "jeju", "seoul"},
		WeekendCheckins:    4,
	}
	want := map[string]int{
		"daily_checkin_1":   1,
		"daily_checkin_3":   2,
		"daily_new_place":   1,
		"daily_review":      1,
		"weekly_checkin_10": 7,
		"weekly_categories": 2,
		"weekly_regions":    3,
		"weekly_weekend":    4,
	}
	for id, expected := range want {
		q, ok := catalog.QuestByID(id)
		if !ok {
			t.Fatalf("quest %s missing", id)
		}
		if got := QuestProgress(q, counters); got != expected {
			t.Errorf("%s progress = %d, want %d", id, got, expected)
		}
	}

	completed := CompletedQuests(catalog.WeeklyQuests(), counters)
	if len(completed) != 1 || completed[0].ID != "weekly_regions" {
		t.Fatalf("expected only weekly_regions complete, got %+v", completed)
	}
}

func TestUnknownMetricReadsZero(t *testing.T) {
	q := catalog.Quest{ID: "mystery", Target: 3, Reward: 10, Metric: "unknown"}
	if got := QuestProgress(q, PeriodCounters{CheckinsToday: 9}); got != 0 {
		t.Fatalf("unknown metric should read 0, got %d", got)
	}
}

func TestActiveQuestsIdempotent(t *testing.T) {
	counters := PeriodCounters{CheckinsToday: 1}
	a := ActiveQuests(catalog.DailyQuests(), counters)
	b := ActiveQuests(catalog.DailyQuests(), counters)
	if len(a) != len(b) {
		t.Fatal("length mismatch")
	}
	for i := range a {
		if a[i].Progress != b[i].Progress || a[i].Complete != b[i].Complete {
			t.Fatalf("results differ at %d: %+v vs %+v", i, a[i], b[i])
		}
	}
	if !a[0].Complete || a[1].Complete {
		t.Fatalf("expected daily_checkin_1 complete and daily_checkin_3 not: %+v", a[:2])
	}
}
