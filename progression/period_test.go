package progression

import (
	"testing"
	"time"

	"github.com/cppla/travelquest/catalog"
	"github.com/cppla/travelquest/models"
)

var seoul = time.FixedZone("KST", 9*60*60)

func at(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, seoul)
}

func TestCalendarDays(t *testing.T) {
	late := time.Date(2026, 10, 14, 23, 59, 0, 0, seoul)
	early := time.Date(2026, 10, 15, 0, 1, 0, 0, seoul)
	if got := CalendarDays(late, early, seoul); got != 1 {
		t.Fatalf("23:59 -> 00:01 should be 1 day, got %d", got)
	}
	if got := CalendarDays(early, early.Add(20*time.Hour), seoul); got != 0 {
		t.Fatalf("same day should be 0, got %d", got)
	}
	if got := CalendarDays(at(2026, 10, 1, 12), at(2026, 10, 4, 9), seoul); got != 3 {
		t.Fatalf("expected 3 days, got %d", got)
	}
}

func TestNightAndWeekend(t *testing.T) {
	// 2026-10-17 is a Saturday.
	sat := at(2026, 10, 17, 23)
	if !IsNight(sat, seoul) || !IsWeekend(sat, seoul) {
		t.Fatal("Saturday 23:00 should be night and weekend")
	}
	if IsNight(at(2026, 10, 15, 5), seoul) || !IsNight(at(2026, 10, 15, 4), seoul) {
		t.Fatal("night window is 22:00 through 04:59")
	}
	if IsWeekend(at(2026, 10, 16, 12), seoul) {
		t.Fatal("Friday is not a weekend")
	}
}

func TestStartOfWeekIsMonday(t *testing.T) {
	// Sunday 2026-10-18 belongs to the week starting Monday 2026-10-12.
	ws := StartOfWeek(at(2026, 10, 18, 15), seoul)
	if ws.Weekday() != time.Monday || ws.Day() != 12 {
		t.Fatalf("unexpected week start %v", ws)
	}
	if key := PeriodKey(catalog.PeriodWeekly, at(2026, 10, 18, 15), seoul); key != "2026-W42" {
		t.Fatalf("unexpected weekly key %s", key)
	}
	if key := PeriodKey(catalog.PeriodDaily, at(2026, 10, 18, 15), seoul); key != "2026-10-18" {
		t.Fatalf("unexpected daily key %s", key)
	}
}

func TestCountersFrom(t *testing.T) {
	now := at(2026, 10, 18, 20) // Sunday
	checkins := []models.Checkin{
		{Category: "beach", Region: "busan", Timestamp: at(2026, 10, 11, 10).UnixMilli()}, // previous week
		{Category: "cafe", Region: "seoul", Timestamp: at(2026, 10, 13, 10).UnixMilli()},
		{Category: "beach", Region: "busan", Timestamp: at(2026, 10, 17, 10).UnixMilli()},
		{Category: "mountain", Region: "jeju", Timestamp: at(2026, 10, 18, 9).UnixMilli()},
		{Category: "mountain", Region: "jeju", Timestamp: at(2026, 10, 18, 19).UnixMilli()},
	}
	places := map[string]models.VisitedPlace{
		"a": {PlaceID: "a", FirstVisit: at(2026, 10, 18, 9).UnixMilli()},
		"b": {PlaceID: "b", FirstVisit: at(2026, 10, 13, 10).UnixMilli()},
	}
	c := CountersFrom(checkins, places, 2, now, seoul)
	if c.CheckinsToday != 2 {
		t.Errorf("CheckinsToday = %d, want 2", c.CheckinsToday)
	}
	if c.CheckinsThisWeek != 4 {
		t.Errorf("CheckinsThisWeek = %d, want 4", c.CheckinsThisWeek)
	}
	if c.WeekendCheckins != 3 {
		t.Errorf("WeekendCheckins = %d, want 3", c.WeekendCheckins)
	}
	if c.NewPlacesToday != 1 {
		t.Errorf("NewPlacesToday = %d, want 1", c.NewPlacesToday)
	}
	if c.ReviewsToday != 2 {
		t.Errorf("ReviewsToday = %d, want 2", c.ReviewsToday)
	}
	if len(c.CategoriesThisWeek) != 3 || len(c.RegionsThisWeek) != 3 {
		t.Errorf("distinct sets wrong: %v %v", c.CategoriesThisWeek, c.RegionsThisWeek)
	}
}
