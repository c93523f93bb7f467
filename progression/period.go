package progression

import (
	"fmt"
	"sort"
	"time"

	"github.com/cppla/travelquest/catalog"
	"github.com/cppla/travelquest/models"
)

// StartOfDay returns local midnight of t's calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// StartOfWeek returns Monday 00:00 of t's week in loc.
func StartOfWeek(t time.Time, loc *time.Location) time.Time {
	day := StartOfDay(t, loc)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// CalendarDays counts local calendar days from a to b. It ignores the time of
// day, so 23:59 and 00:01 on the next day are one day apart.
func CalendarDays(a, b time.Time, loc *time.Location) int {
	a, b = a.In(loc), b.In(loc)
	da := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	db := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da).Hours() / 24)
}

// IsWeekend reports whether t falls on Saturday or Sunday in loc.
func IsWeekend(t time.Time, loc *time.Location) bool {
	switch t.In(loc).Weekday() {
	case time.Saturday, time.Sunday:
		return true
	}
	return false
}

// IsNight reports whether t is between 22:00 and 04:59 in loc.
func IsNight(t time.Time, loc *time.Location) bool {
	h := t.In(loc).Hour()
	return h >= 22 || h <= 4
}

// PeriodKey names the window a quest period covers at now, e.g. "2026-10-15" or "2026-W42".
func PeriodKey(period catalog.QuestPeriod, now time.Time, loc *time.Location) string {
	now = now.In(loc)
	if period == catalog.PeriodWeekly {
		year, week := StartOfWeek(now, loc).ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	}
	return now.Format("2006-01-02")
}

// CountersFrom derives the period counters from the check-in log and place registry.
// reviewsToday comes from the review store, which the progress store does not track.
func CountersFrom(checkins []models.Checkin, places map[string]models.VisitedPlace, reviewsToday int, now time.Time, loc *time.Location) PeriodCounters {
	dayStart := StartOfDay(now, loc)
	dayEnd := dayStart.AddDate(0, 0, 1)
	weekStart := StartOfWeek(now, loc)
	weekEnd := weekStart.AddDate(0, 0, 7)

	c := PeriodCounters{ReviewsToday: reviewsToday}
	categories := map[string]struct{}{}
	regions := map[string]struct{}{}

	for _, ci := range checkins {
		at := ci.Time(loc)
		if !at.Before(dayStart) && at.Before(dayEnd) {
			c.CheckinsToday++
		}
		if at.Before(weekStart) || !at.Before(weekEnd) {
			continue
		}
		c.CheckinsThisWeek++
		if ci.Category != "" {
			categories[ci.Category] = struct{}{}
		}
		if ci.Region != "" {
			regions[ci.Region] = struct{}{}
		}
		if IsWeekend(at, loc) {
			c.WeekendCheckins++
		}
	}

	for _, p := range places {
		first := time.UnixMilli(p.FirstVisit).In(loc)
		if !first.Before(dayStart) && first.Before(dayEnd) {
			c.NewPlacesToday++
		}
	}

	c.CategoriesThisWeek = sortedKeys(categories)
	c.RegionsThisWeek = sortedKeys(regions)
	return c
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
