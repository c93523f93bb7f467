package progression

import "github.com/cppla/travelquest/catalog"

// PeriodCounters are the rolling-window tallies quests are measured against.
type PeriodCounters struct {
	CheckinsToday      int      `json:"checkins_today"`
	CheckinsThisWeek   int      `json:"checkins_this_week"`
	NewPlacesToday     int      `json:"new_places_today"`
	ReviewsToday       int      `json:"reviews_today"`
	CategoriesThisWeek []string `json:"categories_this_week"`
	RegionsThisWeek    []string `json:"regions_this_week"`
	WeekendCheckins    int      `json:"weekend_checkins"`
}

// Counter returns the tally a quest metric reads. Unknown metrics read 0.
func (c PeriodCounters) Counter(metric catalog.QuestMetric) int {
	switch metric {
	case catalog.QuestCheckinsToday:
		return c.CheckinsToday
	case catalog.QuestCheckinsWeek:
		return c.CheckinsThisWeek
	case catalog.QuestNewPlacesToday:
		return c.NewPlacesToday
	case catalog.QuestReviewsToday:
		return c.ReviewsToday
	case catalog.QuestDistinctCategoriesWeek:
		return len(c.CategoriesThisWeek)
	case catalog.QuestDistinctRegionsWeek:
		return len(c.RegionsThisWeek)
	case catalog.QuestWeekendCheckins:
		return c.WeekendCheckins
	default:
		return 0
	}
}

// QuestStatus is a quest together with its progress in the current window.
type QuestStatus struct {
	catalog.Quest
	Progress int  `json:"progress"`
	Complete bool `json:"is_complete"`
	Claimed  bool `json:"claimed"`
}

// QuestProgress returns the quest counter capped at the quest target.
func QuestProgress(q catalog.Quest, counters PeriodCounters) int {
	n := counters.Counter(q.Metric)
	if n > q.Target {
		return q.Target
	}
	if n < 0 {
		return 0
	}
	return n
}

// QuestComplete reports whether the quest target has been reached.
func QuestComplete(q catalog.Quest, counters PeriodCounters) bool {
	return QuestProgress(q, counters) >= q.Target
}

// ActiveQuests annotates every quest with its progress.
func ActiveQuests(quests []catalog.Quest, counters PeriodCounters) []QuestStatus {
	out := make([]QuestStatus, 0, len(quests))
	for _, q := range quests {
		p := QuestProgress(q, counters)
		out = append(out, QuestStatus{Quest: q, Progress: p, Complete: p >= q.Target})
	}
	return out
}

// CompletedQuests filters quests down to the ones whose target is met.
func CompletedQuests(quests []catalog.Quest, counters PeriodCounters) []catalog.Quest {
	var out []catalog.Quest
	for _, q := range quests {
		if QuestComplete(q, counters) {
			out = append(out, q)
		}
	}
	return out
}
