package achievement

import (
	"github.com/cppla/travelquest/catalog"
	"github.com/cppla/travelquest/models"
)

// Progress is one row of the achievement board.
type Progress struct {
	catalog.Achievement
	Unlocked   bool `json:"unlocked"`
	Current    int  `json:"current"`
	Percentage int  `json:"percentage"`
}

// Board lists every achievement in definition order with how far stats are from it.
func Board(stats models.UserStatistics, unlocked []string) []Progress {
	have := make(map[string]struct{}, len(unlocked))
	for _, id := range unlocked {
		have[id] = struct{}{}
	}
	defs := catalog.Achievements()
	out := make([]Progress, 0, len(defs))
	for _, a := range defs {
		_, done := have[a.ID]
		cur := a.Condition.Value(stats)
		if cur > a.Condition.Threshold {
			cur = a.Condition.Threshold
		}
		pct := 0
		if a.Condition.Threshold > 0 {
			pct = cur * 100 / a.Condition.Threshold
		}
		if done {
			pct = 100
		}
		out = append(out, Progress{Achievement: a, Unlocked: done, Current: cur, Percentage: pct})
	}
	return out
}

// UnlockedPoints totals the points of the achievements in unlocked.
func UnlockedPoints(unlocked []string) int {
	total := 0
	for _, id := range unlocked {
		if a, ok := catalog.AchievementByID(id); ok {
			total += a.Points
		}
	}
	return total
}
