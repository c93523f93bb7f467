// Package progression derives levels and quest progress from statistics.
// Everything here is pure: no storage access and no clock reads.
package progression

import (
	"sort"

	"github.com/cppla/travelquest/catalog"
)

// LevelProgress describes how far a point total is into its level.
type LevelProgress struct {
	Level      catalog.Level  `json:"level"`
	Current    int            `json:"current"`
	Max        int            `json:"max"`
	Percentage int            `json:"percentage"`
	Next       *catalog.Level `json:"next_level,omitempty"`
}

// LevelFor returns the highest level whose threshold does not exceed points.
// Totals below the first threshold map to the first level.
func LevelFor(points int) catalog.Level {
	levels := catalog.Levels()
	idx := sort.Search(len(levels), func(i int) bool { return levels[i].MinPoints > points })
	if idx == 0 {
		return levels[0]
	}
	return levels[idx-1]
}

// ProgressToNext reports progress towards the next level. At the top level the
// result is terminal: Current and Max equal points, Percentage is 100 and Next is nil.
func ProgressToNext(points int) LevelProgress {
	if points < 0 {
		points = 0
	}
	levels := catalog.Levels()
	current := LevelFor(points)

	var next *catalog.Level
	for i := range levels {
		if levels[i].Level == current.Level+1 {
			next = &levels[i]
			break
		}
	}
	if next == nil {
		return LevelProgress{Level: current, Current: points, Max: points, Percentage: 100}
	}

	cur := points - current.MinPoints
	span := next.MinPoints - current.MinPoints
	return LevelProgress{
		Level:      current,
		Current:    cur,
		Max:        span,
		Percentage: cur * 100 / span,
		Next:       next,
	}
}
