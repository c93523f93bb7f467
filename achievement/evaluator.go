// Package achievement decides which achievements a user has newly earned.
package achievement

import (
	"context"

	"github.com/cppla/travelquest/catalog"
	"github.com/cppla/travelquest/models"
)

// Unlocker is the part of the progress store the evaluator writes to.
type Unlocker interface {
	Unlock(ctx context.Context, userID uint, achievementID string) (bool, error)
}

// Evaluator walks the achievement catalog in definition order.
type Evaluator struct {
	unlocker    Unlocker
	definitions []catalog.Achievement
}

// NewEvaluator creates an evaluator over the built-in catalog.
func NewEvaluator(u Unlocker) *Evaluator {
	return &Evaluator{unlocker: u, definitions: catalog.Achievements()}
}

// Evaluate unlocks every achievement whose condition stats satisfy and that is
// not yet in unlocked. Only achievements the store reports as newly added are
// returned, so calling it again with the same inputs yields nothing. On a store
// failure it returns no achievements and the error.
func (e *Evaluator) Evaluate(ctx context.Context, userID uint, stats models.UserStatistics, unlocked []string) ([]catalog.Achievement, error) {
	have := make(map[string]struct{}, len(unlocked))
	for _, id := range unlocked {
		have[id] = struct{}{}
	}

	var earned []catalog.Achievement
	for _, a := range e.definitions {
		if _, ok := have[a.ID]; ok {
			continue
		}
		if !a.Condition.Satisfied(stats) {
			continue
		}
		added, err := e.unlocker.Unlock(ctx, userID, a.ID)
		if err != nil {
			return nil, err
		}
		if added {
			earned = append(earned, a)
		}
	}
	return earned, nil
}

// SumPoints totals the points of the given achievements.
func SumPoints(list []catalog.Achievement) int {
	total := 0
	for _, a := range list {
		total += a.Points
	}
	return total
}
