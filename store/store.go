// Package store persists per-user progression: statistics, the check-in log,
// unlocked achievements, visited places and the applied-points ledger.
package store

import (
	"context"
	"fmt"

	"github.com/cppla/travelquest/models"
)

// Store is the progress store contract. Each collection is read and written as
// a whole document, except where an atomic primitive is named.
type Store interface {
	// Stats returns the user's statistics, or the zero defaults when absent.
	Stats(ctx context.Context, userID uint) (models.UserStatistics, error)
	SaveStats(ctx context.Context, userID uint, stats models.UserStatistics) error

	// AppendCheckin appends to the log, assigning an id and timestamp when unset.
	AppendCheckin(ctx context.Context, userID uint, c models.Checkin) (models.Checkin, error)
	Checkins(ctx context.Context, userID uint) ([]models.Checkin, error)

	Unlocked(ctx context.Context, userID uint) ([]string, error)
	// Unlock adds achievementID if absent and reports whether it was new.
	Unlock(ctx context.Context, userID uint, achievementID string) (bool, error)

	VisitedPlaces(ctx context.Context, userID uint) (map[string]models.VisitedPlace, error)
	// MarkVisited creates the place record on first visit or bumps its count.
	MarkVisited(ctx context.Context, userID uint, place models.VisitedPlace, at int64) (models.VisitedPlace, error)

	// ApplyPoints adds delta to TotalPoints once per opID. A repeated opID
	// leaves the points untouched and reports applied=false.
	ApplyPoints(ctx context.Context, userID uint, opID string, delta int) (stats models.UserStatistics, applied bool, err error)
	// Applied reports whether opID is already in the ledger.
	Applied(ctx context.Context, userID uint, opID string) (bool, error)

	// MarkRegionCompleted records a completed region and returns how many
	// distinct regions the user has completed.
	MarkRegionCompleted(ctx context.Context, userID uint, regionID string) (int, error)

	// Reset clears every collection of the user.
	Reset(ctx context.Context, userID uint) error
}

// PersistenceError wraps any failure to read or write the store.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &PersistenceError{Op: op, Err: err}
}

// IDFunc generates check-in ids. Ids must sort in generation order.
type IDFunc func() string
