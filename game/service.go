// Package game turns check-ins, reviews, photos and region completions into
// persisted progression: statistics, streaks, achievements, levels and quests.
package game

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/cppla/travelquest/achievement"
	"github.com/cppla/travelquest/store"
)

// Service is the check-in orchestrator and the rest of the progression API.
// Every mutating call for a user is serialized through a per-user queue.
type Service struct {
	store     store.Store
	evaluator *achievement.Evaluator
	queue     *Queue
	log       *zap.Logger
	loc       *time.Location
	now       func() time.Time
	maxSkew   time.Duration
}

// Option configures a Service.
type Option func(*Service)

// WithLocation sets the zone used for calendar days, night hours and weekends.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithQueueDepth sizes each user's lane buffer.
func WithQueueDepth(depth int) Option {
	return func(s *Service) { s.queue = NewQueue(depth) }
}

// WithMaxSkew rejects check-in timestamps further than d from the service clock.
// Zero accepts any timestamp.
func WithMaxSkew(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.maxSkew = d
		}
	}
}

// NewService builds the progression service over st. A nil log discards output.
func NewService(st store.Store, log *zap.Logger, opts ...Option) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Service{
		store:     st,
		evaluator: achievement.NewEvaluator(st),
		queue:     NewQueue(0),
		log:       log,
		loc:       time.Local,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Location returns the zone the service computes calendar days in.
func (s *Service) Location() *time.Location { return s.loc }

// serialized runs fn on the user's lane. Once queued the job runs to completion
// even if the caller goes away, so it gets a context that is never cancelled.
func (s *Service) serialized(ctx context.Context, userID uint, fn func(ctx context.Context) error) error {
	detached := context.WithoutCancel(ctx)
	return s.queue.Do(userID, func() error { return fn(detached) })
}
