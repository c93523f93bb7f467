package game

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/cppla/travelquest/achievement"
	"github.com/cppla/travelquest/catalog"
	"github.com/cppla/travelquest/models"
	"github.com/cppla/travelquest/progression"
)

// Profile is a read-only snapshot of a user's progression.
type Profile struct {
	Stats             models.UserStatistics     `json:"stats"`
	Level             catalog.Level             `json:"level"`
	Progress          progression.LevelProgress `json:"progress"`
	Unlocked          []string                  `json:"unlocked_achievements"`
	AchievementPoints int                       `json:"achievement_points"`
	VisitedPlaces     []models.VisitedPlace     `json:"visited_places"`
	CheckinCount      int                       `json:"checkin_count"`
}

// Profile loads the user's collections concurrently.
func (s *Service) Profile(ctx context.Context, userID uint) (*Profile, error) {
	var (
		stats    models.UserStatistics
		unlocked []string
		places   map[string]models.VisitedPlace
		checkins []models.Checkin
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats, err = s.store.Stats(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		unlocked, err = s.store.Unlocked(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		places, err = s.store.VisitedPlaces(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		checkins, err = s.store.Checkins(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	visited := make([]models.VisitedPlace, 0, len(places))
	for _, p := range places {
		visited = append(visited, p)
	}
	sort.Slice(visited, func(i, j int) bool {
		if visited[i].LastVisit != visited[j].LastVisit {
			return visited[i].LastVisit > visited[j].LastVisit
		}
		return visited[i].PlaceID < visited[j].PlaceID
	})

	return &Profile{
		Stats:             stats,
		Level:             progression.LevelFor(stats.TotalPoints),
		Progress:          progression.ProgressToNext(stats.TotalPoints),
		Unlocked:          unlocked,
		AchievementPoints: achievement.UnlockedPoints(unlocked),
		VisitedPlaces:     visited,
		CheckinCount:      len(checkins),
	}, nil
}

// Stats returns the user's statistics.
func (s *Service) Stats(ctx context.Context, userID uint) (models.UserStatistics, error) {
	return s.store.Stats(ctx, userID)
}

// RecentCheckins returns up to limit check-ins, newest first.
func (s *Service) RecentCheckins(ctx context.Context, userID uint, limit int) ([]models.Checkin, error) {
	if limit <= 0 {
		limit = 10
	}
	log, err := s.store.Checkins(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("recent check-ins: %w", err)
	}
	out := make([]models.Checkin, 0, limit)
	for i := len(log) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, log[i])
	}
	return out, nil
}

// VisitCount returns how often the user has checked in at placeID.
func (s *Service) VisitCount(ctx context.Context, userID uint, placeID string) (int, error) {
	places, err := s.store.VisitedPlaces(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("visit count: %w", err)
	}
	return places[placeID].VisitCount, nil
}

func (s *Service) HasVisited(ctx context.Context, userID uint, placeID string) (bool, error) {
	n, err := s.VisitCount(ctx, userID, placeID)
	return n > 0, err
}

// Achievements returns the user's achievement board.
func (s *Service) Achievements(ctx context.Context, userID uint) ([]achievement.Progress, error) {
	stats, err := s.store.Stats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("achievement board: %w", err)
	}
	unlocked, err := s.store.Unlocked(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("achievement board: %w", err)
	}
	return achievement.Board(stats, unlocked), nil
}
