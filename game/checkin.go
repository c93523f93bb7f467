package game

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/cppla/travelquest/achievement"
	"github.com/cppla/travelquest/catalog"
	"github.com/cppla/travelquest/models"
	"github.com/cppla/travelquest/progression"
)

// CheckinInput is one visit reported by the client. Timestamp is unix millis;
// zero means now. IsFirstDiscovery is taken as reported.
type CheckinInput struct {
	PlaceID          string
	Name             string
	Category         string
	Region           string
	Latitude         float64
	Longitude        float64
	Address          string
	IsFirstDiscovery bool
	Timestamp        int64
}

// Validate checks the required fields and coordinate ranges.
func (in CheckinInput) Validate() error {
	var bad []string
	if in.PlaceID == "" {
		bad = append(bad, "place_id")
	}
	if in.Name == "" {
		bad = append(bad, "name")
	}
	if in.Category == "" {
		bad = append(bad, "category")
	}
	if in.Region == "" {
		bad = append(bad, "region")
	}
	if in.Latitude < -90 || in.Latitude > 90 {
		bad = append(bad, "latitude")
	}
	if in.Longitude < -180 || in.Longitude > 180 {
		bad = append(bad, "longitude")
	}
	if len(bad) > 0 {
		return &ValidationError{Fields: bad}
	}
	return nil
}

// CheckinResult is the outcome of a settled check-in.
type CheckinResult struct {
	Stats           models.UserStatistics `json:"stats"`
	NewAchievements []catalog.Achievement `json:"new_achievements"`
	Checkin         models.Checkin        `json:"checkin"`
	Place           models.VisitedPlace   `json:"place"`
	Level           catalog.Level         `json:"level"`
	LevelUp         bool                  `json:"level_up"`
}

// CheckIn records a visit and settles any achievements it earns.
func (s *Service) CheckIn(ctx context.Context, userID uint, in CheckinInput) (*CheckinResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if !s.timestampAllowed(in.Timestamp) {
		return nil, &ValidationError{Fields: []string{"timestamp"}}
	}
	var res *CheckinResult
	err := s.serialized(ctx, userID, func(ctx context.Context) error {
		var err error
		res, err = s.checkIn(ctx, userID, in)
		return err
	})
	return res, err
}

// timestampAllowed reports whether a client timestamp lies within maxSkew of now.
// Zero means "now" and is always allowed.
func (s *Service) timestampAllowed(ts int64) bool {
	if ts == 0 || s.maxSkew <= 0 {
		return true
	}
	d := s.now().Sub(time.UnixMilli(ts))
	return d <= s.maxSkew && d >= -s.maxSkew
}

func (s *Service) checkIn(ctx context.Context, userID uint, in CheckinInput) (*CheckinResult, error) {
	ts := in.Timestamp
	if ts == 0 {
		ts = s.now().UnixMilli()
	}

	// RECEIVED -> LOGGED
	c, err := s.store.AppendCheckin(ctx, userID, models.Checkin{
		PlaceID:          in.PlaceID,
		Name:             in.Name,
		Category:         in.Category,
		Region:           in.Region,
		Latitude:         in.Latitude,
		Longitude:        in.Longitude,
		Address:          in.Address,
		IsFirstDiscovery: in.IsFirstDiscovery,
		Timestamp:        ts,
	})
	if err != nil {
		return nil, s.failed(userID, StateReceived, false, err)
	}

	// LOGGED -> PLACE_MARKED
	place, err := s.store.MarkVisited(ctx, userID, c.PlaceSnapshot(), c.Timestamp)
	if err != nil {
		return nil, s.failed(userID, StateLogged, true, err)
	}

	// PLACE_MARKED -> STATS_COMPUTED
	stats, err := s.store.Stats(ctx, userID)
	if err != nil {
		return nil, s.failed(userID, StatePlaceMarked, true, err)
	}
	before := progression.LevelFor(stats.TotalPoints)
	ApplyCheckin(&stats, c, s.loc)
	if err := s.store.SaveStats(ctx, userID, stats); err != nil {
		return nil, s.failed(userID, StatePlaceMarked, true, err)
	}

	// STATS_COMPUTED -> ACHIEVEMENTS_EVALUATED
	unlocked, err := s.store.Unlocked(ctx, userID)
	if err != nil {
		return nil, s.failed(userID, StateStatsComputed, true, err)
	}
	earned, err := s.evaluator.Evaluate(ctx, userID, stats, unlocked)
	if err != nil {
		return nil, s.failed(userID, StateStatsComputed, true, err)
	}

	// ACHIEVEMENTS_EVALUATED -> SETTLED
	if len(earned) > 0 {
		settled, _, err := s.store.ApplyPoints(ctx, userID, c.ID, achievement.SumPoints(earned))
		if err != nil {
			return nil, s.failed(userID, StateAchievementsEvaluated, true, err)
		}
		stats = settled
	}

	level := progression.LevelFor(stats.TotalPoints)
	s.log.Info("check-in settled",
		zap.Uint("user_id", userID),
		zap.String("checkin_id", c.ID),
		zap.String("place_id", c.PlaceID),
		zap.Int("new_achievements", len(earned)),
		zap.Int("total_points", stats.TotalPoints),
	)
	return &CheckinResult{
		Stats:           stats,
		NewAchievements: earned,
		Checkin:         c,
		Place:           place,
		Level:           level,
		LevelUp:         level.Level > before.Level,
	}, nil
}

func (s *Service) failed(userID uint, state State, logged bool, err error) error {
	s.log.Error("check-in failed",
		zap.Uint("user_id", userID),
		zap.String("state", string(state)),
		zap.Bool("logged", logged),
		zap.Error(err),
	)
	return &CheckinError{State: state, Logged: logged, Err: err}
}

// ApplyCheckin folds one check-in into stats: totals, category and region
// tallies, the streak, and the night, weekend and first-discovery counters.
func ApplyCheckin(stats *models.UserStatistics, c models.Checkin, loc *time.Location) {
	stats.Normalize()
	at := c.Time(loc)

	stats.TotalCheckins++
	stats.CategoryVisits[c.Category]++
	stats.RegionVisits[c.Region]++

	if stats.LastCheckinDate == nil {
		stats.CurrentStreak = 1
		if stats.MaxStreak < 1 {
			stats.MaxStreak = 1
		}
	} else {
		last := time.UnixMilli(*stats.LastCheckinDate)
		switch diff := progression.CalendarDays(last, at, loc); {
		case diff == 1:
			stats.CurrentStreak++
			if stats.MaxStreak < stats.CurrentStreak {
				stats.MaxStreak = stats.CurrentStreak
			}
		case diff > 1:
			stats.CurrentStreak = 1
		}
		// same day, or a timestamp older than the last check-in: streak unchanged
	}
	ts := c.Timestamp
	stats.LastCheckinDate = &ts

	if progression.IsNight(at, loc) {
		stats.NightCheckins++
	}
	if progression.IsWeekend(at, loc) {
		stats.WeekendTrips++
	}
	if c.IsFirstDiscovery {
		stats.FirstDiscoveries++
	}
}
