package game

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cppla/travelquest/achievement"
	"github.com/cppla/travelquest/catalog"
	"github.com/cppla/travelquest/models"
)

// UpdateResult is the outcome of a review, photo or region update.
type UpdateResult struct {
	Stats           models.UserStatistics `json:"stats"`
	NewAchievements []catalog.Achievement `json:"new_achievements"`
}

// RecordReview counts one written review.
func (s *Service) RecordReview(ctx context.Context, userID uint) (*UpdateResult, error) {
	return s.update(ctx, userID, "record review", func(st *models.UserStatistics) { st.TotalReviews++ })
}

// RecordPhotos counts count uploaded photos.
func (s *Service) RecordPhotos(ctx context.Context, userID uint, count int) (*UpdateResult, error) {
	if count <= 0 {
		return nil, &ValidationError{Fields: []string{"count"}}
	}
	return s.update(ctx, userID, "record photos", func(st *models.UserStatistics) { st.TotalPhotos += count })
}

// CompleteRegion marks a region as conquered. CompletedRegions is set from the
// size of the completed set, so completing the same region again changes
// nothing and a retry after a failed update still counts the region.
func (s *Service) CompleteRegion(ctx context.Context, userID uint, regionID string) (*UpdateResult, error) {
	if !catalog.IsRegion(regionID) {
		return nil, ErrUnknownRegion
	}
	var res *UpdateResult
	err := s.serialized(ctx, userID, func(ctx context.Context) error {
		completed, err := s.store.MarkRegionCompleted(ctx, userID, regionID)
		if err != nil {
			return fmt.Errorf("complete region: %w", err)
		}
		res, err = s.apply(ctx, userID, "complete region", func(st *models.UserStatistics) { st.CompletedRegions = completed })
		return err
	})
	return res, err
}

// Reset clears every collection of the user.
func (s *Service) Reset(ctx context.Context, userID uint) error {
	err := s.serialized(ctx, userID, func(ctx context.Context) error {
		return s.store.Reset(ctx, userID)
	})
	if err != nil {
		return fmt.Errorf("reset progress: %w", err)
	}
	s.log.Info("progress reset", zap.Uint("user_id", userID))
	return nil
}

func (s *Service) update(ctx context.Context, userID uint, op string, mutate func(*models.UserStatistics)) (*UpdateResult, error) {
	var res *UpdateResult
	err := s.serialized(ctx, userID, func(ctx context.Context) error {
		var err error
		res, err = s.apply(ctx, userID, op, mutate)
		return err
	})
	return res, err
}

// apply runs inside the user's lane.
func (s *Service) apply(ctx context.Context, userID uint, op string, mutate func(*models.UserStatistics)) (*UpdateResult, error) {
	stats, err := s.store.Stats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	mutate(&stats)
	if err := s.store.SaveStats(ctx, userID, stats); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	unlocked, err := s.store.Unlocked(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	earned, err := s.evaluator.Evaluate(ctx, userID, stats, unlocked)
	if err != nil {
		return nil, fmt.Errorf("%s: evaluate achievements: %w", op, err)
	}
	if len(earned) > 0 {
		settled, _, err := s.store.ApplyPoints(ctx, userID, uuid.NewString(), achievement.SumPoints(earned))
		if err != nil {
			return nil, fmt.Errorf("%s: settle points: %w", op, err)
		}
		stats = settled
	}
	return &UpdateResult{Stats: stats, NewAchievements: earned}, nil
}
