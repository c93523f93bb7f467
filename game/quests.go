package game

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/cppla/travelquest/catalog"
	"github.com/cppla/travelquest/models"
	"github.com/cppla/travelquest/progression"
)

// QuestBoard is the state of the current daily and weekly quests.
type QuestBoard struct {
	Daily         []progression.QuestStatus  `json:"daily"`
	Weekly        []progression.QuestStatus  `json:"weekly"`
	Counters      progression.PeriodCounters `json:"counters"`
	EarnedRewards int                        `json:"earned_rewards"`
	TotalRewards  int                        `json:"total_rewards"`
}

// ClaimResult is the outcome of a quest reward claim.
type ClaimResult struct {
	Quest catalog.Quest         `json:"quest"`
	Stats models.UserStatistics `json:"stats"`
}

func questOpID(q catalog.Quest, periodKey string) string {
	return fmt.Sprintf("quest:%s:%s", q.ID, periodKey)
}

func (s *Service) counters(ctx context.Context, userID uint, reviewsToday int) (progression.PeriodCounters, error) {
	checkins, err := s.store.Checkins(ctx, userID)
	if err != nil {
		return progression.PeriodCounters{}, err
	}
	places, err := s.store.VisitedPlaces(ctx, userID)
	if err != nil {
		return progression.PeriodCounters{}, err
	}
	return progression.CountersFrom(checkins, places, reviewsToday, s.now(), s.loc), nil
}

// Quests evaluates the daily and weekly quests. reviewsToday comes from the
// review store, which the progress store does not track per day.
func (s *Service) Quests(ctx context.Context, userID uint, reviewsToday int) (*QuestBoard, error) {
	counters, err := s.counters(ctx, userID, reviewsToday)
	if err != nil {
		return nil, fmt.Errorf("quest board: %w", err)
	}
	now := s.now()
	board := &QuestBoard{
		Daily:    progression.ActiveQuests(catalog.DailyQuests(), counters),
		Weekly:   progression.ActiveQuests(catalog.WeeklyQuests(), counters),
		Counters: counters,
	}
	for _, set := range [][]catalog.Quest{catalog.DailyQuests(), catalog.WeeklyQuests()} {
		for _, q := range progression.CompletedQuests(set, counters) {
			board.EarnedRewards += q.Reward
		}
	}
	for _, list := range [][]progression.QuestStatus{board.Daily, board.Weekly} {
		for i := range list {
			q := &list[i]
			board.TotalRewards += q.Reward
			key := progression.PeriodKey(q.Period, now, s.loc)
			claimed, err := s.store.Applied(ctx, userID, questOpID(q.Quest, key))
			if err != nil {
				return nil, fmt.Errorf("quest board: %w", err)
			}
			q.Claimed = claimed
		}
	}
	return board, nil
}

// ClaimQuest adds a completed quest's reward to the user's points, at most once
// per daily or weekly period.
func (s *Service) ClaimQuest(ctx context.Context, userID uint, questID string, reviewsToday int) (*ClaimResult, error) {
	q, ok := catalog.QuestByID(questID)
	if !ok {
		return nil, ErrUnknownQuest
	}
	var res *ClaimResult
	err := s.serialized(ctx, userID, func(ctx context.Context) error {
		counters, err := s.counters(ctx, userID, reviewsToday)
		if err != nil {
			return fmt.Errorf("claim quest: %w", err)
		}
		if !progression.QuestComplete(q, counters) {
			return ErrQuestIncomplete
		}
		opID := questOpID(q, progression.PeriodKey(q.Period, s.now(), s.loc))
		stats, applied, err := s.store.ApplyPoints(ctx, userID, opID, q.Reward)
		if err != nil {
			return fmt.Errorf("claim quest: %w", err)
		}
		if !applied {
			return ErrQuestClaimed
		}
		s.log.Info("quest reward claimed",
			zap.Uint("user_id", userID),
			zap.String("quest_id", q.ID),
			zap.Int("reward", q.Reward),
		)
		res = &ClaimResult{Quest: q, Stats: stats}
		return nil
	})
	return res, err
}
