package game

import (
	"context"
	"errors"
	"testing"

	"github.com/cppla/travelquest/progression"
)

func findQuest(list []progression.QuestStatus, id string) progression.QuestStatus {
	for _, q := range list {
		if q.ID == id {
			return q
		}
	}
	return progression.QuestStatus{}
}

func TestQuestBoard(t *testing.T) {
	svc, clock := newTestService(t, nil)
	ctx := context.Background()
	clock.Set(kst(2026, 10, 17, 20, 0)) // Saturday
	for i, c := range []struct{ cat, region string }{{"cafe", "seoul"}, {"beach", "busan"}, {"mountain", "jeju"}} {
		if _, err := svc.CheckIn(ctx, 1, visit(c.cat, c.cat, c.region, kst(2026, 10, 17, 10+i, 0))); err != nil {
			t.Fatalf("CheckIn: %v", err)
		}
	}
	board, err := svc.Quests(ctx, 1, 1)
	if err != nil {
		t.Fatalf("Quests: %v", err)
	}
	if len(board.Daily) != 4 || len(board.Weekly) != 4 {
		t.Fatalf("unexpected board size %d/%d", len(board.Daily), len(board.Weekly))
	}
	for _, id := range []string{"daily_checkin_1", "daily_checkin_3", "daily_new_place", "daily_review"} {
		if q := findQuest(board.Daily, id); !q.Complete {
			t.Fatalf("%s should be complete: %+v", id, q)
		}
	}
	if q := findQuest(board.Weekly, "weekly_regions"); !q.Complete || q.Progress != 3 {
		t.Fatalf("weekly_regions: %+v", q)
	}
	if q := findQuest(board.Weekly, "weekly_weekend"); q.Complete || q.Progress != 3 {
		t.Fatalf("weekly_weekend: %+v", q)
	}
	// daily 50+150+100+80, weekly_regions 600
	if board.EarnedRewards != 980 {
		t.Fatalf("unexpected earned rewards %d", board.EarnedRewards)
	}
	if board.TotalRewards != 380+1850 {
		t.Fatalf("unexpected total rewards %d", board.TotalRewards)
	}
}

func TestClaimQuestOncePerPeriod(t *testing.T) {
	svc, clock := newTestService(t, nil)
	ctx := context.Background()
	clock.Set(kst(2026, 10, 15, 20, 0))
	if _, err := svc.CheckIn(ctx, 1, visit("p", "cafe", "seoul", kst(2026, 10, 15, 10, 0))); err != nil {
		t.Fatalf("CheckIn: %v", err)
	}

	res, err := svc.ClaimQuest(ctx, 1, "daily_checkin_1", 0)
	if err != nil {
		t.Fatalf("ClaimQuest: %v", err)
	}
	if res.Stats.TotalPoints != 10+50 {
		t.Fatalf("unexpected points %d", res.Stats.TotalPoints)
	}
	if _, err := svc.ClaimQuest(ctx, 1, "daily_checkin_1", 0); !errors.Is(err, ErrQuestClaimed) {
		t.Fatalf("expected ErrQuestClaimed, got %v", err)
	}
	if _, err := svc.ClaimQuest(ctx, 1, "daily_checkin_3", 0); !errors.Is(err, ErrQuestIncomplete) {
		t.Fatalf("expected ErrQuestIncomplete, got %v", err)
	}
	if _, err := svc.ClaimQuest(ctx, 1, "daily_nothing", 0); !errors.Is(err, ErrUnknownQuest) {
		t.Fatalf("expected ErrUnknownQuest, got %v", err)
	}

	board, err := svc.Quests(ctx, 1, 0)
	if err != nil {
		t.Fatalf("Quests: %v", err)
	}
	if q := findQuest(board.Daily, "daily_checkin_1"); !q.Claimed {
		t.Fatalf("claimed flag missing: %+v", q)
	}

	// the next day opens a new window
	clock.Set(kst(2026, 10, 16, 9, 0))
	if _, err := svc.ClaimQuest(ctx, 1, "daily_checkin_1", 0); !errors.Is(err, ErrQuestIncomplete) {
		t.Fatalf("expected ErrQuestIncomplete on a new day, got %v", err)
	}
	if _, err := svc.CheckIn(ctx, 1, visit("p", "cafe", "seoul", kst(2026, 10, 16, 9, 0))); err != nil {
		t.Fatalf("CheckIn: %v", err)
	}
	res, err = svc.ClaimQuest(ctx, 1, "daily_checkin_1", 0)
	if err != nil {
		t.Fatalf("ClaimQuest next day: %v", err)
	}
	if res.Stats.TotalPoints != 10+50+50 {
		t.Fatalf("unexpected points %d", res.Stats.TotalPoints)
	}
}
