package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/cppla/travelquest/models"
)

func sequentialIDs() IDFunc {
	var (
		mu sync.Mutex
		n  int
	)
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("c%04d", n)
	}
}

func newRedisStore(t *testing.T) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	rc := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rc.Close() })
	return NewRedisStore(rc, "test", sequentialIDs())
}

func backends(t *testing.T) map[string]Store {
	return map[string]Store{
		"memory": NewMemoryStore(sequentialIDs()),
		"redis":  newRedisStore(t),
	}
}

func TestStatsDefaultsWhenAbsent(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			stats, err := s.Stats(context.Background(), 7)
			if err != nil {
				t.Fatalf("Stats: %v", err)
			}
			if stats.TotalPoints != 0 || stats.LastCheckinDate != nil {
				t.Fatalf("expected zero stats, got %+v", stats)
			}
			if stats.CategoryVisits == nil || stats.RegionVisits == nil {
				t.Fatalf("expected initialised maps")
			}
		})
	}
}

func TestSaveAndReadStats(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			stats := models.NewUserStatistics()
			stats.TotalCheckins = 3
			stats.CategoryVisits["mountain"] = 2
			last := int64(1700000000000)
			stats.LastCheckinDate = &last
			if err := s.SaveStats(ctx, 1, stats); err != nil {
				t.Fatalf("SaveStats: %v", err)
			}
			got, err := s.Stats(ctx, 1)
			if err != nil {
				t.Fatalf("Stats: %v", err)
			}
			if got.TotalCheckins != 3 || got.CategoryVisits["mountain"] != 2 {
				t.Fatalf("unexpected stats %+v", got)
			}
			if got.LastCheckinDate == nil || *got.LastCheckinDate != last {
				t.Fatalf("last check-in date not kept")
			}
		})
	}
}

func TestAppendCheckinAssignsIDAndKeepsOrder(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			first, err := s.AppendCheckin(ctx, 1, models.Checkin{PlaceID: "a"})
			if err != nil {
				t.Fatalf("AppendCheckin: %v", err)
			}
			if first.ID == "" || first.Timestamp == 0 {
				t.Fatalf("expected assigned id and timestamp, got %+v", first)
			}
			if _, err := s.AppendCheckin(ctx, 1, models.Checkin{PlaceID: "b", Timestamp: 42}); err != nil {
				t.Fatalf("AppendCheckin: %v", err)
			}
			log, err := s.Checkins(ctx, 1)
			if err != nil {
				t.Fatalf("Checkins: %v", err)
			}
			if len(log) != 2 || log[0].PlaceID != "a" || log[1].PlaceID != "b" {
				t.Fatalf("unexpected log %+v", log)
			}
			if log[1].Timestamp != 42 {
				t.Fatalf("explicit timestamp overwritten: %d", log[1].Timestamp)
			}
			if !(log[0].ID < log[1].ID) {
				t.Fatalf("ids not in generation order: %s %s", log[0].ID, log[1].ID)
			}
		})
	}
}

func TestUnlockIsIdempotent(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			added, err := s.Unlock(ctx, 1, "first_checkin")
			if err != nil || !added {
				t.Fatalf("first unlock: added=%v err=%v", added, err)
			}
			added, err = s.Unlock(ctx, 1, "first_checkin")
			if err != nil || added {
				t.Fatalf("second unlock: added=%v err=%v", added, err)
			}
			ids, err := s.Unlocked(ctx, 1)
			if err != nil {
				t.Fatalf("Unlocked: %v", err)
			}
			if len(ids) != 1 || ids[0] != "first_checkin" {
				t.Fatalf("unexpected unlocked set %v", ids)
			}
		})
	}
}

func TestMarkVisitedCountsRepeats(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			place := models.VisitedPlace{PlaceID: "p1", Name: "Seoraksan"}
			first, err := s.MarkVisited(ctx, 1, place, 100)
			if err != nil {
				t.Fatalf("MarkVisited: %v", err)
			}
			if first.VisitCount != 1 || first.FirstVisit != 100 || first.LastVisit != 100 {
				t.Fatalf("unexpected first visit %+v", first)
			}
			second, err := s.MarkVisited(ctx, 1, place, 200)
			if err != nil {
				t.Fatalf("MarkVisited: %v", err)
			}
			if second.VisitCount != 2 || second.FirstVisit != 100 || second.LastVisit != 200 {
				t.Fatalf("unexpected repeat visit %+v", second)
			}
			places, err := s.VisitedPlaces(ctx, 1)
			if err != nil {
				t.Fatalf("VisitedPlaces: %v", err)
			}
			if places["p1"].VisitCount != 2 || places["p1"].Name != "Seoraksan" {
				t.Fatalf("unexpected places %+v", places)
			}
		})
	}
}

func TestApplyPointsOncePerOperation(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			stats, applied, err := s.ApplyPoints(ctx, 1, "op-1", 10)
			if err != nil || !applied || stats.TotalPoints != 10 {
				t.Fatalf("first apply: stats=%+v applied=%v err=%v", stats, applied, err)
			}
			stats, applied, err = s.ApplyPoints(ctx, 1, "op-1", 10)
			if err != nil || applied || stats.TotalPoints != 10 {
				t.Fatalf("replayed apply: stats=%+v applied=%v err=%v", stats, applied, err)
			}
			if ok, err := s.Applied(ctx, 1, "op-1"); err != nil || !ok {
				t.Fatalf("op-1 not in ledger: ok=%v err=%v", ok, err)
			}
			if ok, _ := s.Applied(ctx, 1, "op-2"); ok {
				t.Fatalf("op-2 reported applied before use")
			}
			stats, applied, err = s.ApplyPoints(ctx, 1, "op-2", 5)
			if err != nil || !applied || stats.TotalPoints != 15 {
				t.Fatalf("second op: stats=%+v applied=%v err=%v", stats, applied, err)
			}
		})
	}
}

func TestApplyPointsKeepsOtherStatFields(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			stats := models.NewUserStatistics()
			stats.TotalCheckins = 4
			if err := s.SaveStats(ctx, 1, stats); err != nil {
				t.Fatalf("SaveStats: %v", err)
			}
			if _, _, err := s.ApplyPoints(ctx, 1, "op", 20); err != nil {
				t.Fatalf("ApplyPoints: %v", err)
			}
			got, _ := s.Stats(ctx, 1)
			if got.TotalCheckins != 4 || got.TotalPoints != 20 {
				t.Fatalf("unexpected stats %+v", got)
			}
		})
	}
}

func TestApplyPointsConcurrent(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			var wg sync.WaitGroup
			for i := 0; i < 8; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					// every op id is used twice
					_, _, _ = s.ApplyPoints(ctx, 1, fmt.Sprintf("op-%d", i%4), 1)
				}(i)
			}
			wg.Wait()
			got, _ := s.Stats(ctx, 1)
			if got.TotalPoints > 4 {
				t.Fatalf("operation applied twice: %d points", got.TotalPoints)
			}
		})
	}
}

func TestMarkRegionCompleted(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			n, err := s.MarkRegionCompleted(ctx, 1, "jeju")
			if err != nil || n != 1 {
				t.Fatalf("first completion: n=%d err=%v", n, err)
			}
			n, err = s.MarkRegionCompleted(ctx, 1, "jeju")
			if err != nil || n != 1 {
				t.Fatalf("repeat completion: n=%d err=%v", n, err)
			}
			n, err = s.MarkRegionCompleted(ctx, 1, "busan")
			if err != nil || n != 2 {
				t.Fatalf("second region: n=%d err=%v", n, err)
			}
		})
	}
}

func TestResetClearsEverything(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			_, _ = s.AppendCheckin(ctx, 1, models.Checkin{PlaceID: "a"})
			_, _ = s.Unlock(ctx, 1, "first_checkin")
			_, _ = s.MarkVisited(ctx, 1, models.VisitedPlace{PlaceID: "a"}, 1)
			_, _, _ = s.ApplyPoints(ctx, 1, "op", 10)
			_, _ = s.MarkRegionCompleted(ctx, 1, "seoul")
			_, _ = s.AppendCheckin(ctx, 2, models.Checkin{PlaceID: "other"})

			if err := s.Reset(ctx, 1); err != nil {
				t.Fatalf("Reset: %v", err)
			}
			stats, _ := s.Stats(ctx, 1)
			log, _ := s.Checkins(ctx, 1)
			ids, _ := s.Unlocked(ctx, 1)
			places, _ := s.VisitedPlaces(ctx, 1)
			if stats.TotalPoints != 0 || len(log) != 0 || len(ids) != 0 || len(places) != 0 {
				t.Fatalf("user 1 not reset: stats=%+v log=%d ids=%d places=%d", stats, len(log), len(ids), len(places))
			}
			// the ledger is cleared too, so the same operation applies again
			if _, applied, _ := s.ApplyPoints(ctx, 1, "op", 10); !applied {
				t.Fatalf("ledger survived reset")
			}
			if n, _ := s.MarkRegionCompleted(ctx, 1, "busan"); n != 1 {
				t.Fatalf("completed regions survived reset")
			}
			other, _ := s.Checkins(ctx, 2)
			if len(other) != 1 {
				t.Fatalf("reset touched another user")
			}
		})
	}
}

func TestRedisStoreWrapsFailures(t *testing.T) {
	mr := miniredis.RunT(t)
	rc := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = rc.Close() })
	s := NewRedisStore(rc, "test", sequentialIDs())
	mr.Close()

	_, err := s.Stats(context.Background(), 1)
	var pe *PersistenceError
	if !errors.As(err, &pe) {
		t.Fatalf("expected PersistenceError, got %v", err)
	}
	if pe.Op != "read stats" {
		t.Fatalf("unexpected op %q", pe.Op)
	}
}
