package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cppla/travelquest/models"
)

const maxWatchRetries = 5

// RedisStore keeps each user's collections under keys "<prefix>:user:<id>:<name>".
// Statistics are a JSON string, the log a list, places a hash, and the
// unlocked/ledger/region collections sets.
type RedisStore struct {
	rc     *redis.Client
	prefix string
	nextID IDFunc
}

// NewRedisStore creates a Redis backed store.
func NewRedisStore(rc *redis.Client, prefix string, nextID IDFunc) *RedisStore {
	if prefix == "" {
		prefix = "tq"
	}
	return &RedisStore{rc: rc, prefix: prefix, nextID: nextID}
}

func (s *RedisStore) key(userID uint, name string) string {
	return fmt.Sprintf("%s:user:%d:%s", s.prefix, userID, name)
}

type stringGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func readStats(ctx context.Context, c stringGetter, key string) (models.UserStatistics, error) {
	b, err := c.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.NewUserStatistics(), nil
	}
	if err != nil {
		return models.UserStatistics{}, err
	}
	var stats models.UserStatistics
	if err := json.Unmarshal(b, &stats); err != nil {
		return models.UserStatistics{}, fmt.Errorf("decode stats: %w", err)
	}
	stats.Normalize()
	return stats, nil
}

func (s *RedisStore) Stats(ctx context.Context, userID uint) (models.UserStatistics, error) {
	stats, err := readStats(ctx, s.rc, s.key(userID, "stats"))
	return stats, wrap("read stats", err)
}

func (s *RedisStore) SaveStats(ctx context.Context, userID uint, stats models.UserStatistics) error {
	b, err := json.Marshal(stats)
	if err != nil {
		return wrap("encode stats", err)
	}
	return wrap("save stats", s.rc.Set(ctx, s.key(userID, "stats"), b, 0).Err())
}

func (s *RedisStore) AppendCheckin(ctx context.Context, userID uint, c models.Checkin) (models.Checkin, error) {
	if c.ID == "" {
		c.ID = s.nextID()
	}
	if c.Timestamp == 0 {
		c.Timestamp = time.Now().UnixMilli()
	}
	b, err := json.Marshal(c)
	if err != nil {
		return models.Checkin{}, wrap("encode checkin", err)
	}
	if err := s.rc.RPush(ctx, s.key(userID, "checkins"), b).Err(); err != nil {
		return models.Checkin{}, wrap("append checkin", err)
	}
	return c, nil
}

func (s *RedisStore) Checkins(ctx context.Context, userID uint) ([]models.Checkin, error) {
	raw, err := s.rc.LRange(ctx, s.key(userID, "checkins"), 0, -1).Result()
	if err != nil {
		return nil, wrap("read checkins", err)
	}
	out := make([]models.Checkin, 0, len(raw))
	for _, item := range raw {
		var c models.Checkin
		if err := json.Unmarshal([]byte(item), &c); err != nil {
			return nil, wrap("decode checkin", err)
		}
		out = append(out, c)
	}
	return out, nil
}

func (s *RedisStore) Unlocked(ctx context.Context, userID uint) ([]string, error) {
	ids, err := s.rc.SMembers(ctx, s.key(userID, "achievements")).Result()
	if err != nil {
		return nil, wrap("read achievements", err)
	}
	sort.Strings(ids)
	return ids, nil
}

func (s *RedisStore) Unlock(ctx context.Context, userID uint, achievementID string) (bool, error) {
	n, err := s.rc.SAdd(ctx, s.key(userID, "achievements"), achievementID).Result()
	if err != nil {
		return false, wrap("unlock achievement", err)
	}
	return n == 1, nil
}

func (s *RedisStore) VisitedPlaces(ctx context.Context, userID uint) (map[string]models.VisitedPlace, error) {
	raw, err := s.rc.HGetAll(ctx, s.key(userID, "places")).Result()
	if err != nil {
		return nil, wrap("read places", err)
	}
	out := make(map[string]models.VisitedPlace, len(raw))
	for id, item := range raw {
		var p models.VisitedPlace
		if err := json.Unmarshal([]byte(item), &p); err != nil {
			return nil, wrap("decode place", err)
		}
		out[id] = p
	}
	return out, nil
}

func (s *RedisStore) MarkVisited(ctx context.Context, userID uint, place models.VisitedPlace, at int64) (models.VisitedPlace, error) {
	key := s.key(userID, "places")
	b, err := s.rc.HGet(ctx, key, place.PlaceID).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		place.FirstVisit = at
		place.LastVisit = at
		place.VisitCount = 1
	case err != nil:
		return models.VisitedPlace{}, wrap("read place", err)
	default:
		var existing models.VisitedPlace
		if err := json.Unmarshal(b, &existing); err != nil {
			return models.VisitedPlace{}, wrap("decode place", err)
		}
		existing.VisitCount++
		existing.LastVisit = at
		place = existing
	}

	enc, err := json.Marshal(place)
	if err != nil {
		return models.VisitedPlace{}, wrap("encode place", err)
	}
	if err := s.rc.HSet(ctx, key, place.PlaceID, enc).Err(); err != nil {
		return models.VisitedPlace{}, wrap("save place", err)
	}
	return place, nil
}

func (s *RedisStore) ApplyPoints(ctx context.Context, userID uint, opID string, delta int) (models.UserStatistics, bool, error) {
	statsKey := s.key(userID, "stats")
	ledgerKey := s.key(userID, "ledger")

	var (
		out     models.UserStatistics
		applied bool
	)
	txf := func(tx *redis.Tx) error {
		seen, err := tx.SIsMember(ctx, ledgerKey, opID).Result()
		if err != nil {
			return err
		}
		stats, err := readStats(ctx, tx, statsKey)
		if err != nil {
			return err
		}
		if seen {
			out, applied = stats, false
			return nil
		}
		stats.TotalPoints += delta
		b, err := json.Marshal(stats)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, statsKey, b, 0)
			pipe.SAdd(ctx, ledgerKey, opID)
			return nil
		})
		if err != nil {
			return err
		}
		out, applied = stats, true
		return nil
	}

	for i := 0; i < maxWatchRetries; i++ {
		err := s.rc.Watch(ctx, txf, statsKey, ledgerKey)
		if err == nil {
			return out, applied, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return models.UserStatistics{}, false, wrap("apply points", err)
	}
	return models.UserStatistics{}, false, wrap("apply points", redis.TxFailedErr)
}

func (s *RedisStore) Applied(ctx context.Context, userID uint, opID string) (bool, error) {
	ok, err := s.rc.SIsMember(ctx, s.key(userID, "ledger"), opID).Result()
	if err != nil {
		return false, wrap("read ledger", err)
	}
	return ok, nil
}

func (s *RedisStore) MarkRegionCompleted(ctx context.Context, userID uint, regionID string) (int, error) {
	key := s.key(userID, "regions")
	var card *redis.IntCmd
	_, err := s.rc.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SAdd(ctx, key, regionID)
		card = pipe.SCard(ctx, key)
		return nil
	})
	if err != nil {
		return 0, wrap("complete region", err)
	}
	return int(card.Val()), nil
}

// Reset deletes every key of the user in a single DEL, which Redis applies atomically.
func (s *RedisStore) Reset(ctx context.Context, userID uint) error {
	keys := []string{
		s.key(userID, "stats"),
		s.key(userID, "checkins"),
		s.key(userID, "achievements"),
		s.key(userID, "places"),
		s.key(userID, "ledger"),
		s.key(userID, "regions"),
	}
	return wrap("reset", s.rc.Del(ctx, keys...).Err())
}
