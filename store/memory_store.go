package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cppla/travelquest/models"
)

type memoryUser struct {
	stats    *models.UserStatistics
	checkins []models.Checkin
	unlocked map[string]struct{}
	places   map[string]models.VisitedPlace
	ledger   map[string]struct{}
	regions  map[string]struct{}
}

// MemoryStore is a single-process store used when Redis is disabled and in tests.
type MemoryStore struct {
	mu     sync.Mutex
	users  map[uint]*memoryUser
	nextID IDFunc
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore(nextID IDFunc) *MemoryStore {
	return &MemoryStore{users: map[uint]*memoryUser{}, nextID: nextID}
}

func (s *MemoryStore) user(userID uint) *memoryUser {
	u, ok := s.users[userID]
	if !ok {
		u = &memoryUser{
			unlocked: map[string]struct{}{},
			places:   map[string]models.VisitedPlace{},
			ledger:   map[string]struct{}{},
			regions:  map[string]struct{}{},
		}
		s.users[userID] = u
	}
	return u
}

func (s *MemoryStore) statsLocked(userID uint) models.UserStatistics {
	u := s.user(userID)
	if u.stats == nil {
		return models.NewUserStatistics()
	}
	return u.stats.Clone()
}

func (s *MemoryStore) Stats(_ context.Context, userID uint) (models.UserStatistics, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statsLocked(userID), nil
}

func (s *MemoryStore) SaveStats(_ context.Context, userID uint, stats models.UserStatistics) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := stats.Clone()
	cp.Normalize()
	s.user(userID).stats = &cp
	return nil
}

func (s *MemoryStore) AppendCheckin(_ context.Context, userID uint, c models.Checkin) (models.Checkin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID == "" {
		c.ID = s.nextID()
	}
	if c.Timestamp == 0 {
		c.Timestamp = time.Now().UnixMilli()
	}
	u := s.user(userID)
	u.checkins = append(u.checkins, c)
	return c, nil
}

func (s *MemoryStore) Checkins(_ context.Context, userID uint) ([]models.Checkin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	src := s.user(userID).checkins
	out := make([]models.Checkin, len(src))
	copy(out, src)
	return out, nil
}

func (s *MemoryStore) Unlocked(_ context.Context, userID uint) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.user(userID)
	ids := make([]string, 0, len(u.unlocked))
	for id := range u.unlocked {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (s *MemoryStore) Unlock(_ context.Context, userID uint, achievementID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.user(userID)
	if _, ok := u.unlocked[achievementID]; ok {
		return false, nil
	}
	u.unlocked[achievementID] = struct{}{}
	return true, nil
}

func (s *MemoryStore) VisitedPlaces(_ context.Context, userID uint) (map[string]models.VisitedPlace, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	src := s.user(userID).places
	out := make(map[string]models.VisitedPlace, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out, nil
}

func (s *MemoryStore) MarkVisited(_ context.Context, userID uint, place models.VisitedPlace, at int64) (models.VisitedPlace, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.user(userID)
	if existing, ok := u.places[place.PlaceID]; ok {
		existing.VisitCount++
		existing.LastVisit = at
		u.places[place.PlaceID] = existing
		return existing, nil
	}
	place.FirstVisit = at
	place.LastVisit = at
	place.VisitCount = 1
	u.places[place.PlaceID] = place
	return place, nil
}

func (s *MemoryStore) ApplyPoints(_ context.Context, userID uint, opID string, delta int) (models.UserStatistics, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.user(userID)
	stats := s.statsLocked(userID)
	if _, ok := u.ledger[opID]; ok {
		return stats, false, nil
	}
	stats.TotalPoints += delta
	cp := stats.Clone()
	u.stats = &cp
	u.ledger[opID] = struct{}{}
	return stats, true, nil
}

func (s *MemoryStore) Applied(_ context.Context, userID uint, opID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.user(userID).ledger[opID]
	return ok, nil
}

func (s *MemoryStore) MarkRegionCompleted(_ context.Context, userID uint, regionID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.user(userID)
	u.regions[regionID] = struct{}{}
	return len(u.regions), nil
}

func (s *MemoryStore) Reset(_ context.Context, userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, userID)
	return nil
}
