package models

// UserStatistics is the per-user progression document kept in the progress store.
type UserStatistics struct {
	TotalPoints      int            `json:"total_points"`
	TotalCheckins    int            `json:"total_checkins"`
	TotalReviews     int            `json:"total_reviews"`
	TotalPhotos      int            `json:"total_photos"`
	CompletedRegions int            `json:"completed_regions"`
	FirstDiscoveries int            `json:"first_discoveries"`
	WeekendTrips     int            `json:"weekend_trips"`
	NightCheckins    int            `json:"night_checkins"`
	CurrentStreak    int            `json:"current_streak"`
	MaxStreak        int            `json:"max_streak"`
	LastCheckinDate  *int64         `json:"last_checkin_date"` // unix millis, nil before the first check-in
	CategoryVisits   map[string]int `json:"category_visits"`
	RegionVisits     map[string]int `json:"region_visits"`
}

// NewUserStatistics returns the zero-valued statistics of a user who never checked in.
func NewUserStatistics() UserStatistics {
	return UserStatistics{
		CategoryVisits: map[string]int{},
		RegionVisits:   map[string]int{},
	}
}

// Clone returns a deep copy so callers can mutate maps without touching the original.
func (s UserStatistics) Clone() UserStatistics {
	out := s
	out.CategoryVisits = make(map[string]int, len(s.CategoryVisits))
	for k, v := range s.CategoryVisits {
		out.CategoryVisits[k] = v
	}
	out.RegionVisits = make(map[string]int, len(s.RegionVisits))
	for k, v := range s.RegionVisits {
		out.RegionVisits[k] = v
	}
	if s.LastCheckinDate != nil {
		v := *s.LastCheckinDate
		out.LastCheckinDate = &v
	}
	return out
}

// Normalize fills nil maps left behind by older or partial documents.
func (s *UserStatistics) Normalize() {
	if s.CategoryVisits == nil {
		s.CategoryVisits = map[string]int{}
	}
	if s.RegionVisits == nil {
		s.RegionVisits = map[string]int{}
	}
}
