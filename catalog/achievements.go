package catalog

import "github.com/cppla/travelquest/models"

// AchievementCategory groups achievements on the badge board.
type AchievementCategory string

const (
	CategoryExplorer  AchievementCategory = "explorer"
	CategoryCollector AchievementCategory = "collector"
	CategorySocial    AchievementCategory = "social"
	CategorySpecial   AchievementCategory = "special"
)

// Metric selects the statistic an achievement condition reads.
type Metric string

const (
	MetricTotalCheckins    Metric = "total_checkins"
	MetricTotalReviews     Metric = "total_reviews"
	MetricTotalPhotos      Metric = "total_photos"
	MetricCompletedRegions Metric = "completed_regions"
	MetricFirstDiscoveries Metric = "first_discoveries"
	MetricWeekendTrips     Metric = "weekend_trips"
	MetricNightCheckins    Metric = "night_checkins"
	MetricMaxStreak        Metric = "max_streak"
	MetricCategoryVisits   Metric = "category_visits" // Key names the place category
)

// Condition is satisfied when the selected statistic reaches Threshold.
type Condition struct {
	Metric    Metric `json:"metric"`
	Key       string `json:"key,omitempty"`
	Threshold int    `json:"threshold"`
}

// Value reads the statistic the condition is about.
func (c Condition) Value(stats models.UserStatistics) int {
	switch c.Metric {
	case MetricTotalCheckins:
		return stats.TotalCheckins
	case MetricTotalReviews:
		return stats.TotalReviews
	case MetricTotalPhotos:
		return stats.TotalPhotos
	case MetricCompletedRegions:
		return stats.CompletedRegions
	case MetricFirstDiscoveries:
		return stats.FirstDiscoveries
	case MetricWeekendTrips:
		return stats.WeekendTrips
	case MetricNightCheckins:
		return stats.NightCheckins
	case MetricMaxStreak:
		return stats.MaxStreak
	case MetricCategoryVisits:
		return stats.CategoryVisits[c.Key]
	default:
		return 0
	}
}

// Satisfied reports whether stats meet the condition.
func (c Condition) Satisfied(stats models.UserStatistics) bool {
	return c.Value(stats) >= c.Threshold
}

// Achievement is an immutable badge definition.
type Achievement struct {
	ID          string              `json:"id"`
	Category    AchievementCategory `json:"category"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Icon        string              `json:"icon"`
	Points      int                 `json:"points"`
	Condition   Condition           `json:"condition"`
}

var achievements = []Achievement{
	// explorer
	{ID: "first_checkin", Category: CategoryExplorer, Title: "첫 발걸음", Description: "첫 번째 장소 체크인", Icon: "🎯", Points: 10,
		Condition: Condition{Metric: MetricTotalCheckins, Threshold: 1}},
	{ID: "explorer_10", Category: CategoryExplorer, Title: "초보 탐험가", Description: "10개 장소 방문", Icon: "🗺️", Points: 50,
		Condition: Condition{Metric: MetricTotalCheckins, Threshold: 10}},
	{ID: "explorer_50", Category: CategoryExplorer, Title: "베테랑 탐험가", Description: "50개 장소 방문", Icon: "🧭", Points: 200,
		Condition: Condition{Metric: MetricTotalCheckins, Threshold: 50}},
	{ID: "explorer_100", Category: CategoryExplorer, Title: "전설의 탐험가", Description: "100개 장소 방문", Icon: "🏆", Points: 500,
		Condition: Condition{Metric: MetricTotalCheckins, Threshold: 100}},

	// collector
	{ID: "first_region", Category: CategoryCollector, Title: "지역 정복자", Description: "첫 번째 지역 완전 정복", Icon: "🏰", Points: 100,
		Condition: Condition{Metric: MetricCompletedRegions, Threshold: 1}},
	{ID: "mountain_lover", Category: CategoryCollector, Title: "산악인", Description: "5개 이상의 산 방문", Icon: "⛰️", Points: 100,
		Condition: Condition{Metric: MetricCategoryVisits, Key: PlaceMountain, Threshold: 5}},
	{ID: "beach_lover", Category: CategoryCollector, Title: "바다 애호가", Description: "5개 이상의 해변 방문", Icon: "🏖️", Points: 100,
		Condition: Condition{Metric: MetricCategoryVisits, Key: PlaceBeach, Threshold: 5}},
	{ID: "pension_hunter", Category: CategoryCollector, Title: "펜션 헌터", Description: "10개 이상의 펜션 방문", Icon: "🏡", Points: 150,
		Condition: Condition{Metric: MetricCategoryVisits, Key: PlacePension, Threshold: 10}},

	// social
	{ID: "first_review", Category: CategorySocial, Title: "리뷰어", Description: "첫 번째 리뷰 작성", Icon: "✍️", Points: 20,
		Condition: Condition{Metric: MetricTotalReviews, Threshold: 1}},
	{ID: "active_reviewer", Category: CategorySocial, Title: "활발한 리뷰어", Description: "20개 이상 리뷰 작성", Icon: "📝", Points: 100,
		Condition: Condition{Metric: MetricTotalReviews, Threshold: 20}},
	{ID: "photo_master", Category: CategorySocial, Title: "사진작가", Description: "50개 이상 사진 업로드", Icon: "📸", Points: 150,
		Condition: Condition{Metric: MetricTotalPhotos, Threshold: 50}},

	// special
	{ID: "hidden_gem", Category: CategorySpecial, Title: "숨은 보석 발견자", Description: "아직 아무도 방문하지 않은 장소 발견", Icon: "💎", Points: 200,
		Condition: Condition{Metric: MetricFirstDiscoveries, Threshold: 1}},
	{ID: "weekend_warrior", Category: CategorySpecial, Title: "주말 전사", Description: "10번의 주말 여행", Icon: "🗓️", Points: 100,
		Condition: Condition{Metric: MetricWeekendTrips, Threshold: 10}},
	{ID: "night_owl", Category: CategorySpecial, Title: "밤의 탐험가", Description: "밤 10시 이후 5번 체크인", Icon: "🌙", Points: 50,
		Condition: Condition{Metric: MetricNightCheckins, Threshold: 5}},
	{ID: "streak_7", Category: CategorySpecial, Title: "일주일 연속", Description: "7일 연속 체크인", Icon: "🔥", Points: 150,
		Condition: Condition{Metric: MetricMaxStreak, Threshold: 7}},
}

// Achievements returns every achievement in definition order.
func Achievements() []Achievement {
	out := make([]Achievement, len(achievements))
	copy(out, achievements)
	return out
}

// AchievementByID looks up a single achievement definition.
func AchievementByID(id string) (Achievement, bool) {
	for _, a := range achievements {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}
