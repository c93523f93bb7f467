package catalog

// QuestPeriod is the rolling window a quest is measured over.
type QuestPeriod string

const (
	PeriodDaily  QuestPeriod = "daily"
	PeriodWeekly QuestPeriod = "weekly"
)

// QuestMetric names the period counter a quest reads.
type QuestMetric string

const (
	QuestCheckinsToday          QuestMetric = "checkins_today"
	QuestCheckinsWeek           QuestMetric = "checkins_week"
	QuestNewPlacesToday         QuestMetric = "new_places_today"
	QuestReviewsToday           QuestMetric = "reviews_today"
	QuestDistinctCategoriesWeek QuestMetric = "distinct_categories_week"
	QuestDistinctRegionsWeek    QuestMetric = "distinct_regions_week"
	QuestWeekendCheckins        QuestMetric = "weekend_checkins"
)

// Quest is a repeatable daily or weekly goal.
type Quest struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Target      int         `json:"target"`
	Reward      int         `json:"reward"`
	Icon        string      `json:"icon"`
	Period      QuestPeriod `json:"period"`
	Metric      QuestMetric `json:"metric"`
}

var dailyQuests = []Quest{
	{ID: "daily_checkin_1", Title: "일일 탐험", Description: "오늘 1곳 체크인하기", Target: 1, Reward: 50, Icon: "📍",
		Period: PeriodDaily, Metric: QuestCheckinsToday},
	{ID: "daily_checkin_3", Title: "열심히 탐험", Description: "오늘 3곳 체크인하기", Target: 3, Reward: 150, Icon: "🗺️",
		Period: PeriodDaily, Metric: QuestCheckinsToday},
	{ID: "daily_new_place", Title: "새로운 발견", Description: "처음 가보는 장소 1곳 방문", Target: 1, Reward: 100, Icon: "✨",
		Period: PeriodDaily, Metric: QuestNewPlacesToday},
	{ID: "daily_review", Title: "리뷰어", Description: "리뷰 1개 작성하기", Target: 1, Reward: 80, Icon: "✍️",
		Period: PeriodDaily, Metric: QuestReviewsToday},
}

var weeklyQuests = []Quest{
	{ID: "weekly_checkin_10", Title: "주간 탐험가", Description: "이번 주 10곳 체크인", Target: 10, Reward: 500, Icon: "🎯",
		Period: PeriodWeekly, Metric: QuestCheckinsWeek},
	{ID: "weekly_categories", Title: "다양한 경험", Description: "5가지 다른 카테고리 방문", Target: 5, Reward: 400, Icon: "🌈",
		Period: PeriodWeekly, Metric: QuestDistinctCategoriesWeek},
	{ID: "weekly_regions", Title: "지역 탐험", Description: "3개 이상의 다른 지역 방문", Target: 3, Reward: 600, Icon: "🗾",
		Period: PeriodWeekly, Metric: QuestDistinctRegionsWeek},
	{ID: "weekly_weekend", Title: "주말 여행가", Description: "주말에 5곳 이상 방문", Target: 5, Reward: 350, Icon: "🎉",
		Period: PeriodWeekly, Metric: QuestWeekendCheckins},
}

// DailyQuests returns the daily quest templates.
func DailyQuests() []Quest {
	out := make([]Quest, len(dailyQuests))
	copy(out, dailyQuests)
	return out
}

// WeeklyQuests returns the weekly quest templates.
func WeeklyQuests() []Quest {
	out := make([]Quest, len(weeklyQuests))
	copy(out, weeklyQuests)
	return out
}

// QuestByID searches both quest collections.
func QuestByID(id string) (Quest, bool) {
	for _, q := range dailyQuests {
		if q.ID == id {
			return q, true
		}
	}
	for _, q := range weeklyQuests {
		if q.ID == id {
			return q, true
		}
	}
	return Quest{}, false
}
