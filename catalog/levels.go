package catalog

// Level is one rung of the traveller ladder. Ranges are [MinPoints, next.MinPoints).
type Level struct {
	Level     int    `json:"level"`
	MinPoints int    `json:"min_points"`
	Title     string `json:"title"`
	Icon      string `json:"icon"`
}

// levels must stay sorted by strictly increasing MinPoints, starting at 0.
var levels = []Level{
	{Level: 1, MinPoints: 0, Title: "여행 초보", Icon: "🌱"},
	{Level: 2, MinPoints: 100, Title: "여행 견습생", Icon: "🌿"},
	{Level: 3, MinPoints: 300, Title: "여행자", Icon: "🌳"},
	{Level: 4, MinPoints: 600, Title: "숙련된 여행자", Icon: "🎒"},
	{Level: 5, MinPoints: 1000, Title: "여행 마스터", Icon: "🗺️"},
	{Level: 6, MinPoints: 1500, Title: "탐험가", Icon: "🧭"},
	{Level: 7, MinPoints: 2200, Title: "세계 탐험가", Icon: "🌏"},
	{Level: 8, MinPoints: 3000, Title: "여행 전문가", Icon: "✈️"},
	{Level: 9, MinPoints: 4000, Title: "여행 대가", Icon: "👑"},
	{Level: 10, MinPoints: 5500, Title: "전설의 여행가", Icon: "⭐"},
}

// Levels returns the level ladder in ascending order.
func Levels() []Level {
	out := make([]Level, len(levels))
	copy(out, levels)
	return out
}
