package catalog

// Place category ids.
const (
	PlaceMountain   = "mountain"
	PlaceBeach      = "beach"
	PlacePension    = "pension"
	PlaceCafe       = "cafe"
	PlaceRestaurant = "restaurant"
	PlacePark       = "park"
	PlaceMuseum     = "museum"
	PlaceTemple     = "temple"
	PlaceLandmark   = "landmark"
	PlaceCampsite   = "campsite"
	PlaceHotel      = "hotel"
	PlaceOther      = "other"
)

// PlaceCategory describes a kind of place a traveller can check in at.
type PlaceCategory struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

var placeCategories = []PlaceCategory{
	{ID: PlaceMountain, Name: "산/등산로", Icon: "⛰️", Color: "#8B7355"},
	{ID: PlaceBeach, Name: "해변/바다", Icon: "🏖️", Color: "#4A90E2"},
	{ID: PlacePension, Name: "펜션/숙소", Icon: "🏡", Color: "#E85D75"},
	{ID: PlaceCafe, Name: "카페", Icon: "☕", Color: "#D4A574"},
	{ID: PlaceRestaurant, Name: "식당/맛집", Icon: "🍽️", Color: "#FF6B35"},
	{ID: PlacePark, Name: "공원/자연", Icon: "🌳", Color: "#50C878"},
	{ID: PlaceMuseum, Name: "박물관/미술관", Icon: "🏛️", Color: "#9B59B6"},
	{ID: PlaceTemple, Name: "사찰/문화재", Icon: "⛩️", Color: "#E67E22"},
	{ID: PlaceLandmark, Name: "랜드마크", Icon: "🗿", Color: "#34495E"},
	{ID: PlaceCampsite, Name: "캠핑장", Icon: "⛺", Color: "#27AE60"},
	{ID: PlaceHotel, Name: "호텔/리조트", Icon: "🏨", Color: "#3498DB"},
	{ID: PlaceOther, Name: "기타", Icon: "📍", Color: "#95A5A6"},
}

// Categories returns the known place categories.
func Categories() []PlaceCategory {
	out := make([]PlaceCategory, len(placeCategories))
	copy(out, placeCategories)
	return out
}

// IsCategory reports whether id is a known place category.
func IsCategory(id string) bool {
	for _, c := range placeCategories {
		if c.ID == id {
			return true
		}
	}
	return false
}

// Region is a Korean metropolitan city or province.
type Region struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

var regions = []Region{
	{ID: "seoul", Name: "서울", Code: "11"},
	{ID: "busan", Name: "부산", Code: "26"},
	{ID: "daegu", Name: "대구", Code: "27"},
	{ID: "incheon", Name: "인천", Code: "28"},
	{ID: "gwangju", Name: "광주", Code: "29"},
	{ID: "daejeon", Name: "대전", Code: "30"},
	{ID: "ulsan", Name: "울산", Code: "31"},
	{ID: "sejong", Name: "세종", Code: "36"},
	{ID: "gyeonggi", Name: "경기", Code: "41"},
	{ID: "gangwon", Name: "강원", Code: "42"},
	{ID: "chungbuk", Name: "충북", Code: "43"},
	{ID: "chungnam", Name: "충남", Code: "44"},
	{ID: "jeonbuk", Name: "전북", Code: "45"},
	{ID: "jeonnam", Name: "전남", Code: "46"},
	{ID: "gyeongbuk", Name: "경북", Code: "47"},
	{ID: "gyeongnam", Name: "경남", Code: "48"},
	{ID: "jeju", Name: "제주", Code: "50"},
}

// Regions returns every region in administrative code order.
func Regions() []Region {
	out := make([]Region, len(regions))
	copy(out, regions)
	return out
}

// IsRegion reports whether id is a known region.
func IsRegion(id string) bool {
	for _, r := range regions {
		if r.ID == id {
			return true
		}
	}
	return false
}

// PopularPlace is a seeded point of interest.
type PopularPlace struct {
	ID       string  `json:"id"`
	Region   string  `json:"region"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
}

var popularPlaces = []PopularPlace{
	{ID: "gangwon-nami-island", Region: "gangwon", Name: "남이섬", Category: PlaceLandmark, Lat: 37.7915, Lng: 127.5245},
	{ID: "gangwon-sokcho-beach", Region: "gangwon", Name: "속초 해수욕장", Category: PlaceBeach, Lat: 38.2070, Lng: 128.5918},
	{ID: "gangwon-seoraksan", Region: "gangwon", Name: "설악산", Category: PlaceMountain, Lat: 38.1197, Lng: 128.4655},

	{ID: "jeju-seongsan", Region: "jeju", Name: "성산일출봉", Category: PlaceLandmark, Lat: 33.4599, Lng: 126.9426},
	{ID: "jeju-hallasan", Region: "jeju", Name: "한라산", Category: PlaceMountain, Lat: 33.3616, Lng: 126.5292},
	{ID: "jeju-hyeopjae-beach", Region: "jeju", Name: "협재 해수욕장", Category: PlaceBeach, Lat: 33.3941, Lng: 126.2397},

	{ID: "busan-haeundae-beach", Region: "busan", Name: "해운대 해수욕장", Category: PlaceBeach, Lat: 35.1585, Lng: 129.1603},
	{ID: "busan-gwangalli-beach", Region: "busan", Name: "광안리 해수욕장", Category: PlaceBeach, Lat: 35.1532, Lng: 129.1186},
	{ID: "busan-gamcheon-village", Region: "busan", Name: "감천문화마을", Category: PlaceLandmark, Lat: 35.0976, Lng: 129.0103},
}

// PopularPlaces returns the seeded points of interest.
func PopularPlaces() []PopularPlace {
	out := make([]PopularPlace, len(popularPlaces))
	copy(out, popularPlaces)
	return out
}
