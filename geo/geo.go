// Package geo holds the distance math behind nearby-place search and the
// mapping from an address to one of the catalog regions.
package geo

import (
	"math"
	"sort"
	"strings"

	"github.com/cppla/travelquest/catalog"
)

const earthRadiusMeters = 6371e3

// DefaultRadius is the nearby-search radius in metres when none is given.
const DefaultRadius = 500.0

// Point is a WGS84 coordinate.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Distance returns the great-circle distance between two coordinates in metres.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	return earthRadiusMeters * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// NearbyPlace is a place with its distance from the search origin.
type NearbyPlace struct {
	catalog.PopularPlace
	Distance float64 `json:"distance"`
}

// Nearby returns the places within radius metres of origin, closest first.
func Nearby(origin Point, places []catalog.PopularPlace, radius float64) []NearbyPlace {
	if radius <= 0 {
		radius = DefaultRadius
	}
	out := make([]NearbyPlace, 0)
	for _, p := range places {
		d := Distance(origin.Lat, origin.Lng, p.Lat, p.Lng)
		if d <= radius {
			out = append(out, NearbyPlace{PopularPlace: p, Distance: d})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Distance < out[j].Distance })
	return out
}

// full province names whose short form is not a substring
var regionAliases = map[string]string{
	"충청북도": "chungbuk",
	"충청남도": "chungnam",
	"전라북도": "jeonbuk",
	"전북특별자치도": "jeonbuk",
	"전라남도": "jeonnam",
	"경상북도": "gyeongbuk",
	"경상남도": "gyeongnam",
}

// RegionFromCity maps a city or province name to a region id. When several
// names occur, the one appearing first wins, so "경기도 광주시" is gyeonggi.
func RegionFromCity(city string) (string, bool) {
	city = strings.TrimSpace(city)
	if city == "" {
		return "", false
	}
	best, bestAt, bestLen := "", -1, 0
	consider := func(name, id string) {
		at := strings.Index(city, name)
		if at < 0 {
			return
		}
		if bestAt < 0 || at < bestAt || (at == bestAt && len(name) > bestLen) {
			best, bestAt, bestLen = id, at, len(name)
		}
	}
	for _, r := range catalog.Regions() {
		consider(r.Name, r.ID)
	}
	for name, id := range regionAliases {
		consider(name, id)
	}
	return best, bestAt >= 0
}
