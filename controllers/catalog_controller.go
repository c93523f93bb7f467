package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cppla/travelquest/catalog"
	"github.com/cppla/travelquest/geo"
	"github.com/cppla/travelquest/utils"
)

// CatalogController serves the static game catalog and place lookups.
type CatalogController struct {
	radius float64
}

// NewCatalogController creates a CatalogController. radius is the default nearby search radius in metres.
func NewCatalogController(radius float64) *CatalogController {
	if radius <= 0 {
		radius = geo.DefaultRadius
	}
	return &CatalogController{radius: radius}
}

func (c *CatalogController) Achievements(ctx *gin.Context) {
	utils.Success(ctx, gin.H{"items": catalog.Achievements()})
}

func (c *CatalogController) Levels(ctx *gin.Context) {
	utils.Success(ctx, gin.H{"items": catalog.Levels()})
}

func (c *CatalogController) Quests(ctx *gin.Context) {
	utils.Success(ctx, gin.H{
		"daily":  catalog.DailyQuests(),
		"weekly": catalog.WeeklyQuests(),
	})
}

func (c *CatalogController) Categories(ctx *gin.Context) {
	utils.Success(ctx, gin.H{"items": catalog.Categories()})
}

func (c *CatalogController) Regions(ctx *gin.Context) {
	utils.Success(ctx, gin.H{"items": catalog.Regions()})
}

// Nearby lists popular places within radius metres of lat,lng, closest first.
func (c *CatalogController) Nearby(ctx *gin.Context) {
	origin, err := parsePoint(ctx)
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40070, err.Error())
		return
	}
	radius := c.radius
	if v := ctx.Query("radius"); v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil || r <= 0 || r > 50000 {
			utils.Error(ctx, http.StatusBadRequest, 40071, "radius must be between 0 and 50000 metres")
			return
		}
		radius = r
	}
	utils.Success(ctx, gin.H{
		"radius": radius,
		"items":  geo.Nearby(origin, catalog.PopularPlaces(), radius),
	})
}

// RegionForCity resolves a reverse-geocoded city or province name to a region id.
func (c *CatalogController) RegionForCity(ctx *gin.Context) {
	city := ctx.Query("city")
	id, ok := geo.RegionFromCity(city)
	if !ok {
		utils.Error(ctx, http.StatusNotFound, 40470, "no region matches city")
		return
	}
	utils.Success(ctx, gin.H{"region": id})
}
