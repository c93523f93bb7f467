package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/cppla/travelquest/catalog"
	"github.com/cppla/travelquest/config"
	"github.com/cppla/travelquest/game"
	"github.com/cppla/travelquest/geo"
	"github.com/cppla/travelquest/models"
	"github.com/cppla/travelquest/utils"
)

const (
	feedCachePrefix = "cache:feed:"
	recentWindow    = 7 * 24 * time.Hour
	maxTags         = 10
)

// ReviewController manages place reviews and the community feed.
type ReviewController struct {
	db  *gorm.DB
	svc *game.Service
}

// NewReviewController creates a ReviewController.
func NewReviewController(db *gorm.DB, svc *game.Service) *ReviewController {
	return &ReviewController{db: db, svc: svc}
}

// CreateReview stores a review and credits it, plus any photos, to the author's progress.
func (r *ReviewController) CreateReview(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	var req struct {
		PlaceID   string   `json:"place_id" binding:"required,max=128"`
		PlaceName string   `json:"place_name" binding:"required,max=255"`
		Content   string   `json:"content" binding:"required,max=5000"`
		Rating    int      `json:"rating" binding:"required,min=1,max=5"`
		Tags      []string `json:"tags" binding:"max=20"`
		Photos    int      `json:"photos" binding:"min=0,max=20"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.ErrorWithData(ctx, http.StatusBadRequest, 40040, "invalid input", gin.H{"fields": bindingFields(err)})
		return
	}

	content := utils.SanitizeText(req.Content)
	placeName := utils.SanitizeText(req.PlaceName)
	if content == "" || placeName == "" {
		utils.Error(ctx, http.StatusBadRequest, 40021, "content and place name cannot be empty")
		return
	}

	review := models.Review{
		UserID:    userID,
		PlaceID:   strings.TrimSpace(req.PlaceID),
		PlaceName: placeName,
		Content:   content,
		Rating:    req.Rating,
		Tags:      utils.SanitizeTags(req.Tags, maxTags),
		Photos:    req.Photos,
	}
	if err := r.db.Create(&review).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50060, "failed to create review")
		return
	}
	utils.InvalidateByPrefix(ctx.Request.Context(), feedCachePrefix)

	res, err := r.svc.RecordReview(ctx.Request.Context(), userID)
	if err == nil && review.Photos > 0 {
		var photos *game.UpdateResult
		photos, err = r.svc.RecordPhotos(ctx.Request.Context(), userID, review.Photos)
		if err == nil {
			photos.NewAchievements = append(res.NewAchievements, photos.NewAchievements...)
			res = photos
		}
	}
	if err != nil {
		utils.Logger.Error("review saved but progress not updated",
			zap.Uint("user_id", userID), zap.Uint("review_id", review.ID), zap.Error(err))
		utils.ErrorWithData(ctx, http.StatusInternalServerError, 50061, "review saved but progress not updated",
			gin.H{"review": review})
		return
	}

	utils.Success(ctx, gin.H{
		"review":           review,
		"stats":            res.Stats,
		"new_achievements": res.NewAchievements,
	})
}

// LikeReview adds one like to a review.
func (r *ReviewController) LikeReview(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil || id == 0 {
		utils.Error(ctx, http.StatusBadRequest, 40062, "invalid review id")
		return
	}

	res := r.db.Model(&models.Review{}).Where("id = ?", id).UpdateColumn("likes", gorm.Expr("likes + 1"))
	if res.Error != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50062, "failed to like review")
		return
	}
	if res.RowsAffected == 0 {
		utils.Error(ctx, http.StatusNotFound, 40460, "review not found")
		return
	}

	var review models.Review
	if err := r.db.First(&review, id).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50062, "failed to load review")
		return
	}
	utils.InvalidateByPrefix(ctx.Request.Context(), feedCachePrefix)
	utils.Success(ctx, gin.H{"id": review.ID, "likes": review.Likes})
}

// Feed lists reviews. filter is all, recent, popular or nearby (with lat and lng);
// search matches place names and tags.
func (r *ReviewController) Feed(ctx *gin.Context) {
	page, pageSize := parsePagination(ctx.Query("page"), ctx.Query("page_size"))
	filter := strings.TrimSpace(ctx.DefaultQuery("filter", "all"))
	search := strings.TrimSpace(ctx.Query("search"))

	query := r.db.Model(&models.Review{})
	switch filter {
	case "all":
		query = query.Order("created_at DESC")
	case "recent":
		query = query.Where("created_at >= ?", time.Now().Add(-recentWindow)).Order("created_at DESC")
	case "popular":
		query = query.Order("likes DESC").Order("created_at DESC")
	case "nearby":
		ids, err := nearbyPlaceIDs(ctx)
		if err != nil {
			utils.Error(ctx, http.StatusBadRequest, 40063, err.Error())
			return
		}
		query = query.Where("place_id IN ?", ids).Order("created_at DESC")
	default:
		utils.Error(ctx, http.StatusBadRequest, 40061, "unknown filter")
		return
	}

	// Search and nearby results are not cached to keep the key space small.
	cacheable := search == "" && filter != "nearby"
	cacheKey := fmt.Sprintf("%sfilter=%s:page=%d:size=%d", feedCachePrefix, filter, page, pageSize)
	if cacheable {
		if b, ok := utils.CacheGetBytes(ctx.Request.Context(), cacheKey); ok {
			ctx.Data(http.StatusOK, "application/json", b)
			return
		}
	}

	if search != "" {
		like := "%" + search + "%"
		query = query.Where("place_name LIKE ? OR tags LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50063, "failed to count reviews")
		return
	}
	var reviews []models.Review
	if err := query.Preload("User").Offset((page - 1) * pageSize).Limit(pageSize).Find(&reviews).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50064, "failed to list reviews")
		return
	}

	payload := paginated(reviews, page, pageSize, total)
	if cacheable {
		ttl := time.Duration(config.Get().FeedCacheTTLSec) * time.Second
		utils.CacheSetJSON(ctx.Request.Context(), cacheKey, utils.SuccessEnvelope(payload), ttl)
	}
	utils.Success(ctx, payload)
}

func nearbyPlaceIDs(ctx *gin.Context) ([]string, error) {
	origin, err := parsePoint(ctx)
	if err != nil {
		return nil, err
	}
	places := geo.Nearby(origin, catalog.PopularPlaces(), float64(config.Get().NearbyRadiusMeters))
	ids := make([]string, 0, len(places))
	for _, p := range places {
		ids = append(ids, p.ID)
	}
	if len(ids) == 0 {
		// IN () is not valid SQL
		ids = append(ids, "")
	}
	return ids, nil
}

func parsePoint(ctx *gin.Context) (geo.Point, error) {
	lat, err1 := strconv.ParseFloat(ctx.Query("lat"), 64)
	lng, err2 := strconv.ParseFloat(ctx.Query("lng"), 64)
	if err1 != nil || err2 != nil || lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return geo.Point{}, errors.New("lat and lng must be valid coordinates")
	}
	return geo.Point{Lat: lat, Lng: lng}, nil
}
