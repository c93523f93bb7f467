package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cppla/travelquest/game"
	"github.com/cppla/travelquest/models"
	"github.com/cppla/travelquest/progression"
	"github.com/cppla/travelquest/utils"
)

// ProgressController exposes the authenticated user's progression.
type ProgressController struct {
	db  *gorm.DB
	svc *game.Service
	now func() time.Time
}

// NewProgressController creates a ProgressController.
func NewProgressController(db *gorm.DB, svc *game.Service) *ProgressController {
	return &ProgressController{db: db, svc: svc, now: time.Now}
}

// Profile returns stats, level, unlocked achievements and visited places.
func (p *ProgressController) Profile(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}
	profile, err := p.svc.Profile(ctx.Request.Context(), userID)
	if err != nil {
		respondGameError(ctx, err, 50050)
		return
	}
	utils.Success(ctx, profile)
}

// Level returns the current level and the progress toward the next one.
func (p *ProgressController) Level(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}
	stats, err := p.svc.Stats(ctx.Request.Context(), userID)
	if err != nil {
		respondGameError(ctx, err, 50051)
		return
	}
	utils.Success(ctx, gin.H{
		"total_points": stats.TotalPoints,
		"level":        progression.LevelFor(stats.TotalPoints),
		"progress":     progression.ProgressToNext(stats.TotalPoints),
	})
}

// Achievements returns every achievement with the user's progress.
func (p *ProgressController) Achievements(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}
	board, err := p.svc.Achievements(ctx.Request.Context(), userID)
	if err != nil {
		respondGameError(ctx, err, 50052)
		return
	}
	utils.Success(ctx, gin.H{"items": board})
}

// Quests returns today's and this week's quests.
func (p *ProgressController) Quests(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}
	reviews, err := p.reviewsToday(userID)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50053, "failed to count reviews")
		return
	}
	board, err := p.svc.Quests(ctx.Request.Context(), userID, reviews)
	if err != nil {
		respondGameError(ctx, err, 50053)
		return
	}
	utils.Success(ctx, board)
}

// ClaimQuest pays out a completed quest once per period.
func (p *ProgressController) ClaimQuest(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}
	reviews, err := p.reviewsToday(userID)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50054, "failed to count reviews")
		return
	}
	res, err := p.svc.ClaimQuest(ctx.Request.Context(), userID, ctx.Param("id"), reviews)
	if err != nil {
		respondGameError(ctx, err, 50054)
		return
	}
	utils.Success(ctx, res)
}

// CompleteRegion marks a region as fully explored.
func (p *ProgressController) CompleteRegion(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}
	res, err := p.svc.CompleteRegion(ctx.Request.Context(), userID, ctx.Param("id"))
	if err != nil {
		respondGameError(ctx, err, 50055)
		return
	}
	utils.Success(ctx, res)
}

// RecordPhotos adds uploaded photos to the user's statistics.
func (p *ProgressController) RecordPhotos(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}
	var req struct {
		Count int `json:"count" binding:"required,min=1,max=100"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.ErrorWithData(ctx, http.StatusBadRequest, 40040, "invalid input", gin.H{"fields": bindingFields(err)})
		return
	}
	res, err := p.svc.RecordPhotos(ctx.Request.Context(), userID, req.Count)
	if err != nil {
		respondGameError(ctx, err, 50056)
		return
	}
	utils.Success(ctx, res)
}

// Reset wipes the user's progression. Account and reviews are kept.
func (p *ProgressController) Reset(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}
	if err := p.svc.Reset(ctx.Request.Context(), userID); err != nil {
		respondGameError(ctx, err, 50057)
		return
	}
	utils.Success(ctx, gin.H{"message": "progress reset"})
}

func (p *ProgressController) reviewsToday(userID uint) (int, error) {
	// created_at is written in the process zone; compare in the same zone
	since := progression.StartOfDay(p.now(), p.svc.Location()).Local()
	var n int64
	err := p.db.Model(&models.Review{}).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Count(&n).Error
	return int(n), err
}
