package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cppla/travelquest/game"
	"github.com/cppla/travelquest/utils"
)

// CheckinController records visits through the game service.
type CheckinController struct {
	svc *game.Service
}

// NewCheckinController creates a CheckinController.
func NewCheckinController(svc *game.Service) *CheckinController {
	return &CheckinController{svc: svc}
}

type checkinRequest struct {
	PlaceID          string   `json:"place_id" binding:"required,max=128"`
	Name             string   `json:"name" binding:"required,max=255"`
	Category         string   `json:"category" binding:"required,place_category"`
	Region           string   `json:"region" binding:"required,region"`
	Latitude         *float64 `json:"latitude" binding:"required,min=-90,max=90"`
	Longitude        *float64 `json:"longitude" binding:"required,min=-180,max=180"`
	Address          string   `json:"address" binding:"max=512"`
	IsFirstDiscovery bool     `json:"is_first_discovery"`
	Timestamp        int64    `json:"timestamp" binding:"min=0"`
}

// CheckIn records one visit and returns the settled progression.
func (c *CheckinController) CheckIn(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	var req checkinRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.ErrorWithData(ctx, http.StatusBadRequest, 40040, "invalid input", gin.H{"fields": bindingFields(err)})
		return
	}

	res, err := c.svc.CheckIn(ctx.Request.Context(), userID, game.CheckinInput{
		PlaceID:          req.PlaceID,
		Name:             utils.SanitizeText(req.Name),
		Category:         req.Category,
		Region:           req.Region,
		Latitude:         *req.Latitude,
		Longitude:        *req.Longitude,
		Address:          utils.SanitizeText(req.Address),
		IsFirstDiscovery: req.IsFirstDiscovery,
		Timestamp:        req.Timestamp,
	})
	if err != nil {
		respondGameError(ctx, err, 50040)
		return
	}
	utils.Success(ctx, res)
}

// Recent lists the newest check-ins of the authenticated user.
func (c *CheckinController) Recent(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}
	limit, _ := strconv.Atoi(ctx.Query("limit"))
	if limit > 100 {
		limit = 100
	}
	list, err := c.svc.RecentCheckins(ctx.Request.Context(), userID, limit)
	if err != nil {
		respondGameError(ctx, err, 50042)
		return
	}
	utils.Success(ctx, gin.H{"items": list})
}
