package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cppla/travelquest/game"
	"github.com/cppla/travelquest/middleware"
	"github.com/cppla/travelquest/utils"
)

func parsePagination(pageStr, sizeStr string) (int, int) {
	page := 1
	pageSize := 10
	if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
		page = p
	}
	if s, err := strconv.Atoi(sizeStr); err == nil && s > 0 && s <= 100 {
		pageSize = s
	}
	return page, pageSize
}

func paginated(items interface{}, page, pageSize int, total int64) gin.H {
	return gin.H{
		"items": items,
		"pagination": gin.H{
			"page":        page,
			"page_size":   pageSize,
			"total":       total,
			"total_pages": int((total + int64(pageSize) - 1) / int64(pageSize)),
		},
	}
}

func getUserID(ctx *gin.Context) (uint, bool) {
	value, exists := ctx.Get(middleware.ContextUserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok && id != 0
}

// respondGameError maps game and store failures onto HTTP responses.
func respondGameError(ctx *gin.Context, err error, fallbackCode int) {
	var verr *game.ValidationError
	var cerr *game.CheckinError
	switch {
	case errors.As(err, &verr):
		utils.ErrorWithData(ctx, http.StatusBadRequest, 40040, "invalid input", gin.H{"fields": verr.Fields})
	case errors.As(err, &cerr):
		if !cerr.Logged {
			utils.ErrorWithData(ctx, http.StatusServiceUnavailable, 50340, "check-in not recorded, try again",
				gin.H{"logged": false, "state": cerr.State})
			return
		}
		utils.ErrorWithData(ctx, http.StatusInternalServerError, 50041, "check-in recorded but not settled",
			gin.H{"logged": true, "state": cerr.State})
	case errors.Is(err, game.ErrUnknownQuest):
		utils.Error(ctx, http.StatusNotFound, 40440, "quest not found")
	case errors.Is(err, game.ErrUnknownRegion):
		utils.Error(ctx, http.StatusNotFound, 40441, "region not found")
	case errors.Is(err, game.ErrQuestIncomplete):
		utils.Error(ctx, http.StatusConflict, 40940, "quest not complete")
	case errors.Is(err, game.ErrQuestClaimed):
		utils.Error(ctx, http.StatusConflict, 40941, "quest reward already claimed")
	default:
		utils.Error(ctx, http.StatusInternalServerError, fallbackCode, "progress store unavailable")
	}
}
