package controllers

import (
	"net/http"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cppla/travelquest/middleware"
	"github.com/cppla/travelquest/models"
	"github.com/cppla/travelquest/utils"
)

// AuthController handles local account registration and token sessions.
type AuthController struct {
	db *gorm.DB
}

// NewAuthController creates an AuthController.
func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{db: db}
}

// Register handles local account registration with bcrypt hashing.
func (a *AuthController) Register(ctx *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Email    string `json:"email" binding:"omitempty,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40001, "invalid request payload")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if l := len([]rune(req.Username)); l < 2 || l > 20 || !validUsername(req.Username) {
		utils.Error(ctx, http.StatusBadRequest, 40002, "username must be 2-20 letters, digits, '-' or '_'")
		return
	}
	if !utils.ValidPassword(req.Password) {
		utils.Error(ctx, http.StatusBadRequest, 40002, "password must be 8-64 characters with a letter and a digit")
		return
	}

	var count int64
	if err := a.db.Model(&models.User{}).Where("username = ?", req.Username).Count(&count).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50001, "failed to check username")
		return
	}
	if count > 0 {
		utils.Error(ctx, http.StatusConflict, 40901, "username already exists")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50001, "failed to hash password")
		return
	}

	user := models.User{
		Username:     req.Username,
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: hash,
		RegisterIP:   ctx.ClientIP(),
	}
	if err := a.db.Create(&user).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50002, "failed to create user")
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Username, utils.TokenTTL)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50003, "failed to generate token")
		return
	}
	utils.Sugar.Infow("user registered", "user_id", user.ID, "ip", user.RegisterIP)

	utils.Success(ctx, gin.H{
		"token": token,
		"user":  sanitizeUserResponse(user),
	})
}

// validUsername allows letters of any script, digits, '-' and '_'.
func validUsername(s string) bool {
	for _, r := range s {
		if r == '-' || r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}

// Login verifies user credentials and issues a JWT.
func (a *AuthController) Login(ctx *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40003, "invalid request payload")
		return
	}

	var user models.User
	if err := a.db.Where("username = ?", strings.TrimSpace(req.Username)).First(&user).Error; err != nil {
		utils.Error(ctx, http.StatusUnauthorized, 40106, "invalid username or password")
		return
	}
	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		utils.Error(ctx, http.StatusUnauthorized, 40106, "invalid username or password")
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Username, utils.TokenTTL)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50004, "failed to generate token")
		return
	}

	utils.Success(ctx, gin.H{
		"token": token,
		"user":  sanitizeUserResponse(user),
	})
}

// Logout invalidates the token by blacklisting it until expiration.
func (a *AuthController) Logout(ctx *gin.Context) {
	claims, ok := ctx.MustGet(middleware.ContextClaimsKey).(*utils.Claims)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40107, "invalid token")
		return
	}
	utils.BlacklistToken(ctx.Request.Context(), ctx.GetString(middleware.ContextTokenKey), utils.TokenExpiry(claims))
	utils.Success(ctx, gin.H{"message": "logged out"})
}

// Me returns the authenticated account.
func (a *AuthController) Me(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40108, "unauthorized")
		return
	}

	var user models.User
	if err := a.db.First(&user, userID).Error; err != nil {
		utils.Error(ctx, http.StatusNotFound, 40401, "user not found")
		return
	}
	utils.Success(ctx, sanitizeUserResponse(user))
}

func sanitizeUserResponse(user models.User) gin.H {
	return gin.H{
		"id":         user.ID,
		"username":   user.Username,
		"email":      user.Email,
		"avatar_url": user.AvatarURL,
		"created_at": user.CreatedAt,
	}
}
