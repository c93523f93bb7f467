package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cppla/travelquest/config"
	"github.com/cppla/travelquest/controllers"
	"github.com/cppla/travelquest/game"
	"github.com/cppla/travelquest/middleware"
	"github.com/cppla/travelquest/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(db *gorm.DB, svc *game.Service) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	// Access logs go to their own rolling file; fall back to the app logger.
	gl, err := utils.NewRollingFileLogger(cfg.GinPath, cfg)
	if err != nil {
		gl = utils.Logger
	}
	r.Use(ginzap.GinzapWithConfig(gl, &ginzap.Config{
		TimeFormat: time.RFC3339,
		UTC:        true,
		SkipPaths:  []string{"/health"},
	}))
	r.Use(ginzap.RecoveryWithZap(gl, false))

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 0 || (len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*") {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	r.GET("/health", func(ctx *gin.Context) {
		utils.Success(ctx, gin.H{"status": "ok"})
	})

	controllers.RegisterValidators()
	authController := controllers.NewAuthController(db)
	checkinController := controllers.NewCheckinController(svc)
	progressController := controllers.NewProgressController(db, svc)
	reviewController := controllers.NewReviewController(db, svc)
	catalogController := controllers.NewCatalogController(float64(cfg.NearbyRadiusMeters))

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimitMiddleware(cfg.RateLimitPerMinute))

	authGroup := api.Group("/auth")
	authGroup.POST("/register", authController.Register)
	authGroup.POST("/login", authController.Login)
	authGroup.POST("/logout", middleware.AuthRequired(), authController.Logout)
	authGroup.GET("/me", middleware.AuthRequired(), authController.Me)

	catalogGroup := api.Group("/catalog")
	catalogGroup.GET("/achievements", catalogController.Achievements)
	catalogGroup.GET("/levels", catalogController.Levels)
	catalogGroup.GET("/quests", catalogController.Quests)
	catalogGroup.GET("/categories", catalogController.Categories)
	catalogGroup.GET("/regions", catalogController.Regions)

	api.GET("/places/nearby", catalogController.Nearby)
	api.GET("/places/region", catalogController.RegionForCity)
	api.GET("/feed", reviewController.Feed)

	protected := api.Group("")
	protected.Use(middleware.AuthRequired())

	protected.POST("/checkins", middleware.UserRateLimit(cfg.CheckinRateLimitPerMinute), checkinController.CheckIn)
	protected.GET("/checkins/recent", checkinController.Recent)

	me := protected.Group("/me")
	me.GET("/profile", progressController.Profile)
	me.GET("/level", progressController.Level)
	me.GET("/achievements", progressController.Achievements)
	me.GET("/quests", progressController.Quests)
	me.POST("/quests/:id/claim", progressController.ClaimQuest)
	me.POST("/regions/:id/complete", progressController.CompleteRegion)
	me.POST("/photos", progressController.RecordPhotos)
	me.DELETE("/progress", progressController.Reset)

	protected.POST("/reviews", reviewController.CreateReview)
	protected.POST("/reviews/:id/like", reviewController.LikeReview)

	r.NoRoute(func(ctx *gin.Context) {
		utils.Error(ctx, http.StatusNotFound, 40400, "route not found")
	})

	return r
}
