package main

import (
	"context"
	"time"
	_ "time/tzdata"

	"go.uber.org/zap"

	"github.com/cppla/travelquest/config"
	"github.com/cppla/travelquest/game"
	"github.com/cppla/travelquest/models"
	"github.com/cppla/travelquest/routes"
	"github.com/cppla/travelquest/store"
	"github.com/cppla/travelquest/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}
	if err := utils.InitSnowflake(cfg.SnowflakeNode); err != nil {
		utils.Sugar.Fatalf("snowflake node %d: %v", cfg.SnowflakeNode, err)
	}

	db := config.InitDatabase(&models.User{}, &models.Review{})

	var progress store.Store
	if rc := utils.GetRedis(); rc != nil {
		progress = store.NewRedisStore(rc, cfg.RedisKeyPrefix, utils.NextID)
		utils.Logger.Info("progress store", zap.String("backend", "redis"), zap.String("prefix", cfg.RedisKeyPrefix))
	} else {
		progress = store.NewMemoryStore(utils.NextID)
		utils.Logger.Warn("progress store", zap.String("backend", "memory"))
	}

	svc := game.NewService(progress, utils.Logger.Named("game"),
		game.WithLocation(cfg.Location()),
		game.WithQueueDepth(cfg.QueueDepth),
		game.WithMaxSkew(time.Duration(cfg.CheckinMaxSkewSec)*time.Second),
	)

	r := routes.SetupRouter(db, svc)

	srv := utils.NewServer(":"+cfg.AppPort, r)
	srv.OnShutdown(func(context.Context) {
		utils.CloseRedis()
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := srv.ListenAndServe(); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
