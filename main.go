package main

import (
	"context"
	"log"
	"time"

	"github.com/VicellesJaylourdE/MARBF-CooperativePH/cmd"
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/internal/data/repository"
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/internal/wire"
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/pkg/cache"
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/pkg/database"
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Run schema migrations
	if err := database.Migrate(config.Database); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Redis-backed report cache
	redisClient := cache.NewRedisClient(config.Redis)
	defer redisClient.Close()

	reportCache := cache.NewCache(redisClient, time.Duration(config.Redis.CacheTTL)*time.Second)

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Purge expired sessions hourly
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if err := repos.Session.CleanExpiredSessions(context.Background()); err != nil {
				logger.Warn("Session cleanup failed", zap.Error(err))
			}
		}
	}()

	// Wire all dependencies
	app := wire.Wiring(repos, config, reportCache, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
