package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"mangarate/database"
	"mangarate/internal/config"
	"mangarate/internal/session"
	"mangarate/internal/storage"
	"mangarate/internal/webapi/handler"
	"mangarate/internal/webapi/middleware"
	"mangarate/internal/webapi/repository"
	"mangarate/internal/webapi/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	gateStore, err := session.NewGateStore(cfg.RedisURL, cfg.RedisPassword)
	if err != nil {
		logger.Error("redis connection failed", "error", err)
		os.Exit(1)
	}
	defer gateStore.Close()

	store, err := storage.NewDiskStore(cfg.UploadDir, cfg.UploadBaseURL)
	if err != nil {
		logger.Error("upload storage init failed", "error", err)
		os.Exit(1)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	workRepo := repository.NewWorkRepo(db)
	ratingRepo := repository.NewRatingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	linkRepo := repository.NewReadingLinkRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, cfg)
	oidcService := service.NewOIDCService(cfg, logger)
	workService := service.NewWorkService(workRepo, ratingRepo, linkRepo)
	ratingService := service.NewRatingService(ratingRepo, workRepo)
	reviewService := service.NewReviewService(reviewRepo, workRepo)
	linkService := service.NewReadingLinkService(linkRepo, workRepo)
	favoriteService := service.NewFavoriteService(favoriteRepo, workRepo)
	uploadService := service.NewUploadService(store)
	gateService := service.NewAdminGateService(cfg.AdminPasswordHash, gateStore, cfg.AdminGateTTL)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, oidcService, cfg)
	workHandler := handler.NewWorkHandler(workService)
	ratingHandler := handler.NewRatingHandler(ratingService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	linkHandler := handler.NewReadingLinkHandler(linkService)
	favoriteHandler := handler.NewFavoriteHandler(favoriteService)
	uploadHandler := handler.NewUploadHandler(uploadService)
	adminHandler := handler.NewAdminHandler(gateService, cfg)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.RateLimit(10, 20))
	r.Use(middleware.Session(authService, cfg.CookieName))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		authHandler.RegisterRoutes(api.Group("/auth"))
		adminHandler.RegisterRoutes(api.Group("/admin"))

		works := api.Group("/works")
		workHandler.RegisterRoutes(works)
		ratingHandler.RegisterRoutes(works)
		reviewHandler.RegisterWorkRoutes(works)
		linkHandler.RegisterWorkRoutes(works)

		reviewHandler.RegisterRoutes(api.Group("/reviews"))
		linkHandler.RegisterRoutes(api.Group("/reading-links"))
		favoriteHandler.RegisterRoutes(api.Group("/favorites"))
		uploadHandler.RegisterRoutes(api.Group("/upload"))
	}

	// Serve uploaded cover images straight from the disk store
	r.Static("/uploads", store.Dir())

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("server starting", "addr", addr, "env", cfg.GoEnv)
	if err := r.Run(addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
