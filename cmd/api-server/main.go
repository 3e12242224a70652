package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"facultyreview/database"
	"facultyreview/internal/config"
	"facultyreview/internal/directory"
	"facultyreview/internal/http-api/handler"
	"facultyreview/internal/http-api/middleware"
	"facultyreview/internal/http-api/repository"
	"facultyreview/internal/http-api/service"
)

func main() {
	// Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := newLogger(cfg)

	// Connect to the database
	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	// Load the faculty directory dataset
	dir, err := directory.Load(cfg.FacultyDataPath)
	if err != nil {
		logger.Error("faculty directory load failed", "error", err)
		os.Exit(1)
	}
	logger.Info("Faculty directory loaded", "entries", dir.Count())

	// Stats cache is optional; the service degrades to the database without it
	cache, err := repository.NewStatsCache(cfg.RedisURL, cfg.RedisPassword, time.Duration(cfg.CacheTTL)*time.Second)
	if err != nil {
		logger.Warn("stats cache unavailable, continuing without it", "error", err)
		cache = nil
	} else {
		defer cache.Close()
	}

	// Repositories
	reviewRepo := repository.NewReviewRepository(db)
	rateLimitRepo := repository.NewRateLimitRepository(db)

	// Services
	reviewService := service.NewReviewService(reviewRepo, rateLimitRepo, cfg.IPHashSecret, cfg.ReviewCooldown, logger)
	statsService := service.NewStatsService(reviewRepo, dir, cache, logger)
	adminService := service.NewAdminService(cfg.AdminPasswordHash, cfg.JWTSecret, cfg.AccessTokenTTL)

	// Handlers
	reviewHandler := handler.NewReviewHandler(reviewService, statsService)
	facultyHandler := handler.NewFacultyHandler(dir)
	adminHandler := handler.NewAdminHandler(adminService, reviewService, statsService)

	// Setup Gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.Throttle(cfg.ThrottleRPS, cfg.ThrottleBurst))

	r.GET("/check-conn", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"message": "API is alive and database connected"})
	})

	api := r.Group("/api")
	reviewHandler.RegisterRoutes(api)
	facultyHandler.RegisterRoutes(api)

	api.POST("/admin/login", adminHandler.Login)
	admin := api.Group("/admin", middleware.AdminAuth(adminService))
	admin.DELETE("/reviews/:id", adminHandler.DeleteReview)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	// Handle shutdown signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutdown signal received, stopping server")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("server shutdown failed", "error", err)
		}
	}()

	logger.Info("Server running", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server failed", "error", err)
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
