package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/adityachavhan45/blogbackend/internal/cache"
	"github.com/adityachavhan45/blogbackend/internal/config"
	"github.com/adityachavhan45/blogbackend/internal/database"
	"github.com/adityachavhan45/blogbackend/internal/handlers"
	"github.com/adityachavhan45/blogbackend/internal/logger"
	"github.com/adityachavhan45/blogbackend/internal/metrics"
	"github.com/adityachavhan45/blogbackend/internal/middleware"
	"github.com/adityachavhan45/blogbackend/internal/recommendations"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	cfg := config.Load()

	// Initialize structured logging
	if err := logger.Initialize(cfg.LogLevel, cfg.LogFile); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Close()

	logger.Log.Info("=== Blog backend starting ===")

	// Initialize database
	if err := database.Initialize(); err != nil {
		logger.FatalWithFields("Failed to initialize database", err)
	}
	defer database.Close()

	// Run migrations
	if err := database.Migrate(); err != nil {
		logger.FatalWithFields("Failed to run migrations", err)
	}

	// Initialize Redis (optional - trending cache is skipped without it)
	if cfg.RedisHost != "" {
		redisClient, err := cache.NewRedisClient(cfg.RedisHost, cfg.RedisPort, cfg.RedisPassword)
		if err != nil {
			logger.WarnWithFields("Redis unavailable, trending responses will not be cached", err)
		} else {
			defer redisClient.Close()
		}
	}

	jwtSecret := []byte(cfg.JWTSecret)
	if len(jwtSecret) == 0 {
		logger.FatalWithFields("JWT_SECRET environment variable is required", nil)
	}

	// Register Prometheus metrics
	metrics.Initialize()

	// Build the recommendation engine
	recService := recommendations.NewService(database.DB, cfg.Weights)
	h := handlers.NewHandlers(recService)

	// Setup Gin router
	if os.Getenv("ENVIRONMENT") != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.GinLoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	// CORS middleware
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"} // Configure properly for production
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	r.GET("/health", h.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		blogs := api.Group("/blogs")
		{
			blogs.GET("", h.ListBlogs)
			blogs.GET("/categories", h.GetCategories)
			blogs.GET("/:id", h.GetBlog)
		}

		recs := api.Group("/recommendations")
		{
			// Trending is public and briefly cached; the engine still
			// recomputes the rolling window on every cache miss
			recs.GET("/trending", middleware.ResponseCacheMiddleware(cfg.TrendingCacheTTL), h.GetTrending)

			authed := recs.Group("")
			authed.Use(middleware.AuthMiddleware(jwtSecret))
			{
				authed.POST("/track-activity", h.TrackActivity)
				authed.GET("/personalized", h.GetPersonalized)
			}
		}
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.InfoWithFields("Server listening on :" + cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.FatalWithFields("Server failed", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.ErrorWithFields("Forced shutdown", err)
	}

	logger.Log.Info("Server exited")
}
