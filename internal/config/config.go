package config

import (
	"os"
	"strconv"
	"time"
)

// ScoringWeights holds the tunable constants of the recommendation engine.
// Defaults match the values the ranking was originally tuned with; override
// via environment variables when experimenting.
type ScoringWeights struct {
	// Per-activity interest extraction weights
	InterestLiked     float64
	InterestCommented float64
	InterestShared    float64

	// Per-blog trending aggregation weights
	TrendingVisit   float64
	TrendingRead    float64
	TrendingComment float64
	TrendingLike    float64
	TrendingShare   float64

	// Rolling lookback for trending aggregation
	TrendingWindow time.Duration
}

// Config holds server configuration loaded from the environment
type Config struct {
	Port     string
	LogLevel string
	LogFile  string

	RedisHost     string
	RedisPort     string
	RedisPassword string

	JWTSecret string

	// TTL for the cached public trending response; 0 disables caching
	TrendingCacheTTL time.Duration

	Weights ScoringWeights
}

// DefaultWeights returns the engine's default scoring constants
func DefaultWeights() ScoringWeights {
	return ScoringWeights{
		InterestLiked:     0.3,
		InterestCommented: 0.5,
		InterestShared:    0.7,
		TrendingVisit:     1,
		TrendingRead:      0.5,
		TrendingComment:   5,
		TrendingLike:      3,
		TrendingShare:     4,
		TrendingWindow:    7 * 24 * time.Hour,
	}
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:             getEnvOrDefault("PORT", "8080"),
		LogLevel:         getEnvOrDefault("LOG_LEVEL", "info"),
		LogFile:          getEnvOrDefault("LOG_FILE", "server.log"),
		RedisHost:        os.Getenv("REDIS_HOST"),
		RedisPort:        getEnvOrDefault("REDIS_PORT", "6379"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		TrendingCacheTTL: getEnvDuration("TRENDING_CACHE_TTL", 60*time.Second),
		Weights:          loadWeights(),
	}
}

func loadWeights() ScoringWeights {
	w := DefaultWeights()
	w.InterestLiked = getEnvFloat("INTEREST_WEIGHT_LIKED", w.InterestLiked)
	w.InterestCommented = getEnvFloat("INTEREST_WEIGHT_COMMENTED", w.InterestCommented)
	w.InterestShared = getEnvFloat("INTEREST_WEIGHT_SHARED", w.InterestShared)
	w.TrendingVisit = getEnvFloat("TRENDING_WEIGHT_VISIT", w.TrendingVisit)
	w.TrendingRead = getEnvFloat("TRENDING_WEIGHT_READ", w.TrendingRead)
	w.TrendingComment = getEnvFloat("TRENDING_WEIGHT_COMMENT", w.TrendingComment)
	w.TrendingLike = getEnvFloat("TRENDING_WEIGHT_LIKE", w.TrendingLike)
	w.TrendingShare = getEnvFloat("TRENDING_WEIGHT_SHARE", w.TrendingShare)
	w.TrendingWindow = getEnvDuration("TRENDING_WINDOW", w.TrendingWindow)
	return w
}

// getEnvOrDefault returns environment variable or default value
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
