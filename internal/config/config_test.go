package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultWeights(t *testing.T) {
	w := DefaultWeights()

	assert.InDelta(t, 0.3, w.InterestLiked, 1e-9)
	assert.InDelta(t, 0.5, w.InterestCommented, 1e-9)
	assert.InDelta(t, 0.7, w.InterestShared, 1e-9)
	assert.InDelta(t, 1.0, w.TrendingVisit, 1e-9)
	assert.InDelta(t, 0.5, w.TrendingRead, 1e-9)
	assert.InDelta(t, 5.0, w.TrendingComment, 1e-9)
	assert.InDelta(t, 3.0, w.TrendingLike, 1e-9)
	assert.InDelta(t, 4.0, w.TrendingShare, 1e-9)
	assert.Equal(t, 7*24*time.Hour, w.TrendingWindow)
}

func TestLoadUsesDefaults(t *testing.T) {
	cfg := Load()

	assert.NotEmpty(t, cfg.Port)
	assert.NotEmpty(t, cfg.LogLevel)
	assert.Equal(t, "6379", cfg.RedisPort)
}

func TestLoadWeightOverrides(t *testing.T) {
	t.Setenv("INTEREST_WEIGHT_LIKED", "0.9")
	t.Setenv("TRENDING_WEIGHT_COMMENT", "10")
	t.Setenv("TRENDING_WINDOW", "48h")

	cfg := Load()

	assert.InDelta(t, 0.9, cfg.Weights.InterestLiked, 1e-9)
	assert.InDelta(t, 10.0, cfg.Weights.TrendingComment, 1e-9)
	assert.Equal(t, 48*time.Hour, cfg.Weights.TrendingWindow)

	// Untouched weights keep their defaults
	assert.InDelta(t, 0.7, cfg.Weights.InterestShared, 1e-9)
}

func TestLoadIgnoresMalformedOverrides(t *testing.T) {
	t.Setenv("INTEREST_WEIGHT_LIKED", "not-a-number")
	t.Setenv("TRENDING_WINDOW", "soon")

	cfg := Load()

	assert.InDelta(t, 0.3, cfg.Weights.InterestLiked, 1e-9)
	assert.Equal(t, 7*24*time.Hour, cfg.Weights.TrendingWindow)
}

func TestTrendingCacheTTL(t *testing.T) {
	t.Setenv("TRENDING_CACHE_TTL", "0s")
	cfg := Load()
	assert.Equal(t, time.Duration(0), cfg.TrendingCacheTTL)

	t.Setenv("TRENDING_CACHE_TTL", "5m")
	cfg = Load()
	assert.Equal(t, 5*time.Minute, cfg.TrendingCacheTTL)
}
