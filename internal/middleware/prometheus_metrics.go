package middleware

import (
	"strconv"
	"time"

	"github.com/adityachavhan45/blogbackend/internal/metrics"
	"github.com/gin-gonic/gin"
)

// MetricsMiddleware collects HTTP metrics for Prometheus
func MetricsMiddleware() gin.HandlerFunc {
	m := metrics.Get()

	return func(c *gin.Context) {
		method := c.Request.Method
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		startTime := time.Now()

		c.Next()

		duration := time.Since(startTime).Seconds()
		// Use numeric status code as string (e.g., "200", "500") for Prometheus label
		statusStr := strconv.Itoa(c.Writer.Status())

		m.HTTPRequestsTotal.WithLabelValues(method, path, statusStr).Inc()
		m.HTTPRequestDuration.WithLabelValues(method, path, statusStr).Observe(duration)
	}
}

// RecordCacheHit records a cache hit for the named cache
func RecordCacheHit(cacheName string) {
	metrics.Get().CacheHitsTotal.WithLabelValues(cacheName).Inc()
}

// RecordCacheMiss records a cache miss for the named cache
func RecordCacheMiss(cacheName string) {
	metrics.Get().CacheMissesTotal.WithLabelValues(cacheName).Inc()
}
