package middleware

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/adityachavhan45/blogbackend/internal/cache"
	"github.com/adityachavhan45/blogbackend/internal/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ResponseCacheMiddleware caches successful GET responses with configurable TTL
// Only caches 2xx responses
// Adds X-Cache: HIT/MISS header for debugging
// Cache key is: response:{path}:{query_string}
func ResponseCacheMiddleware(ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Only cache GET requests
		if c.Request.Method != http.MethodGet || ttl <= 0 {
			c.Next()
			return
		}

		redisClient := cache.GetRedisClient()
		if redisClient == nil {
			// Redis not available, skip caching
			c.Next()
			return
		}

		cacheKey := generateCacheKey(c.Request.URL.Path, c.Request.URL.RawQuery)
		ctx := c.Request.Context()

		cachedData, err := redisClient.Get(ctx, cacheKey)
		if err == nil {
			RecordCacheHit("response_cache")
			c.Header("X-Cache", "HIT")
			c.Header("Cache-Control", fmt.Sprintf("public, max-age=%d", int(ttl.Seconds())))
			c.Data(http.StatusOK, "application/json", []byte(cachedData))
			c.Abort()
			return
		}

		RecordCacheMiss("response_cache")

		// Headers must go out before the handler writes the body
		c.Header("X-Cache", "MISS")
		c.Header("Cache-Control", fmt.Sprintf("public, max-age=%d", int(ttl.Seconds())))

		// Capture the response body and store it
		writer := &cachedResponseWriter{
			ResponseWriter: c.Writer,
			body:           &bytes.Buffer{},
		}
		c.Writer = writer

		c.Next()

		status := writer.Status()
		if status >= 200 && status < 300 && writer.body.Len() > 0 {
			if err := redisClient.SetEx(ctx, cacheKey, writer.body.String(), ttl); err != nil {
				logger.Log.Debug("Failed to write response to cache",
					zap.String("key", cacheKey),
					zap.Error(err),
				)
			}
		}
	}
}

// generateCacheKey creates a cache key from request path and query params
func generateCacheKey(path, query string) string {
	key := fmt.Sprintf("response:%s", path)
	if query != "" {
		key = fmt.Sprintf("%s:%s", key, query)
	}
	return key
}

// cachedResponseWriter duplicates the response body into a buffer
type cachedResponseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *cachedResponseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *cachedResponseWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
