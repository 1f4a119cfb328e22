package handlers

import (
	"net/http"
	"time"

	"github.com/adityachavhan45/blogbackend/internal/database"
	"github.com/adityachavhan45/blogbackend/internal/recommendations"
	"github.com/gin-gonic/gin"
)

// Handlers contains all HTTP handlers for the API
type Handlers struct {
	recs *recommendations.Service
}

// NewHandlers creates a new handlers instance
func NewHandlers(recs *recommendations.Service) *Handlers {
	return &Handlers{
		recs: recs,
	}
}

// Health reports service and database health
// GET /health
func (h *Handlers) Health(c *gin.Context) {
	status := "ok"
	code := http.StatusOK
	if err := database.Health(); err != nil {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":    status,
		"timestamp": time.Now().UTC(),
		"service":   "blog-backend",
	})
}
