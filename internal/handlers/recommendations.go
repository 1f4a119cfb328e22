package handlers

import (
	"net/http"

	"github.com/adityachavhan45/blogbackend/internal/logger"
	"github.com/adityachavhan45/blogbackend/internal/metrics"
	"github.com/adityachavhan45/blogbackend/internal/recommendations"
	"github.com/adityachavhan45/blogbackend/internal/util"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// trackActivityRequest is the body of POST /api/recommendations/track-activity
type trackActivityRequest struct {
	BlogID         string  `json:"blog_id" binding:"required"`
	TimeSpent      int     `json:"time_spent"`
	ReadPercentage float64 `json:"read_percentage"`
	Liked          bool    `json:"liked"`
	Commented      bool    `json:"commented"`
	Shared         bool    `json:"shared"`
}

// TrackActivity records one engagement event for the authenticated user
// POST /api/recommendations/track-activity
func (h *Handlers) TrackActivity(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		util.RespondUnauthorized(c)
		return
	}

	var req trackActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondBadRequest(c, "invalid request body")
		return
	}

	_, err := h.recs.TrackActivity(c.Request.Context(), recommendations.TrackActivityInput{
		UserID:         userID,
		BlogID:         req.BlogID,
		TimeSpent:      req.TimeSpent,
		ReadPercentage: req.ReadPercentage,
		Liked:          req.Liked,
		Commented:      req.Commented,
		Shared:         req.Shared,
	})
	if err != nil {
		// Write-path errors surface to the caller: dropping engagement data
		// silently would corrupt future recommendations
		util.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetPersonalized returns the authenticated user's personalized feed
// GET /api/recommendations/personalized?limit=5
func (h *Handlers) GetPersonalized(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		util.RespondUnauthorized(c)
		return
	}

	limit := util.ParseInt(c.DefaultQuery("limit", "5"), 5)

	blogs, err := h.recs.Personalized(c.Request.Context(), userID, limit)
	if err != nil {
		logger.Error("Failed to build personalized recommendations",
			logger.WithUserID(userID),
			zap.Error(err),
		)
		util.RespondInternalError(c, "failed to get recommendations")
		return
	}

	c.JSON(http.StatusOK, blogs)
}

// GetTrending returns the globally trending blogs; no authentication required
// GET /api/recommendations/trending?limit=5
func (h *Handlers) GetTrending(c *gin.Context) {
	limit := util.ParseInt(c.DefaultQuery("limit", "5"), 5)

	blogs, err := h.recs.Trending(c.Request.Context(), limit, nil)
	if err != nil {
		logger.ErrorWithFields("Failed to get trending blogs", err)
		util.RespondInternalError(c, "failed to get trending blogs")
		return
	}

	metrics.Get().TrendingCandidatesServed.WithLabelValues("trending").Observe(float64(len(blogs)))
	c.JSON(http.StatusOK, blogs)
}
