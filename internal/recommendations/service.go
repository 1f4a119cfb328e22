package recommendations

import (
	"github.com/adityachavhan45/blogbackend/internal/config"
	"gorm.io/gorm"
)

// DefaultLimit is the number of blogs returned when the caller does not ask
// for a specific count
const DefaultLimit = 5

// Service implements activity tracking, interest extraction, trending
// aggregation and personalized recommendation selection over the activity
// store and the blog catalog.
//
// All methods are safe for concurrent use; the only write path
// (TrackActivity) merges through a single atomic upsert.
type Service struct {
	db      *gorm.DB
	weights config.ScoringWeights
}

// NewService creates a recommendation service
func NewService(db *gorm.DB, weights config.ScoringWeights) *Service {
	return &Service{
		db:      db,
		weights: weights,
	}
}
