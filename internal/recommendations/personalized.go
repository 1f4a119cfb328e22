package recommendations

import (
	"context"
	"time"

	"github.com/adityachavhan45/blogbackend/internal/logger"
	"github.com/adityachavhan45/blogbackend/internal/metrics"
	"github.com/adityachavhan45/blogbackend/internal/models"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Personalized returns up to limit blogs ranked for one user: interest-matched
// catalog entries first, trending backfill for the remainder. Blogs the user
// has already interacted with never appear.
//
// Degradation order when signal or the store runs out:
// interest-matched -> trending -> most recent.
func (s *Service) Personalized(ctx context.Context, userID string, limit int) ([]models.Blog, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	start := time.Now()
	defer func() {
		metrics.Get().RecommendationDuration.WithLabelValues("personalized").Observe(time.Since(start).Seconds())
	}()

	var activities []models.UserActivity
	err := s.db.WithContext(ctx).
		Preload("Blog").
		Where("user_id = ?", userID).
		Order("last_visited DESC").
		Find(&activities).Error
	if err != nil {
		logger.WarnWithFields("Failed to load user activity, degrading to trending", err)
		metrics.Get().RecommendationFallbacks.WithLabelValues("personalized", "trending").Inc()
		return s.Trending(ctx, limit, nil)
	}

	if len(activities) == 0 {
		// No history, no personalization signal
		metrics.Get().RecommendationFallbacks.WithLabelValues("personalized", "trending").Inc()
		return s.Trending(ctx, limit, nil)
	}

	profile := ExtractInterests(activities, s.weights)
	consumed := make([]string, 0, len(activities))
	for _, activity := range activities {
		consumed = append(consumed, activity.BlogID)
	}

	if profile.IsEmpty() {
		// History exists but none of the blogs survived to contribute signal
		metrics.Get().RecommendationFallbacks.WithLabelValues("personalized", "trending").Inc()
		return s.Trending(ctx, limit, consumed)
	}

	matched, err := s.interestMatchedBlogs(ctx, profile, consumed, limit)
	if err != nil {
		logger.WarnWithFields("Interest-matched query failed, degrading to trending", err)
		metrics.Get().RecommendationFallbacks.WithLabelValues("personalized", "trending").Inc()
		return s.Trending(ctx, limit, consumed)
	}

	if len(matched) < limit {
		// Backfill from trending, excluding consumed and already selected so
		// the combined list carries no duplicates
		exclude := append(collectIDs(matched), consumed...)
		additional, err := s.Trending(ctx, limit-len(matched), exclude)
		if err != nil {
			// Trending already exhausted its own fallbacks; serve what we have
			logger.WarnWithFields("Trending backfill failed, serving partial recommendations", err)
			return matched, nil
		}
		matched = append(matched, additional...)
	}

	return matched, nil
}

// interestMatchedBlogs queries the catalog for unconsumed blogs matching the
// profile's top categories or overlapping its top tags, newest first
func (s *Service) interestMatchedBlogs(ctx context.Context, profile InterestProfile, consumed []string, limit int) ([]models.Blog, error) {
	query := s.db.WithContext(ctx).
		Where("id NOT IN ?", consumed).
		Order("created_at DESC").
		Limit(limit)

	query = applyInterestFilter(query, profile)

	var blogs []models.Blog
	if err := query.Find(&blogs).Error; err != nil {
		return nil, err
	}
	return blogs, nil
}

// applyInterestFilter adds the category/tag match condition; empty sides of
// the profile are left out of the SQL entirely
func applyInterestFilter(query *gorm.DB, profile InterestProfile) *gorm.DB {
	categories := profile.CategoryNames()
	tags := profile.TagNames()

	switch {
	case len(categories) > 0 && len(tags) > 0:
		return query.Where("category IN ? OR tags && ?", categories, pq.StringArray(tags))
	case len(categories) > 0:
		return query.Where("category IN ?", categories)
	default:
		return query.Where("tags && ?", pq.StringArray(tags))
	}
}
