package recommendations

import (
	"context"
	"time"

	"github.com/adityachavhan45/blogbackend/internal/logger"
	"github.com/adityachavhan45/blogbackend/internal/metrics"
	"github.com/adityachavhan45/blogbackend/internal/models"
)

// TrendingEntry is the per-blog aggregate over the rolling activity window
type TrendingEntry struct {
	BlogID            string  `json:"blog_id"`
	TotalVisits       int     `json:"total_visits"`
	AvgReadPercentage float64 `json:"avg_read_percentage"`
	CommentCount      int     `json:"comment_count"`
	LikeCount         int     `json:"like_count"`
	ShareCount        int     `json:"share_count"`
	EngagementScore   float64 `json:"engagement_score"`
}

// Trending returns up to limit blogs ranked by aggregated engagement over the
// rolling window, excluding the given blog ids. Degradation is built in:
// sparse recent activity backfills with the newest blogs, and if the
// aggregation query itself fails the newest blogs are served instead of an
// error. A trending request never fails a page render over a store hiccup.
func (s *Service) Trending(ctx context.Context, limit int, excludeIDs []string) ([]models.Blog, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	start := time.Now()
	defer func() {
		metrics.Get().RecommendationDuration.WithLabelValues("trending").Observe(time.Since(start).Seconds())
	}()

	blogs, err := s.trendingBlogs(ctx, limit, excludeIDs)
	if err != nil {
		// Hard fallback: newest blogs overall, excludes ignored
		logger.WarnWithFields("Trending aggregation failed, serving newest blogs", err)
		metrics.Get().RecommendationFallbacks.WithLabelValues("trending", "recent_hard").Inc()
		return s.recentBlogs(ctx, limit, nil)
	}
	return blogs, nil
}

// trendingBlogs runs the full candidate pipeline: aggregate 2x candidates,
// filter exclusions, truncate, backfill with recent blogs when short.
func (s *Service) trendingBlogs(ctx context.Context, limit int, excludeIDs []string) ([]models.Blog, error) {
	// Overfetch so exclusion filtering can still fill the request
	entries, err := s.trendingCandidates(ctx, 2*limit)
	if err != nil {
		return nil, err
	}

	excluded := makeIDSet(excludeIDs)
	selected := make([]string, 0, limit)
	for _, entry := range entries {
		if excluded[entry.BlogID] {
			continue
		}
		selected = append(selected, entry.BlogID)
		if len(selected) == limit {
			break
		}
	}

	blogs, err := s.blogsInRankedOrder(ctx, selected)
	if err != nil {
		return nil, err
	}

	if len(blogs) < limit {
		// Too little recent activity: backfill with the newest blogs not
		// already excluded or selected
		backfillExclude := append(collectIDs(blogs), excludeIDs...)
		recent, err := s.recentBlogs(ctx, limit-len(blogs), backfillExclude)
		if err != nil {
			return nil, err
		}
		if len(recent) > 0 {
			metrics.Get().RecommendationFallbacks.WithLabelValues("trending", "recent").Inc()
		}
		blogs = append(blogs, recent...)
	}

	return blogs, nil
}

// trendingCandidates aggregates activity rows created inside the rolling
// window, grouped per blog and ranked by weighted engagement score.
//
// The window keys on record creation time, not last visit: a pair first
// tracked outside the window contributes nothing even if revisited today.
// That matches the tuned production behavior; see DESIGN.md before changing.
func (s *Service) trendingCandidates(ctx context.Context, candidateLimit int) ([]TrendingEntry, error) {
	w := s.weights
	since := time.Now().UTC().Add(-w.TrendingWindow)

	var entries []TrendingEntry
	err := s.db.WithContext(ctx).
		Model(&models.UserActivity{}).
		Select(`blog_id,
			SUM(visit_count) AS total_visits,
			AVG(read_percentage) AS avg_read_percentage,
			COUNT(*) FILTER (WHERE commented) AS comment_count,
			COUNT(*) FILTER (WHERE liked) AS like_count,
			COUNT(*) FILTER (WHERE shared) AS share_count,
			SUM(visit_count) * ?
				+ AVG(read_percentage) * ?
				+ (COUNT(*) FILTER (WHERE commented)) * ?
				+ (COUNT(*) FILTER (WHERE liked)) * ?
				+ (COUNT(*) FILTER (WHERE shared)) * ? AS engagement_score`,
			w.TrendingVisit, w.TrendingRead, w.TrendingComment, w.TrendingLike, w.TrendingShare).
		Where("created_at >= ?", since).
		Group("blog_id").
		Order("engagement_score DESC").
		Limit(candidateLimit).
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// blogsInRankedOrder fetches the blogs for the given ids and returns them in
// the same order as ids. Ids with no surviving blog row are dropped.
func (s *Service) blogsInRankedOrder(ctx context.Context, ids []string) ([]models.Blog, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var blogs []models.Blog
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&blogs).Error; err != nil {
		return nil, err
	}

	byID := make(map[string]models.Blog, len(blogs))
	for _, blog := range blogs {
		byID[blog.ID] = blog
	}

	ordered := make([]models.Blog, 0, len(ids))
	for _, id := range ids {
		if blog, ok := byID[id]; ok {
			ordered = append(ordered, blog)
		}
	}
	return ordered, nil
}

// recentBlogs returns the newest blogs not in excludeIDs, the crudest
// candidate source in the fallback chain
func (s *Service) recentBlogs(ctx context.Context, limit int, excludeIDs []string) ([]models.Blog, error) {
	if limit <= 0 {
		return nil, nil
	}

	query := s.db.WithContext(ctx).Order("created_at DESC").Limit(limit)
	if len(excludeIDs) > 0 {
		query = query.Where("id NOT IN ?", excludeIDs)
	}

	var blogs []models.Blog
	if err := query.Find(&blogs).Error; err != nil {
		return nil, err
	}
	return blogs, nil
}

func makeIDSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

func collectIDs(blogs []models.Blog) []string {
	ids := make([]string, len(blogs))
	for i, blog := range blogs {
		ids[i] = blog.ID
	}
	return ids
}
