package recommendations

import (
	"sort"

	"github.com/adityachavhan45/blogbackend/internal/config"
	"github.com/adityachavhan45/blogbackend/internal/models"
)

const (
	maxInterestCategories = 5
	maxInterestTags       = 10
)

// Interest is one category or tag with its accumulated engagement weight
type Interest struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}

// InterestProfile is a user's taste profile derived from activity history.
// Derived on demand, never persisted or cached.
type InterestProfile struct {
	Categories []Interest `json:"categories"` // at most 5, descending weight
	Tags       []Interest `json:"tags"`       // at most 10, descending weight
}

// IsEmpty reports whether the profile carries no personalization signal
func (p InterestProfile) IsEmpty() bool {
	return len(p.Categories) == 0 && len(p.Tags) == 0
}

// CategoryNames returns the ranked category names
func (p InterestProfile) CategoryNames() []string {
	names := make([]string, len(p.Categories))
	for i, c := range p.Categories {
		names[i] = c.Name
	}
	return names
}

// TagNames returns the ranked tag names
func (p InterestProfile) TagNames() []string {
	names := make([]string, len(p.Tags))
	for i, t := range p.Tags {
		names[i] = t.Name
	}
	return names
}

// EngagementScore computes the per-activity engagement scalar: read depth
// plus a fixed additive weight for each interaction flag that is set.
// A fully read, liked, commented and shared post scores 1 + 0.3 + 0.5 + 0.7
// with the default weights.
func EngagementScore(a models.UserActivity, w config.ScoringWeights) float64 {
	score := a.ReadPercentage / 100
	if a.Liked {
		score += w.InterestLiked
	}
	if a.Commented {
		score += w.InterestCommented
	}
	if a.Shared {
		score += w.InterestShared
	}
	return score
}

// ExtractInterests derives a weighted taste profile from a user's activity
// records. Each activity must have its Blog preloaded; records without one
// (blog removed after tracking) are skipped.
//
// Scores accumulate per category and independently per tag. The top 5
// categories and top 10 tags are returned in descending score order; ties
// keep first-seen order so the result is deterministic.
func ExtractInterests(activities []models.UserActivity, w config.ScoringWeights) InterestProfile {
	categories := newWeightAccumulator()
	tags := newWeightAccumulator()

	for _, activity := range activities {
		if activity.Blog == nil {
			continue
		}

		score := EngagementScore(activity, w)

		categories.add(activity.Blog.Category, score)
		for _, tag := range activity.Blog.Tags {
			tags.add(tag, score)
		}
	}

	return InterestProfile{
		Categories: categories.top(maxInterestCategories),
		Tags:       tags.top(maxInterestTags),
	}
}

// weightAccumulator is an insertion-ordered map of name -> running score
type weightAccumulator struct {
	order  []string
	totals map[string]float64
}

func newWeightAccumulator() *weightAccumulator {
	return &weightAccumulator{totals: make(map[string]float64)}
}

func (w *weightAccumulator) add(name string, score float64) {
	if name == "" {
		return
	}
	if _, seen := w.totals[name]; !seen {
		w.order = append(w.order, name)
	}
	w.totals[name] += score
}

// top returns up to n interests sorted by descending weight, ties broken by
// first-seen order
func (w *weightAccumulator) top(n int) []Interest {
	ranked := make([]Interest, 0, len(w.order))
	for _, name := range w.order {
		ranked = append(ranked, Interest{Name: name, Weight: w.totals[name]})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Weight > ranked[j].Weight
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
