package recommendations

import (
	"context"
	"time"

	"github.com/adityachavhan45/blogbackend/internal/errors"
	"github.com/adityachavhan45/blogbackend/internal/metrics"
	"github.com/adityachavhan45/blogbackend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TrackActivityInput carries one engagement event for a (user, blog) pair.
// Absent numeric/boolean fields are zero values and count as "nothing new
// observed" for this event; they never clobber previously stored state.
type TrackActivityInput struct {
	UserID         string  `json:"user_id"`
	BlogID         string  `json:"blog_id"`
	TimeSpent      int     `json:"time_spent"`
	ReadPercentage float64 `json:"read_percentage"`
	Liked          bool    `json:"liked"`
	Commented      bool    `json:"commented"`
	Shared         bool    `json:"shared"`
}

// TrackActivity records an engagement event, creating the activity row on
// first contact and merging monotonically afterwards:
//
//	time_spent      += incoming
//	read_percentage  = GREATEST(stored, incoming)
//	liked/commented/shared = stored OR incoming
//	visit_count     += 1
//	last_visited     = now
//
// The merge is a single INSERT ... ON CONFLICT DO UPDATE on the (user_id,
// blog_id) unique index, so concurrent events for the same pair cannot lose
// updates.
func (s *Service) TrackActivity(ctx context.Context, in TrackActivityInput) (*models.UserActivity, error) {
	m := metrics.Get()

	if in.TimeSpent < 0 {
		m.ActivitiesTrackedTotal.WithLabelValues("rejected").Inc()
		return nil, errors.ValidationError("time_spent", "time spent cannot be negative")
	}
	if in.ReadPercentage < 0 || in.ReadPercentage > 100 {
		m.ActivitiesTrackedTotal.WithLabelValues("rejected").Inc()
		return nil, errors.ValidationError("read_percentage", "read percentage must be between 0 and 100")
	}

	// The blog must exist before engagement is recorded against it
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Blog{}).Where("id = ?", in.BlogID).Count(&count).Error; err != nil {
		m.ActivitiesTrackedTotal.WithLabelValues("error").Inc()
		return nil, errors.ServiceUnavailable("activity store").WithDetails(err.Error())
	}
	if count == 0 {
		m.ActivitiesTrackedTotal.WithLabelValues("rejected").Inc()
		return nil, errors.NotFound("blog")
	}

	now := time.Now().UTC()
	activity := models.UserActivity{
		UserID:         in.UserID,
		BlogID:         in.BlogID,
		TimeSpent:      in.TimeSpent,
		ReadPercentage: in.ReadPercentage,
		Liked:          in.Liked,
		Commented:      in.Commented,
		Shared:         in.Shared,
		VisitCount:     1,
		LastVisited:    now,
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "blog_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"time_spent":      gorm.Expr("user_activities.time_spent + EXCLUDED.time_spent"),
				"read_percentage": gorm.Expr("GREATEST(user_activities.read_percentage, EXCLUDED.read_percentage)"),
				"liked":           gorm.Expr("user_activities.liked OR EXCLUDED.liked"),
				"commented":       gorm.Expr("user_activities.commented OR EXCLUDED.commented"),
				"shared":          gorm.Expr("user_activities.shared OR EXCLUDED.shared"),
				"visit_count":     gorm.Expr("user_activities.visit_count + 1"),
				"last_visited":    gorm.Expr("EXCLUDED.last_visited"),
				"updated_at":      gorm.Expr("EXCLUDED.updated_at"),
			}),
		}, clause.Returning{}).
		Create(&activity).Error
	if err != nil {
		m.ActivitiesTrackedTotal.WithLabelValues("error").Inc()
		return nil, errors.ServiceUnavailable("activity store").WithDetails(err.Error())
	}

	outcome := "merged"
	if activity.VisitCount == 1 {
		outcome = "created"
	}
	m.ActivitiesTrackedTotal.WithLabelValues(outcome).Inc()

	return &activity, nil
}
