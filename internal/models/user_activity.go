package models

import "time"

// UserActivity is the engagement record for one (user, blog) pair. There is
// at most one row per pair; tracking events merge into it monotonically:
// time spent accumulates, read percentage keeps its maximum, interaction
// flags never reset, visit count increments per event.
//
// Rows are never deleted by this backend; retention is an external policy.
type UserActivity struct {
	ID     string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	UserID string `gorm:"not null;uniqueIndex:idx_user_activities_user_blog" json:"user_id"`
	BlogID string `gorm:"not null;uniqueIndex:idx_user_activities_user_blog" json:"blog_id"`

	// Engagement accumulators
	TimeSpent      int     `gorm:"not null;default:0" json:"time_spent"`           // seconds, summed across visits
	ReadPercentage float64 `gorm:"not null;default:0" json:"read_percentage"`      // 0-100, maximum ever observed
	Liked          bool    `gorm:"not null;default:false" json:"liked"`
	Commented      bool    `gorm:"not null;default:false" json:"commented"`
	Shared         bool    `gorm:"not null;default:false" json:"shared"`
	VisitCount     int     `gorm:"not null;default:1" json:"visit_count"`

	LastVisited time.Time `gorm:"index" json:"last_visited"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"` // first tracking event, immutable
	UpdatedAt   time.Time `json:"updated_at"`

	Blog *Blog `gorm:"foreignKey:BlogID" json:"blog,omitempty"`
}

// TableName specifies the table name
func (UserActivity) TableName() string {
	return "user_activities"
}
