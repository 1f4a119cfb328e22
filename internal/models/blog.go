package models

import (
	"time"

	"github.com/lib/pq"
)

// Blog is a published post in the catalog. Post CRUD is owned by the admin
// service; the recommendation engine reads category, tags and creation time.
type Blog struct {
	ID         string         `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Title      string         `gorm:"not null" json:"title"`
	Excerpt    string         `gorm:"not null" json:"excerpt"`
	Content    string         `gorm:"not null" json:"content"`
	Category   string         `gorm:"not null;index" json:"category"`
	Tags       pq.StringArray `gorm:"type:text[]" json:"tags"`
	AuthorID   string         `gorm:"index" json:"author_id"`
	ReadTime   string         `json:"read_time"`
	CoverImage string         `json:"cover_image,omitempty"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (Blog) TableName() string {
	return "blogs"
}
