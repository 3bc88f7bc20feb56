package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// BlogPost represents a post row in the blog_posts table
type BlogPost struct {
	ID            uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title         string     `json:"title" db:"title" gorm:"type:text;not null"`
	Slug          string     `json:"slug" db:"slug" gorm:"type:text;not null;unique"`
	Excerpt       string     `json:"excerpt" db:"excerpt" gorm:"type:text"`
	Content       string     `json:"content" db:"content" gorm:"type:text;not null"`
	Category      string     `json:"category" db:"category" gorm:"type:text"`
	Tags          []string   `json:"tags" db:"tags" gorm:"serializer:json;type:jsonb"`
	FeaturedImage string     `json:"featured_image" db:"featured_image" gorm:"type:text"`
	Author        string     `json:"author" db:"author" gorm:"type:text"`
	Published     bool       `json:"published" db:"published" gorm:"type:boolean;not null;default:false"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty" db:"updated_at" gorm:"type:timestamp"`
}

func (BlogPost) TableName() string {
	return "blog_posts"
}

// Slugify derives a URL-safe slug from a post title: lowercased, runs of
// non-alphanumeric characters collapsed into a single hyphen, no leading or
// trailing hyphen. Deriving twice from the same title yields the same slug.
func Slugify(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	pendingHyphen := false
	for _, r := range strings.ToLower(title) {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !isAlnum {
			pendingHyphen = b.Len() > 0
			continue
		}
		if pendingHyphen {
			b.WriteByte('-')
			pendingHyphen = false
		}
		b.WriteRune(r)
	}

	return b.String()
}
