package models

import (
	"time"

	"github.com/google/uuid"
)

// PageContent represents a row in the page_content table, keyed by a unique
// page identifier. Same upsert-by-key semantics as SiteSetting.
type PageContent struct {
	ID        uuid.UUID      `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	PageID    string         `json:"page_id" db:"page_id" gorm:"type:text;not null;unique"`
	Title     *string        `json:"title,omitempty" db:"title" gorm:"type:text"`
	Subtitle  *string        `json:"subtitle,omitempty" db:"subtitle" gorm:"type:text"`
	Content   map[string]any `json:"content" db:"content" gorm:"serializer:json;type:jsonb"`
	Images    []string       `json:"images" db:"images" gorm:"serializer:json;type:jsonb"`
	UpdatedAt *time.Time     `json:"updated_at,omitempty" db:"updated_at" gorm:"type:timestamp"`
}

func (PageContent) TableName() string {
	return "page_content"
}
