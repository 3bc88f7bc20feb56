package models

import (
	"time"

	"github.com/google/uuid"
)

// LibraryImage represents a row in the images table: a flat asset library
// with no section assignment.
type LibraryImage struct {
	ID         uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name       string    `json:"name" db:"name" gorm:"type:text;not null"`
	URL        string    `json:"url" db:"url" gorm:"type:text;not null"`
	Size       int64     `json:"size" db:"size" gorm:"type:bigint;not null;default:0"`
	UploadedAt time.Time `json:"uploaded_at" db:"uploaded_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}

func (LibraryImage) TableName() string {
	return "images"
}
