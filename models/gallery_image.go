package models

import (
	"time"

	"github.com/google/uuid"
)

// Landing page image sections
const (
	SectionHero         = "hero"
	SectionGallery      = "gallery"
	SectionFeatures     = "features"
	SectionTestimonials = "testimonials"
)

// LandingImage represents a row in the landing_page_images table. Only
// active images are shown publicly, ordered by display_order ascending.
type LandingImage struct {
	ID           uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	ImageURL     string     `json:"image_url" db:"image_url" gorm:"type:text;not null"`
	ImageName    string     `json:"image_name" db:"image_name" gorm:"type:text;not null"`
	AltText      *string    `json:"alt_text,omitempty" db:"alt_text" gorm:"type:text"`
	FileSize     int64      `json:"file_size" db:"file_size" gorm:"type:bigint;not null;default:0"`
	DisplayOrder int        `json:"display_order" db:"display_order" gorm:"type:integer;not null;default:0"`
	Section      string     `json:"section" db:"section" gorm:"type:text;not null;default:'hero'"`
	IsActive     bool       `json:"is_active" db:"is_active" gorm:"type:boolean;not null;default:true"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty" db:"updated_at" gorm:"type:timestamp"`
}

func (LandingImage) TableName() string {
	return "landing_page_images"
}

// HomeImage represents a row in the home_page_images table. Same shape as
// LandingImage but placed by a home-page-specific category.
type HomeImage struct {
	ID           uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	ImageURL     string     `json:"image_url" db:"image_url" gorm:"type:text;not null"`
	ImageName    string     `json:"image_name" db:"image_name" gorm:"type:text;not null"`
	AltText      *string    `json:"alt_text,omitempty" db:"alt_text" gorm:"type:text"`
	FileSize     int64      `json:"file_size" db:"file_size" gorm:"type:bigint;not null;default:0"`
	DisplayOrder int        `json:"display_order" db:"display_order" gorm:"type:integer;not null;default:0"`
	Category     string     `json:"category" db:"category" gorm:"type:text;not null"`
	IsActive     bool       `json:"is_active" db:"is_active" gorm:"type:boolean;not null;default:true"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty" db:"updated_at" gorm:"type:timestamp"`
}

func (HomeImage) TableName() string {
	return "home_page_images"
}
