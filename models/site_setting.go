package models

import (
	"time"

	"github.com/google/uuid"
)

// Setting value types
const (
	SettingTypeText  = "text"
	SettingTypeImage = "image"
)

// SiteSetting represents a row in the site_settings table, keyed by a unique
// setting key. Writes are upserts: insert when the key is absent, otherwise
// update value/type in place.
type SiteSetting struct {
	ID           uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	SettingKey   string     `json:"setting_key" db:"setting_key" gorm:"type:text;not null;unique"`
	SettingValue string     `json:"setting_value" db:"setting_value" gorm:"type:text;not null"`
	SettingType  string     `json:"setting_type" db:"setting_type" gorm:"type:text;not null;default:'text'"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty" db:"updated_at" gorm:"type:timestamp"`
}

func (SiteSetting) TableName() string {
	return "site_settings"
}
