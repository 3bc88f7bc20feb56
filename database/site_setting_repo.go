package database

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/brothersphoto/site-backend/models"
)

type SiteSettingRepo struct {
	db *gorm.DB
}

func NewSiteSettingRepo(db *gorm.DB) *SiteSettingRepo {
	return &SiteSettingRepo{db}
}

// FindByKey returns the setting for key, or nil when no row matches
func (r *SiteSettingRepo) FindByKey(key string) (*models.SiteSetting, error) {
	var setting models.SiteSetting
	err := r.db.Where("setting_key = ?", key).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

// Upsert inserts the setting when the key is absent, otherwise updates
// value/type in place and refreshes the update timestamp.
//
// This is check-then-write, not an atomic ON CONFLICT upsert: two concurrent
// writers for the same key can both observe "absent", in which case the
// second insert fails on the unique constraint, or one overwrites the other
// last-write-wins.
func (r *SiteSettingRepo) Upsert(key, value, settingType string) (*models.SiteSetting, error) {
	existing, err := r.FindByKey(key)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if existing != nil {
		existing.SettingValue = value
		existing.SettingType = settingType
		existing.UpdatedAt = &now
		if err := r.db.Save(existing).Error; err != nil {
			return nil, err
		}
		return existing, nil
	}

	setting := models.SiteSetting{
		SettingKey:   key,
		SettingValue: value,
		SettingType:  settingType,
		UpdatedAt:    &now,
	}
	if err := r.db.Create(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}
