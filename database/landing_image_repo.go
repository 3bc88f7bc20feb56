package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brothersphoto/site-backend/models"
)

type LandingImageRepo struct {
	db *gorm.DB
}

func NewLandingImageRepo(db *gorm.DB) *LandingImageRepo {
	return &LandingImageRepo{db}
}

// FindAll returns landing page images ordered by display_order ascending,
// optionally filtered by section. An empty section means no filter.
func (r *LandingImageRepo) FindAll(section string) ([]*models.LandingImage, error) {
	var images []*models.LandingImage
	query := r.db.Order("display_order ASC")
	if section != "" {
		query = query.Where("section = ?", section)
	}
	err := query.Find(&images).Error
	return images, err
}

// FindActive returns active images only, for the public pages
func (r *LandingImageRepo) FindActive(section string) ([]*models.LandingImage, error) {
	var images []*models.LandingImage
	query := r.db.Where("is_active = ?", true).Order("display_order ASC")
	if section != "" {
		query = query.Where("section = ?", section)
	}
	err := query.Find(&images).Error
	return images, err
}

// Add inserts a new landing page image
func (r *LandingImageRepo) Add(image *models.LandingImage) error {
	return r.db.Create(image).Error
}

// Update updates an existing landing page image
func (r *LandingImageRepo) Update(image *models.LandingImage) error {
	return r.db.Save(image).Error
}

// Delete removes a landing page image by id
func (r *LandingImageRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.LandingImage{}, "id = ?", id).Error
}
