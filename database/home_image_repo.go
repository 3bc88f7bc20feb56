package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brothersphoto/site-backend/models"
)

type HomeImageRepo struct {
	db *gorm.DB
}

func NewHomeImageRepo(db *gorm.DB) *HomeImageRepo {
	return &HomeImageRepo{db}
}

// FindAll returns home page images ordered by display_order ascending,
// optionally filtered by category. An empty category means no filter.
func (r *HomeImageRepo) FindAll(category string) ([]*models.HomeImage, error) {
	var images []*models.HomeImage
	query := r.db.Order("display_order ASC")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	err := query.Find(&images).Error
	return images, err
}

// FindActive returns active images only, for the public pages
func (r *HomeImageRepo) FindActive(category string) ([]*models.HomeImage, error) {
	var images []*models.HomeImage
	query := r.db.Where("is_active = ?", true).Order("display_order ASC")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	err := query.Find(&images).Error
	return images, err
}

// Add inserts a new home page image
func (r *HomeImageRepo) Add(image *models.HomeImage) error {
	return r.db.Create(image).Error
}

// Update updates an existing home page image
func (r *HomeImageRepo) Update(image *models.HomeImage) error {
	return r.db.Save(image).Error
}

// Delete removes a home page image by id
func (r *HomeImageRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.HomeImage{}, "id = ?", id).Error
}

// BulkDelete removes all images whose id is in ids
func (r *HomeImageRepo) BulkDelete(ids []uuid.UUID) error {
	return r.db.Delete(&models.HomeImage{}, "id IN ?", ids).Error
}

// BulkUpdate applies the same column updates to all images whose id is in ids
func (r *HomeImageRepo) BulkUpdate(ids []uuid.UUID, updates map[string]any) error {
	return r.db.Model(&models.HomeImage{}).Where("id IN ?", ids).Updates(updates).Error
}
