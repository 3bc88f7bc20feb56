package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brothersphoto/site-backend/models"
)

type LibraryImageRepo struct {
	db *gorm.DB
}

func NewLibraryImageRepo(db *gorm.DB) *LibraryImageRepo {
	return &LibraryImageRepo{db}
}

// FindAll returns all library images, most recently uploaded first
func (r *LibraryImageRepo) FindAll() ([]*models.LibraryImage, error) {
	var images []*models.LibraryImage
	err := r.db.Order("uploaded_at DESC").Find(&images).Error
	return images, err
}

// Add inserts a new library image record
func (r *LibraryImageRepo) Add(image *models.LibraryImage) error {
	return r.db.Create(image).Error
}

// Delete removes a library image record by id
func (r *LibraryImageRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.LibraryImage{}, "id = ?", id).Error
}
