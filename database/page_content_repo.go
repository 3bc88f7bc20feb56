package database

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/brothersphoto/site-backend/models"
)

type PageContentRepo struct {
	db *gorm.DB
}

func NewPageContentRepo(db *gorm.DB) *PageContentRepo {
	return &PageContentRepo{db}
}

// FindByPageID returns the content for a page, or nil when no row matches
func (r *PageContentRepo) FindByPageID(pageID string) (*models.PageContent, error) {
	var content models.PageContent
	err := r.db.Where("page_id = ?", pageID).First(&content).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &content, nil
}

// FindAll returns all page content rows, most recently updated first
func (r *PageContentRepo) FindAll() ([]*models.PageContent, error) {
	var contents []*models.PageContent
	err := r.db.Order("updated_at DESC").Find(&contents).Error
	return contents, err
}

// Upsert inserts the page content when the page id is absent, otherwise
// replaces title/subtitle/content/images and refreshes the update timestamp.
// Same check-then-write caveat as SiteSettingRepo.Upsert.
func (r *PageContentRepo) Upsert(content *models.PageContent) (*models.PageContent, error) {
	existing, err := r.FindByPageID(content.PageID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if existing != nil {
		existing.Title = content.Title
		existing.Subtitle = content.Subtitle
		existing.Content = content.Content
		existing.Images = content.Images
		existing.UpdatedAt = &now
		if err := r.db.Save(existing).Error; err != nil {
			return nil, err
		}
		return existing, nil
	}

	content.UpdatedAt = &now
	if err := r.db.Create(content).Error; err != nil {
		return nil, err
	}
	return content, nil
}
