package content

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brothersphoto/site-backend/models"
)

// fakeLandingImageStore filters in-memory the way the real store queries:
// by section, by active status, ordered by display_order ascending.
type fakeLandingImageStore struct {
	images []*models.LandingImage
	err    error
}

func (f *fakeLandingImageStore) FindAll(section string) ([]*models.LandingImage, error) {
	return f.find(section, false)
}

func (f *fakeLandingImageStore) FindActive(section string) ([]*models.LandingImage, error) {
	return f.find(section, true)
}

func (f *fakeLandingImageStore) find(section string, activeOnly bool) ([]*models.LandingImage, error) {
	if f.err != nil {
		return nil, f.err
	}
	var matched []*models.LandingImage
	for _, img := range f.images {
		if section != "" && img.Section != section {
			continue
		}
		if activeOnly && !img.IsActive {
			continue
		}
		matched = append(matched, img)
	}
	for i := 1; i < len(matched); i++ {
		for j := i; j > 0 && matched[j].DisplayOrder < matched[j-1].DisplayOrder; j-- {
			matched[j], matched[j-1] = matched[j-1], matched[j]
		}
	}
	return matched, nil
}

func (f *fakeLandingImageStore) Add(image *models.LandingImage) error {
	if f.err != nil {
		return f.err
	}
	if image.ID == uuid.Nil {
		image.ID = uuid.New()
	}
	f.images = append(f.images, image)
	return nil
}

func (f *fakeLandingImageStore) Update(image *models.LandingImage) error {
	if f.err != nil {
		return f.err
	}
	for i, img := range f.images {
		if img.ID == image.ID {
			f.images[i] = image
			return nil
		}
	}
	return errors.New("not found")
}

func (f *fakeLandingImageStore) Delete(id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	for i, img := range f.images {
		if img.ID == id {
			f.images = append(f.images[:i], f.images[i+1:]...)
			return nil
		}
	}
	return nil
}

func landingImage(section string, order int, active bool) *models.LandingImage {
	return &models.LandingImage{
		ID:           uuid.New(),
		ImageURL:     "https://example.com/" + section + ".jpg",
		ImageName:    section + ".jpg",
		Section:      section,
		DisplayOrder: order,
		IsActive:     active,
	}
}

func TestListSectionImages(t *testing.T) {
	store := &fakeLandingImageStore{images: []*models.LandingImage{
		landingImage(models.SectionGallery, 3, true),
		landingImage(models.SectionHero, 1, true),
		landingImage(models.SectionHero, 2, false),
		landingImage(models.SectionHero, 0, true),
	}}
	svc := NewService(Stores{Landing: store})

	t.Run("public listing excludes inactive images", func(t *testing.T) {
		images := svc.ListSectionImages(models.SectionHero, true)
		require.Len(t, images, 2)
		for _, img := range images {
			assert.True(t, img.IsActive)
		}
	})

	t.Run("admin listing includes inactive images", func(t *testing.T) {
		images := svc.ListSectionImages(models.SectionHero, false)
		assert.Len(t, images, 3)
	})

	t.Run("section filter returns only that section", func(t *testing.T) {
		images := svc.ListSectionImages(models.SectionGallery, false)
		require.Len(t, images, 1)
		assert.Equal(t, models.SectionGallery, images[0].Section)
	})

	t.Run("ordered by display_order ascending", func(t *testing.T) {
		images := svc.ListSectionImages(models.SectionHero, false)
		require.Len(t, images, 3)
		for i := 1; i < len(images); i++ {
			assert.LessOrEqual(t, images[i-1].DisplayOrder, images[i].DisplayOrder)
		}
	})

	t.Run("empty section means no filter", func(t *testing.T) {
		images := svc.ListSectionImages("", false)
		assert.Len(t, images, 4)
	})

	t.Run("store error degrades to empty list", func(t *testing.T) {
		broken := NewService(Stores{Landing: &fakeLandingImageStore{err: errors.New("boom")}})
		images := broken.ListSectionImages(models.SectionHero, true)
		assert.NotNil(t, images)
		assert.Empty(t, images)
	})
}
