package content

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brothersphoto/site-backend/models"
)

func TestFallbackCacheRoundTrip(t *testing.T) {
	cache := NewFallbackCache(filepath.Join(t.TempDir(), "fallback.json"))

	posts := []*models.BlogPost{
		{ID: uuid.New(), Title: "one", Slug: "one", Published: true},
		{ID: uuid.New(), Title: "two", Slug: "two"},
	}
	images := []*models.LibraryImage{
		{ID: uuid.New(), Name: "hero.jpg", URL: "https://cdn.example.com/hero.jpg", Size: 1024},
	}

	cache.SnapshotPosts(posts)
	cache.SnapshotImages(images)

	gotPosts := cache.Posts()
	require.Len(t, gotPosts, 2)
	assert.Equal(t, "one", gotPosts[0].Title)

	gotImages := cache.Images()
	require.Len(t, gotImages, 1)
	assert.Equal(t, "hero.jpg", gotImages[0].Name)

	// Snapshots under different keys must not clobber each other.
	cache.SnapshotPosts(posts[:1])
	assert.Len(t, cache.Posts(), 1)
	assert.Len(t, cache.Images(), 1)
}

func TestFallbackCacheMissingFile(t *testing.T) {
	cache := NewFallbackCache(filepath.Join(t.TempDir(), "does-not-exist.json"))

	assert.Empty(t, cache.Posts())
	assert.Empty(t, cache.Images())
	assert.Empty(t, cache.PageContent())
}
