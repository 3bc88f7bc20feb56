package content

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/brothersphoto/site-backend/models"
)

// Fixed storage keys retained from the legacy cache format.
const (
	fallbackPostsKey       = "blog_posts_data"
	fallbackImagesKey      = "uploaded_images"
	fallbackPageContentKey = "page_content_data"
)

// FallbackCache is the legacy local cache for posts, images and page
// content, kept for backward compatibility. It is a flat JSON file keyed by
// the fixed legacy keys, written as a best-effort snapshot after successful
// list reads. It is not authoritative and is never read on the primary data
// path.
type FallbackCache struct {
	path   string
	logger zerolog.Logger

	mu sync.Mutex
}

func NewFallbackCache(path string) *FallbackCache {
	return &FallbackCache{
		path:   path,
		logger: log.With().Str("serviceName", "fallbackCache").Logger(),
	}
}

func (c *FallbackCache) SnapshotPosts(posts []*models.BlogPost) {
	c.write(fallbackPostsKey, posts)
}

func (c *FallbackCache) SnapshotImages(images []*models.LibraryImage) {
	c.write(fallbackImagesKey, images)
}

func (c *FallbackCache) SnapshotPageContent(contents []*models.PageContent) {
	c.write(fallbackPageContentKey, contents)
}

// Posts reads the cached post snapshot. Missing file or key yields an empty
// list.
func (c *FallbackCache) Posts() []*models.BlogPost {
	var posts []*models.BlogPost
	c.read(fallbackPostsKey, &posts)
	return posts
}

func (c *FallbackCache) Images() []*models.LibraryImage {
	var images []*models.LibraryImage
	c.read(fallbackImagesKey, &images)
	return images
}

func (c *FallbackCache) PageContent() []*models.PageContent {
	var contents []*models.PageContent
	c.read(fallbackPageContentKey, &contents)
	return contents
}

func (c *FallbackCache) write(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries := c.load()

	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("Error encoding fallback snapshot")
		return
	}
	entries[key] = data

	out, err := json.Marshal(entries)
	if err != nil {
		c.logger.Warn().Err(err).Msg("Error encoding fallback cache")
		return
	}
	if err := os.WriteFile(c.path, out, 0o644); err != nil {
		c.logger.Warn().Err(err).Str("path", c.path).Msg("Error writing fallback cache")
	}
}

func (c *FallbackCache) read(key string, into any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries := c.load()
	data, ok := entries[key]
	if !ok {
		return
	}
	if err := json.Unmarshal(data, into); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("Error decoding fallback snapshot")
	}
}

func (c *FallbackCache) load() map[string]json.RawMessage {
	entries := make(map[string]json.RawMessage)
	data, err := os.ReadFile(c.path)
	if err != nil {
		return entries
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		c.logger.Warn().Err(err).Str("path", c.path).Msg("Error decoding fallback cache, starting fresh")
		return make(map[string]json.RawMessage)
	}
	return entries
}
