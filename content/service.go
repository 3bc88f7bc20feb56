package content

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/brothersphoto/site-backend/errs"
	"github.com/brothersphoto/site-backend/models"
)

// PostStore is the subset of the blog post repository the service needs.
type PostStore interface {
	FindAll() ([]*models.BlogPost, error)
	FindPublished() ([]*models.BlogPost, error)
	FindByID(id uuid.UUID) (*models.BlogPost, error)
	FindPublishedBySlug(slug string) (*models.BlogPost, error)
	Add(post *models.BlogPost) error
	Update(post *models.BlogPost) error
	Delete(id uuid.UUID) error
}

type LandingImageStore interface {
	FindAll(section string) ([]*models.LandingImage, error)
	FindActive(section string) ([]*models.LandingImage, error)
	Add(image *models.LandingImage) error
	Update(image *models.LandingImage) error
	Delete(id uuid.UUID) error
}

type HomeImageStore interface {
	FindAll(category string) ([]*models.HomeImage, error)
	FindActive(category string) ([]*models.HomeImage, error)
	Add(image *models.HomeImage) error
	Update(image *models.HomeImage) error
	Delete(id uuid.UUID) error
	BulkDelete(ids []uuid.UUID) error
	BulkUpdate(ids []uuid.UUID, updates map[string]any) error
}

type LibraryImageStore interface {
	FindAll() ([]*models.LibraryImage, error)
	Add(image *models.LibraryImage) error
	Delete(id uuid.UUID) error
}

type SettingStore interface {
	FindByKey(key string) (*models.SiteSetting, error)
	Upsert(key, value, settingType string) (*models.SiteSetting, error)
}

type PageContentStore interface {
	FindByPageID(pageID string) (*models.PageContent, error)
	FindAll() ([]*models.PageContent, error)
	Upsert(content *models.PageContent) (*models.PageContent, error)
}

// Stores bundles the per-entity repositories backing the service.
type Stores struct {
	Posts    PostStore
	Landing  LandingImageStore
	Home     HomeImageStore
	Library  LibraryImageStore
	Settings SettingStore
	Pages    PageContentStore
}

// Service hides store-specific query construction behind per-entity
// operations and normalizes failures: reads degrade to empty/nil values
// with a logged warning, writes surface their error to the caller.
type Service struct {
	stores   Stores
	logger   zerolog.Logger
	fallback *FallbackCache
}

func NewService(stores Stores, opts ...func(*Service)) *Service {
	s := &Service{
		stores: stores,
		logger: log.With().Str("serviceName", "content").Logger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithFallback attaches the legacy local fallback cache. Successful list
// reads are snapshotted into it; it is never read on the primary data path.
func WithFallback(fallback *FallbackCache) func(*Service) {
	return func(s *Service) {
		s.fallback = fallback
	}
}

// ListPublishedPosts returns published posts, newest first. On store error
// it returns an empty list, never an error.
func (s *Service) ListPublishedPosts() []*models.BlogPost {
	posts, err := s.stores.Posts.FindPublished()
	if err != nil {
		s.logger.Warn().Err(err).Msg("Error fetching blog posts")
		return []*models.BlogPost{}
	}
	if posts == nil {
		posts = []*models.BlogPost{}
	}
	if s.fallback != nil {
		s.fallback.SnapshotPosts(posts)
	}
	return posts
}

// ListAllPosts returns every post regardless of published state, for the
// admin dashboard. Degrades to an empty list on store error.
func (s *Service) ListAllPosts() []*models.BlogPost {
	posts, err := s.stores.Posts.FindAll()
	if err != nil {
		s.logger.Warn().Err(err).Msg("Error fetching all blog posts")
		return []*models.BlogPost{}
	}
	if posts == nil {
		posts = []*models.BlogPost{}
	}
	return posts
}

// GetPostBySlug returns the published post matching slug, or nil when no
// post matches or the store is unreachable.
func (s *Service) GetPostBySlug(slug string) *models.BlogPost {
	post, err := s.stores.Posts.FindPublishedBySlug(slug)
	if err != nil {
		s.logger.Warn().Err(err).Str("slug", slug).Msg("Error fetching blog post")
		return nil
	}
	return post
}

// CreatePost inserts a new post, deriving the slug from the title when one
// was not supplied.
func (s *Service) CreatePost(post *models.BlogPost) error {
	if post.Slug == "" {
		post.Slug = models.Slugify(post.Title)
	}
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}
	return s.stores.Posts.Add(post)
}

// UpdatePost replaces the editable fields of an existing post and refreshes
// the update timestamp.
func (s *Service) UpdatePost(id uuid.UUID, post *models.BlogPost) (*models.BlogPost, error) {
	existing, err := s.stores.Posts.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errs.NewNotFound("blog post")
	}

	existing.Title = post.Title
	existing.Slug = post.Slug
	if existing.Slug == "" {
		existing.Slug = models.Slugify(post.Title)
	}
	existing.Excerpt = post.Excerpt
	existing.Content = post.Content
	existing.Category = post.Category
	existing.Tags = post.Tags
	existing.FeaturedImage = post.FeaturedImage
	existing.Author = post.Author
	existing.Published = post.Published

	now := time.Now()
	existing.UpdatedAt = &now

	if err := s.stores.Posts.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeletePost removes a post unconditionally. No soft-delete, no referential
// checks.
func (s *Service) DeletePost(id uuid.UUID) error {
	return s.stores.Posts.Delete(id)
}

// ListSectionImages returns landing page images ordered by display_order
// ascending, optionally filtered by section. publicOnly restricts the result
// to active images, as shown on the public pages.
func (s *Service) ListSectionImages(section string, publicOnly bool) []*models.LandingImage {
	var (
		images []*models.LandingImage
		err    error
	)
	if publicOnly {
		images, err = s.stores.Landing.FindActive(section)
	} else {
		images, err = s.stores.Landing.FindAll(section)
	}
	if err != nil {
		s.logger.Warn().Err(err).Str("section", section).Msg("Error fetching landing page images")
		return []*models.LandingImage{}
	}
	if images == nil {
		images = []*models.LandingImage{}
	}
	return images
}

func (s *Service) CreateSectionImage(image *models.LandingImage) error {
	if image.CreatedAt.IsZero() {
		image.CreatedAt = time.Now()
	}
	return s.stores.Landing.Add(image)
}

func (s *Service) UpdateSectionImage(image *models.LandingImage) error {
	now := time.Now()
	image.UpdatedAt = &now
	return s.stores.Landing.Update(image)
}

func (s *Service) DeleteSectionImage(id uuid.UUID) error {
	return s.stores.Landing.Delete(id)
}

// ListHomeImages mirrors ListSectionImages for the home page variant, where
// placement is by category.
func (s *Service) ListHomeImages(category string, publicOnly bool) []*models.HomeImage {
	var (
		images []*models.HomeImage
		err    error
	)
	if publicOnly {
		images, err = s.stores.Home.FindActive(category)
	} else {
		images, err = s.stores.Home.FindAll(category)
	}
	if err != nil {
		s.logger.Warn().Err(err).Str("category", category).Msg("Error fetching home page images")
		return []*models.HomeImage{}
	}
	if images == nil {
		images = []*models.HomeImage{}
	}
	return images
}

func (s *Service) CreateHomeImage(image *models.HomeImage) error {
	if image.CreatedAt.IsZero() {
		image.CreatedAt = time.Now()
	}
	return s.stores.Home.Add(image)
}

func (s *Service) UpdateHomeImage(image *models.HomeImage) error {
	now := time.Now()
	image.UpdatedAt = &now
	return s.stores.Home.Update(image)
}

func (s *Service) DeleteHomeImage(id uuid.UUID) error {
	return s.stores.Home.Delete(id)
}

func (s *Service) BulkDeleteHomeImages(ids []uuid.UUID) error {
	return s.stores.Home.BulkDelete(ids)
}

func (s *Service) BulkUpdateHomeImages(ids []uuid.UUID, updates map[string]any) error {
	updates["updated_at"] = time.Now()
	return s.stores.Home.BulkUpdate(ids, updates)
}

// ListLibraryImages returns the flat asset library, newest upload first.
func (s *Service) ListLibraryImages() []*models.LibraryImage {
	images, err := s.stores.Library.FindAll()
	if err != nil {
		s.logger.Warn().Err(err).Msg("Error fetching library images")
		return []*models.LibraryImage{}
	}
	if images == nil {
		images = []*models.LibraryImage{}
	}
	if s.fallback != nil {
		s.fallback.SnapshotImages(images)
	}
	return images
}

func (s *Service) AddLibraryImage(image *models.LibraryImage) error {
	if image.UploadedAt.IsZero() {
		image.UploadedAt = time.Now()
	}
	return s.stores.Library.Add(image)
}

func (s *Service) DeleteLibraryImage(id uuid.UUID) error {
	return s.stores.Library.Delete(id)
}

// GetSetting returns the setting for key, or nil when absent or unreachable.
func (s *Service) GetSetting(key string) *models.SiteSetting {
	setting, err := s.stores.Settings.FindByKey(key)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("Error fetching site setting")
		return nil
	}
	return setting
}

// UpsertSetting writes a setting value, creating the row when the key is
// absent. The write error is surfaced to the caller.
func (s *Service) UpsertSetting(key, value, settingType string) (*models.SiteSetting, error) {
	if settingType == "" {
		settingType = models.SettingTypeText
	}
	return s.stores.Settings.Upsert(key, value, settingType)
}

// GetPageContent returns the content for a page, or nil when absent or
// unreachable.
func (s *Service) GetPageContent(pageID string) *models.PageContent {
	content, err := s.stores.Pages.FindByPageID(pageID)
	if err != nil {
		s.logger.Warn().Err(err).Str("pageID", pageID).Msg("Error fetching page content")
		return nil
	}
	return content
}

// ListPageContent returns all page content rows, most recently updated first.
func (s *Service) ListPageContent() []*models.PageContent {
	contents, err := s.stores.Pages.FindAll()
	if err != nil {
		s.logger.Warn().Err(err).Msg("Error fetching all page content")
		return []*models.PageContent{}
	}
	if contents == nil {
		contents = []*models.PageContent{}
	}
	if s.fallback != nil {
		s.fallback.SnapshotPageContent(contents)
	}
	return contents
}

// SavePageContent upserts the content for a page, keyed by its page id.
func (s *Service) SavePageContent(content *models.PageContent) (*models.PageContent, error) {
	if content.PageID == "" {
		return nil, errs.NewMissingRequiredFieldError("page_id")
	}
	return s.stores.Pages.Upsert(content)
}
