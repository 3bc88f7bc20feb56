package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/brothersphoto/site-backend/content"
	"github.com/brothersphoto/site-backend/errs"
	"github.com/brothersphoto/site-backend/models"
)

type blogPostHandler struct {
	responder Responder
	logger    zerolog.Logger
	svc       *content.Service
}

func newBlogPostHandler(svc *content.Service) blogPostHandler {
	logger := log.With().Str("handlerName", "blogPostHandler").Logger()

	return blogPostHandler{
		responder: NewResponder(logger),
		logger:    logger,
		svc:       svc,
	}
}

// BlogPostCollection represents a list of blog posts with paging metadata
type BlogPostCollection struct {
	Posts []*models.BlogPost `json:"posts"`
	Page  content.Page       `json:"pagination"`
}

// listPublishedPosts returns published posts, newest first, paginated.
// A store failure degrades to an empty list, never an error response.
func (h blogPostHandler) listPublishedPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts := h.svc.ListPublishedPosts()

		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))

		pagePosts, paging := content.Paginate(posts, page, perPage)
		h.responder.WriteJSON(w, BlogPostCollection{Posts: pagePosts, Page: paging})
	}
}

// searchPosts filters published posts by free-text query, category and tags,
// then paginates the result.
func (h blogPostHandler) searchPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		filter := content.Filter{
			Query:    q.Get("q"),
			Category: q.Get("category"),
		}
		if tags := q.Get("tags"); tags != "" {
			for _, tag := range strings.Split(tags, ",") {
				if tag = strings.TrimSpace(tag); tag != "" {
					filter.Tags = append(filter.Tags, tag)
				}
			}
		}

		posts := content.FilterPosts(h.svc.ListPublishedPosts(), filter)

		page, _ := strconv.Atoi(q.Get("page"))
		perPage, _ := strconv.Atoi(q.Get("per_page"))

		pagePosts, paging := content.Paginate(posts, page, perPage)
		h.responder.WriteJSON(w, BlogPostCollection{Posts: pagePosts, Page: paging})
	}
}

// getPostBySlug returns the single published post matching the slug
func (h blogPostHandler) getPostBySlug() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		post := h.svc.GetPostBySlug(slug)
		if post == nil {
			h.responder.WriteError(w, errs.NewNotFound("blog post"))
			return
		}

		h.responder.WriteJSON(w, post)
	}
}

// listAllPosts returns every post, drafts included, for the admin dashboard
func (h blogPostHandler) listAllPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts := h.svc.ListAllPosts()
		h.responder.WriteJSON(w, map[string]any{
			"posts": posts,
			"total": len(posts),
		})
	}
}

// createPost creates a new blog post
func (h blogPostHandler) createPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var post models.BlogPost
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&post); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode blog post request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if post.Title == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}

		if post.Content == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("content"))
			return
		}

		if err := h.svc.CreatePost(&post); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create blog post", "blog_post", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, post)
	}
}

// updatePost replaces the editable fields of an existing blog post
func (h blogPostHandler) updatePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := uuid.Parse(chi.URLParam(r, "postID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid postID"))
			return
		}

		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var post models.BlogPost
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&post); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode blog post request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		updated, err := h.svc.UpdatePost(postID, &post)
		if err != nil {
			if errs.IsNotFound(err) {
				h.responder.WriteError(w, err)
				return
			}
			h.responder.WriteError(w, wrapDatabaseError("update blog post", "blog_post", err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

// deletePost deletes a blog post by ID. The delete is unconditional: no
// soft-delete, no referential checks.
func (h blogPostHandler) deletePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := uuid.Parse(chi.URLParam(r, "postID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid postID"))
			return
		}

		if err := h.svc.DeletePost(postID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete blog post", "blog_post", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "blog post deleted successfully",
		})
	}
}
