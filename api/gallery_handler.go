package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/brothersphoto/site-backend/content"
	"github.com/brothersphoto/site-backend/errs"
	"github.com/brothersphoto/site-backend/models"
)

type galleryHandler struct {
	responder Responder
	logger    zerolog.Logger
	svc       *content.Service
}

func newGalleryHandler(svc *content.Service) galleryHandler {
	logger := log.With().Str("handlerName", "galleryHandler").Logger()

	return galleryHandler{
		responder: NewResponder(logger),
		logger:    logger,
		svc:       svc,
	}
}

// listPublicLandingImages returns active landing page images, ordered by
// display_order, optionally filtered by ?section=
func (h galleryHandler) listPublicLandingImages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		images := h.svc.ListSectionImages(r.URL.Query().Get("section"), true)
		h.responder.WriteJSON(w, map[string]any{"images": images})
	}
}

// listLandingImages returns all landing page images for the admin dashboard,
// inactive ones included
func (h galleryHandler) listLandingImages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		images := h.svc.ListSectionImages(r.URL.Query().Get("section"), false)
		h.responder.WriteJSON(w, map[string]any{"images": images})
	}
}

func (h galleryHandler) createLandingImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var image models.LandingImage
		if err := json.NewDecoder(r.Body).Decode(&image); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if image.ImageURL == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("image_url"))
			return
		}
		if image.ImageName == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("image_name"))
			return
		}

		if err := h.svc.CreateSectionImage(&image); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create landing page image", "landing_page_image", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, image)
	}
}

func (h galleryHandler) updateLandingImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		imageID, err := uuid.Parse(chi.URLParam(r, "imageID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid imageID"))
			return
		}

		var image models.LandingImage
		if err := json.NewDecoder(r.Body).Decode(&image); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		image.ID = imageID

		if err := h.svc.UpdateSectionImage(&image); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update landing page image", "landing_page_image", err))
			return
		}

		h.responder.WriteJSON(w, image)
	}
}

func (h galleryHandler) deleteLandingImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		imageID, err := uuid.Parse(chi.URLParam(r, "imageID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid imageID"))
			return
		}

		if err := h.svc.DeleteSectionImage(imageID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete landing page image", "landing_page_image", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "landing page image deleted successfully",
		})
	}
}

// listPublicHomeImages returns active home page images, ordered by
// display_order, optionally filtered by ?category=
func (h galleryHandler) listPublicHomeImages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		images := h.svc.ListHomeImages(r.URL.Query().Get("category"), true)
		h.responder.WriteJSON(w, map[string]any{"images": images})
	}
}

func (h galleryHandler) listHomeImages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		images := h.svc.ListHomeImages(r.URL.Query().Get("category"), false)
		h.responder.WriteJSON(w, map[string]any{"images": images})
	}
}

func (h galleryHandler) createHomeImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var image models.HomeImage
		if err := json.NewDecoder(r.Body).Decode(&image); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if image.ImageURL == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("image_url"))
			return
		}
		if image.ImageName == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("image_name"))
			return
		}

		if err := h.svc.CreateHomeImage(&image); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create home page image", "home_page_image", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, image)
	}
}

func (h galleryHandler) updateHomeImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		imageID, err := uuid.Parse(chi.URLParam(r, "imageID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid imageID"))
			return
		}

		var image models.HomeImage
		if err := json.NewDecoder(r.Body).Decode(&image); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		image.ID = imageID

		if err := h.svc.UpdateHomeImage(&image); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update home page image", "home_page_image", err))
			return
		}

		h.responder.WriteJSON(w, image)
	}
}

func (h galleryHandler) deleteHomeImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		imageID, err := uuid.Parse(chi.URLParam(r, "imageID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid imageID"))
			return
		}

		if err := h.svc.DeleteHomeImage(imageID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete home page image", "home_page_image", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "home page image deleted successfully",
		})
	}
}

// bulkRequest carries a set of image IDs, and for bulk updates the column
// values to apply to all of them.
type bulkRequest struct {
	IDs     []uuid.UUID    `json:"ids"`
	Updates map[string]any `json:"updates,omitempty"`
}

func (h galleryHandler) bulkDeleteHomeImages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req bulkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		if len(req.IDs) == 0 {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("ids"))
			return
		}

		if err := h.svc.BulkDeleteHomeImages(req.IDs); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("bulk delete home page images", "home_page_image", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"status":  "success",
			"deleted": len(req.IDs),
		})
	}
}

func (h galleryHandler) bulkUpdateHomeImages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req bulkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		if len(req.IDs) == 0 {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("ids"))
			return
		}
		if len(req.Updates) == 0 {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("updates"))
			return
		}

		if err := h.svc.BulkUpdateHomeImages(req.IDs, req.Updates); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("bulk update home page images", "home_page_image", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"status":  "success",
			"updated": len(req.IDs),
		})
	}
}
