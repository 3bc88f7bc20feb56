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

type libraryHandler struct {
	responder Responder
	logger    zerolog.Logger
	svc       *content.Service
}

func newLibraryHandler(svc *content.Service) libraryHandler {
	logger := log.With().Str("handlerName", "libraryHandler").Logger()

	return libraryHandler{
		responder: NewResponder(logger),
		logger:    logger,
		svc:       svc,
	}
}

// listImages returns the flat asset library, most recent upload first
func (h libraryHandler) listImages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		images := h.svc.ListLibraryImages()
		h.responder.WriteJSON(w, map[string]any{
			"images": images,
			"total":  len(images),
		})
	}
}

// addImage records an uploaded asset in the library. The bytes themselves
// already live in object storage; this stores the metadata row.
func (h libraryHandler) addImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var image models.LibraryImage
		if err := json.NewDecoder(r.Body).Decode(&image); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if image.Name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}
		if image.URL == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("url"))
			return
		}

		if err := h.svc.AddLibraryImage(&image); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create library image", "image", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, image)
	}
}

func (h libraryHandler) deleteImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		imageID, err := uuid.Parse(chi.URLParam(r, "imageID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid imageID"))
			return
		}

		if err := h.svc.DeleteLibraryImage(imageID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete library image", "image", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "library image deleted successfully",
		})
	}
}
