package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/brothersphoto/site-backend/content"
	"github.com/brothersphoto/site-backend/errs"
	"github.com/brothersphoto/site-backend/models"
)

type pageContentHandler struct {
	responder Responder
	logger    zerolog.Logger
	svc       *content.Service
}

func newPageContentHandler(svc *content.Service) pageContentHandler {
	logger := log.With().Str("handlerName", "pageContentHandler").Logger()

	return pageContentHandler{
		responder: NewResponder(logger),
		logger:    logger,
		svc:       svc,
	}
}

// getPageContent returns the stored content for a page, 404 when absent
func (h pageContentHandler) getPageContent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pageID := chi.URLParam(r, "pageID")
		if pageID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing pageID"))
			return
		}

		pageContent := h.svc.GetPageContent(pageID)
		if pageContent == nil {
			h.responder.WriteError(w, errs.NewNotFound("page content"))
			return
		}

		h.responder.WriteJSON(w, pageContent)
	}
}

// listPageContent returns all page content rows for the admin dashboard
func (h pageContentHandler) listPageContent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contents := h.svc.ListPageContent()
		h.responder.WriteJSON(w, map[string]any{
			"pages": contents,
			"total": len(contents),
		})
	}
}

// savePageContent upserts the content for a page, keyed by its page id
func (h pageContentHandler) savePageContent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pageID := chi.URLParam(r, "pageID")
		if pageID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing pageID"))
			return
		}

		var pageContent models.PageContent
		if err := json.NewDecoder(r.Body).Decode(&pageContent); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		pageContent.PageID = pageID

		saved, err := h.svc.SavePageContent(&pageContent)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("upsert page content", "page_content", err))
			return
		}

		h.responder.WriteJSON(w, saved)
	}
}
