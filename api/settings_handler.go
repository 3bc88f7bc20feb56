package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/brothersphoto/site-backend/content"
	"github.com/brothersphoto/site-backend/errs"
)

type settingsHandler struct {
	responder Responder
	logger    zerolog.Logger
	svc       *content.Service
}

func newSettingsHandler(svc *content.Service) settingsHandler {
	logger := log.With().Str("handlerName", "settingsHandler").Logger()

	return settingsHandler{
		responder: NewResponder(logger),
		logger:    logger,
		svc:       svc,
	}
}

// getSetting returns the setting row for a key, 404 when absent
func (h settingsHandler) getSetting() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "key")
		if key == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing key"))
			return
		}

		setting := h.svc.GetSetting(key)
		if setting == nil {
			h.responder.WriteError(w, errs.NewNotFound("site setting"))
			return
		}

		h.responder.WriteJSON(w, setting)
	}
}

type upsertSettingRequest struct {
	Value string `json:"value"`
	Type  string `json:"type,omitempty"`
}

// upsertSetting writes a setting value: insert when the key is absent,
// update in place otherwise.
func (h settingsHandler) upsertSetting() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "key")
		if key == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing key"))
			return
		}

		var req upsertSettingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		setting, err := h.svc.UpsertSetting(key, req.Value, req.Type)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("upsert site setting", "site_setting", err))
			return
		}

		h.responder.WriteJSON(w, setting)
	}
}
