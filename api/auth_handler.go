package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/brothersphoto/site-backend/auth"
	"github.com/brothersphoto/site-backend/errs"
)

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	sessions  *auth.Sessions
}

func newAuthHandler(sessions *auth.Sessions) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		sessions:  sessions,
	}
}

type loginRequest struct {
	Password string `json:"password"`
}

// login exchanges the admin password for a session token. A wrong password
// gets a 401 and the caller stays anonymous.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		token, err := h.sessions.Login(req.Password)
		if err != nil {
			h.logger.Warn().Msg("Failed admin login attempt")
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status": "success",
			"token":  token,
		})
	}
}

// logout revokes the caller's session token
func (h authHandler) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		token := strings.TrimPrefix(authHeader, "Bearer ")
		h.sessions.Logout(token)

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "logged out",
		})
	}
}
