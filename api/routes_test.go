package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brothersphoto/site-backend/auth"
	"github.com/brothersphoto/site-backend/content"
)

func newTestRouter(t *testing.T, password string) chi.Router {
	t.Helper()

	sessions := auth.NewSessions(auth.NewFixedSecret(password), []byte("test-signing-key"), time.Hour)
	svc := content.NewService(content.Stores{})
	handlers := initializeHandlers(svc, sessions, nil, "")

	r := chi.NewRouter()
	setupRoutes(r, handlers, newAuthMiddleware(sessions))
	return r
}

func loginToken(t *testing.T, router chi.Router, password string) (int, string) {
	t.Helper()

	body, err := json.Marshal(map[string]string{"password": password})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/admin/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		return w.Code, ""
	}

	var resp map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return w.Code, resp["token"]
}

func TestAdminRoutesRequireSession(t *testing.T) {
	router := newTestRouter(t, "hunter2")

	req := httptest.NewRequest(http.MethodPost, "/admin/logout", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginThenAdminAccess(t *testing.T) {
	router := newTestRouter(t, "hunter2")

	code, token := loginToken(t, router, "hunter2")
	require.Equal(t, http.StatusOK, code)
	require.NotEmpty(t, token)

	req := httptest.NewRequest(http.MethodPost, "/admin/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	// The token is revoked after logout.
	req = httptest.NewRequest(http.MethodPost, "/admin/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	router := newTestRouter(t, "hunter2")

	code, token := loginToken(t, router, "letmein")
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Empty(t, token)
}
