package api

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/brothersphoto/site-backend/errs"
	"github.com/brothersphoto/site-backend/upload"
)

// ObjectStore is the object-storage surface the relay forwards to.
type ObjectStore interface {
	Upload(ctx context.Context, objectKey string, body io.Reader, contentType string) error
	PublicURL(objectKey string) string
}

type uploadHandler struct {
	responder  Responder
	logger     zerolog.Logger
	store      ObjectStore
	credential string
}

func newUploadHandler(store ObjectStore, credential string) uploadHandler {
	logger := log.With().Str("handlerName", "uploadHandler").Logger()

	return uploadHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
		// credential gates the relay endpoint; empty means no gate
		credential: credential,
	}
}

type relayRequest struct {
	File     string `json:"file"`
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
	Folder   string `json:"folder,omitempty"`
}

// relay accepts a base64-encoded file, re-validates type and size
// independently of the client, and forwards the bytes to object storage.
func (h uploadHandler) relay() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.credential != "" {
			bearer := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			if bearer != h.credential {
				h.responder.WriteError(w, errs.Unauthorized)
				return
			}
		}

		// Configuration error, not a client error: credentials for object
		// storage were absent at startup.
		if h.store == nil {
			h.responder.WriteError(w, errs.NewConfigError("object storage credentials"))
			return
		}

		var req relayRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("upload", err))
			return
		}

		if req.File == "" || req.FileName == "" || req.FileType == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("Missing required fields: file, fileName, fileType"))
			return
		}

		data, err := decodeDataURL(req.File)
		if err != nil {
			h.responder.WriteError(w, errs.NewInvalidFieldError("file", "not a valid base64 data URL"))
			return
		}

		// Same allowed set and ceiling as the client check, re-applied here
		// as defense against a client that skips validation.
		if err := upload.ProfileAsset.Validate(upload.File{
			Name: req.FileName,
			Type: req.FileType,
			Data: data,
		}); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		objectKey, uniqueName := objectKeyFor(req.FileName, req.Folder)

		if err := h.store.Upload(r.Context(), objectKey, bytes.NewReader(data), req.FileType); err != nil {
			h.logger.Error().Err(err).Str("key", objectKey).Msg("Error forwarding upload to object storage")
			h.responder.WriteError(w, errs.NewUploadFailedError("forwarding to object storage", err))
			return
		}

		h.responder.WriteJSON(w, upload.Result{
			Success:          true,
			URL:              h.store.PublicURL(objectKey),
			Key:              objectKey,
			FileName:         uniqueName,
			OriginalFileName: req.FileName,
		})
	}
}

// decodeDataURL strips the data-URL prefix and decodes the base64 payload.
// A bare base64 string without a prefix is accepted too.
func decodeDataURL(dataURL string) ([]byte, error) {
	payload := dataURL
	if idx := strings.Index(dataURL, ","); idx >= 0 {
		payload = dataURL[idx+1:]
	}
	return base64.StdEncoding.DecodeString(payload)
}

const keyAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// objectKeyFor generates a collision-resistant object key:
// {folder/}{unixMillis}-{randomAlphanumeric}.{ext}. Best-effort uniqueness
// only; the residual collision probability is not handled and there is no
// retry on collision.
func objectKeyFor(fileName, folder string) (key, uniqueName string) {
	suffix := make([]byte, 13)
	for i := range suffix {
		suffix[i] = keyAlphabet[rand.IntN(len(keyAlphabet))]
	}

	ext := ""
	if idx := strings.LastIndex(fileName, "."); idx >= 0 {
		ext = fileName[idx+1:]
	}

	uniqueName = fmt.Sprintf("%d-%s.%s", time.Now().UnixMilli(), suffix, ext)

	if folder != "" {
		return folder + "/" + uniqueName, uniqueName
	}
	return uniqueName, uniqueName
}
