package upload

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/brothersphoto/site-backend/errs"
)

// Progress reports how far the data-URL encoding step has gotten. It tracks
// the encode, not the network transfer.
type Progress struct {
	Loaded     int64
	Total      int64
	Percentage int
}

type ProgressFunc func(Progress)

// Result is the relay's answer for a single file.
type Result struct {
	Success          bool   `json:"success"`
	URL              string `json:"url"`
	Key              string `json:"key"`
	FileName         string `json:"fileName"`
	OriginalFileName string `json:"originalFileName"`
	Error            string `json:"error,omitempty"`
}

type relayRequest struct {
	File     string `json:"file"`
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
	Folder   string `json:"folder,omitempty"`
}

type relayError struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Client validates files locally and hands them to the remote upload relay.
// Each file is a single request: no retry, no resumability, no chunking.
type Client struct {
	endpoint   string
	credential string
	profile    Profile
	httpClient *http.Client
	logger     zerolog.Logger
}

func NewClient(endpoint, credential string, opts ...func(*Client)) *Client {
	c := &Client{
		endpoint:   endpoint,
		credential: credential,
		profile:    ProfileAsset,
		// No explicit timeout: resolution depends on the transport defaults.
		httpClient: http.DefaultClient,
		logger:     log.With().Str("serviceName", "uploadClient").Logger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func WithProfile(profile Profile) func(*Client) {
	return func(c *Client) {
		c.profile = profile
	}
}

func WithHTTPClient(httpClient *http.Client) func(*Client) {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// Upload validates the file, encodes it to a base64 data URL (reporting
// progress per encoded chunk), and posts it to the relay. onProgress may be
// nil.
func (c *Client) Upload(ctx context.Context, file File, folder string, onProgress ProgressFunc) (*Result, error) {
	if err := c.profile.Validate(file); err != nil {
		return nil, err
	}

	dataURL := encodeDataURL(file, onProgress)

	body, err := json.Marshal(relayRequest{
		File:     dataURL,
		FileName: file.Name,
		FileType: file.Type,
		Folder:   folder,
	})
	if err != nil {
		return nil, errs.NewUploadFailedError("encoding relay request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errs.NewUploadFailedError("building relay request", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.credential)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("fileName", file.Name).Msg("Relay unreachable")
		return nil, errs.NewUploadFailedError("relay unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var relayErr relayError
		if err := json.NewDecoder(resp.Body).Decode(&relayErr); err != nil || relayErr.Error == "" {
			relayErr.Error = fmt.Sprintf("relay returned status %d", resp.StatusCode)
		}
		message := relayErr.Error
		if relayErr.Message != "" {
			message = fmt.Sprintf("%s: %s", relayErr.Error, relayErr.Message)
		}
		return nil, errs.NewUploadFailedError(message, nil)
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, errs.NewUploadFailedError("decoding relay response", err)
	}
	return &result, nil
}

// UploadMany uploads files one at a time. A failed file is recorded in its
// slot and the batch continues; the caller always receives one result per
// file. There is no way to abort an in-flight batch beyond cancelling ctx.
func (c *Client) UploadMany(ctx context.Context, files []File, folder string, onProgress func(index int, p Progress)) []Result {
	results := make([]Result, 0, len(files))

	for i, file := range files {
		var perFile ProgressFunc
		if onProgress != nil {
			index := i
			perFile = func(p Progress) {
				onProgress(index, p)
			}
		}

		result, err := c.Upload(ctx, file, folder, perFile)
		if err != nil {
			c.logger.Error().Err(err).Str("fileName", file.Name).Msg("Upload failed")
			results = append(results, Result{
				FileName:         file.Name,
				OriginalFileName: file.Name,
				Error:            err.Error(),
			})
			continue
		}
		results = append(results, *result)
	}

	return results
}

// encodeChunkSize is a multiple of 3 so every chunk encodes to whole base64
// characters with no padding until the end.
const encodeChunkSize = 48 * 1024

func encodeDataURL(file File, onProgress ProgressFunc) string {
	var b strings.Builder
	b.WriteString("data:")
	b.WriteString(file.Type)
	b.WriteString(";base64,")

	total := file.Size()
	for offset := int64(0); offset < total; offset += encodeChunkSize {
		end := offset + encodeChunkSize
		if end > total {
			end = total
		}
		b.WriteString(base64.StdEncoding.EncodeToString(file.Data[offset:end]))

		if onProgress != nil {
			onProgress(Progress{
				Loaded:     end,
				Total:      total,
				Percentage: int(end * 100 / total),
			})
		}
	}

	if total == 0 && onProgress != nil {
		onProgress(Progress{Percentage: 100})
	}
	return b.String()
}
