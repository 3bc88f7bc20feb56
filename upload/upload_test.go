package upload

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brothersphoto/site-backend/errs"
)

func TestProfileValidate(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		file    File
		wantErr func(error) bool
	}{
		{
			name:    "1MB png passes the asset profile",
			profile: ProfileAsset,
			file:    File{Name: "a.png", Type: "image/png", Data: make([]byte, 1*1024*1024)},
			wantErr: nil,
		},
		{
			name:    "bmp is rejected",
			profile: ProfileAsset,
			file:    File{Name: "a.bmp", Type: "image/bmp", Data: make([]byte, 1024)},
			wantErr: errs.IsInvalidFileType,
		},
		{
			name:    "6MB file against the 5MB section ceiling",
			profile: ProfileSection,
			file:    File{Name: "wide.jpg", Type: "image/jpeg", Data: make([]byte, 6*1024*1024)},
			wantErr: errs.IsFileTooLarge,
		},
		{
			name:    "svg passes the logo profile",
			profile: ProfileLogo,
			file:    File{Name: "logo.svg", Type: "image/svg+xml", Data: []byte("<svg/>")},
			wantErr: nil,
		},
		{
			name:    "svg is rejected outside the logo profile",
			profile: ProfileAsset,
			file:    File{Name: "logo.svg", Type: "image/svg+xml", Data: []byte("<svg/>")},
			wantErr: errs.IsInvalidFileType,
		},
		{
			name:    "3MB logo against the 2MB ceiling",
			profile: ProfileLogo,
			file:    File{Name: "logo.png", Type: "image/png", Data: make([]byte, 3*1024*1024)},
			wantErr: errs.IsFileTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.profile.Validate(tt.file)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.True(t, tt.wantErr(err))
			}
		})
	}
}

func TestEncodeDataURL(t *testing.T) {
	file := File{Name: "a.png", Type: "image/png", Data: []byte("hello world")}

	var progress []Progress
	dataURL := encodeDataURL(file, func(p Progress) {
		progress = append(progress, p)
	})

	assert.Equal(t, "data:image/png;base64,aGVsbG8gd29ybGQ=", dataURL)
	require.NotEmpty(t, progress)
	last := progress[len(progress)-1]
	assert.Equal(t, int64(11), last.Loaded)
	assert.Equal(t, 100, last.Percentage)
}

func TestEncodeDataURLChunked(t *testing.T) {
	// Larger than one encode chunk, so progress fires more than once and the
	// chunk boundaries must not corrupt the base64 stream.
	data := make([]byte, encodeChunkSize+100)
	for i := range data {
		data[i] = byte(i % 251)
	}
	file := File{Name: "big.jpg", Type: "image/jpeg", Data: data}

	var calls int
	dataURL := encodeDataURL(file, func(Progress) { calls++ })

	assert.Equal(t, 2, calls)

	// Decoding the payload must reproduce the input exactly.
	payload := strings.TrimPrefix(dataURL, "data:image/jpeg;base64,")
	decoded, err := base64.StdEncoding.DecodeString(payload)
	require.NoError(t, err)
	assert.Equal(t, data, decoded)
}

func TestClientUpload(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var gotAuth string
		var gotReq relayRequest

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
			json.NewEncoder(w).Encode(Result{
				Success:          true,
				URL:              "https://bucket.s3.us-east-1.amazonaws.com/site/123-abc.png",
				Key:              "site/123-abc.png",
				FileName:         "123-abc.png",
				OriginalFileName: gotReq.FileName,
			})
		}))
		defer server.Close()

		client := NewClient(server.URL, "anon-key")
		result, err := client.Upload(context.Background(), File{
			Name: "portrait.png",
			Type: "image/png",
			Data: []byte("fake png bytes"),
		}, "site", nil)

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "portrait.png", result.OriginalFileName)
		assert.Equal(t, "Bearer anon-key", gotAuth)
		assert.Equal(t, "site", gotReq.Folder)
		assert.True(t, strings.HasPrefix(gotReq.File, "data:image/png;base64,"))
	})

	t.Run("validation failure aborts before any network call", func(t *testing.T) {
		called := false
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer server.Close()

		client := NewClient(server.URL, "anon-key")
		_, err := client.Upload(context.Background(), File{
			Name: "doc.pdf",
			Type: "application/pdf",
			Data: []byte("%PDF"),
		}, "", nil)

		require.Error(t, err)
		assert.True(t, errs.IsInvalidFileType(err))
		assert.False(t, called)
	})

	t.Run("relay error message is surfaced", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(relayError{Error: "Invalid file type"})
		}))
		defer server.Close()

		client := NewClient(server.URL, "anon-key")
		_, err := client.Upload(context.Background(), File{
			Name: "a.png",
			Type: "image/png",
			Data: []byte("x"),
		}, "", nil)

		require.Error(t, err)
		assert.True(t, errs.IsUploadFailed(err))
		assert.Contains(t, err.Error(), "Invalid file type")
	})
}

func TestClientUploadMany(t *testing.T) {
	// The second file fails server-side; the batch must continue and report
	// one result per file.
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		var req relayRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.FileName == "bad.png" {
			w.WriteHeader(http.StatusBadGateway)
			json.NewEncoder(w).Encode(relayError{Error: "Upload failed", Message: "bucket unavailable"})
			return
		}
		json.NewEncoder(w).Encode(Result{
			Success:          true,
			URL:              "https://cdn.example.com/" + req.FileName,
			OriginalFileName: req.FileName,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "anon-key")
	files := []File{
		{Name: "first.png", Type: "image/png", Data: []byte("1")},
		{Name: "bad.png", Type: "image/png", Data: []byte("2")},
		{Name: "third.png", Type: "image/png", Data: []byte("3")},
	}

	results := client.UploadMany(context.Background(), files, "", nil)

	require.Len(t, results, 3)
	assert.Equal(t, 3, requests, "failure must not abort the remaining uploads")
	assert.True(t, results[0].Success)
	assert.False(t, results[1].Success)
	assert.Contains(t, results[1].Error, "bucket unavailable")
	assert.Equal(t, "bad.png", results[1].OriginalFileName)
	assert.True(t, results[2].Success)
}
