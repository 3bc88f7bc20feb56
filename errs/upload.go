package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Upload & Object-Storage Errors
var (
	ErrInvalidFileType = errors.New("invalid file type")
	ErrFileTooLarge    = errors.New("file too large")
	ErrUploadFailed    = errors.New("upload failed")
	ErrMissingConfig   = errors.New("missing configuration")
)

func NewInvalidFileTypeError(fileType string, allowed []string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrInvalidFileType,
		Details:    fmt.Sprintf("File type %s is not allowed. Allowed types: %v", fileType, allowed),
		Field:      "fileType",
	}
}

func NewFileTooLargeError(size, maxSize int64) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrFileTooLarge,
		Details:    fmt.Sprintf("File size %.2fMB exceeds the %dMB limit", float64(size)/1024/1024, maxSize/1024/1024),
		Field:      "file",
	}
}

func NewUploadFailedError(message string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrUploadFailed,
		Details:    message,
		Cause:      cause,
	}
}

func NewConfigError(what string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrMissingConfig,
		Details:    what + " not configured",
	}
}

func IsInvalidFileType(err error) bool {
	return errors.Is(err, ErrInvalidFileType)
}

func IsFileTooLarge(err error) bool {
	return errors.Is(err, ErrFileTooLarge)
}

func IsUploadFailed(err error) bool {
	return errors.Is(err, ErrUploadFailed)
}
