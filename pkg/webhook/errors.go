package webhook

import (
	"errors"
	"net/http"
)

const (
	ErrCodeTimeout     = "TIMEOUT"
	ErrCodeNetwork     = "NETWORK_ERROR"
	ErrCodeRejected    = "REJECTED"
	ErrCodeServerError = "SERVER_ERROR"
)

var (
	ErrTimeout     = errors.New(ErrCodeTimeout)
	ErrNetwork     = errors.New(ErrCodeNetwork)
	ErrRejected    = errors.New(ErrCodeRejected)
	ErrServerError = errors.New(ErrCodeServerError)
)

// MapStatusToError returns nil for any 2xx status.
func MapStatusToError(statusCode int) error {
	switch {
	case statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices:
		return nil
	case statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError:
		return ErrRejected
	default:
		return ErrServerError
	}
}
