package api

import (
	"net/http"

	"github.com/its-steo/GrandV-sub001/internal/common"
)

// APIError is a normalized backend rejection (any non-2xx response).
//
// Message derivation follows the backend's error shape: a top-level "error"
// field wins; otherwise all field-level validation messages are flattened and
// joined with ", "; otherwise the operation's fallback text is used. Match
// with errors.As, or with errors.Is against the common sentinels.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// Unwrap maps well-known status codes onto the shared sentinel errors so
// callers can use errors.Is without inspecting status codes.
func (e *APIError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden:
		return common.ErrorUnauthorized
	case e.StatusCode == http.StatusNotFound:
		return common.ErrorNotFound
	case e.StatusCode >= http.StatusInternalServerError:
		return common.ErrorInternal
	default:
		return nil
	}
}
