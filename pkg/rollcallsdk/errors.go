package rollcallsdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/quorumhq/rollcall/pkg/httpx"
)

// Stable machine-readable error codes.
const (
	ErrorCodeBadRequest       = "bad_request"
	ErrorCodeUnauthenticated  = "unauthenticated"
	ErrorCodeForbidden        = "forbidden"
	ErrorCodeNotFound         = "not_found"
	ErrorCodeConflict         = "conflict"
	ErrorCodeInvalidState     = "invalid_state"
	ErrorCodeAlreadyFinalized = "already_finalized"
	ErrorCodeServerError      = "server_error"
)

// APIError is the error envelope every non-2xx response carries. It
// implements the error interface so the Client can return it directly and
// callers can match on Code with errors.As.
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is the stable machine-readable error code
	Code string `json:"error"`

	// Message is a human-readable description
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, e.StatusCode, map[string]string{
		"error":   e.Code,
		"message": e.Message,
	})
}

// NewAPIError builds a one-off APIError. Prefer the predefined values below
// with WithMessage for anything a client might want to match on.
func NewAPIError(statusCode int, code, message string) *APIError {
	return &APIError{StatusCode: statusCode, Code: code, Message: message}
}

// WithMessage returns a copy of e with a more specific human-readable message.
// The receiver is not mutated; the predefined errors stay pristine.
func (e *APIError) WithMessage(message string) *APIError {
	clone := *e
	clone.Message = message
	return &clone
}

var (
	// ErrBadRequest is returned for malformed bodies, missing required
	// fields and invalid enum values.
	ErrBadRequest = &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeBadRequest,
		Message:    "the request is malformed or missing required fields",
	}

	// ErrUnauthenticated is returned when no valid credential accompanies
	// the request.
	ErrUnauthenticated = &APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       ErrorCodeUnauthenticated,
		Message:    "authentication required",
	}

	// ErrForbidden is returned when the caller is authenticated but lacks
	// the required role or committee membership.
	ErrForbidden = &APIError{
		StatusCode: http.StatusForbidden,
		Code:       ErrorCodeForbidden,
		Message:    "access denied",
	}

	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = &APIError{
		StatusCode: http.StatusNotFound,
		Code:       ErrorCodeNotFound,
		Message:    "not found",
	}

	// ErrConflict is returned for duplicate active memberships.
	ErrConflict = &APIError{
		StatusCode: http.StatusConflict,
		Code:       ErrorCodeConflict,
		Message:    "conflict with current state",
	}

	// ErrInvalidState is returned when a meeting's status does not permit
	// the requested action. The original deployment used 400 here and
	// clients depend on it.
	ErrInvalidState = &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeInvalidState,
		Message:    "action not permitted in the current meeting status",
	}

	// ErrAlreadyFinalized is returned once an attendance record's single
	// edit has been spent. Same 400 compatibility constraint as above.
	ErrAlreadyFinalized = &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeAlreadyFinalized,
		Message:    "attendance has already been updated once",
	}

	// ErrServerError is returned for unexpected failures. Store error
	// detail is logged server-side, never leaked to clients.
	ErrServerError = &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       ErrorCodeServerError,
		Message:    "internal server error",
	}
)

// parseErrorResponse turns a non-2xx HTTP response into a typed *APIError.
// Returns nil for 2xx responses.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var envelope struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != "" {
		return &APIError{
			StatusCode: resp.StatusCode,
			Code:       envelope.Error,
			Message:    envelope.Message,
		}
	}

	// Fallback: create generic error from status code
	return &APIError{
		StatusCode: resp.StatusCode,
		Code:       ErrorCodeServerError,
		Message:    fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
