package http

import (
	"errors"
	"net/http"

	"github.com/docstash/docstash/internal/archive/service"
	"github.com/docstash/docstash/pkg/httpx"
)

// APIError is the JSON error envelope every endpoint uses.
type APIError struct {
	StatusCode  int    `json:"-"`
	Code        string `json:"error"`
	Description string `json:"error_description,omitempty"`
}

func (e APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, e.StatusCode, e)
}

var (
	errBadRequest = APIError{StatusCode: http.StatusBadRequest, Code: "invalid_request"}
	errServer     = APIError{StatusCode: http.StatusInternalServerError, Code: "server_error"}
)

func badRequest(desc string) APIError {
	e := errBadRequest
	e.Description = desc
	return e
}

// mapServiceError translates service sentinels onto the wire contract.
// Anything unrecognized is a 500 with no detail leaked.
func mapServiceError(err error) APIError {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		return APIError{StatusCode: http.StatusNotFound, Code: "not_found", Description: "User not found"}
	case errors.Is(err, service.ErrInvalidCredentials):
		return APIError{StatusCode: http.StatusUnauthorized, Code: "invalid_credentials", Description: "Incorrect password"}
	case errors.Is(err, service.ErrEmailTaken):
		return APIError{StatusCode: http.StatusConflict, Code: "conflict", Description: "Email already registered"}
	case errors.Is(err, service.ErrPasswordMismatch):
		return APIError{StatusCode: http.StatusUnauthorized, Code: "password_mismatch", Description: "Passwords do not match"}
	case errors.Is(err, service.ErrResetCodeExpired):
		return APIError{StatusCode: http.StatusForbidden, Code: "token_expired", Description: "Token expired"}
	case errors.Is(err, service.ErrInactiveUser):
		return APIError{StatusCode: http.StatusBadRequest, Code: "inactive_user", Description: "Inactive user"}
	case errors.Is(err, service.ErrTokenExpired):
		return APIError{StatusCode: http.StatusUnauthorized, Code: "invalid_token", Description: "token expired, log in again"}
	case errors.Is(err, service.ErrTokenInvalid):
		return APIError{StatusCode: http.StatusUnauthorized, Code: "invalid_token", Description: "token verification failed"}
	case errors.Is(err, service.ErrNotFound):
		return APIError{StatusCode: http.StatusNotFound, Code: "not_found"}
	case errors.Is(err, service.ErrUploadFailed):
		// Deliberately generic so nothing about the spool layout leaks.
		return APIError{StatusCode: http.StatusForbidden, Code: "upload_failed", Description: "Upload failed"}
	default:
		return errServer
	}
}
