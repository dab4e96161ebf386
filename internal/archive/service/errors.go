package service

import "errors"

// Sentinel errors shared across services. The HTTP layer maps these onto
// status codes; services never import net/http.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrResetCodeExpired   = errors.New("reset token expired")
	ErrInactiveUser       = errors.New("inactive user")
	ErrTokenInvalid       = errors.New("token verification failed")
	ErrTokenExpired       = errors.New("token expired")
	ErrNotFound           = errors.New("not found")
	ErrUploadFailed       = errors.New("upload failed")
)
