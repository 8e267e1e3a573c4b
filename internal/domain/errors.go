package domain

import "errors"

// Sentinel errors returned by the service layer. Handlers translate these
// into HTTP status codes and flash categories; nothing below the handler
// layer knows about HTTP.
var (
	ErrDuplicateIdentity    = errors.New("username or email already registered")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrUnauthenticated      = errors.New("authentication required")
	ErrForbidden            = errors.New("permission denied")
	ErrNotFound             = errors.New("record not found")
	ErrValidation           = errors.New("validation failed")
	ErrPasswordMismatch     = errors.New("new password and confirm password do not match")
	ErrWrongCurrentPassword = errors.New("current password is incorrect")
)

// Flash message categories matching the presentation layer's styling.
const (
	CategorySuccess = "success"
	CategoryDanger  = "danger"
)
