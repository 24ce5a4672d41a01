package model

import "errors"

// Domain errors. Repositories and services return these; the delivery layer
// maps them to HTTP status codes.
var (
	ErrGeneratorNotFound = errors.New("generator not found")
	ErrSlugTaken         = errors.New("generator slug already exists")
	ErrInvalidSlug       = errors.New("invalid generator slug")
	ErrSchemaInvalid     = errors.New("question schema is invalid")

	ErrCodeNotFound      = errors.New("session code not found")
	ErrCodeInactive      = errors.New("session code is inactive")
	ErrCodeExpired       = errors.New("session code has expired")
	ErrCodeQuotaExceeded = errors.New("session code generation limit reached")
	ErrCodeTaken         = errors.New("session code already exists")
	ErrInvalidCode       = errors.New("invalid session code")

	ErrImageNotFound   = errors.New("image not found")
	ErrSessionNotFound = errors.New("generation session not found")

	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrUnauthorized    = errors.New("authentication required")
	ErrForbidden       = errors.New("operation not permitted")
	ErrInvalidInput    = errors.New("invalid input")
	ErrUpstreamFailure = errors.New("upstream provider failure")
	ErrRateLimited     = errors.New("too many requests")
)
