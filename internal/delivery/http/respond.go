package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Arcadesys/imagengen-ig-sub001/internal/model"
)

// statusFor maps domain errors to HTTP status codes. Anything unmapped is an
// internal error.
func statusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrGeneratorNotFound),
		errors.Is(err, model.ErrCodeNotFound),
		errors.Is(err, model.ErrImageNotFound),
		errors.Is(err, model.ErrSessionNotFound),
		errors.Is(err, model.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrSlugTaken),
		errors.Is(err, model.ErrCodeTaken),
		errors.Is(err, model.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, model.ErrCodeInactive),
		errors.Is(err, model.ErrCodeExpired),
		errors.Is(err, model.ErrCodeQuotaExceeded),
		errors.Is(err, model.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, model.ErrUnauthorized),
		errors.Is(err, model.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, model.ErrInvalidSlug),
		errors.Is(err, model.ErrSchemaInvalid),
		errors.Is(err, model.ErrInvalidCode),
		errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, model.ErrUpstreamFailure):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the error as {"error": "..."}. Internal errors are
// logged with context and replaced by a generic message so no detail leaks.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled error")
		msg = "internal server error"
	}
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}
