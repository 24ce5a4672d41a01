package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Arcadesys/imagengen-ig-sub001/internal/model"
)

type verifyCodeRequest struct {
	Code          string `json:"code" binding:"required"`
	UseGeneration bool   `json:"useGeneration"`
}

// VerifySessionCode handles POST /api/session-codes/verify. The endpoint is
// rate limited per client IP so the code space cannot be enumerated.
func (h *Handler) VerifySessionCode(c *gin.Context) {
	allowed, err := h.verifyLimit.Allow(c.Request.Context(), "verify:"+c.ClientIP())
	if err != nil {
		log.Warn().Err(err).Msg("verify rate limiter unavailable")
	}
	if !allowed {
		respondError(c, model.ErrRateLimited)
		return
	}

	var req verifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %v", model.ErrInvalidInput, err))
		return
	}

	result, err := h.codes.Verify(c.Request.Context(), req.Code, req.UseGeneration)
	if err != nil {
		if reason, ok := denialReason(err); ok {
			c.AbortWithStatusJSON(statusFor(err), gin.H{"error": err.Error(), "reason": reason})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// denialReason names why a code was refused so kiosks can show a specific
// message instead of a generic failure.
func denialReason(err error) (string, bool) {
	switch {
	case errors.Is(err, model.ErrCodeNotFound):
		return "not-found", true
	case errors.Is(err, model.ErrCodeInactive):
		return "inactive", true
	case errors.Is(err, model.ErrCodeExpired):
		return "expired", true
	case errors.Is(err, model.ErrCodeQuotaExceeded):
		return "limit-reached", true
	}
	return "", false
}
