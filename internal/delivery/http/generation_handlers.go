package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Arcadesys/imagengen-ig-sub001/internal/delivery/http/middleware"
	"github.com/Arcadesys/imagengen-ig-sub001/internal/model"
	"github.com/Arcadesys/imagengen-ig-sub001/internal/prompt"
	"github.com/Arcadesys/imagengen-ig-sub001/internal/service"
)

type generateRequest struct {
	GeneratorSlug string         `json:"generatorSlug" binding:"required"`
	BaseImageID   *uuid.UUID     `json:"baseImageId"`
	Answers       prompt.Answers `json:"answers"`
	SessionID     *uuid.UUID     `json:"sessionId"`
	SessionCode   string         `json:"sessionCode"`
}

// Generate handles POST /api/generate. The caller is either an authenticated
// user (no code needed) or a walk-up client presenting a session code.
func (h *Handler) Generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %v", model.ErrInvalidInput, err))
		return
	}

	img, err := h.generation.Generate(c.Request.Context(), middleware.CurrentUser(c), service.GenerateInput{
		GeneratorSlug: req.GeneratorSlug,
		BaseImageID:   req.BaseImageID,
		Answers:       req.Answers,
		SessionID:     req.SessionID,
		SessionCode:   req.SessionCode,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"image": img})
}
