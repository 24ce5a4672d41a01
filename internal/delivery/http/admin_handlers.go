package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Arcadesys/imagengen-ig-sub001/internal/delivery/http/middleware"
	"github.com/Arcadesys/imagengen-ig-sub001/internal/model"
	"github.com/Arcadesys/imagengen-ig-sub001/internal/service"
)

type createCodeRequest struct {
	Code           string     `json:"code"`
	Name           *string    `json:"name"`
	MaxGenerations int        `json:"maxGenerations" binding:"required"`
	ExpiresAt      *time.Time `json:"expiresAt"`
}

// CreateSessionCode handles POST /api/admin/session-codes. Leaving code empty
// mints a random one.
func (h *Handler) CreateSessionCode(c *gin.Context) {
	var req createCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %v", model.ErrInvalidInput, err))
		return
	}

	code, err := h.codes.Create(c.Request.Context(), middleware.CurrentUser(c), service.CodeCreateInput{
		Code:           req.Code,
		Name:           req.Name,
		MaxGenerations: req.MaxGenerations,
		ExpiresAt:      req.ExpiresAt,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"sessionCode": code})
}

// ListSessionCodes handles GET /api/admin/session-codes.
func (h *Handler) ListSessionCodes(c *gin.Context) {
	codes, err := h.codes.List(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionCodes": codes})
}

type updateCodeRequest struct {
	Name           *string    `json:"name"`
	IsActive       *bool      `json:"isActive"`
	MaxGenerations *int       `json:"maxGenerations"`
	ExpiresAt      *time.Time `json:"expiresAt"`
}

// UpdateSessionCode handles PUT /api/admin/session-codes/:code.
func (h *Handler) UpdateSessionCode(c *gin.Context) {
	var req updateCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %v", model.ErrInvalidInput, err))
		return
	}

	code, err := h.codes.Update(c.Request.Context(), middleware.CurrentUser(c), c.Param("code"), req.Name, req.IsActive, req.MaxGenerations, req.ExpiresAt)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionCode": code})
}
