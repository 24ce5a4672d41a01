package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Arcadesys/imagengen-ig-sub001/internal/delivery/http/middleware"
	"github.com/Arcadesys/imagengen-ig-sub001/internal/model"
)

type createSessionRequest struct {
	Name          string  `json:"name" binding:"required"`
	Description   *string `json:"description"`
	GeneratorSlug string  `json:"generatorSlug" binding:"required"`
}

// CreateSession handles POST /api/sessions.
func (h *Handler) CreateSession(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %v", model.ErrInvalidInput, err))
		return
	}

	session, err := h.sessions.Create(c.Request.Context(), middleware.CurrentUser(c), req.Name, req.Description, req.GeneratorSlug)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session": session})
}

// ListSessions handles GET /api/sessions.
func (h *Handler) ListSessions(c *gin.Context) {
	sessions, err := h.sessions.List(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

// DeleteSession handles DELETE /api/sessions/:id. Images that pointed at the
// session survive with their session reference cleared.
func (h *Handler) DeleteSession(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, fmt.Errorf("%w: invalid session id", model.ErrInvalidInput))
		return
	}
	if err := h.sessions.Delete(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
