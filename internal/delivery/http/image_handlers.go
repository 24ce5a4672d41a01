package http

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Arcadesys/imagengen-ig-sub001/internal/delivery/http/middleware"
	"github.com/Arcadesys/imagengen-ig-sub001/internal/model"
)

// Uploads beyond this are rejected before the blob store is touched.
const maxUploadBytes = 15 << 20

// UploadImage handles POST /api/images/upload. The photo arrives as the
// multipart field "image"; an optional "sessionId" field attaches the upload
// to a photo-booth session.
func (h *Handler) UploadImage(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		respondError(c, fmt.Errorf("%w: missing image file", model.ErrInvalidInput))
		return
	}
	defer file.Close()

	if header.Size > maxUploadBytes {
		respondError(c, fmt.Errorf("%w: image exceeds %d bytes", model.ErrInvalidInput, maxUploadBytes))
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		respondError(c, fmt.Errorf("%w: %v", model.ErrInvalidInput, err))
		return
	}
	if len(data) > maxUploadBytes {
		respondError(c, fmt.Errorf("%w: image exceeds %d bytes", model.ErrInvalidInput, maxUploadBytes))
		return
	}

	var sessionID *uuid.UUID
	if raw := c.PostForm("sessionId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			respondError(c, fmt.Errorf("%w: invalid sessionId", model.ErrInvalidInput))
			return
		}
		sessionID = &id
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}

	img, err := h.images.Upload(c.Request.Context(), middleware.CurrentUser(c), data, mimeType, sessionID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"image": img})
}

// DeleteImage handles DELETE /api/images/:id.
func (h *Handler) DeleteImage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, fmt.Errorf("%w: invalid image id", model.ErrInvalidInput))
		return
	}
	if err := h.images.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// ListImagePairs handles GET /api/images/pairs. Supports filter, limit and
// offset query parameters; the service clamps the page size.
func (h *Handler) ListImagePairs(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	pairs, err := h.images.ListPairs(c.Request.Context(), c.Query("filter"), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pairs": pairs})
}
