package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SearchTraits handles GET /api/traits. Supports q and category query
// parameters; results are capped server-side.
func (h *Handler) SearchTraits(c *gin.Context) {
	traits, err := h.catalog.Search(c.Request.Context(), c.Query("q"), c.Query("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"traits": traits})
}
