package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Arcadesys/imagengen-ig-sub001/internal/delivery/http/middleware"
	"github.com/Arcadesys/imagengen-ig-sub001/internal/model"
	"github.com/Arcadesys/imagengen-ig-sub001/internal/service"
)

type generatorResponse struct {
	Generator *model.Generator      `json:"generator"`
	Schema    *model.QuestionSchema `json:"schema,omitempty"`
}

// ListGenerators handles GET /api/generators. Only active generators are
// visible on the public surface.
func (h *Handler) ListGenerators(c *gin.Context) {
	generators, err := h.generators.ListActive(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"generators": generators})
}

// GetGenerator handles GET /api/generators/:slug. The schema is resolved from
// whichever config layout the generator was stored with; an unusable schema
// comes back as null rather than an error.
func (h *Handler) GetGenerator(c *gin.Context) {
	gen, schema, err := h.generators.GetWithSchema(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, generatorResponse{Generator: gen, Schema: schema})
}

type createGeneratorRequest struct {
	Slug        string                `json:"slug" binding:"required"`
	Name        string                `json:"name" binding:"required"`
	Description *string               `json:"description"`
	Style       *string               `json:"style"`
	Theme       *string               `json:"theme"`
	Schema      *model.QuestionSchema `json:"schema"`
}

// CreateGenerator handles POST /api/generators.
func (h *Handler) CreateGenerator(c *gin.Context) {
	var req createGeneratorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %v", model.ErrInvalidInput, err))
		return
	}

	gen, err := h.generators.Create(c.Request.Context(), middleware.CurrentUser(c), service.CreateInput{
		Slug:        req.Slug,
		Name:        req.Name,
		Description: req.Description,
		Style:       req.Style,
		Theme:       req.Theme,
		Schema:      req.Schema,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, generatorResponse{Generator: gen})
}

// UpdateGenerator handles PUT /api/generators/:slug. Only fields present in
// the body change; the rest keep their stored values.
func (h *Handler) UpdateGenerator(c *gin.Context) {
	var patch model.GeneratorPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondError(c, fmt.Errorf("%w: %v", model.ErrInvalidInput, err))
		return
	}

	gen, err := h.generators.Update(c.Request.Context(), middleware.CurrentUser(c), c.Param("slug"), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, generatorResponse{Generator: gen})
}

type saveSchemaRequest struct {
	Title          string           `json:"title"`
	Intro          string           `json:"intro"`
	Questions      []model.Question `json:"questions"`
	References     []string         `json:"references"`
	PromptTemplate string           `json:"promptTemplate"`
}

// SaveGeneratorSchema handles POST /api/generators/:slug/questions. The body
// must carry both questions and a prompt template; partial schemas are
// rejected before anything is stored.
func (h *Handler) SaveGeneratorSchema(c *gin.Context) {
	var req saveSchemaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %v", model.ErrInvalidInput, err))
		return
	}
	if len(req.Questions) == 0 || req.PromptTemplate == "" {
		respondError(c, fmt.Errorf("%w: questions and promptTemplate are required", model.ErrInvalidInput))
		return
	}

	schema := &model.QuestionSchema{
		Title:          req.Title,
		Intro:          req.Intro,
		Questions:      req.Questions,
		References:     req.References,
		PromptTemplate: req.PromptTemplate,
	}
	if err := h.generators.SaveSchema(c.Request.Context(), middleware.CurrentUser(c), c.Param("slug"), schema); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": true})
}
