// Package http is the gin delivery layer. Handlers bind and validate the
// wire format, call one service, and map domain errors to status codes;
// no business logic lives here.
package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	ginprometheus "github.com/zsais/go-gin-prometheus"

	"github.com/Arcadesys/imagengen-ig-sub001/internal/auth"
	"github.com/Arcadesys/imagengen-ig-sub001/internal/delivery/http/middleware"
	"github.com/Arcadesys/imagengen-ig-sub001/internal/ratelimit"
	"github.com/Arcadesys/imagengen-ig-sub001/internal/service"
)

// Handler carries every service the HTTP surface needs.
type Handler struct {
	accounts    *service.AccountService
	generators  *service.GeneratorService
	codes       *service.CodeService
	images      *service.ImageService
	sessions    *service.SessionService
	generation  *service.GenerationService
	catalog     *service.CatalogService
	tokens      *auth.Service
	verifyLimit ratelimit.Limiter
}

func New(
	accounts *service.AccountService,
	generators *service.GeneratorService,
	codes *service.CodeService,
	images *service.ImageService,
	sessions *service.SessionService,
	generation *service.GenerationService,
	catalog *service.CatalogService,
	tokens *auth.Service,
	verifyLimit ratelimit.Limiter,
) *Handler {
	return &Handler{
		accounts:    accounts,
		generators:  generators,
		codes:       codes,
		images:      images,
		sessions:    sessions,
		generation:  generation,
		catalog:     catalog,
		tokens:      tokens,
		verifyLimit: verifyLimit,
	}
}

// NewRouter builds the gin engine with middleware and all routes.
func (h *Handler) NewRouter(logger zerolog.Logger, allowedOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	prom := ginprometheus.NewPrometheus("photobooth")
	prom.Use(router)

	api := router.Group("/api")

	// Public surface.
	api.POST("/auth/register", h.Register)
	api.POST("/auth/login", h.Login)
	api.GET("/generators", h.ListGenerators)
	api.GET("/generators/:slug", h.GetGenerator)
	api.GET("/traits", h.SearchTraits)
	api.POST("/session-codes/verify", h.VerifySessionCode)

	// Generation accepts either an authenticated user or a session code.
	api.POST("/generate", middleware.OptionalAuth(h.tokens, h.accounts), h.Generate)

	// Authenticated surface.
	authed := api.Group("", middleware.RequireAuth(h.tokens, h.accounts))
	{
		authed.POST("/generators", h.CreateGenerator)
		authed.PUT("/generators/:slug", h.UpdateGenerator)
		authed.POST("/generators/:slug/questions", h.SaveGeneratorSchema)

		authed.POST("/images/upload", h.UploadImage)
		authed.DELETE("/images/:id", h.DeleteImage)
		authed.GET("/images/pairs", h.ListImagePairs)

		authed.POST("/sessions", h.CreateSession)
		authed.GET("/sessions", h.ListSessions)
		authed.DELETE("/sessions/:id", h.DeleteSession)
	}

	// Admin surface.
	admin := api.Group("/admin", middleware.RequireAuth(h.tokens, h.accounts), middleware.RequireAdmin())
	{
		admin.POST("/session-codes", h.CreateSessionCode)
		admin.GET("/session-codes", h.ListSessionCodes)
		admin.PUT("/session-codes/:code", h.UpdateSessionCode)
	}

	return router
}
