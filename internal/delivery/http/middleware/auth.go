package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Arcadesys/imagengen-ig-sub001/internal/auth"
	"github.com/Arcadesys/imagengen-ig-sub001/internal/model"
)

const userContextKey = "currentUser"

// UserLoader resolves verified token claims to a full user record.
type UserLoader interface {
	GetUser(ctx context.Context, claims *auth.Claims) (*model.User, error)
}

// RequireAuth verifies the Bearer token and loads the user into the gin
// context. Requests without a valid token are rejected.
func RequireAuth(tokens *auth.Service, users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := authenticate(c, tokens, users)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": model.ErrUnauthorized.Error()})
			return
		}
		c.Set(userContextKey, user)
		c.Next()
	}
}

// OptionalAuth loads the user when a valid token is present but lets
// anonymous requests through, e.g. kiosk generation gated by session code.
func OptionalAuth(tokens *auth.Service, users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, ok := authenticate(c, tokens, users); ok {
			c.Set(userContextKey, user)
		}
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentUser(c).IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": model.ErrForbidden.Error()})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user, or nil for anonymous requests.
func CurrentUser(c *gin.Context) *model.User {
	if v, ok := c.Get(userContextKey); ok {
		if user, ok := v.(*model.User); ok {
			return user
		}
	}
	return nil
}

func authenticate(c *gin.Context, tokens *auth.Service, users UserLoader) (*model.User, bool) {
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, false
	}

	claims, err := tokens.VerifyToken(parts[1])
	if err != nil {
		log.Warn().Err(err).Str("path", c.Request.URL.Path).Msg("Token verification failed")
		return nil, false
	}

	user, err := users.GetUser(c.Request.Context(), claims)
	if err != nil {
		log.Warn().Err(err).Str("user_id", claims.UserID.String()).Msg("Token subject no longer exists")
		return nil, false
	}
	return user, true
}
