package middleware

import (
	"log/slog"
	"net/http"
	"slices"

	"github.com/Hunterii1/asl-market-sub001/internal/domain/user"
	"github.com/Hunterii1/asl-market-sub001/internal/handler/httperr"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/cookie"
	"github.com/Hunterii1/asl-market-sub001/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// gin context keys; handler tests set them directly
const (
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
)

type AuthMiddleware struct {
	tokens usecase.TokenValidator
}

func NewAuthMiddleware(tokens usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// RequireAuth resolves the caller from the bearer header or the access cookie.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.AccessToken(c)
		if token == "" {
			httperr.AbortWithCode(c, http.StatusUnauthorized, nil, "Access token required", httperr.CodeUnauthorized, nil)
			return
		}

		principal, err := m.tokens.Authenticate(token)
		if err != nil {
			slog.Warn("access token rejected", slog.String("path", c.FullPath()), slog.String("error", err.Error()))
			httperr.AbortWithCode(c, http.StatusUnauthorized, err, "Invalid or expired token", httperr.CodeUnauthorized, nil)
			return
		}

		c.Set(ctxUserIDKey, principal.UserID)
		c.Set(ctxUserRoleKey, principal.Role)
		c.Next()
	}
}

// RequireRole must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(allowed ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		switch {
		case !ok:
			httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		case !slices.Contains(allowed, role):
			httperr.AbortWithCode(c, http.StatusForbidden, nil, "Insufficient permissions", httperr.CodeForbidden, nil)
		default:
			c.Next()
		}
	}
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	return contextValue[uuid.UUID](c, ctxUserIDKey)
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	return contextValue[user.Role](c, ctxUserRoleKey)
}

func contextValue[T any](c *gin.Context, key string) (T, bool) {
	v, ok := c.Get(key)
	if !ok {
		var zero T
		return zero, false
	}
	typed, ok := v.(T)
	return typed, ok
}
