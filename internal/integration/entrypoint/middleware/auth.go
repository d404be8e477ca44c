// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pennywise/backend/internal/application/usecase/auth"
	domainerror "github.com/pennywise/backend/internal/domain/error"
	"github.com/pennywise/backend/internal/integration/entrypoint/dto"
)

// ContextKey is a type for context keys.
type ContextKey string

// UserIDKey is the context key for the authenticated user's ID.
const UserIDKey ContextKey = "user_id"

// AuthMiddleware resolves the bearer token to an active user.
type AuthMiddleware struct {
	authenticateUseCase *auth.AuthenticateUserUseCase
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(authenticateUseCase *auth.AuthenticateUserUseCase) *AuthMiddleware {
	return &AuthMiddleware{
		authenticateUseCase: authenticateUseCase,
	}
}

// Authenticate returns a Gin middleware handler that enforces JWT authentication.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		output, err := m.authenticateUseCase.Execute(c.Request.Context(), auth.AuthenticateUserInput{
			Token: bearerToken(c.GetHeader("Authorization")),
		})
		if err != nil {
			var authErr *domainerror.AuthError
			if errors.As(err, &authErr) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(authErr.Message, string(authErr.Code)))
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse("An internal error occurred", ""))
			return
		}

		c.Set(string(UserIDKey), output.User.ID)

		c.Next()
	}
}

// bearerToken returns the token of a "Bearer <token>" header, or "" when absent.
// Any other scheme is passed through and rejected as an invalid token.
func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return header
}

// GetUserIDFromContext extracts the user ID from the Gin context.
func GetUserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(string(UserIDKey))
	if !exists {
		return uuid.Nil, false
	}
	id, ok := userID.(uuid.UUID)
	return id, ok
}
