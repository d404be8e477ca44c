package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/application/usecase/auth"
	"github.com/pennywise/backend/internal/domain/entity"
	domainerror "github.com/pennywise/backend/internal/domain/error"
)

func newAuthEngine(t *testing.T) (*gin.Engine, *adapter.MockUserRepository, *adapter.MockTokenService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := adapter.NewMockUserRepository(ctrl)
	tokens := adapter.NewMockTokenService(ctrl)
	mw := NewAuthMiddleware(auth.NewAuthenticateUserUseCase(users, tokens))

	engine := gin.New()
	engine.GET("/me", mw.Authenticate(), func(c *gin.Context) {
		id, _ := GetUserIDFromContext(c)
		c.String(http.StatusOK, id.String())
	})
	return engine, users, tokens
}

func get(engine *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		engine, _, _ := newAuthEngine(t)

		rec := get(engine, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Access denied. No token provided.", body["message"])
		assert.Equal(t, string(domainerror.ErrCodeMissingToken), body["code"])
	})

	t.Run("expired token", func(t *testing.T) {
		engine, _, tokens := newAuthEngine(t)
		tokens.EXPECT().ValidateAccessToken(gomock.Any(), "old").Return(nil, domainerror.ErrExpiredToken)

		rec := get(engine, "Bearer old")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Token expired.", decodeError(t, rec)["message"])
	})

	t.Run("deactivated account", func(t *testing.T) {
		engine, users, tokens := newAuthEngine(t)
		user := entity.NewUser("jane_doe", "jane@example.com", "hash", "Jane", "Doe")
		user.IsActive = false
		tokens.EXPECT().ValidateAccessToken(gomock.Any(), "tok").Return(&adapter.TokenClaims{UserID: user.ID}, nil)
		users.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)

		rec := get(engine, "Bearer tok")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, string(domainerror.ErrCodeAccountDeactivated), decodeError(t, rec)["code"])
	})

	t.Run("valid token attaches the user id", func(t *testing.T) {
		engine, users, tokens := newAuthEngine(t)
		user := entity.NewUser("jane_doe", "jane@example.com", "hash", "Jane", "Doe")
		tokens.EXPECT().ValidateAccessToken(gomock.Any(), "tok").Return(&adapter.TokenClaims{UserID: user.ID}, nil)
		users.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)

		rec := get(engine, "Bearer tok")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, user.ID.String(), rec.Body.String())
	})

	t.Run("unknown user", func(t *testing.T) {
		engine, users, tokens := newAuthEngine(t)
		id := uuid.New()
		tokens.EXPECT().ValidateAccessToken(gomock.Any(), "tok").Return(&adapter.TokenClaims{UserID: id}, nil)
		users.EXPECT().FindByID(gomock.Any(), id).Return(nil, domainerror.ErrUserNotFound)

		rec := get(engine, "Bearer tok")

		assert.Equal(t, "Invalid token. User not found.", decodeError(t, rec)["message"])
	})
}
