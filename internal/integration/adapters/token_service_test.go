package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	domainerror "github.com/pennywise/backend/internal/domain/error"
	"github.com/pennywise/backend/internal/integration/persistence"
	"github.com/pennywise/backend/internal/integration/persistence/model"
)

const testSecret = "test-secret"

func newTokenRepository(t *testing.T) persistence.TokenRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.RefreshTokenModel{}, &model.PasswordResetTokenModel{}))
	return persistence.NewTokenRepository(db)
}

func newTestTokenService(t *testing.T, accessTTL time.Duration) *tokenService {
	t.Helper()

	return NewTokenService(TokenConfig{
		Secret:          testSecret,
		AccessTokenTTL:  accessTTL,
		RefreshTokenTTL: time.Hour,
	}, newTokenRepository(t)).(*tokenService)
}

func TestTokenService_AccessToken(t *testing.T) {
	ctx := context.Background()
	service := newTestTokenService(t, time.Minute)
	userID := uuid.New()

	pair, err := service.GenerateTokenPair(ctx, userID, "ana@example.com")
	require.NoError(t, err)

	claims, err := service.ValidateAccessToken(ctx, pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)

	_, err = service.ValidateAccessToken(ctx, pair.RefreshToken)
	assert.ErrorIs(t, err, domainerror.ErrInvalidToken, "refresh token is not an access token")

	_, err = service.ValidateAccessToken(ctx, "not-a-jwt")
	assert.ErrorIs(t, err, domainerror.ErrInvalidToken)
}

func TestTokenService_ExpiredAndForeignTokens(t *testing.T) {
	ctx := context.Background()
	service := newTestTokenService(t, time.Minute)
	userID := uuid.New()

	expired := CustomClaims{
		UserID:    userID.String(),
		TokenType: tokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expired).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = service.ValidateAccessToken(ctx, signed)
	assert.ErrorIs(t, err, domainerror.ErrExpiredToken)

	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(time.Minute))
	foreign, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expired).SignedString([]byte("another-secret"))
	require.NoError(t, err)

	_, err = service.ValidateAccessToken(ctx, foreign)
	assert.ErrorIs(t, err, domainerror.ErrInvalidToken)
}

func TestTokenService_RefreshTokenRevocation(t *testing.T) {
	ctx := context.Background()
	service := newTestTokenService(t, time.Minute)
	userID := uuid.New()

	first, err := service.GenerateTokenPair(ctx, userID, "ana@example.com")
	require.NoError(t, err)
	second, err := service.GenerateTokenPair(ctx, userID, "ana@example.com")
	require.NoError(t, err)

	_, err = service.ValidateRefreshToken(ctx, first.RefreshToken)
	require.NoError(t, err)

	require.NoError(t, service.InvalidateRefreshToken(ctx, first.RefreshToken))
	_, err = service.ValidateRefreshToken(ctx, first.RefreshToken)
	assert.ErrorIs(t, err, domainerror.ErrInvalidToken)

	require.NoError(t, service.InvalidateAllUserTokens(ctx, userID))
	_, err = service.ValidateRefreshToken(ctx, second.RefreshToken)
	assert.ErrorIs(t, err, domainerror.ErrInvalidToken)
}

func TestPasswordResetTokenService(t *testing.T) {
	ctx := context.Background()
	service := NewPasswordResetTokenService(newTokenRepository(t))
	userID := uuid.New()

	issued, err := service.GenerateResetToken(ctx, userID, "ana@example.com")
	require.NoError(t, err)
	assert.Len(t, issued.Token, 64)

	found, err := service.ValidateResetToken(ctx, issued.Token)
	require.NoError(t, err)
	assert.Equal(t, userID, found.UserID)

	require.NoError(t, service.InvalidateResetToken(ctx, issued.Token))
	_, err = service.ValidateResetToken(ctx, issued.Token)
	assert.ErrorIs(t, err, domainerror.ErrInvalidResetToken)
}
