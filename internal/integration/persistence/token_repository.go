package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domainerror "github.com/pennywise/backend/internal/domain/error"
	"github.com/pennywise/backend/internal/integration/persistence/model"
)

// TokenRepository stores issued refresh tokens and single-use password reset tokens.
type TokenRepository interface {
	// SaveRefreshToken records a newly issued refresh token.
	SaveRefreshToken(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error

	// IsRefreshTokenActive reports whether the token was issued, not revoked and not expired.
	IsRefreshTokenActive(ctx context.Context, token string) (bool, error)

	// RevokeRefreshToken revokes a single refresh token.
	RevokeRefreshToken(ctx context.Context, token string) error

	// RevokeUserRefreshTokens revokes every refresh token of a user.
	RevokeUserRefreshTokens(ctx context.Context, userID uuid.UUID) error

	// SavePasswordResetToken stores a reset token. Older unused tokens of the user are retired.
	SavePasswordResetToken(ctx context.Context, token string, userID uuid.UUID, email string, expiresAt time.Time) error

	// FindPasswordResetToken returns an unused, unexpired reset token.
	FindPasswordResetToken(ctx context.Context, token string) (*model.PasswordResetTokenModel, error)

	// UsePasswordResetToken marks the token used. It fails with
	// ErrInvalidResetToken when the token was already consumed.
	UsePasswordResetToken(ctx context.Context, token string) error
}

type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository creates a new token repository instance.
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{
		db: db,
	}
}

func (r *tokenRepository) SaveRefreshToken(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error {
	return r.db.WithContext(ctx).Create(&model.RefreshTokenModel{
		ID:        uuid.New(),
		Token:     token,
		UserID:    userID,
		ExpiresAt: expiresAt.UTC(),
		CreatedAt: time.Now().UTC(),
	}).Error
}

func (r *tokenRepository) IsRefreshTokenActive(ctx context.Context, token string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.RefreshTokenModel{}).
		Where("token = ? AND invalidated = ? AND expires_at > ?", token, false, time.Now().UTC()).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

func (r *tokenRepository) RevokeRefreshToken(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).
		Model(&model.RefreshTokenModel{}).
		Where("token = ?", token).
		Update("invalidated", true).Error
}

func (r *tokenRepository) RevokeUserRefreshTokens(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&model.RefreshTokenModel{}).
		Where("user_id = ? AND invalidated = ?", userID, false).
		Update("invalidated", true).Error
}

func (r *tokenRepository) SavePasswordResetToken(ctx context.Context, token string, userID uuid.UUID, email string, expiresAt time.Time) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		retired := tx.Model(&model.PasswordResetTokenModel{}).
			Where("user_id = ? AND used = ?", userID, false).
			Updates(map[string]any{"used": true, "used_at": now})
		if retired.Error != nil {
			return retired.Error
		}

		return tx.Create(&model.PasswordResetTokenModel{
			ID:        uuid.New(),
			Token:     token,
			UserID:    userID,
			Email:     email,
			ExpiresAt: expiresAt.UTC(),
			CreatedAt: now,
		}).Error
	})
}

func (r *tokenRepository) FindPasswordResetToken(ctx context.Context, token string) (*model.PasswordResetTokenModel, error) {
	var resetToken model.PasswordResetTokenModel
	result := r.db.WithContext(ctx).
		Where("token = ? AND used = ? AND expires_at > ?", token, false, time.Now().UTC()).
		First(&resetToken)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrInvalidResetToken
		}
		return nil, result.Error
	}
	return &resetToken, nil
}

func (r *tokenRepository) UsePasswordResetToken(ctx context.Context, token string) error {
	now := time.Now().UTC()
	result := r.db.WithContext(ctx).
		Model(&model.PasswordResetTokenModel{}).
		Where("token = ? AND used = ?", token, false).
		Updates(map[string]any{"used": true, "used_at": now})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrInvalidResetToken
	}
	return nil
}
