package adapters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	domainerror "github.com/pennywise/backend/internal/domain/error"
)

func TestPasswordService(t *testing.T) {
	service := &passwordService{cost: bcrypt.MinCost}

	hash, err := service.HashPassword("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)

	assert.NoError(t, service.VerifyPassword(hash, "correct horse"))
	assert.Error(t, service.VerifyPassword(hash, "wrong horse"))

	assert.ErrorIs(t, service.ValidatePasswordStrength("short"), domainerror.ErrWeakPassword)
	assert.NoError(t, service.ValidatePasswordStrength("12345678"))
}
