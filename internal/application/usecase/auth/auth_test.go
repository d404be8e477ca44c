package auth

import (
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/domain/entity"
)

type mocks struct {
	users    *adapter.MockUserRepository
	password *adapter.MockPasswordService
	tokens   *adapter.MockTokenService
	resets   *adapter.MockPasswordResetTokenService
	email    *adapter.MockEmailService
}

func newMocks(t *testing.T) *mocks {
	ctrl := gomock.NewController(t)
	return &mocks{
		users:    adapter.NewMockUserRepository(ctrl),
		password: adapter.NewMockPasswordService(ctrl),
		tokens:   adapter.NewMockTokenService(ctrl),
		resets:   adapter.NewMockPasswordResetTokenService(ctrl),
		email:    adapter.NewMockEmailService(ctrl),
	}
}

func testUser() *entity.User {
	u := entity.NewUser("jane_doe", "Jane@Example.com", "hash", "Jane", "Doe")
	return u
}

var testPair = &adapter.TokenPair{AccessToken: "access", RefreshToken: "refresh"}
