package app

import (
	"context"

	"github.com/neomorfeo/leaseflow/internal/domain"
)

// AuthService resolves external identifiers to identities. Login is a pure
// lookup: a matching record is treated as successful authentication, there
// are no credentials or sessions.
type AuthService struct {
	users domain.UserRepository
}

// NewAuthService creates a service backed by the given user repository.
func NewAuthService(users domain.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Login returns the identity registered under the given email, or
// domain.ErrUserNotFound.
func (s *AuthService) Login(ctx context.Context, email string) (domain.User, error) {
	return s.users.GetByEmail(ctx, email)
}
