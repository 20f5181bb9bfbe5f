package mocks

import (
	"context"

	"github.com/docintel-labs/docintel-core/internal/core/domain"
)

// MockTokenVerifier is a mock implementation of TokenVerifier for testing.
// Tokens registered via AddToken verify; everything else is invalid.
type MockTokenVerifier struct {
	users map[string]*domain.UserInfo
}

// NewMockTokenVerifier creates a new MockTokenVerifier
func NewMockTokenVerifier() *MockTokenVerifier {
	return &MockTokenVerifier{
		users: make(map[string]*domain.UserInfo),
	}
}

// AddToken registers a token as valid for the given user
func (m *MockTokenVerifier) AddToken(token string, user *domain.UserInfo) {
	m.users[token] = user
}

func (m *MockTokenVerifier) Verify(ctx context.Context, token string) (*domain.UserInfo, error) {
	if user, ok := m.users[token]; ok {
		return user, nil
	}
	return nil, domain.ErrTokenInvalid
}
