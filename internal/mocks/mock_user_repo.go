package mocks

import (
	"context"

	"github.com/abscinema/booking-api/internal/domain"
)

type MockUserRepo struct {
	domain.UserRepository
	GetByCredentialsFunc func(ctx context.Context, username, password string) (*domain.User, error)
}

func (m *MockUserRepo) GetByCredentials(ctx context.Context, username, password string) (*domain.User, error) {
	return m.GetByCredentialsFunc(ctx, username, password)
}
