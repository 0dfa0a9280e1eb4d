package mocks

import (
	"context"

	"github.com/campventure/summer-camp-server/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockCartRepo struct {
	mock.Mock
	domain.CartRepository
}

func (m *MockCartRepo) GetByEmail(ctx context.Context, email string) ([]domain.CartItem, error) {
	args := m.Called(ctx, email)
	return args.Get(0).([]domain.CartItem), args.Error(1)
}

func (m *MockCartRepo) Create(ctx context.Context, item *domain.CartItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockCartRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCartRepo) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(int64), args.Error(1)
}
