package mocks

import (
	"context"

	"github.com/campventure/summer-camp-server/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockClassRepo struct {
	mock.Mock
	domain.ClassRepository
}

func (m *MockClassRepo) GetAll(ctx context.Context, filters domain.ClassFilters) ([]domain.Class, error) {
	args := m.Called(ctx, filters)
	return args.Get(0).([]domain.Class), args.Error(1)
}

func (m *MockClassRepo) Create(ctx context.Context, class *domain.Class) error {
	args := m.Called(ctx, class)
	return args.Error(0)
}

func (m *MockClassRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
