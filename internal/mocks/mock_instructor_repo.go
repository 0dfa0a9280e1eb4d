package mocks

import (
	"context"

	"github.com/campventure/summer-camp-server/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockInstructorRepo struct {
	mock.Mock
	domain.InstructorRepository
}

func (m *MockInstructorRepo) GetAll(ctx context.Context) ([]domain.Instructor, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Instructor), args.Error(1)
}
