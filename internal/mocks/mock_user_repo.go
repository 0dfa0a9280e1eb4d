package mocks

import (
	"context"

	"github.com/campventure/summer-camp-server/internal/domain"
)

type MockUserRepo struct {
	domain.UserRepository
	CreateFunc     func(ctx context.Context, user *domain.User) error
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
	GetAllFunc     func(ctx context.Context) ([]domain.User, error)
	DeleteFunc     func(ctx context.Context, id string) error
	UpdateRoleFunc func(ctx context.Context, id string, role domain.Role) error
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.CreateFunc(ctx, user)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.GetByEmailFunc(ctx, email)
}

func (m *MockUserRepo) GetAll(ctx context.Context) ([]domain.User, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockUserRepo) Delete(ctx context.Context, id string) error {
	return m.DeleteFunc(ctx, id)
}

func (m *MockUserRepo) UpdateRole(ctx context.Context, id string, role domain.Role) error {
	return m.UpdateRoleFunc(ctx, id, role)
}
