package mocks

import (
	"context"
	"time"

	"github.com/campventure/summer-camp-server/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockPaymentRepo struct {
	mock.Mock
	domain.PaymentRepository
}

func (m *MockPaymentRepo) Create(ctx context.Context, payment *domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepo) MarkCompleted(ctx context.Context, transactionID string, paymentDate time.Time) error {
	args := m.Called(ctx, transactionID, paymentDate)
	return args.Error(0)
}

func (m *MockPaymentRepo) GetByEmail(ctx context.Context, email string) ([]domain.Payment, error) {
	args := m.Called(ctx, email)
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepo) GetAll(ctx context.Context) ([]domain.Payment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Payment), args.Error(1)
}
