package integration_test

import (
	"context"
	"testing"
	"time"

	"github.com/campventure/summer-camp-server/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type PaymentRepositorySuite struct {
	BaseSuite
}

func TestPaymentRepositorySuite(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	suite.Run(t, new(PaymentRepositorySuite))
}

func (s *PaymentRepositorySuite) createPending(email, transactionID string) domain.Payment {
	payment := domain.Payment{
		Email:         email,
		Name:          "Test Buyer",
		TotalPrice:    decimal.RequireFromString("99.99"),
		TransactionID: transactionID,
		CartItems:     []string{"class-1", "class-2"},
		Status:        domain.PaymentStatusPending,
	}

	err := s.paymentRepo.Create(context.Background(), &payment)
	s.Require().NoError(err)

	return payment
}

func (s *PaymentRepositorySuite) TestCreatePendingPayment() {
	ctx := context.Background()

	s.createPending("buyer@test.com", "cs_1")

	payments, err := s.paymentRepo.GetByEmail(ctx, "buyer@test.com")
	s.Require().NoError(err)
	s.Require().Len(payments, 1)

	s.Equal(domain.PaymentStatusPending, payments[0].Status)
	s.Nil(payments[0].PaymentDate)
	s.True(payments[0].TotalPrice.Equal(decimal.RequireFromString("99.99")))
	s.Equal([]string{"class-1", "class-2"}, payments[0].CartItems)
}

func (s *PaymentRepositorySuite) TestMarkCompleted() {
	ctx := context.Background()

	s.createPending("buyer@test.com", "cs_1")

	completedAt := time.Now()
	err := s.paymentRepo.MarkCompleted(ctx, "cs_1", completedAt)
	s.Require().NoError(err)

	payments, err := s.paymentRepo.GetByEmail(ctx, "buyer@test.com")
	s.Require().NoError(err)
	s.Require().Len(payments, 1)

	s.Equal(domain.PaymentStatusCompleted, payments[0].Status)
	s.Require().NotNil(payments[0].PaymentDate)
	s.WithinDuration(completedAt, *payments[0].PaymentDate, time.Second)
}

func (s *PaymentRepositorySuite) TestMarkCompletedIsIdempotent() {
	ctx := context.Background()

	s.createPending("buyer@test.com", "cs_1")

	firstAt := time.Now().Add(-time.Hour)
	err := s.paymentRepo.MarkCompleted(ctx, "cs_1", firstAt)
	s.Require().NoError(err)

	// a redelivered event carries a later timestamp; the recorded
	// payment date must not move
	err = s.paymentRepo.MarkCompleted(ctx, "cs_1", time.Now())
	s.Require().NoError(err)

	payments, err := s.paymentRepo.GetByEmail(ctx, "buyer@test.com")
	s.Require().NoError(err)
	s.Require().Len(payments, 1)

	s.Equal(domain.PaymentStatusCompleted, payments[0].Status)
	s.Require().NotNil(payments[0].PaymentDate)
	s.WithinDuration(firstAt, *payments[0].PaymentDate, time.Second)
}

func (s *PaymentRepositorySuite) TestMarkCompletedUnknownTransaction() {
	err := s.paymentRepo.MarkCompleted(context.Background(), "cs_ghost", time.Now())
	s.ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *PaymentRepositorySuite) TestHistoryIsNewestFirst() {
	ctx := context.Background()

	s.createPending("buyer@test.com", "cs_old")
	time.Sleep(10 * time.Millisecond)
	s.createPending("buyer@test.com", "cs_new")
	time.Sleep(10 * time.Millisecond)
	s.createPending("other@test.com", "cs_other")

	payments, err := s.paymentRepo.GetByEmail(ctx, "buyer@test.com")
	s.Require().NoError(err)
	s.Require().Len(payments, 2)
	s.Equal("cs_new", payments[0].TransactionID)
	s.Equal("cs_old", payments[1].TransactionID)

	all, err := s.paymentRepo.GetAll(ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Equal("cs_other", all[0].TransactionID)
}
