package mocks

import (
	"github.com/campventure/summer-camp-server/internal/domain"
	"github.com/stretchr/testify/mock"
	"github.com/stripe/stripe-go/v82"
)

type MockPaymentProvider struct {
	mock.Mock
	domain.PaymentProvider
}

func (m *MockPaymentProvider) CreateCheckoutSession(checkout domain.Checkout) (*stripe.CheckoutSession, error) {
	args := m.Called(checkout)
	return args.Get(0).(*stripe.CheckoutSession), args.Error(1)
}

func (m *MockPaymentProvider) VerifyEvent(payload []byte, sigHeader string) (stripe.Event, error) {
	args := m.Called(payload, sigHeader)
	return args.Get(0).(stripe.Event), args.Error(1)
}
