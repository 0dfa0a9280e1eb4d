package payment

import (
	"encoding/json"

	"github.com/campventure/summer-camp-server/internal/domain"
	"github.com/stripe/stripe-go/v82"
)

// MockPaymentProvider stands in for Stripe in environments without
// gateway credentials. Sessions get a fixed id and every payload
// verifies as a bare event.
type MockPaymentProvider struct {
}

func NewMockPaymentProvider() *MockPaymentProvider {
	return &MockPaymentProvider{}
}

func (m *MockPaymentProvider) CreateCheckoutSession(checkout domain.Checkout) (*stripe.CheckoutSession, error) {
	return &stripe.CheckoutSession{
		ID:  "cs_test_mock",
		URL: "https://checkout.example.com/cs_test_mock",
	}, nil
}

func (m *MockPaymentProvider) VerifyEvent(payload []byte, sigHeader string) (stripe.Event, error) {
	var event stripe.Event
	err := json.Unmarshal(payload, &event)

	return event, err
}
