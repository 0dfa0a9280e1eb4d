package domain

import "github.com/stripe/stripe-go/v82"

type PaymentProvider interface {
	CreateCheckoutSession(checkout Checkout) (*stripe.CheckoutSession, error)
	// VerifyEvent authenticates a raw webhook payload against its
	// signature header. The payload must be the unmodified request body.
	VerifyEvent(payload []byte, sigHeader string) (stripe.Event, error)
}
