package payment

import (
	"encoding/json"

	"github.com/campventure/summer-camp-server/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/webhook"
)

const productName = "Summer Camp Registration"

type StripePaymentProvider struct {
	successUrl    string
	cancelUrl     string
	currency      string
	webhookSecret string
}

func NewStripePaymentProvider(successUrl, cancelUrl, currency, webhookSecret string) *StripePaymentProvider {
	return &StripePaymentProvider{
		successUrl:    successUrl,
		cancelUrl:     cancelUrl,
		currency:      currency,
		webhookSecret: webhookSecret,
	}
}

func (s *StripePaymentProvider) CreateCheckoutSession(checkout domain.Checkout) (*stripe.CheckoutSession, error) {
	cartItems, err := json.Marshal(checkout.CartItems)
	if err != nil {
		return nil, err
	}

	lineItem := &stripe.CheckoutSessionLineItemParams{
		PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
			Currency:   stripe.String(s.currency),
			UnitAmount: stripe.Int64(AmountInCents(checkout.Price)),
			ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
				Name: stripe.String(productName),
			},
		},
		Quantity: stripe.Int64(1),
	}

	params := &stripe.CheckoutSessionParams{
		LineItems:  []*stripe.CheckoutSessionLineItemParams{lineItem},
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(s.successUrl),
		CancelURL:  stripe.String(s.cancelUrl),
		// The webhook only sees the session, so the session has to carry
		// everything reconciliation needs.
		Metadata: map[string]string{
			"email":      checkout.Email,
			"name":       checkout.Name,
			"cart_items": string(cartItems),
		},
		CustomerEmail: &checkout.Email,
	}

	return session.New(params)
}

func (s *StripePaymentProvider) VerifyEvent(payload []byte, sigHeader string) (stripe.Event, error) {
	return webhook.ConstructEvent(payload, sigHeader, s.webhookSecret)
}

// AmountInCents converts a price to the gateway's minor-unit integer
// representation. Rounding is half-up, so 19.995 charges 2000 cents.
func AmountInCents(price decimal.Decimal) int64 {
	return price.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
