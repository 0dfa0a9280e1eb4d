package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
)

// Payment is created in pending state in the same request that creates
// the gateway checkout session. TransactionID holds the gateway session
// id and is the only correlation between this record and the webhook
// that later completes it. Records are never deleted.
type Payment struct {
	ID            primitive.ObjectID
	Email         string
	Name          string
	TotalPrice    decimal.Decimal
	TransactionID string
	CartItems     []string
	Status        PaymentStatus
	PaymentDate   *time.Time
	CreatedAt     time.Time
}

// Checkout is the validated input of a checkout-session request.
type Checkout struct {
	Email     string
	Name      string
	Price     decimal.Decimal
	CartItems []string
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *Payment) error
	// MarkCompleted transitions the payment matching transactionID to
	// completed. The payment date is set on the first transition only,
	// so redelivered webhooks do not move it. Returns ErrRecordNotFound
	// when no payment matches.
	MarkCompleted(ctx context.Context, transactionID string, paymentDate time.Time) error
	GetByEmail(ctx context.Context, email string) ([]Payment, error)
	GetAll(ctx context.Context) ([]Payment, error)
}
