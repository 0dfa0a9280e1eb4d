package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem is a class a user put in their cart, keyed by the owner's
// email. Items are removed one by one from the cart page, or in bulk
// when a payment for the owner completes.
type CartItem struct {
	ID        primitive.ObjectID
	Email     string
	ClassID   string
	ClassName string
	Price     decimal.Decimal
	CreatedAt time.Time
}

type CartRepository interface {
	GetByEmail(ctx context.Context, email string) ([]CartItem, error)
	Create(ctx context.Context, item *CartItem) error
	Delete(ctx context.Context, id string) error
	DeleteByEmail(ctx context.Context, email string) (int64, error)
}
