package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Class struct {
	ID             primitive.ObjectID
	Name           string
	Image          string
	Instructor     string
	Email          string
	Price          decimal.Decimal
	AvailableSeats int
	CreatedAt      time.Time
}

// ClassFilters narrows the class listing. MaxPrice keeps classes priced
// strictly below the given amount; Email keeps classes owned by that
// instructor. Both are optional.
type ClassFilters struct {
	MaxPrice *decimal.Decimal
	Email    string
}

type ClassRepository interface {
	GetAll(ctx context.Context, filters ClassFilters) ([]Class, error)
	Create(ctx context.Context, class *Class) error
	Delete(ctx context.Context, id string) error
}
