// Package repository implements the domain repositories on MongoDB.
// Money amounts are stored as Decimal128 so they round-trip without
// floating point drift.
package repository

import (
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	usersCollection       = "users"
	classesCollection     = "classes"
	instructorsCollection = "instructors"
	cartCollection        = "cart"
	paymentsCollection    = "payments"
)

func toDecimal128(d decimal.Decimal) primitive.Decimal128 {
	d128, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		return primitive.Decimal128{}
	}

	return d128
}

func fromDecimal128(d primitive.Decimal128) decimal.Decimal {
	dec, err := decimal.NewFromString(d.String())
	if err != nil {
		return decimal.Zero
	}

	return dec
}
