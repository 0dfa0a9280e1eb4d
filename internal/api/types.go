// Package api holds the request and response types of the HTTP
// surface. Field names follow the JSON contract the frontend consumes.
package api

import (
	"time"

	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	RequestId        string            `json:"requestId,omitempty"`
	Timestamp        time.Time         `json:"timestamp"`
	ValidationErrors []ValidationError `json:"validationErrors"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

type TokenRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type CreateUserRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required"`
}

type CreateUserResponse struct {
	Message    string  `json:"message,omitempty"`
	InsertedId *string `json:"insertedId"`
}

type UserResponse struct {
	Id        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type AdminCheckResponse struct {
	Admin bool `json:"admin"`
}

type InstructorCheckResponse struct {
	Instructor bool `json:"instructor"`
}

type CreateClassRequest struct {
	Name           string          `json:"name" validate:"required"`
	Image          string          `json:"image"`
	Instructor     string          `json:"instructor" validate:"required"`
	Email          string          `json:"email" validate:"required,email"`
	Price          decimal.Decimal `json:"price"`
	AvailableSeats int             `json:"availableSeats" validate:"gte=0"`
}

type ClassResponse struct {
	Id             string          `json:"id"`
	Name           string          `json:"name"`
	Image          string          `json:"image,omitempty"`
	Instructor     string          `json:"instructor"`
	Email          string          `json:"email"`
	Price          decimal.Decimal `json:"price"`
	AvailableSeats int             `json:"availableSeats"`
	CreatedAt      time.Time       `json:"createdAt"`
}

type InstructorResponse struct {
	Id         string `json:"id"`
	Name       string `json:"name"`
	Image      string `json:"image,omitempty"`
	Email      string `json:"email"`
	ClassCount int    `json:"classCount"`
}

type CreateCartItemRequest struct {
	Email     string          `json:"email" validate:"required,email"`
	ClassId   string          `json:"classId" validate:"required"`
	ClassName string          `json:"className"`
	Price     decimal.Decimal `json:"price"`
}

type CartItemResponse struct {
	Id        string          `json:"id"`
	Email     string          `json:"email"`
	ClassId   string          `json:"classId"`
	ClassName string          `json:"className,omitempty"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"createdAt"`
}

type CheckoutSessionRequest struct {
	Email     string          `json:"email" validate:"required,email"`
	Name      string          `json:"name" validate:"required"`
	Price     decimal.Decimal `json:"price"`
	CartItems []string        `json:"cartItems" validate:"required,min=1"`
}

type CheckoutSessionResponse struct {
	Url string `json:"url"`
}

type WebhookResponse struct {
	Received bool `json:"received"`
}

type PaymentResponse struct {
	Id            string          `json:"id"`
	Email         string          `json:"email"`
	Name          string          `json:"name"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
	TransactionId string          `json:"transactionId"`
	CartItems     []string        `json:"cartItems"`
	Status        string          `json:"status"`
	PaymentDate   *time.Time      `json:"paymentDate"`
	CreatedAt     time.Time       `json:"createdAt"`
}

type DeleteResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}

type UpdateResponse struct {
	ModifiedCount int64 `json:"modifiedCount"`
}
