package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/campventure/summer-camp-server/internal/api"
	"github.com/campventure/summer-camp-server/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/stripe/stripe-go/v82"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const webhookMaxBodyBytes = 65536

// CreateCheckoutSessionHandler creates a gateway checkout session and a
// pending payment record carrying the session id, then hands the buyer
// the redirect URL. The record and the session are created in the same
// request on purpose: the session id is the only key the webhook can
// use to find the record later.
func (app *Application) CreateCheckoutSessionHandler(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.CheckoutSessionRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	if !input.Price.IsPositive() {
		app.badRequestResponse(w, r, fmt.Errorf("price must be a positive number"))
		return
	}

	checkout := domain.Checkout{
		Email:     input.Email,
		Name:      input.Name,
		Price:     input.Price,
		CartItems: input.CartItems,
	}

	checkoutSession, err := app.paymentProvider.CreateCheckoutSession(checkout)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	payment := domain.Payment{
		Email:         input.Email,
		Name:          input.Name,
		TotalPrice:    input.Price,
		TransactionID: checkoutSession.ID,
		CartItems:     input.CartItems,
		Status:        domain.PaymentStatusPending,
	}

	err = app.paymentRepo.Create(r.Context(), &payment)
	if err != nil {
		// The gateway session now exists with no record to reconcile
		// against. No compensation is attempted; the session id is
		// logged so the orphan can be traced.
		logger.Error("pending payment insert failed after session creation",
			"session_id", checkoutSession.ID, "error", err)
		app.serverErrorResponse(w, r, err)
		return
	}

	app.checkoutSessionsCreated.Add(r.Context(), 1)

	logger.Info("checkout session created", "session_id", checkoutSession.ID, "email", input.Email)

	resp := api.CheckoutSessionResponse{
		Url: checkoutSession.URL,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// StripeWebhookHandler reconciles the gateway's asynchronous outcome
// notification with the pending payment record. The raw body must be
// verified as received; any re-serialization would break the signature.
func (app *Application) StripeWebhookHandler(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	r.Body = http.MaxBytesReader(w, r.Body, webhookMaxBodyBytes)
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("failed to read webhook body"))
		return
	}

	event, err := app.paymentProvider.VerifyEvent(payload, r.Header.Get("Stripe-Signature"))
	if err != nil {
		logger.Warn("webhook signature verification failed", "error", err)
		app.badRequestResponse(w, r, fmt.Errorf("webhook signature verification failed"))
		return
	}

	app.webhookEventsReceived.Add(r.Context(), 1,
		metric.WithAttributes(attribute.String("event_type", string(event.Type))))

	if event.Type != stripe.EventTypeCheckoutSessionCompleted {
		logger.Debug("ignoring webhook event", "event_type", string(event.Type))
		app.acknowledgeWebhook(w, r)
		return
	}

	var checkoutSession stripe.CheckoutSession
	err = json.Unmarshal(event.Data.Raw, &checkoutSession)
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("malformed checkout session payload"))
		return
	}

	err = app.paymentRepo.MarkCompleted(r.Context(), checkoutSession.ID, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			// Acknowledge anyway: a record that does not exist now will
			// never appear, and the gateway must stop redelivering.
			logger.Warn("no payment record for completed session", "session_id", checkoutSession.ID)
			app.acknowledgeWebhook(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	email := checkoutSession.Metadata["email"]
	if email == "" {
		logger.Warn("completed session carries no email metadata, cart left as is",
			"session_id", checkoutSession.ID)
		app.acknowledgeWebhook(w, r)
		return
	}

	removed, err := app.cartRepo.DeleteByEmail(r.Context(), email)
	if err != nil {
		// The payment is marked completed but the cart survives. The
		// gateway retries on this 500 and the idempotent update makes
		// the redelivery converge.
		app.serverErrorResponse(w, r, err)
		return
	}

	logger.Info("payment reconciled", "session_id", checkoutSession.ID, "cart_items_removed", removed)

	app.acknowledgeWebhook(w, r)
}

func (app *Application) acknowledgeWebhook(w http.ResponseWriter, r *http.Request) {
	err := app.writeJSON(w, http.StatusOK, api.WebhookResponse{Received: true}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// PaymentHistoryHandler lists a user's payments, newest first. Callers
// can only see their own history.
func (app *Application) PaymentHistoryHandler(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	claims := app.contextGetClaims(r)

	if email != claims.Email {
		app.forbiddenResponse(w, r)
		return
	}

	payments, err := app.paymentRepo.GetByEmail(r.Context(), email)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.writePayments(w, r, payments)
}

func (app *Application) GetAllPaymentsHandler(w http.ResponseWriter, r *http.Request) {
	payments, err := app.paymentRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.writePayments(w, r, payments)
}

func (app *Application) writePayments(w http.ResponseWriter, r *http.Request, payments []domain.Payment) {
	resp := make([]api.PaymentResponse, len(payments))
	for i, payment := range payments {
		resp[i] = api.PaymentResponse{
			Id:            payment.ID.Hex(),
			Email:         payment.Email,
			Name:          payment.Name,
			TotalPrice:    payment.TotalPrice,
			TransactionId: payment.TransactionID,
			CartItems:     payment.CartItems,
			Status:        string(payment.Status),
			PaymentDate:   payment.PaymentDate,
			CreatedAt:     payment.CreatedAt,
		}
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
