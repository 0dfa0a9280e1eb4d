package app

import (
	"net/http"
	"time"

	"github.com/campventure/summer-camp-server/internal/api"
	appvalidator "github.com/campventure/summer-camp-server/internal/validator"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
)

const (
	ErrInternalServer = "The server encountered a problem and could not process your request"
	ErrNotFound       = "The requested resource not found"
	ErrUnauthorized   = "Unauthorized access"
	ErrForbidden      = "Forbidden access"
	ErrValidation     = "Validation failed for one or more fields"
)

func (app *Application) logError(r *http.Request, err error) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	app.contextGetLogger(r).Error(err.Error(), "method", method, "uri", uri)
}

// The errorResponse() method is a generic helper for sending JSON-formatted error
// messages to the client with a given status code.
func (app *Application) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	resp := api.ErrorResponse{
		Message:   message,
		RequestId: middleware.GetReqID(r.Context()),
		Timestamp: time.Now(),
	}

	err := app.writeJSON(w, status, resp, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(500)
	}
}

func (app *Application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)

	app.errorResponse(w, r, http.StatusInternalServerError, ErrInternalServer)
}

func (app *Application) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusNotFound, ErrNotFound)
}

func (app *Application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (app *Application) unauthorizedResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusUnauthorized, ErrUnauthorized)
}

func (app *Application) forbiddenResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusForbidden, ErrForbidden)
}

func (app *Application) failedValidationResponse(w http.ResponseWriter, r *http.Request, err error) {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		app.badRequestResponse(w, r, err)
		return
	}

	fieldErrors := make([]api.ValidationError, len(validationErrors))
	for i, fieldError := range validationErrors {
		fieldErrors[i] = api.ValidationError{
			Field: fieldError.Field(),
			Issue: appvalidator.ValidationMessage(fieldError),
		}
	}

	resp := api.ValidationErrorResponse{
		Message:          ErrValidation,
		RequestId:        middleware.GetReqID(r.Context()),
		Timestamp:        time.Now(),
		ValidationErrors: fieldErrors,
	}

	writeErr := app.writeJSON(w, http.StatusBadRequest, resp, nil)
	if writeErr != nil {
		app.logError(r, writeErr)
		w.WriteHeader(500)
	}
}
