package app

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/campventure/summer-camp-server/internal/api"
	"github.com/campventure/summer-camp-server/internal/mocks"
	"github.com/campventure/summer-camp-server/internal/token"
	"github.com/campventure/summer-camp-server/internal/validator"
)

func newTestApplication(opts ...func(*Application)) *Application {
	app := &Application{
		config: Config{
			Env:            "test",
			TrustedOrigins: []string{"http://localhost:5173"},
		},
		validator:  validator.NewValidator(),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		tokenMaker: token.NewMaker("test-secret", time.Hour),
		userRepo:   &mocks.MockUserRepo{},
	}

	app.initMetrics()

	for _, opt := range opts {
		opt(app)
	}

	return app
}

func executeRequest(t *testing.T, method, url string, body any) (*httptest.ResponseRecorder, *http.Request) {
	t.Helper()

	var reader io.Reader

	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(jsonData)
	}

	r := httptest.NewRequest(method, url, reader)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	return w, r
}

func bearerToken(t *testing.T, app *Application, email, name string) string {
	t.Helper()

	tokenString, err := app.tokenMaker.Sign(email, name)
	if err != nil {
		t.Fatal(err)
	}

	return "Bearer " + tokenString
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, wantErrMessage string) {
	t.Helper()

	if wantStatus >= 200 && wantStatus < 300 || wantErrMessage == "" {
		return
	}

	var errorResp api.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&errorResp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}

	if errorResp.Message != wantErrMessage {
		t.Errorf("Error message = %v, want %v", errorResp.Message, wantErrMessage)
	}
}

func checkValidationError(t *testing.T, w *httptest.ResponseRecorder, wantField, wantIssue string) {
	t.Helper()

	var validationResp api.ValidationErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&validationResp); err != nil {
		t.Fatalf("Failed to decode validation error response: %v", err)
	}

	for _, vErr := range validationResp.ValidationErrors {
		if vErr.Field == wantField && vErr.Issue == wantIssue {
			return
		}
	}

	t.Errorf("Expected validation error %q on field %q not found in response", wantIssue, wantField)
}
