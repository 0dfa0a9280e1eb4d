package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/campventure/summer-camp-server/internal/domain"
	"github.com/go-chi/chi/v5/middleware"
)

func (app *Application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")

				app.serverErrorResponse(w, r, fmt.Errorf("%s", err))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

func (app *Application) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := app.logger.With("request_id", middleware.GetReqID(r.Context()))

		ctx := context.WithValue(r.Context(), loggerContextKey, logger)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireAuthentication verifies the bearer token and stores its claims
// in the request context. Token validity is a precondition of every
// role check; a bad token is always a 401, never a 403.
func (app *Application) requireAuthentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorizationHeader := r.Header.Get("Authorization")
		if authorizationHeader == "" {
			app.unauthorizedResponse(w, r)
			return
		}

		headerParts := strings.Split(authorizationHeader, " ")
		if len(headerParts) != 2 || headerParts[0] != "Bearer" {
			app.unauthorizedResponse(w, r)
			return
		}

		claims, err := app.tokenMaker.Verify(headerParts[1])
		if err != nil {
			app.unauthorizedResponse(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), claimsContextKey, claims)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireRole resolves the caller's role from the user collection on
// every request and denies unless it is in the allowed set. A caller
// without a user record is denied, not treated as an error.
func (app *Application) requireRole(roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := app.contextGetClaims(r)

			user, err := app.userRepo.GetByEmail(r.Context(), claims.Email)
			if err != nil {
				switch {
				case errors.Is(err, domain.ErrRecordNotFound):
					app.forbiddenResponse(w, r)
				default:
					app.serverErrorResponse(w, r, err)
				}

				return
			}

			if !user.HasAnyRole(roles...) {
				app.forbiddenResponse(w, r)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
