package app

import (
	"errors"
	"net/http"

	"github.com/campventure/summer-camp-server/internal/api"
	"github.com/campventure/summer-camp-server/internal/domain"
	"github.com/go-chi/chi/v5"
)

// CreateUserHandler records a user on first sign-in. Re-submitting an
// existing email is not an error; the frontend calls this on every
// social login.
func (app *Application) CreateUserHandler(w http.ResponseWriter, r *http.Request) {
	var input api.CreateUserRequest

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

	user := domain.User{
		Email: input.Email,
		Name:  input.Name,
		Role:  domain.RoleMember,
	}

	err = app.userRepo.Create(r.Context(), &user)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserAlreadyExists):
			resp := api.CreateUserResponse{Message: "user already exists", InsertedId: nil}
			err = app.writeJSON(w, http.StatusOK, resp, nil)
			if err != nil {
				app.serverErrorResponse(w, r, err)
			}
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	insertedId := user.ID.Hex()
	resp := api.CreateUserResponse{InsertedId: &insertedId}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := app.userRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := make([]api.UserResponse, len(users))
	for i, user := range users {
		resp[i] = api.UserResponse{
			Id:        user.ID.Hex(),
			Email:     user.Email,
			Name:      user.Name,
			Role:      string(user.Role),
			CreatedAt: user.CreatedAt,
		}
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// CheckAdminHandler reports whether the caller is an admin. A caller
// may only ask about their own email; an unknown user is simply not an
// admin, never a 404.
func (app *Application) CheckAdminHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := app.resolveOwnRole(w, r)
	if !ok {
		return
	}

	resp := api.AdminCheckResponse{Admin: role == domain.RoleAdmin}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CheckInstructorHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := app.resolveOwnRole(w, r)
	if !ok {
		return
	}

	resp := api.InstructorCheckResponse{Instructor: role == domain.RoleInstructor}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// resolveOwnRole enforces the self-only rule on the {email} routes and
// looks up the caller's stored role. When ok is false a response has
// already been written. A missing user record resolves to member.
func (app *Application) resolveOwnRole(w http.ResponseWriter, r *http.Request) (domain.Role, bool) {
	email := chi.URLParam(r, "email")
	claims := app.contextGetClaims(r)

	if email != claims.Email {
		app.forbiddenResponse(w, r)
		return domain.RoleMember, false
	}

	user, err := app.userRepo.GetByEmail(r.Context(), email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			return domain.RoleMember, true
		default:
			app.serverErrorResponse(w, r, err)
			return domain.RoleMember, false
		}
	}

	return user.Role, true
}

func (app *Application) DeleteUserHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := app.userRepo.Delete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidID):
			app.badRequestResponse(w, r, err)
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, api.DeleteResponse{DeletedCount: 1}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) PromoteToAdminHandler(w http.ResponseWriter, r *http.Request) {
	app.promoteUser(w, r, domain.RoleAdmin)
}

func (app *Application) PromoteToInstructorHandler(w http.ResponseWriter, r *http.Request) {
	app.promoteUser(w, r, domain.RoleInstructor)
}

func (app *Application) promoteUser(w http.ResponseWriter, r *http.Request, role domain.Role) {
	id := chi.URLParam(r, "id")

	err := app.userRepo.UpdateRole(r.Context(), id, role)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidID):
			app.badRequestResponse(w, r, err)
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.contextGetLogger(r).Info("user role updated", "user_id", id, "role", string(role))

	err = app.writeJSON(w, http.StatusOK, api.UpdateResponse{ModifiedCount: 1}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
