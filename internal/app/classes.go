package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/campventure/summer-camp-server/internal/api"
	"github.com/campventure/summer-camp-server/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

func (app *Application) GetClassesHandler(w http.ResponseWriter, r *http.Request) {
	filters := domain.ClassFilters{
		Email: r.URL.Query().Get("email"),
	}

	if maxPrice := r.URL.Query().Get("maxPrice"); maxPrice != "" {
		price, err := decimal.NewFromString(maxPrice)
		if err != nil {
			app.badRequestResponse(w, r, fmt.Errorf("maxPrice must be a number"))
			return
		}

		filters.MaxPrice = &price
	}

	classes, err := app.classRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := make([]api.ClassResponse, len(classes))
	for i, class := range classes {
		resp[i] = toClassResponse(class)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateClassHandler(w http.ResponseWriter, r *http.Request) {
	var input api.CreateClassRequest

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

	if input.Price.IsNegative() {
		app.badRequestResponse(w, r, fmt.Errorf("price must not be negative"))
		return
	}

	class := domain.Class{
		Name:           input.Name,
		Image:          input.Image,
		Instructor:     input.Instructor,
		Email:          input.Email,
		Price:          input.Price,
		AvailableSeats: input.AvailableSeats,
	}

	err = app.classRepo.Create(r.Context(), &class)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toClassResponse(class), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteClassHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := app.classRepo.Delete(r.Context(), id)
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

func toClassResponse(class domain.Class) api.ClassResponse {
	return api.ClassResponse{
		Id:             class.ID.Hex(),
		Name:           class.Name,
		Image:          class.Image,
		Instructor:     class.Instructor,
		Email:          class.Email,
		Price:          class.Price,
		AvailableSeats: class.AvailableSeats,
		CreatedAt:      class.CreatedAt,
	}
}
