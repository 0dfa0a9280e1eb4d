package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/campventure/summer-camp-server/internal/api"
	"github.com/campventure/summer-camp-server/internal/domain"
	"github.com/go-chi/chi/v5"
)

func (app *Application) GetCartItemsHandler(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		app.badRequestResponse(w, r, fmt.Errorf("email query parameter is required"))
		return
	}

	items, err := app.cartRepo.GetByEmail(r.Context(), email)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := make([]api.CartItemResponse, len(items))
	for i, item := range items {
		resp[i] = toCartItemResponse(item)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) AddCartItemHandler(w http.ResponseWriter, r *http.Request) {
	var input api.CreateCartItemRequest

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

	item := domain.CartItem{
		Email:     input.Email,
		ClassID:   input.ClassId,
		ClassName: input.ClassName,
		Price:     input.Price,
	}

	err = app.cartRepo.Create(r.Context(), &item)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toCartItemResponse(item), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteCartItemHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := app.cartRepo.Delete(r.Context(), id)
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

func toCartItemResponse(item domain.CartItem) api.CartItemResponse {
	return api.CartItemResponse{
		Id:        item.ID.Hex(),
		Email:     item.Email,
		ClassId:   item.ClassID,
		ClassName: item.ClassName,
		Price:     item.Price,
		CreatedAt: item.CreatedAt,
	}
}
