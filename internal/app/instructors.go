package app

import (
	"net/http"

	"github.com/campventure/summer-camp-server/internal/api"
)

func (app *Application) GetInstructorsHandler(w http.ResponseWriter, r *http.Request) {
	instructors, err := app.instructorRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := make([]api.InstructorResponse, len(instructors))
	for i, instructor := range instructors {
		resp[i] = api.InstructorResponse{
			Id:         instructor.ID.Hex(),
			Name:       instructor.Name,
			Image:      instructor.Image,
			Email:      instructor.Email,
			ClassCount: instructor.ClassCount,
		}
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
