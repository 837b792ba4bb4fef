package app

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/abscinema/booking-api/api"
	appvalidator "github.com/abscinema/booking-api/internal/validator"
	"github.com/go-playground/validator/v10"
)

const (
	ErrInternalServer     = "The server encountered a problem and could not process your request"
	ErrNotLoggedIn        = "Not logged in"
	ErrNotAuthorized      = "Not authorized"
	ErrInvalidCredentials = "Invalid credentials"
	ErrInvalidShowKey     = "Invalid cinema, movie or time"
	ErrNotEnoughSeats     = "Not enough seats available"
	ErrInvalidFormat      = "Invalid request format"
)

func (app *Application) logError(r *http.Request, err error) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	app.logger.Error(err.Error(), "method", method, "uri", uri)
}

// The errorResponse() method is a generic helper for sending the flattened
// {success:false, message} payload to the client with a given status code.
func (app *Application) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	resp := api.FailureResponse{
		Success: false,
		Message: message,
	}

	err := app.writeJSON(w, status, resp, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(500)
	}
}

// failResponse reports a business failure. Note the 200 status: the original
// API flattens every failure into the payload instead of the HTTP status, and
// clients depend on that.
func (app *Application) failResponse(w http.ResponseWriter, r *http.Request, message string) {
	app.errorResponse(w, r, http.StatusOK, message)
}

// storeErrorResponse surfaces a store error with its message verbatim, as the
// original does on the login path.
func (app *Application) storeErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)
	app.failResponse(w, r, err.Error())
}

func (app *Application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)
	app.errorResponse(w, r, http.StatusInternalServerError, ErrInternalServer)
}

func (app *Application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (app *Application) failedValidationResponse(w http.ResponseWriter, r *http.Request, err error) {
	var validationErrors validator.ValidationErrors

	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		first := validationErrors[0]
		message := fmt.Sprintf("%s %s", strings.ToLower(first.Field()), appvalidator.ValidationMessage(first))
		app.failResponse(w, r, message)

		return
	}

	app.badRequestResponse(w, r, err)
}
