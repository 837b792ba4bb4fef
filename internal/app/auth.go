package app

import (
	"errors"
	"net/http"

	"github.com/abscinema/booking-api/api"
	"github.com/abscinema/booking-api/internal/domain"
)

func (app *Application) Login(w http.ResponseWriter, r *http.Request) {
	logger := app.logger

	var input api.LoginRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	// No validation on purpose: the lookup must see the credentials exactly
	// as the client sent them, control syntax included.
	user, err := app.userRepo.GetByCredentials(r.Context(), input.Username, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			logger.Warn("login failed", "username", input.Username)
			app.failResponse(w, r, ErrInvalidCredentials)
		default:
			// Store errors travel to the client verbatim, including the ones
			// provoked by injected SQL syntax.
			app.storeErrorResponse(w, r, err)
		}

		return
	}

	// To help prevent session fixation attacks we should renew the session token after any privilege level change.
	// https://github.com/OWASP/CheatSheetSeries/blob/master/cheatsheets/Session_Management_Cheat_Sheet.md#renew-the-session-id-after-any-privilege-level-change
	err = app.sessionManager.RenewToken(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.sessionManager.Put(r.Context(), SessionKeyUserID.String(), user.ID)
	app.sessionManager.Put(r.Context(), SessionKeyUsername.String(), user.Username)
	app.sessionManager.Put(r.Context(), SessionKeyIsAdmin.String(), user.IsAdmin)

	resp := api.LoginResponse{
		Success:  true,
		UserID:   user.ID,
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// Logout clears the session unconditionally; it succeeds even when nobody is
// logged in.
func (app *Application) Logout(w http.ResponseWriter, r *http.Request) {
	err := app.sessionManager.Destroy(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.LogoutResponse{Success: true}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
