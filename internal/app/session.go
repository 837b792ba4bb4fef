package app

import (
	"net/http"

	"github.com/abscinema/booking-api/internal/domain"
)

type sessionKey string

const (
	SessionKeyUserID   = sessionKey("userID")
	SessionKeyUsername = sessionKey("username")
	SessionKeyIsAdmin  = sessionKey("isAdmin")
)

func (s sessionKey) String() string {
	return string(s)
}

// sessionFromRequest materializes the caller's identity from the session
// store. The boolean is false when nobody is logged in (seeded user ids start
// at 1, so 0 means absent).
func (app *Application) sessionFromRequest(r *http.Request) (domain.Session, bool) {
	userID := app.sessionManager.GetInt(r.Context(), SessionKeyUserID.String())
	if userID == 0 {
		return domain.Session{}, false
	}

	return domain.Session{
		UserID:   userID,
		Username: app.sessionManager.GetString(r.Context(), SessionKeyUsername.String()),
		IsAdmin:  app.sessionManager.GetBool(r.Context(), SessionKeyIsAdmin.String()),
	}, true
}
