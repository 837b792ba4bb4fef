package app

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/abscinema/booking-api/api"
	"github.com/abscinema/booking-api/internal/domain"
	"github.com/abscinema/booking-api/internal/mocks"
	"github.com/abscinema/booking-api/internal/validator"
	"github.com/alexedwards/scs/v2"
)

func newTestApplication(opts ...func(*Application)) *Application {
	app := &Application{
		config:         Config{Env: "test"},
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		validator:      validator.NewValidator(),
		sessionManager: scs.New(),
		userRepo:       &mocks.MockUserRepo{},
		inventoryRepo:  &mocks.MockInventoryRepo{},
		bookingRepo:    &mocks.MockBookingRepo{},
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

func setupTestSession(t *testing.T, app *Application, r *http.Request, sess domain.Session) *http.Request {
	ctx, err := app.sessionManager.Load(r.Context(), "session")
	if err != nil {
		t.Errorf("Failed to load session: %v", err)
	}

	app.sessionManager.Put(ctx, SessionKeyUserID.String(), sess.UserID)
	app.sessionManager.Put(ctx, SessionKeyUsername.String(), sess.Username)
	app.sessionManager.Put(ctx, SessionKeyIsAdmin.String(), sess.IsAdmin)

	return r.WithContext(ctx)
}

func executeRequest(t *testing.T, method, url string, body any) (*httptest.ResponseRecorder, *http.Request) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}

	r := httptest.NewRequest(method, url, bytes.NewReader(jsonData))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	return w, r
}

func checkFailureResponse(t *testing.T, w *httptest.ResponseRecorder, wantMessage string) {
	t.Helper()

	var resp api.FailureResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode failure response: %v", err)
	}

	if resp.Success {
		t.Error("Expected success=false in failure response")
	}

	if resp.Message != wantMessage {
		t.Errorf("Failure message = %q, want %q", resp.Message, wantMessage)
	}
}

func ptr[T any](v T) *T {
	return &v
}
