package integration_test

import (
	"context"

	"github.com/abscinema/booking-api/internal/app"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TestApp struct {
	App *app.Application
	DB  *pgxpool.Pool
}

// newTestApp boots the full application against the container database.
// app.New runs the embedded migrations, including the seed data. The extra
// pool gives tests direct access to the database for assertions.
func newTestApp(cfg app.Config) (*TestApp, error) {
	application, err := app.New(cfg)
	if err != nil {
		return nil, err
	}

	db, err := pgxpool.New(context.Background(), cfg.DB.DSN)
	if err != nil {
		application.Close()
		return nil, err
	}

	return &TestApp{
		App: application,
		DB:  db,
	}, nil
}
