package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/abscinema/booking-api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresUserRepository struct {
	db *pgxpool.Pool
}

func NewPostgresUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{
		db: db,
	}
}

// GetByCredentials looks up a user by exact username/password match.
//
// Deliberately vulnerable to SQL injection: the credentials are interpolated
// straight into the query text. This is the demo's login flaw; do not swap it
// for a parameterized query. When an injected payload matches several rows,
// the first one wins, same as the original.
func (p *PostgresUserRepository) GetByCredentials(ctx context.Context, username, password string) (*domain.User, error) {
	query := fmt.Sprintf(
		"SELECT id, username, is_admin FROM users WHERE username = '%s' AND password = '%s'",
		username, password,
	)

	var user domain.User

	err := p.db.QueryRow(ctx, query).Scan(&user.ID, &user.Username, &user.IsAdmin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &user, nil
}
