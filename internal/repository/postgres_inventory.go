package repository

import (
	"context"
	"errors"

	"github.com/abscinema/booking-api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresInventoryRepository struct {
	db *pgxpool.Pool
}

func NewPostgresInventoryRepository(db *pgxpool.Pool) *PostgresInventoryRepository {
	return &PostgresInventoryRepository{
		db: db,
	}
}

func (p *PostgresInventoryRepository) GetAll(ctx context.Context) ([]domain.SeatBlock, error) {
	query := `
		SELECT id, cinema_name, movie_name, show_time, total_seats, booked_seats
		FROM cinema_seats
		ORDER BY id
	`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	blocks := make([]domain.SeatBlock, 0)

	for rows.Next() {
		var block domain.SeatBlock

		err = rows.Scan(
			&block.ID,
			&block.CinemaName,
			&block.MovieName,
			&block.ShowTime,
			&block.TotalSeats,
			&block.BookedSeats,
		)
		if err != nil {
			return nil, err
		}

		blocks = append(blocks, block)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return blocks, nil
}

func (p *PostgresInventoryRepository) GetAvailability(ctx context.Context, cinema, movie, showTime string) (*domain.SeatBlock, error) {
	query := `
		SELECT id, cinema_name, movie_name, show_time, total_seats, booked_seats
		FROM cinema_seats
		WHERE cinema_name = $1 AND movie_name = $2 AND show_time = $3
	`

	var block domain.SeatBlock

	err := p.db.QueryRow(ctx, query, cinema, movie, showTime).Scan(
		&block.ID,
		&block.CinemaName,
		&block.MovieName,
		&block.ShowTime,
		&block.TotalSeats,
		&block.BookedSeats,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &block, nil
}

// Consume increments booked_seats unconditionally. The capacity check lives in
// the caller, between GetAvailability and this call; the gap between the two
// store operations is the demo's race window and must stay open.
func (p *PostgresInventoryRepository) Consume(ctx context.Context, cinema, movie, showTime string, attendees int) error {
	query := `
		UPDATE cinema_seats
		SET booked_seats = booked_seats + $1
		WHERE cinema_name = $2 AND movie_name = $3 AND show_time = $4
	`

	_, err := p.db.Exec(ctx, query, attendees, cinema, movie, showTime)

	return err
}
