package repository

import (
	"context"
	"errors"

	"github.com/abscinema/booking-api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresBookingRepository struct {
	db *pgxpool.Pool
}

func NewPostgresBookingRepository(db *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{
		db: db,
	}
}

// queryRower is satisfied by both *pgxpool.Pool and pgx.Tx, so the insert can
// run standalone or inside a batch transaction.
type queryRower interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func (p *PostgresBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	return insertBooking(ctx, p.db, booking)
}

// CreateBatch persists the whole batch in one transaction: one bad element
// rolls back every insert and the originating error is returned unchanged.
func (p *PostgresBookingRepository) CreateBatch(ctx context.Context, bookings []*domain.Booking) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		for _, booking := range bookings {
			if err := insertBooking(ctx, tx, booking); err != nil {
				return err
			}
		}

		return nil
	})
}

func insertBooking(ctx context.Context, q queryRower, booking *domain.Booking) error {
	query := `
		INSERT INTO bookings
			(booking_id, user_id, cinema_name, movie_name, show_time, attendees,
			 total_price, discount, final_price, is_admin_booking)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, booking_time
	`

	return q.QueryRow(
		ctx,
		query,
		booking.BookingID,
		booking.UserID,
		booking.CinemaName,
		booking.MovieName,
		booking.ShowTime,
		booking.Attendees,
		booking.TotalPrice,
		booking.Discount,
		booking.FinalPrice,
		booking.IsAdminBooking,
	).Scan(&booking.ID, &booking.BookingTime)
}

func runInTx(ctx context.Context, db *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	var txOptions pgx.TxOptions

	tx, err := db.BeginTx(ctx, txOptions)
	if err != nil {
		return err
	}

	err = fn(tx)
	if err == nil {
		return tx.Commit(ctx)
	}

	rollbackErr := tx.Rollback(ctx)
	if rollbackErr != nil {
		return errors.Join(err, rollbackErr)
	}

	return err
}
