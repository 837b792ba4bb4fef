package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TicketPrice is the fixed per-seat price in currency-agnostic units.
const TicketPrice = 10

const bookingIDTimeFormat = "060102150405"

// Booking is an immutable record of a completed reservation.
type Booking struct {
	ID             int
	BookingID      string
	UserID         int
	CinemaName     string
	MovieName      string
	ShowTime       string
	Attendees      int
	TotalPrice     decimal.Decimal
	Discount       decimal.Decimal
	FinalPrice     decimal.Decimal
	BookingTime    time.Time
	IsAdminBooking bool
}

type BookingRepository interface {
	Create(ctx context.Context, booking *Booking) error
	// CreateBatch persists all bookings in a single transaction. Any failure
	// aborts the whole batch and returns the originating error.
	CreateBatch(ctx context.Context, bookings []*Booking) error
}

// Price computes the priced breakdown for a booking. There is no check that
// the discount stays below the total; a negative final price is allowed.
func Price(attendees int, discount decimal.Decimal) (total, final decimal.Decimal) {
	total = decimal.NewFromInt(TicketPrice).Mul(decimal.NewFromInt(int64(attendees)))
	final = total.Sub(discount)

	return total, final
}

// NewBookingID derives a booking id from the wall clock. Two bookings created
// within the same second share an id; the original system has the same
// property and nothing relies on uniqueness.
func NewBookingID(t time.Time) string {
	return "BK" + t.Format(bookingIDTimeFormat)
}

// NewAdminBookingID derives a batch booking id. index is the 0-based position
// of the request inside the batch.
func NewAdminBookingID(t time.Time, index int) string {
	return fmt.Sprintf("ADMIN-BK%s-%d", t.Format(bookingIDTimeFormat), index)
}
