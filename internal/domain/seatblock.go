package domain

import "context"

// SeatBlock is the capacity record for one (cinema, movie, show time)
// combination. booked_seats only ever grows: there is no cancellation path.
type SeatBlock struct {
	ID          int
	CinemaName  string
	MovieName   string
	ShowTime    string
	TotalSeats  int
	BookedSeats int
}

// Remaining reports how many seats are still free. Admin bookings can push
// this negative.
func (s SeatBlock) Remaining() int {
	return s.TotalSeats - s.BookedSeats
}

// InventoryRepository reads and consumes seat capacity.
//
// GetAvailability and Consume are deliberately separate operations with no
// transaction spanning them. The caller runs its capacity check between the
// two calls, which leaves a window where concurrent requests can jointly
// overbook a block. That race is a demonstrated property of this system, not
// a bug to close.
type InventoryRepository interface {
	GetAll(ctx context.Context) ([]SeatBlock, error)
	GetAvailability(ctx context.Context, cinema, movie, showTime string) (*SeatBlock, error)
	Consume(ctx context.Context, cinema, movie, showTime string, attendees int) error
}
