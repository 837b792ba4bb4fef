package mocks

import (
	"context"

	"github.com/abscinema/booking-api/internal/domain"
)

type MockBookingRepo struct {
	domain.BookingRepository
	CreateFunc      func(ctx context.Context, booking *domain.Booking) error
	CreateBatchFunc func(ctx context.Context, bookings []*domain.Booking) error
}

func (m *MockBookingRepo) Create(ctx context.Context, booking *domain.Booking) error {
	return m.CreateFunc(ctx, booking)
}

func (m *MockBookingRepo) CreateBatch(ctx context.Context, bookings []*domain.Booking) error {
	return m.CreateBatchFunc(ctx, bookings)
}
