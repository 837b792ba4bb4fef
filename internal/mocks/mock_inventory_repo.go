package mocks

import (
	"context"

	"github.com/abscinema/booking-api/internal/domain"
)

type MockInventoryRepo struct {
	domain.InventoryRepository
	GetAllFunc          func(ctx context.Context) ([]domain.SeatBlock, error)
	GetAvailabilityFunc func(ctx context.Context, cinema, movie, showTime string) (*domain.SeatBlock, error)
	ConsumeFunc         func(ctx context.Context, cinema, movie, showTime string, attendees int) error
}

func (m *MockInventoryRepo) GetAll(ctx context.Context) ([]domain.SeatBlock, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockInventoryRepo) GetAvailability(ctx context.Context, cinema, movie, showTime string) (*domain.SeatBlock, error) {
	return m.GetAvailabilityFunc(ctx, cinema, movie, showTime)
}

func (m *MockInventoryRepo) Consume(ctx context.Context, cinema, movie, showTime string, attendees int) error {
	return m.ConsumeFunc(ctx, cinema, movie, showTime, attendees)
}
