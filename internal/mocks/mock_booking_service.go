package mocks

import (
	"context"

	"github.com/metinatakli/movie-booking-client/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) Showtime(ctx context.Context, showtimeID int) (*domain.Showtime, error) {
	args := m.Called(ctx, showtimeID)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Showtime), args.Error(1)
}

func (m *MockBookingService) HallLayout(ctx context.Context, theaterID, hallID int) (domain.HallLayout, error) {
	args := m.Called(ctx, theaterID, hallID)
	return args.Get(0).(domain.HallLayout), args.Error(1)
}

func (m *MockBookingService) ReservedSeats(ctx context.Context, showtimeID int) ([]domain.Seat, error) {
	args := m.Called(ctx, showtimeID)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.Seat), args.Error(1)
}

func (m *MockBookingService) RequestHold(ctx context.Context, showtimeID int, seats []domain.Seat) (bool, error) {
	args := m.Called(ctx, showtimeID, seats)
	return args.Bool(0), args.Error(1)
}
