package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// Showtime is the scheduled screening a reservation session is scoped to.
type Showtime struct {
	ID           int
	TheaterID    int
	HallID       int
	MovieTitle   string
	TheaterName  string
	PricePerSeat decimal.Decimal
}

// BookingService is the external catalog/booking backend. It is the sole
// arbiter of seat availability: the reserved snapshot it returns is
// stale-tolerant, and conflicts are resolved only at RequestHold time.
type BookingService interface {
	Showtime(ctx context.Context, showtimeID int) (*Showtime, error)
	HallLayout(ctx context.Context, theaterID, hallID int) (HallLayout, error)
	ReservedSeats(ctx context.Context, showtimeID int) ([]Seat, error)
	RequestHold(ctx context.Context, showtimeID int, seats []Seat) (bool, error)
}
