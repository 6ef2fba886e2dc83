// Package grid implements the seat map: a fixed-size matrix of seats
// partitioned into reserved, selected, and free. It is pure selection logic;
// fetching the reserved snapshot is the caller's responsibility.
package grid

import (
	"fmt"

	"github.com/metinatakli/movie-booking-client/internal/domain"
)

// SelectionChangedFunc is invoked after every effective toggle with the new
// selection. The slice is a copy; callbacks may retain it.
type SelectionChangedFunc func(domain.Selection)

type SeatGrid struct {
	layout    domain.HallLayout
	reserved  domain.SeatSet
	selection domain.Selection
	onChange  SelectionChangedFunc
}

type Option func(*SeatGrid)

// WithSelectionChanged registers the owning session's selection callback.
func WithSelectionChanged(fn SelectionChangedFunc) Option {
	return func(g *SeatGrid) {
		g.onChange = fn
	}
}

// New builds a seat grid over the given hall geometry. The reserved set is a
// point-in-time snapshot injected by the caller and never refreshed here.
func New(layout domain.HallLayout, reserved domain.SeatSet, opts ...Option) (*SeatGrid, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	g := &SeatGrid{
		layout:   layout,
		reserved: reserved,
	}

	if g.reserved == nil {
		g.reserved = domain.NewSeatSet()
	}

	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

func (g *SeatGrid) Layout() domain.HallLayout {
	return g.layout
}

// Toggle flips the seat's membership in the current selection and returns the
// new selection. Toggling a reserved seat is a no-op: the selection never
// intersects the reserved set. Seats outside the hall geometry are an error.
func (g *SeatGrid) Toggle(seat domain.Seat) (domain.Selection, error) {
	if !g.layout.Contains(seat) {
		return nil, fmt.Errorf("seat %d:%d is outside the %dx%d hall layout",
			seat.Row, seat.Col, g.layout.Rows, g.layout.Columns)
	}

	if g.reserved.Contains(seat) {
		return g.Selection(), nil
	}

	if g.selection.Contains(seat) {
		g.remove(seat)
	} else {
		g.selection = append(g.selection, seat)
	}

	selection := g.Selection()

	if g.onChange != nil {
		g.onChange(selection)
	}

	return selection, nil
}

func (g *SeatGrid) remove(seat domain.Seat) {
	filtered := g.selection[:0]
	for _, v := range g.selection {
		if v != seat {
			filtered = append(filtered, v)
		}
	}

	g.selection = filtered
}

func (g *SeatGrid) IsReserved(seat domain.Seat) bool {
	return g.reserved.Contains(seat)
}

func (g *SeatGrid) IsSelected(seat domain.Seat) bool {
	return g.selection.Contains(seat)
}

// Selection returns a copy of the current selection in click order.
func (g *SeatGrid) Selection() domain.Selection {
	return append(domain.Selection(nil), g.selection...)
}

// Clear drops the whole selection without firing the change callback. Used
// by the session on expiry, where the state reset is already explicit.
func (g *SeatGrid) Clear() {
	g.selection = nil
}
