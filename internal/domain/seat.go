package domain

import (
	"fmt"
	"strconv"
)

// Row labels are single letters, so layouts taller than 26 rows are rejected
// at validation time rather than guessing a double-letter scheme.
const MaxLabeledRows = 26

const rowLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Seat identifies a single seat by its zero-based grid position.
// Identity is structural: two seats are equal iff row and column match.
type Seat struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Label renders the seat in the "A1" form shown to users: the row index maps
// to a letter and the column index to a 1-based number.
func (s Seat) Label() string {
	return fmt.Sprintf("%c%d", rowLetters[s.Row], s.Col+1)
}

// ParseSeatLabel is the inverse of Seat.Label.
func ParseSeatLabel(label string) (Seat, error) {
	if len(label) < 2 {
		return Seat{}, fmt.Errorf("invalid seat label: %q", label)
	}

	row := int(label[0] - 'A')
	if row < 0 || row >= MaxLabeledRows {
		return Seat{}, fmt.Errorf("invalid row letter in seat label: %q", label)
	}

	num, err := strconv.Atoi(label[1:])
	if err != nil || num < 1 {
		return Seat{}, fmt.Errorf("invalid column number in seat label: %q", label)
	}

	return Seat{Row: row, Col: num - 1}, nil
}

// HallLayout is the row/column geometry of a hall, fetched once per showtime
// selection and immutable for the lifetime of a reservation session.
type HallLayout struct {
	Rows    int
	Columns int
}

func (h HallLayout) Validate() error {
	if h.Rows <= 0 || h.Columns <= 0 {
		return fmt.Errorf("hall layout must have positive dimensions, got %dx%d", h.Rows, h.Columns)
	}

	if h.Rows > MaxLabeledRows {
		return fmt.Errorf("hall layout exceeds %d labeled rows, got %d", MaxLabeledRows, h.Rows)
	}

	return nil
}

// Contains reports whether the seat falls inside the hall geometry.
func (h HallLayout) Contains(seat Seat) bool {
	return seat.Row >= 0 && seat.Row < h.Rows && seat.Col >= 0 && seat.Col < h.Columns
}
