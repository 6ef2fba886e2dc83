package domain

// SeatSet is an unordered set of seats. The reserved-seat snapshot fetched at
// session start is a SeatSet: a point-in-time view of seats sold or held by
// other sessions, never refreshed while the user deliberates.
type SeatSet map[Seat]struct{}

func NewSeatSet(seats ...Seat) SeatSet {
	set := make(SeatSet, len(seats))
	for _, s := range seats {
		set[s] = struct{}{}
	}

	return set
}

func (ss SeatSet) Contains(seat Seat) bool {
	_, ok := ss[seat]
	return ok
}

// Selection is the user's current choice of seats, in click order. Click
// order carries no booking semantics but is preserved for display.
type Selection []Seat

func (s Selection) Contains(seat Seat) bool {
	for _, v := range s {
		if v == seat {
			return true
		}
	}

	return false
}

// Labels returns the display labels of the selected seats, in click order.
func (s Selection) Labels() []string {
	labels := make([]string, len(s))
	for i, v := range s {
		labels[i] = v.Label()
	}

	return labels
}
