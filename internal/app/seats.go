package app

import (
	"errors"
	"net/http"

	"github.com/metinatakli/movie-booking-client/internal/domain"
	"github.com/metinatakli/movie-booking-client/internal/reservation"
)

// GetSeatMapByShowtime initializes the reservation session for the current
// browser session (exactly once per showtime) and renders the seat grid.
// Re-requesting the same showtime reuses the live session; an expired
// session gets a full reload of the hall and reserved-seat snapshot first.
func (app *application) GetSeatMapByShowtime(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	showtimeID, err := app.readShowtimeIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	token := app.sessionManager.Token(r.Context())

	session, ok := app.reservations.get(token)
	if ok && session.Showtime().ID != showtimeID {
		// The user picked a different showtime; the old hold attempt is over.
		app.reservations.remove(token)
		ok = false
	}

	if ok && session.State() == reservation.StateExpired {
		logger.Info("reloading expired reservation session", "showtime_id", showtimeID)

		err = session.Reload(r.Context())
		if err != nil {
			app.badGatewayResponse(w, r, err)
			return
		}
	}

	if !ok {
		session, err = reservation.New(r.Context(), app.booking, showtimeID,
			reservation.WithHoldDuration(app.config.hold.duration),
			reservation.WithWarningThreshold(app.config.hold.warningThreshold),
			reservation.WithLogger(logger),
		)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrRecordNotFound):
				app.notFoundResponse(w, r)
			default:
				app.badGatewayResponse(w, r, err)
			}
			return
		}

		app.reservations.put(token, session)
	}

	resp := toSeatMapResponse(session)

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toSeatMapResponse(session *reservation.Session) SeatMapResponse {
	layout := session.Layout()

	seatRows := make([]SeatRowView, layout.Rows)
	for row := 0; row < layout.Rows; row++ {
		seats := make([]SeatView, layout.Columns)

		for col := 0; col < layout.Columns; col++ {
			seat := domain.Seat{Row: row, Col: col}

			status := SeatStatusFree
			switch {
			case session.IsReserved(seat):
				status = SeatStatusReserved
			case session.IsSelected(seat):
				status = SeatStatusSelected
			}

			seats[col] = SeatView{
				Row:    row,
				Col:    col,
				Label:  seat.Label(),
				Status: status,
			}
		}

		seatRows[row] = SeatRowView{Row: row, Seats: seats}
	}

	return SeatMapResponse{
		ShowtimeId: session.Showtime().ID,
		Rows:       layout.Rows,
		Columns:    layout.Columns,
		SeatRows:   seatRows,
		Selection:  toSelectionView(session),
	}
}

func toSelectionView(session *reservation.Session) SelectionView {
	return SelectionView{
		Seats:            session.Selection().Labels(),
		TotalPrice:       session.TotalPrice().StringFixed(2),
		State:            string(session.State()),
		RemainingSeconds: session.RemainingSeconds(),
		RemainingDisplay: session.RemainingDisplay(),
		WarningActive:    session.WarningActive(),
	}
}
