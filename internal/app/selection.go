package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/metinatakli/movie-booking-client/internal/domain"
)

// ToggleSeatHandler flips one seat in the current selection. Reserved seats
// are never selectable; toggling one simply returns the unchanged selection.
func (app *application) ToggleSeatHandler(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	showtimeID, err := app.readShowtimeIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input ToggleSeatRequest

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	token := app.sessionManager.Token(r.Context())

	session, ok := app.reservations.get(token)
	if !ok || session.Showtime().ID != showtimeID {
		app.badRequestResponse(w, r, fmt.Errorf("no active seat map for this showtime, load the seat map first"))
		return
	}

	seat := domain.Seat{Row: *input.Row, Col: *input.Col}

	_, err = session.ToggleSeat(seat)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCheckoutInProgress):
			app.editConflictResponseWithErr(w, r, err)
		case errors.Is(err, domain.ErrSelectionExpired):
			logger.Info("toggle on expired session", "showtime_id", showtimeID)
			app.editConflictResponseWithErr(w, r, err)
		default:
			app.badRequestResponse(w, r, err)
		}
		return
	}

	resp := SelectionResponse{
		ShowtimeId: showtimeID,
		Selection:  toSelectionView(session),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// AbandonSelectionHandler tears the reservation session down, stopping its
// countdown. Part of the timer cleanup contract for unmounted clients.
func (app *application) AbandonSelectionHandler(w http.ResponseWriter, r *http.Request) {
	showtimeID, err := app.readShowtimeIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	token := app.sessionManager.Token(r.Context())

	session, ok := app.reservations.get(token)
	if !ok || session.Showtime().ID != showtimeID {
		app.notFoundResponse(w, r)
		return
	}

	app.reservations.remove(token)

	w.WriteHeader(http.StatusNoContent)
}
