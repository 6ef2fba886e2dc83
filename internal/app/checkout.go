package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/metinatakli/movie-booking-client/internal/domain"
	"github.com/metinatakli/movie-booking-client/internal/reservation"
)

// CreateCheckoutSessionHandler confirms the current selection: identity is
// validated synchronously, the temporary hold is requested from the booking
// backend, and on success the order is handed to the payment provider. A
// refused hold keeps the selection intact so the user can adjust and retry.
func (app *application) CreateCheckoutSessionHandler(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input CheckoutRequest

	err := app.readJSON(w, r, &input)
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
	if !ok {
		app.badRequestResponse(w, r, fmt.Errorf("there is no seat selection bound to the current session"))
		return
	}

	identity := domain.CustomerIdentity{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
	}

	order, err := session.Confirm(r.Context(), identity)
	if err != nil {
		var validationErr *reservation.ValidationError

		switch {
		case errors.Is(err, domain.ErrSelectionEmpty):
			app.badRequestResponse(w, r, err)
		case errors.As(err, &validationErr):
			app.badRequestResponse(w, r, err)
		case errors.Is(err, domain.ErrSeatsUnavailable):
			logger.Warn("hold refused, seats taken by a concurrent session",
				"showtime_id", session.Showtime().ID)
			app.editConflictResponseWithErr(w, r, err)
		case errors.Is(err, domain.ErrCheckoutInProgress), errors.Is(err, domain.ErrSelectionExpired):
			app.editConflictResponseWithErr(w, r, err)
		default:
			app.badGatewayResponse(w, r, err)
		}
		return
	}

	checkoutSession, err := app.paymentProvider.CreateCheckoutSession(token, *order)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	logger.Info("reservation locked and handed to payment",
		"order_id", order.OrderID,
		"showtime_id", order.ShowtimeID,
		"seats", order.Seats.Labels(),
		"total_price", order.TotalPrice.StringFixed(2),
	)

	// The hold now lives server-side; this client session's work is done.
	app.reservations.remove(token)

	resp := CheckoutSessionResponse{
		RedirectUrl: checkoutSession.URL,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
