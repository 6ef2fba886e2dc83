package app

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/metinatakli/movie-booking-client/internal/domain"
	"github.com/metinatakli/movie-booking-client/internal/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/stripe/stripe-go/v82"
)

type CheckoutTestSuite struct {
	suite.Suite
	app     *application
	booking *mocks.MockBookingService
	payment *mocks.MockPaymentProvider
}

func (s *CheckoutTestSuite) SetupTest() {
	s.booking = new(mocks.MockBookingService)
	s.payment = new(mocks.MockPaymentProvider)

	s.app = newTestApplication(func(a *application) {
		a.booking = s.booking
		a.paymentProvider = s.payment
	})
}

func TestCheckoutSuite(t *testing.T) {
	suite.Run(t, new(CheckoutTestSuite))
}

func validCheckoutRequest() CheckoutRequest {
	return CheckoutRequest{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john.doe@example.com",
	}
}

// selectSeats primes a reservation session for showtime 1 and toggles the
// given seats into the selection.
func (s *CheckoutTestSuite) selectSeats(seats ...domain.Seat) {
	s.booking.On("Showtime", mock.Anything, 1).Return(&domain.Showtime{
		ID:           1,
		TheaterID:    3,
		HallID:       7,
		MovieTitle:   "Dune",
		PricePerSeat: decimal.NewFromInt(10),
	}, nil).Once()
	s.booking.On("HallLayout", mock.Anything, 3, 7).Return(domain.HallLayout{Rows: 2, Columns: 2}, nil).Once()
	s.booking.On("ReservedSeats", mock.Anything, 1).Return([]domain.Seat{}, nil).Once()

	w, r := executeRequest(s.T(), s.app, http.MethodGet, "/showtimes/1/seats", "1", nil)
	s.app.GetSeatMapByShowtime(w, r)
	s.Require().Equal(http.StatusOK, w.Code)

	for _, seat := range seats {
		w, r := executeRequest(s.T(), s.app, http.MethodPost, "/showtimes/1/selection", "1",
			ToggleSeatRequest{Row: ptr(seat.Row), Col: ptr(seat.Col)})
		s.app.ToggleSeatHandler(w, r)
		s.Require().Equal(http.StatusOK, w.Code)
	}
}

func (s *CheckoutTestSuite) checkout(body any) *httptest.ResponseRecorder {
	w, r := executeRequest(s.T(), s.app, http.MethodPost, "/checkout/session", "", body)
	s.app.CreateCheckoutSessionHandler(w, r)

	return w
}

func (s *CheckoutTestSuite) TestCreateCheckoutSession() {
	s.Run("should reject missing identity fields without touching the backend", func() {
		s.SetupTest()
		s.selectSeats(domain.Seat{Row: 0, Col: 0})

		w := s.checkout(CheckoutRequest{})

		s.Equal(http.StatusUnprocessableEntity, w.Code)
		checkErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "is required")
		s.booking.AssertNotCalled(s.T(), "RequestHold", mock.Anything, mock.Anything, mock.Anything)
		s.payment.AssertNotCalled(s.T(), "CreateCheckoutSession", mock.Anything, mock.Anything)
	})

	s.Run("should fail when there is no reservation session", func() {
		s.SetupTest()

		w := s.checkout(validCheckoutRequest())

		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("should fail when nothing is selected", func() {
		s.SetupTest()
		s.selectSeats()

		w := s.checkout(validCheckoutRequest())

		s.Equal(http.StatusBadRequest, w.Code)
		s.booking.AssertNotCalled(s.T(), "RequestHold", mock.Anything, mock.Anything, mock.Anything)
	})

	s.Run("should keep the selection when the hold is refused", func() {
		s.SetupTest()
		s.selectSeats(domain.Seat{Row: 0, Col: 0}, domain.Seat{Row: 0, Col: 1})

		s.booking.On("RequestHold", mock.Anything, 1, mock.Anything).Return(false, nil).Once()

		w := s.checkout(validCheckoutRequest())

		s.Equal(http.StatusConflict, w.Code)

		// Unsaved test sessions all carry the zero-value token.
		session, ok := s.app.reservations.get("")
		s.Require().True(ok)
		s.Equal([]string{"A1", "A2"}, session.Selection().Labels())
	})

	s.Run("should surface backend transport failures as retryable", func() {
		s.SetupTest()
		s.selectSeats(domain.Seat{Row: 0, Col: 0})

		s.booking.On("RequestHold", mock.Anything, 1, mock.Anything).Return(false, fmt.Errorf("network error")).Once()

		w := s.checkout(validCheckoutRequest())

		s.Equal(http.StatusBadGateway, w.Code)
		checkErrorResponse(s.T(), w, http.StatusBadGateway, ErrBackendDown)
	})

	s.Run("should lock the seats and hand off to payment", func() {
		s.SetupTest()
		s.selectSeats(domain.Seat{Row: 0, Col: 0}, domain.Seat{Row: 0, Col: 1})

		s.booking.On("RequestHold", mock.Anything, 1, []domain.Seat{{Row: 0, Col: 0}, {Row: 0, Col: 1}}).
			Return(true, nil).Once()

		s.payment.On("CreateCheckoutSession", mock.Anything, mock.MatchedBy(func(order domain.CheckoutOrder) bool {
			return order.ShowtimeID == 1 &&
				len(order.Seats) == 2 &&
				order.TotalPrice.Equal(decimal.NewFromInt(20)) &&
				order.Customer.Email == "john.doe@example.com"
		})).Return(&stripe.CheckoutSession{URL: "https://checkout.stripe.com/pay/cs_test"}, nil).Once()

		w := s.checkout(validCheckoutRequest())

		s.Require().Equal(http.StatusOK, w.Code)

		var resp CheckoutSessionResponse
		s.Require().NoError(json.NewDecoder(w.Body).Decode(&resp))
		s.Equal("https://checkout.stripe.com/pay/cs_test", resp.RedirectUrl)

		s.booking.AssertExpectations(s.T())
		s.payment.AssertExpectations(s.T())
	})
}
