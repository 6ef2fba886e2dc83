package mocks

import (
	"github.com/metinatakli/movie-booking-client/internal/domain"
	"github.com/stretchr/testify/mock"
	"github.com/stripe/stripe-go/v82"
)

type MockPaymentProvider struct {
	mock.Mock
}

func (m *MockPaymentProvider) CreateCheckoutSession(sessionID string, order domain.CheckoutOrder) (*stripe.CheckoutSession, error) {
	args := m.Called(sessionID, order)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*stripe.CheckoutSession), args.Error(1)
}
