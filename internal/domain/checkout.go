package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
)

// CustomerIdentity is the minimal identity required before a hold can be
// requested. Validated synchronously at confirm time; no network call is
// made when a field is missing or malformed.
type CustomerIdentity struct {
	FirstName string `json:"firstName" validate:"required,max=50"`
	LastName  string `json:"lastName" validate:"required,max=50"`
	Email     string `json:"email" validate:"required,email"`
}

// CheckoutOrder is the hand-off payload produced by a successful hold. The
// payment collaborator consumes it as-is; nothing in it is mutated afterwards.
type CheckoutOrder struct {
	OrderID    string
	ShowtimeID int
	Showtime   Showtime
	Seats      Selection
	TotalPrice decimal.Decimal
	Customer   CustomerIdentity
}

func NewCheckoutOrder(showtime Showtime, seats Selection, totalPrice decimal.Decimal, customer CustomerIdentity) CheckoutOrder {
	return CheckoutOrder{
		OrderID:    uuid.New().String(),
		ShowtimeID: showtime.ID,
		Showtime:   showtime,
		Seats:      append(Selection(nil), seats...),
		TotalPrice: totalPrice,
		Customer:   customer,
	}
}

type PaymentProvider interface {
	CreateCheckoutSession(sessionID string, order CheckoutOrder) (*stripe.CheckoutSession, error)
}
