package payment

import (
	"fmt"

	"github.com/metinatakli/movie-booking-client/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
)

type StripePaymentProvider struct {
	failureUrl string
	successUrl string
}

func NewStripePaymentProvider(failureUrl, successUrl string) *StripePaymentProvider {
	return &StripePaymentProvider{
		failureUrl: failureUrl,
		successUrl: successUrl,
	}
}

// CreateCheckoutSession turns a confirmed reservation into a hosted Stripe
// checkout session, one line item per held seat. Prices are converted to
// minor units from the exact decimal amounts; no float math.
func (s *StripePaymentProvider) CreateCheckoutSession(
	sessionID string,
	order domain.CheckoutOrder) (*stripe.CheckoutSession, error) {

	priceCents := order.Showtime.PricePerSeat.Mul(decimal.NewFromInt(100)).IntPart()

	var lineItems []*stripe.CheckoutSessionLineItemParams

	for _, seat := range order.Seats {
		lineItem := &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(string(stripe.CurrencyGBP)),
				UnitAmount: stripe.Int64(priceCents),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(fmt.Sprintf("🎬 %s - Seat %s", order.Showtime.MovieTitle, seat.Label())),
					Description: stripe.String(fmt.Sprintf(
						"Theater: %s • Showtime: %d",
						order.Showtime.TheaterName,
						order.ShowtimeID,
					)),
				},
			},
			Quantity: stripe.Int64(1),
		}

		lineItems = append(lineItems, lineItem)
	}

	params := &stripe.CheckoutSessionParams{
		LineItems:  lineItems,
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(s.successUrl),
		CancelURL:  stripe.String(s.failureUrl),
		Metadata: map[string]string{
			"order_id":    order.OrderID,
			"session_id":  sessionID,
			"showtime_id": fmt.Sprintf("%d", order.ShowtimeID),
		},
		CustomerEmail:     &order.Customer.Email,
		ClientReferenceID: stripe.String(order.OrderID),
	}

	return session.New(params)
}
