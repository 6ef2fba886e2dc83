package app

import "time"

// Request and response shapes for the facade. The backend's own wire
// contracts live in internal/booking; these are what the browser sees.

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationIssue struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	ValidationErrors []ValidationIssue `json:"validationErrors"`
}

type ToggleSeatRequest struct {
	Row *int `json:"row" validate:"required,gte=0"`
	Col *int `json:"col" validate:"required,gte=0"`
}

type CheckoutRequest struct {
	FirstName string `json:"firstName" validate:"required,max=50"`
	LastName  string `json:"lastName" validate:"required,max=50"`
	Email     string `json:"email" validate:"required,email"`
}

type SeatStatus string

const (
	SeatStatusFree     SeatStatus = "free"
	SeatStatusSelected SeatStatus = "selected"
	SeatStatusReserved SeatStatus = "reserved"
)

type SeatView struct {
	Row    int        `json:"row"`
	Col    int        `json:"col"`
	Label  string     `json:"label"`
	Status SeatStatus `json:"status"`
}

type SeatRowView struct {
	Row   int        `json:"row"`
	Seats []SeatView `json:"seats"`
}

type SelectionView struct {
	Seats            []string `json:"seats"`
	TotalPrice       string   `json:"totalPrice"`
	State            string   `json:"state"`
	RemainingSeconds int      `json:"remainingSeconds"`
	RemainingDisplay string   `json:"remainingDisplay"`
	WarningActive    bool     `json:"warningActive"`
}

type SeatMapResponse struct {
	ShowtimeId int           `json:"showtimeId"`
	Rows       int           `json:"rows"`
	Columns    int           `json:"columns"`
	SeatRows   []SeatRowView `json:"seatRows"`
	Selection  SelectionView `json:"selection"`
}

type SelectionResponse struct {
	ShowtimeId int           `json:"showtimeId"`
	Selection  SelectionView `json:"selection"`
}

type CheckoutSessionResponse struct {
	RedirectUrl string `json:"redirectUrl"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}
