// Package reservation implements the client-side seat reservation workflow
// for a single showtime: seat selection over the grid, decimal pricing, the
// temporary-hold request against the booking backend, and the countdown that
// invalidates a selection left uncommitted for too long.
//
// The backend is the sole authority on seat availability. The reserved
// snapshot loaded at session start is stale-tolerant by design: another
// session may take a seat between the fetch and the hold request, and the
// conflict is resolved only by the hold refusal.
package reservation

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/movie-booking-client/internal/domain"
	"github.com/metinatakli/movie-booking-client/internal/grid"
	"github.com/shopspring/decimal"
)

// State is the session's position in the reservation workflow.
type State string

const (
	StateIdle      State = "idle"      // no seats selected, countdown stopped
	StateSelecting State = "selecting" // non-empty selection, countdown running
	StateLocking   State = "locking"   // hold request in flight
	StateLocked    State = "locked"    // hold granted, control handed to payment
	StateRejected  State = "rejected"  // hold refused or failed; selection kept
	StateExpired   State = "expired"   // countdown hit zero; reload required
)

const (
	// Defaults match the backend's 10 minute seat-lock TTL.
	defaultHoldDuration     = 10 * time.Minute
	defaultWarningThreshold = time.Minute
)

// ValidationError reports a confirm attempt rejected before any network call.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "confirm request failed validation"
}

// Session owns the reservation workflow for one showtime. All methods are
// safe for concurrent use: the browser's single event loop becomes a mutex
// here, serializing toggles, ticks, and confirms.
type Session struct {
	mu sync.Mutex

	booking  domain.BookingService
	validate *validator.Validate
	logger   *slog.Logger

	showtime domain.Showtime
	grid     *grid.SeatGrid

	state      State
	timer      *countdown
	totalPrice decimal.Decimal

	holdDuration     time.Duration
	warningThreshold time.Duration
}

type Option func(*Session)

// WithHoldDuration overrides how long a selection may sit uncommitted.
func WithHoldDuration(d time.Duration) Option {
	return func(s *Session) {
		if d > 0 {
			s.holdDuration = d
		}
	}
}

// WithWarningThreshold overrides when the countdown starts flagging a warning.
func WithWarningThreshold(d time.Duration) Option {
	return func(s *Session) {
		if d > 0 {
			s.warningThreshold = d
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// New loads the showtime, its hall geometry, and the reserved-seat snapshot,
// then starts the session in the Idle state. Loading happens exactly once; a
// failure here blocks the seat grid until the caller retries.
func New(ctx context.Context, booking domain.BookingService, showtimeID int, opts ...Option) (*Session, error) {
	s := &Session{
		booking:          booking,
		validate:         validator.New(validator.WithRequiredStructEnabled()),
		logger:           slog.Default(),
		totalPrice:       decimal.Zero,
		holdDuration:     defaultHoldDuration,
		warningThreshold: defaultWarningThreshold,
	}

	for _, opt := range opts {
		opt(s)
	}

	showtime, err := booking.Showtime(ctx, showtimeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load showtime %d: %w", showtimeID, err)
	}

	s.showtime = *showtime

	if err := s.load(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

// load fetches the hall geometry and the reserved snapshot and rebuilds the
// grid. Called once from New and again from Reload after expiry.
func (s *Session) load(ctx context.Context) error {
	layout, err := s.booking.HallLayout(ctx, s.showtime.TheaterID, s.showtime.HallID)
	if err != nil {
		return fmt.Errorf("failed to load hall layout for showtime %d: %w", s.showtime.ID, err)
	}

	if err := layout.Validate(); err != nil {
		return fmt.Errorf("backend returned an unusable hall layout for showtime %d: %w", s.showtime.ID, err)
	}

	reserved, err := s.booking.ReservedSeats(ctx, s.showtime.ID)
	if err != nil {
		return fmt.Errorf("failed to load reserved seats for showtime %d: %w", s.showtime.ID, err)
	}

	seatGrid, err := grid.New(layout, domain.NewSeatSet(reserved...),
		grid.WithSelectionChanged(s.applySelection))
	if err != nil {
		return err
	}

	s.grid = seatGrid
	s.state = StateIdle
	s.timer = newCountdown(int(s.holdDuration.Seconds()), int(s.warningThreshold.Seconds()))
	s.totalPrice = decimal.Zero

	return nil
}

// ToggleSeat flips the seat's membership in the selection. The countdown
// starts when the selection becomes non-empty and stops when it empties
// again. Reserved seats are a hard no-op.
func (s *Session) ToggleSeat(seat domain.Seat) (domain.Selection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateLocking, StateLocked:
		return nil, domain.ErrCheckoutInProgress
	case StateExpired:
		return nil, domain.ErrSelectionExpired
	}

	return s.grid.Toggle(seat)
}

// applySelection is the grid's selection-changed callback: it recomputes the
// price and drives the Idle/Selecting transitions. Runs under the session
// mutex, since the grid is only ever touched by locked session methods.
func (s *Session) applySelection(selection domain.Selection) {
	s.totalPrice = s.showtime.PricePerSeat.Mul(decimal.NewFromInt(int64(len(selection))))

	switch {
	case len(selection) == 0:
		if s.state == StateSelecting || s.state == StateRejected {
			s.timer.stop()
			s.state = StateIdle
		}
	default:
		if s.state == StateIdle {
			s.timer.start()
			s.state = StateSelecting
		} else if s.state == StateRejected {
			s.state = StateSelecting
		}
	}
}

// Confirm validates the identity, requests a temporary hold for the current
// selection, and on success hands back the checkout order for the payment
// collaborator. Validation failures are synchronous: no hold request is sent.
// A refused or failed hold moves the session to Rejected with the selection
// intact, and Confirm may be retried.
func (s *Session) Confirm(ctx context.Context, identity domain.CustomerIdentity) (*domain.CheckoutOrder, error) {
	s.mu.Lock()

	switch s.state {
	case StateLocking, StateLocked:
		s.mu.Unlock()
		return nil, domain.ErrCheckoutInProgress
	case StateExpired:
		s.mu.Unlock()
		return nil, domain.ErrSelectionExpired
	}

	selection := s.grid.Selection()
	if len(selection) == 0 {
		s.mu.Unlock()
		return nil, domain.ErrSelectionEmpty
	}

	if err := s.validate.Struct(identity); err != nil {
		s.mu.Unlock()
		return nil, toValidationError(err)
	}

	s.state = StateLocking
	showtime := s.showtime
	totalPrice := s.totalPrice
	s.mu.Unlock()

	ok, err := s.booking.RequestHold(ctx, showtime.ID, selection)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.state = StateRejected
		s.logger.Error("hold request failed", "showtime_id", showtime.ID, "error", err)
		return nil, fmt.Errorf("hold request failed: %w", err)
	}

	if !ok {
		s.state = StateRejected
		s.logger.Warn("hold request refused, seats taken by another session",
			"showtime_id", showtime.ID, "seats", selection.Labels())
		return nil, domain.ErrSeatsUnavailable
	}

	s.state = StateLocked
	s.timer.stop()

	order := domain.NewCheckoutOrder(showtime, selection, totalPrice, identity)

	return &order, nil
}

// Tick advances the countdown by one second. When it reaches zero while a
// selection is pending, the selection is cleared and the session moves to
// Expired; the local snapshot is stale at that point and Reload must be
// called before the session is usable again.
func (s *Session) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateSelecting && s.state != StateRejected {
		return
	}

	if s.timer.tick() {
		s.grid.Clear()
		s.totalPrice = decimal.Zero
		s.state = StateExpired
		s.logger.Info("selection expired", "showtime_id", s.showtime.ID)
	}
}

// Reload re-fetches the hall geometry and the reserved snapshot after an
// expiry and resets the session to Idle. Explicit by design: there is no
// implicit background refresh.
func (s *Session) Reload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(ctx)
}

// Close stops the countdown. Part of the teardown contract: a torn-down
// session must not keep a live timer behind it.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.timer.stop()
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

func (s *Session) Showtime() domain.Showtime {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.showtime
}

func (s *Session) Layout() domain.HallLayout {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.grid.Layout()
}

func (s *Session) Selection() domain.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.grid.Selection()
}

func (s *Session) TotalPrice() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.totalPrice
}

func (s *Session) IsReserved(seat domain.Seat) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.grid.IsReserved(seat)
}

func (s *Session) IsSelected(seat domain.Seat) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.grid.IsSelected(seat)
}

func (s *Session) RemainingSeconds() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.timer.remaining
}

func (s *Session) WarningActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.timer.warning()
}

// RemainingDisplay renders the countdown as literal minutes:seconds.
func (s *Session) RemainingDisplay() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.timer.display()
}

func toValidationError(err error) error {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fields := make(map[string]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields[fieldErr.Field()] = fieldErr.Tag()
	}

	return &ValidationError{Fields: fields}
}
