// Package booking holds the HTTP client for the external catalog/booking
// backend. Payloads mirror the backend's wire contracts; note the reserved
// seat listing uses "column" where the rest of the API says "col".
package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/metinatakli/movie-booking-client/internal/domain"
	"github.com/shopspring/decimal"
)

const defaultTimeout = 10 * time.Second

type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

type showtimeResponse struct {
	Data struct {
		ID          int             `json:"id"`
		TheaterID   int             `json:"theater_id"`
		HallID      int             `json:"hall_id"`
		MovieTitle  string          `json:"movie_title"`
		TheaterName string          `json:"theater_name"`
		PriceAmount decimal.Decimal `json:"price_amount"`
	} `json:"data"`
}

func (c *Client) Showtime(ctx context.Context, showtimeID int) (*domain.Showtime, error) {
	var resp showtimeResponse

	url := fmt.Sprintf("%s/api/v6/showtimes/%d", c.baseURL, showtimeID)
	if err := c.getJSON(ctx, url, &resp); err != nil {
		return nil, err
	}

	return &domain.Showtime{
		ID:           resp.Data.ID,
		TheaterID:    resp.Data.TheaterID,
		HallID:       resp.Data.HallID,
		MovieTitle:   resp.Data.MovieTitle,
		TheaterName:  resp.Data.TheaterName,
		PricePerSeat: resp.Data.PriceAmount,
	}, nil
}

type hallResponse struct {
	Data struct {
		SeatLayout struct {
			Rows    int `json:"rows"`
			Columns int `json:"columns"`
		} `json:"seat_layout"`
	} `json:"data"`
}

func (c *Client) HallLayout(ctx context.Context, theaterID, hallID int) (domain.HallLayout, error) {
	var resp hallResponse

	url := fmt.Sprintf("%s/api/v6/theaters/%d/halls/%d", c.baseURL, theaterID, hallID)
	if err := c.getJSON(ctx, url, &resp); err != nil {
		return domain.HallLayout{}, err
	}

	return domain.HallLayout{
		Rows:    resp.Data.SeatLayout.Rows,
		Columns: resp.Data.SeatLayout.Columns,
	}, nil
}

type reservedSeatsResponse struct {
	Data []struct {
		Row    int `json:"row"`
		Column int `json:"column"`
	} `json:"data"`
}

func (c *Client) ReservedSeats(ctx context.Context, showtimeID int) ([]domain.Seat, error) {
	var resp reservedSeatsResponse

	url := fmt.Sprintf("%s/api/v6/showtimes/%d/seats", c.baseURL, showtimeID)
	if err := c.getJSON(ctx, url, &resp); err != nil {
		return nil, err
	}

	seats := make([]domain.Seat, len(resp.Data))
	for i, v := range resp.Data {
		seats[i] = domain.Seat{Row: v.Row, Col: v.Column}
	}

	return seats, nil
}

type holdRequest struct {
	ShowtimeID int           `json:"showtimeId"`
	Seats      []domain.Seat `json:"seats"`
}

type holdResponse struct {
	Success bool `json:"success"`
}

// RequestHold asks the backend for a temporary lock on the given seats. A
// false result means at least one seat is no longer free server-side; the
// attempt is terminal and is never retried here.
func (c *Client) RequestHold(ctx context.Context, showtimeID int, seats []domain.Seat) (bool, error) {
	body, err := json.Marshal(holdRequest{ShowtimeID: showtimeID, Seats: seats})
	if err != nil {
		return false, err
	}

	url := fmt.Sprintf("%s/api/temp-lock", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return false, err
	}

	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("temp-lock request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return false, fmt.Errorf("temp-lock request returned unexpected status: %d", res.StatusCode)
	}

	var resp holdResponse
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		return false, fmt.Errorf("failed to decode temp-lock response: %w", err)
	}

	return resp.Success, nil
}

func (c *Client) getJSON(ctx context.Context, url string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to booking backend failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return domain.ErrRecordNotFound
	}

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("booking backend returned unexpected status: %d", res.StatusCode)
	}

	if err := json.NewDecoder(res.Body).Decode(dst); err != nil {
		return fmt.Errorf("failed to decode booking backend response: %w", err)
	}

	return nil
}
