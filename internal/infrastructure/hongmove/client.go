package hongmove

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"hongmove-frontdesk/config"

	"github.com/sirupsen/logrus"
)

// DefaultCancellationReason is sent when the caller gives no reason for a cancellation.
const DefaultCancellationReason = "Cancelled by admin"

// maxResponseBytes bounds how much of an upstream body is read.
const maxResponseBytes = 4 << 20

// Client talks to the Hongmove booking API. It is safe for concurrent use and holds
// no state besides its configuration. It never retries.
//
// Every operation returns either a value and a nil error, or a nil value and an
// *APIError with Code NETWORK_ERROR or API_ERROR (or the code upstream sent).
type Client struct {
	baseURL string
	http    *http.Client
	log     *logrus.Logger
}

// NewClient builds a client from the process configuration. A nil httpClient gets
// a client with the configured timeout.
func NewClient(cfg config.HongmoveConfig, httpClient *http.Client, log *logrus.Logger) *Client {
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		base = config.DefaultHongmoveURL
	}
	return &Client{
		baseURL: base,
		http:    httpClient,
		log:     log,
	}
}

// CreateBooking creates a booking. The agent token is optional: customer bookings
// from the public form are accepted unauthenticated.
func (c *Client) CreateBooking(ctx context.Context, req CreateBookingRequest, agentToken string) (*Booking, error) {
	data, err := c.do(ctx, http.MethodPost, "/bookings", nil, req, agentToken)
	if err != nil {
		return nil, err
	}
	return decodeBooking(data)
}

// GetBooking fetches one booking by id or booking number.
func (c *Client) GetBooking(ctx context.Context, id, token string) (*Booking, error) {
	data, err := c.do(ctx, http.MethodGet, bookingPath(id), nil, nil, token)
	if err != nil {
		return nil, err
	}
	return decodeBooking(data)
}

// ListBookings returns one page of bookings. Pagination defaults are the caller's concern.
func (c *Client) ListBookings(ctx context.Context, params ListBookingsParams, token string) (*ListBookingsResponse, error) {
	data, err := c.do(ctx, http.MethodGet, "/bookings", params.values(), nil, token)
	if err != nil {
		return nil, err
	}

	var out ListBookingsResponse
	if len(data) > 0 && string(data) != "null" {
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, malformed(err)
		}
	}
	if out.Bookings == nil {
		out.Bookings = []Booking{}
	}
	return &out, nil
}

// UpdateBooking applies a partial update.
func (c *Client) UpdateBooking(ctx context.Context, id string, req UpdateBookingRequest, token string) (*Booking, error) {
	data, err := c.do(ctx, http.MethodPatch, bookingPath(id), nil, req, token)
	if err != nil {
		return nil, err
	}
	return decodeBooking(data)
}

// CancelBooking moves a booking to its terminal cancelled state. There is no way back.
func (c *Client) CancelBooking(ctx context.Context, id, reason, token string) error {
	if strings.TrimSpace(reason) == "" {
		reason = DefaultCancellationReason
	}
	_, err := c.do(ctx, http.MethodDelete, bookingPath(id), nil, cancelBookingRequest{CancellationReason: reason}, token)
	return err
}

// ResendBookingEmail asks upstream to send the confirmation email again.
func (c *Client) ResendBookingEmail(ctx context.Context, id, token string) (*ResendEmailResult, error) {
	data, err := c.do(ctx, http.MethodPost, bookingPath(id)+"/resend-email", nil, nil, token)
	if err != nil {
		return nil, err
	}

	var out ResendEmailResult
	if len(data) > 0 && string(data) != "null" {
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, malformed(err)
		}
	}
	return &out, nil
}

// do sends one request and unwraps the response envelope. It returns the raw data
// member on success and an *APIError on every failure.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, token string) (json.RawMessage, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, &APIError{Code: CodeAPIError, Message: "Failed to encode Hongmove API request", cause: err}
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, &APIError{Code: CodeAPIError, Message: "Failed to build Hongmove API request", cause: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if t := strings.TrimSpace(token); t != "" {
		req.Header.Set("Authorization", "Bearer "+t)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.WithFields(logrus.Fields{
			"method": method,
			"path":   path,
		}).Errorf("Hongmove request failed: %v", err)
		return nil, networkError(err, "Failed to connect to Hongmove API")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		c.log.WithFields(logrus.Fields{
			"method": method,
			"path":   path,
		}).Errorf("Hongmove response read failed: %v", err)
		return nil, networkError(err, "Failed to read Hongmove API response")
	}

	fields := logrus.Fields{
		"method":     method,
		"path":       path,
		"status":     resp.StatusCode,
		"latency_ms": time.Since(start).Milliseconds(),
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr *APIError
		if decodeErr != nil {
			apiErr = upstreamError(resp.StatusCode, nil)
		} else {
			apiErr = upstreamError(resp.StatusCode, env.Error)
		}
		c.log.WithFields(fields).WithField("code", apiErr.Code).Warnf("Hongmove API error: %s", apiErr.Message)
		return nil, apiErr
	}

	if decodeErr != nil {
		c.log.WithFields(fields).Warnf("Hongmove API returned malformed body: %v", decodeErr)
		return nil, malformed(decodeErr)
	}

	if !env.Success {
		apiErr := upstreamError(resp.StatusCode, env.Error)
		apiErr.StatusCode = resp.StatusCode
		if len(env.Error) == 0 {
			apiErr.Message = "Hongmove API reported an unsuccessful request"
		}
		c.log.WithFields(fields).WithField("code", apiErr.Code).Warnf("Hongmove API error: %s", apiErr.Message)
		return nil, apiErr
	}

	c.log.WithFields(fields).Debug("Hongmove request completed")
	return env.Data, nil
}

// decodeBooking accepts the booking either directly in data or wrapped as data.booking.
func decodeBooking(data json.RawMessage) (*Booking, error) {
	if len(data) == 0 || string(data) == "null" {
		return &Booking{}, nil
	}

	var wrapped struct {
		Booking *Booking `json:"booking"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, malformed(err)
	}
	if wrapped.Booking != nil {
		return wrapped.Booking, nil
	}

	var booking Booking
	if err := json.Unmarshal(data, &booking); err != nil {
		return nil, malformed(err)
	}
	return &booking, nil
}

func bookingPath(id string) string {
	return "/bookings/" + url.PathEscape(id)
}

func (p ListBookingsParams) values() url.Values {
	q := url.Values{}
	set := func(key, value string) {
		if v := strings.TrimSpace(value); v != "" {
			q.Set(key, v)
		}
	}
	set("date", p.Date)
	set("status", p.Status)
	set("payment_status", p.PaymentStatus)
	set("booking_number", p.BookingNumber)
	set("passenger_name", p.PassengerName)
	set("flight_number", p.FlightNumber)
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	return q
}
