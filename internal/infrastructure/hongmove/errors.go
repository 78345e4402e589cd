package hongmove

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

const (
	// CodeNetworkError marks transport failures: DNS, refused connections, timeouts, cancellation.
	CodeNetworkError = "NETWORK_ERROR"
	// CodeAPIError marks responses that upstream rejected or that could not be decoded.
	CodeAPIError = "API_ERROR"
	// CodeBookingNotFound is sent by upstream for an unknown id or booking number.
	CodeBookingNotFound = "BOOKING_NOT_FOUND"
)

// APIError is the single failure shape returned by every Client operation.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
	// StatusCode is the upstream HTTP status, zero for transport failures.
	StatusCode int `json:"-"`

	// cause stays out of Message: transport errors carry the upstream URL.
	cause error
}

func (e *APIError) Error() string {
	msg := e.Message
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("hongmove %s (%d): %s", e.Code, e.StatusCode, msg)
	}
	return fmt.Sprintf("hongmove %s: %s", e.Code, msg)
}

func (e *APIError) Unwrap() error {
	return e.cause
}

// IsNotFound reports whether upstream said the booking does not exist.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound || e.Code == CodeBookingNotFound
}

// AsAPIError unwraps err into an *APIError.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

func networkError(err error, message string) *APIError {
	return &APIError{Code: CodeNetworkError, Message: message, cause: err}
}

func malformed(err error) *APIError {
	return &APIError{Code: CodeAPIError, Message: "Invalid response from Hongmove API", cause: err}
}

// upstreamError builds an APIError from a rejected response. The error field may be a
// structured object, a bare string, or missing entirely.
func upstreamError(status int, raw json.RawMessage) *APIError {
	apiErr := &APIError{
		Code:       CodeAPIError,
		Message:    fmt.Sprintf("API returned %d", status),
		StatusCode: status,
	}

	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return apiErr
	}

	var structured struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	}
	if err := json.Unmarshal(raw, &structured); err == nil {
		if structured.Code != "" {
			apiErr.Code = structured.Code
		}
		if structured.Message != "" {
			apiErr.Message = structured.Message
		}
		apiErr.Details = structured.Details
		return apiErr
	}

	var message string
	if err := json.Unmarshal(raw, &message); err == nil && message != "" {
		apiErr.Message = message
	}
	return apiErr
}
