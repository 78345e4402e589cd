package hongmove

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// CreateBookingRequest is the POST /bookings payload.
// PassengerNotes is always sent, an empty string when the passenger left no note.
type CreateBookingRequest struct {
	PassengerName   string `json:"passenger_name"`
	PassengerEmail  string `json:"passenger_email"`
	PassengerPhone  string `json:"passenger_phone"`
	PickupLocation  string `json:"pickup_location"`
	DropoffLocation string `json:"dropoff_location"`
	PickupTime      string `json:"pickup_time"`
	PickupTimezone  string `json:"pickup_timezone"`
	FlightNumber    string `json:"flight_number,omitempty"`
	PassengerNotes  string `json:"passenger_notes"`
	Source          string `json:"source,omitempty"`
}

// UpdateBookingRequest is the PATCH /bookings/:id payload. Nil fields are not sent
// so that upstream keeps its current values.
type UpdateBookingRequest struct {
	PassengerName   *string `json:"passenger_name,omitempty"`
	PassengerEmail  *string `json:"passenger_email,omitempty"`
	PassengerPhone  *string `json:"passenger_phone,omitempty"`
	PickupLocation  *string `json:"pickup_location,omitempty"`
	DropoffLocation *string `json:"dropoff_location,omitempty"`
	PickupTime      *string `json:"pickup_time,omitempty"`
	PickupTimezone  *string `json:"pickup_timezone,omitempty"`
	FlightNumber    *string `json:"flight_number,omitempty"`
	PassengerNotes  *string `json:"passenger_notes,omitempty"`
}

// IsEmpty reports whether the patch carries no field at all
func (r *UpdateBookingRequest) IsEmpty() bool {
	return r.PassengerName == nil && r.PassengerEmail == nil && r.PassengerPhone == nil &&
		r.PickupLocation == nil && r.DropoffLocation == nil && r.PickupTime == nil &&
		r.PickupTimezone == nil && r.FlightNumber == nil && r.PassengerNotes == nil
}

type cancelBookingRequest struct {
	CancellationReason string `json:"cancellation_reason"`
}

// Booking is the upstream booking record. Every field is optional on the wire;
// the converter decides what an absent field means.
type Booking struct {
	ID              string           `json:"id,omitempty"`
	BookingID       string           `json:"booking_id,omitempty"`
	BookingNumber   string           `json:"booking_number,omitempty"`
	PassengerName   string           `json:"passenger_name,omitempty"`
	PassengerEmail  string           `json:"passenger_email,omitempty"`
	PassengerPhone  string           `json:"passenger_phone,omitempty"`
	FlightNumber    *string          `json:"flight_number,omitempty"`
	PickupLocation  string           `json:"pickup_location,omitempty"`
	DropoffLocation string           `json:"dropoff_location,omitempty"`
	PickupTime      string           `json:"pickup_time,omitempty"`
	PickupTimezone  string           `json:"pickup_timezone,omitempty"`
	PassengerNotes  *string          `json:"passenger_notes,omitempty"`
	Status          *string          `json:"status,omitempty"`
	PaymentStatus   *string          `json:"payment_status,omitempty"`
	FinalMeterPrice *decimal.Decimal `json:"final_meter_price,omitempty"`
	OmiseChargeID   *string          `json:"omise_charge_id,omitempty"`
	EmailSentAt     *string          `json:"email_sent_at,omitempty"`
	CreatedAt       string           `json:"created_at,omitempty"`
	UpdatedAt       string           `json:"updated_at,omitempty"`
}

type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// ListBookingsResponse is the data of GET /bookings. Pagination is nil when upstream omits it.
type ListBookingsResponse struct {
	Bookings   []Booking   `json:"bookings"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// ListBookingsParams are the optional GET /bookings query parameters.
// Zero values are not sent.
type ListBookingsParams struct {
	Date          string
	Status        string
	PaymentStatus string
	BookingNumber string
	PassengerName string
	FlightNumber  string
	Page          int
	Limit         int
}

// ResendEmailResult is the data of POST /bookings/:id/resend-email.
type ResendEmailResult struct {
	Sent   bool   `json:"sent"`
	SentAt string `json:"sent_at,omitempty"`
}

// UnmarshalJSON accepts both the documented email_sent flag and the shorter sent flag.
func (r *ResendEmailResult) UnmarshalJSON(data []byte) error {
	var raw struct {
		Sent      *bool  `json:"sent"`
		EmailSent *bool  `json:"email_sent"`
		SentAt    string `json:"sent_at"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.SentAt = raw.SentAt
	switch {
	case raw.EmailSent != nil:
		r.Sent = *raw.EmailSent
	case raw.Sent != nil:
		r.Sent = *raw.Sent
	default:
		r.Sent = false
	}
	return nil
}

// envelope is the response wrapper every upstream endpoint uses.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   json.RawMessage `json:"error,omitempty"`
}
