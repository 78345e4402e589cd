package dto

// Request DTOs

// CreateBookingRequest is the camelCase body of POST /api/bookings.
// Field order matters: the first missing required field is the one reported.
type CreateBookingRequest struct {
	PassengerName   string `json:"passengerName" validate:"required"`
	Phone           string `json:"phone" validate:"required"`
	Email           string `json:"email" validate:"required"`
	PickupLocation  string `json:"pickupLocation" validate:"required"`
	DropoffLocation string `json:"dropoffLocation" validate:"required"`
	TravelDateTime  string `json:"travelDateTime" validate:"required"`
	Note            string `json:"note,omitempty"`
	Timezone        string `json:"timezone,omitempty"`
	FlightNumber    string `json:"flightNumber,omitempty"`
	Source          string `json:"source,omitempty"`
}

// UpdateBookingRequest is the PATCH body. Only fields present in the JSON are forwarded.
type UpdateBookingRequest struct {
	PassengerName   *string `json:"passengerName,omitempty" validate:"omitempty,min=1"`
	Phone           *string `json:"phone,omitempty" validate:"omitempty,min=1"`
	Email           *string `json:"email,omitempty" validate:"omitempty,min=1"`
	PickupLocation  *string `json:"pickupLocation,omitempty" validate:"omitempty,min=1"`
	DropoffLocation *string `json:"dropoffLocation,omitempty" validate:"omitempty,min=1"`
	TravelDateTime  *string `json:"travelDateTime,omitempty" validate:"omitempty,min=1"`
	Timezone        *string `json:"timezone,omitempty" validate:"omitempty,min=1"`
	FlightNumber    *string `json:"flightNumber,omitempty"`
	Note            *string `json:"note,omitempty"`
}

type CancelBookingRequest struct {
	CancellationReason string `json:"cancellation_reason,omitempty"`
	Reason             string `json:"reason,omitempty"`
}

// ListBookingsQuery holds the GET /api/bookings filters after defaults are applied.
type ListBookingsQuery struct {
	Date          string
	Status        string
	PaymentStatus string
	BookingNumber string
	PassengerName string
	FlightNumber  string
	Page          int
	Limit         int
}

// Response DTOs

type BookingResponse struct {
	ID                 string   `json:"id"`
	BookingNumber      string   `json:"bookingNumber"`
	PassengerName      string   `json:"passengerName"`
	Phone              string   `json:"phone"`
	Email              string   `json:"email"`
	FlightNumber       string   `json:"flightNumber,omitempty"`
	PickupLocation     string   `json:"pickupLocation"`
	DropoffLocation    string   `json:"dropoffLocation"`
	TravelDateTime     string   `json:"travelDateTime"`
	Timezone           string   `json:"timezone"`
	PaymentStatus      string   `json:"paymentStatus"`
	PaymentStatusLabel string   `json:"paymentStatusLabel"`
	JobStatus          string   `json:"jobStatus"`
	JobStatusLabel     string   `json:"jobStatusLabel"`
	FinalMeterPrice    *float64 `json:"finalMeterPrice,omitempty"`
	OmiseChargeID      string   `json:"omiseChargeId,omitempty"`
	Note               string   `json:"note,omitempty"`
	EmailSentAt        string   `json:"emailSentAt,omitempty"`
	CreatedAt          string   `json:"createdAt"`
	UpdatedAt          string   `json:"updatedAt"`
}

type PaginationResponse struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

type BookingListResponse struct {
	Bookings   []BookingResponse  `json:"bookings"`
	Pagination PaginationResponse `json:"pagination"`
}

type ResendEmailResponse struct {
	Sent   bool   `json:"sent"`
	SentAt string `json:"sentAt,omitempty"`
}
