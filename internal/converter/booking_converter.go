package converter

import (
	"strings"

	"hongmove-frontdesk/internal/delivery/dto"
	"hongmove-frontdesk/internal/domain/entity"
	"hongmove-frontdesk/internal/infrastructure/hongmove"
)

// CreateRequestToPayload converts a camelCase create request into the upstream payload.
// The note is always sent; a blank timezone becomes the default one.
func CreateRequestToPayload(req *dto.CreateBookingRequest) hongmove.CreateBookingRequest {
	timezone := strings.TrimSpace(req.Timezone)
	if timezone == "" {
		timezone = entity.DefaultTimezone
	}

	return hongmove.CreateBookingRequest{
		PassengerName:   req.PassengerName,
		PassengerEmail:  req.Email,
		PassengerPhone:  req.Phone,
		PickupLocation:  req.PickupLocation,
		DropoffLocation: req.DropoffLocation,
		PickupTime:      req.TravelDateTime,
		PickupTimezone:  timezone,
		FlightNumber:    strings.TrimSpace(req.FlightNumber),
		PassengerNotes:  req.Note,
		Source:          strings.TrimSpace(req.Source),
	}
}

// UpdateRequestToPayload converts a partial update. Fields the caller did not send stay nil.
func UpdateRequestToPayload(req *dto.UpdateBookingRequest) hongmove.UpdateBookingRequest {
	return hongmove.UpdateBookingRequest{
		PassengerName:   req.PassengerName,
		PassengerEmail:  req.Email,
		PassengerPhone:  req.Phone,
		PickupLocation:  req.PickupLocation,
		DropoffLocation: req.DropoffLocation,
		PickupTime:      req.TravelDateTime,
		PickupTimezone:  req.Timezone,
		FlightNumber:    req.FlightNumber,
		PassengerNotes:  req.Note,
	}
}

// APIBookingToEntity converts an upstream booking into the internal model.
// It never fails: absent fields get their defaults and unknown statuses pass through.
func APIBookingToEntity(b *hongmove.Booking) entity.Booking {
	if b == nil {
		return entity.Booking{
			Timezone:      entity.DefaultTimezone,
			PaymentStatus: entity.PaymentStatusUnpaid,
			JobStatus:     entity.JobStatusPending,
		}
	}

	id := b.ID
	if id == "" {
		id = b.BookingID
	}

	timezone := b.PickupTimezone
	if strings.TrimSpace(timezone) == "" {
		timezone = entity.DefaultTimezone
	}

	jobStatus := entity.JobStatusPending
	if s := deref(b.Status); strings.TrimSpace(s) != "" {
		jobStatus = entity.JobStatus(s)
	}

	paymentStatus := entity.PaymentStatusUnpaid
	if s := deref(b.PaymentStatus); strings.TrimSpace(s) != "" {
		paymentStatus = entity.PaymentStatus(s)
	}

	return entity.Booking{
		ID:              id,
		BookingNumber:   b.BookingNumber,
		PassengerName:   b.PassengerName,
		Phone:           b.PassengerPhone,
		Email:           b.PassengerEmail,
		FlightNumber:    deref(b.FlightNumber),
		PickupLocation:  b.PickupLocation,
		DropoffLocation: b.DropoffLocation,
		TravelDateTime:  b.PickupTime,
		Timezone:        timezone,
		PaymentStatus:   paymentStatus,
		JobStatus:       jobStatus,
		FinalMeterPrice: b.FinalMeterPrice,
		OmiseChargeID:   deref(b.OmiseChargeID),
		Note:            deref(b.PassengerNotes),
		EmailSentAt:     deref(b.EmailSentAt),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// APIBookingsToEntities converts a list, preserving order. The result is never nil.
func APIBookingsToEntities(bookings []hongmove.Booking) []entity.Booking {
	out := make([]entity.Booking, 0, len(bookings))
	for i := range bookings {
		out = append(out, APIBookingToEntity(&bookings[i]))
	}
	return out
}

// BookingToResponse converts a Booking entity to BookingResponse DTO
func BookingToResponse(booking *entity.Booking) *dto.BookingResponse {
	if booking == nil {
		return nil
	}

	response := &dto.BookingResponse{
		ID:                 booking.ID,
		BookingNumber:      booking.BookingNumber,
		PassengerName:      booking.PassengerName,
		Phone:              booking.Phone,
		Email:              booking.Email,
		FlightNumber:       booking.FlightNumber,
		PickupLocation:     booking.PickupLocation,
		DropoffLocation:    booking.DropoffLocation,
		TravelDateTime:     booking.TravelDateTime,
		Timezone:           booking.Timezone,
		PaymentStatus:      string(booking.PaymentStatus),
		PaymentStatusLabel: booking.PaymentStatus.Label(),
		JobStatus:          string(booking.JobStatus),
		JobStatusLabel:     booking.JobStatus.Label(),
		OmiseChargeID:      booking.OmiseChargeID,
		Note:               booking.Note,
		EmailSentAt:        booking.EmailSentAt,
		CreatedAt:          booking.CreatedAt,
		UpdatedAt:          booking.UpdatedAt,
	}

	// Price stays absent until the trip is metered
	if booking.HasFinalPrice() {
		price := booking.FinalMeterPrice.InexactFloat64()
		response.FinalMeterPrice = &price
	}

	return response
}

// BookingsToResponses converts a slice of Booking entities to slice of BookingResponse DTOs
func BookingsToResponses(bookings []entity.Booking) []dto.BookingResponse {
	responses := make([]dto.BookingResponse, len(bookings))
	for i := range bookings {
		responses[i] = *BookingToResponse(&bookings[i])
	}
	return responses
}

// APIListToResponse converts an upstream page. Missing pagination is derived from
// the page that was requested.
func APIListToResponse(list *hongmove.ListBookingsResponse, page, limit int) dto.BookingListResponse {
	var bookings []hongmove.Booking
	var pagination *hongmove.Pagination
	if list != nil {
		bookings = list.Bookings
		pagination = list.Pagination
	}

	entities := APIBookingsToEntities(bookings)
	response := dto.BookingListResponse{
		Bookings: BookingsToResponses(entities),
	}

	if pagination != nil {
		response.Pagination = dto.PaginationResponse{
			Total:      pagination.Total,
			Page:       pagination.Page,
			Limit:      pagination.Limit,
			TotalPages: pagination.TotalPages,
		}
		return response
	}

	total := len(entities)
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	response.Pagination = dto.PaginationResponse{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
	return response
}

// ResendResultToResponse converts the resend-email result
func ResendResultToResponse(result *hongmove.ResendEmailResult) dto.ResendEmailResponse {
	if result == nil {
		return dto.ResendEmailResponse{}
	}
	return dto.ResendEmailResponse{Sent: result.Sent, SentAt: result.SentAt}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
