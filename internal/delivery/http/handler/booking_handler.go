package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"hongmove-frontdesk/internal/delivery/dto"
	"hongmove-frontdesk/internal/infrastructure/hongmove"
	"hongmove-frontdesk/internal/usecase"
	"hongmove-frontdesk/pkg/response"
	"hongmove-frontdesk/pkg/validator"

	"github.com/gorilla/mux"
)

const (
	defaultPage  = 1
	defaultLimit = 20

	// maxBodyBytes caps booking request bodies.
	maxBodyBytes = 64 << 10
)

type BookingHandler struct {
	bookingUsecase usecase.BookingUsecase
	validator      *validator.CustomValidator
}

func NewBookingHandler(bookingUsecase usecase.BookingUsecase, validator *validator.CustomValidator) *BookingHandler {
	return &BookingHandler{
		bookingUsecase: bookingUsecase,
		validator:      validator,
	}
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBookingRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeBodyError(w, err)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		if field, ok := h.validator.MissingField(err); ok {
			response.BadRequest(w, "Missing required field: "+field)
			return
		}
		response.BadRequest(w, h.validator.FirstError(err))
		return
	}

	booking, err := h.bookingUsecase.CreateBooking(r.Context(), &req)
	if err != nil {
		writeUpstreamError(w, err, http.StatusBadRequest, "Failed to create booking")
		return
	}

	response.BookingCreated(w, "Booking created successfully", booking)
}

func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := dto.ListBookingsQuery{
		Date:          q.Get("date"),
		Status:        q.Get("status"),
		PaymentStatus: q.Get("paymentStatus"),
		BookingNumber: q.Get("bookingNumber"),
		PassengerName: q.Get("passengerName"),
		FlightNumber:  q.Get("flightNumber"),
		Page:          positiveInt(q.Get("page"), defaultPage),
		Limit:         positiveInt(q.Get("limit"), defaultLimit),
	}

	bookings, err := h.bookingUsecase.ListBookings(r.Context(), query)
	if err != nil {
		writeUpstreamError(w, err, http.StatusBadRequest, "Failed to fetch bookings")
		return
	}

	response.Success(w, http.StatusOK, "", bookings)
}

func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	booking, err := h.bookingUsecase.GetBooking(r.Context(), id)
	if err != nil {
		writeUpstreamError(w, err, http.StatusNotFound, "Booking not found")
		return
	}

	response.Success(w, http.StatusOK, "", booking)
}

func (h *BookingHandler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req dto.UpdateBookingRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeBodyError(w, err)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, h.validator.FirstError(err))
		return
	}

	booking, err := h.bookingUsecase.UpdateBooking(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, usecase.ErrNoFieldsToUpdate) {
			response.BadRequest(w, "No fields to update")
			return
		}
		writeUpstreamError(w, err, http.StatusBadRequest, "Failed to update booking")
		return
	}

	response.Success(w, http.StatusOK, "", booking)
}

func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	// The body is optional
	var req dto.CancelBookingRequest
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeBodyError(w, err)
		return
	}
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &req); err != nil {
			response.BadRequest(w, "Invalid request body")
			return
		}
	}

	reason := req.CancellationReason
	if reason == "" {
		reason = req.Reason
	}

	if err := h.bookingUsecase.CancelBooking(r.Context(), id, reason); err != nil {
		writeUpstreamError(w, err, http.StatusBadRequest, "Failed to cancel booking")
		return
	}

	response.Success(w, http.StatusOK, "Booking cancelled successfully", nil)
}

func (h *BookingHandler) ResendBookingEmail(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	result, err := h.bookingUsecase.ResendBookingEmail(r.Context(), id)
	if err != nil {
		writeUpstreamError(w, err, http.StatusBadRequest, "Failed to resend booking email")
		return
	}

	response.Success(w, http.StatusOK, "Booking email sent", result)
}

// writeUpstreamError maps a usecase failure to a reply. Upstream rejections get the
// route's status and upstream message; anything unexpected is a bare 500.
func writeBodyError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		response.Error(w, http.StatusRequestEntityTooLarge, "Request body too large")
		return
	}
	response.BadRequest(w, "Invalid request body")
}

func writeUpstreamError(w http.ResponseWriter, err error, upstreamStatus int, fallback string) {
	if errors.Is(err, usecase.ErrAdminTokenMissing) {
		response.InternalServerError(w, "Admin API key is required")
		return
	}

	if apiErr, ok := hongmove.AsAPIError(err); ok {
		message := strings.TrimSpace(apiErr.Message)
		if message == "" {
			message = fallback
		}
		response.Error(w, upstreamStatus, message)
		return
	}

	response.InternalServerError(w, "Internal server error")
}

func positiveInt(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
