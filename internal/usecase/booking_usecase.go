package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hongmove-frontdesk/config"
	"hongmove-frontdesk/internal/converter"
	"hongmove-frontdesk/internal/delivery/dto"
	"hongmove-frontdesk/internal/delivery/http/middleware"
	"hongmove-frontdesk/internal/domain/entity"
	"hongmove-frontdesk/internal/infrastructure/hongmove"

	"github.com/sirupsen/logrus"
)

var (
	ErrAdminTokenMissing = errors.New("admin API key is required")
	ErrNoFieldsToUpdate  = errors.New("no fields to update")
)

// BookingGateway is the upstream booking API as seen by the booking usecase.
// *hongmove.Client satisfies it.
type BookingGateway interface {
	CreateBooking(ctx context.Context, req hongmove.CreateBookingRequest, agentToken string) (*hongmove.Booking, error)
	GetBooking(ctx context.Context, id, token string) (*hongmove.Booking, error)
	ListBookings(ctx context.Context, params hongmove.ListBookingsParams, token string) (*hongmove.ListBookingsResponse, error)
	UpdateBooking(ctx context.Context, id string, req hongmove.UpdateBookingRequest, token string) (*hongmove.Booking, error)
	CancelBooking(ctx context.Context, id, reason, token string) error
	ResendBookingEmail(ctx context.Context, id, token string) (*hongmove.ResendEmailResult, error)
}

type BookingUsecase interface {
	CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error)
	ListBookings(ctx context.Context, query dto.ListBookingsQuery) (*dto.BookingListResponse, error)
	GetBooking(ctx context.Context, id string) (*dto.BookingResponse, error)
	UpdateBooking(ctx context.Context, id string, req *dto.UpdateBookingRequest) (*dto.BookingResponse, error)
	CancelBooking(ctx context.Context, id, reason string) error
	ResendBookingEmail(ctx context.Context, id string) (*dto.ResendEmailResponse, error)
}

type bookingUsecase struct {
	log        *logrus.Logger
	gateway    BookingGateway
	agentToken string
	adminToken string
}

func NewBookingUsecase(log *logrus.Logger, gateway BookingGateway, cfg config.HongmoveConfig) BookingUsecase {
	return &bookingUsecase{
		log:        log,
		gateway:    gateway,
		agentToken: strings.TrimSpace(cfg.AgentToken),
		adminToken: strings.TrimSpace(cfg.AdminToken),
	}
}

// CreateBooking forwards a customer booking. The agent token is optional.
func (u *bookingUsecase) CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	payload := converter.CreateRequestToPayload(req)

	created, err := u.gateway.CreateBooking(ctx, payload, u.agentToken)
	if err != nil {
		u.logger(ctx).Warnf("Failed to create booking for pickup %q: %v", req.PickupLocation, err)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	booking := converter.APIBookingToEntity(created)
	u.checkStatuses(ctx, &booking)
	u.logger(ctx).WithField("booking_number", booking.BookingNumber).Info("Booking created")
	return converter.BookingToResponse(&booking), nil
}

func (u *bookingUsecase) ListBookings(ctx context.Context, query dto.ListBookingsQuery) (*dto.BookingListResponse, error) {
	if u.adminToken == "" {
		return nil, ErrAdminTokenMissing
	}

	list, err := u.gateway.ListBookings(ctx, hongmove.ListBookingsParams{
		Date:          query.Date,
		Status:        query.Status,
		PaymentStatus: query.PaymentStatus,
		BookingNumber: query.BookingNumber,
		PassengerName: query.PassengerName,
		FlightNumber:  query.FlightNumber,
		Page:          query.Page,
		Limit:         query.Limit,
	}, u.adminToken)
	if err != nil {
		u.logger(ctx).Warnf("Failed to list bookings: %v", err)
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	response := converter.APIListToResponse(list, query.Page, query.Limit)
	return &response, nil
}

// GetBooking looks a booking up by id or booking number.
func (u *bookingUsecase) GetBooking(ctx context.Context, id string) (*dto.BookingResponse, error) {
	if u.adminToken == "" {
		return nil, ErrAdminTokenMissing
	}

	found, err := u.gateway.GetBooking(ctx, id, u.adminToken)
	if err != nil {
		if apiErr, ok := hongmove.AsAPIError(err); ok && apiErr.IsNotFound() {
			u.logger(ctx).WithField("booking_id", id).Info("Booking not found")
		} else {
			u.logger(ctx).Warnf("Failed to get booking %s: %v", id, err)
		}
		return nil, fmt.Errorf("get booking %s: %w", id, err)
	}

	booking := converter.APIBookingToEntity(found)
	u.checkStatuses(ctx, &booking)
	return converter.BookingToResponse(&booking), nil
}

// UpdateBooking applies a partial update. An empty patch never reaches upstream.
func (u *bookingUsecase) UpdateBooking(ctx context.Context, id string, req *dto.UpdateBookingRequest) (*dto.BookingResponse, error) {
	if u.adminToken == "" {
		return nil, ErrAdminTokenMissing
	}

	payload := converter.UpdateRequestToPayload(req)
	if payload.IsEmpty() {
		return nil, ErrNoFieldsToUpdate
	}

	updated, err := u.gateway.UpdateBooking(ctx, id, payload, u.adminToken)
	if err != nil {
		u.logger(ctx).Warnf("Failed to update booking %s: %v", id, err)
		return nil, fmt.Errorf("update booking %s: %w", id, err)
	}

	booking := converter.APIBookingToEntity(updated)
	u.checkStatuses(ctx, &booking)
	return converter.BookingToResponse(&booking), nil
}

// CancelBooking cancels a booking. A blank reason gets the client's default.
func (u *bookingUsecase) CancelBooking(ctx context.Context, id, reason string) error {
	if u.adminToken == "" {
		return ErrAdminTokenMissing
	}

	if err := u.gateway.CancelBooking(ctx, id, reason, u.adminToken); err != nil {
		u.logger(ctx).Warnf("Failed to cancel booking %s: %v", id, err)
		return fmt.Errorf("cancel booking %s: %w", id, err)
	}

	u.logger(ctx).WithField("booking_id", id).Info("Booking cancelled")
	return nil
}

func (u *bookingUsecase) ResendBookingEmail(ctx context.Context, id string) (*dto.ResendEmailResponse, error) {
	if u.adminToken == "" {
		return nil, ErrAdminTokenMissing
	}

	result, err := u.gateway.ResendBookingEmail(ctx, id, u.adminToken)
	if err != nil {
		u.logger(ctx).Warnf("Failed to resend email for booking %s: %v", id, err)
		return nil, fmt.Errorf("resend booking email %s: %w", id, err)
	}

	response := converter.ResendResultToResponse(result)
	return &response, nil
}

// logger tags entries with the id of the request being served.
func (u *bookingUsecase) logger(ctx context.Context) *logrus.Entry {
	entry := logrus.NewEntry(u.log)
	if requestID, ok := middleware.GetRequestIDFromContext(ctx); ok {
		entry = entry.WithField("request_id", requestID)
	}
	return entry
}

// checkStatuses flags status values upstream added without notice. They are
// passed through with the generic label.
func (u *bookingUsecase) checkStatuses(ctx context.Context, booking *entity.Booking) {
	if !booking.JobStatus.IsKnown() {
		u.logger(ctx).WithFields(logrus.Fields{
			"booking_id": booking.ID,
			"job_status": booking.JobStatus,
		}).Warn("Unknown job status from Hongmove API")
	}
	if !booking.PaymentStatus.IsKnown() {
		u.logger(ctx).WithFields(logrus.Fields{
			"booking_id":     booking.ID,
			"payment_status": booking.PaymentStatus,
		}).Warn("Unknown payment status from Hongmove API")
	}
}
