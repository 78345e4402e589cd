package usecase

import (
	"context"
	"errors"
	"io"
	"testing"

	"hongmove-frontdesk/config"
	"hongmove-frontdesk/internal/delivery/dto"
	"hongmove-frontdesk/internal/delivery/http/middleware"
	"hongmove-frontdesk/internal/domain/entity"
	"hongmove-frontdesk/internal/infrastructure/hongmove"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBookingGateway struct {
	mock.Mock
}

func (m *MockBookingGateway) CreateBooking(ctx context.Context, req hongmove.CreateBookingRequest, agentToken string) (*hongmove.Booking, error) {
	args := m.Called(ctx, req, agentToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hongmove.Booking), args.Error(1)
}

func (m *MockBookingGateway) GetBooking(ctx context.Context, id, token string) (*hongmove.Booking, error) {
	args := m.Called(ctx, id, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hongmove.Booking), args.Error(1)
}

func (m *MockBookingGateway) ListBookings(ctx context.Context, params hongmove.ListBookingsParams, token string) (*hongmove.ListBookingsResponse, error) {
	args := m.Called(ctx, params, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hongmove.ListBookingsResponse), args.Error(1)
}

func (m *MockBookingGateway) UpdateBooking(ctx context.Context, id string, req hongmove.UpdateBookingRequest, token string) (*hongmove.Booking, error) {
	args := m.Called(ctx, id, req, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hongmove.Booking), args.Error(1)
}

func (m *MockBookingGateway) CancelBooking(ctx context.Context, id, reason, token string) error {
	args := m.Called(ctx, id, reason, token)
	return args.Error(0)
}

func (m *MockBookingGateway) ResendBookingEmail(ctx context.Context, id, token string) (*hongmove.ResendEmailResult, error) {
	args := m.Called(ctx, id, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hongmove.ResendEmailResult), args.Error(1)
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestBookingUsecase(gateway *MockBookingGateway, agentToken, adminToken string) BookingUsecase {
	return NewBookingUsecase(quietLogger(), gateway, config.HongmoveConfig{
		AgentToken: agentToken,
		AdminToken: adminToken,
	})
}

func strPtr(s string) *string { return &s }

func TestCreateBooking_Success(t *testing.T) {
	gateway := new(MockBookingGateway)
	uc := newTestBookingUsecase(gateway, "agent", "admin")

	expected := hongmove.CreateBookingRequest{
		PassengerName:   "Somchai",
		PassengerEmail:  "somchai@example.com",
		PassengerPhone:  "0812345678",
		PickupLocation:  "Suvarnabhumi Airport",
		DropoffLocation: "Wat Pho",
		PickupTime:      "2026-11-01T10:00:00+07:00",
		PickupTimezone:  "Asia/Bangkok",
	}
	gateway.On("CreateBooking", mock.Anything, expected, "agent").
		Return(&hongmove.Booking{BookingID: "bk_1", BookingNumber: "HM-001"}, nil)

	resp, err := uc.CreateBooking(context.Background(), &dto.CreateBookingRequest{
		PassengerName:   "Somchai",
		Phone:           "0812345678",
		Email:           "somchai@example.com",
		PickupLocation:  "Suvarnabhumi Airport",
		DropoffLocation: "Wat Pho",
		TravelDateTime:  "2026-11-01T10:00:00+07:00",
	})

	require.NoError(t, err)
	assert.Equal(t, "bk_1", resp.ID)
	assert.Equal(t, "pending", resp.JobStatus)
	gateway.AssertExpectations(t)
}

func TestCreateBooking_WithoutAgentToken(t *testing.T) {
	gateway := new(MockBookingGateway)
	uc := newTestBookingUsecase(gateway, "", "")

	gateway.On("CreateBooking", mock.Anything, mock.Anything, "").
		Return(&hongmove.Booking{ID: "b1"}, nil)

	_, err := uc.CreateBooking(context.Background(), &dto.CreateBookingRequest{})
	require.NoError(t, err)
	gateway.AssertExpectations(t)
}

func TestCreateBooking_UpstreamError(t *testing.T) {
	gateway := new(MockBookingGateway)
	uc := newTestBookingUsecase(gateway, "", "")

	apiErr := &hongmove.APIError{Code: "VALIDATION_ERROR", Message: "pickup_time is in the past", StatusCode: 400}
	gateway.On("CreateBooking", mock.Anything, mock.Anything, "").Return(nil, apiErr)

	resp, err := uc.CreateBooking(context.Background(), &dto.CreateBookingRequest{})
	assert.Nil(t, resp)

	got, ok := hongmove.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "pickup_time is in the past", got.Message)
}

func TestAdminOperations_RequireToken(t *testing.T) {
	gateway := new(MockBookingGateway)
	uc := newTestBookingUsecase(gateway, "agent", " ")
	ctx := context.Background()

	_, err := uc.ListBookings(ctx, dto.ListBookingsQuery{Page: 1, Limit: 20})
	assert.ErrorIs(t, err, ErrAdminTokenMissing)

	_, err = uc.GetBooking(ctx, "b1")
	assert.ErrorIs(t, err, ErrAdminTokenMissing)

	_, err = uc.UpdateBooking(ctx, "b1", &dto.UpdateBookingRequest{Note: strPtr("x")})
	assert.ErrorIs(t, err, ErrAdminTokenMissing)

	assert.ErrorIs(t, uc.CancelBooking(ctx, "b1", ""), ErrAdminTokenMissing)

	_, err = uc.ResendBookingEmail(ctx, "b1")
	assert.ErrorIs(t, err, ErrAdminTokenMissing)

	gateway.AssertNotCalled(t, "ListBookings", mock.Anything, mock.Anything, mock.Anything)
	gateway.AssertNotCalled(t, "GetBooking", mock.Anything, mock.Anything, mock.Anything)
}

func TestListBookings_PassesFiltersAndDerivesPagination(t *testing.T) {
	gateway := new(MockBookingGateway)
	uc := newTestBookingUsecase(gateway, "", "admin")

	params := hongmove.ListBookingsParams{Date: "2026-11-01", PaymentStatus: "unpaid", Page: 2, Limit: 10}
	gateway.On("ListBookings", mock.Anything, params, "admin").
		Return(&hongmove.ListBookingsResponse{Bookings: []hongmove.Booking{{ID: "1"}, {ID: "2"}}}, nil)

	resp, err := uc.ListBookings(context.Background(), dto.ListBookingsQuery{
		Date:          "2026-11-01",
		PaymentStatus: "unpaid",
		Page:          2,
		Limit:         10,
	})

	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 2)
	assert.Equal(t, dto.PaginationResponse{Total: 2, Page: 2, Limit: 10, TotalPages: 1}, resp.Pagination)
	gateway.AssertExpectations(t)
}

func TestGetBooking_WrapsUpstreamError(t *testing.T) {
	gateway := new(MockBookingGateway)
	uc := newTestBookingUsecase(gateway, "", "admin")

	gateway.On("GetBooking", mock.Anything, "HM-404", "admin").
		Return(nil, &hongmove.APIError{Code: hongmove.CodeBookingNotFound, Message: "Booking not found", StatusCode: 404})

	_, err := uc.GetBooking(context.Background(), "HM-404")
	apiErr, ok := hongmove.AsAPIError(err)
	require.True(t, ok)
	assert.True(t, apiErr.IsNotFound())
}

func TestUpdateBooking_EmptyPatch(t *testing.T) {
	gateway := new(MockBookingGateway)
	uc := newTestBookingUsecase(gateway, "", "admin")

	_, err := uc.UpdateBooking(context.Background(), "b1", &dto.UpdateBookingRequest{})
	assert.ErrorIs(t, err, ErrNoFieldsToUpdate)
	gateway.AssertNotCalled(t, "UpdateBooking", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateBooking_Success(t *testing.T) {
	gateway := new(MockBookingGateway)
	uc := newTestBookingUsecase(gateway, "", "admin")

	gateway.On("UpdateBooking", mock.Anything, "b1", hongmove.UpdateBookingRequest{PassengerNotes: strPtr("")}, "admin").
		Return(&hongmove.Booking{ID: "b1", Status: strPtr("confirmed")}, nil)

	resp, err := uc.UpdateBooking(context.Background(), "b1", &dto.UpdateBookingRequest{Note: strPtr("")})
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.JobStatus)
	assert.Equal(t, "ยืนยันแล้ว", resp.JobStatusLabel)
	gateway.AssertExpectations(t)
}

func TestCancelBooking(t *testing.T) {
	gateway := new(MockBookingGateway)
	uc := newTestBookingUsecase(gateway, "", "admin")

	gateway.On("CancelBooking", mock.Anything, "b1", "No-show", "admin").Return(nil).Once()
	gateway.On("CancelBooking", mock.Anything, "b2", "No-show", "admin").Return(errors.New("boom")).Once()

	require.NoError(t, uc.CancelBooking(context.Background(), "b1", "No-show"))

	err := uc.CancelBooking(context.Background(), "b2", "No-show")
	require.Error(t, err)
	_, ok := hongmove.AsAPIError(err)
	assert.False(t, ok)
	gateway.AssertExpectations(t)
}

func TestResendBookingEmail(t *testing.T) {
	gateway := new(MockBookingGateway)
	uc := newTestBookingUsecase(gateway, "", "admin")

	gateway.On("ResendBookingEmail", mock.Anything, "b1", "admin").
		Return(&hongmove.ResendEmailResult{Sent: true, SentAt: "2026-11-01T03:00:00Z"}, nil)

	resp, err := uc.ResendBookingEmail(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, &dto.ResendEmailResponse{Sent: true, SentAt: "2026-11-01T03:00:00Z"}, resp)
}

func TestBookingLogsCarryRequestID(t *testing.T) {
	log, hook := logtest.NewNullLogger()
	gateway := new(MockBookingGateway)
	uc := NewBookingUsecase(log, gateway, config.HongmoveConfig{AdminToken: "admin"})

	gateway.On("GetBooking", mock.Anything, "b1", "admin").
		Return(nil, &hongmove.APIError{Code: hongmove.CodeAPIError, Message: "API returned 500", StatusCode: 500})
	gateway.On("GetBooking", mock.Anything, "missing", "admin").
		Return(nil, &hongmove.APIError{Code: hongmove.CodeBookingNotFound, Message: "Booking not found", StatusCode: 404})

	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "req-42")

	_, err := uc.GetBooking(ctx, "b1")
	require.Error(t, err)
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "req-42", entry.Data["request_id"])

	_, err = uc.GetBooking(ctx, "missing")
	require.Error(t, err)
	entry = hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "req-42", entry.Data["request_id"])
	assert.Equal(t, "missing", entry.Data["booking_id"])

	hook.Reset()
	_, err = uc.GetBooking(context.Background(), "b1")
	require.Error(t, err)
	require.NotNil(t, hook.LastEntry())
	assert.NotContains(t, hook.LastEntry().Data, "request_id")
}

func TestGetBooking_WarnsOnUnknownStatuses(t *testing.T) {
	log, hook := logtest.NewNullLogger()
	gateway := new(MockBookingGateway)
	uc := NewBookingUsecase(log, gateway, config.HongmoveConfig{AdminToken: "admin"})

	gateway.On("GetBooking", mock.Anything, "b1", "admin").
		Return(&hongmove.Booking{ID: "b1", Status: strPtr("driver_assigned"), PaymentStatus: strPtr("refunded")}, nil)

	resp, err := uc.GetBooking(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, "driver_assigned", resp.JobStatus)

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, logrus.WarnLevel, entries[0].Level)
	assert.Equal(t, entity.JobStatus("driver_assigned"), entries[0].Data["job_status"])
	assert.Equal(t, entity.PaymentStatus("refunded"), entries[1].Data["payment_status"])

	hook.Reset()
	gateway.On("GetBooking", mock.Anything, "b2", "admin").
		Return(&hongmove.Booking{ID: "b2", Status: strPtr("confirmed"), PaymentStatus: strPtr("paid")}, nil)
	_, err = uc.GetBooking(context.Background(), "b2")
	require.NoError(t, err)
	assert.Empty(t, hook.AllEntries())
}
