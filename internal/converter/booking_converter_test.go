package converter

import (
	"encoding/json"
	"testing"

	"hongmove-frontdesk/internal/delivery/dto"
	"hongmove-frontdesk/internal/domain/entity"
	"hongmove-frontdesk/internal/infrastructure/hongmove"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCreateRequestToPayload(t *testing.T) {
	req := &dto.CreateBookingRequest{
		PassengerName:   "Somchai",
		Phone:           "0812345678",
		Email:           "somchai@example.com",
		PickupLocation:  "Suvarnabhumi Airport",
		DropoffLocation: "Wat Pho",
		TravelDateTime:  "2026-11-01T10:00:00+07:00",
	}

	payload := CreateRequestToPayload(req)

	assert.Equal(t, "Somchai", payload.PassengerName)
	assert.Equal(t, "0812345678", payload.PassengerPhone)
	assert.Equal(t, "somchai@example.com", payload.PassengerEmail)
	assert.Equal(t, "2026-11-01T10:00:00+07:00", payload.PickupTime)
	assert.Equal(t, entity.DefaultTimezone, payload.PickupTimezone)

	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.Equal(t, "", fields["passenger_notes"])
	assert.NotContains(t, fields, "flight_number")
	assert.NotContains(t, fields, "source")
}

func TestCreateRequestToPayloadOptionalFields(t *testing.T) {
	payload := CreateRequestToPayload(&dto.CreateBookingRequest{
		Note:         "Two large bags",
		Timezone:     "Asia/Tokyo",
		FlightNumber: " TG660 ",
		Source:       "frontdesk",
	})

	assert.Equal(t, "Two large bags", payload.PassengerNotes)
	assert.Equal(t, "Asia/Tokyo", payload.PickupTimezone)
	assert.Equal(t, "TG660", payload.FlightNumber)
	assert.Equal(t, "frontdesk", payload.Source)
}

func TestUpdateRequestToPayloadKeepsAbsence(t *testing.T) {
	payload := UpdateRequestToPayload(&dto.UpdateBookingRequest{
		Phone: strPtr("0899999999"),
		Note:  strPtr(""),
	})

	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"passenger_phone":"0899999999","passenger_notes":""}`, string(raw))
}

func TestAPIBookingToEntity(t *testing.T) {
	price := decimal.RequireFromString("420.75")
	b := &hongmove.Booking{
		BookingID:       "bk_1",
		BookingNumber:   "HM-20261101-001",
		PassengerName:   "Somchai",
		PassengerEmail:  "somchai@example.com",
		PassengerPhone:  "0812345678",
		FlightNumber:    strPtr("TG660"),
		PickupLocation:  "Suvarnabhumi Airport",
		DropoffLocation: "Wat Pho",
		PickupTime:      "2026-11-01T10:00:00+07:00",
		PassengerNotes:  strPtr("Child seat"),
		Status:          strPtr("completed"),
		PaymentStatus:   strPtr("paid"),
		FinalMeterPrice: &price,
		OmiseChargeID:   strPtr("chrg_test_1"),
		CreatedAt:       "2026-10-30T01:00:00Z",
		UpdatedAt:       "2026-11-01T05:00:00Z",
	}

	booking := APIBookingToEntity(b)

	assert.Equal(t, "bk_1", booking.ID)
	assert.Equal(t, "0812345678", booking.Phone)
	assert.Equal(t, "TG660", booking.FlightNumber)
	assert.Equal(t, "2026-11-01T10:00:00+07:00", booking.TravelDateTime)
	assert.Equal(t, entity.DefaultTimezone, booking.Timezone)
	assert.Equal(t, entity.JobStatusCompleted, booking.JobStatus)
	assert.Equal(t, entity.PaymentStatusPaid, booking.PaymentStatus)
	require.NotNil(t, booking.FinalMeterPrice)
	assert.True(t, price.Equal(*booking.FinalMeterPrice))
	assert.Equal(t, "Child seat", booking.Note)
	assert.Equal(t, "chrg_test_1", booking.OmiseChargeID)
}

func TestAPIBookingToEntityDefaults(t *testing.T) {
	tests := []struct {
		name    string
		in      *hongmove.Booking
		id      string
		job     entity.JobStatus
		payment entity.PaymentStatus
	}{
		{"nil booking", nil, "", entity.JobStatusPending, entity.PaymentStatusUnpaid},
		{"empty booking", &hongmove.Booking{}, "", entity.JobStatusPending, entity.PaymentStatusUnpaid},
		{"id wins over booking_id", &hongmove.Booking{ID: "a", BookingID: "b"}, "a", entity.JobStatusPending, entity.PaymentStatusUnpaid},
		{"blank statuses default", &hongmove.Booking{Status: strPtr(" "), PaymentStatus: strPtr("")}, "", entity.JobStatusPending, entity.PaymentStatusUnpaid},
		{"unknown statuses pass through", &hongmove.Booking{Status: strPtr("driver_assigned"), PaymentStatus: strPtr("refunded")}, "", entity.JobStatus("driver_assigned"), entity.PaymentStatus("refunded")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := APIBookingToEntity(tt.in)
			assert.Equal(t, tt.id, booking.ID)
			assert.Equal(t, tt.job, booking.JobStatus)
			assert.Equal(t, tt.payment, booking.PaymentStatus)
			assert.Equal(t, entity.DefaultTimezone, booking.Timezone)
			assert.Nil(t, booking.FinalMeterPrice)
		})
	}
}

func TestAPIBookingsToEntitiesNeverNil(t *testing.T) {
	assert.NotNil(t, APIBookingsToEntities(nil))

	out := APIBookingsToEntities([]hongmove.Booking{{ID: "1"}, {ID: "2"}, {ID: "3"}})
	require.Len(t, out, 3)
	assert.Equal(t, "1", out[0].ID)
	assert.Equal(t, "3", out[2].ID)
}

func TestBookingToResponse(t *testing.T) {
	assert.Nil(t, BookingToResponse(nil))

	booking := APIBookingToEntity(&hongmove.Booking{ID: "b1", Status: strPtr("in_progress")})
	resp := BookingToResponse(&booking)

	assert.Equal(t, "in_progress", resp.JobStatus)
	assert.Equal(t, "กำลังเดินทาง", resp.JobStatusLabel)
	assert.Equal(t, "unpaid", resp.PaymentStatus)
	assert.Equal(t, "ยังไม่ชำระ", resp.PaymentStatusLabel)
	assert.Nil(t, resp.FinalMeterPrice)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "finalMeterPrice")
	assert.NotContains(t, string(raw), "flightNumber")
}

func TestBookingToResponseZeroPriceIsKept(t *testing.T) {
	zero := decimal.Zero
	booking := entity.Booking{FinalMeterPrice: &zero}

	resp := BookingToResponse(&booking)
	require.NotNil(t, resp.FinalMeterPrice)
	assert.Equal(t, 0.0, *resp.FinalMeterPrice)
}

func TestAPIListToResponse(t *testing.T) {
	t.Run("upstream pagination", func(t *testing.T) {
		resp := APIListToResponse(&hongmove.ListBookingsResponse{
			Bookings:   []hongmove.Booking{{ID: "1"}},
			Pagination: &hongmove.Pagination{Total: 41, Page: 3, Limit: 20, TotalPages: 3},
		}, 3, 20)

		assert.Len(t, resp.Bookings, 1)
		assert.Equal(t, dto.PaginationResponse{Total: 41, Page: 3, Limit: 20, TotalPages: 3}, resp.Pagination)
	})

	t.Run("derived pagination", func(t *testing.T) {
		resp := APIListToResponse(&hongmove.ListBookingsResponse{
			Bookings: []hongmove.Booking{{ID: "1"}, {ID: "2"}, {ID: "3"}},
		}, 1, 2)

		assert.Equal(t, dto.PaginationResponse{Total: 3, Page: 1, Limit: 2, TotalPages: 2}, resp.Pagination)
	})

	t.Run("nil list", func(t *testing.T) {
		resp := APIListToResponse(nil, 1, 20)
		assert.NotNil(t, resp.Bookings)
		assert.Empty(t, resp.Bookings)
		assert.Equal(t, 0, resp.Pagination.Total)
	})
}

func TestLocationConverters(t *testing.T) {
	assert.Nil(t, LocationToResponse(nil))

	locations := []entity.Location{
		{ID: "loc_026", NameTh: "วัดโพธิ์", NameEn: "Wat Pho", Category: entity.LocationCategoryLandmark, Latitude: 13.7465, Longitude: 100.4927, IsActive: true},
	}
	out := LocationsToResponses(locations)
	require.Len(t, out, 1)
	assert.Equal(t, "วัดโพธิ์ (Wat Pho)", out[0].DisplayName)
	assert.Equal(t, "landmark", out[0].Category)

	categories := CategoriesToResponses(entity.CategoryLabels)
	require.Len(t, categories, 7)
	assert.Equal(t, dto.CategoryResponse{Category: "airport", Th: "สนามบิน", En: "Airports"}, categories[0])
}
