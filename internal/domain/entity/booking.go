package entity

import (
	"github.com/shopspring/decimal"
)

// DefaultTimezone is used whenever a caller or upstream leaves the pickup timezone blank.
const DefaultTimezone = "Asia/Bangkok"

// unknownStatusLabel is shown for status values this service does not recognise.
const unknownStatusLabel = "ไม่ทราบสถานะ"

// JobStatus represents the trip lifecycle state of a booking.
// Transitions are owned by the upstream service; values outside the known set are kept verbatim.
type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusConfirmed  JobStatus = "confirmed"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusCancelled  JobStatus = "cancelled"
)

var jobStatusLabels = map[JobStatus]string{
	JobStatusPending:    "รอยืนยัน",
	JobStatusConfirmed:  "ยืนยันแล้ว",
	JobStatusInProgress: "กำลังเดินทาง",
	JobStatusCompleted:  "เสร็จสิ้น",
	JobStatusCancelled:  "ยกเลิก",
}

// IsKnown checks if the status is one of the documented lifecycle values
func (s JobStatus) IsKnown() bool {
	_, ok := jobStatusLabels[s]
	return ok
}

// Label returns the Thai display label, or a generic label for unknown values
func (s JobStatus) Label() string {
	if label, ok := jobStatusLabels[s]; ok {
		return label
	}
	return unknownStatusLabel
}

// PaymentStatus represents whether the trip has been paid for.
type PaymentStatus string

const (
	PaymentStatusPaid   PaymentStatus = "paid"
	PaymentStatusUnpaid PaymentStatus = "unpaid"
)

var paymentStatusLabels = map[PaymentStatus]string{
	PaymentStatusPaid:   "ชำระแล้ว",
	PaymentStatusUnpaid: "ยังไม่ชำระ",
}

// IsKnown checks if the status is one of the documented payment values
func (s PaymentStatus) IsKnown() bool {
	_, ok := paymentStatusLabels[s]
	return ok
}

// Label returns the Thai display label, or a generic label for unknown values
func (s PaymentStatus) Label() string {
	if label, ok := paymentStatusLabels[s]; ok {
		return label
	}
	return unknownStatusLabel
}

// Booking is a passenger transportation reservation as known to this service.
// Every field is owned by the upstream booking API; the value is rebuilt from a
// fresh upstream payload on every request and never mutated afterwards.
//
// Timestamps are kept as the ISO 8601 strings sent by upstream.
type Booking struct {
	ID            string
	BookingNumber string

	PassengerName string
	Phone         string
	Email         string
	FlightNumber  string

	PickupLocation  string
	DropoffLocation string
	TravelDateTime  string
	Timezone        string

	PaymentStatus PaymentStatus
	JobStatus     JobStatus

	// FinalMeterPrice is nil until upstream reports the metered fare after the trip.
	FinalMeterPrice *decimal.Decimal
	OmiseChargeID   string

	Note        string
	EmailSentAt string
	CreatedAt   string
	UpdatedAt   string
}

// HasFinalPrice checks if the metered fare is known
func (b *Booking) HasFinalPrice() bool {
	return b.FinalMeterPrice != nil
}
