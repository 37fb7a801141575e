package shared

import (
	"time"

	"rentledger/internal/domain/booking"

	"github.com/google/uuid"
)

// Minimal snapshots for command-side reads; the write path never depends on
// read-side view types.

type BookingSnapshot struct {
	ID            uuid.UUID
	BookerID      uuid.UUID
	OwnerID       uuid.UUID
	ListingID     uuid.UUID
	ListingModel  booking.ListingModel
	ListingTitle  string
	BookingType   booking.Type
	Status        booking.Status
	PaymentStatus booking.PaymentStatus
	TotalAmount   int64
	StartDate     time.Time
	EndDate       time.Time
}

type ListingSnapshot struct {
	ID      uuid.UUID
	Model   booking.ListingModel
	OwnerID uuid.UUID
	Title   string
	Price   int64
}
