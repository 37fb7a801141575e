package shared

import (
	"context"
	"time"

	"rentledger/internal/domain/booking"
	"rentledger/internal/domain/earnings"
	"rentledger/internal/infra"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db infra.DBTX) error) error
	// CommandReads: Direct access to command reads outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Earnings() EarningsRepository
	Users() UserRepository
	Events() EventRepository
	Reads() CommandReads
	DB() infra.DBTX
}

type CommandReads interface {
	// BookingForUpdate locks the booking row; only meaningful inside Within.
	BookingForUpdate(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	// ListingForUpdate locks the listing row to serialize availability checks
	// against concurrent creations for the same listing.
	ListingForUpdate(ctx context.Context, id uuid.UUID, model booking.ListingModel) (*ListingSnapshot, error)
	// CountOverlappingBookings counts pending/confirmed bookings of the
	// listing whose [start,end) range intersects the given one.
	CountOverlappingBookings(ctx context.Context, listingID uuid.UUID, model booking.ListingModel, start, end time.Time) (int64, error)
}

type BookingRepository interface {
	Create(ctx context.Context, db infra.DBTX, b *booking.Booking) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, db infra.DBTX, id uuid.UUID, status booking.Status) error
	UpdatePaymentStatus(ctx context.Context, db infra.DBTX, id uuid.UUID, status booking.PaymentStatus) error
}

type EarningsRepository interface {
	// Accrue applies the aggregate increments and appends the history entry
	// in single statements; never read-modify-write.
	Accrue(ctx context.Context, db infra.DBTX, entry earnings.Entry) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, db infra.DBTX, userID uuid.UUID) error
}

type EventRepository interface {
	// Append records a booking lifecycle event in the same transaction as the
	// state change. Delivery is out of scope; the table is an outbox.
	Append(ctx context.Context, db infra.DBTX, bookingID uuid.UUID, topic string, payload []byte) error
}
