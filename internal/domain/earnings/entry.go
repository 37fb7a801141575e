// Package earnings defines the owner earnings projection: running aggregates
// derived from completed bookings plus an append-only accrual history. Entries
// are written exactly once per booking and never mutated afterwards;
// corrections would be made with new entries, not edits.
package earnings

import (
	"errors"
	"time"

	"rentledger/internal/domain/booking"

	"github.com/google/uuid"
)

var ErrNonPositiveValue = errors.New("accrual amount must be positive")

const EntryStatusCompleted = "completed"

// Entry is one immutable accrual record in the owner's earnings history.
type Entry struct {
	bookingID    uuid.UUID
	ownerID      uuid.UUID
	amount       int64
	bookingType  booking.Type
	listingTitle string
	status       string
	completedAt  time.Time
}

// NewEntry builds the accrual record for a booking transitioning to
// completed. The caller invokes it at most once per booking; the persistence
// layer backstops that with a uniqueness constraint on the booking id.
func NewEntry(bookingID, ownerID uuid.UUID, amount int64, bookingType booking.Type, listingTitle string, completedAt time.Time) (Entry, error) {
	if amount <= 0 {
		return Entry{}, ErrNonPositiveValue
	}
	return Entry{
		bookingID:    bookingID,
		ownerID:      ownerID,
		amount:       amount,
		bookingType:  bookingType,
		listingTitle: listingTitle,
		status:       EntryStatusCompleted,
		completedAt:  completedAt,
	}, nil
}

func ReconstructEntry(
	bookingID, ownerID uuid.UUID,
	amount int64,
	bookingType booking.Type,
	listingTitle, status string,
	completedAt time.Time,
) Entry {
	return Entry{
		bookingID:    bookingID,
		ownerID:      ownerID,
		amount:       amount,
		bookingType:  bookingType,
		listingTitle: listingTitle,
		status:       status,
		completedAt:  completedAt,
	}
}

func (e Entry) BookingID() uuid.UUID      { return e.bookingID }
func (e Entry) OwnerID() uuid.UUID        { return e.ownerID }
func (e Entry) Amount() int64             { return e.amount }
func (e Entry) BookingType() booking.Type { return e.bookingType }
func (e Entry) ListingTitle() string      { return e.listingTitle }
func (e Entry) Status() string            { return e.status }
func (e Entry) CompletedAt() time.Time    { return e.completedAt }
