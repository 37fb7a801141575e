package queries

import (
	"context"

	"rentledger/internal/infra"
	"rentledger/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingQueries interface {
	// GetByID is visible only to the booking's booker or owner.
	GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*BookingView, error)
	// ListByBooker returns the actor's bookings as renter, newest first.
	ListByBooker(ctx context.Context, bookerID uuid.UUID) ([]*BookingListItem, error)
	// ListByOwner returns the actor's bookings as host, newest first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*BookingListItem, error)
	// ListingAvailability returns booked ranges (pending/confirmed) of a listing.
	ListingAvailability(ctx context.Context, listingID uuid.UUID, listingModel string) ([]*BookedRange, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByBookerID(ctx context.Context, bookerID uuid.UUID) ([]*BookingListItem, error)
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*BookingListItem, error)
	FindBookedRanges(ctx context.Context, listingID uuid.UUID, listingModel string) ([]*BookedRange, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, err
	}
	if view.BookerID != actor && view.OwnerID != actor {
		return nil, errs.ErrNotBookingParty
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByBooker(ctx context.Context, bookerID uuid.UUID) ([]*BookingListItem, error) {
	return q.store.FindByBookerID(ctx, bookerID)
}

func (q *bookingQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*BookingListItem, error) {
	return q.store.FindByOwnerID(ctx, ownerID)
}

func (q *bookingQueriesImpl) ListingAvailability(ctx context.Context, listingID uuid.UUID, listingModel string) ([]*BookedRange, error) {
	return q.store.FindBookedRanges(ctx, listingID, listingModel)
}
