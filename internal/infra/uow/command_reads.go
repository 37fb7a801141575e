package uow

import (
	"context"
	"time"

	"rentledger/internal/domain/booking"
	"rentledger/internal/infra"
	"rentledger/internal/usecase/shared"

	"github.com/google/uuid"
)

type commandReads struct {
	db infra.DBTX
}

const bookingForUpdateSQL = `
SELECT id, booker_id, owner_id, listing_id, listing_model, listing_title,
       booking_type, status, payment_status, total_amount, start_date, end_date
FROM bookings
WHERE id = $1
FOR UPDATE`

func (r *commandReads) BookingForUpdate(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	var snap shared.BookingSnapshot
	var listingModel, bookingType, status, paymentStatus string

	err := r.db.QueryRow(ctx, bookingForUpdateSQL, id).Scan(
		&snap.ID, &snap.BookerID, &snap.OwnerID, &snap.ListingID, &listingModel, &snap.ListingTitle,
		&bookingType, &status, &paymentStatus, &snap.TotalAmount, &snap.StartDate, &snap.EndDate,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}

	snap.ListingModel = booking.ListingModel(listingModel)
	snap.BookingType = booking.Type(bookingType)
	snap.Status = booking.Status(status)
	snap.PaymentStatus = booking.PaymentStatus(paymentStatus)
	return &snap, nil
}

const listingForUpdateSQL = `
SELECT id, model, owner_id, title, price
FROM listings
WHERE id = $1 AND model = $2
FOR UPDATE`

func (r *commandReads) ListingForUpdate(ctx context.Context, id uuid.UUID, model booking.ListingModel) (*shared.ListingSnapshot, error) {
	var snap shared.ListingSnapshot
	var m string

	err := r.db.QueryRow(ctx, listingForUpdateSQL, id, model.String()).Scan(
		&snap.ID, &m, &snap.OwnerID, &snap.Title, &snap.Price,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("listing not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock listing", err)
	}

	snap.Model = booking.ListingModel(m)
	return &snap, nil
}

const countOverlappingSQL = `
SELECT count(*)
FROM bookings
WHERE listing_id = $1
  AND listing_model = $2
  AND status IN ('pending', 'confirmed')
  AND start_date < $4
  AND $3 < end_date`

func (r *commandReads) CountOverlappingBookings(ctx context.Context, listingID uuid.UUID, model booking.ListingModel, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, countOverlappingSQL, listingID, model.String(), start, end).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count overlapping bookings", err)
	}
	return count, nil
}
