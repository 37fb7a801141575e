package readstore

import (
	"context"

	"rentledger/internal/infra"
	"rentledger/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingReadStore struct {
	db *pgxpool.Pool
}

func NewBookingReadStore(db *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{db: db}
}

const bookingViewSQL = `
SELECT b.id, b.booking_type, b.start_date, b.end_date, b.total_amount,
       b.payment_method, b.payment_status, b.status,
       b.booker_id, b.booker_name, b.booker_email, b.booker_phone, b.booker_address,
       b.owner_id, b.owner_name, b.owner_email, b.owner_phone,
       b.listing_id, b.listing_model, b.listing_title, b.listing_price,
       l.primary_image_url,
       b.number_of_guests, b.pickup_location, b.dropoff_location, b.special_requests,
       b.created_at, b.updated_at
FROM bookings b
LEFT JOIN listings l ON l.id = b.listing_id AND l.model = b.listing_model
WHERE b.id = $1`

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var v queries.BookingView
	err := s.db.QueryRow(ctx, bookingViewSQL, id).Scan(
		&v.ID, &v.BookingType, &v.StartDate, &v.EndDate, &v.TotalAmount,
		&v.PaymentMethod, &v.PaymentStatus, &v.Status,
		&v.BookerID, &v.BookerName, &v.BookerEmail, &v.BookerPhone, &v.BookerAddress,
		&v.OwnerID, &v.OwnerName, &v.OwnerEmail, &v.OwnerPhone,
		&v.ListingID, &v.ListingModel, &v.ListingTitle, &v.ListingPrice,
		&v.ListingImageURL,
		&v.NumberOfGuests, &v.PickupLocation, &v.DropoffLocation, &v.SpecialRequests,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return &v, nil
}

const bookingListColumns = `
SELECT b.id, b.booking_type, b.start_date, b.end_date, b.total_amount,
       b.payment_status, b.status,
       b.booker_id, b.booker_name, b.booker_email, b.booker_phone,
       b.owner_id, b.owner_name, b.owner_email, b.owner_phone,
       b.listing_id, b.listing_model, b.listing_title,
       l.primary_image_url,
       b.created_at
FROM bookings b
LEFT JOIN listings l ON l.id = b.listing_id AND l.model = b.listing_model
`

const (
	bookingListByBookerSQL = bookingListColumns + `WHERE b.booker_id = $1 ORDER BY b.created_at DESC`
	bookingListByOwnerSQL  = bookingListColumns + `WHERE b.owner_id = $1 ORDER BY b.created_at DESC`
)

func (s *BookingReadStore) FindByBookerID(ctx context.Context, bookerID uuid.UUID) ([]*queries.BookingListItem, error) {
	return s.findByParty(ctx, "booker_id", bookerID)
}

func (s *BookingReadStore) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*queries.BookingListItem, error) {
	return s.findByParty(ctx, "owner_id", ownerID)
}

// column is one of the two fixed party columns, never caller input.
func (s *BookingReadStore) findByParty(ctx context.Context, column string, partyID uuid.UUID) ([]*queries.BookingListItem, error) {
	sql := bookingListByBookerSQL
	if column == "owner_id" {
		sql = bookingListByOwnerSQL
	}

	rows, err := s.db.Query(ctx, sql, partyID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by "+column, err)
	}
	defer rows.Close()

	var result []*queries.BookingListItem
	for rows.Next() {
		var item queries.BookingListItem
		if err := rows.Scan(
			&item.ID, &item.BookingType, &item.StartDate, &item.EndDate, &item.TotalAmount,
			&item.PaymentStatus, &item.Status,
			&item.BookerID, &item.BookerName, &item.BookerEmail, &item.BookerPhone,
			&item.OwnerID, &item.OwnerName, &item.OwnerEmail, &item.OwnerPhone,
			&item.ListingID, &item.ListingModel, &item.ListingTitle,
			&item.ListingImageURL,
			&item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking list row", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking list rows", err)
	}
	return result, nil
}

const bookedRangesSQL = `
SELECT start_date, end_date, status
FROM bookings
WHERE listing_id = $1
  AND listing_model = $2
  AND status IN ('pending', 'confirmed')
ORDER BY start_date`

func (s *BookingReadStore) FindBookedRanges(ctx context.Context, listingID uuid.UUID, listingModel string) ([]*queries.BookedRange, error) {
	rows, err := s.db.Query(ctx, bookedRangesSQL, listingID, listingModel)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booked ranges", err)
	}
	defer rows.Close()

	var result []*queries.BookedRange
	for rows.Next() {
		var r queries.BookedRange
		if err := rows.Scan(&r.StartDate, &r.EndDate, &r.Status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booked range row", err)
		}
		result = append(result, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booked range rows", err)
	}
	return result, nil
}
