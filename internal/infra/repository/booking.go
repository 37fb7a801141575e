package repository

import (
	"context"

	"rentledger/internal/domain/booking"
	"rentledger/internal/infra"

	"github.com/google/uuid"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

const createBookingSQL = `
INSERT INTO bookings (
    id, booking_type, start_date, end_date, total_amount,
    payment_method, payment_status, status,
    booker_id, booker_name, booker_email, booker_phone, booker_address,
    owner_id, owner_name, owner_email, owner_phone,
    listing_id, listing_model, listing_title, listing_price,
    number_of_guests, pickup_location, dropoff_location, special_requests
) VALUES (
    $1, $2, $3, $4, $5,
    $6, $7, $8,
    $9, $10, $11, $12, $13,
    $14, $15, $16, $17,
    $18, $19, $20, $21,
    $22, $23, $24, $25
)
RETURNING id`

func (r *BookingRepository) Create(ctx context.Context, db infra.DBTX, b *booking.Booking) (uuid.UUID, error) {
	var numberOfGuests *int
	var pickupLocation, dropoffLocation *string
	if stay := b.Stay(); stay != nil {
		n := stay.NumberOfGuests()
		numberOfGuests = &n
	}
	if trip := b.Trip(); trip != nil {
		pickup := trip.PickupLocation()
		dropoff := trip.DropoffLocation()
		pickupLocation = &pickup
		dropoffLocation = &dropoff
	}

	var specialRequests *string
	if b.SpecialRequests() != "" {
		s := b.SpecialRequests()
		specialRequests = &s
	}

	var id uuid.UUID
	err := db.QueryRow(ctx, createBookingSQL,
		b.ID(), b.BookingType().String(), b.Dates().Start(), b.Dates().End(), b.TotalAmount(),
		b.PaymentMethod().String(), b.PaymentStatus().String(), b.Status().String(),
		b.BookerID(), b.Booker().Name(), b.Booker().Email(), b.Booker().Phone(), b.Booker().Address(),
		b.OwnerID(), b.Owner().Name(), b.Owner().Email(), b.Owner().Phone(),
		b.ListingID(), b.ListingModel().String(), b.ListingTitle(), b.ListingPrice(),
		numberOfGuests, pickupLocation, dropoffLocation, specialRequests,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}

	return id, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, db infra.DBTX, id uuid.UUID, status booking.Status) error {
	tag, err := db.Exec(ctx,
		`UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1`,
		id, status.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) UpdatePaymentStatus(ctx context.Context, db infra.DBTX, id uuid.UUID, status booking.PaymentStatus) error {
	tag, err := db.Exec(ctx,
		`UPDATE bookings SET payment_status = $2, updated_at = now() WHERE id = $1`,
		id, status.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking payment status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
