package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type BookingView struct {
	ID              uuid.UUID  `json:"id"`
	BookingType     string     `json:"booking_type"`
	StartDate       time.Time  `json:"start_date"`
	EndDate         time.Time  `json:"end_date"`
	TotalAmount     int64      `json:"total_amount"`
	PaymentMethod   string     `json:"payment_method"`
	PaymentStatus   string     `json:"payment_status"`
	Status          string     `json:"status"`
	BookerID        uuid.UUID  `json:"booker_id"`
	BookerName      string     `json:"booker_name"`
	BookerEmail     string     `json:"booker_email"`
	BookerPhone     string     `json:"booker_phone"`
	BookerAddress   *string    `json:"booker_address,omitempty"`
	OwnerID         uuid.UUID  `json:"owner_id"`
	OwnerName       string     `json:"owner_name"`
	OwnerEmail      *string    `json:"owner_email,omitempty"`
	OwnerPhone      *string    `json:"owner_phone,omitempty"`
	ListingID       uuid.UUID  `json:"listing_id"`
	ListingModel    string     `json:"listing_model"`
	ListingTitle    string     `json:"listing_title"`
	ListingPrice    int64      `json:"listing_price"`
	ListingImageURL *string    `json:"listing_image_url,omitempty"`
	NumberOfGuests  *int       `json:"number_of_guests,omitempty"`
	PickupLocation  *string    `json:"pickup_location,omitempty"`
	DropoffLocation *string    `json:"dropoff_location,omitempty"`
	SpecialRequests *string    `json:"special_requests,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type BookingListItem struct {
	ID              uuid.UUID `json:"id"`
	BookingType     string    `json:"booking_type"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	TotalAmount     int64     `json:"total_amount"`
	PaymentStatus   string    `json:"payment_status"`
	Status          string    `json:"status"`
	BookerID        uuid.UUID `json:"booker_id"`
	BookerName      string    `json:"booker_name"`
	BookerEmail     string    `json:"booker_email"`
	BookerPhone     string    `json:"booker_phone"`
	OwnerID         uuid.UUID `json:"owner_id"`
	OwnerName       string    `json:"owner_name"`
	OwnerEmail      *string   `json:"owner_email,omitempty"`
	OwnerPhone      *string   `json:"owner_phone,omitempty"`
	ListingID       uuid.UUID `json:"listing_id"`
	ListingModel    string    `json:"listing_model"`
	ListingTitle    string    `json:"listing_title"`
	ListingImageURL *string   `json:"listing_image_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type BookedRange struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Status    string    `json:"status"`
}

type EarningsSummaryView struct {
	OwnerID           uuid.UUID `json:"owner_id"`
	TotalEarnings     int64     `json:"total_earnings"`
	CompletedBookings int32     `json:"completed_bookings"`
	PendingPayout     int64     `json:"pending_payout"`
	TotalPayout       int64     `json:"total_payout"`
}

type EarningsHistoryItem struct {
	BookingID    uuid.UUID `json:"booking_id"`
	Amount       int64     `json:"amount"`
	BookingType  string    `json:"booking_type"`
	ListingTitle string    `json:"listing_title"`
	Status       string    `json:"status"`
	CompletedAt  time.Time `json:"completed_at"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone"`
	Address  string    `json:"address"`
	IsActive bool      `json:"is_active"`
}
