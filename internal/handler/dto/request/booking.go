package request

import (
	"time"

	"github.com/google/uuid"
)

// CreateBookingRequest deliberately carries no binding:"required" tags for the
// snapshot fields: missing-field detection happens in the domain so that the
// client receives every missing field at once, not just the first.
type CreateBookingRequest struct {
	BookingType     string    `json:"bookingType"`
	StartDate       time.Time `json:"startDate"`
	EndDate         time.Time `json:"endDate"`
	TotalAmount     int64     `json:"totalAmount"`
	PaymentMethod   string    `json:"paymentMethod"`
	BookerName      string    `json:"bookerName"`
	BookerEmail     string    `json:"bookerEmail"`
	BookerPhone     string    `json:"bookerPhone"`
	BookerAddress   string    `json:"bookerAddress"`
	ListingID       uuid.UUID `json:"listingId"`
	ListingModel    string    `json:"listingModel"`
	ListingTitle    string    `json:"listingTitle"`
	ListingPrice    int64     `json:"listingPrice"`
	OwnerID         uuid.UUID `json:"ownerId"`
	OwnerName       string    `json:"ownerName"`
	OwnerEmail      string    `json:"ownerEmail"`
	OwnerPhone      string    `json:"ownerPhone"`
	NumberOfGuests  int       `json:"numberOfGuests"`
	PickupLocation  string    `json:"pickupLocation"`
	DropoffLocation string    `json:"dropoffLocation"`
	SpecialRequests string    `json:"specialRequests"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
