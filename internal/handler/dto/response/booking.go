package response

import (
	"log/slog"
	"time"

	"rentledger/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID              uuid.UUID `json:"id"`
	BookingType     string    `json:"bookingType"`
	StartDate       time.Time `json:"startDate"`
	EndDate         time.Time `json:"endDate"`
	TotalAmount     int64     `json:"totalAmount"`
	PaymentMethod   string    `json:"paymentMethod"`
	PaymentStatus   string    `json:"paymentStatus"`
	Status          string    `json:"status"`
	BookerID        uuid.UUID `json:"bookerId"`
	BookerName      string    `json:"bookerName"`
	BookerEmail     string    `json:"bookerEmail"`
	BookerPhone     string    `json:"bookerPhone"`
	BookerAddress   *string   `json:"bookerAddress,omitempty"`
	OwnerID         uuid.UUID `json:"ownerId"`
	OwnerName       string    `json:"ownerName"`
	OwnerEmail      *string   `json:"ownerEmail,omitempty"`
	OwnerPhone      *string   `json:"ownerPhone,omitempty"`
	ListingID       uuid.UUID `json:"listingId"`
	ListingModel    string    `json:"listingModel"`
	ListingTitle    string    `json:"listingTitle"`
	ListingPrice    int64     `json:"listingPrice"`
	ListingImageURL *string   `json:"listingImageUrl,omitempty"`
	NumberOfGuests  *int      `json:"numberOfGuests,omitempty"`
	PickupLocation  *string   `json:"pickupLocation,omitempty"`
	DropoffLocation *string   `json:"dropoffLocation,omitempty"`
	SpecialRequests *string   `json:"specialRequests,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type BookingListResponse struct {
	ID              uuid.UUID `json:"id"`
	BookingType     string    `json:"bookingType"`
	StartDate       time.Time `json:"startDate"`
	EndDate         time.Time `json:"endDate"`
	TotalAmount     int64     `json:"totalAmount"`
	PaymentStatus   string    `json:"paymentStatus"`
	Status          string    `json:"status"`
	BookerID        uuid.UUID `json:"bookerId"`
	BookerName      string    `json:"bookerName"`
	BookerEmail     string    `json:"bookerEmail"`
	BookerPhone     string    `json:"bookerPhone"`
	OwnerID         uuid.UUID `json:"ownerId"`
	OwnerName       string    `json:"ownerName"`
	OwnerEmail      *string   `json:"ownerEmail,omitempty"`
	OwnerPhone      *string   `json:"ownerPhone,omitempty"`
	ListingID       uuid.UUID `json:"listingId"`
	ListingModel    string    `json:"listingModel"`
	ListingTitle    string    `json:"listingTitle"`
	ListingImageURL *string   `json:"listingImageUrl,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

type CreateBookingResponse struct {
	ID uuid.UUID `json:"id"`
}

type BookedRangeResponse struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Status    string    `json:"status"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	resp := &BookingResponse{}
	// Field names mirror the read model; a copy failure means the two
	// structs have drifted apart.
	if err := copier.Copy(resp, rm); err != nil {
		slog.Error("booking view response mapping failed", "error", err)
	}
	return resp
}

func FromBookingListItem(rm *queries.BookingListItem) *BookingListResponse {
	resp := &BookingListResponse{}
	if err := copier.Copy(resp, rm); err != nil {
		slog.Error("booking list response mapping failed", "error", err)
	}
	return resp
}

func FromBookedRange(rm *queries.BookedRange) *BookedRangeResponse {
	return &BookedRangeResponse{
		StartDate: rm.StartDate,
		EndDate:   rm.EndDate,
		Status:    rm.Status,
	}
}
