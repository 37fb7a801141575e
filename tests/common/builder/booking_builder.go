//go:build unit || e2e

package builder

import (
	"time"

	dombooking "rentledger/internal/domain/booking"
	reqdto "rentledger/internal/handler/dto/request"
	"rentledger/internal/usecase/queries"
	"rentledger/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	BookingType     string
	StartDate       time.Time
	EndDate         time.Time
	TotalAmount     int64
	PaymentMethod   string
	BookerID        uuid.UUID
	BookerName      string
	BookerEmail     string
	BookerPhone     string
	BookerAddress   string
	ListingID       uuid.UUID
	ListingModel    string
	ListingTitle    string
	ListingPrice    int64
	OwnerID         uuid.UUID
	OwnerName       string
	OwnerEmail      string
	OwnerPhone      string
	NumberOfGuests  int
	PickupLocation  string
	DropoffLocation string
	SpecialRequests string
	Status          string
	PaymentStatus   string
}

func NewBookingBuilder() *BookingBuilder {
	start := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		BookingType:    "room",
		StartDate:      start,
		EndDate:        start.AddDate(0, 0, 3),
		TotalAmount:    3000,
		PaymentMethod:  "card",
		BookerID:       uuid.New(),
		BookerName:     "Asha Verma",
		BookerEmail:    "asha@example.com",
		BookerPhone:    "+91-9000000001",
		BookerAddress:  "12 Lake View Road",
		ListingID:      uuid.New(),
		ListingModel:   "Room",
		ListingTitle:   "Sunny Lakeside Room",
		ListingPrice:   1000,
		OwnerID:        uuid.New(),
		OwnerName:      "Ravi Nair",
		OwnerEmail:     "ravi@example.com",
		OwnerPhone:     "+91-9000000002",
		NumberOfGuests: 2,
		Status:         "pending",
		PaymentStatus:  "pending",
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) AsVehicle() *BookingBuilder {
	b.BookingType = "vehicle"
	b.ListingModel = "Vehicle"
	b.ListingTitle = "City Hatchback"
	b.NumberOfGuests = 0
	b.PickupLocation = "Airport Terminal 1"
	b.DropoffLocation = "Central Station"
	return b
}

func (b *BookingBuilder) BuildSpec() dombooking.CreateSpec {
	return dombooking.CreateSpec{
		BookingType:     b.BookingType,
		StartDate:       b.StartDate,
		EndDate:         b.EndDate,
		TotalAmount:     b.TotalAmount,
		PaymentMethod:   b.PaymentMethod,
		BookerID:        b.BookerID,
		BookerName:      b.BookerName,
		BookerEmail:     b.BookerEmail,
		BookerPhone:     b.BookerPhone,
		BookerAddress:   b.BookerAddress,
		ListingID:       b.ListingID,
		ListingModel:    b.ListingModel,
		ListingTitle:    b.ListingTitle,
		ListingPrice:    b.ListingPrice,
		OwnerID:         b.OwnerID,
		OwnerName:       b.OwnerName,
		OwnerEmail:      b.OwnerEmail,
		OwnerPhone:      b.OwnerPhone,
		NumberOfGuests:  b.NumberOfGuests,
		PickupLocation:  b.PickupLocation,
		DropoffLocation: b.DropoffLocation,
		SpecialRequests: b.SpecialRequests,
	}
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	return dombooking.NewBooking(b.BuildSpec())
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		BookingType:     b.BookingType,
		StartDate:       b.StartDate,
		EndDate:         b.EndDate,
		TotalAmount:     b.TotalAmount,
		PaymentMethod:   b.PaymentMethod,
		BookerName:      b.BookerName,
		BookerEmail:     b.BookerEmail,
		BookerPhone:     b.BookerPhone,
		BookerAddress:   b.BookerAddress,
		ListingID:       b.ListingID,
		ListingModel:    b.ListingModel,
		ListingTitle:    b.ListingTitle,
		ListingPrice:    b.ListingPrice,
		OwnerID:         b.OwnerID,
		OwnerName:       b.OwnerName,
		OwnerEmail:      b.OwnerEmail,
		OwnerPhone:      b.OwnerPhone,
		NumberOfGuests:  b.NumberOfGuests,
		PickupLocation:  b.PickupLocation,
		DropoffLocation: b.DropoffLocation,
		SpecialRequests: b.SpecialRequests,
	}
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:            uuid.New(),
		BookerID:      b.BookerID,
		OwnerID:       b.OwnerID,
		ListingID:     b.ListingID,
		ListingModel:  dombooking.ListingModel(b.ListingModel),
		ListingTitle:  b.ListingTitle,
		BookingType:   dombooking.Type(b.BookingType),
		Status:        dombooking.Status(b.Status),
		PaymentStatus: dombooking.PaymentStatus(b.PaymentStatus),
		TotalAmount:   b.TotalAmount,
		StartDate:     b.StartDate,
		EndDate:       b.EndDate,
	}
}

func (b *BookingBuilder) BuildListingSnapshot() *shared.ListingSnapshot {
	return &shared.ListingSnapshot{
		ID:      b.ListingID,
		Model:   dombooking.ListingModel(b.ListingModel),
		OwnerID: b.OwnerID,
		Title:   b.ListingTitle,
		Price:   b.ListingPrice,
	}
}

func (b *BookingBuilder) BuildViewQuery() *queries.BookingView {
	now := time.Now()
	v := &queries.BookingView{
		ID:            uuid.New(),
		BookingType:   b.BookingType,
		StartDate:     b.StartDate,
		EndDate:       b.EndDate,
		TotalAmount:   b.TotalAmount,
		PaymentMethod: b.PaymentMethod,
		PaymentStatus: b.PaymentStatus,
		Status:        b.Status,
		BookerID:      b.BookerID,
		BookerName:    b.BookerName,
		BookerEmail:   b.BookerEmail,
		BookerPhone:   b.BookerPhone,
		OwnerID:       b.OwnerID,
		OwnerName:     b.OwnerName,
		ListingID:     b.ListingID,
		ListingModel:  b.ListingModel,
		ListingTitle:  b.ListingTitle,
		ListingPrice:  b.ListingPrice,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if b.NumberOfGuests > 0 {
		n := b.NumberOfGuests
		v.NumberOfGuests = &n
	}
	if b.PickupLocation != "" {
		pickup, dropoff := b.PickupLocation, b.DropoffLocation
		v.PickupLocation = &pickup
		v.DropoffLocation = &dropoff
	}
	return v
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:            uuid.New(),
		BookingType:   b.BookingType,
		StartDate:     b.StartDate,
		EndDate:       b.EndDate,
		TotalAmount:   b.TotalAmount,
		PaymentStatus: b.PaymentStatus,
		Status:        b.Status,
		BookerID:      b.BookerID,
		BookerName:    b.BookerName,
		BookerEmail:   b.BookerEmail,
		BookerPhone:   b.BookerPhone,
		OwnerID:       b.OwnerID,
		OwnerName:     b.OwnerName,
		ListingID:     b.ListingID,
		ListingModel:  b.ListingModel,
		ListingTitle:  b.ListingTitle,
		CreatedAt:     time.Now(),
	}
}

// Fluent helpers for the common knobs
func (b *BookingBuilder) WithBookerID(id uuid.UUID) *BookingBuilder {
	b.BookerID = id
	return b
}

func (b *BookingBuilder) WithOwnerID(id uuid.UUID) *BookingBuilder {
	b.OwnerID = id
	return b
}

func (b *BookingBuilder) WithStatus(status string) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithDates(start, end time.Time) *BookingBuilder {
	b.StartDate = start
	b.EndDate = end
	return b
}

func (b *BookingBuilder) WithTotalAmount(amount int64) *BookingBuilder {
	b.TotalAmount = amount
	return b
}
