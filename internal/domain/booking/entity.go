package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingFields        = errors.New("missing required fields")
	ErrInvalidDateRange     = errors.New("start date must be before end date")
	ErrInvalidStatus        = errors.New("invalid booking status")
	ErrInvalidBookingType   = errors.New("invalid booking type")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrGuestsRequired       = errors.New("number of guests is required for room bookings")
	ErrLocationsRequired    = errors.New("pickup and dropoff locations are required for vehicle bookings")
	ErrInvalidListingModel  = errors.New("invalid listing model")
	ErrListingModelMismatch = errors.New("listing model does not match booking type")
	ErrNonPositiveAmount    = errors.New("total amount must be positive")
)

// Booking is the aggregate root of the rental ledger. Party contact details
// and the listing title/price are denormalized snapshots taken at creation
// time.
type Booking struct {
	id              uuid.UUID
	bookingType     Type
	dates           DateRange
	totalAmount     int64
	paymentMethod   PaymentMethod
	paymentStatus   PaymentStatus
	status          Status
	bookerID        uuid.UUID
	booker          Party
	ownerID         uuid.UUID
	owner           Party
	listingID       uuid.UUID
	listingModel    ListingModel
	listingTitle    string
	listingPrice    int64
	stay            *StayDetails
	trip            *TripDetails
	specialRequests string
	createdAt       time.Time
	updatedAt       time.Time
}

// CreateSpec carries the raw creation request. Field names in the missing
// list mirror the API payload so one combined message can be rendered.
type CreateSpec struct {
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
}

func (s CreateSpec) missingFields() []string {
	var missing []string
	require := func(name string, present bool) {
		if !present {
			missing = append(missing, name)
		}
	}

	require("bookingType", s.BookingType != "")
	require("startDate", !s.StartDate.IsZero())
	require("endDate", !s.EndDate.IsZero())
	require("totalAmount", s.TotalAmount != 0)
	require("paymentMethod", s.PaymentMethod != "")
	require("bookerId", s.BookerID != uuid.Nil)
	require("bookerName", s.BookerName != "")
	require("bookerEmail", s.BookerEmail != "")
	require("bookerPhone", s.BookerPhone != "")
	require("listingId", s.ListingID != uuid.Nil)
	require("listingModel", s.ListingModel != "")
	require("listingTitle", s.ListingTitle != "")
	require("listingPrice", s.ListingPrice != 0)
	require("ownerId", s.OwnerID != uuid.Nil)
	require("ownerName", s.OwnerName != "")
	return missing
}

// NewBooking validates the creation request and produces a pending booking.
// Status and payment status are forced to pending regardless of the caller.
func NewBooking(spec CreateSpec) (*Booking, error) {
	if missing := spec.missingFields(); len(missing) > 0 {
		return nil, NewValidationError(missing)
	}

	bookingType := Type(spec.BookingType)
	if !bookingType.IsValid() {
		return nil, ErrInvalidBookingType
	}

	paymentMethod := PaymentMethod(spec.PaymentMethod)
	if !paymentMethod.IsValid() {
		return nil, ErrInvalidPaymentMethod
	}

	if spec.TotalAmount < 0 {
		return nil, ErrNonPositiveAmount
	}

	dates, err := NewDateRange(spec.StartDate, spec.EndDate)
	if err != nil {
		return nil, err
	}

	listingModel := ListingModel(spec.ListingModel)
	if !listingModel.IsValid() || !listingModel.Matches(bookingType) {
		return nil, ErrListingModelMismatch
	}

	b := &Booking{
		id:              uuid.New(),
		bookingType:     bookingType,
		dates:           dates,
		totalAmount:     spec.TotalAmount,
		paymentMethod:   paymentMethod,
		paymentStatus:   PaymentStatusPending,
		status:          StatusPending,
		bookerID:        spec.BookerID,
		booker:          NewParty(spec.BookerName, spec.BookerEmail, spec.BookerPhone, spec.BookerAddress),
		ownerID:         spec.OwnerID,
		owner:           NewParty(spec.OwnerName, spec.OwnerEmail, spec.OwnerPhone, ""),
		listingID:       spec.ListingID,
		listingModel:    listingModel,
		listingTitle:    spec.ListingTitle,
		listingPrice:    spec.ListingPrice,
		specialRequests: spec.SpecialRequests,
	}

	switch bookingType {
	case TypeRoom:
		stay, err := NewStayDetails(spec.NumberOfGuests)
		if err != nil {
			return nil, err
		}
		b.stay = &stay
	case TypeVehicle:
		trip, err := NewTripDetails(spec.PickupLocation, spec.DropoffLocation)
		if err != nil {
			return nil, err
		}
		b.trip = &trip
	}

	return b, nil
}

func ReconstructBooking(
	id uuid.UUID,
	bookingType Type,
	dates DateRange,
	totalAmount int64,
	paymentMethod PaymentMethod,
	paymentStatus PaymentStatus,
	status Status,
	bookerID uuid.UUID,
	booker Party,
	ownerID uuid.UUID,
	owner Party,
	listingID uuid.UUID,
	listingModel ListingModel,
	listingTitle string,
	listingPrice int64,
	stay *StayDetails,
	trip *TripDetails,
	specialRequests string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:              id,
		bookingType:     bookingType,
		dates:           dates,
		totalAmount:     totalAmount,
		paymentMethod:   paymentMethod,
		paymentStatus:   paymentStatus,
		status:          status,
		bookerID:        bookerID,
		booker:          booker,
		ownerID:         ownerID,
		owner:           owner,
		listingID:       listingID,
		listingModel:    listingModel,
		listingTitle:    listingTitle,
		listingPrice:    listingPrice,
		stay:            stay,
		trip:            trip,
		specialRequests: specialRequests,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (b *Booking) ID() uuid.UUID              { return b.id }
func (b *Booking) BookingType() Type          { return b.bookingType }
func (b *Booking) Dates() DateRange           { return b.dates }
func (b *Booking) TotalAmount() int64         { return b.totalAmount }
func (b *Booking) PaymentMethod() PaymentMethod { return b.paymentMethod }
func (b *Booking) PaymentStatus() PaymentStatus { return b.paymentStatus }
func (b *Booking) Status() Status             { return b.status }
func (b *Booking) BookerID() uuid.UUID        { return b.bookerID }
func (b *Booking) Booker() Party              { return b.booker }
func (b *Booking) OwnerID() uuid.UUID         { return b.ownerID }
func (b *Booking) Owner() Party               { return b.owner }
func (b *Booking) ListingID() uuid.UUID       { return b.listingID }
func (b *Booking) ListingModel() ListingModel { return b.listingModel }
func (b *Booking) ListingTitle() string       { return b.listingTitle }
func (b *Booking) ListingPrice() int64        { return b.listingPrice }
func (b *Booking) Stay() *StayDetails         { return b.stay }
func (b *Booking) Trip() *TripDetails         { return b.trip }
func (b *Booking) SpecialRequests() string    { return b.specialRequests }
func (b *Booking) CreatedAt() time.Time       { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time       { return b.updatedAt }

func (b *Booking) IsTerminal() bool {
	return b.status.IsTerminal()
}
