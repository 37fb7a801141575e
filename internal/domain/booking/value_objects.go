package booking

import (
	"sort"
	"strings"
	"time"
)

// DateRange is the rental period. Start must precede end; zero-length and
// inverted ranges are rejected.
type DateRange struct {
	start time.Time
	end   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	if start.IsZero() || end.IsZero() {
		return DateRange{}, ErrInvalidDateRange
	}
	if !start.Before(end) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{start: start, end: end}, nil
}

func (r DateRange) Start() time.Time {
	return r.start
}

func (r DateRange) End() time.Time {
	return r.end
}

func (r DateRange) Duration() time.Duration {
	return r.end.Sub(r.start)
}

// Overlaps uses half-open [start, end) semantics: back-to-back bookings where
// one ends exactly when the next starts do not collide.
func (r DateRange) Overlaps(other DateRange) bool {
	return r.start.Before(other.end) && other.start.Before(r.end)
}

// Party is a point-in-time contact snapshot of a booking participant.
// Contact details are frozen at booking time and do not track later profile
// edits.
type Party struct {
	name    string
	email   string
	phone   string
	address string
}

func NewParty(name, email, phone, address string) Party {
	return Party{
		name:    strings.TrimSpace(name),
		email:   strings.TrimSpace(email),
		phone:   strings.TrimSpace(phone),
		address: strings.TrimSpace(address),
	}
}

func (p Party) Name() string    { return p.name }
func (p Party) Email() string   { return p.email }
func (p Party) Phone() string   { return p.phone }
func (p Party) Address() string { return p.address }

// StayDetails holds the room-specific portion of a booking.
type StayDetails struct {
	numberOfGuests int
}

func NewStayDetails(numberOfGuests int) (StayDetails, error) {
	if numberOfGuests <= 0 {
		return StayDetails{}, ErrGuestsRequired
	}
	return StayDetails{numberOfGuests: numberOfGuests}, nil
}

func (d StayDetails) NumberOfGuests() int { return d.numberOfGuests }

// TripDetails holds the vehicle-specific portion of a booking.
type TripDetails struct {
	pickupLocation  string
	dropoffLocation string
}

func NewTripDetails(pickup, dropoff string) (TripDetails, error) {
	pickup = strings.TrimSpace(pickup)
	dropoff = strings.TrimSpace(dropoff)
	if pickup == "" || dropoff == "" {
		return TripDetails{}, ErrLocationsRequired
	}
	return TripDetails{pickupLocation: pickup, dropoffLocation: dropoff}, nil
}

func (d TripDetails) PickupLocation() string  { return d.pickupLocation }
func (d TripDetails) DropoffLocation() string { return d.dropoffLocation }

// ValidationError aggregates every missing required field of a creation
// request so callers can render one combined message.
type ValidationError struct {
	MissingFields []string
}

func NewValidationError(missing []string) *ValidationError {
	sorted := make([]string, len(missing))
	copy(sorted, missing)
	sort.Strings(sorted)
	return &ValidationError{MissingFields: sorted}
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.MissingFields, ", ")
}

// Is lets errors.Is treat any ValidationError as ErrMissingFields.
func (e *ValidationError) Is(target error) bool {
	return target == ErrMissingFields
}
