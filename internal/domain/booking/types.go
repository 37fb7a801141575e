package booking

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// validTransitions is the forward-only lifecycle graph. Terminal states map to
// an empty slice so IsTerminal can distinguish them from unknown values.
var validTransitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCancelled: {},
	StatusCompleted: {},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	_, ok := validTransitions[s]
	return ok
}

func (s Status) CanTransitionTo(target Status) bool {
	allowed, ok := validTransitions[s]
	if !ok {
		return false
	}
	for _, t := range allowed {
		if t == target {
			return true
		}
	}
	return false
}

func (s Status) IsTerminal() bool {
	allowed, ok := validTransitions[s]
	if !ok {
		return true
	}
	return len(allowed) == 0
}

func ParseStatus(v string) (Status, error) {
	s := Status(v)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

type Type string

const (
	TypeRoom    Type = "room"
	TypeVehicle Type = "vehicle"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeRoom, TypeVehicle:
		return true
	default:
		return false
	}
}

// ListingModel names the referenced listing collection for the polymorphic
// listing reference.
type ListingModel string

const (
	ListingModelRoom    ListingModel = "Room"
	ListingModelVehicle ListingModel = "Vehicle"
)

func (m ListingModel) String() string {
	return string(m)
}

func (m ListingModel) IsValid() bool {
	switch m {
	case ListingModelRoom, ListingModelVehicle:
		return true
	default:
		return false
	}
}

func ParseListingModel(v string) (ListingModel, error) {
	m := ListingModel(v)
	if !m.IsValid() {
		return "", ErrInvalidListingModel
	}
	return m, nil
}

// Matches reports whether the listing model corresponds to the booking type.
func (m ListingModel) Matches(t Type) bool {
	return (m == ListingModelRoom && t == TypeRoom) ||
		(m == ListingModelVehicle && t == TypeVehicle)
}

type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "cash"
	PaymentMethodCard PaymentMethod = "card"
	PaymentMethodUPI  PaymentMethod = "upi"
)

func (p PaymentMethod) String() string {
	return string(p)
}

func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodUPI:
		return true
	default:
		return false
	}
}

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

func (p PaymentStatus) String() string {
	return string(p)
}

func (p PaymentStatus) IsValid() bool {
	switch p {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusRefunded:
		return true
	default:
		return false
	}
}
