package commands

import (
	"context"
	"encoding/json"
	"time"

	"rentledger/internal/domain/booking"
	"rentledger/internal/domain/earnings"
	"rentledger/internal/infra"
	"rentledger/internal/pkg/clock"
	"rentledger/internal/pkg/errs"
	"rentledger/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrListingNotFound      = errs.ErrListingNotFound
	ErrListingUnavailable   = errs.ErrListingUnavailable
	ErrListingOwnerMismatch = errs.New("owner does not match the listing")
	ErrBookingNotFound      = errs.ErrBookingNotFound
	ErrNotBookingOwner      = errs.ErrNotBookingOwner
	ErrNotBookingBooker     = errs.ErrNotBookingBooker
	ErrIllegalTransition    = errs.ErrIllegalTransition
	ErrTerminalState        = errs.ErrTerminalState
	ErrPaymentNotPending    = errs.New("payment status is not pending")
)

const (
	topicBookingCreated       = "booking_created"
	topicBookingStatusChanged = "booking_status_changed"
	topicBookingPaid          = "booking_paid"
)

// CreateBookingRequest carries the raw creation payload. The booker identity
// comes from the authenticated principal, never from the payload.
type CreateBookingRequest struct {
	BookingType     string
	StartDate       time.Time
	EndDate         time.Time
	TotalAmount     int64
	PaymentMethod   string
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

type CreateBookingResult struct {
	BookingID uuid.UUID
}

type BookingCommands interface {
	Create(ctx context.Context, req CreateBookingRequest, bookerID uuid.UUID) (*CreateBookingResult, error)
	// UpdateStatus moves the booking along the lifecycle graph. Owner only.
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, newStatus string, actorID uuid.UUID) error
	// Cancel is the booker-side cancellation path.
	Cancel(ctx context.Context, bookingID uuid.UUID, actorID uuid.UUID) error
	// MarkPaid moves payment status from pending to paid. Owner only.
	MarkPaid(ctx context.Context, bookingID uuid.UUID, actorID uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{uow: uow, clock: clk}
}

func (uc *bookingCommandsImpl) Create(ctx context.Context, req CreateBookingRequest, bookerID uuid.UUID) (*CreateBookingResult, error) {
	entity, err := booking.NewBooking(booking.CreateSpec{
		BookingType:     req.BookingType,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		TotalAmount:     req.TotalAmount,
		PaymentMethod:   req.PaymentMethod,
		BookerID:        bookerID,
		BookerName:      req.BookerName,
		BookerEmail:     req.BookerEmail,
		BookerPhone:     req.BookerPhone,
		BookerAddress:   req.BookerAddress,
		ListingID:       req.ListingID,
		ListingModel:    req.ListingModel,
		ListingTitle:    req.ListingTitle,
		ListingPrice:    req.ListingPrice,
		OwnerID:         req.OwnerID,
		OwnerName:       req.OwnerName,
		OwnerEmail:      req.OwnerEmail,
		OwnerPhone:      req.OwnerPhone,
		NumberOfGuests:  req.NumberOfGuests,
		PickupLocation:  req.PickupLocation,
		DropoffLocation: req.DropoffLocation,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		return nil, err
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		listing, derr := tx.Reads().ListingForUpdate(ctx, entity.ListingID(), entity.ListingModel())
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrListingNotFound
			}
			return derr
		}
		if listing.OwnerID != entity.OwnerID() {
			return ErrListingOwnerMismatch
		}

		overlapping, derr := tx.Reads().CountOverlappingBookings(
			ctx, entity.ListingID(), entity.ListingModel(),
			entity.Dates().Start(), entity.Dates().End(),
		)
		if derr != nil {
			return derr
		}
		if overlapping > 0 {
			return ErrListingUnavailable
		}

		id, derr := tx.Bookings().Create(ctx, tx.DB(), entity)
		if derr != nil {
			return derr
		}
		createdID = id

		return uc.appendEvent(ctx, tx, id, topicBookingCreated, map[string]any{
			"booking_id":   id,
			"booking_type": entity.BookingType().String(),
			"listing_id":   entity.ListingID(),
		})
	})
	if err != nil {
		return nil, err
	}

	return &CreateBookingResult{BookingID: createdID}, nil
}

func (uc *bookingCommandsImpl) UpdateStatus(ctx context.Context, bookingID uuid.UUID, newStatus string, actorID uuid.UUID) error {
	target, err := booking.ParseStatus(newStatus)
	if err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := uc.lockBooking(ctx, tx, bookingID)
		if derr != nil {
			return derr
		}
		if snap.OwnerID != actorID {
			return ErrNotBookingOwner
		}
		return uc.applyTransition(ctx, tx, snap, target)
	})
}

func (uc *bookingCommandsImpl) Cancel(ctx context.Context, bookingID uuid.UUID, actorID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := uc.lockBooking(ctx, tx, bookingID)
		if derr != nil {
			return derr
		}
		if snap.BookerID != actorID {
			return ErrNotBookingBooker
		}
		return uc.applyTransition(ctx, tx, snap, booking.StatusCancelled)
	})
}

func (uc *bookingCommandsImpl) MarkPaid(ctx context.Context, bookingID uuid.UUID, actorID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := uc.lockBooking(ctx, tx, bookingID)
		if derr != nil {
			return derr
		}
		if snap.OwnerID != actorID {
			return ErrNotBookingOwner
		}
		if snap.PaymentStatus != booking.PaymentStatusPending {
			return ErrPaymentNotPending
		}

		if derr = tx.Bookings().UpdatePaymentStatus(ctx, tx.DB(), snap.ID, booking.PaymentStatusPaid); derr != nil {
			return derr
		}

		return uc.appendEvent(ctx, tx, snap.ID, topicBookingPaid, map[string]any{
			"booking_id": snap.ID,
		})
	})
}

func (uc *bookingCommandsImpl) lockBooking(ctx context.Context, tx shared.Tx, bookingID uuid.UUID) (*shared.BookingSnapshot, error) {
	snap, err := tx.Reads().BookingForUpdate(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return snap, nil
}

// applyTransition holds the single terminal-state guard both cancellation
// paths and the owner status update converge on. Accrual happens here and
// only here, inside the caller's transaction, so a crash can never separate
// the completed transition from its earnings entry.
func (uc *bookingCommandsImpl) applyTransition(ctx context.Context, tx shared.Tx, snap *shared.BookingSnapshot, target booking.Status) error {
	if !snap.Status.CanTransitionTo(target) {
		if snap.Status.IsTerminal() {
			return ErrTerminalState
		}
		return ErrIllegalTransition
	}

	if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), snap.ID, target); err != nil {
		return err
	}

	if target == booking.StatusCompleted {
		entry, err := earnings.NewEntry(
			snap.ID, snap.OwnerID, snap.TotalAmount,
			snap.BookingType, snap.ListingTitle, uc.clock.Now(),
		)
		if err != nil {
			return err
		}
		if err := tx.Earnings().Accrue(ctx, tx.DB(), entry); err != nil {
			return err
		}
	}

	return uc.appendEvent(ctx, tx, snap.ID, topicBookingStatusChanged, map[string]any{
		"booking_id": snap.ID,
		"from":       snap.Status.String(),
		"to":         target.String(),
	})
}

func (uc *bookingCommandsImpl) appendEvent(ctx context.Context, tx shared.Tx, bookingID uuid.UUID, topic string, payload map[string]any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return tx.Events().Append(ctx, tx.DB(), bookingID, topic, body)
}
