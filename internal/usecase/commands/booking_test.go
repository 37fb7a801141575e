//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"rentledger/internal/domain/booking"
	"rentledger/internal/domain/earnings"
	"rentledger/internal/infra"
	"rentledger/internal/pkg/clock"
	"rentledger/internal/usecase/commands"
	"rentledger/internal/usecase/shared"
	"rentledger/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeState backs an in-memory unit of work so lifecycle rules can be
// exercised without a database. Transactionality itself is covered by the
// e2e suite.
type fakeState struct {
	booking     *shared.BookingSnapshot
	listing     *shared.ListingSnapshot
	overlapping int64

	createdBookings []*booking.Booking
	statusUpdates   []booking.Status
	paymentUpdates  []booking.PaymentStatus
	accruals        []earnings.Entry
	eventTopics     []string
	withinCalls     int
}

type fakeUoW struct{ state *fakeState }

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.state.withinCalls++
	return fn(ctx, &fakeTx{state: u.state})
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db infra.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return &fakeReads{state: u.state}
}

type fakeTx struct{ state *fakeState }

func (t *fakeTx) Bookings() shared.BookingRepository { return &fakeBookingRepo{state: t.state} }
func (t *fakeTx) Earnings() shared.EarningsRepository {
	return &fakeEarningsRepo{state: t.state}
}
func (t *fakeTx) Users() shared.UserRepository   { return &fakeUserRepo{} }
func (t *fakeTx) Events() shared.EventRepository { return &fakeEventRepo{state: t.state} }
func (t *fakeTx) Reads() shared.CommandReads     { return &fakeReads{state: t.state} }
func (t *fakeTx) DB() infra.DBTX                 { return nil }

type fakeReads struct{ state *fakeState }

func (r *fakeReads) BookingForUpdate(_ context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	if r.state.booking == nil || r.state.booking.ID != id {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	snap := *r.state.booking
	return &snap, nil
}

func (r *fakeReads) ListingForUpdate(_ context.Context, id uuid.UUID, model booking.ListingModel) (*shared.ListingSnapshot, error) {
	if r.state.listing == nil || r.state.listing.ID != id || r.state.listing.Model != model {
		return nil, infra.WrapRepoErr("listing not found", nil, infra.KindNotFound)
	}
	snap := *r.state.listing
	return &snap, nil
}

func (r *fakeReads) CountOverlappingBookings(_ context.Context, _ uuid.UUID, _ booking.ListingModel, _, _ time.Time) (int64, error) {
	return r.state.overlapping, nil
}

type fakeBookingRepo struct{ state *fakeState }

func (r *fakeBookingRepo) Create(_ context.Context, _ infra.DBTX, b *booking.Booking) (uuid.UUID, error) {
	r.state.createdBookings = append(r.state.createdBookings, b)
	return b.ID(), nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, _ infra.DBTX, id uuid.UUID, status booking.Status) error {
	if r.state.booking == nil || r.state.booking.ID != id {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	r.state.statusUpdates = append(r.state.statusUpdates, status)
	r.state.booking.Status = status
	return nil
}

func (r *fakeBookingRepo) UpdatePaymentStatus(_ context.Context, _ infra.DBTX, id uuid.UUID, status booking.PaymentStatus) error {
	if r.state.booking == nil || r.state.booking.ID != id {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	r.state.paymentUpdates = append(r.state.paymentUpdates, status)
	r.state.booking.PaymentStatus = status
	return nil
}

type fakeEarningsRepo struct{ state *fakeState }

func (r *fakeEarningsRepo) Accrue(_ context.Context, _ infra.DBTX, entry earnings.Entry) error {
	r.state.accruals = append(r.state.accruals, entry)
	return nil
}

type fakeUserRepo struct{}

func (r *fakeUserRepo) UpdateLastLogin(_ context.Context, _ infra.DBTX, _ uuid.UUID) error {
	return nil
}

type fakeEventRepo struct{ state *fakeState }

func (r *fakeEventRepo) Append(_ context.Context, _ infra.DBTX, _ uuid.UUID, topic string, _ []byte) error {
	r.state.eventTopics = append(r.state.eventTopics, topic)
	return nil
}

func newCommands(state *fakeState) commands.BookingCommands {
	clk := clock.NewMockClock(time.Date(2026, 3, 13, 10, 0, 0, 0, time.UTC))
	return commands.NewBookingCommands(&fakeUoW{state: state}, clk)
}

func createRequestFrom(b *builder.BookingBuilder) commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
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

func TestCreate(t *testing.T) {
	t.Run("creates pending booking and emits event", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		state := &fakeState{listing: b.BuildListingSnapshot()}
		uc := newCommands(state)

		result, err := uc.Create(context.Background(), createRequestFrom(b), b.BookerID)
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.NotEqual(t, uuid.Nil, result.BookingID)

		require.Len(t, state.createdBookings, 1)
		created := state.createdBookings[0]
		assert.Equal(t, booking.StatusPending, created.Status())
		assert.Equal(t, b.BookerID, created.BookerID())
		assert.Equal(t, []string{"booking_created"}, state.eventTopics)
	})

	t.Run("invalid payload never opens a transaction", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		b.BookerName = ""
		state := &fakeState{listing: b.BuildListingSnapshot()}
		uc := newCommands(state)

		_, err := uc.Create(context.Background(), createRequestFrom(b), b.BookerID)
		require.ErrorIs(t, err, booking.ErrMissingFields)
		assert.Zero(t, state.withinCalls)
	})

	t.Run("unknown listing", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		state := &fakeState{}
		uc := newCommands(state)

		_, err := uc.Create(context.Background(), createRequestFrom(b), b.BookerID)
		require.ErrorIs(t, err, commands.ErrListingNotFound)
		assert.Empty(t, state.createdBookings)
	})

	t.Run("owner in payload must match listing row", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		listing := b.BuildListingSnapshot()
		listing.OwnerID = uuid.New()
		state := &fakeState{listing: listing}
		uc := newCommands(state)

		_, err := uc.Create(context.Background(), createRequestFrom(b), b.BookerID)
		require.ErrorIs(t, err, commands.ErrListingOwnerMismatch)
	})

	t.Run("overlapping dates reject the booking", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		state := &fakeState{listing: b.BuildListingSnapshot(), overlapping: 1}
		uc := newCommands(state)

		_, err := uc.Create(context.Background(), createRequestFrom(b), b.BookerID)
		require.ErrorIs(t, err, commands.ErrListingUnavailable)
		assert.Empty(t, state.createdBookings)
		assert.Empty(t, state.eventTopics)
	})
}

func TestUpdateStatus(t *testing.T) {
	t.Run("owner confirms pending booking", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		state := &fakeState{booking: b.BuildSnapshot()}
		uc := newCommands(state)

		err := uc.UpdateStatus(context.Background(), state.booking.ID, "confirmed", b.OwnerID)
		require.NoError(t, err)

		assert.Equal(t, []booking.Status{booking.StatusConfirmed}, state.statusUpdates)
		assert.Empty(t, state.accruals, "confirmation must not accrue earnings")
		assert.Equal(t, []string{"booking_status_changed"}, state.eventTopics)
	})

	t.Run("unknown status string", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		state := &fakeState{booking: b.BuildSnapshot()}
		uc := newCommands(state)

		err := uc.UpdateStatus(context.Background(), state.booking.ID, "archived", b.OwnerID)
		require.ErrorIs(t, err, booking.ErrInvalidStatus)
		assert.Zero(t, state.withinCalls)
	})

	t.Run("unknown booking", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		state := &fakeState{}
		uc := newCommands(state)

		err := uc.UpdateStatus(context.Background(), uuid.New(), "confirmed", b.OwnerID)
		require.ErrorIs(t, err, commands.ErrBookingNotFound)
	})

	t.Run("booker cannot drive the owner transition for any status", func(t *testing.T) {
		for _, target := range []string{"pending", "confirmed", "cancelled", "completed"} {
			t.Run(target, func(t *testing.T) {
				b := builder.NewBookingBuilder()
				state := &fakeState{booking: b.BuildSnapshot()}
				uc := newCommands(state)

				err := uc.UpdateStatus(context.Background(), state.booking.ID, target, b.BookerID)
				require.ErrorIs(t, err, commands.ErrNotBookingOwner)
				assert.Empty(t, state.statusUpdates)
				assert.Empty(t, state.accruals)
			})
		}
	})

	t.Run("pending cannot skip to completed", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		state := &fakeState{booking: b.BuildSnapshot()}
		uc := newCommands(state)

		err := uc.UpdateStatus(context.Background(), state.booking.ID, "completed", b.OwnerID)
		require.ErrorIs(t, err, commands.ErrIllegalTransition)
		assert.Empty(t, state.accruals)
	})

	t.Run("completing a confirmed booking accrues once", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus("confirmed").WithTotalAmount(3000)
		state := &fakeState{booking: b.BuildSnapshot()}
		uc := newCommands(state)

		err := uc.UpdateStatus(context.Background(), state.booking.ID, "completed", b.OwnerID)
		require.NoError(t, err)

		require.Len(t, state.accruals, 1)
		entry := state.accruals[0]
		assert.Equal(t, state.booking.ID, entry.BookingID())
		assert.Equal(t, b.OwnerID, entry.OwnerID())
		assert.Equal(t, int64(3000), entry.Amount())
		assert.Equal(t, booking.TypeRoom, entry.BookingType())

		// A replayed completion sees the terminal state and accrues nothing
		err = uc.UpdateStatus(context.Background(), state.booking.ID, "completed", b.OwnerID)
		require.ErrorIs(t, err, commands.ErrTerminalState)
		assert.Len(t, state.accruals, 1)
	})

	t.Run("terminal states reject every transition", func(t *testing.T) {
		for _, terminal := range []string{"cancelled", "completed"} {
			b := builder.NewBookingBuilder().WithStatus(terminal)
			state := &fakeState{booking: b.BuildSnapshot()}
			uc := newCommands(state)

			err := uc.UpdateStatus(context.Background(), state.booking.ID, "confirmed", b.OwnerID)
			require.ErrorIs(t, err, commands.ErrTerminalState, "from %s", terminal)
		}
	})
}

func TestCancel(t *testing.T) {
	t.Run("booker cancels pending booking", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		state := &fakeState{booking: b.BuildSnapshot()}
		uc := newCommands(state)

		err := uc.Cancel(context.Background(), state.booking.ID, b.BookerID)
		require.NoError(t, err)
		assert.Equal(t, []booking.Status{booking.StatusCancelled}, state.statusUpdates)
		assert.Empty(t, state.accruals, "cancellation must never accrue earnings")
	})

	t.Run("booker cancels confirmed booking", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus("confirmed")
		state := &fakeState{booking: b.BuildSnapshot()}
		uc := newCommands(state)

		err := uc.Cancel(context.Background(), state.booking.ID, b.BookerID)
		require.NoError(t, err)
		assert.Empty(t, state.accruals)
	})

	t.Run("owner cannot use the booker cancellation path", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		state := &fakeState{booking: b.BuildSnapshot()}
		uc := newCommands(state)

		err := uc.Cancel(context.Background(), state.booking.ID, b.OwnerID)
		require.ErrorIs(t, err, commands.ErrNotBookingBooker)
	})

	t.Run("completed booking cannot be cancelled", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus("completed")
		state := &fakeState{booking: b.BuildSnapshot()}
		uc := newCommands(state)

		err := uc.Cancel(context.Background(), state.booking.ID, b.BookerID)
		require.ErrorIs(t, err, commands.ErrTerminalState)
	})
}

func TestMarkPaid(t *testing.T) {
	t.Run("owner marks pending payment paid", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		state := &fakeState{booking: b.BuildSnapshot()}
		uc := newCommands(state)

		err := uc.MarkPaid(context.Background(), state.booking.ID, b.OwnerID)
		require.NoError(t, err)
		assert.Equal(t, []booking.PaymentStatus{booking.PaymentStatusPaid}, state.paymentUpdates)
		assert.Equal(t, []string{"booking_paid"}, state.eventTopics)
	})

	t.Run("booker cannot mark paid", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		state := &fakeState{booking: b.BuildSnapshot()}
		uc := newCommands(state)

		err := uc.MarkPaid(context.Background(), state.booking.ID, b.BookerID)
		require.ErrorIs(t, err, commands.ErrNotBookingOwner)
	})

	t.Run("already paid", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		b.PaymentStatus = "paid"
		state := &fakeState{booking: b.BuildSnapshot()}
		uc := newCommands(state)

		err := uc.MarkPaid(context.Background(), state.booking.ID, b.OwnerID)
		require.ErrorIs(t, err, commands.ErrPaymentNotPending)
		assert.Empty(t, state.paymentUpdates)
	})
}

// Full room lifecycle: the earnings ledger sees exactly one 3000 accrual and
// the vehicle cancellation never reaches the ledger.
func TestLifecycleScenarios(t *testing.T) {
	t.Run("room booking completes and accrues", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithTotalAmount(3000)
		state := &fakeState{booking: b.BuildSnapshot()}
		uc := newCommands(state)
		id := state.booking.ID

		require.NoError(t, uc.UpdateStatus(context.Background(), id, "confirmed", b.OwnerID))
		require.NoError(t, uc.UpdateStatus(context.Background(), id, "completed", b.OwnerID))

		require.Len(t, state.accruals, 1)
		assert.Equal(t, int64(3000), state.accruals[0].Amount())
		assert.Equal(t, []booking.Status{booking.StatusConfirmed, booking.StatusCompleted}, state.statusUpdates)
	})

	t.Run("vehicle booking cancelled before completion", func(t *testing.T) {
		b := builder.NewBookingBuilder().AsVehicle()
		state := &fakeState{booking: b.BuildSnapshot()}
		uc := newCommands(state)
		id := state.booking.ID

		require.NoError(t, uc.UpdateStatus(context.Background(), id, "confirmed", b.OwnerID))
		require.NoError(t, uc.Cancel(context.Background(), id, b.BookerID))

		assert.Empty(t, state.accruals)
		require.ErrorIs(t, uc.UpdateStatus(context.Background(), id, "completed", b.OwnerID), commands.ErrTerminalState)
	})
}
