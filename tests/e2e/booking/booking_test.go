//go:build e2e

package booking_test

import (
	"net/http"
	"testing"
	"time"

	"rentledger/internal/handler/dto/response"
	"rentledger/tests/common/authtest"
	"rentledger/tests/common/builder"
	"rentledger/tests/common/dbtest"
	"rentledger/tests/common/httptest"
	"rentledger/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL = "/api/bookings"
	earningsURL = "/api/earnings"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

// parties holds the seeded marketplace actors shared by most scenarios.
type parties struct {
	ownerID     uuid.UUID
	bookerID    uuid.UUID
	listingID   uuid.UUID
	ownerToken  string
	bookerToken string
}

func (s *BookingSuite) seedParties(t *testing.T, model string, price int64) parties {
	ownerID := dbtest.CreateTestUser(t, s.DB, "Ravi Nair", "owner@example.com")
	bookerID := dbtest.CreateTestUser(t, s.DB, "Asha Verma", "booker@example.com")
	listingID := dbtest.CreateTestListing(t, s.DB, ownerID, model, "Sunny Lakeside Room", price)

	return parties{
		ownerID:     ownerID,
		bookerID:    bookerID,
		listingID:   listingID,
		ownerToken:  authtest.LoginUser(t, s.Router, "owner@example.com", "password123"),
		bookerToken: authtest.LoginUser(t, s.Router, "booker@example.com", "password123"),
	}
}

func (s *BookingSuite) createBooking(t *testing.T, p parties, b *builder.BookingBuilder) uuid.UUID {
	b.ListingID = p.listingID
	b.OwnerID = p.ownerID

	rec := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
		b.BuildCreateRequestDTO(), p.bookerToken)

	var created response.CreateBookingResponse
	httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &created)
	require.NotEqual(t, uuid.Nil, created.ID)
	return created.ID
}

// =============================================================================
// TestBookingLifecycle - Create, confirm, complete, and the earnings ledger
// =============================================================================

func (s *BookingSuite) TestBookingLifecycle() {
	s.Run("Normal case: room booking completes and earnings accrue exactly once", func() {
		t := s.T()
		p := s.seedParties(t, "Room", 1000)

		bookingID := s.createBooking(t, p, builder.NewBookingBuilder().WithTotalAmount(3000))
		statusURL := bookingsURL + "/" + bookingID.String() + "/status"

		// Owner confirms, then completes
		rec := httptest.PerformRequest(t, s.Router, http.MethodPatch, statusURL,
			map[string]any{"status": "confirmed"}, p.ownerToken)
		httptest.AssertSuccessResponse(t, rec, http.StatusNoContent, nil)

		rec = httptest.PerformRequest(t, s.Router, http.MethodPatch, statusURL,
			map[string]any{"status": "completed"}, p.ownerToken)
		httptest.AssertSuccessResponse(t, rec, http.StatusNoContent, nil)

		// The booking is visible to the booker with its final status
		var view response.BookingResponse
		rec = httptest.PerformRequest(t, s.Router, http.MethodGet,
			bookingsURL+"/"+bookingID.String(), nil, p.bookerToken)
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &view)
		require.Equal(t, "completed", view.Status)

		// Owner aggregates reflect the single accrual
		var summary response.EarningsSummaryResponse
		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, earningsURL, nil, p.ownerToken)
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &summary)
		require.Equal(t, int64(3000), summary.TotalEarnings)
		require.Equal(t, int32(1), summary.CompletedBookings)
		require.Equal(t, int64(3000), summary.PendingPayout)

		var history []response.EarningsHistoryResponse
		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, earningsURL+"/history", nil, p.ownerToken)
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &history)
		require.Len(t, history, 1)
		require.Equal(t, bookingID, history[0].BookingID)
		require.Equal(t, int64(3000), history[0].Amount)

		// A replayed completion is rejected and accrues nothing further
		rec = httptest.PerformRequest(t, s.Router, http.MethodPatch, statusURL,
			map[string]any{"status": "completed"}, p.ownerToken)
		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "terminal state")

		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, earningsURL, nil, p.ownerToken)
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &summary)
		require.Equal(t, int64(3000), summary.TotalEarnings)
		require.Equal(t, int32(1), summary.CompletedBookings)
	})

	s.Run("Normal case: cancelled vehicle booking never reaches the ledger", func() {
		t := s.T()
		p := s.seedParties(t, "Vehicle", 1500)

		bookingID := s.createBooking(t, p, builder.NewBookingBuilder().AsVehicle())

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost,
			bookingsURL+"/"+bookingID.String()+"/cancel", nil, p.bookerToken)
		httptest.AssertSuccessResponse(t, rec, http.StatusNoContent, nil)

		var summary response.EarningsSummaryResponse
		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, earningsURL, nil, p.ownerToken)
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &summary)
		require.Zero(t, summary.TotalEarnings)
		require.Zero(t, summary.CompletedBookings)

		// Cancelled is terminal; the owner cannot revive the booking
		rec = httptest.PerformRequest(t, s.Router, http.MethodPatch,
			bookingsURL+"/"+bookingID.String()+"/status",
			map[string]any{"status": "confirmed"}, p.ownerToken)
		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "terminal state")
	})

	s.Run("Error case: lifecycle authorization is per booking party", func() {
		t := s.T()
		p := s.seedParties(t, "Room", 1000)

		bookingID := s.createBooking(t, p, builder.NewBookingBuilder())
		statusURL := bookingsURL + "/" + bookingID.String() + "/status"

		// Booker cannot drive the owner transition
		rec := httptest.PerformRequest(t, s.Router, http.MethodPatch, statusURL,
			map[string]any{"status": "confirmed"}, p.bookerToken)
		httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "listing owner")

		// Owner cannot use the booker cancellation path
		rec = httptest.PerformRequest(t, s.Router, http.MethodPost,
			bookingsURL+"/"+bookingID.String()+"/cancel", nil, p.ownerToken)
		httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "booker")

		// A third party cannot even view the booking
		thirdToken := authtest.CreateAndLogin(t, s.DB, s.Router, "Maya Iyer", "third@example.com")
		rec = httptest.PerformRequest(t, s.Router, http.MethodGet,
			bookingsURL+"/"+bookingID.String(), nil, thirdToken)
		httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "Not authorized")
	})

	s.Run("Error case: pending booking cannot skip to completed", func() {
		t := s.T()
		p := s.seedParties(t, "Room", 1000)

		bookingID := s.createBooking(t, p, builder.NewBookingBuilder())

		rec := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			bookingsURL+"/"+bookingID.String()+"/status",
			map[string]any{"status": "completed"}, p.ownerToken)
		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "Illegal status transition")
	})
}

// =============================================================================
// TestBookingAvailability - Overlap rejection and the availability endpoint
// =============================================================================

func (s *BookingSuite) TestBookingAvailability() {
	s.Run("Error case: overlapping dates on the same listing are rejected", func() {
		t := s.T()
		p := s.seedParties(t, "Room", 1000)

		first := builder.NewBookingBuilder()
		s.createBooking(t, p, first)

		// Same listing, range intersects the first booking
		overlapping := builder.NewBookingBuilder().
			WithDates(first.StartDate.AddDate(0, 0, 1), first.EndDate.AddDate(0, 0, 1))
		overlapping.ListingID = p.listingID
		overlapping.OwnerID = p.ownerID

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			overlapping.BuildCreateRequestDTO(), p.bookerToken)
		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "not available")
	})

	s.Run("Normal case: back-to-back bookings do not overlap", func() {
		t := s.T()
		p := s.seedParties(t, "Room", 1000)

		first := builder.NewBookingBuilder()
		s.createBooking(t, p, first)

		// End date is exclusive, so a booking starting exactly at checkout is fine
		adjacent := builder.NewBookingBuilder().
			WithDates(first.EndDate, first.EndDate.AddDate(0, 0, 3))
		s.createBooking(t, p, adjacent)
	})

	s.Run("Normal case: cancelled bookings free up the dates", func() {
		t := s.T()
		p := s.seedParties(t, "Room", 1000)

		first := builder.NewBookingBuilder()
		bookingID := s.createBooking(t, p, first)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost,
			bookingsURL+"/"+bookingID.String()+"/cancel", nil, p.bookerToken)
		httptest.AssertSuccessResponse(t, rec, http.StatusNoContent, nil)

		rebooked := builder.NewBookingBuilder().WithDates(first.StartDate, first.EndDate)
		s.createBooking(t, p, rebooked)
	})

	s.Run("Normal case: availability endpoint lists blocking ranges without auth", func() {
		t := s.T()
		p := s.seedParties(t, "Room", 1000)

		b := builder.NewBookingBuilder()
		s.createBooking(t, p, b)

		var ranges []response.BookedRangeResponse
		rec := httptest.PerformRequest(t, s.Router, http.MethodGet,
			"/api/listings/Room/"+p.listingID.String()+"/availability", nil, "")
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &ranges)
		require.Len(t, ranges, 1)
		require.Equal(t, "pending", ranges[0].Status)
		require.True(t, ranges[0].StartDate.Equal(b.StartDate.In(time.UTC)))
	})
}

// =============================================================================
// TestBookingValidation - Aggregated missing fields and payload checks
// =============================================================================

func (s *BookingSuite) TestBookingValidation() {
	s.Run("Error case: every missing field is reported at once", func() {
		t := s.T()
		p := s.seedParties(t, "Room", 1000)

		b := builder.NewBookingBuilder()
		b.ListingID = p.listingID
		b.OwnerID = p.ownerID
		b.BookerName = ""
		b.PaymentMethod = ""
		b.TotalAmount = 0

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			b.BuildCreateRequestDTO(), p.bookerToken)

		var body struct {
			Error         string   `json:"error"`
			MissingFields []string `json:"missingFields"`
		}
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
		httptest.DecodeResponseBody(t, rec.Body, &body)
		require.Equal(t, []string{"totalAmount", "paymentMethod", "bookerName"}, body.MissingFields)
	})

	s.Run("Error case: unknown listing yields 404", func() {
		t := s.T()
		p := s.seedParties(t, "Room", 1000)

		b := builder.NewBookingBuilder()
		b.ListingID = uuid.New()
		b.OwnerID = p.ownerID

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			b.BuildCreateRequestDTO(), p.bookerToken)
		httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "Listing not found")
	})

	s.Run("Error case: unauthenticated requests are rejected", func() {
		t := s.T()
		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			builder.NewBookingBuilder().BuildCreateRequestDTO(), "")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

// =============================================================================
// TestBookingPayment - Payment status transitions
// =============================================================================

func (s *BookingSuite) TestBookingPayment() {
	s.Run("Normal case: owner marks a pending payment as paid exactly once", func() {
		t := s.T()
		p := s.seedParties(t, "Room", 1000)

		bookingID := s.createBooking(t, p, builder.NewBookingBuilder())
		paymentURL := bookingsURL + "/" + bookingID.String() + "/payment"

		rec := httptest.PerformRequest(t, s.Router, http.MethodPatch, paymentURL, nil, p.ownerToken)
		httptest.AssertSuccessResponse(t, rec, http.StatusNoContent, nil)

		var view response.BookingResponse
		rec = httptest.PerformRequest(t, s.Router, http.MethodGet,
			bookingsURL+"/"+bookingID.String(), nil, p.ownerToken)
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &view)
		require.Equal(t, "paid", view.PaymentStatus)

		rec = httptest.PerformRequest(t, s.Router, http.MethodPatch, paymentURL, nil, p.ownerToken)
		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "Payment is not pending")
	})

	s.Run("Error case: booker cannot mark the booking paid", func() {
		t := s.T()
		p := s.seedParties(t, "Room", 1000)

		bookingID := s.createBooking(t, p, builder.NewBookingBuilder())

		rec := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			bookingsURL+"/"+bookingID.String()+"/payment", nil, p.bookerToken)
		httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "listing owner")
	})
}

// =============================================================================
// TestBookingLists - Renter and host views
// =============================================================================

func (s *BookingSuite) TestBookingLists() {
	s.Run("Normal case: booker and owner each see the booking from their side", func() {
		t := s.T()
		p := s.seedParties(t, "Room", 1000)

		bookingID := s.createBooking(t, p, builder.NewBookingBuilder())

		var mine []response.BookingListResponse
		rec := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, p.bookerToken)
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &mine)
		require.Len(t, mine, 1)
		require.Equal(t, bookingID, mine[0].ID)

		var received []response.BookingListResponse
		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/owner", nil, p.ownerToken)
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &received)
		require.Len(t, received, 1)
		require.Equal(t, bookingID, received[0].ID)

		// The owner made no bookings as renter
		var ownerMine []response.BookingListResponse
		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, p.ownerToken)
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &ownerMine)
		require.Empty(t, ownerMine)
	})
}
