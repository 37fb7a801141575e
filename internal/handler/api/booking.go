package api

import (
	"errors"
	"net/http"

	"rentledger/internal/domain/booking"
	reqdto "rentledger/internal/handler/dto/request"
	resdto "rentledger/internal/handler/dto/response"
	"rentledger/internal/handler/middleware"
	"rentledger/internal/pkg/errs"
	"rentledger/internal/usecase/commands"
	"rentledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Create a room or vehicle booking
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.CreateBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]any
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.bookingCommands.Create(c.Request.Context(), commands.CreateBookingRequest{
		BookingType:     req.BookingType,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		TotalAmount:     req.TotalAmount,
		PaymentMethod:   req.PaymentMethod,
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
	}, userID)
	if err != nil {
		var validationErr *booking.ValidationError
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":         "Missing required fields",
				"missingFields": validationErr.MissingFields,
			})
		case errors.Is(err, booking.ErrInvalidBookingType),
			errors.Is(err, booking.ErrInvalidPaymentMethod),
			errors.Is(err, booking.ErrInvalidDateRange),
			errors.Is(err, booking.ErrGuestsRequired),
			errors.Is(err, booking.ErrLocationsRequired),
			errors.Is(err, booking.ErrListingModelMismatch),
			errors.Is(err, booking.ErrNonPositiveAmount):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": err.Error(),
			})
		case errors.Is(err, commands.ErrListingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Listing not found",
			})
		case errors.Is(err, commands.ErrListingOwnerMismatch):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Owner does not match the listing",
			})
		case errors.Is(err, commands.ErrListingUnavailable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Listing is not available for the selected dates",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateBookingResponse{ID: result.BookingID})
}

// @Summary List my bookings
// @Description List bookings made by the current user as renter
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingListResponse
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListMyBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	items, err := h.bookingQueries.ListByBooker(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.BookingListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromBookingListItem(item)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary List owner bookings
// @Description List bookings received by the current user as host
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingListResponse
// @Failure 401 {object} map[string]string
// @Router /bookings/owner [get]
func (h *BookingHandler) ListOwnerBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	items, err := h.bookingQueries.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.BookingListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromBookingListItem(item)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get booking
// @Description Get a booking by ID; visible only to its booker or owner
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, errs.ErrNotBookingParty):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Not authorized to view this booking",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Update booking status
// @Description Move a booking along its lifecycle; listing owner only
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingStatusRequest true "Target status"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/status [patch]
func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	var req reqdto.UpdateBookingStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err = h.bookingCommands.UpdateStatus(c.Request.Context(), id, req.Status, userID)
	if err != nil {
		h.respondTransitionError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Cancel booking
// @Description Cancel a booking; booker only
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	if err = h.bookingCommands.Cancel(c.Request.Context(), id, userID); err != nil {
		h.respondTransitionError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Mark booking paid
// @Description Move payment status from pending to paid; listing owner only
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/payment [patch]
func (h *BookingHandler) MarkBookingPaid(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	if err = h.bookingCommands.MarkPaid(c.Request.Context(), id, userID); err != nil {
		h.respondTransitionError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Listing availability
// @Description Booked date ranges of a listing, for calendar display
// @Tags listings
// @Produce json
// @Param model path string true "Listing model (Room or Vehicle)"
// @Param id path string true "Listing ID"
// @Success 200 {array} resdto.BookedRangeResponse
// @Failure 400 {object} map[string]string
// @Router /listings/{model}/{id}/availability [get]
func (h *BookingHandler) GetListingAvailability(c *gin.Context) {
	model, err := booking.ParseListingModel(c.Param("model"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid listing model",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid listing ID format",
		})
		return
	}

	ranges, err := h.bookingQueries.ListingAvailability(c.Request.Context(), id, model.String())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.BookedRangeResponse, len(ranges))
	for i, r := range ranges {
		response[i] = resdto.FromBookedRange(r)
	}

	c.JSON(http.StatusOK, response)
}

func (h *BookingHandler) respondTransitionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking status",
		})
	case errors.Is(err, commands.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking not found",
		})
	case errors.Is(err, commands.ErrNotBookingOwner):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Only the listing owner can perform this action",
		})
	case errors.Is(err, commands.ErrNotBookingBooker):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Only the booker can perform this action",
		})
	case errors.Is(err, commands.ErrTerminalState):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Booking is already in a terminal state",
		})
	case errors.Is(err, commands.ErrIllegalTransition):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Illegal status transition",
		})
	case errors.Is(err, commands.ErrPaymentNotPending):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Payment is not pending",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
