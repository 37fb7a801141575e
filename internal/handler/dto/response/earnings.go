package response

import (
	"time"

	"rentledger/internal/usecase/queries"

	"github.com/google/uuid"
)

type EarningsSummaryResponse struct {
	OwnerID           uuid.UUID `json:"ownerId"`
	TotalEarnings     int64     `json:"totalEarnings"`
	CompletedBookings int32     `json:"completedBookings"`
	PendingPayout     int64     `json:"pendingPayout"`
	TotalPayout       int64     `json:"totalPayout"`
}

type EarningsHistoryResponse struct {
	BookingID    uuid.UUID `json:"bookingId"`
	Amount       int64     `json:"amount"`
	BookingType  string    `json:"bookingType"`
	ListingTitle string    `json:"listingTitle"`
	Status       string    `json:"status"`
	CompletedAt  time.Time `json:"completedAt"`
}

func FromEarningsSummaryView(rm *queries.EarningsSummaryView) *EarningsSummaryResponse {
	return &EarningsSummaryResponse{
		OwnerID:           rm.OwnerID,
		TotalEarnings:     rm.TotalEarnings,
		CompletedBookings: rm.CompletedBookings,
		PendingPayout:     rm.PendingPayout,
		TotalPayout:       rm.TotalPayout,
	}
}

func FromEarningsHistoryItem(rm *queries.EarningsHistoryItem) *EarningsHistoryResponse {
	return &EarningsHistoryResponse{
		BookingID:    rm.BookingID,
		Amount:       rm.Amount,
		BookingType:  rm.BookingType,
		ListingTitle: rm.ListingTitle,
		Status:       rm.Status,
		CompletedAt:  rm.CompletedAt,
	}
}
