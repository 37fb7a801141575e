package readstore

import (
	"context"

	"rentledger/internal/infra"
	"rentledger/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EarningsReadStore struct {
	db *pgxpool.Pool
}

func NewEarningsReadStore(db *pgxpool.Pool) *EarningsReadStore {
	return &EarningsReadStore{db: db}
}

const earningsSummarySQL = `
SELECT id, total_earnings, completed_bookings, pending_payout, total_payout
FROM users
WHERE id = $1`

func (s *EarningsReadStore) FindSummaryByOwnerID(ctx context.Context, ownerID uuid.UUID) (*queries.EarningsSummaryView, error) {
	var v queries.EarningsSummaryView
	err := s.db.QueryRow(ctx, earningsSummarySQL, ownerID).Scan(
		&v.OwnerID, &v.TotalEarnings, &v.CompletedBookings, &v.PendingPayout, &v.TotalPayout,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("owner not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find earnings summary", err)
	}
	return &v, nil
}

const earningsHistorySQL = `
SELECT booking_id, amount, booking_type, listing_title, status, completed_at
FROM earnings_history
WHERE owner_id = $1
ORDER BY completed_at DESC`

func (s *EarningsReadStore) FindHistoryByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*queries.EarningsHistoryItem, error) {
	rows, err := s.db.Query(ctx, earningsHistorySQL, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find earnings history", err)
	}
	defer rows.Close()

	var result []*queries.EarningsHistoryItem
	for rows.Next() {
		var item queries.EarningsHistoryItem
		if err := rows.Scan(
			&item.BookingID, &item.Amount, &item.BookingType,
			&item.ListingTitle, &item.Status, &item.CompletedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan earnings history row", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read earnings history rows", err)
	}
	return result, nil
}
