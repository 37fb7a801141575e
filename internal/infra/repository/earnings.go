package repository

import (
	"context"

	"rentledger/internal/domain/earnings"
	"rentledger/internal/infra"
)

type EarningsRepository struct{}

func NewEarningsRepository() *EarningsRepository {
	return &EarningsRepository{}
}

// Aggregates are bumped with one conditional update expression per accrual so
// concurrent accruals for the same owner never lose updates.
const accrueAggregatesSQL = `
UPDATE users SET
    total_earnings     = total_earnings + $2,
    completed_bookings = completed_bookings + 1,
    pending_payout     = pending_payout + $2,
    updated_at         = now()
WHERE id = $1`

const appendHistorySQL = `
INSERT INTO earnings_history (owner_id, booking_id, amount, booking_type, listing_title, status, completed_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

func (r *EarningsRepository) Accrue(ctx context.Context, db infra.DBTX, entry earnings.Entry) error {
	tag, err := db.Exec(ctx, accrueAggregatesSQL, entry.OwnerID(), entry.Amount())
	if err != nil {
		return infra.WrapRepoErr("failed to update owner earnings aggregates", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("owner not found", nil, infra.KindNotFound)
	}

	// The unique index on booking_id backstops double accrual; a duplicate
	// here surfaces as KindDuplicateKey and rolls back the aggregates above.
	_, err = db.Exec(ctx, appendHistorySQL,
		entry.OwnerID(), entry.BookingID(), entry.Amount(),
		entry.BookingType().String(), entry.ListingTitle(), entry.Status(), entry.CompletedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to append earnings history entry", err)
	}

	return nil
}
