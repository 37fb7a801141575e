package queries

import (
	"context"

	"github.com/google/uuid"
)

type EarningsQueries interface {
	// Summary returns the owner's running aggregates.
	Summary(ctx context.Context, ownerID uuid.UUID) (*EarningsSummaryView, error)
	// History returns the owner's accrual entries, newest first.
	History(ctx context.Context, ownerID uuid.UUID) ([]*EarningsHistoryItem, error)
}

type EarningsReadStore interface {
	FindSummaryByOwnerID(ctx context.Context, ownerID uuid.UUID) (*EarningsSummaryView, error)
	FindHistoryByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*EarningsHistoryItem, error)
}

type earningsQueriesImpl struct {
	store EarningsReadStore
}

func NewEarningsQueries(store EarningsReadStore) EarningsQueries {
	return &earningsQueriesImpl{store: store}
}

func (q *earningsQueriesImpl) Summary(ctx context.Context, ownerID uuid.UUID) (*EarningsSummaryView, error) {
	return q.store.FindSummaryByOwnerID(ctx, ownerID)
}

func (q *earningsQueriesImpl) History(ctx context.Context, ownerID uuid.UUID) ([]*EarningsHistoryItem, error) {
	return q.store.FindHistoryByOwnerID(ctx, ownerID)
}
