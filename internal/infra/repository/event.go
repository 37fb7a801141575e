package repository

import (
	"context"

	"rentledger/internal/infra"

	"github.com/google/uuid"
)

// EventRepository appends booking lifecycle events to the booking_events
// outbox table. Rows are written in the same transaction as the state change
// they describe; no consumer ships with this service.
type EventRepository struct{}

func NewEventRepository() *EventRepository {
	return &EventRepository{}
}

func (r *EventRepository) Append(ctx context.Context, db infra.DBTX, bookingID uuid.UUID, topic string, payload []byte) error {
	_, err := db.Exec(ctx,
		`INSERT INTO booking_events (booking_id, topic, payload) VALUES ($1, $2, $3)`,
		bookingID, topic, payload,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to append booking event", err)
	}
	return nil
}
