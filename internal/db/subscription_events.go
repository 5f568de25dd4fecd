package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const subscriptionEventColumns = `id, subscription_id, event_type, previous_status, new_status, actor_type, actor_id, metadata, created_at`

func scanSubscriptionEvent(row pgx.Row) (SubscriptionEvent, error) {
	var i SubscriptionEvent
	err := row.Scan(
		&i.ID,
		&i.SubscriptionID,
		&i.EventType,
		&i.PreviousStatus,
		&i.NewStatus,
		&i.ActorType,
		&i.ActorID,
		&i.Metadata,
		&i.CreatedAt,
	)
	return i, err
}

const createSubscriptionEvent = `
INSERT INTO subscription_events (subscription_id, event_type, previous_status, new_status, actor_type, actor_id, metadata)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + subscriptionEventColumns

type CreateSubscriptionEventParams struct {
	SubscriptionID uuid.UUID
	EventType      SubscriptionEventType
	PreviousStatus pgtype.Text
	NewStatus      pgtype.Text
	ActorType      ActorType
	ActorID        pgtype.UUID
	Metadata       []byte
}

func (q *Queries) CreateSubscriptionEvent(ctx context.Context, arg CreateSubscriptionEventParams) (SubscriptionEvent, error) {
	row := q.db.QueryRow(ctx, createSubscriptionEvent,
		arg.SubscriptionID,
		arg.EventType,
		arg.PreviousStatus,
		arg.NewStatus,
		arg.ActorType,
		arg.ActorID,
		arg.Metadata,
	)
	return scanSubscriptionEvent(row)
}

const listSubscriptionEventsBySubscription = `
SELECT ` + subscriptionEventColumns + `
FROM subscription_events
WHERE subscription_id = $1
ORDER BY created_at ASC
`

func (q *Queries) ListSubscriptionEventsBySubscription(ctx context.Context, subscriptionID uuid.UUID) ([]SubscriptionEvent, error) {
	rows, err := q.db.Query(ctx, listSubscriptionEventsBySubscription, subscriptionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []SubscriptionEvent
	for rows.Next() {
		i, err := scanSubscriptionEvent(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
