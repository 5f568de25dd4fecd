package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const webhookEventColumns = `id, provider, event_id, resource_type, action, resource_id, payload_encrypted, signature_valid, processed, result, created_at, processed_at`

func scanWebhookEvent(row pgx.Row) (WebhookEvent, error) {
	var i WebhookEvent
	err := row.Scan(
		&i.ID,
		&i.Provider,
		&i.EventID,
		&i.ResourceType,
		&i.Action,
		&i.ResourceID,
		&i.PayloadEncrypted,
		&i.SignatureValid,
		&i.Processed,
		&i.Result,
		&i.CreatedAt,
		&i.ProcessedAt,
	)
	return i, err
}

const insertWebhookEvent = `
INSERT INTO webhook_events (provider, event_id, resource_type, action, resource_id, payload_encrypted, signature_valid)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (provider, event_id) DO NOTHING
RETURNING ` + webhookEventColumns

type InsertWebhookEventParams struct {
	Provider         string
	EventID          string
	ResourceType     pgtype.Text
	Action           pgtype.Text
	ResourceID       pgtype.Text
	PayloadEncrypted []byte
	SignatureValid   bool
}

// InsertWebhookEvent persists an inbound event. The (provider, event_id)
// unique constraint is the idempotency key: a duplicate insert returns
// pgx.ErrNoRows, which callers treat as "already seen".
func (q *Queries) InsertWebhookEvent(ctx context.Context, arg InsertWebhookEventParams) (WebhookEvent, error) {
	row := q.db.QueryRow(ctx, insertWebhookEvent,
		arg.Provider,
		arg.EventID,
		arg.ResourceType,
		arg.Action,
		arg.ResourceID,
		arg.PayloadEncrypted,
		arg.SignatureValid,
	)
	return scanWebhookEvent(row)
}

const markWebhookEventProcessed = `
UPDATE webhook_events
SET processed = true, result = $2, processed_at = $3
WHERE id = $1
`

type MarkWebhookEventProcessedParams struct {
	ID          uuid.UUID
	Result      pgtype.Text
	ProcessedAt pgtype.Timestamptz
}

func (q *Queries) MarkWebhookEventProcessed(ctx context.Context, arg MarkWebhookEventProcessedParams) error {
	_, err := q.db.Exec(ctx, markWebhookEventProcessed, arg.ID, arg.Result, arg.ProcessedAt)
	return err
}

const listWebhookEvents = `
SELECT ` + webhookEventColumns + `
FROM webhook_events
WHERE provider = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`

type ListWebhookEventsParams struct {
	Provider string
	Limit    int32
	Offset   int32
}

func (q *Queries) ListWebhookEvents(ctx context.Context, arg ListWebhookEventsParams) ([]WebhookEvent, error) {
	rows, err := q.db.Query(ctx, listWebhookEvents, arg.Provider, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []WebhookEvent
	for rows.Next() {
		i, err := scanWebhookEvent(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
