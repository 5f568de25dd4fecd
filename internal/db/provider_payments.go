package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const providerPaymentColumns = `id, subscription_id, invoice_id, provider, provider_payment_id, amount_in_cents, status, failure_reason, retry_count, payout_id, created_at, updated_at`

func scanProviderPayment(row pgx.Row) (ProviderPayment, error) {
	var i ProviderPayment
	err := row.Scan(
		&i.ID,
		&i.SubscriptionID,
		&i.InvoiceID,
		&i.Provider,
		&i.ProviderPaymentID,
		&i.AmountInCents,
		&i.Status,
		&i.FailureReason,
		&i.RetryCount,
		&i.PayoutID,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createProviderPayment = `
INSERT INTO provider_payments (subscription_id, invoice_id, provider, provider_payment_id, amount_in_cents, status)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + providerPaymentColumns

type CreateProviderPaymentParams struct {
	SubscriptionID    pgtype.UUID
	InvoiceID         pgtype.UUID
	Provider          string
	ProviderPaymentID string
	AmountInCents     int64
	Status            ProviderPaymentStatus
}

func (q *Queries) CreateProviderPayment(ctx context.Context, arg CreateProviderPaymentParams) (ProviderPayment, error) {
	row := q.db.QueryRow(ctx, createProviderPayment,
		arg.SubscriptionID,
		arg.InvoiceID,
		arg.Provider,
		arg.ProviderPaymentID,
		arg.AmountInCents,
		arg.Status,
	)
	return scanProviderPayment(row)
}

const getProviderPaymentByProviderID = `
SELECT ` + providerPaymentColumns + `
FROM provider_payments
WHERE provider = $1 AND provider_payment_id = $2
`

type GetProviderPaymentByProviderIDParams struct {
	Provider          string
	ProviderPaymentID string
}

func (q *Queries) GetProviderPaymentByProviderID(ctx context.Context, arg GetProviderPaymentByProviderIDParams) (ProviderPayment, error) {
	return scanProviderPayment(q.db.QueryRow(ctx, getProviderPaymentByProviderID, arg.Provider, arg.ProviderPaymentID))
}

const updateProviderPaymentStatus = `
UPDATE provider_payments
SET status = $2, payout_id = $3, updated_at = now()
WHERE id = $1
RETURNING ` + providerPaymentColumns

type UpdateProviderPaymentStatusParams struct {
	ID       uuid.UUID
	Status   ProviderPaymentStatus
	PayoutID pgtype.Text
}

func (q *Queries) UpdateProviderPaymentStatus(ctx context.Context, arg UpdateProviderPaymentStatusParams) (ProviderPayment, error) {
	return scanProviderPayment(q.db.QueryRow(ctx, updateProviderPaymentStatus, arg.ID, arg.Status, arg.PayoutID))
}

const markProviderPaymentFailed = `
UPDATE provider_payments
SET status = $2, failure_reason = $3, retry_count = retry_count + 1, updated_at = now()
WHERE id = $1
RETURNING ` + providerPaymentColumns

type MarkProviderPaymentFailedParams struct {
	ID            uuid.UUID
	Status        ProviderPaymentStatus
	FailureReason pgtype.Text
}

func (q *Queries) MarkProviderPaymentFailed(ctx context.Context, arg MarkProviderPaymentFailedParams) (ProviderPayment, error) {
	return scanProviderPayment(q.db.QueryRow(ctx, markProviderPaymentFailed, arg.ID, arg.Status, arg.FailureReason))
}

const listPaymentsBySubscription = `
SELECT ` + providerPaymentColumns + `
FROM provider_payments
WHERE subscription_id = $1
ORDER BY created_at DESC
`

func (q *Queries) ListPaymentsBySubscription(ctx context.Context, subscriptionID pgtype.UUID) ([]ProviderPayment, error) {
	rows, err := q.db.Query(ctx, listPaymentsBySubscription, subscriptionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ProviderPayment
	for rows.Next() {
		i, err := scanProviderPayment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
