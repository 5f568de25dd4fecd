package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const invoiceColumns = `id, subscription_id, club_id, amount_in_cents, paid_amount_in_cents, status, due_date, paid_at, created_at, updated_at`

func scanInvoice(row pgx.Row) (Invoice, error) {
	var i Invoice
	err := row.Scan(
		&i.ID,
		&i.SubscriptionID,
		&i.ClubID,
		&i.AmountInCents,
		&i.PaidAmountInCents,
		&i.Status,
		&i.DueDate,
		&i.PaidAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createInvoice = `
INSERT INTO invoices (subscription_id, club_id, amount_in_cents, status, due_date)
VALUES ($1, $2, $3, 'pending', $4)
RETURNING ` + invoiceColumns

type CreateInvoiceParams struct {
	SubscriptionID uuid.UUID
	ClubID         uuid.UUID
	AmountInCents  int64
	DueDate        pgtype.Date
}

func (q *Queries) CreateInvoice(ctx context.Context, arg CreateInvoiceParams) (Invoice, error) {
	row := q.db.QueryRow(ctx, createInvoice,
		arg.SubscriptionID,
		arg.ClubID,
		arg.AmountInCents,
		arg.DueDate,
	)
	return scanInvoice(row)
}

const getInvoice = `
SELECT ` + invoiceColumns + `
FROM invoices
WHERE id = $1
`

func (q *Queries) GetInvoice(ctx context.Context, id uuid.UUID) (Invoice, error) {
	return scanInvoice(q.db.QueryRow(ctx, getInvoice, id))
}

const markInvoicePaid = `
UPDATE invoices
SET status = 'paid', paid_amount_in_cents = $2, paid_at = $3, updated_at = now()
WHERE id = $1
RETURNING ` + invoiceColumns

type MarkInvoicePaidParams struct {
	ID                uuid.UUID
	PaidAmountInCents int64
	PaidAt            pgtype.Timestamptz
}

func (q *Queries) MarkInvoicePaid(ctx context.Context, arg MarkInvoicePaidParams) (Invoice, error) {
	return scanInvoice(q.db.QueryRow(ctx, markInvoicePaid, arg.ID, arg.PaidAmountInCents, arg.PaidAt))
}

const markInvoiceOverdue = `
UPDATE invoices
SET status = 'overdue', paid_amount_in_cents = 0, paid_at = NULL, updated_at = now()
WHERE id = $1
RETURNING ` + invoiceColumns

func (q *Queries) MarkInvoiceOverdue(ctx context.Context, id uuid.UUID) (Invoice, error) {
	return scanInvoice(q.db.QueryRow(ctx, markInvoiceOverdue, id))
}
