package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const mandateColumns = `id, payment_customer_id, provider, provider_mandate_id, scheme, status, reference, next_possible_charge_date, cancelled_at, created_at, updated_at`

func scanMandate(row pgx.Row) (Mandate, error) {
	var i Mandate
	err := row.Scan(
		&i.ID,
		&i.PaymentCustomerID,
		&i.Provider,
		&i.ProviderMandateID,
		&i.Scheme,
		&i.Status,
		&i.Reference,
		&i.NextPossibleChargeDate,
		&i.CancelledAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createMandate = `
INSERT INTO mandates (payment_customer_id, provider, provider_mandate_id, scheme, status, reference)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + mandateColumns

type CreateMandateParams struct {
	PaymentCustomerID uuid.UUID
	Provider          string
	ProviderMandateID string
	Scheme            pgtype.Text
	Status            MandateStatus
	Reference         pgtype.Text
}

func (q *Queries) CreateMandate(ctx context.Context, arg CreateMandateParams) (Mandate, error) {
	row := q.db.QueryRow(ctx, createMandate,
		arg.PaymentCustomerID,
		arg.Provider,
		arg.ProviderMandateID,
		arg.Scheme,
		arg.Status,
		arg.Reference,
	)
	return scanMandate(row)
}

const getMandate = `
SELECT ` + mandateColumns + `
FROM mandates
WHERE id = $1
`

func (q *Queries) GetMandate(ctx context.Context, id uuid.UUID) (Mandate, error) {
	return scanMandate(q.db.QueryRow(ctx, getMandate, id))
}

const getMandateByProviderID = `
SELECT ` + mandateColumns + `
FROM mandates
WHERE provider = $1 AND provider_mandate_id = $2
`

type GetMandateByProviderIDParams struct {
	Provider          string
	ProviderMandateID string
}

func (q *Queries) GetMandateByProviderID(ctx context.Context, arg GetMandateByProviderIDParams) (Mandate, error) {
	return scanMandate(q.db.QueryRow(ctx, getMandateByProviderID, arg.Provider, arg.ProviderMandateID))
}

const getLatestPendingSetupMandate = `
SELECT ` + mandateColumns + `
FROM mandates
WHERE payment_customer_id = $1 AND status = 'pending_setup'
ORDER BY created_at DESC
LIMIT 1
`

func (q *Queries) GetLatestPendingSetupMandate(ctx context.Context, paymentCustomerID uuid.UUID) (Mandate, error) {
	return scanMandate(q.db.QueryRow(ctx, getLatestPendingSetupMandate, paymentCustomerID))
}

const completeMandateSetup = `
UPDATE mandates
SET provider_mandate_id = $2, status = $3, scheme = $4, reference = $5, next_possible_charge_date = $6, updated_at = now()
WHERE id = $1
RETURNING ` + mandateColumns

type CompleteMandateSetupParams struct {
	ID                     uuid.UUID
	ProviderMandateID      string
	Status                 MandateStatus
	Scheme                 pgtype.Text
	Reference              pgtype.Text
	NextPossibleChargeDate pgtype.Date
}

func (q *Queries) CompleteMandateSetup(ctx context.Context, arg CompleteMandateSetupParams) (Mandate, error) {
	row := q.db.QueryRow(ctx, completeMandateSetup,
		arg.ID,
		arg.ProviderMandateID,
		arg.Status,
		arg.Scheme,
		arg.Reference,
		arg.NextPossibleChargeDate,
	)
	return scanMandate(row)
}

const updateMandateStatus = `
UPDATE mandates
SET status = $2, cancelled_at = $3, updated_at = now()
WHERE id = $1
RETURNING ` + mandateColumns

type UpdateMandateStatusParams struct {
	ID          uuid.UUID
	Status      MandateStatus
	CancelledAt pgtype.Timestamptz
}

func (q *Queries) UpdateMandateStatus(ctx context.Context, arg UpdateMandateStatusParams) (Mandate, error) {
	return scanMandate(q.db.QueryRow(ctx, updateMandateStatus, arg.ID, arg.Status, arg.CancelledAt))
}

const listMandatesByCustomer = `
SELECT ` + mandateColumns + `
FROM mandates
WHERE payment_customer_id = $1
ORDER BY created_at DESC
`

func (q *Queries) ListMandatesByCustomer(ctx context.Context, paymentCustomerID uuid.UUID) ([]Mandate, error) {
	rows, err := q.db.Query(ctx, listMandatesByCustomer, paymentCustomerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Mandate
	for rows.Next() {
		i, err := scanMandate(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
