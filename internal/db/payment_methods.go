package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const paymentMethodColumns = `id, user_id, mandate_id, method_type, status, is_default, created_at, updated_at`

func scanPaymentMethod(row pgx.Row) (PaymentMethod, error) {
	var i PaymentMethod
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.MandateID,
		&i.MethodType,
		&i.Status,
		&i.IsDefault,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createPaymentMethod = `
INSERT INTO payment_methods (user_id, mandate_id, method_type, status, is_default)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + paymentMethodColumns

type CreatePaymentMethodParams struct {
	UserID     uuid.UUID
	MandateID  pgtype.UUID
	MethodType PaymentMethodType
	Status     PaymentMethodStatus
	IsDefault  bool
}

func (q *Queries) CreatePaymentMethod(ctx context.Context, arg CreatePaymentMethodParams) (PaymentMethod, error) {
	row := q.db.QueryRow(ctx, createPaymentMethod,
		arg.UserID,
		arg.MandateID,
		arg.MethodType,
		arg.Status,
		arg.IsDefault,
	)
	return scanPaymentMethod(row)
}

const clearDefaultPaymentMethods = `
UPDATE payment_methods
SET is_default = false, updated_at = now()
WHERE user_id = $1 AND is_default = true
`

func (q *Queries) ClearDefaultPaymentMethods(ctx context.Context, userID uuid.UUID) error {
	_, err := q.db.Exec(ctx, clearDefaultPaymentMethods, userID)
	return err
}

const getPaymentMethodByMandate = `
SELECT ` + paymentMethodColumns + `
FROM payment_methods
WHERE mandate_id = $1
`

func (q *Queries) GetPaymentMethodByMandate(ctx context.Context, mandateID pgtype.UUID) (PaymentMethod, error) {
	return scanPaymentMethod(q.db.QueryRow(ctx, getPaymentMethodByMandate, mandateID))
}

const updatePaymentMethodStatusByMandate = `
UPDATE payment_methods
SET status = $2, is_default = CASE WHEN $2 = 'active' THEN is_default ELSE false END, updated_at = now()
WHERE mandate_id = $1
`

type UpdatePaymentMethodStatusByMandateParams struct {
	MandateID pgtype.UUID
	Status    PaymentMethodStatus
}

func (q *Queries) UpdatePaymentMethodStatusByMandate(ctx context.Context, arg UpdatePaymentMethodStatusByMandateParams) error {
	_, err := q.db.Exec(ctx, updatePaymentMethodStatusByMandate, arg.MandateID, arg.Status)
	return err
}
