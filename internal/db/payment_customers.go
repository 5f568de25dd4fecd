package db

import (
	"context"

	"github.com/google/uuid"
)

const createPaymentCustomer = `
INSERT INTO payment_customers (user_id, club_id, provider, provider_customer_id, contact_encrypted)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, user_id, club_id, provider, provider_customer_id, contact_encrypted, created_at, updated_at
`

type CreatePaymentCustomerParams struct {
	UserID             uuid.UUID
	ClubID             uuid.UUID
	Provider           string
	ProviderCustomerID string
	ContactEncrypted   []byte
}

func (q *Queries) CreatePaymentCustomer(ctx context.Context, arg CreatePaymentCustomerParams) (PaymentCustomer, error) {
	row := q.db.QueryRow(ctx, createPaymentCustomer,
		arg.UserID,
		arg.ClubID,
		arg.Provider,
		arg.ProviderCustomerID,
		arg.ContactEncrypted,
	)
	var i PaymentCustomer
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.ClubID,
		&i.Provider,
		&i.ProviderCustomerID,
		&i.ContactEncrypted,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getPaymentCustomer = `
SELECT id, user_id, club_id, provider, provider_customer_id, contact_encrypted, created_at, updated_at
FROM payment_customers
WHERE id = $1
`

func (q *Queries) GetPaymentCustomer(ctx context.Context, id uuid.UUID) (PaymentCustomer, error) {
	row := q.db.QueryRow(ctx, getPaymentCustomer, id)
	var i PaymentCustomer
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.ClubID,
		&i.Provider,
		&i.ProviderCustomerID,
		&i.ContactEncrypted,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getPaymentCustomerByUserClubProvider = `
SELECT id, user_id, club_id, provider, provider_customer_id, contact_encrypted, created_at, updated_at
FROM payment_customers
WHERE user_id = $1 AND club_id = $2 AND provider = $3
`

type GetPaymentCustomerByUserClubProviderParams struct {
	UserID   uuid.UUID
	ClubID   uuid.UUID
	Provider string
}

func (q *Queries) GetPaymentCustomerByUserClubProvider(ctx context.Context, arg GetPaymentCustomerByUserClubProviderParams) (PaymentCustomer, error) {
	row := q.db.QueryRow(ctx, getPaymentCustomerByUserClubProvider, arg.UserID, arg.ClubID, arg.Provider)
	var i PaymentCustomer
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.ClubID,
		&i.Provider,
		&i.ProviderCustomerID,
		&i.ContactEncrypted,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const updatePaymentCustomerContact = `
UPDATE payment_customers
SET contact_encrypted = $2, updated_at = now()
WHERE id = $1
`

type UpdatePaymentCustomerContactParams struct {
	ID               uuid.UUID
	ContactEncrypted []byte
}

func (q *Queries) UpdatePaymentCustomerContact(ctx context.Context, arg UpdatePaymentCustomerContactParams) error {
	_, err := q.db.Exec(ctx, updatePaymentCustomerContact, arg.ID, arg.ContactEncrypted)
	return err
}
