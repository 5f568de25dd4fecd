package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const subscriptionColumns = `id, club_id, parent_user_id, child_user_id, tier_id, payment_mandate_id, status, billing_frequency, billing_day_of_month, amount_in_cents, current_period_start, current_period_end, next_billing_date, failed_payment_count, paused_at, resume_date, cancel_at_period_end, cancelled_at, cancellation_reason, created_at, updated_at`

func scanSubscription(row pgx.Row) (Subscription, error) {
	var i Subscription
	err := row.Scan(
		&i.ID,
		&i.ClubID,
		&i.ParentUserID,
		&i.ChildUserID,
		&i.TierID,
		&i.PaymentMandateID,
		&i.Status,
		&i.BillingFrequency,
		&i.BillingDayOfMonth,
		&i.AmountInCents,
		&i.CurrentPeriodStart,
		&i.CurrentPeriodEnd,
		&i.NextBillingDate,
		&i.FailedPaymentCount,
		&i.PausedAt,
		&i.ResumeDate,
		&i.CancelAtPeriodEnd,
		&i.CancelledAt,
		&i.CancellationReason,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

func scanSubscriptions(rows pgx.Rows) ([]Subscription, error) {
	defer rows.Close()
	var items []Subscription
	for rows.Next() {
		i, err := scanSubscription(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const createSubscription = `
INSERT INTO subscriptions (club_id, parent_user_id, child_user_id, tier_id, payment_mandate_id, status, billing_frequency, billing_day_of_month, amount_in_cents, current_period_start, current_period_end, next_billing_date)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING ` + subscriptionColumns

type CreateSubscriptionParams struct {
	ClubID             uuid.UUID
	ParentUserID       uuid.UUID
	ChildUserID        uuid.UUID
	TierID             uuid.UUID
	PaymentMandateID   pgtype.Text
	Status             SubscriptionStatus
	BillingFrequency   BillingFrequency
	BillingDayOfMonth  int32
	AmountInCents      int64
	CurrentPeriodStart pgtype.Timestamptz
	CurrentPeriodEnd   pgtype.Timestamptz
	NextBillingDate    pgtype.Date
}

func (q *Queries) CreateSubscription(ctx context.Context, arg CreateSubscriptionParams) (Subscription, error) {
	row := q.db.QueryRow(ctx, createSubscription,
		arg.ClubID,
		arg.ParentUserID,
		arg.ChildUserID,
		arg.TierID,
		arg.PaymentMandateID,
		arg.Status,
		arg.BillingFrequency,
		arg.BillingDayOfMonth,
		arg.AmountInCents,
		arg.CurrentPeriodStart,
		arg.CurrentPeriodEnd,
		arg.NextBillingDate,
	)
	return scanSubscription(row)
}

const getSubscription = `
SELECT ` + subscriptionColumns + `
FROM subscriptions
WHERE id = $1
`

func (q *Queries) GetSubscription(ctx context.Context, id uuid.UUID) (Subscription, error) {
	return scanSubscription(q.db.QueryRow(ctx, getSubscription, id))
}

const getSubscriptionForUpdate = `
SELECT ` + subscriptionColumns + `
FROM subscriptions
WHERE id = $1
FOR UPDATE
`

// GetSubscriptionForUpdate takes a row lock so concurrent transitions on the
// same subscription serialize at the storage layer.
func (q *Queries) GetSubscriptionForUpdate(ctx context.Context, id uuid.UUID) (Subscription, error) {
	return scanSubscription(q.db.QueryRow(ctx, getSubscriptionForUpdate, id))
}

const getActiveSubscriptionByChildAndClub = `
SELECT ` + subscriptionColumns + `
FROM subscriptions
WHERE child_user_id = $1 AND club_id = $2 AND status <> 'cancelled'
LIMIT 1
`

type GetActiveSubscriptionByChildAndClubParams struct {
	ChildUserID uuid.UUID
	ClubID      uuid.UUID
}

func (q *Queries) GetActiveSubscriptionByChildAndClub(ctx context.Context, arg GetActiveSubscriptionByChildAndClubParams) (Subscription, error) {
	return scanSubscription(q.db.QueryRow(ctx, getActiveSubscriptionByChildAndClub, arg.ChildUserID, arg.ClubID))
}

const listSubscriptionsByClub = `
SELECT ` + subscriptionColumns + `
FROM subscriptions
WHERE club_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`

type ListSubscriptionsByClubParams struct {
	ClubID uuid.UUID
	Limit  int32
	Offset int32
}

func (q *Queries) ListSubscriptionsByClub(ctx context.Context, arg ListSubscriptionsByClubParams) ([]Subscription, error) {
	rows, err := q.db.Query(ctx, listSubscriptionsByClub, arg.ClubID, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	return scanSubscriptions(rows)
}

const countSubscriptionsByClub = `
SELECT count(*) FROM subscriptions WHERE club_id = $1
`

func (q *Queries) CountSubscriptionsByClub(ctx context.Context, clubID uuid.UUID) (int64, error) {
	var count int64
	err := q.db.QueryRow(ctx, countSubscriptionsByClub, clubID).Scan(&count)
	return count, err
}

const listSubscriptionsByMember = `
SELECT ` + subscriptionColumns + `
FROM subscriptions
WHERE child_user_id = $1
ORDER BY created_at DESC
`

func (q *Queries) ListSubscriptionsByMember(ctx context.Context, childUserID uuid.UUID) ([]Subscription, error) {
	rows, err := q.db.Query(ctx, listSubscriptionsByMember, childUserID)
	if err != nil {
		return nil, err
	}
	return scanSubscriptions(rows)
}

const listPendingSubscriptionsByMandate = `
SELECT ` + subscriptionColumns + `
FROM subscriptions
WHERE payment_mandate_id = $1 AND status = 'pending'
`

func (q *Queries) ListPendingSubscriptionsByMandate(ctx context.Context, paymentMandateID pgtype.Text) ([]Subscription, error) {
	rows, err := q.db.Query(ctx, listPendingSubscriptionsByMandate, paymentMandateID)
	if err != nil {
		return nil, err
	}
	return scanSubscriptions(rows)
}

const listChargeableSubscriptionsByMandate = `
SELECT ` + subscriptionColumns + `
FROM subscriptions
WHERE payment_mandate_id = $1 AND status IN ('active', 'paused')
`

func (q *Queries) ListChargeableSubscriptionsByMandate(ctx context.Context, paymentMandateID pgtype.Text) ([]Subscription, error) {
	rows, err := q.db.Query(ctx, listChargeableSubscriptionsByMandate, paymentMandateID)
	if err != nil {
		return nil, err
	}
	return scanSubscriptions(rows)
}

const updateSubscriptionStatus = `
UPDATE subscriptions
SET status = $2, updated_at = now()
WHERE id = $1
RETURNING ` + subscriptionColumns

type UpdateSubscriptionStatusParams struct {
	ID     uuid.UUID
	Status SubscriptionStatus
}

func (q *Queries) UpdateSubscriptionStatus(ctx context.Context, arg UpdateSubscriptionStatusParams) (Subscription, error) {
	return scanSubscription(q.db.QueryRow(ctx, updateSubscriptionStatus, arg.ID, arg.Status))
}

const activateSubscription = `
UPDATE subscriptions
SET status = 'active', payment_mandate_id = $2, current_period_start = $3, current_period_end = $4, next_billing_date = $5, updated_at = now()
WHERE id = $1
RETURNING ` + subscriptionColumns

type ActivateSubscriptionParams struct {
	ID                 uuid.UUID
	PaymentMandateID   pgtype.Text
	CurrentPeriodStart pgtype.Timestamptz
	CurrentPeriodEnd   pgtype.Timestamptz
	NextBillingDate    pgtype.Date
}

func (q *Queries) ActivateSubscription(ctx context.Context, arg ActivateSubscriptionParams) (Subscription, error) {
	row := q.db.QueryRow(ctx, activateSubscription,
		arg.ID,
		arg.PaymentMandateID,
		arg.CurrentPeriodStart,
		arg.CurrentPeriodEnd,
		arg.NextBillingDate,
	)
	return scanSubscription(row)
}

const pauseSubscription = `
UPDATE subscriptions
SET status = 'paused', paused_at = $2, resume_date = $3, updated_at = now()
WHERE id = $1
RETURNING ` + subscriptionColumns

type PauseSubscriptionParams struct {
	ID         uuid.UUID
	PausedAt   pgtype.Timestamptz
	ResumeDate pgtype.Date
}

func (q *Queries) PauseSubscription(ctx context.Context, arg PauseSubscriptionParams) (Subscription, error) {
	return scanSubscription(q.db.QueryRow(ctx, pauseSubscription, arg.ID, arg.PausedAt, arg.ResumeDate))
}

const resumeSubscription = `
UPDATE subscriptions
SET status = 'active', paused_at = NULL, resume_date = NULL, next_billing_date = $2, updated_at = now()
WHERE id = $1
RETURNING ` + subscriptionColumns

type ResumeSubscriptionParams struct {
	ID              uuid.UUID
	NextBillingDate pgtype.Date
}

func (q *Queries) ResumeSubscription(ctx context.Context, arg ResumeSubscriptionParams) (Subscription, error) {
	return scanSubscription(q.db.QueryRow(ctx, resumeSubscription, arg.ID, arg.NextBillingDate))
}

const cancelSubscription = `
UPDATE subscriptions
SET status = $2, cancel_at_period_end = $3, cancelled_at = $4, cancellation_reason = $5, updated_at = now()
WHERE id = $1
RETURNING ` + subscriptionColumns

type CancelSubscriptionParams struct {
	ID                 uuid.UUID
	Status             SubscriptionStatus
	CancelAtPeriodEnd  bool
	CancelledAt        pgtype.Timestamptz
	CancellationReason pgtype.Text
}

func (q *Queries) CancelSubscription(ctx context.Context, arg CancelSubscriptionParams) (Subscription, error) {
	row := q.db.QueryRow(ctx, cancelSubscription,
		arg.ID,
		arg.Status,
		arg.CancelAtPeriodEnd,
		arg.CancelledAt,
		arg.CancellationReason,
	)
	return scanSubscription(row)
}

const changeSubscriptionTier = `
UPDATE subscriptions
SET tier_id = $2, amount_in_cents = $3, updated_at = now()
WHERE id = $1
RETURNING ` + subscriptionColumns

type ChangeSubscriptionTierParams struct {
	ID            uuid.UUID
	TierID        uuid.UUID
	AmountInCents int64
}

func (q *Queries) ChangeSubscriptionTier(ctx context.Context, arg ChangeSubscriptionTierParams) (Subscription, error) {
	return scanSubscription(q.db.QueryRow(ctx, changeSubscriptionTier, arg.ID, arg.TierID, arg.AmountInCents))
}

const incrementFailedPaymentCount = `
UPDATE subscriptions
SET failed_payment_count = failed_payment_count + 1, updated_at = now()
WHERE id = $1
RETURNING failed_payment_count
`

func (q *Queries) IncrementFailedPaymentCount(ctx context.Context, id uuid.UUID) (int32, error) {
	var count int32
	err := q.db.QueryRow(ctx, incrementFailedPaymentCount, id).Scan(&count)
	return count, err
}

const resetFailedPaymentCount = `
UPDATE subscriptions
SET failed_payment_count = 0, updated_at = now()
WHERE id = $1
`

func (q *Queries) ResetFailedPaymentCount(ctx context.Context, id uuid.UUID) error {
	_, err := q.db.Exec(ctx, resetFailedPaymentCount, id)
	return err
}
