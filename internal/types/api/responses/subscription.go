package responses

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionResponse is the API shape of a subscription.
type SubscriptionResponse struct {
	ID                 uuid.UUID  `json:"id"`
	ClubID             uuid.UUID  `json:"club_id"`
	ParentUserID       uuid.UUID  `json:"parent_user_id"`
	ChildUserID        uuid.UUID  `json:"child_user_id"`
	TierID             uuid.UUID  `json:"tier_id"`
	PaymentMandateID   string     `json:"payment_mandate_id,omitempty"`
	Status             string     `json:"status"`
	BillingFrequency   string     `json:"billing_frequency"`
	BillingDayOfMonth  int32      `json:"billing_day_of_month"`
	AmountInCents      int64      `json:"amount_in_cents"`
	CurrentPeriodStart time.Time  `json:"current_period_start"`
	CurrentPeriodEnd   time.Time  `json:"current_period_end"`
	NextBillingDate    string     `json:"next_billing_date,omitempty"`
	FailedPaymentCount int32      `json:"failed_payment_count"`
	CancelAtPeriodEnd  bool       `json:"cancel_at_period_end"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
	CancellationReason string     `json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

// SubscriptionEventResponse is one audit-log entry.
type SubscriptionEventResponse struct {
	ID             uuid.UUID      `json:"id"`
	SubscriptionID uuid.UUID      `json:"subscription_id"`
	EventType      string         `json:"event_type"`
	PreviousStatus string         `json:"previous_status,omitempty"`
	NewStatus      string         `json:"new_status,omitempty"`
	ActorType      string         `json:"actor_type"`
	ActorID        *uuid.UUID     `json:"actor_id,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
}

// ProrationResponse reports the figures of a tier change; collection of the
// net amount is the billing layer's job.
type ProrationResponse struct {
	CreditAmountInCents int64 `json:"credit_amount_in_cents"`
	ChargeAmountInCents int64 `json:"charge_amount_in_cents"`
	NetAmountInCents    int64 `json:"net_amount_in_cents"`
	DaysTotal           int   `json:"days_total"`
	DaysRemaining       int   `json:"days_remaining"`
	IsUpgrade           bool  `json:"is_upgrade"`
}

// ListSubscriptionsResponse is a paginated subscription list.
type ListSubscriptionsResponse struct {
	Subscriptions []SubscriptionResponse `json:"subscriptions"`
	Total         int64                  `json:"total"`
	Limit         int32                  `json:"limit"`
	Offset        int32                  `json:"offset"`
}
