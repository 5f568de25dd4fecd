package db

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// BillingFrequency is how often a subscription bills.
type BillingFrequency string

const (
	BillingFrequencyMonthly BillingFrequency = "monthly"
	BillingFrequencyAnnual  BillingFrequency = "annual"
)

// SubscriptionStatus is the lifecycle state of a subscription.
type SubscriptionStatus string

const (
	SubscriptionStatusPending   SubscriptionStatus = "pending"
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusPaused    SubscriptionStatus = "paused"
	SubscriptionStatusSuspended SubscriptionStatus = "suspended"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
)

// MandateStatus mirrors the Direct-Debit provider's mandate state progression.
type MandateStatus string

const (
	MandateStatusPendingSetup      MandateStatus = "pending_setup"
	MandateStatusPendingSubmission MandateStatus = "pending_submission"
	MandateStatusSubmitted         MandateStatus = "submitted"
	MandateStatusActive            MandateStatus = "active"
	MandateStatusCancelled         MandateStatus = "cancelled"
	MandateStatusFailed            MandateStatus = "failed"
	MandateStatusExpired           MandateStatus = "expired"
)

// PaymentMethodType is the kind of payment instrument a method wraps.
type PaymentMethodType string

const (
	PaymentMethodTypeDirectDebit PaymentMethodType = "direct_debit"
	PaymentMethodTypeCard        PaymentMethodType = "card"
)

// PaymentMethodStatus is the user-facing state of a payment method.
type PaymentMethodStatus string

const (
	PaymentMethodStatusActive  PaymentMethodStatus = "active"
	PaymentMethodStatusRevoked PaymentMethodStatus = "revoked"
	PaymentMethodStatusExpired PaymentMethodStatus = "expired"
)

// ProviderPaymentStatus mirrors the provider's own payment state progression.
// The engine never invents payment states.
type ProviderPaymentStatus string

const (
	ProviderPaymentStatusCreated     ProviderPaymentStatus = "created"
	ProviderPaymentStatusSubmitted   ProviderPaymentStatus = "submitted"
	ProviderPaymentStatusConfirmed   ProviderPaymentStatus = "confirmed"
	ProviderPaymentStatusPaidOut     ProviderPaymentStatus = "paid_out"
	ProviderPaymentStatusFailed      ProviderPaymentStatus = "failed"
	ProviderPaymentStatusCancelled   ProviderPaymentStatus = "cancelled"
	ProviderPaymentStatusChargedBack ProviderPaymentStatus = "charged_back"
)

// InvoiceStatus is the billing state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
	InvoiceStatusVoid    InvoiceStatus = "void"
)

// SubscriptionEventType classifies entries in the subscription audit log.
type SubscriptionEventType string

const (
	SubscriptionEventTypeCreated               SubscriptionEventType = "created"
	SubscriptionEventTypeActivated             SubscriptionEventType = "activated"
	SubscriptionEventTypePaused                SubscriptionEventType = "paused"
	SubscriptionEventTypeResumed               SubscriptionEventType = "resumed"
	SubscriptionEventTypeCancelled             SubscriptionEventType = "cancelled"
	SubscriptionEventTypeCancellationScheduled SubscriptionEventType = "cancellation_scheduled"
	SubscriptionEventTypeSuspended             SubscriptionEventType = "suspended"
	SubscriptionEventTypeTierChanged           SubscriptionEventType = "tier_changed"
	SubscriptionEventTypePaymentFailed         SubscriptionEventType = "payment_failed"
	SubscriptionEventTypePaymentSucceeded      SubscriptionEventType = "payment_succeeded"
)

// ActorType identifies who drove a subscription state change.
type ActorType string

const (
	ActorTypeUser    ActorType = "user"
	ActorTypeSystem  ActorType = "system"
	ActorTypeWebhook ActorType = "webhook"
)

// Tier is a purchasable membership level within a club.
type Tier struct {
	ID                  uuid.UUID
	ClubID              uuid.UUID
	Name                string
	Description         pgtype.Text
	MonthlyPriceInCents int64
	AnnualPriceInCents  int64
	BillingFrequency    BillingFrequency
	Features            []byte
	Active              bool
	SortOrder           int32
	CreatedAt           pgtype.Timestamptz
	UpdatedAt           pgtype.Timestamptz
}

// PaymentCustomer maps a (user, club, provider) triple to a provider-side
// customer. Contact metadata is stored encrypted.
type PaymentCustomer struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	ClubID             uuid.UUID
	Provider           string
	ProviderCustomerID string
	ContactEncrypted   []byte
	CreatedAt          pgtype.Timestamptz
	UpdatedAt          pgtype.Timestamptz
}

// Mandate is a Direct-Debit authorization belonging to a payment customer.
// ProviderMandateID holds a placeholder until the hosted setup flow completes.
type Mandate struct {
	ID                     uuid.UUID
	PaymentCustomerID      uuid.UUID
	Provider               string
	ProviderMandateID      string
	Scheme                 pgtype.Text
	Status                 MandateStatus
	Reference              pgtype.Text
	NextPossibleChargeDate pgtype.Date
	CancelledAt            pgtype.Timestamptz
	CreatedAt              pgtype.Timestamptz
	UpdatedAt              pgtype.Timestamptz
}

// PaymentMethod wraps a mandate for user-facing display and default selection.
type PaymentMethod struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	MandateID  pgtype.UUID
	MethodType PaymentMethodType
	Status     PaymentMethodStatus
	IsDefault  bool
	CreatedAt  pgtype.Timestamptz
	UpdatedAt  pgtype.Timestamptz
}

// Subscription is the central billing entity: one child member's recurring
// membership in one club, paid by a parent user.
type Subscription struct {
	ID                 uuid.UUID
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
	FailedPaymentCount int32
	PausedAt           pgtype.Timestamptz
	ResumeDate         pgtype.Date
	CancelAtPeriodEnd  bool
	CancelledAt        pgtype.Timestamptz
	CancellationReason pgtype.Text
	CreatedAt          pgtype.Timestamptz
	UpdatedAt          pgtype.Timestamptz
}

// SubscriptionEvent is one append-only audit record of a subscription change.
type SubscriptionEvent struct {
	ID             uuid.UUID
	SubscriptionID uuid.UUID
	EventType      SubscriptionEventType
	PreviousStatus pgtype.Text
	NewStatus      pgtype.Text
	ActorType      ActorType
	ActorID        pgtype.UUID
	Metadata       []byte
	CreatedAt      pgtype.Timestamptz
}

// Invoice is the minimal billing document the reconciler flips between states.
type Invoice struct {
	ID                uuid.UUID
	SubscriptionID    uuid.UUID
	ClubID            uuid.UUID
	AmountInCents     int64
	PaidAmountInCents int64
	Status            InvoiceStatus
	DueDate           pgtype.Date
	PaidAt            pgtype.Timestamptz
	CreatedAt         pgtype.Timestamptz
	UpdatedAt         pgtype.Timestamptz
}

// ProviderPayment represents one billing attempt against a mandate.
type ProviderPayment struct {
	ID                uuid.UUID
	SubscriptionID    pgtype.UUID
	InvoiceID         pgtype.UUID
	Provider          string
	ProviderPaymentID string
	AmountInCents     int64
	Status            ProviderPaymentStatus
	FailureReason     pgtype.Text
	RetryCount        int32
	PayoutID          pgtype.Text
	CreatedAt         pgtype.Timestamptz
	UpdatedAt         pgtype.Timestamptz
}

// WebhookEvent is one normalized inbound provider notification. The
// (provider, event_id) unique constraint is the idempotency key.
type WebhookEvent struct {
	ID               uuid.UUID
	Provider         string
	EventID          string
	ResourceType     pgtype.Text
	Action           pgtype.Text
	ResourceID       pgtype.Text
	PayloadEncrypted []byte
	SignatureValid   bool
	Processed        bool
	Result           pgtype.Text
	CreatedAt        pgtype.Timestamptz
	ProcessedAt      pgtype.Timestamptz
}
