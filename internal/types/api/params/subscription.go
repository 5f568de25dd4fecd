package params

import (
	"github.com/clubhouse/clubhouse-api/internal/db"
	"github.com/google/uuid"
)

// Actor identifies who is driving a lifecycle operation, for the audit log.
type Actor struct {
	Type db.ActorType
	ID   uuid.UUID
}

// SystemActor is used for transitions driven by the engine itself.
var SystemActor = Actor{Type: db.ActorTypeSystem}

// WebhookActor is used for transitions driven by provider notifications.
var WebhookActor = Actor{Type: db.ActorTypeWebhook}

// CreateSubscriptionParams are the validated inputs to subscription creation.
type CreateSubscriptionParams struct {
	ClubID           uuid.UUID
	ParentUserID     uuid.UUID
	ChildUserID      uuid.UUID
	TierID           uuid.UUID
	BillingFrequency db.BillingFrequency
	// BillingDayOfMonth defaults to the start day when zero.
	BillingDayOfMonth int32
	// PaymentMandateID, when set, refers to a provider mandate. The
	// subscription starts active if that mandate is already chargeable.
	PaymentMandateID string
	Actor            Actor
}

// CancelSubscriptionParams control cancellation timing.
type CancelSubscriptionParams struct {
	SubscriptionID uuid.UUID
	Immediate      bool
	Reason         string
	Actor          Actor
}

// ChangeTierParams request a tier change on an active subscription.
type ChangeTierParams struct {
	SubscriptionID uuid.UUID
	NewTierID      uuid.UUID
	Actor          Actor
}

// PauseSubscriptionParams request a pause, optionally with a planned resume date.
type PauseSubscriptionParams struct {
	SubscriptionID uuid.UUID
	ResumeDate     string // YYYY-MM-DD, optional
	Actor          Actor
}
