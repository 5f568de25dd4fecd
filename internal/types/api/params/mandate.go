package params

import (
	"github.com/clubhouse/clubhouse-api/internal/types/business"
	"github.com/google/uuid"
)

// GetOrCreateCustomerParams key the idempotent customer lookup-or-create.
type GetOrCreateCustomerParams struct {
	UserID   uuid.UUID
	ClubID   uuid.UUID
	Provider string
	Contact  business.CustomerContact
}

// InitiateSetupFlowParams start a hosted mandate-setup flow.
type InitiateSetupFlowParams struct {
	UserID     uuid.UUID
	ClubID     uuid.UUID
	Provider   string
	Contact    business.CustomerContact
	SuccessURL string
	CancelURL  string
	Scheme     string
}

// CompleteSetupFlowParams finish a hosted flow after the payer returns.
type CompleteSetupFlowParams struct {
	StateToken string
	FlowID     string
}

// CancelMandateParams cancel a mandate on behalf of its owning user.
type CancelMandateParams struct {
	MandateID uuid.UUID
	UserID    uuid.UUID
}
