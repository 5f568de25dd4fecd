package directdebit

import (
	"context"
	"time"
)

// CustomerData holds the contact details sent to the provider when creating
// or updating a remote customer.
type CustomerData struct {
	Email      string `json:"email"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Language   string `json:"language,omitempty"`
}

// CreateCustomerResult is the provider's response to customer creation.
type CreateCustomerResult struct {
	ProviderCustomerID string
}

// RedirectURLs are the return addresses for the hosted mandate-setup flow.
type RedirectURLs struct {
	SuccessURL string
	CancelURL  string
}

// SetupFlowOptions tunes the hosted flow.
type SetupFlowOptions struct {
	Scheme      string
	Description string
}

// SetupFlow describes a started hosted mandate-setup flow. The payer completes
// authorization at AuthorisationURL; the flow is dead after ExpiresAt.
type SetupFlow struct {
	FlowID           string
	AuthorisationURL string
	ExpiresAt        time.Time
}

// MandateDetails is the provider's view of a mandate.
type MandateDetails struct {
	ProviderMandateID      string
	Status                 string
	Scheme                 string
	Reference              string
	NextPossibleChargeDate time.Time
}

// API is the stable provider abstraction the engine consumes. The engine never
// speaks the provider protocol directly; one implementation per provider.
type API interface {
	CreateCustomer(ctx context.Context, data CustomerData) (*CreateCustomerResult, error)
	UpdateCustomer(ctx context.Context, providerCustomerID string, data CustomerData) error
	CreateMandateSetupFlow(ctx context.Context, providerCustomerID string, redirect RedirectURLs, opts SetupFlowOptions) (*SetupFlow, error)
	CompleteMandateSetup(ctx context.Context, flowID string) (*MandateDetails, error)
	CancelMandate(ctx context.Context, providerMandateID string) error
	GetMandate(ctx context.Context, providerMandateID string) (*MandateDetails, error)

	// VerifyWebhookSignature checks the provider's signature header against the
	// raw request body. Implementations must fail closed.
	VerifyWebhookSignature(body []byte, signatureHeader string) bool

	// ParseWebhookEvents normalizes a raw webhook body into zero or more events.
	ParseWebhookEvents(body []byte) ([]Event, error)

	// ProviderName identifies the provider, e.g. "gocardless".
	ProviderName() string
}

// Event resource types a provider notification can carry.
const (
	ResourceMandates = "mandates"
	ResourcePayments = "payments"
	ResourceRefunds  = "refunds"
)

// Event is one normalized provider notification.
type Event struct {
	ID           string            `json:"id"`
	ResourceType string            `json:"resource_type"`
	Action       string            `json:"action"`
	ResourceID   string            `json:"resource_id"`
	Details      map[string]string `json:"details,omitempty"`
}
