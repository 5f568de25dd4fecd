package responses

import (
	"time"

	"github.com/google/uuid"
)

// SetupFlowResponse directs the client to the hosted authorization page.
type SetupFlowResponse struct {
	AuthorisationURL string    `json:"authorisation_url"`
	StateToken       string    `json:"state_token"`
	ExpiresAt        time.Time `json:"expires_at"`
}

// MandateResponse is the API shape of a mandate.
type MandateResponse struct {
	ID                     uuid.UUID  `json:"id"`
	Provider               string     `json:"provider"`
	ProviderMandateID      string     `json:"provider_mandate_id"`
	Scheme                 string     `json:"scheme,omitempty"`
	Status                 string     `json:"status"`
	Reference              string     `json:"reference,omitempty"`
	NextPossibleChargeDate string     `json:"next_possible_charge_date,omitempty"`
	CancelledAt            *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt              time.Time  `json:"created_at"`
}

// TierResponse is the API shape of a membership tier.
type TierResponse struct {
	ID                  uuid.UUID `json:"id"`
	ClubID              uuid.UUID `json:"club_id"`
	Name                string    `json:"name"`
	Description         string    `json:"description,omitempty"`
	MonthlyPriceInCents int64     `json:"monthly_price_in_cents"`
	AnnualPriceInCents  int64     `json:"annual_price_in_cents"`
	BillingFrequency    string    `json:"billing_frequency"`
	Features            []string  `json:"features"`
	Active              bool      `json:"active"`
	SortOrder           int32     `json:"sort_order"`
}

// WebhookResultResponse summarizes the outcome of one webhook delivery.
type WebhookResultResponse struct {
	Received  int      `json:"received"`
	Processed int      `json:"processed"`
	Skipped   int      `json:"skipped"`
	Failed    int      `json:"failed"`
	Errors    []string `json:"errors,omitempty"`
}

// ErrorResponse represents a standard error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse represents a standard success response.
type SuccessResponse struct {
	Message string `json:"message"`
}
