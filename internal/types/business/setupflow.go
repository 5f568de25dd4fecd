package business

import "github.com/google/uuid"

// SetupFlowState is the payload carried inside the signed state token that
// correlates a hosted mandate-setup redirect back to the initiating request.
type SetupFlowState struct {
	UserID            uuid.UUID `json:"user_id"`
	ClubID            uuid.UUID `json:"club_id"`
	Provider          string    `json:"provider"`
	PaymentCustomerID uuid.UUID `json:"payment_customer_id"`
	FlowID            string    `json:"flow_id"`
}

// CustomerContact is the plaintext shape of the encrypted contact blob on a
// payment customer.
type CustomerContact struct {
	Email      string `json:"email"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
}
