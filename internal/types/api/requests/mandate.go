package requests

// SetupMandateRequest starts a hosted mandate-setup flow for a user in a club.
type SetupMandateRequest struct {
	UserID     string `json:"user_id" binding:"required,uuid"`
	ClubID     string `json:"club_id" binding:"required,uuid"`
	Email      string `json:"email" binding:"required,email"`
	GivenName  string `json:"given_name" binding:"required"`
	FamilyName string `json:"family_name" binding:"required"`
	SuccessURL string `json:"success_url" binding:"required,url"`
	CancelURL  string `json:"cancel_url" binding:"required,url"`
	Scheme     string `json:"scheme"`
}

// CreateTierRequest is the JSON body for tier creation.
type CreateTierRequest struct {
	ClubID              string   `json:"club_id" binding:"required,uuid"`
	Name                string   `json:"name" binding:"required"`
	Description         string   `json:"description"`
	MonthlyPriceInCents int64    `json:"monthly_price_in_cents" binding:"min=0"`
	AnnualPriceInCents  int64    `json:"annual_price_in_cents" binding:"min=0"`
	BillingFrequency    string   `json:"billing_frequency" binding:"required,oneof=monthly annual"`
	Features            []string `json:"features"`
	SortOrder           int32    `json:"sort_order"`
}

// UpdateTierRequest updates metadata fields only; pricing is immutable once
// subscriptions reference the tier.
type UpdateTierRequest struct {
	Description string   `json:"description"`
	Features    []string `json:"features"`
	SortOrder   int32    `json:"sort_order"`
}
