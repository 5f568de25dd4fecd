package requests

// CreateSubscriptionRequest is the JSON body for subscription creation.
type CreateSubscriptionRequest struct {
	ClubID            string `json:"club_id" binding:"required,uuid"`
	ParentUserID      string `json:"parent_user_id" binding:"required,uuid"`
	ChildUserID       string `json:"child_user_id" binding:"required,uuid"`
	TierID            string `json:"tier_id" binding:"required,uuid"`
	BillingFrequency  string `json:"billing_frequency" binding:"required,oneof=monthly annual"`
	BillingDayOfMonth int32  `json:"billing_day_of_month" binding:"omitempty,min=1,max=31"`
	PaymentMandateID  string `json:"payment_mandate_id"`
}

// CancelSubscriptionRequest is the JSON body for cancellation.
type CancelSubscriptionRequest struct {
	Immediate bool   `json:"immediate"`
	Reason    string `json:"reason"`
}

// ChangeTierRequest is the JSON body for a tier change.
type ChangeTierRequest struct {
	NewTierID string `json:"new_tier_id" binding:"required,uuid"`
}

// PauseSubscriptionRequest is the JSON body for pausing.
type PauseSubscriptionRequest struct {
	ResumeDate string `json:"resume_date" binding:"omitempty,datetime=2006-01-02"`
}

// ActivateSubscriptionRequest attaches a mandate and activates a pending
// subscription.
type ActivateSubscriptionRequest struct {
	PaymentMandateID string `json:"payment_mandate_id" binding:"required"`
}
