package business

import "time"

// ProrationResult contains the result of a proration calculation over the
// current billing period. Amounts are in cents; NetAmount > 0 is an extra
// charge, < 0 a credit.
type ProrationResult struct {
	CreditAmount  int64   `json:"credit_amount"`
	ChargeAmount  int64   `json:"charge_amount"`
	NetAmount     int64   `json:"net_amount"`
	DaysTotal     int     `json:"days_total"`
	DaysUsed      int     `json:"days_used"`
	DaysRemaining int     `json:"days_remaining"`
	OldDailyRate  float64 `json:"old_daily_rate"`
	NewDailyRate  float64 `json:"new_daily_rate"`
}

// TierChangeProration is the reconciler-facing view of the same computation,
// additionally reporting the change direction for billing-event bookkeeping.
type TierChangeProration struct {
	ProrationResult
	IsUpgrade  bool      `json:"is_upgrade"`
	ChangeDate time.Time `json:"change_date"`
}
