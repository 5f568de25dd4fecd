package handlers

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/clubhouse/clubhouse-api/internal/db"
	"github.com/clubhouse/clubhouse-api/internal/types/api/responses"
	"github.com/clubhouse/clubhouse-api/internal/types/business"
)

func toSubscriptionResponse(s db.Subscription) responses.SubscriptionResponse {
	resp := responses.SubscriptionResponse{
		ID:                 s.ID,
		ClubID:             s.ClubID,
		ParentUserID:       s.ParentUserID,
		ChildUserID:        s.ChildUserID,
		TierID:             s.TierID,
		Status:             string(s.Status),
		BillingFrequency:   string(s.BillingFrequency),
		BillingDayOfMonth:  s.BillingDayOfMonth,
		AmountInCents:      s.AmountInCents,
		FailedPaymentCount: s.FailedPaymentCount,
		CancelAtPeriodEnd:  s.CancelAtPeriodEnd,
		CreatedAt:          s.CreatedAt.Time,
	}
	if s.PaymentMandateID.Valid {
		resp.PaymentMandateID = s.PaymentMandateID.String
	}
	if s.CurrentPeriodStart.Valid {
		resp.CurrentPeriodStart = s.CurrentPeriodStart.Time
	}
	if s.CurrentPeriodEnd.Valid {
		resp.CurrentPeriodEnd = s.CurrentPeriodEnd.Time
	}
	if s.NextBillingDate.Valid {
		resp.NextBillingDate = s.NextBillingDate.Time.Format("2006-01-02")
	}
	if s.CancelledAt.Valid {
		t := s.CancelledAt.Time
		resp.CancelledAt = &t
	}
	if s.CancellationReason.Valid {
		resp.CancellationReason = s.CancellationReason.String
	}
	return resp
}

func toSubscriptionEventResponse(e db.SubscriptionEvent) responses.SubscriptionEventResponse {
	resp := responses.SubscriptionEventResponse{
		ID:             e.ID,
		SubscriptionID: e.SubscriptionID,
		EventType:      string(e.EventType),
		ActorType:      string(e.ActorType),
		CreatedAt:      e.CreatedAt.Time,
	}
	if e.PreviousStatus.Valid {
		resp.PreviousStatus = e.PreviousStatus.String
	}
	if e.NewStatus.Valid {
		resp.NewStatus = e.NewStatus.String
	}
	if e.ActorID.Valid {
		id := uuid.UUID(e.ActorID.Bytes)
		resp.ActorID = &id
	}
	if len(e.Metadata) > 0 {
		var metadata map[string]any
		if err := json.Unmarshal(e.Metadata, &metadata); err == nil {
			resp.Metadata = metadata
		}
	}
	return resp
}

func toProrationResponse(p *business.TierChangeProration) responses.ProrationResponse {
	return responses.ProrationResponse{
		CreditAmountInCents: p.CreditAmount,
		ChargeAmountInCents: p.ChargeAmount,
		NetAmountInCents:    p.NetAmount,
		DaysTotal:           p.DaysTotal,
		DaysRemaining:       p.DaysRemaining,
		IsUpgrade:           p.IsUpgrade,
	}
}

func toMandateResponse(m db.Mandate) responses.MandateResponse {
	resp := responses.MandateResponse{
		ID:                m.ID,
		Provider:          m.Provider,
		ProviderMandateID: m.ProviderMandateID,
		Status:            string(m.Status),
		CreatedAt:         m.CreatedAt.Time,
	}
	if m.Scheme.Valid {
		resp.Scheme = m.Scheme.String
	}
	if m.Reference.Valid {
		resp.Reference = m.Reference.String
	}
	if m.NextPossibleChargeDate.Valid {
		resp.NextPossibleChargeDate = m.NextPossibleChargeDate.Time.Format("2006-01-02")
	}
	if m.CancelledAt.Valid {
		t := m.CancelledAt.Time
		resp.CancelledAt = &t
	}
	return resp
}

func toTierResponse(t db.Tier) responses.TierResponse {
	resp := responses.TierResponse{
		ID:                  t.ID,
		ClubID:              t.ClubID,
		Name:                t.Name,
		MonthlyPriceInCents: t.MonthlyPriceInCents,
		AnnualPriceInCents:  t.AnnualPriceInCents,
		BillingFrequency:    string(t.BillingFrequency),
		Active:              t.Active,
		SortOrder:           t.SortOrder,
		Features:            []string{},
	}
	if t.Description.Valid {
		resp.Description = t.Description.String
	}
	if len(t.Features) > 0 {
		var features []string
		if err := json.Unmarshal(t.Features, &features); err == nil && features != nil {
			resp.Features = features
		}
	}
	return resp
}
