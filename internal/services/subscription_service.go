package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"github.com/clubhouse/clubhouse-api/internal/db"
	"github.com/clubhouse/clubhouse-api/internal/helpers"
	"github.com/clubhouse/clubhouse-api/internal/logger"
	"github.com/clubhouse/clubhouse-api/internal/types/api/params"
	"github.com/clubhouse/clubhouse-api/internal/types/business"
)

// subscriptionTransitions is the closed table of legal status changes. Any
// pair not present here is rejected with InvalidTransitionError; there is no
// string-switch fallback.
var subscriptionTransitions = map[db.SubscriptionStatus]map[db.SubscriptionStatus]bool{
	db.SubscriptionStatusPending: {
		db.SubscriptionStatusActive:    true,
		db.SubscriptionStatusCancelled: true,
	},
	db.SubscriptionStatusActive: {
		db.SubscriptionStatusPaused:    true,
		db.SubscriptionStatusSuspended: true,
		db.SubscriptionStatusCancelled: true,
	},
	db.SubscriptionStatusPaused: {
		db.SubscriptionStatusActive:    true,
		db.SubscriptionStatusSuspended: true,
		db.SubscriptionStatusCancelled: true,
	},
	db.SubscriptionStatusSuspended: {
		db.SubscriptionStatusActive:    true,
		db.SubscriptionStatusCancelled: true,
	},
	db.SubscriptionStatusCancelled: {},
}

// CanTransition reports whether the status change from -> to is legal.
func CanTransition(from, to db.SubscriptionStatus) bool {
	return subscriptionTransitions[from][to]
}

// SubscriptionService handles subscription lifecycle business logic
type SubscriptionService struct {
	queries      db.Querier
	proration    *ProrationCalculator
	eventService *SubscriptionEventService
	clock        helpers.Clock
	provider     string
	logger       *zap.Logger
}

// NewSubscriptionService creates a new subscription service. provider is the
// Direct-Debit provider name mandates are looked up under.
func NewSubscriptionService(queries db.Querier, proration *ProrationCalculator, eventService *SubscriptionEventService, clock helpers.Clock, provider string) *SubscriptionService {
	return &SubscriptionService{
		queries:      queries,
		proration:    proration,
		eventService: eventService,
		clock:        clock,
		provider:     provider,
		logger:       logger.Log,
	}
}

// WithTransaction creates a new subscription service instance with transaction-based queries
func (s *SubscriptionService) WithTransaction(tx pgx.Tx) *SubscriptionService {
	return &SubscriptionService{
		queries:      db.New(tx),
		proration:    s.proration,
		eventService: s.eventService.WithTransaction(tx),
		clock:        s.clock,
		provider:     s.provider,
		logger:       s.logger,
	}
}

// CreateSubscription registers a membership for a child in a club. The
// subscription starts active when the referenced mandate is already usable,
// otherwise pending until a mandate webhook activates it. A child can hold at
// most one non-cancelled subscription per club. The first billing period is
// anchored at creation time; activation of a pending subscription re-anchors
// it at activation time.
func (s *SubscriptionService) CreateSubscription(ctx context.Context, p params.CreateSubscriptionParams) (*db.Subscription, error) {
	tier, err := s.queries.GetTier(ctx, p.TierID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("tier %s: %w", p.TierID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get tier: %w", err)
	}
	if !tier.Active {
		return nil, fmt.Errorf("tier %s is not active: %w", p.TierID, ErrConflict)
	}
	if tier.ClubID != p.ClubID {
		return nil, fmt.Errorf("tier %s does not belong to club %s: %w", p.TierID, p.ClubID, ErrNotFound)
	}

	existing, err := s.queries.GetActiveSubscriptionByChildAndClub(ctx, db.GetActiveSubscriptionByChildAndClubParams{
		ChildUserID: p.ChildUserID,
		ClubID:      p.ClubID,
	})
	if err == nil {
		return nil, fmt.Errorf("subscription %s already exists for member in club: %w", existing.ID, ErrConflict)
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to check existing subscription: %w", err)
	}

	amount := tier.MonthlyPriceInCents
	if p.BillingFrequency == db.BillingFrequencyAnnual {
		amount = tier.AnnualPriceInCents
	}

	status := db.SubscriptionStatusPending
	now := s.clock.Now()
	end := AddBillingPeriod(now, p.BillingFrequency, int(p.BillingDayOfMonth))
	periodStart := pgtype.Timestamptz{Time: now, Valid: true}
	periodEnd := pgtype.Timestamptz{Time: end, Valid: true}
	nextBilling := pgtype.Date{Time: end, Valid: true}

	if p.PaymentMandateID != "" {
		mandate, merr := s.queries.GetMandateByProviderID(ctx, db.GetMandateByProviderIDParams{
			Provider:          s.provider,
			ProviderMandateID: p.PaymentMandateID,
		})
		if merr == nil && (mandate.Status == db.MandateStatusActive || mandate.Status == db.MandateStatusSubmitted) {
			status = db.SubscriptionStatusActive
		}
	}

	mandateID := pgtype.Text{}
	if p.PaymentMandateID != "" {
		mandateID = pgtype.Text{String: p.PaymentMandateID, Valid: true}
	}

	subscription, err := s.queries.CreateSubscription(ctx, db.CreateSubscriptionParams{
		ClubID:             p.ClubID,
		ParentUserID:       p.ParentUserID,
		ChildUserID:        p.ChildUserID,
		TierID:             p.TierID,
		PaymentMandateID:   mandateID,
		Status:             status,
		BillingFrequency:   p.BillingFrequency,
		BillingDayOfMonth:  p.BillingDayOfMonth,
		AmountInCents:      amount,
		CurrentPeriodStart: periodStart,
		CurrentPeriodEnd:   periodEnd,
		NextBillingDate:    nextBilling,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	if err := s.eventService.RecordEvent(ctx, subscription.ID, db.SubscriptionEventTypeCreated, "", status, p.Actor, nil); err != nil {
		return nil, err
	}
	if status == db.SubscriptionStatusActive {
		if err := s.eventService.RecordEvent(ctx, subscription.ID, db.SubscriptionEventTypeActivated, db.SubscriptionStatusPending, status, p.Actor, nil); err != nil {
			return nil, err
		}
	}

	s.logger.Info("created subscription",
		zap.String("subscription_id", subscription.ID.String()),
		zap.String("club_id", p.ClubID.String()),
		zap.String("status", string(status)))

	return &subscription, nil
}

// ActivateSubscription moves a pending subscription to active, anchoring the
// first billing period at activation time. Called when a mandate becomes
// usable, either via webhook or by an admin.
func (s *SubscriptionService) ActivateSubscription(ctx context.Context, subscriptionID uuid.UUID, paymentMandateID string, actor params.Actor) (*db.Subscription, error) {
	subscription, err := s.getForUpdate(ctx, subscriptionID)
	if err != nil {
		return nil, err
	}
	if !CanTransition(subscription.Status, db.SubscriptionStatusActive) {
		return nil, &InvalidTransitionError{From: subscription.Status, To: db.SubscriptionStatusActive}
	}
	if subscription.Status != db.SubscriptionStatusPending {
		return nil, &InvalidTransitionError{From: subscription.Status, To: db.SubscriptionStatusActive}
	}

	now := s.clock.Now()
	end := AddBillingPeriod(now, subscription.BillingFrequency, int(subscription.BillingDayOfMonth))

	mandateID := subscription.PaymentMandateID
	if paymentMandateID != "" {
		mandateID = pgtype.Text{String: paymentMandateID, Valid: true}
	}

	updated, err := s.queries.ActivateSubscription(ctx, db.ActivateSubscriptionParams{
		ID:                 subscriptionID,
		PaymentMandateID:   mandateID,
		CurrentPeriodStart: pgtype.Timestamptz{Time: now, Valid: true},
		CurrentPeriodEnd:   pgtype.Timestamptz{Time: end, Valid: true},
		NextBillingDate:    pgtype.Date{Time: end, Valid: true},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to activate subscription: %w", err)
	}

	if err := s.eventService.RecordEvent(ctx, subscriptionID, db.SubscriptionEventTypeActivated, subscription.Status, db.SubscriptionStatusActive, actor, nil); err != nil {
		return nil, err
	}

	s.logger.Info("activated subscription", zap.String("subscription_id", subscriptionID.String()))
	return &updated, nil
}

// PauseSubscription pauses an active subscription, optionally with a date on
// which it resumes automatically. Billing stops while paused.
func (s *SubscriptionService) PauseSubscription(ctx context.Context, p params.PauseSubscriptionParams) (*db.Subscription, error) {
	subscription, err := s.getForUpdate(ctx, p.SubscriptionID)
	if err != nil {
		return nil, err
	}
	if !CanTransition(subscription.Status, db.SubscriptionStatusPaused) {
		return nil, &InvalidTransitionError{From: subscription.Status, To: db.SubscriptionStatusPaused}
	}

	var resumeDate pgtype.Date
	if p.ResumeDate != "" {
		parsed, perr := time.Parse("2006-01-02", p.ResumeDate)
		if perr != nil {
			return nil, fmt.Errorf("invalid resume date %q: %w", p.ResumeDate, perr)
		}
		if !parsed.After(truncateToDay(s.clock.Now())) {
			return nil, fmt.Errorf("resume date %s is not in the future: %w", p.ResumeDate, ErrConflict)
		}
		resumeDate = pgtype.Date{Time: parsed, Valid: true}
	}

	updated, err := s.queries.PauseSubscription(ctx, db.PauseSubscriptionParams{
		ID:         p.SubscriptionID,
		PausedAt:   pgtype.Timestamptz{Time: s.clock.Now(), Valid: true},
		ResumeDate: resumeDate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to pause subscription: %w", err)
	}

	if err := s.eventService.RecordEvent(ctx, p.SubscriptionID, db.SubscriptionEventTypePaused, subscription.Status, db.SubscriptionStatusPaused, p.Actor, map[string]string{"resume_date": p.ResumeDate}); err != nil {
		return nil, err
	}

	s.logger.Info("paused subscription",
		zap.String("subscription_id", p.SubscriptionID.String()),
		zap.String("resume_date", p.ResumeDate))
	return &updated, nil
}

// ResumeSubscription returns a paused subscription to active and recomputes
// the next billing date from today, keeping the original billing anchor day.
func (s *SubscriptionService) ResumeSubscription(ctx context.Context, subscriptionID uuid.UUID, actor params.Actor) (*db.Subscription, error) {
	subscription, err := s.getForUpdate(ctx, subscriptionID)
	if err != nil {
		return nil, err
	}
	if subscription.Status != db.SubscriptionStatusPaused {
		return nil, &InvalidTransitionError{From: subscription.Status, To: db.SubscriptionStatusActive}
	}

	next := NextBillingDate(s.clock.Now(), int(subscription.BillingDayOfMonth))
	updated, err := s.queries.ResumeSubscription(ctx, db.ResumeSubscriptionParams{
		ID:              subscriptionID,
		NextBillingDate: pgtype.Date{Time: next, Valid: true},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to resume subscription: %w", err)
	}

	if err := s.eventService.RecordEvent(ctx, subscriptionID, db.SubscriptionEventTypeResumed, subscription.Status, db.SubscriptionStatusActive, actor, nil); err != nil {
		return nil, err
	}

	s.logger.Info("resumed subscription", zap.String("subscription_id", subscriptionID.String()))
	return &updated, nil
}

// CancelSubscription cancels immediately or schedules cancellation for the
// period end, stamping cancelled_at with the current period end in the
// deferred case. A pending subscription always cancels immediately since it
// has no paid period to run out.
func (s *SubscriptionService) CancelSubscription(ctx context.Context, p params.CancelSubscriptionParams) (*db.Subscription, error) {
	subscription, err := s.getForUpdate(ctx, p.SubscriptionID)
	if err != nil {
		return nil, err
	}
	if !CanTransition(subscription.Status, db.SubscriptionStatusCancelled) {
		return nil, &InvalidTransitionError{From: subscription.Status, To: db.SubscriptionStatusCancelled}
	}

	immediate := p.Immediate || subscription.Status == db.SubscriptionStatusPending || !subscription.CurrentPeriodEnd.Valid

	reason := pgtype.Text{}
	if p.Reason != "" {
		reason = pgtype.Text{String: p.Reason, Valid: true}
	}

	if !immediate {
		// the effective cancellation date is the end of the paid period
		updated, uerr := s.queries.CancelSubscription(ctx, db.CancelSubscriptionParams{
			ID:                 p.SubscriptionID,
			Status:             subscription.Status,
			CancelAtPeriodEnd:  true,
			CancelledAt:        subscription.CurrentPeriodEnd,
			CancellationReason: reason,
		})
		if uerr != nil {
			return nil, fmt.Errorf("failed to schedule cancellation: %w", uerr)
		}
		if err := s.eventService.RecordEvent(ctx, p.SubscriptionID, db.SubscriptionEventTypeCancellationScheduled, subscription.Status, subscription.Status, p.Actor, map[string]string{"reason": p.Reason}); err != nil {
			return nil, err
		}
		s.logger.Info("scheduled subscription cancellation",
			zap.String("subscription_id", p.SubscriptionID.String()),
			zap.Time("period_end", subscription.CurrentPeriodEnd.Time))
		return &updated, nil
	}

	updated, err := s.queries.CancelSubscription(ctx, db.CancelSubscriptionParams{
		ID:                 p.SubscriptionID,
		Status:             db.SubscriptionStatusCancelled,
		CancelAtPeriodEnd:  false,
		CancelledAt:        pgtype.Timestamptz{Time: s.clock.Now(), Valid: true},
		CancellationReason: reason,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to cancel subscription: %w", err)
	}

	if err := s.eventService.RecordEvent(ctx, p.SubscriptionID, db.SubscriptionEventTypeCancelled, subscription.Status, db.SubscriptionStatusCancelled, p.Actor, map[string]string{"reason": p.Reason}); err != nil {
		return nil, err
	}

	s.logger.Info("cancelled subscription", zap.String("subscription_id", p.SubscriptionID.String()))
	return &updated, nil
}

// FinalizeScheduledCancellation cancels a subscription whose period has run
// out after a deferred cancellation request. Invoked by the billing sweep.
func (s *SubscriptionService) FinalizeScheduledCancellation(ctx context.Context, subscriptionID uuid.UUID) (*db.Subscription, error) {
	subscription, err := s.getForUpdate(ctx, subscriptionID)
	if err != nil {
		return nil, err
	}
	if !subscription.CancelAtPeriodEnd {
		return nil, fmt.Errorf("subscription %s has no scheduled cancellation: %w", subscriptionID, ErrConflict)
	}
	if subscription.CurrentPeriodEnd.Valid && subscription.CurrentPeriodEnd.Time.After(s.clock.Now()) {
		return nil, fmt.Errorf("subscription %s period has not ended: %w", subscriptionID, ErrConflict)
	}

	updated, err := s.queries.CancelSubscription(ctx, db.CancelSubscriptionParams{
		ID:                 subscriptionID,
		Status:             db.SubscriptionStatusCancelled,
		CancelAtPeriodEnd:  false,
		CancelledAt:        pgtype.Timestamptz{Time: s.clock.Now(), Valid: true},
		CancellationReason: subscription.CancellationReason,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to finalize cancellation: %w", err)
	}

	if err := s.eventService.RecordEvent(ctx, subscriptionID, db.SubscriptionEventTypeCancelled, subscription.Status, db.SubscriptionStatusCancelled, params.SystemActor, nil); err != nil {
		return nil, err
	}
	return &updated, nil
}

// SuspendForMandateRevocation suspends a subscription whose mandate became
// unusable at the provider. The subscription stays suspended until a working
// mandate produces a successful payment or a new one is set up.
func (s *SubscriptionService) SuspendForMandateRevocation(ctx context.Context, subscriptionID uuid.UUID, providerMandateID string) error {
	subscription, err := s.getForUpdate(ctx, subscriptionID)
	if err != nil {
		return err
	}
	if !CanTransition(subscription.Status, db.SubscriptionStatusSuspended) {
		s.logger.Info("skipping mandate-driven suspension",
			zap.String("subscription_id", subscriptionID.String()),
			zap.String("status", string(subscription.Status)))
		return nil
	}

	if _, err := s.queries.UpdateSubscriptionStatus(ctx, db.UpdateSubscriptionStatusParams{
		ID:     subscriptionID,
		Status: db.SubscriptionStatusSuspended,
	}); err != nil {
		return fmt.Errorf("failed to suspend subscription: %w", err)
	}

	if err := s.eventService.RecordEvent(ctx, subscriptionID, db.SubscriptionEventTypeSuspended, subscription.Status, db.SubscriptionStatusSuspended, params.WebhookActor, map[string]string{
		"cause":               "mandate_revoked",
		"provider_mandate_id": providerMandateID,
	}); err != nil {
		return err
	}

	s.logger.Warn("suspended subscription after mandate revocation",
		zap.String("subscription_id", subscriptionID.String()),
		zap.String("provider_mandate_id", providerMandateID))
	return nil
}

// ChangeTier switches an active subscription to a different tier of the same
// club, prorating the difference for the remainder of the current period.
// Upgrades charge the net amount immediately; downgrades carry a credit.
func (s *SubscriptionService) ChangeTier(ctx context.Context, p params.ChangeTierParams) (*db.Subscription, *business.TierChangeProration, error) {
	subscription, err := s.getForUpdate(ctx, p.SubscriptionID)
	if err != nil {
		return nil, nil, err
	}
	if subscription.Status != db.SubscriptionStatusActive {
		return nil, nil, fmt.Errorf("tier change requires an active subscription, got %s: %w", subscription.Status, ErrConflict)
	}
	if subscription.TierID == p.NewTierID {
		return nil, nil, fmt.Errorf("subscription already on tier %s: %w", p.NewTierID, ErrConflict)
	}

	newTier, err := s.queries.GetTier(ctx, p.NewTierID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, fmt.Errorf("tier %s: %w", p.NewTierID, ErrNotFound)
		}
		return nil, nil, fmt.Errorf("failed to get tier: %w", err)
	}
	if !newTier.Active {
		return nil, nil, fmt.Errorf("tier %s is not active: %w", p.NewTierID, ErrConflict)
	}
	if newTier.ClubID != subscription.ClubID {
		return nil, nil, fmt.Errorf("tier %s belongs to a different club: %w", p.NewTierID, ErrNotFound)
	}

	newAmount := newTier.MonthlyPriceInCents
	if subscription.BillingFrequency == db.BillingFrequencyAnnual {
		newAmount = newTier.AnnualPriceInCents
	}

	if !subscription.CurrentPeriodStart.Valid || !subscription.CurrentPeriodEnd.Valid {
		return nil, nil, fmt.Errorf("subscription %s has no billing period: %w", p.SubscriptionID, ErrConflict)
	}

	proration, err := s.proration.CalculateTierChange(
		subscription.AmountInCents,
		newAmount,
		subscription.CurrentPeriodStart.Time,
		subscription.CurrentPeriodEnd.Time,
		s.clock.Now(),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to calculate proration: %w", err)
	}

	updated, err := s.queries.ChangeSubscriptionTier(ctx, db.ChangeSubscriptionTierParams{
		ID:            p.SubscriptionID,
		TierID:        p.NewTierID,
		AmountInCents: newAmount,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to change subscription tier: %w", err)
	}

	if err := s.eventService.RecordEvent(ctx, p.SubscriptionID, db.SubscriptionEventTypeTierChanged, subscription.Status, subscription.Status, p.Actor, map[string]any{
		"old_tier_id":    subscription.TierID.String(),
		"new_tier_id":    p.NewTierID.String(),
		"credit_amount":  proration.CreditAmount,
		"charge_amount":  proration.ChargeAmount,
		"net_amount":     proration.NetAmount,
		"days_remaining": proration.DaysRemaining,
		"is_upgrade":     proration.IsUpgrade,
	}); err != nil {
		return nil, nil, err
	}

	s.logger.Info("changed subscription tier",
		zap.String("subscription_id", p.SubscriptionID.String()),
		zap.String("new_tier_id", p.NewTierID.String()),
		zap.Int64("net_amount", proration.NetAmount),
		zap.Bool("is_upgrade", proration.IsUpgrade))

	return &updated, proration, nil
}

// GetSubscription fetches one subscription by id.
func (s *SubscriptionService) GetSubscription(ctx context.Context, id uuid.UUID) (*db.Subscription, error) {
	subscription, err := s.queries.GetSubscription(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("subscription %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	return &subscription, nil
}

// ListSubscriptionsByClub returns a page of a club's subscriptions with the
// total count for pagination.
func (s *SubscriptionService) ListSubscriptionsByClub(ctx context.Context, clubID uuid.UUID, limit, offset int32) ([]db.Subscription, int64, error) {
	subs, err := s.queries.ListSubscriptionsByClub(ctx, db.ListSubscriptionsByClubParams{
		ClubID: clubID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	total, err := s.queries.CountSubscriptionsByClub(ctx, clubID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count subscriptions: %w", err)
	}
	return subs, total, nil
}

// ListSubscriptionsByMember returns all subscriptions held for a child user.
func (s *SubscriptionService) ListSubscriptionsByMember(ctx context.Context, childUserID uuid.UUID) ([]db.Subscription, error) {
	subs, err := s.queries.ListSubscriptionsByMember(ctx, childUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list member subscriptions: %w", err)
	}
	return subs, nil
}

func (s *SubscriptionService) getForUpdate(ctx context.Context, id uuid.UUID) (*db.Subscription, error) {
	subscription, err := s.queries.GetSubscriptionForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("subscription %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to lock subscription: %w", err)
	}
	return &subscription, nil
}
