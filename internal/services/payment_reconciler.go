package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"github.com/clubhouse/clubhouse-api/internal/db"
	"github.com/clubhouse/clubhouse-api/internal/helpers"
	"github.com/clubhouse/clubhouse-api/internal/logger"
	"github.com/clubhouse/clubhouse-api/internal/types/api/params"
)

// MaxFailedPaymentsBeforeSuspension is the consecutive-failure count at which
// an active subscription is suspended. The counter resets on any successful
// payment, so only an unbroken run of failures suspends.
const MaxFailedPaymentsBeforeSuspension = 3

// PaymentReconciler applies provider payment outcomes to local state: payment
// rows, invoices, subscription failure counters and the suspension rule.
type PaymentReconciler struct {
	queries      db.Querier
	eventService *SubscriptionEventService
	notifier     Notifier
	clock        helpers.Clock
	logger       *zap.Logger
}

// NewPaymentReconciler creates a new payment reconciler
func NewPaymentReconciler(queries db.Querier, eventService *SubscriptionEventService, notifier Notifier, clock helpers.Clock) *PaymentReconciler {
	if notifier == nil {
		notifier = NoopNotifier{}
	}
	return &PaymentReconciler{
		queries:      queries,
		eventService: eventService,
		notifier:     notifier,
		clock:        clock,
		logger:       logger.Log,
	}
}

// WithTransaction creates a new reconciler instance with transaction-based queries
func (s *PaymentReconciler) WithTransaction(tx pgx.Tx) *PaymentReconciler {
	return &PaymentReconciler{
		queries:      db.New(tx),
		eventService: s.eventService.WithTransaction(tx),
		notifier:     s.notifier,
		clock:        s.clock,
		logger:       s.logger,
	}
}

// HandlePaymentConfirmed records a non-terminal provider status change
// (submitted, confirmed) on a known payment. Unknown payments are an error so
// the webhook row records the failure for forensics.
func (s *PaymentReconciler) HandlePaymentConfirmed(ctx context.Context, provider, providerPaymentID string, status db.ProviderPaymentStatus) error {
	payment, err := s.getPayment(ctx, provider, providerPaymentID)
	if err != nil {
		return err
	}
	if _, err := s.queries.UpdateProviderPaymentStatus(ctx, db.UpdateProviderPaymentStatusParams{
		ID:       payment.ID,
		Status:   status,
		PayoutID: payment.PayoutID,
	}); err != nil {
		return fmt.Errorf("failed to update payment status: %w", err)
	}
	return nil
}

// HandlePaymentSuccess finalizes a paid-out payment: the invoice is marked
// paid, the subscription's failure counter resets, and a subscription that
// was suspended for failures is reactivated.
func (s *PaymentReconciler) HandlePaymentSuccess(ctx context.Context, provider, providerPaymentID, payoutID string) error {
	payment, err := s.getPayment(ctx, provider, providerPaymentID)
	if err != nil {
		return err
	}

	payout := pgtype.Text{}
	if payoutID != "" {
		payout = pgtype.Text{String: payoutID, Valid: true}
	}
	if _, err := s.queries.UpdateProviderPaymentStatus(ctx, db.UpdateProviderPaymentStatusParams{
		ID:       payment.ID,
		Status:   db.ProviderPaymentStatusPaidOut,
		PayoutID: payout,
	}); err != nil {
		return fmt.Errorf("failed to update payment status: %w", err)
	}

	if payment.InvoiceID.Valid {
		if _, err := s.queries.MarkInvoicePaid(ctx, db.MarkInvoicePaidParams{
			ID:                payment.InvoiceID.Bytes,
			PaidAmountInCents: payment.AmountInCents,
			PaidAt:            pgtype.Timestamptz{Time: s.clock.Now(), Valid: true},
		}); err != nil {
			return fmt.Errorf("failed to mark invoice paid: %w", err)
		}
	}

	if !payment.SubscriptionID.Valid {
		return nil
	}
	subscriptionID := uuid.UUID(payment.SubscriptionID.Bytes)

	subscription, err := s.queries.GetSubscriptionForUpdate(ctx, subscriptionID)
	if err != nil {
		return fmt.Errorf("failed to lock subscription: %w", err)
	}

	if err := s.queries.ResetFailedPaymentCount(ctx, subscriptionID); err != nil {
		return fmt.Errorf("failed to reset failure counter: %w", err)
	}

	if err := s.eventService.RecordEvent(ctx, subscriptionID, db.SubscriptionEventTypePaymentSucceeded, subscription.Status, subscription.Status, params.WebhookActor, map[string]string{
		"provider_payment_id": providerPaymentID,
		"payout_id":           payoutID,
	}); err != nil {
		return err
	}

	if subscription.Status == db.SubscriptionStatusSuspended {
		if _, err := s.queries.UpdateSubscriptionStatus(ctx, db.UpdateSubscriptionStatusParams{
			ID:     subscriptionID,
			Status: db.SubscriptionStatusActive,
		}); err != nil {
			return fmt.Errorf("failed to reactivate suspended subscription: %w", err)
		}
		if err := s.eventService.RecordEvent(ctx, subscriptionID, db.SubscriptionEventTypeActivated, db.SubscriptionStatusSuspended, db.SubscriptionStatusActive, params.WebhookActor, nil); err != nil {
			return err
		}
		s.logger.Info("reactivated suspended subscription after successful payment",
			zap.String("subscription_id", subscriptionID.String()))
	}

	s.logger.Info("reconciled successful payment",
		zap.String("provider_payment_id", providerPaymentID),
		zap.String("subscription_id", subscriptionID.String()))

	return nil
}

// HandlePaymentFailure records a failed payment, bumps the subscription's
// consecutive-failure counter and suspends the subscription when the counter
// reaches the threshold. The attached invoice goes overdue.
func (s *PaymentReconciler) HandlePaymentFailure(ctx context.Context, provider, providerPaymentID, reason string) error {
	payment, err := s.getPayment(ctx, provider, providerPaymentID)
	if err != nil {
		return err
	}
	return s.applyFailure(ctx, payment, db.ProviderPaymentStatusFailed, reason)
}

// HandlePaymentCancelled treats a cancelled collection as a failure: the
// money never arrived, so the invoice goes overdue and the failure counter
// advances just as for a straight collection failure.
func (s *PaymentReconciler) HandlePaymentCancelled(ctx context.Context, provider, providerPaymentID, reason string) error {
	payment, err := s.getPayment(ctx, provider, providerPaymentID)
	if err != nil {
		return err
	}
	return s.applyFailure(ctx, payment, db.ProviderPaymentStatusCancelled, reason)
}

// HandleChargeback treats a charged-back payment as a failure: the invoice it
// settled is reopened and the failure counter advances, so repeated
// chargebacks suspend the subscription like repeated collection failures.
func (s *PaymentReconciler) HandleChargeback(ctx context.Context, provider, providerPaymentID, reason string) error {
	payment, err := s.getPayment(ctx, provider, providerPaymentID)
	if err != nil {
		return err
	}
	return s.applyFailure(ctx, payment, db.ProviderPaymentStatusChargedBack, reason)
}

func (s *PaymentReconciler) applyFailure(ctx context.Context, payment db.ProviderPayment, status db.ProviderPaymentStatus, reason string) error {
	failureReason := pgtype.Text{}
	if reason != "" {
		failureReason = pgtype.Text{String: reason, Valid: true}
	}
	if _, err := s.queries.MarkProviderPaymentFailed(ctx, db.MarkProviderPaymentFailedParams{
		ID:            payment.ID,
		Status:        status,
		FailureReason: failureReason,
	}); err != nil {
		return fmt.Errorf("failed to mark payment failed: %w", err)
	}

	if payment.InvoiceID.Valid {
		if _, err := s.queries.MarkInvoiceOverdue(ctx, payment.InvoiceID.Bytes); err != nil {
			return fmt.Errorf("failed to mark invoice overdue: %w", err)
		}
	}

	if !payment.SubscriptionID.Valid {
		return nil
	}
	subscriptionID := uuid.UUID(payment.SubscriptionID.Bytes)

	subscription, err := s.queries.GetSubscriptionForUpdate(ctx, subscriptionID)
	if err != nil {
		return fmt.Errorf("failed to lock subscription: %w", err)
	}

	count, err := s.queries.IncrementFailedPaymentCount(ctx, subscriptionID)
	if err != nil {
		return fmt.Errorf("failed to increment failure counter: %w", err)
	}

	if err := s.eventService.RecordEvent(ctx, subscriptionID, db.SubscriptionEventTypePaymentFailed, subscription.Status, subscription.Status, params.WebhookActor, map[string]any{
		"provider_payment_id": payment.ProviderPaymentID,
		"payment_status":      string(status),
		"reason":              reason,
		"failure_count":       count,
	}); err != nil {
		return err
	}

	if nerr := s.notifier.NotifyPaymentFailed(ctx, subscriptionID, count, reason); nerr != nil {
		s.logger.Warn("failed to send payment-failed notification",
			zap.String("subscription_id", subscriptionID.String()),
			zap.Error(nerr))
	}

	if count < MaxFailedPaymentsBeforeSuspension {
		s.logger.Info("recorded payment failure",
			zap.String("subscription_id", subscriptionID.String()),
			zap.Int32("failure_count", count))
		return nil
	}

	if !CanTransition(subscription.Status, db.SubscriptionStatusSuspended) {
		// Already suspended or in a terminal state; the counter keeps climbing
		// but there is no further transition to make.
		return nil
	}

	if _, err := s.queries.UpdateSubscriptionStatus(ctx, db.UpdateSubscriptionStatusParams{
		ID:     subscriptionID,
		Status: db.SubscriptionStatusSuspended,
	}); err != nil {
		return fmt.Errorf("failed to suspend subscription: %w", err)
	}

	if err := s.eventService.RecordEvent(ctx, subscriptionID, db.SubscriptionEventTypeSuspended, subscription.Status, db.SubscriptionStatusSuspended, params.WebhookActor, map[string]any{
		"failure_count": count,
	}); err != nil {
		return err
	}

	if nerr := s.notifier.NotifySubscriptionSuspended(ctx, subscriptionID); nerr != nil {
		s.logger.Warn("failed to send suspension notification",
			zap.String("subscription_id", subscriptionID.String()),
			zap.Error(nerr))
	}

	s.logger.Warn("suspended subscription after repeated payment failures",
		zap.String("subscription_id", subscriptionID.String()),
		zap.Int32("failure_count", count))

	return nil
}

// RegisterPayment records a provider payment created for a subscription's
// invoice, so later webhook outcomes can be reconciled against it.
func (s *PaymentReconciler) RegisterPayment(ctx context.Context, subscriptionID, invoiceID uuid.UUID, provider, providerPaymentID string, amountInCents int64) (*db.ProviderPayment, error) {
	subID := pgtype.UUID{}
	if subscriptionID != uuid.Nil {
		subID = pgtype.UUID{Bytes: subscriptionID, Valid: true}
	}
	invID := pgtype.UUID{}
	if invoiceID != uuid.Nil {
		invID = pgtype.UUID{Bytes: invoiceID, Valid: true}
	}
	payment, err := s.queries.CreateProviderPayment(ctx, db.CreateProviderPaymentParams{
		SubscriptionID:    subID,
		InvoiceID:         invID,
		Provider:          provider,
		ProviderPaymentID: providerPaymentID,
		AmountInCents:     amountInCents,
		Status:            db.ProviderPaymentStatusCreated,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to register provider payment: %w", err)
	}
	return &payment, nil
}

func (s *PaymentReconciler) getPayment(ctx context.Context, provider, providerPaymentID string) (db.ProviderPayment, error) {
	payment, err := s.queries.GetProviderPaymentByProviderID(ctx, db.GetProviderPaymentByProviderIDParams{
		Provider:          provider,
		ProviderPaymentID: providerPaymentID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return db.ProviderPayment{}, fmt.Errorf("payment %s/%s: %w", provider, providerPaymentID, ErrNotFound)
		}
		return db.ProviderPayment{}, fmt.Errorf("failed to get provider payment: %w", err)
	}
	return payment, nil
}
