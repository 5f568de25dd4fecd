package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/clubhouse/clubhouse-api/internal/client/directdebit"
	"github.com/clubhouse/clubhouse-api/internal/db"
	"github.com/clubhouse/clubhouse-api/internal/helpers"
	"github.com/clubhouse/clubhouse-api/internal/logger"
	"github.com/clubhouse/clubhouse-api/internal/types/api/params"
	"github.com/clubhouse/clubhouse-api/internal/types/api/responses"
)

// dispatchKey routes a normalized provider event to its handler. The table
// below is the complete set of events the engine acts on; anything else is
// recorded and skipped.
type dispatchKey struct {
	ResourceType string
	Action       string
}

// eventHandler runs inside a per-event transaction. An error rolls back that
// event's effects only; the rest of the batch proceeds.
type eventHandler func(ctx context.Context, svc *WebhookService, event directdebit.Event) error

// WebhookService ingests provider webhook deliveries: signature verification,
// per-event idempotent persistence, and dispatch to the reconcilers.
type WebhookService struct {
	queries             db.Querier
	pool                *pgxpool.Pool
	ddClient            directdebit.API
	cipher              *helpers.Cipher
	reconciler          *PaymentReconciler
	subscriptionService *SubscriptionService
	clock               helpers.Clock
	logger              *zap.Logger
}

// NewWebhookService creates a new webhook service
func NewWebhookService(queries db.Querier, pool *pgxpool.Pool, ddClient directdebit.API, cipher *helpers.Cipher, reconciler *PaymentReconciler, subscriptionService *SubscriptionService, clock helpers.Clock) *WebhookService {
	return &WebhookService{
		queries:             queries,
		pool:                pool,
		ddClient:            ddClient,
		cipher:              cipher,
		reconciler:          reconciler,
		subscriptionService: subscriptionService,
		clock:               clock,
		logger:              logger.Log,
	}
}

// withTransaction derives a tx-scoped service for one event's handler.
func (s *WebhookService) withTransaction(tx pgx.Tx) *WebhookService {
	return &WebhookService{
		queries:             db.New(tx),
		pool:                s.pool,
		ddClient:            s.ddClient,
		cipher:              s.cipher,
		reconciler:          s.reconciler.WithTransaction(tx),
		subscriptionService: s.subscriptionService.WithTransaction(tx),
		clock:               s.clock,
		logger:              s.logger,
	}
}

// webhookDispatch is the closed routing table for provider events. Payment
// actions split three ways: created/submitted/confirmed only mirror the
// provider status, paid_out runs the success path, and
// failed/cancelled/customer_approval_denied all run the failure path since no
// money arrived.
var webhookDispatch = map[dispatchKey]eventHandler{
	{directdebit.ResourceMandates, "submitted"}:                handleMandateStatusEvent,
	{directdebit.ResourceMandates, "active"}:                   handleMandateStatusEvent,
	{directdebit.ResourceMandates, "cancelled"}:                handleMandateStatusEvent,
	{directdebit.ResourceMandates, "failed"}:                   handleMandateStatusEvent,
	{directdebit.ResourceMandates, "expired"}:                  handleMandateStatusEvent,
	{directdebit.ResourcePayments, "created"}:                  handlePaymentCreated,
	{directdebit.ResourcePayments, "submitted"}:                handlePaymentSubmitted,
	{directdebit.ResourcePayments, "confirmed"}:                handlePaymentConfirmed,
	{directdebit.ResourcePayments, "paid_out"}:                 handlePaymentPaidOut,
	{directdebit.ResourcePayments, "failed"}:                   handlePaymentFailed,
	{directdebit.ResourcePayments, "cancelled"}:                handlePaymentCancelled,
	{directdebit.ResourcePayments, "customer_approval_denied"}: handlePaymentFailed,
	{directdebit.ResourcePayments, "charged_back"}:             handlePaymentChargedBack,
}

// ProcessWebhook runs the full ingestion pipeline for one delivery. An
// invalid signature rejects the whole body with ErrSignatureInvalid before
// anything is persisted. Each event is deduplicated on (provider, event_id)
// and handled in its own transaction so one poison event cannot take down
// the batch.
func (s *WebhookService) ProcessWebhook(ctx context.Context, body []byte, signatureHeader string) (*responses.WebhookResultResponse, error) {
	if !s.ddClient.VerifyWebhookSignature(body, signatureHeader) {
		s.logger.Warn("rejected webhook with invalid signature",
			zap.String("provider", s.ddClient.ProviderName()),
			zap.Int("body_bytes", len(body)))
		s.recordRejectedDelivery(ctx, body)
		return nil, ErrSignatureInvalid
	}

	events, err := s.ddClient.ParseWebhookEvents(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse webhook body: %w", err)
	}

	result := &responses.WebhookResultResponse{Received: len(events)}
	provider := s.ddClient.ProviderName()

	for _, event := range events {
		stored, seen, err := s.storeEvent(ctx, provider, event)
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", event.ID, err))
			s.logger.Error("failed to persist webhook event",
				zap.String("event_id", event.ID),
				zap.Error(err))
			continue
		}
		if seen {
			result.Skipped++
			continue
		}

		handler, ok := webhookDispatch[dispatchKey{ResourceType: event.ResourceType, Action: event.Action}]
		if !ok {
			s.markProcessed(ctx, stored.ID, "ignored")
			result.Skipped++
			continue
		}

		err = helpers.WithTransaction(ctx, s.pool, func(tx pgx.Tx) error {
			return handler(ctx, s.withTransaction(tx), event)
		})
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", event.ID, err))
			s.markProcessed(ctx, stored.ID, fmt.Sprintf("error: %v", err))
			s.logger.Error("webhook event handler failed",
				zap.String("event_id", event.ID),
				zap.String("resource_type", event.ResourceType),
				zap.String("action", event.Action),
				zap.Error(err))
			continue
		}

		s.markProcessed(ctx, stored.ID, "ok")
		result.Processed++
	}

	s.logger.Info("processed webhook delivery",
		zap.String("provider", provider),
		zap.Int("received", result.Received),
		zap.Int("processed", result.Processed),
		zap.Int("skipped", result.Skipped),
		zap.Int("failed", result.Failed))

	return result, nil
}

// storeEvent persists the event row, reporting seen=true for duplicates.
func (s *WebhookService) storeEvent(ctx context.Context, provider string, event directdebit.Event) (db.WebhookEvent, bool, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return db.WebhookEvent{}, false, fmt.Errorf("failed to marshal event: %w", err)
	}
	encrypted, err := s.cipher.Encrypt(payload)
	if err != nil {
		return db.WebhookEvent{}, false, fmt.Errorf("failed to encrypt event payload: %w", err)
	}

	stored, err := s.queries.InsertWebhookEvent(ctx, db.InsertWebhookEventParams{
		Provider:         provider,
		EventID:          event.ID,
		ResourceType:     pgtype.Text{String: event.ResourceType, Valid: true},
		Action:           pgtype.Text{String: event.Action, Valid: true},
		ResourceID:       pgtype.Text{String: event.ResourceID, Valid: event.ResourceID != ""},
		PayloadEncrypted: encrypted,
		SignatureValid:   true,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return db.WebhookEvent{}, true, nil
		}
		return db.WebhookEvent{}, false, fmt.Errorf("failed to insert webhook event: %w", err)
	}
	return stored, false, nil
}

// recordRejectedDelivery keeps a forensic trail of deliveries that failed
// signature verification. The raw body is stored encrypted and never parsed;
// a synthetic event id keeps the row clear of the idempotency space of real
// provider events.
func (s *WebhookService) recordRejectedDelivery(ctx context.Context, body []byte) {
	encrypted, err := s.cipher.Encrypt(body)
	if err != nil {
		s.logger.Error("failed to encrypt rejected webhook payload", zap.Error(err))
		return
	}
	stored, err := s.queries.InsertWebhookEvent(ctx, db.InsertWebhookEventParams{
		Provider:         s.ddClient.ProviderName(),
		EventID:          "rejected_" + uuid.NewString(),
		PayloadEncrypted: encrypted,
		SignatureValid:   false,
	})
	if err != nil {
		s.logger.Error("failed to persist rejected webhook delivery", zap.Error(err))
		return
	}
	s.markProcessed(ctx, stored.ID, "invalid signature")
}

func (s *WebhookService) markProcessed(ctx context.Context, id uuid.UUID, result string) {
	err := s.queries.MarkWebhookEventProcessed(ctx, db.MarkWebhookEventProcessedParams{
		ID:          id,
		Result:      pgtype.Text{String: result, Valid: true},
		ProcessedAt: pgtype.Timestamptz{Time: s.clock.Now(), Valid: true},
	})
	if err != nil {
		s.logger.Error("failed to mark webhook event processed", zap.Error(err))
	}
}

// ListEvents exposes the stored webhook trail for forensics.
func (s *WebhookService) ListEvents(ctx context.Context, provider string, limit, offset int32) ([]db.WebhookEvent, error) {
	events, err := s.queries.ListWebhookEvents(ctx, db.ListWebhookEventsParams{
		Provider: provider,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list webhook events: %w", err)
	}
	return events, nil
}

// handleMandateStatusEvent mirrors a provider mandate status change locally.
// A mandate becoming chargeable also activates any pending subscriptions that
// reference it; one becoming unusable revokes its payment method and suspends
// the active or paused subscriptions billed through it.
func handleMandateStatusEvent(ctx context.Context, svc *WebhookService, event directdebit.Event) error {
	mandate, err := svc.queries.GetMandateByProviderID(ctx, db.GetMandateByProviderIDParams{
		Provider:          svc.ddClient.ProviderName(),
		ProviderMandateID: event.ResourceID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("mandate %s: %w", event.ResourceID, ErrNotFound)
		}
		return fmt.Errorf("failed to get mandate: %w", err)
	}

	newStatus := mandateStatusFromProvider(event.Action)
	cancelledAt := mandate.CancelledAt
	if newStatus == db.MandateStatusCancelled && !cancelledAt.Valid {
		cancelledAt = pgtype.Timestamptz{Time: svc.clock.Now(), Valid: true}
	}

	if _, err := svc.queries.UpdateMandateStatus(ctx, db.UpdateMandateStatusParams{
		ID:          mandate.ID,
		Status:      newStatus,
		CancelledAt: cancelledAt,
	}); err != nil {
		return fmt.Errorf("failed to update mandate status: %w", err)
	}

	switch newStatus {
	case db.MandateStatusActive, db.MandateStatusSubmitted:
		pending, err := svc.queries.ListPendingSubscriptionsByMandate(ctx, pgtype.Text{String: event.ResourceID, Valid: true})
		if err != nil {
			return fmt.Errorf("failed to list pending subscriptions: %w", err)
		}
		for _, sub := range pending {
			if _, err := svc.subscriptionService.ActivateSubscription(ctx, sub.ID, event.ResourceID, params.WebhookActor); err != nil {
				return fmt.Errorf("failed to activate subscription %s: %w", sub.ID, err)
			}
		}
	case db.MandateStatusCancelled, db.MandateStatusFailed, db.MandateStatusExpired:
		if err := svc.queries.UpdatePaymentMethodStatusByMandate(ctx, db.UpdatePaymentMethodStatusByMandateParams{
			MandateID: pgtype.UUID{Bytes: mandate.ID, Valid: true},
			Status:    db.PaymentMethodStatusRevoked,
		}); err != nil {
			return fmt.Errorf("failed to revoke payment method: %w", err)
		}
		chargeable, err := svc.queries.ListChargeableSubscriptionsByMandate(ctx, pgtype.Text{String: event.ResourceID, Valid: true})
		if err != nil {
			return fmt.Errorf("failed to list subscriptions on mandate: %w", err)
		}
		for _, sub := range chargeable {
			if err := svc.subscriptionService.SuspendForMandateRevocation(ctx, sub.ID, event.ResourceID); err != nil {
				return fmt.Errorf("failed to suspend subscription %s: %w", sub.ID, err)
			}
		}
	}

	return nil
}

func handlePaymentCreated(ctx context.Context, svc *WebhookService, event directdebit.Event) error {
	return svc.reconciler.HandlePaymentConfirmed(ctx, svc.ddClient.ProviderName(), event.ResourceID, db.ProviderPaymentStatusCreated)
}

func handlePaymentSubmitted(ctx context.Context, svc *WebhookService, event directdebit.Event) error {
	return svc.reconciler.HandlePaymentConfirmed(ctx, svc.ddClient.ProviderName(), event.ResourceID, db.ProviderPaymentStatusSubmitted)
}

func handlePaymentConfirmed(ctx context.Context, svc *WebhookService, event directdebit.Event) error {
	return svc.reconciler.HandlePaymentConfirmed(ctx, svc.ddClient.ProviderName(), event.ResourceID, db.ProviderPaymentStatusConfirmed)
}

func handlePaymentPaidOut(ctx context.Context, svc *WebhookService, event directdebit.Event) error {
	return svc.reconciler.HandlePaymentSuccess(ctx, svc.ddClient.ProviderName(), event.ResourceID, event.Details["payout"])
}

func handlePaymentFailed(ctx context.Context, svc *WebhookService, event directdebit.Event) error {
	return svc.reconciler.HandlePaymentFailure(ctx, svc.ddClient.ProviderName(), event.ResourceID, failureReason(event))
}

func handlePaymentCancelled(ctx context.Context, svc *WebhookService, event directdebit.Event) error {
	return svc.reconciler.HandlePaymentCancelled(ctx, svc.ddClient.ProviderName(), event.ResourceID, failureReason(event))
}

func handlePaymentChargedBack(ctx context.Context, svc *WebhookService, event directdebit.Event) error {
	return svc.reconciler.HandleChargeback(ctx, svc.ddClient.ProviderName(), event.ResourceID, failureReason(event))
}

func failureReason(event directdebit.Event) string {
	if cause, ok := event.Details["cause"]; ok && cause != "" {
		return cause
	}
	return event.Details["description"]
}
