package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"github.com/clubhouse/clubhouse-api/internal/db"
	"github.com/clubhouse/clubhouse-api/internal/logger"
	"github.com/clubhouse/clubhouse-api/internal/types/api/params"
)

// SubscriptionEventService records the audit trail of subscription lifecycle
// changes. Events are appended in the same transaction as the status change
// they describe so the trail can never disagree with the row.
type SubscriptionEventService struct {
	queries db.Querier
	logger  *zap.Logger
}

func NewSubscriptionEventService(queries db.Querier) *SubscriptionEventService {
	return &SubscriptionEventService{
		queries: queries,
		logger:  logger.Log,
	}
}

// WithTransaction creates a new event service instance with transaction-based queries
func (s *SubscriptionEventService) WithTransaction(tx pgx.Tx) *SubscriptionEventService {
	return &SubscriptionEventService{
		queries: db.New(tx),
		logger:  s.logger,
	}
}

// RecordEvent appends one event row. previousStatus may be empty for the
// creation event. metadata must be nil or a JSON-marshalable value.
func (s *SubscriptionEventService) RecordEvent(
	ctx context.Context,
	subscriptionID uuid.UUID,
	eventType db.SubscriptionEventType,
	previousStatus db.SubscriptionStatus,
	newStatus db.SubscriptionStatus,
	actor params.Actor,
	metadata any,
) error {
	var metadataJSON []byte
	if metadata != nil {
		var err error
		metadataJSON, err = json.Marshal(metadata)
		if err != nil {
			return fmt.Errorf("failed to marshal event metadata: %w", err)
		}
	}

	prev := pgtype.Text{}
	if previousStatus != "" {
		prev = pgtype.Text{String: string(previousStatus), Valid: true}
	}

	actorID := pgtype.UUID{}
	if actor.ID != uuid.Nil {
		actorID = pgtype.UUID{Bytes: actor.ID, Valid: true}
	}

	_, err := s.queries.CreateSubscriptionEvent(ctx, db.CreateSubscriptionEventParams{
		SubscriptionID: subscriptionID,
		EventType:      eventType,
		PreviousStatus: prev,
		NewStatus:      pgtype.Text{String: string(newStatus), Valid: true},
		ActorType:      actor.Type,
		ActorID:        actorID,
		Metadata:       metadataJSON,
	})
	if err != nil {
		return fmt.Errorf("failed to record subscription event: %w", err)
	}

	s.logger.Debug("recorded subscription event",
		zap.String("subscription_id", subscriptionID.String()),
		zap.String("event_type", string(eventType)),
		zap.String("new_status", string(newStatus)))

	return nil
}

// ListEvents returns the event history for a subscription, newest first.
func (s *SubscriptionEventService) ListEvents(ctx context.Context, subscriptionID uuid.UUID) ([]db.SubscriptionEvent, error) {
	events, err := s.queries.ListSubscriptionEventsBySubscription(ctx, subscriptionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscription events: %w", err)
	}
	return events, nil
}
