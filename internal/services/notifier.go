package services

import (
	"context"

	"github.com/google/uuid"
)

// Notifier delivers member-facing notifications about billing outcomes.
// Implementations must be safe for concurrent use; delivery failures are
// logged by callers and never fail the transaction that triggered them.
type Notifier interface {
	NotifyPaymentFailed(ctx context.Context, subscriptionID uuid.UUID, attempt int32, reason string) error
	NotifySubscriptionSuspended(ctx context.Context, subscriptionID uuid.UUID) error
	NotifySubscriptionCancelled(ctx context.Context, subscriptionID uuid.UUID, reason string) error
}

// NoopNotifier discards all notifications. Used where no email transport is
// configured, e.g. local development.
type NoopNotifier struct{}

func (NoopNotifier) NotifyPaymentFailed(context.Context, uuid.UUID, int32, string) error {
	return nil
}

func (NoopNotifier) NotifySubscriptionSuspended(context.Context, uuid.UUID) error {
	return nil
}

func (NoopNotifier) NotifySubscriptionCancelled(context.Context, uuid.UUID, string) error {
	return nil
}
