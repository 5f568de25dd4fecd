package email

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"

	"github.com/clubhouse/clubhouse-api/internal/db"
	"github.com/clubhouse/clubhouse-api/internal/helpers"
	"github.com/clubhouse/clubhouse-api/internal/logger"
	"github.com/clubhouse/clubhouse-api/internal/services"
	"github.com/clubhouse/clubhouse-api/internal/types/business"
)

// ResendNotifier delivers billing notifications to the paying parent via
// Resend. The recipient address comes from the encrypted contact blob on the
// payment customer behind the subscription's mandate.
type ResendNotifier struct {
	client    *resend.Client
	queries   db.Querier
	cipher    *helpers.Cipher
	provider  string
	fromEmail string
	fromName  string
	logger    *zap.Logger
}

func NewResendNotifier(apiKey string, queries db.Querier, cipher *helpers.Cipher, provider, fromEmail, fromName string) *ResendNotifier {
	return &ResendNotifier{
		client:    resend.NewClient(apiKey),
		queries:   queries,
		cipher:    cipher,
		provider:  provider,
		fromEmail: fromEmail,
		fromName:  fromName,
		logger:    logger.Log,
	}
}

var _ services.Notifier = (*ResendNotifier)(nil)

func (n *ResendNotifier) NotifyPaymentFailed(ctx context.Context, subscriptionID uuid.UUID, attempt int32, reason string) error {
	remaining := services.MaxFailedPaymentsBeforeSuspension - attempt
	subject := "We could not collect your membership payment"
	body := fmt.Sprintf(
		"<p>A Direct Debit collection for your club membership failed (%s).</p>"+
			"<p>We will retry automatically. After %d more failed attempts the membership will be suspended.</p>",
		reasonOrDefault(reason), remaining)
	if remaining <= 0 {
		body = fmt.Sprintf(
			"<p>A Direct Debit collection for your club membership failed (%s).</p>"+
				"<p>The membership is now suspended; please update your payment details.</p>",
			reasonOrDefault(reason))
	}
	return n.send(ctx, subscriptionID, subject, body, "payment_failed")
}

func (n *ResendNotifier) NotifySubscriptionSuspended(ctx context.Context, subscriptionID uuid.UUID) error {
	return n.send(ctx, subscriptionID,
		"Your club membership has been suspended",
		"<p>Your club membership has been suspended after repeated failed payments. "+
			"The next successful collection reactivates it automatically.</p>",
		"suspended")
}

func (n *ResendNotifier) NotifySubscriptionCancelled(ctx context.Context, subscriptionID uuid.UUID, reason string) error {
	return n.send(ctx, subscriptionID,
		"Your club membership has been cancelled",
		fmt.Sprintf("<p>Your club membership has been cancelled (%s).</p>", reasonOrDefault(reason)),
		"cancelled")
}

func (n *ResendNotifier) send(ctx context.Context, subscriptionID uuid.UUID, subject, html, category string) error {
	contact, err := n.resolveContact(ctx, subscriptionID)
	if err != nil {
		return err
	}

	sent, err := n.client.Emails.Send(&resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", n.fromName, n.fromEmail),
		To:      []string{contact.Email},
		Subject: subject,
		Html:    html,
		Tags: []resend.Tag{
			{Name: "category", Value: category},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	n.logger.Info("sent billing notification",
		zap.String("email_id", sent.Id),
		zap.String("subscription_id", subscriptionID.String()),
		zap.String("category", category))

	return nil
}

// resolveContact walks subscription -> mandate -> payment customer and
// decrypts the stored contact details.
func (n *ResendNotifier) resolveContact(ctx context.Context, subscriptionID uuid.UUID) (*business.CustomerContact, error) {
	subscription, err := n.queries.GetSubscription(ctx, subscriptionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if !subscription.PaymentMandateID.Valid {
		return nil, fmt.Errorf("subscription %s has no mandate to resolve a contact from", subscriptionID)
	}

	mandate, err := n.queries.GetMandateByProviderID(ctx, db.GetMandateByProviderIDParams{
		Provider:          n.provider,
		ProviderMandateID: subscription.PaymentMandateID.String,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get mandate: %w", err)
	}

	customer, err := n.queries.GetPaymentCustomer(ctx, mandate.PaymentCustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment customer: %w", err)
	}

	plaintext, err := n.cipher.Decrypt(customer.ContactEncrypted)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt contact: %w", err)
	}
	var contact business.CustomerContact
	if err := json.Unmarshal(plaintext, &contact); err != nil {
		return nil, fmt.Errorf("failed to unmarshal contact: %w", err)
	}
	if contact.Email == "" {
		return nil, fmt.Errorf("payment customer %s has no email on file", customer.ID)
	}
	return &contact, nil
}

func reasonOrDefault(reason string) string {
	if reason == "" {
		return "no reason given by the bank"
	}
	return reason
}
