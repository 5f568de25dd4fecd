package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// Querier is the storage interface consumed by the service layer. Services
// depend on this interface rather than *Queries so tests can substitute mocks.
type Querier interface {
	// Tiers
	CreateTier(ctx context.Context, arg CreateTierParams) (Tier, error)
	GetTier(ctx context.Context, id uuid.UUID) (Tier, error)
	GetTierByClubAndName(ctx context.Context, arg GetTierByClubAndNameParams) (Tier, error)
	ListTiersByClub(ctx context.Context, clubID uuid.UUID) ([]Tier, error)
	UpdateTierMetadata(ctx context.Context, arg UpdateTierMetadataParams) (Tier, error)
	DeactivateTier(ctx context.Context, id uuid.UUID) error

	// Payment customers
	CreatePaymentCustomer(ctx context.Context, arg CreatePaymentCustomerParams) (PaymentCustomer, error)
	GetPaymentCustomer(ctx context.Context, id uuid.UUID) (PaymentCustomer, error)
	GetPaymentCustomerByUserClubProvider(ctx context.Context, arg GetPaymentCustomerByUserClubProviderParams) (PaymentCustomer, error)
	UpdatePaymentCustomerContact(ctx context.Context, arg UpdatePaymentCustomerContactParams) error

	// Mandates
	CreateMandate(ctx context.Context, arg CreateMandateParams) (Mandate, error)
	GetMandate(ctx context.Context, id uuid.UUID) (Mandate, error)
	GetMandateByProviderID(ctx context.Context, arg GetMandateByProviderIDParams) (Mandate, error)
	GetLatestPendingSetupMandate(ctx context.Context, paymentCustomerID uuid.UUID) (Mandate, error)
	CompleteMandateSetup(ctx context.Context, arg CompleteMandateSetupParams) (Mandate, error)
	UpdateMandateStatus(ctx context.Context, arg UpdateMandateStatusParams) (Mandate, error)
	ListMandatesByCustomer(ctx context.Context, paymentCustomerID uuid.UUID) ([]Mandate, error)

	// Payment methods
	CreatePaymentMethod(ctx context.Context, arg CreatePaymentMethodParams) (PaymentMethod, error)
	ClearDefaultPaymentMethods(ctx context.Context, userID uuid.UUID) error
	GetPaymentMethodByMandate(ctx context.Context, mandateID pgtype.UUID) (PaymentMethod, error)
	UpdatePaymentMethodStatusByMandate(ctx context.Context, arg UpdatePaymentMethodStatusByMandateParams) error

	// Subscriptions
	CreateSubscription(ctx context.Context, arg CreateSubscriptionParams) (Subscription, error)
	GetSubscription(ctx context.Context, id uuid.UUID) (Subscription, error)
	GetSubscriptionForUpdate(ctx context.Context, id uuid.UUID) (Subscription, error)
	GetActiveSubscriptionByChildAndClub(ctx context.Context, arg GetActiveSubscriptionByChildAndClubParams) (Subscription, error)
	ListSubscriptionsByClub(ctx context.Context, arg ListSubscriptionsByClubParams) ([]Subscription, error)
	CountSubscriptionsByClub(ctx context.Context, clubID uuid.UUID) (int64, error)
	ListSubscriptionsByMember(ctx context.Context, childUserID uuid.UUID) ([]Subscription, error)
	ListPendingSubscriptionsByMandate(ctx context.Context, paymentMandateID pgtype.Text) ([]Subscription, error)
	ListChargeableSubscriptionsByMandate(ctx context.Context, paymentMandateID pgtype.Text) ([]Subscription, error)
	UpdateSubscriptionStatus(ctx context.Context, arg UpdateSubscriptionStatusParams) (Subscription, error)
	ActivateSubscription(ctx context.Context, arg ActivateSubscriptionParams) (Subscription, error)
	PauseSubscription(ctx context.Context, arg PauseSubscriptionParams) (Subscription, error)
	ResumeSubscription(ctx context.Context, arg ResumeSubscriptionParams) (Subscription, error)
	CancelSubscription(ctx context.Context, arg CancelSubscriptionParams) (Subscription, error)
	ChangeSubscriptionTier(ctx context.Context, arg ChangeSubscriptionTierParams) (Subscription, error)
	IncrementFailedPaymentCount(ctx context.Context, id uuid.UUID) (int32, error)
	ResetFailedPaymentCount(ctx context.Context, id uuid.UUID) error

	// Subscription events (append-only audit log)
	CreateSubscriptionEvent(ctx context.Context, arg CreateSubscriptionEventParams) (SubscriptionEvent, error)
	ListSubscriptionEventsBySubscription(ctx context.Context, subscriptionID uuid.UUID) ([]SubscriptionEvent, error)

	// Invoices
	CreateInvoice(ctx context.Context, arg CreateInvoiceParams) (Invoice, error)
	GetInvoice(ctx context.Context, id uuid.UUID) (Invoice, error)
	MarkInvoicePaid(ctx context.Context, arg MarkInvoicePaidParams) (Invoice, error)
	MarkInvoiceOverdue(ctx context.Context, id uuid.UUID) (Invoice, error)

	// Provider payments
	CreateProviderPayment(ctx context.Context, arg CreateProviderPaymentParams) (ProviderPayment, error)
	GetProviderPaymentByProviderID(ctx context.Context, arg GetProviderPaymentByProviderIDParams) (ProviderPayment, error)
	UpdateProviderPaymentStatus(ctx context.Context, arg UpdateProviderPaymentStatusParams) (ProviderPayment, error)
	MarkProviderPaymentFailed(ctx context.Context, arg MarkProviderPaymentFailedParams) (ProviderPayment, error)
	ListPaymentsBySubscription(ctx context.Context, subscriptionID pgtype.UUID) ([]ProviderPayment, error)

	// Webhook events
	InsertWebhookEvent(ctx context.Context, arg InsertWebhookEventParams) (WebhookEvent, error)
	MarkWebhookEventProcessed(ctx context.Context, arg MarkWebhookEventProcessedParams) error
	ListWebhookEvents(ctx context.Context, arg ListWebhookEventsParams) ([]WebhookEvent, error)
}

var _ Querier = (*Queries)(nil)
