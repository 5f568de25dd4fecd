package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"github.com/clubhouse/clubhouse-api/internal/client/directdebit"
	"github.com/clubhouse/clubhouse-api/internal/db"
	"github.com/clubhouse/clubhouse-api/internal/helpers"
	"github.com/clubhouse/clubhouse-api/internal/logger"
	"github.com/clubhouse/clubhouse-api/internal/types/api/params"
	"github.com/clubhouse/clubhouse-api/internal/types/business"
)

// PendingMandatePrefix marks a mandate row created before the provider has
// issued a real mandate id. It is swapped for the real id when the hosted
// setup flow completes, so the (provider, provider_mandate_id) uniqueness
// constraint holds from the moment of creation.
const PendingMandatePrefix = "pending_"

// setupFlowTokenTTL bounds how long a payer can sit on the provider's hosted
// page before the return redirect is rejected.
const setupFlowTokenTTL = 30 * time.Minute

// MandateService manages payment customers and Direct Debit mandates through
// the hosted provider setup flow.
type MandateService struct {
	queries     db.Querier
	ddClient    directdebit.API
	cipher      *helpers.Cipher
	clock       helpers.Clock
	stateSecret string
	logger      *zap.Logger
}

// NewMandateService creates a new mandate service
func NewMandateService(queries db.Querier, ddClient directdebit.API, cipher *helpers.Cipher, clock helpers.Clock, stateSecret string) *MandateService {
	return &MandateService{
		queries:     queries,
		ddClient:    ddClient,
		cipher:      cipher,
		clock:       clock,
		stateSecret: stateSecret,
		logger:      logger.Log,
	}
}

// WithTransaction creates a new mandate service instance with transaction-based queries
func (s *MandateService) WithTransaction(tx pgx.Tx) *MandateService {
	return &MandateService{
		queries:     db.New(tx),
		ddClient:    s.ddClient,
		cipher:      s.cipher,
		clock:       s.clock,
		stateSecret: s.stateSecret,
		logger:      s.logger,
	}
}

// GetOrCreatePaymentCustomer returns the existing payment customer for
// (user, club, provider) or registers one with the provider and stores it.
// If the provider call succeeds but the insert fails, the remote customer is
// orphaned; that is logged and accepted rather than compensated.
func (s *MandateService) GetOrCreatePaymentCustomer(ctx context.Context, p params.GetOrCreateCustomerParams) (*db.PaymentCustomer, error) {
	existing, err := s.queries.GetPaymentCustomerByUserClubProvider(ctx, db.GetPaymentCustomerByUserClubProviderParams{
		UserID:   p.UserID,
		ClubID:   p.ClubID,
		Provider: p.Provider,
	})
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to look up payment customer: %w", err)
	}

	result, err := s.ddClient.CreateCustomer(ctx, directdebit.CustomerData{
		Email:      p.Contact.Email,
		GivenName:  p.Contact.GivenName,
		FamilyName: p.Contact.FamilyName,
	})
	if err != nil {
		return nil, &ProviderError{Provider: s.ddClient.ProviderName(), Op: "create customer", Err: err}
	}

	contactJSON, err := json.Marshal(p.Contact)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal contact: %w", err)
	}
	encrypted, err := s.cipher.Encrypt(contactJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt contact: %w", err)
	}

	customer, err := s.queries.CreatePaymentCustomer(ctx, db.CreatePaymentCustomerParams{
		UserID:             p.UserID,
		ClubID:             p.ClubID,
		Provider:           p.Provider,
		ProviderCustomerID: result.ProviderCustomerID,
		ContactEncrypted:   encrypted,
	})
	if err != nil {
		s.logger.Error("created provider customer but failed to persist it",
			zap.String("provider", p.Provider),
			zap.String("provider_customer_id", result.ProviderCustomerID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to create payment customer: %w", err)
	}

	s.logger.Info("created payment customer",
		zap.String("payment_customer_id", customer.ID.String()),
		zap.String("provider", p.Provider))

	return &customer, nil
}

// InitiateSetupFlow starts a hosted mandate-setup flow. It creates the
// payment customer on demand, records a mandate row under a placeholder id,
// and returns the provider's authorisation URL plus a signed state token that
// the completion endpoint requires.
func (s *MandateService) InitiateSetupFlow(ctx context.Context, p params.InitiateSetupFlowParams) (*directdebit.SetupFlow, string, error) {
	customer, err := s.GetOrCreatePaymentCustomer(ctx, params.GetOrCreateCustomerParams{
		UserID:   p.UserID,
		ClubID:   p.ClubID,
		Provider: p.Provider,
		Contact:  p.Contact,
	})
	if err != nil {
		return nil, "", err
	}

	flow, err := s.ddClient.CreateMandateSetupFlow(ctx, customer.ProviderCustomerID,
		directdebit.RedirectURLs{SuccessURL: p.SuccessURL, CancelURL: p.CancelURL},
		directdebit.SetupFlowOptions{Scheme: p.Scheme})
	if err != nil {
		return nil, "", &ProviderError{Provider: s.ddClient.ProviderName(), Op: "create setup flow", Err: err}
	}

	scheme := pgtype.Text{}
	if p.Scheme != "" {
		scheme = pgtype.Text{String: p.Scheme, Valid: true}
	}

	mandate, err := s.queries.CreateMandate(ctx, db.CreateMandateParams{
		PaymentCustomerID: customer.ID,
		Provider:          p.Provider,
		ProviderMandateID: PendingMandatePrefix + flow.FlowID,
		Scheme:            scheme,
		Status:            db.MandateStatusPendingSetup,
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to create pending mandate: %w", err)
	}

	token, err := helpers.GenerateStateToken(business.SetupFlowState{
		UserID:            p.UserID,
		ClubID:            p.ClubID,
		Provider:          p.Provider,
		PaymentCustomerID: customer.ID,
		FlowID:            flow.FlowID,
	}, s.stateSecret, setupFlowTokenTTL, s.clock)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate state token: %w", err)
	}

	s.logger.Info("initiated mandate setup flow",
		zap.String("mandate_id", mandate.ID.String()),
		zap.String("flow_id", flow.FlowID),
		zap.String("provider", p.Provider))

	return flow, token, nil
}

// CompleteSetupFlow finishes a hosted flow after the payer returns. The state
// token is verified before anything else; a token/flow mismatch is rejected.
// On success the placeholder mandate id is replaced with the provider's real
// id and a direct-debit payment method is registered as the user's default.
func (s *MandateService) CompleteSetupFlow(ctx context.Context, p params.CompleteSetupFlowParams) (*db.Mandate, error) {
	state, err := helpers.ParseStateToken[business.SetupFlowState](p.StateToken, s.stateSecret, s.clock)
	if err != nil {
		return nil, fmt.Errorf("setup flow state token rejected: %w", err)
	}
	if p.FlowID != "" && p.FlowID != state.FlowID {
		return nil, fmt.Errorf("flow id does not match state token: %w", helpers.ErrInvalidToken)
	}

	mandate, err := s.queries.GetMandateByProviderID(ctx, db.GetMandateByProviderIDParams{
		Provider:          state.Provider,
		ProviderMandateID: PendingMandatePrefix + state.FlowID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("no pending mandate for flow %s: %w", state.FlowID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to look up pending mandate: %w", err)
	}
	if mandate.Status != db.MandateStatusPendingSetup {
		return nil, fmt.Errorf("mandate %s already completed: %w", mandate.ID, ErrConflict)
	}

	details, err := s.ddClient.CompleteMandateSetup(ctx, state.FlowID)
	if err != nil {
		return nil, &ProviderError{Provider: s.ddClient.ProviderName(), Op: "complete setup flow", Err: err}
	}

	scheme := mandate.Scheme
	if details.Scheme != "" {
		scheme = pgtype.Text{String: details.Scheme, Valid: true}
	}
	reference := pgtype.Text{}
	if details.Reference != "" {
		reference = pgtype.Text{String: details.Reference, Valid: true}
	}
	nextCharge := pgtype.Date{}
	if !details.NextPossibleChargeDate.IsZero() {
		nextCharge = pgtype.Date{Time: details.NextPossibleChargeDate, Valid: true}
	}

	updated, err := s.queries.CompleteMandateSetup(ctx, db.CompleteMandateSetupParams{
		ID:                     mandate.ID,
		ProviderMandateID:      details.ProviderMandateID,
		Status:                 mandateStatusFromProvider(details.Status),
		Scheme:                 scheme,
		Reference:              reference,
		NextPossibleChargeDate: nextCharge,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to complete mandate setup: %w", err)
	}

	if err := s.queries.ClearDefaultPaymentMethods(ctx, state.UserID); err != nil {
		return nil, fmt.Errorf("failed to clear default payment methods: %w", err)
	}
	if _, err := s.queries.CreatePaymentMethod(ctx, db.CreatePaymentMethodParams{
		UserID:     state.UserID,
		MandateID:  pgtype.UUID{Bytes: updated.ID, Valid: true},
		MethodType: db.PaymentMethodTypeDirectDebit,
		Status:     db.PaymentMethodStatusActive,
		IsDefault:  true,
	}); err != nil {
		return nil, fmt.Errorf("failed to create payment method: %w", err)
	}

	s.logger.Info("completed mandate setup",
		zap.String("mandate_id", updated.ID.String()),
		zap.String("provider_mandate_id", details.ProviderMandateID),
		zap.String("status", string(updated.Status)))

	return &updated, nil
}

// CancelMandate cancels a mandate at the provider and locally, and revokes
// the payment method backed by it. Only the owning user may cancel.
func (s *MandateService) CancelMandate(ctx context.Context, p params.CancelMandateParams) (*db.Mandate, error) {
	mandate, err := s.queries.GetMandate(ctx, p.MandateID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("mandate %s: %w", p.MandateID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get mandate: %w", err)
	}

	customer, err := s.queries.GetPaymentCustomer(ctx, mandate.PaymentCustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment customer: %w", err)
	}
	if customer.UserID != p.UserID {
		return nil, fmt.Errorf("mandate %s does not belong to user: %w", p.MandateID, ErrNotFound)
	}

	switch mandate.Status {
	case db.MandateStatusCancelled, db.MandateStatusExpired, db.MandateStatusFailed:
		return nil, fmt.Errorf("mandate %s is already %s: %w", p.MandateID, mandate.Status, ErrConflict)
	}

	if mandate.Status != db.MandateStatusPendingSetup {
		if err := s.ddClient.CancelMandate(ctx, mandate.ProviderMandateID); err != nil {
			return nil, &ProviderError{Provider: s.ddClient.ProviderName(), Op: "cancel mandate", Err: err}
		}
	}

	updated, err := s.queries.UpdateMandateStatus(ctx, db.UpdateMandateStatusParams{
		ID:          mandate.ID,
		Status:      db.MandateStatusCancelled,
		CancelledAt: pgtype.Timestamptz{Time: s.clock.Now(), Valid: true},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update mandate status: %w", err)
	}

	if err := s.queries.UpdatePaymentMethodStatusByMandate(ctx, db.UpdatePaymentMethodStatusByMandateParams{
		MandateID: pgtype.UUID{Bytes: mandate.ID, Valid: true},
		Status:    db.PaymentMethodStatusRevoked,
	}); err != nil {
		return nil, fmt.Errorf("failed to revoke payment method: %w", err)
	}

	s.logger.Info("cancelled mandate", zap.String("mandate_id", mandate.ID.String()))
	return &updated, nil
}

// ListMandates returns all mandates for a user's payment customer in a club.
func (s *MandateService) ListMandates(ctx context.Context, userID, clubID uuid.UUID, provider string) ([]db.Mandate, error) {
	customer, err := s.queries.GetPaymentCustomerByUserClubProvider(ctx, db.GetPaymentCustomerByUserClubProviderParams{
		UserID:   userID,
		ClubID:   clubID,
		Provider: provider,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up payment customer: %w", err)
	}
	mandates, err := s.queries.ListMandatesByCustomer(ctx, customer.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list mandates: %w", err)
	}
	return mandates, nil
}

// mandateStatusFromProvider maps provider mandate states onto the local enum.
// Unknown states land in pending_submission so a later webhook can settle them.
func mandateStatusFromProvider(status string) db.MandateStatus {
	switch status {
	case "pending_submission":
		return db.MandateStatusPendingSubmission
	case "submitted":
		return db.MandateStatusSubmitted
	case "active":
		return db.MandateStatusActive
	case "cancelled":
		return db.MandateStatusCancelled
	case "failed":
		return db.MandateStatusFailed
	case "expired":
		return db.MandateStatusExpired
	default:
		return db.MandateStatusPendingSubmission
	}
}
