package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"github.com/clubhouse/clubhouse-api/internal/db"
	"github.com/clubhouse/clubhouse-api/internal/logger"
	"github.com/clubhouse/clubhouse-api/internal/types/api/requests"
)

// TierService manages a club's membership tier catalogue.
type TierService struct {
	queries db.Querier
	logger  *zap.Logger
}

func NewTierService(queries db.Querier) *TierService {
	return &TierService{
		queries: queries,
		logger:  logger.Log,
	}
}

// CreateTier adds a tier to a club's catalogue. Tier names are unique per
// club.
func (s *TierService) CreateTier(ctx context.Context, req requests.CreateTierRequest) (*db.Tier, error) {
	clubID, err := uuid.Parse(req.ClubID)
	if err != nil {
		return nil, fmt.Errorf("invalid club id: %w", err)
	}

	features, err := json.Marshal(req.Features)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal features: %w", err)
	}

	description := pgtype.Text{}
	if req.Description != "" {
		description = pgtype.Text{String: req.Description, Valid: true}
	}

	tier, err := s.queries.CreateTier(ctx, db.CreateTierParams{
		ClubID:              clubID,
		Name:                req.Name,
		Description:         description,
		MonthlyPriceInCents: req.MonthlyPriceInCents,
		AnnualPriceInCents:  req.AnnualPriceInCents,
		BillingFrequency:    db.BillingFrequency(req.BillingFrequency),
		Features:            features,
		SortOrder:           req.SortOrder,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, fmt.Errorf("tier %q already exists in club: %w", req.Name, ErrConflict)
		}
		return nil, fmt.Errorf("failed to create tier: %w", err)
	}

	s.logger.Info("created tier",
		zap.String("tier_id", tier.ID.String()),
		zap.String("club_id", clubID.String()),
		zap.String("name", tier.Name))

	return &tier, nil
}

// GetTier fetches one tier by id.
func (s *TierService) GetTier(ctx context.Context, id uuid.UUID) (*db.Tier, error) {
	tier, err := s.queries.GetTier(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("tier %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get tier: %w", err)
	}
	return &tier, nil
}

// ListTiers returns a club's tiers in catalogue order.
func (s *TierService) ListTiers(ctx context.Context, clubID uuid.UUID) ([]db.Tier, error) {
	tiers, err := s.queries.ListTiersByClub(ctx, clubID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tiers: %w", err)
	}
	return tiers, nil
}

// UpdateTier changes a tier's metadata. Pricing is immutable; a price change
// is a new tier plus a member migration.
func (s *TierService) UpdateTier(ctx context.Context, id uuid.UUID, req requests.UpdateTierRequest) (*db.Tier, error) {
	if _, err := s.GetTier(ctx, id); err != nil {
		return nil, err
	}

	features, err := json.Marshal(req.Features)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal features: %w", err)
	}

	description := pgtype.Text{}
	if req.Description != "" {
		description = pgtype.Text{String: req.Description, Valid: true}
	}

	tier, err := s.queries.UpdateTierMetadata(ctx, db.UpdateTierMetadataParams{
		ID:          id,
		Description: description,
		Features:    features,
		SortOrder:   req.SortOrder,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update tier: %w", err)
	}
	return &tier, nil
}

// DeactivateTier hides a tier from new signups. Existing subscriptions keep
// their tier and price.
func (s *TierService) DeactivateTier(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetTier(ctx, id); err != nil {
		return err
	}
	if err := s.queries.DeactivateTier(ctx, id); err != nil {
		return fmt.Errorf("failed to deactivate tier: %w", err)
	}
	s.logger.Info("deactivated tier", zap.String("tier_id", id.String()))
	return nil
}
