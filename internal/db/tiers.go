package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createTier = `
INSERT INTO tiers (club_id, name, description, monthly_price_in_cents, annual_price_in_cents, billing_frequency, features, active, sort_order)
VALUES ($1, $2, $3, $4, $5, $6, $7, true, $8)
RETURNING id, club_id, name, description, monthly_price_in_cents, annual_price_in_cents, billing_frequency, features, active, sort_order, created_at, updated_at
`

type CreateTierParams struct {
	ClubID              uuid.UUID
	Name                string
	Description         pgtype.Text
	MonthlyPriceInCents int64
	AnnualPriceInCents  int64
	BillingFrequency    BillingFrequency
	Features            []byte
	SortOrder           int32
}

func (q *Queries) CreateTier(ctx context.Context, arg CreateTierParams) (Tier, error) {
	row := q.db.QueryRow(ctx, createTier,
		arg.ClubID,
		arg.Name,
		arg.Description,
		arg.MonthlyPriceInCents,
		arg.AnnualPriceInCents,
		arg.BillingFrequency,
		arg.Features,
		arg.SortOrder,
	)
	var i Tier
	err := row.Scan(
		&i.ID,
		&i.ClubID,
		&i.Name,
		&i.Description,
		&i.MonthlyPriceInCents,
		&i.AnnualPriceInCents,
		&i.BillingFrequency,
		&i.Features,
		&i.Active,
		&i.SortOrder,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getTier = `
SELECT id, club_id, name, description, monthly_price_in_cents, annual_price_in_cents, billing_frequency, features, active, sort_order, created_at, updated_at
FROM tiers
WHERE id = $1
`

func (q *Queries) GetTier(ctx context.Context, id uuid.UUID) (Tier, error) {
	row := q.db.QueryRow(ctx, getTier, id)
	var i Tier
	err := row.Scan(
		&i.ID,
		&i.ClubID,
		&i.Name,
		&i.Description,
		&i.MonthlyPriceInCents,
		&i.AnnualPriceInCents,
		&i.BillingFrequency,
		&i.Features,
		&i.Active,
		&i.SortOrder,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getTierByClubAndName = `
SELECT id, club_id, name, description, monthly_price_in_cents, annual_price_in_cents, billing_frequency, features, active, sort_order, created_at, updated_at
FROM tiers
WHERE club_id = $1 AND name = $2
`

type GetTierByClubAndNameParams struct {
	ClubID uuid.UUID
	Name   string
}

func (q *Queries) GetTierByClubAndName(ctx context.Context, arg GetTierByClubAndNameParams) (Tier, error) {
	row := q.db.QueryRow(ctx, getTierByClubAndName, arg.ClubID, arg.Name)
	var i Tier
	err := row.Scan(
		&i.ID,
		&i.ClubID,
		&i.Name,
		&i.Description,
		&i.MonthlyPriceInCents,
		&i.AnnualPriceInCents,
		&i.BillingFrequency,
		&i.Features,
		&i.Active,
		&i.SortOrder,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listTiersByClub = `
SELECT id, club_id, name, description, monthly_price_in_cents, annual_price_in_cents, billing_frequency, features, active, sort_order, created_at, updated_at
FROM tiers
WHERE club_id = $1
ORDER BY sort_order, name
`

func (q *Queries) ListTiersByClub(ctx context.Context, clubID uuid.UUID) ([]Tier, error) {
	rows, err := q.db.Query(ctx, listTiersByClub, clubID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Tier
	for rows.Next() {
		var i Tier
		if err := rows.Scan(
			&i.ID,
			&i.ClubID,
			&i.Name,
			&i.Description,
			&i.MonthlyPriceInCents,
			&i.AnnualPriceInCents,
			&i.BillingFrequency,
			&i.Features,
			&i.Active,
			&i.SortOrder,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const updateTierMetadata = `
UPDATE tiers
SET description = $2, features = $3, sort_order = $4, updated_at = now()
WHERE id = $1
RETURNING id, club_id, name, description, monthly_price_in_cents, annual_price_in_cents, billing_frequency, features, active, sort_order, created_at, updated_at
`

type UpdateTierMetadataParams struct {
	ID          uuid.UUID
	Description pgtype.Text
	Features    []byte
	SortOrder   int32
}

func (q *Queries) UpdateTierMetadata(ctx context.Context, arg UpdateTierMetadataParams) (Tier, error) {
	row := q.db.QueryRow(ctx, updateTierMetadata, arg.ID, arg.Description, arg.Features, arg.SortOrder)
	var i Tier
	err := row.Scan(
		&i.ID,
		&i.ClubID,
		&i.Name,
		&i.Description,
		&i.MonthlyPriceInCents,
		&i.AnnualPriceInCents,
		&i.BillingFrequency,
		&i.Features,
		&i.Active,
		&i.SortOrder,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const deactivateTier = `
UPDATE tiers
SET active = false, updated_at = now()
WHERE id = $1
`

func (q *Queries) DeactivateTier(ctx context.Context, id uuid.UUID) error {
	_, err := q.db.Exec(ctx, deactivateTier, id)
	return err
}
