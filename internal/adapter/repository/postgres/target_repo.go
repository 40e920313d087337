package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/K-WAM/luxor-portal-sub001/internal/domain"
)

// targetRepository implements domain.TargetRepository
type targetRepository struct {
	db *DB
}

// NewTargetRepository creates a new annual target repository
func NewTargetRepository(db *DB) domain.TargetRepository {
	return &targetRepository{db: db}
}

// Get retrieves the target for a property and year
func (r *targetRepository) Get(ctx context.Context, propertyID uuid.UUID, year int) (*domain.AnnualTarget, error) {
	query := `
		SELECT id, property_id, year,
			rent_income, maintenance, pool, garden, hoa,
			management_fee, property_tax
		FROM annual_targets
		WHERE property_id = $1 AND year = $2
	`

	var (
		target                                domain.AnnualTarget
		rentIncome, maintenance, pool, garden sql.NullString
		hoa, managementFee, propertyTax       sql.NullString
	)

	err := r.db.QueryRowContext(ctx, query, propertyID, year).Scan(
		&target.ID,
		&target.PropertyID,
		&target.Year,
		&rentIncome,
		&maintenance,
		&pool,
		&garden,
		&hoa,
		&managementFee,
		&propertyTax,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("no target for property %s year %d: %w", propertyID, year, err)
		}
		return nil, fmt.Errorf("failed to get annual target: %w", err)
	}

	if target.RentIncome, err = nullDecimal(rentIncome, "rent_income"); err != nil {
		return nil, err
	}
	if target.Maintenance, err = nullDecimal(maintenance, "maintenance"); err != nil {
		return nil, err
	}
	if target.Pool, err = nullDecimal(pool, "pool"); err != nil {
		return nil, err
	}
	if target.Garden, err = nullDecimal(garden, "garden"); err != nil {
		return nil, err
	}
	if target.HOA, err = nullDecimal(hoa, "hoa"); err != nil {
		return nil, err
	}
	if target.ManagementFee, err = nullDecimal(managementFee, "management_fee"); err != nil {
		return nil, err
	}
	if target.PropertyTax, err = nullDecimal(propertyTax, "property_tax"); err != nil {
		return nil, err
	}

	return &target, nil
}

// Put inserts or replaces the target for (property, year)
func (r *targetRepository) Put(ctx context.Context, target *domain.AnnualTarget) error {
	query := `
		INSERT INTO annual_targets (
			id, property_id, year,
			rent_income, maintenance, pool, garden, hoa,
			management_fee, property_tax
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (property_id, year) DO UPDATE SET
			rent_income = EXCLUDED.rent_income,
			maintenance = EXCLUDED.maintenance,
			pool = EXCLUDED.pool,
			garden = EXCLUDED.garden,
			hoa = EXCLUDED.hoa,
			management_fee = EXCLUDED.management_fee,
			property_tax = EXCLUDED.property_tax
	`

	_, err := r.db.ExecContext(ctx, query,
		target.ID,
		target.PropertyID,
		target.Year,
		target.RentIncome.String(),
		target.Maintenance.String(),
		target.Pool.String(),
		target.Garden.String(),
		target.HOA.String(),
		target.ManagementFee.String(),
		target.PropertyTax.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to put annual target: %w", err)
	}

	return nil
}
