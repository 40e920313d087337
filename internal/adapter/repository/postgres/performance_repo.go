package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/K-WAM/luxor-portal-sub001/internal/domain"
)

// performanceRepository implements domain.PerformanceRepository
type performanceRepository struct {
	db *DB
}

// NewPerformanceRepository creates a new performance repository
func NewPerformanceRepository(db *DB) domain.PerformanceRepository {
	return &performanceRepository{db: db}
}

// Upsert inserts a performance row, replacing the existing (property, year,
// month) row if one exists. The unique constraint enforces the row-per-month
// contract the metrics engine's input relies on.
func (r *performanceRepository) Upsert(ctx context.Context, row *domain.MonthlyPerformance) error {
	query := `
		INSERT INTO monthly_performance (
			id, property_id, year, month,
			rent_income, maintenance, pool, garden, hoa,
			management_fee, property_tax, market_value
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (property_id, year, month) DO UPDATE SET
			rent_income = EXCLUDED.rent_income,
			maintenance = EXCLUDED.maintenance,
			pool = EXCLUDED.pool,
			garden = EXCLUDED.garden,
			hoa = EXCLUDED.hoa,
			management_fee = EXCLUDED.management_fee,
			property_tax = EXCLUDED.property_tax,
			market_value = EXCLUDED.market_value
	`

	var marketValue interface{}
	if row.MarketValue != nil {
		marketValue = row.MarketValue.String()
	}

	_, err := r.db.ExecContext(ctx, query,
		row.ID,
		row.PropertyID,
		row.Year,
		row.Month,
		row.RentIncome.String(),
		row.Maintenance.String(),
		row.Pool.String(),
		row.Garden.String(),
		row.HOA.String(),
		row.ManagementFee.String(),
		row.PropertyTax.String(),
		marketValue,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert performance row: %w", err)
	}

	return nil
}

// ListByProperty retrieves every performance row for a property
func (r *performanceRepository) ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]domain.MonthlyPerformance, error) {
	query := `
		SELECT id, property_id, year, month,
			rent_income, maintenance, pool, garden, hoa,
			management_fee, property_tax, market_value
		FROM monthly_performance
		WHERE property_id = $1
		ORDER BY year, month
	`
	return r.queryRows(ctx, query, propertyID)
}

// ListByPropertyYear retrieves one year of performance rows
func (r *performanceRepository) ListByPropertyYear(ctx context.Context, propertyID uuid.UUID, year int) ([]domain.MonthlyPerformance, error) {
	query := `
		SELECT id, property_id, year, month,
			rent_income, maintenance, pool, garden, hoa,
			management_fee, property_tax, market_value
		FROM monthly_performance
		WHERE property_id = $1 AND year = $2
		ORDER BY month
	`
	return r.queryRows(ctx, query, propertyID, year)
}

func (r *performanceRepository) queryRows(ctx context.Context, query string, args ...interface{}) ([]domain.MonthlyPerformance, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query performance rows: %w", err)
	}
	defer rows.Close()

	var result []domain.MonthlyPerformance
	for rows.Next() {
		var (
			row                                   domain.MonthlyPerformance
			rentIncome, maintenance, pool, garden sql.NullString
			hoa, managementFee, propertyTax       sql.NullString
			marketValue                           sql.NullString
		)

		err := rows.Scan(
			&row.ID,
			&row.PropertyID,
			&row.Year,
			&row.Month,
			&rentIncome,
			&maintenance,
			&pool,
			&garden,
			&hoa,
			&managementFee,
			&propertyTax,
			&marketValue,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan performance row: %w", err)
		}

		if row.RentIncome, err = nullDecimal(rentIncome, "rent_income"); err != nil {
			return nil, err
		}
		if row.Maintenance, err = nullDecimal(maintenance, "maintenance"); err != nil {
			return nil, err
		}
		if row.Pool, err = nullDecimal(pool, "pool"); err != nil {
			return nil, err
		}
		if row.Garden, err = nullDecimal(garden, "garden"); err != nil {
			return nil, err
		}
		if row.HOA, err = nullDecimal(hoa, "hoa"); err != nil {
			return nil, err
		}
		if row.ManagementFee, err = nullDecimal(managementFee, "management_fee"); err != nil {
			return nil, err
		}
		if row.PropertyTax, err = nullDecimal(propertyTax, "property_tax"); err != nil {
			return nil, err
		}
		// NULL stays nil here: a missing appraisal is not a zero appraisal.
		if row.MarketValue, err = nullDecimalPtr(marketValue, "market_value"); err != nil {
			return nil, err
		}

		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate performance rows: %w", err)
	}

	return result, nil
}
