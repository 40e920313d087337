package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/K-WAM/luxor-portal-sub001/internal/domain"
)

// propertyRepository implements domain.PropertyRepository
type propertyRepository struct {
	db *DB
}

// NewPropertyRepository creates a new property repository
func NewPropertyRepository(db *DB) domain.PropertyRepository {
	return &propertyRepository{db: db}
}

const propertyColumns = `
	id, owner_id, name, address,
	home_cost, home_repair_cost, closing_costs, total_cost,
	current_market_estimate, target_monthly_rent, deposit,
	last_month_rent_collected, purchase_date, lease_start, lease_end
`

// GetByID retrieves a property by its ID
func (r *propertyRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	query := `
		SELECT ` + propertyColumns + `
		FROM properties
		WHERE id = $1
	`

	property, err := scanProperty(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("property not found: %w", err)
		}
		return nil, fmt.Errorf("failed to get property by ID: %w", err)
	}
	return property, nil
}

// Create creates a new property
func (r *propertyRepository) Create(ctx context.Context, property *domain.Property) error {
	query := `
		INSERT INTO properties (` + propertyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err := r.db.ExecContext(ctx, query,
		property.ID,
		property.OwnerID,
		property.Name,
		property.Address,
		property.HomeCost.String(),
		property.HomeRepairCost.String(),
		property.ClosingCosts.String(),
		property.TotalCost.String(),
		property.CurrentMarketEstimate.String(),
		property.TargetMonthlyRent.String(),
		property.Deposit.String(),
		property.LastMonthRentCollected,
		property.PurchaseDate,
		property.LeaseStart,
		property.LeaseEnd,
	)
	if err != nil {
		return fmt.Errorf("failed to create property: %w", err)
	}

	return nil
}

// List retrieves all properties ordered by name
func (r *propertyRepository) List(ctx context.Context) ([]*domain.Property, error) {
	query := `
		SELECT ` + propertyColumns + `
		FROM properties
		ORDER BY name
	`
	return r.queryProperties(ctx, query)
}

// ListByOwner retrieves all properties belonging to one owner
func (r *propertyRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Property, error) {
	query := `
		SELECT ` + propertyColumns + `
		FROM properties
		WHERE owner_id = $1
		ORDER BY name
	`
	return r.queryProperties(ctx, query, ownerID)
}

func (r *propertyRepository) queryProperties(ctx context.Context, query string, args ...interface{}) ([]*domain.Property, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}
	defer rows.Close()

	var properties []*domain.Property
	for rows.Next() {
		property, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan property: %w", err)
		}
		properties = append(properties, property)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate properties: %w", err)
	}

	return properties, nil
}

// rowScanner covers both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProperty(row rowScanner) (*domain.Property, error) {
	var (
		property                              domain.Property
		address                               sql.NullString
		homeCost, repairCost, closingCosts    sql.NullString
		totalCost, marketEstimate, targetRent sql.NullString
		deposit                               sql.NullString
		purchaseDate, leaseStart, leaseEnd    sql.NullTime
	)

	err := row.Scan(
		&property.ID,
		&property.OwnerID,
		&property.Name,
		&address,
		&homeCost,
		&repairCost,
		&closingCosts,
		&totalCost,
		&marketEstimate,
		&targetRent,
		&deposit,
		&property.LastMonthRentCollected,
		&purchaseDate,
		&leaseStart,
		&leaseEnd,
	)
	if err != nil {
		return nil, err
	}

	if address.Valid {
		property.Address = address.String
	}

	// Every NULL monetary column becomes an explicit zero here, so the
	// engine downstream never deals with absent numbers.
	if property.HomeCost, err = nullDecimal(homeCost, "home_cost"); err != nil {
		return nil, err
	}
	if property.HomeRepairCost, err = nullDecimal(repairCost, "home_repair_cost"); err != nil {
		return nil, err
	}
	if property.ClosingCosts, err = nullDecimal(closingCosts, "closing_costs"); err != nil {
		return nil, err
	}
	if property.TotalCost, err = nullDecimal(totalCost, "total_cost"); err != nil {
		return nil, err
	}
	if property.CurrentMarketEstimate, err = nullDecimal(marketEstimate, "current_market_estimate"); err != nil {
		return nil, err
	}
	if property.TargetMonthlyRent, err = nullDecimal(targetRent, "target_monthly_rent"); err != nil {
		return nil, err
	}
	if property.Deposit, err = nullDecimal(deposit, "deposit"); err != nil {
		return nil, err
	}

	property.PurchaseDate = nullTimePtr(purchaseDate)
	property.LeaseStart = nullTimePtr(leaseStart)
	property.LeaseEnd = nullTimePtr(leaseEnd)

	return &property, nil
}
