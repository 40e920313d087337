package domain

import (
	"context"

	"github.com/google/uuid"
)

// PropertyRepository defines the interface for property persistence operations
type PropertyRepository interface {
	// GetByID retrieves a property by its ID
	GetByID(ctx context.Context, id uuid.UUID) (*Property, error)

	// Create creates a new property
	Create(ctx context.Context, property *Property) error

	// List retrieves all properties (admin portfolio view)
	List(ctx context.Context) ([]*Property, error)

	// ListByOwner retrieves all properties belonging to one owner
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Property, error)
}

// PerformanceRepository defines the interface for monthly performance
// persistence operations
type PerformanceRepository interface {
	// Upsert inserts a performance row, replacing any existing row with
	// the same (property, year, month) key
	Upsert(ctx context.Context, row *MonthlyPerformance) error

	// ListByProperty retrieves every performance row for a property,
	// ordered by (year, month) ascending
	ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]MonthlyPerformance, error)

	// ListByPropertyYear retrieves the performance rows of one year,
	// ordered by month ascending
	ListByPropertyYear(ctx context.Context, propertyID uuid.UUID, year int) ([]MonthlyPerformance, error)
}

// TargetRepository defines the interface for annual target persistence operations
type TargetRepository interface {
	// Get retrieves the target for a property and year.
	// Returns an error wrapping sql.ErrNoRows when no target exists.
	Get(ctx context.Context, propertyID uuid.UUID, year int) (*AnnualTarget, error)

	// Put inserts or replaces the target for (property, year)
	Put(ctx context.Context, target *AnnualTarget) error
}
