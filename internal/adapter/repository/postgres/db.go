package postgres

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/shopspring/decimal"
)

// DB wraps the database connection
type DB struct {
	*sql.DB
}

// NewDB creates a new database connection
// connectionString should be in the format: "host=localhost port=5432 user=postgres password=postgres dbname=luxor sslmode=disable"
func NewDB(connectionString string) (*DB, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: db}, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.DB.Close()
}

// nullDecimal converts a nullable DECIMAL column into a concrete value.
// NULL defaults to zero: an explicit coercion, applied at the persistence
// boundary so the domain and the metrics engine never see absent numbers.
func nullDecimal(ns sql.NullString, column string) (decimal.Decimal, error) {
	if !ns.Valid || ns.String == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(ns.String)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse %s: %w", column, err)
	}
	return d, nil
}

// nullDecimalPtr converts a nullable DECIMAL column where NULL must stay
// distinguishable from zero (market-value snapshots).
func nullDecimalPtr(ns sql.NullString, column string) (*decimal.Decimal, error) {
	if !ns.Valid || ns.String == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(ns.String)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", column, err)
	}
	return &d, nil
}

// nullTimePtr converts a nullable DATE column into an optional time.
func nullTimePtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}
