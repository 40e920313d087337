package domain

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MonthlyPerformance represents one month of recorded performance for a
// property. Uniqueness is (property, year, month); the repository enforces
// it with an upsert.
//
// Negative values are accepted as-is (refunds, chargebacks, corrections).
// The metrics engine sums them without clamping.
type MonthlyPerformance struct {
	ID         uuid.UUID
	PropertyID uuid.UUID
	Year       int
	Month      int // 1..12

	RentIncome    decimal.Decimal
	Maintenance   decimal.Decimal
	Pool          decimal.Decimal
	Garden        decimal.Decimal
	HOA           decimal.Decimal
	ManagementFee decimal.Decimal
	PropertyTax   decimal.Decimal

	// MarketValue is an optional valuation snapshot for the month. NULL
	// means no appraisal was recorded, which is different from zero.
	MarketValue *decimal.Decimal
}

// Validate ensures the performance row adheres to domain rules
// Returns an error if validation fails
func (m *MonthlyPerformance) Validate() error {
	if m.PropertyID == uuid.Nil {
		return errors.New("performance row must reference a property")
	}
	if m.Month < 1 || m.Month > 12 {
		return errors.New("month must be between 1 and 12")
	}
	if m.Year < 1900 || m.Year > 9999 {
		return errors.New("year is out of range")
	}
	return nil
}
