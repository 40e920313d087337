package domain

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AnnualTarget holds per-property, per-year planned figures in the same
// monetary shape as a monthly row. Targets feed projections and
// plan-vs-actual comparisons only; actual ROI never reads them.
type AnnualTarget struct {
	ID         uuid.UUID
	PropertyID uuid.UUID
	Year       int

	RentIncome    decimal.Decimal
	Maintenance   decimal.Decimal
	Pool          decimal.Decimal
	Garden        decimal.Decimal
	HOA           decimal.Decimal
	ManagementFee decimal.Decimal
	PropertyTax   decimal.Decimal
}

// Validate ensures the target adheres to domain rules
func (t *AnnualTarget) Validate() error {
	if t.PropertyID == uuid.Nil {
		return errors.New("annual target must reference a property")
	}
	if t.Year < 1900 || t.Year > 9999 {
		return errors.New("year is out of range")
	}
	return nil
}
