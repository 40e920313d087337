package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Property represents a managed property entity in the domain layer.
// It is an immutable snapshot for calculation purposes: the metrics engine
// reads it, never mutates it.
//
// All monetary fields default to zero when the persisted column is NULL;
// the coercion happens in the repository layer, not here.
type Property struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Name    string
	Address string

	// Acquisition costs. Cost basis is always derived from these three;
	// see TotalCost below for why the stored total is not used.
	HomeCost       decimal.Decimal
	HomeRepairCost decimal.Decimal
	ClosingCosts   decimal.Decimal

	// TotalCost is the legacy stored total. It omits closing costs and is
	// kept only for display parity with old records. Never use it as a
	// cost basis.
	TotalCost decimal.Decimal

	CurrentMarketEstimate decimal.Decimal
	TargetMonthlyRent     decimal.Decimal
	Deposit               decimal.Decimal

	// LastMonthRentCollected is true when the tenant paid the final
	// month's rent at lease signing. That cash flow has no monthly row,
	// so the metrics engine injects it as a one-time rent bonus.
	LastMonthRentCollected bool

	PurchaseDate *time.Time
	LeaseStart   *time.Time
	LeaseEnd     *time.Time
}

// Validate ensures the property adheres to domain rules
// Returns an error if validation fails
func (p *Property) Validate() error {
	if p.Name == "" {
		return errors.New("property name cannot be empty")
	}

	if p.HomeCost.IsNegative() {
		return errors.New("home cost cannot be negative")
	}
	if p.HomeRepairCost.IsNegative() {
		return errors.New("home repair cost cannot be negative")
	}
	if p.ClosingCosts.IsNegative() {
		return errors.New("closing costs cannot be negative")
	}

	// An open-ended lease (start without end) is valid; the reverse is not.
	if p.LeaseEnd != nil && p.LeaseStart == nil {
		return errors.New("lease end requires a lease start")
	}
	if p.LeaseStart != nil && p.LeaseEnd != nil && p.LeaseEnd.Before(*p.LeaseStart) {
		return errors.New("lease end cannot be before lease start")
	}

	return nil
}
