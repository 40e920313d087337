package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProperty_Validate_Valid(t *testing.T) {
	purchase := time.Date(2021, 3, 15, 0, 0, 0, 0, time.UTC)
	leaseStart := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)
	leaseEnd := time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC)

	p := &Property{
		ID:                uuid.New(),
		OwnerID:           uuid.New(),
		Name:              "Elm Street Duplex",
		HomeCost:          decimal.NewFromInt(775000),
		HomeRepairCost:    decimal.NewFromInt(30800),
		ClosingCosts:      decimal.NewFromInt(12000),
		TargetMonthlyRent: decimal.NewFromInt(2500),
		PurchaseDate:      &purchase,
		LeaseStart:        &leaseStart,
		LeaseEnd:          &leaseEnd,
	}

	require.NoError(t, p.Validate())
}

func TestProperty_Validate_EmptyName(t *testing.T) {
	p := &Property{ID: uuid.New()}

	err := p.Validate()
	assert.EqualError(t, err, "property name cannot be empty")
}

func TestProperty_Validate_NegativeCosts(t *testing.T) {
	p := &Property{
		ID:       uuid.New(),
		Name:     "Bad Costs",
		HomeCost: decimal.NewFromInt(-1),
	}
	assert.EqualError(t, p.Validate(), "home cost cannot be negative")

	p = &Property{
		ID:             uuid.New(),
		Name:           "Bad Repair",
		HomeRepairCost: decimal.NewFromInt(-100),
	}
	assert.EqualError(t, p.Validate(), "home repair cost cannot be negative")

	p = &Property{
		ID:           uuid.New(),
		Name:         "Bad Closing",
		ClosingCosts: decimal.NewFromInt(-5),
	}
	assert.EqualError(t, p.Validate(), "closing costs cannot be negative")
}

func TestProperty_Validate_LeaseEndBeforeStart(t *testing.T) {
	leaseStart := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	leaseEnd := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)

	p := &Property{
		ID:         uuid.New(),
		Name:       "Backwards Lease",
		LeaseStart: &leaseStart,
		LeaseEnd:   &leaseEnd,
	}

	assert.EqualError(t, p.Validate(), "lease end cannot be before lease start")
}

func TestProperty_Validate_LeaseEndWithoutStart(t *testing.T) {
	leaseEnd := time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC)

	p := &Property{
		ID:       uuid.New(),
		Name:     "Dangling Lease End",
		LeaseEnd: &leaseEnd,
	}

	assert.EqualError(t, p.Validate(), "lease end requires a lease start")
}

func TestProperty_Validate_OpenEndedLease(t *testing.T) {
	leaseStart := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)

	p := &Property{
		ID:         uuid.New(),
		Name:       "Open Ended Lease",
		LeaseStart: &leaseStart,
	}

	assert.NoError(t, p.Validate())
}

func TestMonthlyPerformance_Validate(t *testing.T) {
	row := &MonthlyPerformance{
		ID:         uuid.New(),
		PropertyID: uuid.New(),
		Year:       2025,
		Month:      6,
		RentIncome: decimal.NewFromInt(2000),
	}
	require.NoError(t, row.Validate())

	row.Month = 0
	assert.EqualError(t, row.Validate(), "month must be between 1 and 12")

	row.Month = 13
	assert.EqualError(t, row.Validate(), "month must be between 1 and 12")

	row.Month = 6
	row.Year = 123
	assert.EqualError(t, row.Validate(), "year is out of range")

	row.Year = 2025
	row.PropertyID = uuid.Nil
	assert.EqualError(t, row.Validate(), "performance row must reference a property")
}

func TestAnnualTarget_Validate(t *testing.T) {
	target := &AnnualTarget{
		ID:         uuid.New(),
		PropertyID: uuid.New(),
		Year:       2025,
		RentIncome: decimal.NewFromInt(30000),
	}
	require.NoError(t, target.Validate())

	target.PropertyID = uuid.Nil
	assert.EqualError(t, target.Validate(), "annual target must reference a property")
}
