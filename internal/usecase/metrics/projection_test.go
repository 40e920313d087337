package metrics

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/K-WAM/luxor-portal-sub001/internal/domain"
)

func TestProject_FullYearNoTarget(t *testing.T) {
	p := &domain.Property{
		ID:                uuid.New(),
		Name:              "No Lease Dates",
		HomeCost:          decimal.NewFromInt(240000),
		TargetMonthlyRent: decimal.NewFromInt(2000),
	}

	proj := Project(p, nil, 2025)

	assert.Equal(t, 12, proj.LeaseMonths)
	assert.True(t, proj.PlannedRent.Equal(decimal.NewFromInt(24000)), "got %s", proj.PlannedRent)
	assert.True(t, proj.PlannedExpenses.IsZero())
	assert.True(t, proj.ProjectedNetIncome.Equal(decimal.NewFromInt(24000)))
	// 24000 / 240000 * 100 = 10
	assert.True(t, proj.ProjectedROI.Equal(decimal.NewFromInt(10)))
}

func TestProject_ProratesFirstLeaseMonth(t *testing.T) {
	// Lease starts June 16 of a 30-day month; June earns half a month.
	leaseStart := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	leaseEnd := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	p := &domain.Property{
		ID:                uuid.New(),
		Name:              "Mid Month Start",
		TargetMonthlyRent: decimal.NewFromInt(2000),
		LeaseStart:        &leaseStart,
		LeaseEnd:          &leaseEnd,
	}

	proj := Project(p, nil, 2025)

	require.Equal(t, 7, proj.LeaseMonths) // Jun..Dec
	// 0.5 * 2000 + 6 * 2000 = 13000
	assert.True(t, proj.PlannedRent.Equal(decimal.NewFromInt(13000)), "got %s", proj.PlannedRent)
}

func TestProject_CrossYearLeaseCountsOnlyTargetYear(t *testing.T) {
	leaseStart := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)
	leaseEnd := time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC)
	p := &domain.Property{
		ID:                uuid.New(),
		Name:              "Cross Year",
		TargetMonthlyRent: decimal.NewFromInt(1000),
		LeaseStart:        &leaseStart,
		LeaseEnd:          &leaseEnd,
	}

	proj2024 := Project(p, nil, 2024)
	proj2025 := Project(p, nil, 2025)

	assert.Equal(t, 5, proj2024.LeaseMonths)
	assert.True(t, proj2024.PlannedRent.Equal(decimal.NewFromInt(5000)))
	assert.Equal(t, 7, proj2025.LeaseMonths)
	assert.True(t, proj2025.PlannedRent.Equal(decimal.NewFromInt(7000)))
}

func TestProject_OpenEndedLeaseRunsThroughYear(t *testing.T) {
	leaseStart := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	p := &domain.Property{
		ID:                uuid.New(),
		Name:              "Open Ended",
		TargetMonthlyRent: decimal.NewFromInt(1500),
		LeaseStart:        &leaseStart,
	}

	proj := Project(p, nil, 2025)

	assert.Equal(t, 10, proj.LeaseMonths) // Mar..Dec
	assert.True(t, proj.PlannedRent.Equal(decimal.NewFromInt(15000)))
}

func TestProject_TargetOverridesAndExpenses(t *testing.T) {
	p := &domain.Property{
		ID:                uuid.New(),
		Name:              "Targeted",
		HomeCost:          decimal.NewFromInt(300000),
		TargetMonthlyRent: decimal.NewFromInt(2000),
	}
	target := &domain.AnnualTarget{
		ID:            uuid.New(),
		PropertyID:    p.ID,
		Year:          2025,
		RentIncome:    decimal.NewFromInt(27000),
		Maintenance:   decimal.NewFromInt(1200),
		Pool:          decimal.NewFromInt(600),
		Garden:        decimal.NewFromInt(400),
		HOA:           decimal.NewFromInt(800),
		ManagementFee: decimal.NewFromInt(2000),
		PropertyTax:   decimal.NewFromInt(9000), // excluded from planned expenses
	}

	proj := Project(p, target, 2025)

	assert.True(t, proj.PlannedRent.Equal(decimal.NewFromInt(27000)))
	assert.True(t, proj.PlannedExpenses.Equal(decimal.NewFromInt(5000)), "got %s", proj.PlannedExpenses)
	assert.True(t, proj.ProjectedNetIncome.Equal(decimal.NewFromInt(22000)))
}

func TestProject_ZeroCostBasisGuardsROI(t *testing.T) {
	p := &domain.Property{
		ID:                uuid.New(),
		Name:              "No Basis",
		TargetMonthlyRent: decimal.NewFromInt(2000),
	}

	proj := Project(p, nil, 2025)
	assert.True(t, proj.ProjectedROI.IsZero())
}
