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

func TestYearToDateWindow(t *testing.T) {
	window := YearToDateWindow(asOf(2025, 4, 20))

	require.Len(t, window, 4)
	assert.Equal(t, MonthKey{Year: 2025, Month: 1}, window[0])
	assert.Equal(t, MonthKey{Year: 2025, Month: 4}, window[3])
}

func TestLeaseTermWindow_TwoYearLease(t *testing.T) {
	// Aug 2024 - Jul 2025: exactly 12 pairs, 5 in 2024 and 7 in 2025.
	leaseStart := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)
	leaseEnd := time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC)
	p := &domain.Property{
		ID:         uuid.New(),
		Name:       "Cross Year",
		LeaseStart: &leaseStart,
		LeaseEnd:   &leaseEnd,
	}

	window := LeaseTermWindow(p, asOf(2026, 1, 1))

	require.Len(t, window, 12)
	in2024, in2025 := 0, 0
	for _, key := range window {
		switch key.Year {
		case 2024:
			in2024++
		case 2025:
			in2025++
		}
	}
	assert.Equal(t, 5, in2024)
	assert.Equal(t, 7, in2025)
	assert.Equal(t, MonthKey{Year: 2024, Month: 8}, window[0])
	assert.Equal(t, MonthKey{Year: 2025, Month: 7}, window[11])
}

func TestLeaseTermWindow_OpenEndedRunsThroughToday(t *testing.T) {
	leaseStart := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	p := &domain.Property{ID: uuid.New(), Name: "Open Ended", LeaseStart: &leaseStart}

	window := LeaseTermWindow(p, asOf(2025, 5, 10))

	require.Len(t, window, 4) // Feb..May
	assert.Equal(t, MonthKey{Year: 2025, Month: 5}, window[3])
}

func TestLeaseTermWindow_NoLeaseStart(t *testing.T) {
	p := &domain.Property{ID: uuid.New(), Name: "No Lease"}
	assert.Nil(t, LeaseTermWindow(p, asOf(2025, 5, 10)))
}

func TestAllTimeWindow_DropsTrailingZeroMonths(t *testing.T) {
	purchase := time.Date(2024, 10, 5, 0, 0, 0, 0, time.UTC)
	p := &domain.Property{ID: uuid.New(), Name: "All Time", PurchaseDate: &purchase}

	rows := []domain.MonthlyPerformance{
		monthRow(2024, 11, 2000, 0),
		monthRow(2025, 2, 2000, 0),
		// March..June recorded with no rent: trailing zeros are dropped.
		monthRow(2025, 3, 0, 100),
		monthRow(2025, 6, 0, 0),
	}

	window := AllTimeWindow(p, rows, asOf(2025, 6, 30))

	// Oct 2024 .. Feb 2025, the last month with recorded rent income.
	require.Len(t, window, 5)
	assert.Equal(t, MonthKey{Year: 2024, Month: 10}, window[0])
	assert.Equal(t, MonthKey{Year: 2025, Month: 2}, window[4])
}

func TestAllTimeWindow_FallsBackToLeaseStart(t *testing.T) {
	leaseStart := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	p := &domain.Property{ID: uuid.New(), Name: "Lease Anchor", LeaseStart: &leaseStart}

	rows := []domain.MonthlyPerformance{monthRow(2025, 3, 1500, 0)}

	window := AllTimeWindow(p, rows, asOf(2025, 6, 1))
	require.Len(t, window, 3)
}

func TestAllTimeWindow_NoAnchorOrNoRent(t *testing.T) {
	p := &domain.Property{ID: uuid.New(), Name: "No Anchor"}
	assert.Nil(t, AllTimeWindow(p, []domain.MonthlyPerformance{monthRow(2025, 1, 1000, 0)}, asOf(2025, 6, 1)))

	purchase := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	p = &domain.Property{ID: uuid.New(), Name: "No Rent", PurchaseDate: &purchase}
	assert.Nil(t, AllTimeWindow(p, []domain.MonthlyPerformance{monthRow(2025, 2, 0, 100)}, asOf(2025, 6, 1)))
}

func TestProrationFactor_MidMonthStart(t *testing.T) {
	// Lease starts June 16 of a 30-day month: (30-16+1)/30 = 0.5
	leaseStart := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)

	factor := ProrationFactor(&leaseStart, 2025, 6)
	assert.True(t, factor.Equal(decimal.NewFromFloat(0.5)), "got %s", factor)
}

func TestProrationFactor_DayOneNotProrated(t *testing.T) {
	leaseStart := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, ProrationFactor(&leaseStart, 2025, 6).Equal(decimal.NewFromInt(1)))
}

func TestProrationFactor_OtherMonthsNotProrated(t *testing.T) {
	leaseStart := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)

	assert.True(t, ProrationFactor(&leaseStart, 2025, 7).Equal(decimal.NewFromInt(1)))
	assert.True(t, ProrationFactor(&leaseStart, 2024, 6).Equal(decimal.NewFromInt(1)))
	assert.True(t, ProrationFactor(nil, 2025, 6).Equal(decimal.NewFromInt(1)))
}

func TestDaysIn(t *testing.T) {
	assert.Equal(t, 31, daysIn(2025, 1))
	assert.Equal(t, 28, daysIn(2025, 2))
	assert.Equal(t, 29, daysIn(2024, 2)) // leap year
	assert.Equal(t, 30, daysIn(2025, 4))
	assert.Equal(t, 31, daysIn(2025, 12))
}
