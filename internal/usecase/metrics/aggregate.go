package metrics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/K-WAM/luxor-portal-sub001/internal/domain"
)

// YTDTotals holds period sums of monthly performance figures plus the two
// derived fields. TotalExpenses deliberately excludes property tax: tax is
// carried separately and only enters the post-tax ROI variants.
type YTDTotals struct {
	RentIncome    decimal.Decimal `json:"rent_income"`
	Maintenance   decimal.Decimal `json:"maintenance"`
	Pool          decimal.Decimal `json:"pool"`
	Garden        decimal.Decimal `json:"garden"`
	HOA           decimal.Decimal `json:"hoa"`
	ManagementFee decimal.Decimal `json:"management_fee"`
	PropertyTax   decimal.Decimal `json:"property_tax"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	NetIncome     decimal.Decimal `json:"net_income"`
}

// Aggregate sums performance rows for one target year up to the as-of date.
//
// monthsElapsed is 12 for past years, 0 for future years, and the as-of
// month number for the current year; rows outside months 1..monthsElapsed
// are ignored. When monthsFilter is non-empty only the listed month numbers
// are included (lease-term views use this to restrict a year to its lease
// months).
//
// total_expenses and net_income are computed per row before summing, not on
// the aggregate, so the tax-exclusion rule holds even for partial or
// zero-filled rows. Negative values are summed as-is: rows are trusted input.
// No rows is not an error; the result is simply all zeros.
func Aggregate(rows []domain.MonthlyPerformance, targetYear int, asOf time.Time, monthsFilter []int) YTDTotals {
	var totals YTDTotals

	elapsed := monthsElapsed(targetYear, asOf)
	if elapsed <= 0 {
		return totals
	}
	if elapsed > 12 {
		elapsed = 12
	}

	var filter map[int]bool
	if len(monthsFilter) > 0 {
		filter = make(map[int]bool, len(monthsFilter))
		for _, m := range monthsFilter {
			filter[m] = true
		}
	}

	for _, row := range rows {
		if row.Year != targetYear {
			continue
		}
		if row.Month < 1 || row.Month > elapsed {
			continue
		}
		if filter != nil && !filter[row.Month] {
			continue
		}

		rowExpenses := expenseSum(row.Maintenance, row.Pool, row.Garden, row.HOA, row.ManagementFee)
		rowNet := row.RentIncome.Sub(rowExpenses)

		totals.RentIncome = totals.RentIncome.Add(row.RentIncome)
		totals.Maintenance = totals.Maintenance.Add(row.Maintenance)
		totals.Pool = totals.Pool.Add(row.Pool)
		totals.Garden = totals.Garden.Add(row.Garden)
		totals.HOA = totals.HOA.Add(row.HOA)
		totals.ManagementFee = totals.ManagementFee.Add(row.ManagementFee)
		totals.PropertyTax = totals.PropertyTax.Add(row.PropertyTax)
		totals.TotalExpenses = totals.TotalExpenses.Add(rowExpenses)
		totals.NetIncome = totals.NetIncome.Add(rowNet)
	}

	return totals
}

// monthsElapsed returns how many months of targetYear have passed as of the
// reference date: 12 for past years, 0 for future years, otherwise the
// as-of month number.
func monthsElapsed(targetYear int, asOf time.Time) int {
	switch {
	case targetYear < asOf.Year():
		return 12
	case targetYear > asOf.Year():
		return 0
	default:
		return int(asOf.Month())
	}
}

// expenseSum is the single definition of "total expenses": the five expense
// categories, property tax excluded.
func expenseSum(maintenance, pool, garden, hoa, fee decimal.Decimal) decimal.Decimal {
	return maintenance.Add(pool).Add(garden).Add(hoa).Add(fee)
}

// addTotals folds b into a field by field.
func addTotals(a, b YTDTotals) YTDTotals {
	a.RentIncome = a.RentIncome.Add(b.RentIncome)
	a.Maintenance = a.Maintenance.Add(b.Maintenance)
	a.Pool = a.Pool.Add(b.Pool)
	a.Garden = a.Garden.Add(b.Garden)
	a.HOA = a.HOA.Add(b.HOA)
	a.ManagementFee = a.ManagementFee.Add(b.ManagementFee)
	a.PropertyTax = a.PropertyTax.Add(b.PropertyTax)
	a.TotalExpenses = a.TotalExpenses.Add(b.TotalExpenses)
	a.NetIncome = a.NetIncome.Add(b.NetIncome)
	return a
}
