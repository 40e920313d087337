package metrics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/K-WAM/luxor-portal-sub001/internal/domain"
)

// Projection holds forward-looking planned figures for one year. Unlike
// actual metrics, projections never read historical performance rows.
type Projection struct {
	Year               int             `json:"year"`
	LeaseMonths        int             `json:"lease_months"`
	PlannedRent        decimal.Decimal `json:"planned_rent"`
	PlannedExpenses    decimal.Decimal `json:"planned_expenses"`
	ProjectedNetIncome decimal.Decimal `json:"projected_net_income"`
	ProjectedROI       decimal.Decimal `json:"projected_roi"`
}

// Project computes the planned rent, expenses, and ROI for a year.
//
// Planned rent comes from the annual target when one carries a positive
// rent figure; otherwise it is the target monthly rent over the year's lease
// months, with the first month prorated for a mid-month lease start. An
// open-ended lease is assumed to run through the projected year, and with no
// lease dates at all the property is assumed rented for the full year.
// Planned expenses are the target's five expense categories (tax excluded,
// same rule as actuals). Projected ROI divides by cost basis with the usual
// zero guard.
func Project(p *domain.Property, target *domain.AnnualTarget, year int) Projection {
	leaseMonths := leaseMonthsInYear(p, year)

	var plannedRent decimal.Decimal
	if target != nil && target.RentIncome.IsPositive() {
		plannedRent = target.RentIncome
	} else {
		for _, key := range leaseMonths {
			monthRent := p.TargetMonthlyRent.Mul(ProrationFactor(p.LeaseStart, key.Year, key.Month))
			plannedRent = plannedRent.Add(monthRent)
		}
	}

	var plannedExpenses decimal.Decimal
	if target != nil {
		plannedExpenses = expenseSum(target.Maintenance, target.Pool, target.Garden, target.HOA, target.ManagementFee)
	}

	net := plannedRent.Sub(plannedExpenses)

	return Projection{
		Year:               year,
		LeaseMonths:        len(leaseMonths),
		PlannedRent:        plannedRent,
		PlannedExpenses:    plannedExpenses,
		ProjectedNetIncome: net,
		ProjectedROI:       pctOf(net, CostBasis(p)),
	}
}

// leaseMonthsInYear restricts the lease term to one calendar year. An
// open-ended lease is treated as running through December of the projected
// year; without lease dates the whole year counts.
func leaseMonthsInYear(p *domain.Property, year int) []MonthKey {
	yearEnd := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	window := LeaseTermWindow(p, yearEnd)
	if window == nil {
		return monthSpan(MonthKey{Year: year, Month: 1}, MonthKey{Year: year, Month: 12})
	}

	months := make([]MonthKey, 0, 12)
	for _, key := range window {
		if key.Year == year {
			months = append(months, key)
		}
	}
	return months
}
