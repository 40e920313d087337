package metrics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/K-WAM/luxor-portal-sub001/internal/domain"
)

// MonthKey identifies one calendar month of one year.
type MonthKey struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// Before reports whether k is strictly earlier than other.
func (k MonthKey) Before(other MonthKey) bool {
	if k.Year != other.Year {
		return k.Year < other.Year
	}
	return k.Month < other.Month
}

// YearToDateWindow returns months 1..asOf-month of the as-of year.
func YearToDateWindow(asOf time.Time) []MonthKey {
	window := make([]MonthKey, 0, int(asOf.Month()))
	for m := 1; m <= int(asOf.Month()); m++ {
		window = append(window, MonthKey{Year: asOf.Year(), Month: m})
	}
	return window
}

// LeaseTermWindow returns every (year, month) pair from lease start to lease
// end, inclusive, spanning multiple years when the lease crosses a year
// boundary. An open-ended lease runs through the as-of month. Returns nil
// when the property has no lease start.
func LeaseTermWindow(p *domain.Property, asOf time.Time) []MonthKey {
	if p.LeaseStart == nil {
		return nil
	}

	start := MonthKey{Year: p.LeaseStart.Year(), Month: int(p.LeaseStart.Month())}
	end := MonthKey{Year: asOf.Year(), Month: int(asOf.Month())}
	if p.LeaseEnd != nil {
		end = MonthKey{Year: p.LeaseEnd.Year(), Month: int(p.LeaseEnd.Month())}
	}

	return monthSpan(start, end)
}

// AllTimeWindow returns the span from the purchase date (or lease start when
// no purchase date is recorded) through the most recent month with recorded
// rent income. Trailing months without rent are dropped rather than shown as
// unpaid. Returns nil when there is no anchor date or no rent was ever
// recorded.
func AllTimeWindow(p *domain.Property, rows []domain.MonthlyPerformance, asOf time.Time) []MonthKey {
	var start MonthKey
	switch {
	case p.PurchaseDate != nil:
		start = MonthKey{Year: p.PurchaseDate.Year(), Month: int(p.PurchaseDate.Month())}
	case p.LeaseStart != nil:
		start = MonthKey{Year: p.LeaseStart.Year(), Month: int(p.LeaseStart.Month())}
	default:
		return nil
	}

	end, found := lastRentMonth(rows)
	if !found {
		return nil
	}

	// Never look past the reporting date.
	cutoff := MonthKey{Year: asOf.Year(), Month: int(asOf.Month())}
	if cutoff.Before(end) {
		end = cutoff
	}

	return monthSpan(start, end)
}

// lastRentMonth finds the most recent (year, month) with positive rent income.
func lastRentMonth(rows []domain.MonthlyPerformance) (MonthKey, bool) {
	var best MonthKey
	found := false
	for _, row := range rows {
		if !row.RentIncome.IsPositive() {
			continue
		}
		key := MonthKey{Year: row.Year, Month: row.Month}
		if !found || best.Before(key) {
			best = key
			found = true
		}
	}
	return best, found
}

// monthSpan enumerates every month from `from` to `to`, inclusive.
// Returns an empty slice when `from` is after `to`.
func monthSpan(from, to MonthKey) []MonthKey {
	window := make([]MonthKey, 0, 12)
	for k := from; !to.Before(k); {
		window = append(window, k)
		k.Month++
		if k.Month > 12 {
			k.Month = 1
			k.Year++
		}
	}
	return window
}

// ProrationFactor returns the fraction of a month's planned rent that a
// mid-month lease start earns: (days_in_month - start_day + 1) / days_in_month.
// Day-1 starts and months other than the lease-start month are not prorated.
func ProrationFactor(leaseStart *time.Time, year, month int) decimal.Decimal {
	if leaseStart == nil {
		return decimal.NewFromInt(1)
	}
	if leaseStart.Year() != year || int(leaseStart.Month()) != month {
		return decimal.NewFromInt(1)
	}
	day := leaseStart.Day()
	if day <= 1 {
		return decimal.NewFromInt(1)
	}

	days := daysIn(year, month)
	return decimal.NewFromInt(int64(days - day + 1)).Div(decimal.NewFromInt(int64(days)))
}

// daysIn returns the number of days in a calendar month.
func daysIn(year, month int) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
