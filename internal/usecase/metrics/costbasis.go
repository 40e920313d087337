package metrics

import (
	"github.com/shopspring/decimal"

	"github.com/K-WAM/luxor-portal-sub001/internal/domain"
)

// CostBasis computes the acquisition cost basis: home cost + repairs +
// closing costs. The stored TotalCost field is never consulted: it omits
// closing costs and exists only for legacy display.
func CostBasis(p *domain.Property) decimal.Decimal {
	return p.HomeCost.Add(p.HomeRepairCost).Add(p.ClosingCosts)
}

// ResolveMarketValue resolves the property's current value through the
// fallback chain, first match wins:
//
//  1. the most recent positive market-value snapshot among the monthly rows
//     (ties broken by year, then month, descending)
//  2. the property's stored current-market-estimate, if positive
//  3. the cost basis, so appreciation is exactly zero when no value data
//     exists rather than undefined
func ResolveMarketValue(p *domain.Property, rows []domain.MonthlyPerformance, costBasis decimal.Decimal) decimal.Decimal {
	if snapshot, ok := latestSnapshot(rows); ok {
		return snapshot
	}
	if p.CurrentMarketEstimate.IsPositive() {
		return p.CurrentMarketEstimate
	}
	return costBasis
}

// latestSnapshot finds the market-value snapshot with the most recent
// (year, month) key, considering only non-null positive values.
func latestSnapshot(rows []domain.MonthlyPerformance) (decimal.Decimal, bool) {
	var (
		best  MonthKey
		value decimal.Decimal
		found bool
	)
	for _, row := range rows {
		if row.MarketValue == nil || !row.MarketValue.IsPositive() {
			continue
		}
		key := MonthKey{Year: row.Year, Month: row.Month}
		if !found || best.Before(key) {
			best = key
			value = *row.MarketValue
			found = true
		}
	}
	return value, found
}
