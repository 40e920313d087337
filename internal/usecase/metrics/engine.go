// Package metrics is the canonical financial-metrics engine: the single
// source of truth for cost basis, market value, ROI, appreciation, and
// performance status. Every consumer (admin dashboard, owner dashboard,
// per-property detail, projections) imports this package; no formula is
// re-derived anywhere else, so the views can never disagree.
//
// The engine is pure and stateless. Each call derives everything from the
// property, rows, and options it is given, with no module-level state, so
// calls for different properties are safely parallelizable by the caller.
// Missing or zero business values are never errors: every division guards
// its denominator and substitutes zero, and every result field is finite.
package metrics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/K-WAM/luxor-portal-sub001/internal/domain"
)

// Options carries the per-call knobs of a metrics computation.
type Options struct {
	// AsOf is the reporting date. The zero value means "now"; fixing it
	// explicitly makes the computation fully deterministic.
	AsOf time.Time

	// EstimatedYTDPropertyTax and EstimatedAnnualPropertyTax substitute
	// for recorded property tax in the post-tax ROI variants, in that
	// order, when no actual tax appears in the period rows.
	EstimatedYTDPropertyTax    decimal.Decimal
	EstimatedAnnualPropertyTax decimal.Decimal

	// MonthsFilter, when non-empty, restricts aggregation to the listed
	// month numbers of the target year.
	MonthsFilter []int
}

// Metrics is the engine's sole output: one immutable, JSON-serializable
// result per call. Every numeric field is a pure function of the inputs.
type Metrics struct {
	Totals              YTDTotals       `json:"totals"`
	CostBasis           decimal.Decimal `json:"cost_basis"`
	CurrentMarketValue  decimal.Decimal `json:"current_market_value"`
	AppreciationValue   decimal.Decimal `json:"appreciation_value"`
	AppreciationPct     decimal.Decimal `json:"appreciation_pct"`
	ROIPreTax           decimal.Decimal `json:"roi_pre_tax"`
	ROIPostTax          decimal.Decimal `json:"roi_post_tax"`
	ROIWithAppreciation decimal.Decimal `json:"roi_with_appreciation"`
	ROIIfSoldToday      decimal.Decimal `json:"roi_if_sold_today"`
	MaintenancePct      decimal.Decimal `json:"maintenance_pct"`
	MonthsOwned         int             `json:"months_owned"`
	Status              Status          `json:"status"`
}

// Compute runs the canonical calculation for the as-of year: aggregate the
// year's rows up to the as-of month, apply the rent bonus, resolve cost
// basis and market value, derive the ROI variants, and classify the result.
func Compute(p *domain.Property, rows []domain.MonthlyPerformance, opts Options) Metrics {
	asOf := resolveAsOf(opts)
	year := asOf.Year()

	totals := Aggregate(rows, year, asOf, opts.MonthsFilter)
	totals = applyRentBonus(totals, p, year)

	return finish(p, rows, totals, asOf, opts)
}

// ComputeWindow runs the same calculation over an arbitrary month window,
// composing per-year aggregates for lease-term and all-time views. The rent
// bonus is applied exactly once for the whole period, anchored to the
// window's final year.
func ComputeWindow(p *domain.Property, rows []domain.MonthlyPerformance, window []MonthKey, opts Options) Metrics {
	asOf := resolveAsOf(opts)

	var totals YTDTotals
	periodYear := asOf.Year()

	for _, span := range splitByYear(window) {
		totals = addTotals(totals, Aggregate(rows, span.year, asOf, span.months))
		periodYear = span.year
	}
	totals = applyRentBonus(totals, p, periodYear)

	return finish(p, rows, totals, asOf, opts)
}

// finish derives the value-side figures from period totals and classifies
// the result.
func finish(p *domain.Property, rows []domain.MonthlyPerformance, totals YTDTotals, asOf time.Time, opts Options) Metrics {
	costBasis := CostBasis(p)
	marketValue := ResolveMarketValue(p, rows, costBasis)
	tax := taxFigure(totals, opts)
	roi := calculateROI(totals, costBasis, marketValue, tax, p.ClosingCosts)

	return Metrics{
		Totals:              totals,
		CostBasis:           costBasis,
		CurrentMarketValue:  marketValue,
		AppreciationValue:   roi.AppreciationValue,
		AppreciationPct:     roi.AppreciationPct,
		ROIPreTax:           roi.ROIPreTax,
		ROIPostTax:          roi.ROIPostTax,
		ROIWithAppreciation: roi.ROIWithAppreciation,
		ROIIfSoldToday:      roi.ROIIfSoldToday,
		MaintenancePct:      roi.MaintenancePct,
		MonthsOwned:         MonthsOwned(p.PurchaseDate, asOf),
		Status:              Classify(roi.ROIPostTax, roi.MaintenancePct),
	}
}

func resolveAsOf(opts Options) time.Time {
	if opts.AsOf.IsZero() {
		return time.Now()
	}
	return opts.AsOf
}

// yearSpan is one calendar year's slice of a month window.
type yearSpan struct {
	year   int
	months []int
}

// splitByYear groups a window's months by year, preserving chronological
// order for windows produced by this package.
func splitByYear(window []MonthKey) []yearSpan {
	var spans []yearSpan
	for _, key := range window {
		if len(spans) == 0 || spans[len(spans)-1].year != key.Year {
			spans = append(spans, yearSpan{year: key.Year})
		}
		last := &spans[len(spans)-1]
		last.months = append(last.months, key.Month)
	}
	return spans
}
