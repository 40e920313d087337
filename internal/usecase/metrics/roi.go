package metrics

import (
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// roiFigures derives the four ROI variants, appreciation, and the
// maintenance ratio for a period. Every division guards its denominator and
// substitutes zero, so results are always finite.
type roiFigures struct {
	AppreciationValue   decimal.Decimal
	AppreciationPct     decimal.Decimal
	ROIPreTax           decimal.Decimal
	ROIPostTax          decimal.Decimal
	ROIWithAppreciation decimal.Decimal
	ROIIfSoldToday      decimal.Decimal
	MaintenancePct      decimal.Decimal
}

func calculateROI(totals YTDTotals, costBasis, marketValue, taxFigure, closingCosts decimal.Decimal) roiFigures {
	appreciation := marketValue.Sub(costBasis)

	return roiFigures{
		AppreciationValue:   appreciation,
		AppreciationPct:     pctOf(appreciation, costBasis),
		ROIPreTax:           pctOf(totals.NetIncome, costBasis),
		ROIPostTax:          pctOf(totals.NetIncome.Sub(taxFigure), costBasis),
		ROIWithAppreciation: pctOf(totals.NetIncome.Add(appreciation), costBasis),
		ROIIfSoldToday:      pctOf(totals.NetIncome.Sub(taxFigure).Sub(closingCosts).Add(appreciation), costBasis),
		MaintenancePct:      pctOf(totals.Maintenance, totals.RentIncome),
	}
}

// taxFigure picks the property-tax number used by the post-tax variants:
// actual period tax when positive, else the caller's YTD estimate, else the
// caller's annual estimate. The annual estimate is used as-is, not pro-rated
// to the elapsed months (see DESIGN.md, open questions).
func taxFigure(totals YTDTotals, opts Options) decimal.Decimal {
	if totals.PropertyTax.IsPositive() {
		return totals.PropertyTax
	}
	if opts.EstimatedYTDPropertyTax.IsPositive() {
		return opts.EstimatedYTDPropertyTax
	}
	if opts.EstimatedAnnualPropertyTax.IsPositive() {
		return opts.EstimatedAnnualPropertyTax
	}
	return decimal.Zero
}

// pctOf returns numerator/denominator as a percentage, or zero when the
// denominator is zero or negative. Never divides by zero, never panics.
func pctOf(numerator, denominator decimal.Decimal) decimal.Decimal {
	if denominator.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return numerator.Div(denominator).Mul(hundred)
}

// MonthsOwned returns whole months between the purchase date and the
// reference date, floored at 1. A missing purchase date also yields 1, so
// the result is always safe as a divisor.
func MonthsOwned(purchaseDate *time.Time, asOf time.Time) int {
	if purchaseDate == nil {
		return 1
	}
	months := (asOf.Year()-purchaseDate.Year())*12 + int(asOf.Month()) - int(purchaseDate.Month())
	if months < 1 {
		return 1
	}
	return months
}
