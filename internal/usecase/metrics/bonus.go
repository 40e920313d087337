package metrics

import (
	"github.com/shopspring/decimal"

	"github.com/K-WAM/luxor-portal-sub001/internal/domain"
)

// applyRentBonus injects the "last month's rent paid upfront" cash flow into
// the period totals. That payment happens at lease signing and never appears
// as a monthly row, so the reference model adds one extra month of rent to
// the metrics year.
//
// The bonus is added to both rent income and net income exactly once per
// calculation. The function is pure: identical inputs yield identical,
// non-doubled output.
func applyRentBonus(totals YTDTotals, p *domain.Property, periodYear int) YTDTotals {
	if !p.LastMonthRentCollected {
		return totals
	}
	if !bonusAppliesInYear(p, periodYear) {
		return totals
	}

	bonus := rentBonusAmount(p)
	if !bonus.IsPositive() {
		return totals
	}

	totals.RentIncome = totals.RentIncome.Add(bonus)
	totals.NetIncome = totals.NetIncome.Add(bonus)
	return totals
}

// bonusAppliesInYear decides whether periodYear is the metrics year the
// bonus belongs to. The lease-start year anchors it when known, then the
// lease-end year; with no lease dates at all the bonus always applies.
func bonusAppliesInYear(p *domain.Property, periodYear int) bool {
	if p.LeaseStart != nil {
		return periodYear >= p.LeaseStart.Year()
	}
	if p.LeaseEnd != nil {
		return periodYear >= p.LeaseEnd.Year()
	}
	return true
}

// rentBonusAmount picks the bonus figure: the target monthly rent when
// positive, else the deposit when positive, else zero (no bonus).
func rentBonusAmount(p *domain.Property) decimal.Decimal {
	if p.TargetMonthlyRent.IsPositive() {
		return p.TargetMonthlyRent
	}
	if p.Deposit.IsPositive() {
		return p.Deposit
	}
	return decimal.Zero
}
