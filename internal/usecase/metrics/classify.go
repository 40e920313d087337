package metrics

import "github.com/shopspring/decimal"

// Status buckets a metrics result into a three-level performance rating.
type Status string

const (
	StatusGreen  Status = "green"
	StatusYellow Status = "yellow"
	StatusRed    Status = "red"
)

var (
	greenROIFloor   = decimal.NewFromInt(5)
	greenMaintCeil  = decimal.NewFromInt(5)
	yellowROIFloor  = decimal.NewFromInt(3)
	yellowMaintCeil = decimal.NewFromInt(7)
)

// Classify rates a period: green for post-tax ROI >= 5% with maintenance
// under 5% of rent, yellow for ROI >= 3% with maintenance under 7%, red
// otherwise. Pure classification, no state carried between calls.
func Classify(roiPostTax, maintenancePct decimal.Decimal) Status {
	if roiPostTax.GreaterThanOrEqual(greenROIFloor) && maintenancePct.LessThan(greenMaintCeil) {
		return StatusGreen
	}
	if roiPostTax.GreaterThanOrEqual(yellowROIFloor) && maintenancePct.LessThan(yellowMaintCeil) {
		return StatusYellow
	}
	return StatusRed
}
