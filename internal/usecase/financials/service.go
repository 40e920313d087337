package financials

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/K-WAM/luxor-portal-sub001/internal/domain"
	"github.com/K-WAM/luxor-portal-sub001/internal/usecase/metrics"
)

// YearSummary is one year's totals in the per-property history table.
type YearSummary struct {
	Year   int               `json:"year"`
	Totals metrics.YTDTotals `json:"totals"`
}

// FinancialDetail is the per-property financial view: the same engine output
// the dashboards consume, sliced three ways, plus a per-year history.
type FinancialDetail struct {
	PropertyID uuid.UUID       `json:"property_id"`
	YearToDate metrics.Metrics `json:"year_to_date"`

	// LeaseTerm is nil when the property has no lease start.
	LeaseTerm *metrics.Metrics `json:"lease_term,omitempty"`

	// AllTime is nil when there is no purchase/lease anchor or no rent
	// was ever recorded.
	AllTime *metrics.Metrics `json:"all_time,omitempty"`

	History []YearSummary `json:"history"`
}

// FinancialDetailService handles the per-property financial detail view
type FinancialDetailService struct {
	PropertyRepo    domain.PropertyRepository
	PerformanceRepo domain.PerformanceRepository
	log             *logrus.Logger
}

// NewFinancialDetailService creates a new FinancialDetailService instance
func NewFinancialDetailService(
	propertyRepo domain.PropertyRepository,
	performanceRepo domain.PerformanceRepository,
	log *logrus.Logger,
) *FinancialDetailService {
	return &FinancialDetailService{
		PropertyRepo:    propertyRepo,
		PerformanceRepo: performanceRepo,
		log:             log,
	}
}

// GetFinancialDetail loads one property and computes its year-to-date,
// lease-term, and all-time metrics plus a per-year history. All figures come
// from the one canonical engine.
func (s *FinancialDetailService) GetFinancialDetail(ctx context.Context, propertyID uuid.UUID, opts metrics.Options) (*FinancialDetail, error) {
	property, err := s.PropertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	rows, err := s.PerformanceRepo.ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load performance rows for property %s: %w", propertyID, err)
	}

	if opts.AsOf.IsZero() {
		opts.AsOf = time.Now()
	}

	detail := &FinancialDetail{
		PropertyID: propertyID,
		YearToDate: metrics.Compute(property, rows, opts),
		History:    yearHistory(rows, opts.AsOf),
	}

	if window := metrics.LeaseTermWindow(property, opts.AsOf); len(window) > 0 {
		leaseTerm := metrics.ComputeWindow(property, rows, window, opts)
		detail.LeaseTerm = &leaseTerm
	}
	if window := metrics.AllTimeWindow(property, rows, opts.AsOf); len(window) > 0 {
		allTime := metrics.ComputeWindow(property, rows, window, opts)
		detail.AllTime = &allTime
	}

	s.log.WithField("property_id", propertyID).Debug("financial detail computed")

	return detail, nil
}

// yearHistory aggregates rows per calendar year, oldest first.
func yearHistory(rows []domain.MonthlyPerformance, asOf time.Time) []YearSummary {
	seen := make(map[int]bool)
	years := make([]int, 0)
	for _, row := range rows {
		if !seen[row.Year] && row.Year <= asOf.Year() {
			seen[row.Year] = true
			years = append(years, row.Year)
		}
	}
	sort.Ints(years)

	history := make([]YearSummary, 0, len(years))
	for _, year := range years {
		history = append(history, YearSummary{
			Year:   year,
			Totals: metrics.Aggregate(rows, year, asOf, nil),
		})
	}
	return history
}
