package projection

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/K-WAM/luxor-portal-sub001/internal/domain"
	"github.com/K-WAM/luxor-portal-sub001/internal/usecase/metrics"
)

// PlanActual is the plan-vs-actual comparison for one property and year.
type PlanActual struct {
	PropertyID uuid.UUID          `json:"property_id"`
	Year       int                `json:"year"`
	Projection metrics.Projection `json:"projection"`
	Actual     metrics.Metrics    `json:"actual"`

	// Variances are planned minus actual: positive means behind plan.
	RentVariance      decimal.Decimal `json:"rent_variance"`
	NetIncomeVariance decimal.Decimal `json:"net_income_variance"`
}

// ProjectionService handles plan-vs-actual comparison operations
type ProjectionService struct {
	PropertyRepo    domain.PropertyRepository
	PerformanceRepo domain.PerformanceRepository
	TargetRepo      domain.TargetRepository
	log             *logrus.Logger
}

// NewProjectionService creates a new ProjectionService instance
func NewProjectionService(
	propertyRepo domain.PropertyRepository,
	performanceRepo domain.PerformanceRepository,
	targetRepo domain.TargetRepository,
	log *logrus.Logger,
) *ProjectionService {
	return &ProjectionService{
		PropertyRepo:    propertyRepo,
		PerformanceRepo: performanceRepo,
		TargetRepo:      targetRepo,
		log:             log,
	}
}

// CompareToTarget computes the projection for a property's year alongside
// the actual metrics of that year. A missing annual target is not an error;
// the projection then falls back to the property's target monthly rent.
func (s *ProjectionService) CompareToTarget(ctx context.Context, propertyID uuid.UUID, year int, opts metrics.Options) (*PlanActual, error) {
	property, err := s.PropertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	rows, err := s.PerformanceRepo.ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load performance rows for property %s: %w", propertyID, err)
	}

	target, err := s.TargetRepo.Get(ctx, propertyID, year)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("failed to load annual target for property %s year %d: %w", propertyID, year, err)
		}
		// No target on file: project from the property record alone.
		s.log.WithFields(logrus.Fields{
			"property_id": propertyID,
			"year":        year,
		}).Debug("no annual target found, projecting from target rent")
		target = nil
	}

	if opts.AsOf.IsZero() {
		opts.AsOf = time.Now()
	}

	// The actual side covers exactly the requested year; the aggregator's
	// as-of cutoff keeps a current-year window partial.
	window := yearWindow(year)
	actual := metrics.ComputeWindow(property, rows, window, opts)
	proj := metrics.Project(property, target, year)

	return &PlanActual{
		PropertyID:        propertyID,
		Year:              year,
		Projection:        proj,
		Actual:            actual,
		RentVariance:      proj.PlannedRent.Sub(actual.Totals.RentIncome),
		NetIncomeVariance: proj.ProjectedNetIncome.Sub(actual.Totals.NetIncome),
	}, nil
}

// yearWindow is the full 12-month window of one calendar year.
func yearWindow(year int) []metrics.MonthKey {
	window := make([]metrics.MonthKey, 0, 12)
	for m := 1; m <= 12; m++ {
		window = append(window, metrics.MonthKey{Year: year, Month: m})
	}
	return window
}
