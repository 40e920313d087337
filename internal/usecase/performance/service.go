package performance

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/K-WAM/luxor-portal-sub001/internal/domain"
)

// RecordMonthInput represents the input for recording one month of
// performance figures. Zero values are legitimate figures, not absences;
// callers omit a market value by leaving MarketValue nil.
type RecordMonthInput struct {
	PropertyID    uuid.UUID
	Year          int
	Month         int
	RentIncome    decimal.Decimal
	Maintenance   decimal.Decimal
	Pool          decimal.Decimal
	Garden        decimal.Decimal
	HOA           decimal.Decimal
	ManagementFee decimal.Decimal
	PropertyTax   decimal.Decimal
	MarketValue   *decimal.Decimal
}

// PerformanceService handles monthly performance recording operations
type PerformanceService struct {
	PropertyRepo    domain.PropertyRepository
	PerformanceRepo domain.PerformanceRepository
	log             *logrus.Logger
}

// NewPerformanceService creates a new PerformanceService instance
func NewPerformanceService(
	propertyRepo domain.PropertyRepository,
	performanceRepo domain.PerformanceRepository,
	log *logrus.Logger,
) *PerformanceService {
	return &PerformanceService{
		PropertyRepo:    propertyRepo,
		PerformanceRepo: performanceRepo,
		log:             log,
	}
}

// RecordMonth validates and upserts one month of performance figures.
// Recording the same (property, year, month) twice replaces the earlier row,
// keeping the uniqueness contract the metrics engine's input relies on.
func (s *PerformanceService) RecordMonth(ctx context.Context, input RecordMonthInput) (*domain.MonthlyPerformance, error) {
	// Verify the property exists before writing rows against it.
	if _, err := s.PropertyRepo.GetByID(ctx, input.PropertyID); err != nil {
		return nil, err
	}

	row := &domain.MonthlyPerformance{
		ID:            uuid.New(),
		PropertyID:    input.PropertyID,
		Year:          input.Year,
		Month:         input.Month,
		RentIncome:    input.RentIncome,
		Maintenance:   input.Maintenance,
		Pool:          input.Pool,
		Garden:        input.Garden,
		HOA:           input.HOA,
		ManagementFee: input.ManagementFee,
		PropertyTax:   input.PropertyTax,
		MarketValue:   input.MarketValue,
	}

	if err := row.Validate(); err != nil {
		return nil, err
	}

	if err := s.PerformanceRepo.Upsert(ctx, row); err != nil {
		return nil, fmt.Errorf("failed to save performance row: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"property_id": input.PropertyID,
		"year":        input.Year,
		"month":       input.Month,
	}).Info("monthly performance recorded")

	return row, nil
}
