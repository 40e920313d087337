package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/K-WAM/luxor-portal-sub001/internal/domain"
	"github.com/K-WAM/luxor-portal-sub001/internal/usecase/metrics"
)

// PropertySummary pairs one property with its canonical metrics.
type PropertySummary struct {
	PropertyID uuid.UUID       `json:"property_id"`
	Name       string          `json:"name"`
	Metrics    metrics.Metrics `json:"metrics"`
}

// PortfolioSummary is the dashboard aggregate over a set of properties.
// Per-property figures come straight from the metrics engine; this service
// only folds them, so the dashboard can never disagree with the detail view.
type PortfolioSummary struct {
	Properties        []PropertySummary      `json:"properties"`
	TotalCostBasis    decimal.Decimal        `json:"total_cost_basis"`
	TotalMarketValue  decimal.Decimal        `json:"total_market_value"`
	TotalNetIncome    decimal.Decimal        `json:"total_net_income"`
	TotalAppreciation decimal.Decimal        `json:"total_appreciation"`
	StatusCounts      map[metrics.Status]int `json:"status_counts"`
}

// PortfolioService handles dashboard-related operations for the admin view
// (all properties) and the owner view (one owner's properties).
type PortfolioService struct {
	PropertyRepo    domain.PropertyRepository
	PerformanceRepo domain.PerformanceRepository
	log             *logrus.Logger
}

// NewPortfolioService creates a new PortfolioService instance
func NewPortfolioService(
	propertyRepo domain.PropertyRepository,
	performanceRepo domain.PerformanceRepository,
	log *logrus.Logger,
) *PortfolioService {
	return &PortfolioService{
		PropertyRepo:    propertyRepo,
		PerformanceRepo: performanceRepo,
		log:             log,
	}
}

// GetPortfolioSummary computes the admin dashboard over every property.
func (s *PortfolioService) GetPortfolioSummary(ctx context.Context, opts metrics.Options) (*PortfolioSummary, error) {
	properties, err := s.PropertyRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	return s.summarize(ctx, properties, opts)
}

// GetOwnerSummary computes the owner dashboard over one owner's properties.
func (s *PortfolioService) GetOwnerSummary(ctx context.Context, ownerID uuid.UUID, opts metrics.Options) (*PortfolioSummary, error) {
	properties, err := s.PropertyRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties for owner %s: %w", ownerID, err)
	}
	return s.summarize(ctx, properties, opts)
}

// summarize runs one engine call per property concurrently and folds the
// results. Engine calls are independent pure functions, so the fan-out needs
// no locking beyond writing each result to its own slot.
func (s *PortfolioService) summarize(ctx context.Context, properties []*domain.Property, opts metrics.Options) (*PortfolioSummary, error) {
	// Pin the as-of date so every property is computed against the same
	// reporting instant.
	if opts.AsOf.IsZero() {
		opts.AsOf = time.Now()
	}

	results := make([]PropertySummary, len(properties))

	g, gctx := errgroup.WithContext(ctx)
	for i, p := range properties {
		i, p := i, p
		g.Go(func() error {
			rows, err := s.PerformanceRepo.ListByProperty(gctx, p.ID)
			if err != nil {
				return fmt.Errorf("failed to load performance rows for property %s: %w", p.ID, err)
			}
			results[i] = PropertySummary{
				PropertyID: p.ID,
				Name:       p.Name,
				Metrics:    metrics.Compute(p, rows, opts),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := &PortfolioSummary{
		Properties:   results,
		StatusCounts: make(map[metrics.Status]int),
	}
	for _, r := range results {
		summary.TotalCostBasis = summary.TotalCostBasis.Add(r.Metrics.CostBasis)
		summary.TotalMarketValue = summary.TotalMarketValue.Add(r.Metrics.CurrentMarketValue)
		summary.TotalNetIncome = summary.TotalNetIncome.Add(r.Metrics.Totals.NetIncome)
		summary.TotalAppreciation = summary.TotalAppreciation.Add(r.Metrics.AppreciationValue)
		summary.StatusCounts[r.Metrics.Status]++
	}

	s.log.WithFields(logrus.Fields{
		"properties": len(results),
		"as_of":      opts.AsOf.Format("2006-01-02"),
	}).Info("portfolio summary computed")

	return summary, nil
}
