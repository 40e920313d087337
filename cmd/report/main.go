// Command report prints a portfolio metrics snapshot as JSON.
//
// It is surrounding-layer glue: it loads configuration, connects to the
// database, runs the dashboard service, and serializes the result. All
// financial figures come from the canonical metrics engine.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/K-WAM/luxor-portal-sub001/internal/adapter/repository/postgres"
	"github.com/K-WAM/luxor-portal-sub001/internal/config"
	"github.com/K-WAM/luxor-portal-sub001/internal/usecase/dashboard"
	"github.com/K-WAM/luxor-portal-sub001/internal/usecase/metrics"
)

func main() {
	ownerFlag := flag.String("owner", "", "owner UUID; empty means the whole portfolio")
	asOfFlag := flag.String("as-of", "", "reporting date (YYYY-MM-DD); empty means today")
	taxFlag := flag.Float64("annual-tax-estimate", 0, "estimated annual property tax for post-tax ROI when no tax is recorded")
	flag.Parse()

	// A missing .env file is fine; real deployments set the environment
	// directly.
	_ = godotenv.Load()

	log := logrus.New()

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	opts := metrics.Options{}
	if *asOfFlag != "" {
		asOf, err := time.Parse("2006-01-02", *asOfFlag)
		if err != nil {
			log.Fatalf("Invalid -as-of date %q: %v", *asOfFlag, err)
		}
		opts.AsOf = asOf
	}
	if *taxFlag > 0 {
		opts.EstimatedAnnualPropertyTax = decimal.NewFromFloat(*taxFlag)
	}

	db, err := postgres.NewDB(cfg.DBConn)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	propertyRepo := postgres.NewPropertyRepository(db)
	performanceRepo := postgres.NewPerformanceRepository(db)
	service := dashboard.NewPortfolioService(propertyRepo, performanceRepo, log)

	ctx := context.Background()

	var summary *dashboard.PortfolioSummary
	if *ownerFlag != "" {
		ownerID, err := uuid.Parse(*ownerFlag)
		if err != nil {
			log.Fatalf("Invalid -owner UUID %q: %v", *ownerFlag, err)
		}
		summary, err = service.GetOwnerSummary(ctx, ownerID, opts)
		if err != nil {
			log.Fatalf("Failed to compute owner summary: %v", err)
		}
	} else {
		summary, err = service.GetPortfolioSummary(ctx, opts)
		if err != nil {
			log.Fatalf("Failed to compute portfolio summary: %v", err)
		}
	}

	out, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		log.Fatalf("Failed to serialize summary: %v", err)
	}

	fmt.Fprintln(os.Stdout, string(out))
}
