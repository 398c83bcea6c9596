package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/osse101/GuildRaffle_Go/internal/allocator"
	"github.com/osse101/GuildRaffle_Go/internal/config"
	"github.com/osse101/GuildRaffle_Go/internal/database"
	"github.com/osse101/GuildRaffle_Go/internal/database/csvfile"
	"github.com/osse101/GuildRaffle_Go/internal/database/postgres"
	"github.com/osse101/GuildRaffle_Go/internal/logger"
	"github.com/osse101/GuildRaffle_Go/internal/raffle"
	"github.com/osse101/GuildRaffle_Go/internal/repository"
	"github.com/osse101/GuildRaffle_Go/internal/sheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	initLogger(cfg)

	if err := run(context.Background(), cfg); err != nil {
		logger.Error("Raffle run failed", "error", err)
		os.Exit(1)
	}
}

// run wires the raffle service together and executes one batch. Kept apart
// from main so deferred cleanup still runs before the process exits.
func run(ctx context.Context, cfg *config.Config) error {
	categories, err := config.LoadCategories(cfg.CategoriesFile)
	if err != nil {
		return err
	}
	logger.Info("Loaded categories", "file", cfg.CategoriesFile, "count", len(categories))

	exportURL, err := sheet.ExportURL(cfg.SheetURL)
	if err != nil {
		return err
	}
	source := sheet.NewSource(sheet.NewClient(exportURL, nil), sheet.NewParser(categories))

	// A seeded source replays the exact same draws, for audits and dry runs.
	var rng allocator.Rand
	if cfg.HasSeed {
		rng = rand.New(rand.NewSource(cfg.Seed)) //nolint:gosec // Raffle draw randomness, not security critical
		logger.Info("Using fixed random seed", "seed", cfg.Seed)
	}

	ledgerRepo, cleanup, err := newLedgerRepository(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	allocRepo := csvfile.NewAllocationRepository(cfg.AllocationFile)

	svc := raffle.NewService(categories, source, ledgerRepo, allocRepo, allocator.NewService(rng), cfg.DryRun)

	result, err := svc.Run(ctx)
	if err != nil {
		return err
	}

	logger.Info("Raffle run finished",
		"run_id", result.RunID,
		"records", len(result.Records),
		"unclaimed", result.Unclaimed,
		"dry_run", cfg.DryRun,
	)
	return nil
}

// newLedgerRepository picks the winnings ledger backend. The returned cleanup
// closes the database pool for the postgres backend and is a no-op for CSV.
func newLedgerRepository(ctx context.Context, cfg *config.Config) (repository.Ledger, func(), error) {
	switch cfg.LedgerBackend {
	case config.BackendPostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), int32(cfg.DBMaxConns), cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		repo := postgres.NewLedgerRepository(pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return repo, pool.Close, nil
	default:
		return csvfile.NewLedgerRepository(cfg.WinningsFile), func() {}, nil
	}
}
