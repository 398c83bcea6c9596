package raffle

import (
	"context"
	"fmt"

	"github.com/osse101/GuildRaffle_Go/internal/allocator"
	"github.com/osse101/GuildRaffle_Go/internal/domain"
	"github.com/osse101/GuildRaffle_Go/internal/ledger"
	"github.com/osse101/GuildRaffle_Go/internal/logger"
	"github.com/osse101/GuildRaffle_Go/internal/repository"
)

// Source provides the normalized request set for a run.
type Source interface {
	Requests(ctx context.Context) (domain.RequestSet, error)
}

// Service defines the interface for running one raffle batch
type Service interface {
	Run(ctx context.Context) (*domain.RunResult, error)
}

type service struct {
	categories []domain.Category
	source     Source
	ledgerRepo repository.Ledger
	allocRepo  repository.Allocation
	allocator  allocator.Service
	dryRun     bool
}

// NewService creates a new raffle service
func NewService(categories []domain.Category, source Source, ledgerRepo repository.Ledger, allocRepo repository.Allocation, alloc allocator.Service, dryRun bool) Service {
	return &service{
		categories: categories,
		source:     source,
		ledgerRepo: ledgerRepo,
		allocRepo:  allocRepo,
		allocator:  alloc,
		dryRun:     dryRun,
	}
}

// Run executes one full raffle batch: load ledger, fetch requests, allocate
// every category in declared order, then persist ledger and allocation. Any
// failure aborts the run before anything is written; there is no partial
// output.
func (s *service) Run(ctx context.Context) (*domain.RunResult, error) {
	runID := logger.GenerateRunID()
	ctx = logger.WithRunID(ctx, runID)
	log := logger.FromContext(ctx)
	log.Info(LogMsgRunStarted, "categories", len(s.categories))

	rows, err := s.ledgerRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToLoadLedger, err)
	}
	tracker, err := ledger.FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToLoadLedger, err)
	}

	requests, err := s.source.Requests(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToFetchRequests, err)
	}

	records, err := s.allocator.Distribute(ctx, s.categories, requests, tracker)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToDistribute, err)
	}

	result := &domain.RunResult{
		RunID:   runID,
		Records: records,
	}
	for _, r := range records {
		if r.Unclaimed() {
			result.Unclaimed++
		}
	}

	if s.dryRun {
		log.Info(LogMsgDryRun, "records", len(records), "unclaimed", result.Unclaimed)
		return result, nil
	}

	// Winnings first, then the published list, matching the historical run
	// order.
	if err := s.ledgerRepo.Replace(ctx, tracker.Rows()); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToSaveLedger, err)
	}
	if err := s.allocRepo.Save(ctx, records); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToSaveResults, err)
	}

	log.Info(LogMsgRunCompleted, "records", len(records), "unclaimed", result.Unclaimed)
	return result, nil
}
