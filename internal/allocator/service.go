package allocator

import (
	"context"
	"errors"

	"github.com/osse101/GuildRaffle_Go/internal/domain"
	"github.com/osse101/GuildRaffle_Go/internal/logger"
)

// Ledger is the cumulative-winnings view the allocator draws against. The
// allocator mutates it in place as items are awarded.
type Ledger interface {
	Count(bucket, member string) int
	Record(bucket, member string)
	Average(bucket string) float64
}

// Rand is the randomness source for weighted draws. Production code uses the
// shared math/rand helper; tests inject a seeded source for reproducibility.
type Rand interface {
	Float64() float64
}

// Service defines the interface for prize distribution
type Service interface {
	Distribute(ctx context.Context, categories []domain.Category, requests domain.RequestSet, ledger Ledger) ([]domain.AllocationRecord, error)
}

type service struct {
	rng Rand
}

// NewService creates a new allocator service. A nil rng falls back to the
// shared math/rand source.
func NewService(rng Rand) Service {
	if rng == nil {
		rng = defaultRand{}
	}
	return &service{rng: rng}
}

// Distribute allocates every configured capacity unit, category by category
// in declared order, and returns one record per item: a winner or the
// unclaimed sentinel. The ledger is updated as wins land.
func (s *service) Distribute(ctx context.Context, categories []domain.Category, requests domain.RequestSet, ledger Ledger) ([]domain.AllocationRecord, error) {
	if ledger == nil {
		return nil, errors.New(ErrMsgNilLedger)
	}
	log := logger.FromContext(ctx)

	var records []domain.AllocationRecord
	for _, category := range categories {
		if category.IsFlat() {
			records = append(records, s.distributeFlat(ctx, category.Name, category.Limit, requests, ledger)...)
			continue
		}
		for _, sub := range category.Subcategories {
			records = append(records, s.distributeSubcategory(ctx, category.Name, sub, requests, ledger)...)
		}
	}

	log.Debug(LogMsgDistributionComplete, "records", len(records))
	return records, nil
}

// unclaimedRecords marks every remaining item as up for grabs outside the
// raffle.
func unclaimedRecords(items []string) []domain.AllocationRecord {
	records := make([]domain.AllocationRecord, 0, len(items))
	for _, item := range items {
		records = append(records, domain.AllocationRecord{Item: item, Winner: domain.WinnerUnclaimed})
	}
	return records
}
