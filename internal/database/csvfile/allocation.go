package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/osse101/GuildRaffle_Go/internal/domain"
	"github.com/osse101/GuildRaffle_Go/internal/logger"
	"github.com/osse101/GuildRaffle_Go/internal/repository"
)

// AllocationRepository publishes the run's allocation list as a CSV file,
// one row per item in output order.
type AllocationRepository struct {
	path string
}

// NewAllocationRepository creates a CSV-backed allocation writer.
func NewAllocationRepository(path string) repository.Allocation {
	return &AllocationRepository{path: path}
}

// Save overwrites the allocation file with the given records.
func (r *AllocationRepository) Save(ctx context.Context, records []domain.AllocationRecord) error {
	f, err := os.Create(r.path)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToWriteResults, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(allocationHeader); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToWriteResults, err)
	}
	for _, record := range records {
		if err := w.Write([]string{record.Item, record.Winner}); err != nil {
			return fmt.Errorf("%s: %w", ErrContextFailedToWriteResults, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToWriteResults, err)
	}

	logger.FromContext(ctx).Info(LogMsgAllocationSaved, "path", r.path, "records", len(records))
	return nil
}
