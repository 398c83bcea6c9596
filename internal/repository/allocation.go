package repository

import (
	"context"

	"github.com/osse101/GuildRaffle_Go/internal/domain"
)

// Allocation defines the interface for publishing one run's allocation list.
type Allocation interface {
	Save(ctx context.Context, records []domain.AllocationRecord) error
}
