package repository

import (
	"context"

	"github.com/osse101/GuildRaffle_Go/internal/domain"
)

// Ledger defines the interface for cumulative-winnings persistence. Replace
// overwrites the stored state wholesale; there is no append path, by design.
type Ledger interface {
	Load(ctx context.Context) ([]domain.WinningRow, error)
	Replace(ctx context.Context, rows []domain.WinningRow) error
}
