package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GuildRaffle_Go/internal/domain"
	"github.com/osse101/GuildRaffle_Go/internal/logger"
	"github.com/osse101/GuildRaffle_Go/internal/repository"
)

// LedgerRepository implements the winnings ledger on PostgreSQL, for guilds
// that share one ledger between multiple officers instead of passing a CSV
// file around.
type LedgerRepository struct {
	pool *pgxpool.Pool
}

// NewLedgerRepository creates a new LedgerRepository
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

var _ repository.Ledger = (*LedgerRepository)(nil)

// EnsureSchema creates the winnings table when it does not exist yet.
func (r *LedgerRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, createWinningsTableSQL); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToEnsureSchema, err)
	}
	return nil
}

// Load reads every ledger row.
func (r *LedgerRepository) Load(ctx context.Context) ([]domain.WinningRow, error) {
	rows, err := r.pool.Query(ctx, selectWinningsSQL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToLoadLedger, err)
	}
	defer rows.Close()

	var result []domain.WinningRow
	for rows.Next() {
		var row domain.WinningRow
		if err := rows.Scan(&row.Bucket, &row.Member, &row.Total); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextFailedToLoadLedger, err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToLoadLedger, err)
	}
	return result, nil
}

// Replace swaps the stored ledger for the given rows in one transaction.
func (r *LedgerRepository) Replace(ctx context.Context, rows []domain.WinningRow) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
		}
	}()

	if _, err := tx.Exec(ctx, truncateWinningsSQL); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToSaveLedger, err)
	}

	source := make([][]interface{}, 0, len(rows))
	for _, row := range rows {
		source = append(source, []interface{}{row.Bucket, row.Member, row.Total})
	}
	if _, err := tx.CopyFrom(ctx,
		pgx.Identifier{"cumulative_winnings"},
		[]string{"category", "member", "total_winnings"},
		pgx.CopyFromRows(source),
	); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToSaveLedger, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToCommitTx, err)
	}

	logger.FromContext(ctx).Info(LogMsgLedgerReplaced, "rows", len(rows))
	return nil
}
