package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/osse101/GuildRaffle_Go/internal/domain"
	"github.com/osse101/GuildRaffle_Go/internal/logger"
	"github.com/osse101/GuildRaffle_Go/internal/repository"
)

// LedgerRepository persists the cumulative winnings ledger as a flat CSV
// file. A missing file is an empty ledger, not an error; Replace overwrites
// the whole file.
type LedgerRepository struct {
	path string
}

// NewLedgerRepository creates a CSV-backed ledger store.
func NewLedgerRepository(path string) repository.Ledger {
	return &LedgerRepository{path: path}
}

// Load reads every ledger row from the winnings file.
func (r *LedgerRepository) Load(ctx context.Context) ([]domain.WinningRow, error) {
	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.FromContext(ctx).Warn(LogMsgWinningsFileMissing, "path", r.path)
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToReadLedger, err)
	}
	defer f.Close()

	raw, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToReadLedger, err)
	}
	if len(raw) == 0 {
		return nil, nil
	}
	if !equalHeader(raw[0], winningsHeader) {
		return nil, fmt.Errorf("%s: %s: %v", ErrContextFailedToReadLedger, ErrMsgUnexpectedHeader, raw[0])
	}

	rows := make([]domain.WinningRow, 0, len(raw)-1)
	for i, record := range raw[1:] {
		total, err := strconv.Atoi(record[2])
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", domain.ErrMalformedLedgerRow, i+2, err)
		}
		rows = append(rows, domain.WinningRow{
			Bucket: record[0],
			Member: record[1],
			Total:  total,
		})
	}
	return rows, nil
}

// Replace overwrites the winnings file with the given rows.
func (r *LedgerRepository) Replace(ctx context.Context, rows []domain.WinningRow) error {
	f, err := os.Create(r.path)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToWriteLedger, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(winningsHeader); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToWriteLedger, err)
	}
	for _, row := range rows {
		record := []string{row.Bucket, row.Member, strconv.Itoa(row.Total)}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("%s: %w", ErrContextFailedToWriteLedger, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToWriteLedger, err)
	}

	logger.FromContext(ctx).Info(LogMsgLedgerSaved, "path", r.path, "rows", len(rows))
	return nil
}

func equalHeader(got, expected []string) bool {
	if len(got) != len(expected) {
		return false
	}
	for i := range expected {
		if got[i] != expected[i] {
			return false
		}
	}
	return true
}
