package config

import (
	"errors"
	"fmt"

	"github.com/osse101/GuildRaffle_Go/internal/domain"
)

// Validate checks that the loaded configuration is coherent enough to run
// with. Category files are validated separately when they are loaded.
func (c *Config) Validate() error {
	if c.SheetURL == "" {
		return errors.New(ErrMsgSheetURLRequired)
	}

	switch c.LedgerBackend {
	case BackendCSV:
		if c.WinningsFile == "" {
			return fmt.Errorf("WINNINGS_FILE must not be empty with the %s backend", BackendCSV)
		}
	case BackendPostgres:
		if c.DBHost == "" || c.DBName == "" {
			return fmt.Errorf("DB_HOST and DB_NAME must be set with the %s backend", BackendPostgres)
		}
	default:
		return fmt.Errorf("%w: %s", domain.ErrUnknownLedgerBackend, c.LedgerBackend)
	}

	if c.AllocationFile == "" {
		return errors.New("ALLOCATION_FILE must not be empty")
	}

	return nil
}
