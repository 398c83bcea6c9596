package config

import "time"

// Ledger backends
const (
	BackendCSV      = "csv"
	BackendPostgres = "postgres"
)

// Default file locations
const (
	DefaultCategoriesFile = "categories.yaml"
	DefaultWinningsFile   = "cumulative_winnings.csv"
	DefaultAllocationFile = "weekly_allocation.csv"
)

// Database pool defaults. A raffle run is a short batch job, it does not
// need a large pool.
const (
	DefaultDBMaxConns        = 4
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute
)

// Error Messages
const (
	ErrMsgSheetURLRequired       = "SHEET_URL environment variable must be set"
	ErrContextFailedToReadConfig = "failed to read category config"
	ErrContextInvalidCategory    = "invalid category config"
)
