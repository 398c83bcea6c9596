package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Ledger errors
	ErrMsgMalformedLedgerRow = "malformed ledger row"

	// Sheet errors
	ErrMsgInvalidSheetURL    = "invalid sheet url"
	ErrMsgMissingColumn      = "missing required column"
	ErrMsgMalformedResponse  = "malformed response row"
	ErrMsgEmptyResponseSheet = "response sheet has no header row"

	// Configuration errors
	ErrMsgInvalidCategoryConfig = "invalid category configuration"
	ErrMsgUnknownLedgerBackend  = "unknown ledger backend"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Ledger errors
	ErrMalformedLedgerRow = errors.New(ErrMsgMalformedLedgerRow)

	// Sheet errors
	ErrInvalidSheetURL    = errors.New(ErrMsgInvalidSheetURL)
	ErrMissingColumn      = errors.New(ErrMsgMissingColumn)
	ErrMalformedResponse  = errors.New(ErrMsgMalformedResponse)
	ErrEmptyResponseSheet = errors.New(ErrMsgEmptyResponseSheet)

	// Configuration errors
	ErrInvalidCategoryConfig = errors.New(ErrMsgInvalidCategoryConfig)
	ErrUnknownLedgerBackend  = errors.New(ErrMsgUnknownLedgerBackend)
)
