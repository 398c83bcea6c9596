package csvfile

// Winnings file column headers, kept compatible with the historical
// cumulative_winnings.csv files guilds already have on disk.
var winningsHeader = []string{"category", "member", "total_winnings"}

// Allocation file column headers, matching the published weekly sheet.
var allocationHeader = []string{"Item", "Winner"}

// Error Messages
const (
	ErrContextFailedToReadLedger   = "failed to read winnings file"
	ErrContextFailedToWriteLedger  = "failed to write winnings file"
	ErrContextFailedToWriteResults = "failed to write allocation file"
	ErrMsgUnexpectedHeader         = "unexpected winnings file header"
)

// Log Messages
const (
	LogMsgWinningsFileMissing = "Winnings file not found, starting with empty ledger"
	LogMsgLedgerSaved         = "Winnings file updated"
	LogMsgAllocationSaved     = "Allocation results written"
)
