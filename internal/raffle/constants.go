package raffle

// Error Messages
const (
	ErrContextFailedToLoadLedger    = "failed to load ledger"
	ErrContextFailedToFetchRequests = "failed to fetch requests"
	ErrContextFailedToDistribute    = "failed to distribute items"
	ErrContextFailedToSaveLedger    = "failed to persist ledger"
	ErrContextFailedToSaveResults   = "failed to persist allocation"
)

// Log Messages
const (
	LogMsgRunStarted   = "Raffle run started"
	LogMsgRunCompleted = "Raffle run completed"
	LogMsgDryRun       = "Dry run, skipping writes"
)
