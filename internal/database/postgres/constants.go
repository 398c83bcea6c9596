package postgres

// SQL statements for the cumulative winnings ledger.
const (
	createWinningsTableSQL = `
CREATE TABLE IF NOT EXISTS cumulative_winnings (
    category VARCHAR(100) NOT NULL,
    member VARCHAR(100) NOT NULL,
    total_winnings INTEGER NOT NULL CHECK (total_winnings >= 0),
    PRIMARY KEY (category, member)
);`

	selectWinningsSQL = `
SELECT category, member, total_winnings
FROM cumulative_winnings
ORDER BY category, member;`

	truncateWinningsSQL = `DELETE FROM cumulative_winnings;`
)

// Error Messages
const (
	ErrContextFailedToEnsureSchema = "failed to ensure winnings schema"
	ErrContextFailedToLoadLedger   = "failed to load winnings ledger"
	ErrContextFailedToSaveLedger   = "failed to save winnings ledger"
	ErrContextFailedToBeginTx      = "failed to begin transaction"
	ErrContextFailedToCommitTx     = "failed to commit transaction"
)

// Log Messages
const (
	LogMsgLedgerReplaced = "Winnings ledger replaced"
)
