package allocator

// BelowAverageBoost multiplies the draw weight of any member whose
// cumulative wins sit below the bucket's frozen average. Frequent winners
// are never excluded outright; their weight only decays logarithmically.
const BelowAverageBoost = 1.5

// ItemLabelFormat renders one physical item label from a pool name and a
// 1-based index, e.g. "T2 Stone #3".
const ItemLabelFormat = "%s #%d"

// Error Messages
const (
	ErrMsgNilLedger = "allocator requires a ledger"
)

// Log Messages
const (
	LogMsgDistributionComplete = "Distribution complete"
	LogMsgBucketAllocated      = "Bucket allocated"
)
