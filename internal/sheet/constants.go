package sheet

import "time"

// Response table column names, as exported by the guild's sign-up form.
const (
	ColumnTimestamp = "Tidsstempel"
	ColumnUsername  = "username"
)

// TimestampLayout matches the form's submission timestamps: day-first date,
// dot-separated clock.
const TimestampLayout = "02/01/2006 15.04.05"

// ExportURLFormat renders the CSV export endpoint for a sheet ID.
const ExportURLFormat = "https://docs.google.com/spreadsheets/d/%s/export?format=csv"

// shareURLIDSegment is the path segment of a share link that carries the
// sheet ID ("https:", "", host, "spreadsheets", "d", <id>).
const shareURLIDSegment = 5

// DefaultFetchTimeout bounds the sheet download when no client is supplied.
const DefaultFetchTimeout = 30 * time.Second

// Error Messages
const (
	ErrContextFailedToFetchSheet = "failed to fetch sheet"
	ErrContextFailedToParseCSV   = "failed to parse sheet csv"
	ErrMsgUnexpectedStatus       = "unexpected response status"
)

// Log Messages
const (
	LogMsgFetchedResponses   = "Fetched sheet responses"
	LogMsgParsedParticipants = "Parsed participants"
)
