package domain

// WinnerUnclaimed marks an item nobody claimed. The wording is kept verbatim
// from the guild's sign-up sheet so downstream spreadsheets stay compatible.
const WinnerUnclaimed = "First Come, First Serve"

// MaxPerBucket caps how many items one participant can take from a single
// flat category, or from a single subcategory, in one run. Request counts
// are clamped to this before allocation.
const MaxPerBucket = 2
