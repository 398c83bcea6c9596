package domain

// Category is one configured prize pool. Exactly one shape is valid: a flat
// pool with its own item capacity, or a named set of subcategories each with
// an independent capacity and item numbering.
type Category struct {
	Name          string
	Limit         int
	Subcategories []Subcategory
}

// IsFlat reports whether the category is a flat pool (no subcategories).
func (c Category) IsFlat() bool {
	return len(c.Subcategories) == 0
}

// Subcategory is a named sub-pool inside a subcategorized category. Its name
// is its own ledger bucket, distinct from the parent category's.
type Subcategory struct {
	Name  string
	Limit int
}

// Request is one participant's ask for a single category: a plain item count
// for flat categories, or the list of requested subcategory names for
// subcategorized ones (duplicates mean extra copies).
type Request struct {
	Count int
	Picks []string
}

// RequestSet maps participant handle -> category name -> request. It is
// rebuilt from the sign-up sheet every run and never persisted.
type RequestSet map[string]map[string]Request

// WinningRow is one persisted cumulative-winnings ledger row.
type WinningRow struct {
	Bucket string
	Member string
	Total  int
}

// AllocationRecord pairs one physical item with its winner, or with the
// unclaimed sentinel when nobody took it.
type AllocationRecord struct {
	Item   string
	Winner string
}

// Unclaimed reports whether the record's item went to nobody.
func (r AllocationRecord) Unclaimed() bool {
	return r.Winner == WinnerUnclaimed
}

// RunResult summarizes one completed raffle run.
type RunResult struct {
	RunID     string
	Records   []AllocationRecord
	Unclaimed int
}
