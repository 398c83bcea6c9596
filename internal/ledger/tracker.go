package ledger

import (
	"fmt"
	"sort"

	"github.com/osse101/GuildRaffle_Go/internal/domain"
)

// Tracker is the in-memory cumulative winnings ledger, keyed by
// (bucket, member) where a bucket is a flat category name or a subcategory
// name. Counts only ever increase. A run owns its tracker exclusively;
// Tracker is not safe for concurrent use.
type Tracker struct {
	counts map[string]map[string]int
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{counts: make(map[string]map[string]int)}
}

// FromRows builds a tracker from persisted ledger rows. Rows with an empty
// bucket or member, or a negative total, abort the load.
func FromRows(rows []domain.WinningRow) (*Tracker, error) {
	t := NewTracker()
	for i, row := range rows {
		if row.Bucket == "" || row.Member == "" {
			return nil, fmt.Errorf("%w: row %d has empty bucket or member", domain.ErrMalformedLedgerRow, i)
		}
		if row.Total < 0 {
			return nil, fmt.Errorf("%w: row %d has negative total %d", domain.ErrMalformedLedgerRow, i, row.Total)
		}
		bucket, ok := t.counts[row.Bucket]
		if !ok {
			bucket = make(map[string]int)
			t.counts[row.Bucket] = bucket
		}
		bucket[row.Member] = row.Total
	}
	return t, nil
}

// Count returns the cumulative wins for member in bucket.
func (t *Tracker) Count(bucket, member string) int {
	return t.counts[bucket][member]
}

// Record adds one win for member in bucket.
func (t *Tracker) Record(bucket, member string) {
	m, ok := t.counts[bucket]
	if !ok {
		m = make(map[string]int)
		t.counts[bucket] = m
	}
	m[member]++
}

// Average returns the mean cumulative win count across every member with a
// ledger entry in bucket, or 0 when the bucket is empty. The allocator
// freezes this value before a draw sequence starts.
func (t *Tracker) Average(bucket string) float64 {
	m := t.counts[bucket]
	if len(m) == 0 {
		return 0
	}
	sum := 0
	for _, n := range m {
		sum += n
	}
	return float64(sum) / float64(len(m))
}

// Rows snapshots the full ledger as flat rows, sorted by bucket then member
// so persisted output is stable across runs.
func (t *Tracker) Rows() []domain.WinningRow {
	var rows []domain.WinningRow
	for bucket, members := range t.counts {
		for member, total := range members {
			rows = append(rows, domain.WinningRow{Bucket: bucket, Member: member, Total: total})
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Bucket != rows[j].Bucket {
			return rows[i].Bucket < rows[j].Bucket
		}
		return rows[i].Member < rows[j].Member
	})
	return rows
}
