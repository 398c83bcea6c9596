package allocator

import (
	"context"
	"sort"

	"github.com/osse101/GuildRaffle_Go/internal/domain"
	"github.com/osse101/GuildRaffle_Go/internal/logger"
)

// distributeSubcategory allocates one sub-pool. Unlike flat categories there
// is no guaranteed first item: every unit is drawn with the same weighted
// procedure, against the subcategory's own ledger bucket.
func (s *service) distributeSubcategory(ctx context.Context, category string, sub domain.Subcategory, requests domain.RequestSet, ledger Ledger) []domain.AllocationRecord {
	items := ItemLabels(sub.Name, sub.Limit)
	if len(items) == 0 {
		return nil
	}

	// A member's allowance is how many copies of this subcategory they
	// listed, clamped to the per-run cap.
	allowance := make(map[string]int)
	var members []string
	for member, byCategory := range requests {
		req, ok := byCategory[category]
		if !ok {
			continue
		}
		n := 0
		for _, pick := range req.Picks {
			if pick == sub.Name {
				n++
			}
		}
		if n == 0 {
			continue
		}
		if n > domain.MaxPerBucket {
			n = domain.MaxPerBucket
		}
		allowance[member] = n
		members = append(members, member)
	}
	// Stable member order keeps a run reproducible under a seeded source.
	sort.Strings(members)

	if len(members) == 0 {
		return unclaimedRecords(items)
	}

	// The average baseline is frozen for the whole sub-pool.
	average := ledger.Average(sub.Name)

	records := make([]domain.AllocationRecord, 0, len(items))
	for len(items) > 0 {
		var active []string
		for _, member := range members {
			if allowance[member] > 0 {
				active = append(active, member)
			}
		}
		if len(active) == 0 {
			break
		}

		idx := s.draw(sub.Name, active, average, ledger)
		winner := active[idx]

		var item string
		item, items = items[0], items[1:]
		records = append(records, domain.AllocationRecord{Item: item, Winner: winner})
		ledger.Record(sub.Name, winner)
		allowance[winner]--
	}

	records = append(records, unclaimedRecords(items)...)

	logger.FromContext(ctx).Debug(LogMsgBucketAllocated,
		"bucket", sub.Name, "capacity", sub.Limit, "unclaimed", len(items))
	return records
}
