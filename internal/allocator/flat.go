package allocator

import (
	"context"
	"sort"

	"github.com/osse101/GuildRaffle_Go/internal/domain"
	"github.com/osse101/GuildRaffle_Go/internal/logger"
)

// distributeFlat runs the two-pass draw for a flat category: every requester
// is guaranteed one item before anyone competes for a second.
func (s *service) distributeFlat(ctx context.Context, category string, limit int, requests domain.RequestSet, ledger Ledger) []domain.AllocationRecord {
	items := ItemLabels(category, limit)
	if len(items) == 0 {
		return nil
	}

	// Collect requesters, clamping counts to the per-run cap.
	wanted := make(map[string]int)
	var members []string
	for member, byCategory := range requests {
		req, ok := byCategory[category]
		if !ok || req.Count < 1 {
			continue
		}
		n := req.Count
		if n > domain.MaxPerBucket {
			n = domain.MaxPerBucket
		}
		wanted[member] = n
		members = append(members, member)
	}
	// Stable member order keeps a run reproducible under a seeded source.
	// Which member gets which physical index is cosmetic either way.
	sort.Strings(members)

	if len(members) == 0 {
		return unclaimedRecords(items)
	}

	records := make([]domain.AllocationRecord, 0, len(items))
	taken := make(map[string]int)

	// First pass: one guaranteed item per requester.
	for _, member := range members {
		if len(items) == 0 {
			break
		}
		var item string
		item, items = items[0], items[1:]
		records = append(records, domain.AllocationRecord{Item: item, Winner: member})
		ledger.Record(category, member)
		taken[member]++
	}

	// Second pass: weighted competition for the remainder among members who
	// asked for two. The average baseline is frozen before the first draw;
	// only the candidate pool shrinks as members hit the cap.
	if len(items) > 0 {
		average := ledger.Average(category)
		var candidates []string
		for _, member := range members {
			if wanted[member] >= domain.MaxPerBucket && taken[member] < domain.MaxPerBucket {
				candidates = append(candidates, member)
			}
		}

		for len(items) > 0 && len(candidates) > 0 {
			idx := s.draw(category, candidates, average, ledger)
			winner := candidates[idx]

			var item string
			item, items = items[0], items[1:]
			records = append(records, domain.AllocationRecord{Item: item, Winner: winner})
			ledger.Record(category, winner)
			taken[winner]++

			if taken[winner] >= domain.MaxPerBucket {
				candidates = append(candidates[:idx], candidates[idx+1:]...)
			}
		}
	}

	records = append(records, unclaimedRecords(items)...)

	logger.FromContext(ctx).Debug(LogMsgBucketAllocated,
		"bucket", category, "capacity", limit, "unclaimed", len(items))
	return records
}
