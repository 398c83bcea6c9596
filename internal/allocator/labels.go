package allocator

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
)

var itemNumberPattern = regexp.MustCompile(`#(\d+)`)

// ItemLabels builds the capacity-n label sequence for a pool, numerically
// sorted: "Pool #1" .. "Pool #n". A non-positive limit yields no items.
func ItemLabels(pool string, limit int) []string {
	if limit <= 0 {
		return nil
	}
	labels := make([]string, 0, limit)
	for i := 1; i <= limit; i++ {
		labels = append(labels, fmt.Sprintf(ItemLabelFormat, pool, i))
	}
	SortByItemNumber(labels)
	return labels
}

// SortByItemNumber orders labels ascending by the integer after the "#"
// marker. Labels without a marker sort last. Which physical index a winner
// gets is cosmetic, but the output order is part of the published result.
func SortByItemNumber(labels []string) {
	sort.SliceStable(labels, func(i, j int) bool {
		return itemNumber(labels[i]) < itemNumber(labels[j])
	})
}

func itemNumber(label string) int {
	m := itemNumberPattern.FindStringSubmatch(label)
	if m == nil {
		return math.MaxInt
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return math.MaxInt
	}
	return n
}
