package allocator

import (
	"math"
)

// draw picks one candidate index for a bucket. Weights are recomputed from
// the live ledger on every draw; the average baseline is whatever the caller
// froze before the draw sequence started.
func (s *service) draw(bucket string, candidates []string, average float64, ledger Ledger) int {
	weights := make([]float64, len(candidates))
	for i, member := range candidates {
		weights[i] = drawWeight(ledger.Count(bucket, member), average)
	}
	return pickWeighted(s.rng, weights)
}

// drawWeight implements the fairness curve: logarithmic decay on cumulative
// wins, so a frequent winner's chance shrinks but never reaches zero, with a
// flat boost for anyone still below the bucket average.
func drawWeight(wins int, average float64) float64 {
	w := 1 / (1 + math.Log(1+float64(wins)))
	if float64(wins) < average {
		w *= BelowAverageBoost
	}
	return w
}

// pickWeighted returns an index chosen with probability proportional to its
// weight.
func pickWeighted(rng Rand, weights []float64) int {
	var total float64
	for _, w := range weights {
		total += w
	}

	target := rng.Float64() * total
	for i, w := range weights {
		target -= w
		if target < 0 {
			return i
		}
	}
	// Float rounding can leave a sliver of target; the last entry takes it.
	return len(weights) - 1
}
