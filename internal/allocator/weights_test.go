package allocator

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRand always returns the same value, pinning pickWeighted's choice.
type fixedRand struct {
	v float64
}

func (f fixedRand) Float64() float64 { return f.v }

func TestDrawWeightDecaysWithWins(t *testing.T) {
	prev := drawWeight(0, 0)
	for wins := 1; wins <= 50; wins++ {
		w := drawWeight(wins, 0)
		assert.Less(t, w, prev, "weight should strictly decrease at %d wins", wins)
		assert.Greater(t, w, 0.0, "weight must never reach zero")
		prev = w
	}
}

func TestDrawWeightBoostsBelowAverage(t *testing.T) {
	average := 2.0
	below := drawWeight(1, average)
	atAverage := drawWeight(2, average)

	// Same decay term would apply to both; the boost applies only below.
	assert.InDelta(t, drawWeight(1, 0)*BelowAverageBoost, below, 1e-9)
	assert.InDelta(t, drawWeight(2, 0), atAverage, 1e-9)
}

func TestDrawWeightVeteranVersusNewcomer(t *testing.T) {
	// Hero Selection card scenario: X has 3 prior wins, Y has none.
	average := 1.5
	x := drawWeight(3, average)
	y := drawWeight(0, average)
	assert.Greater(t, y, x)
}

func TestPickWeightedHonorsWeights(t *testing.T) {
	weights := []float64{1.0, 2.0, 1.0} // cumulative: 1, 3, 4

	tests := []struct {
		v        float64
		expected int
	}{
		{0.0, 0},
		{0.24, 0},
		{0.26, 1},
		{0.74, 1},
		{0.76, 2},
		{0.999, 2},
	}
	for _, tt := range tests {
		got := pickWeighted(fixedRand{tt.v}, weights)
		assert.Equal(t, tt.expected, got, "v=%v", tt.v)
	}
}

func TestPickWeightedSingleCandidate(t *testing.T) {
	assert.Equal(t, 0, pickWeighted(fixedRand{0.9999}, []float64{0.3}))
}

func TestUnderRewardedMemberWinsMoreOften(t *testing.T) {
	// Two members compete for a capacity-1 pool; X holds 3 prior wins, Y
	// none. Over many trials Y must win materially more than half.
	rng := rand.New(rand.NewSource(7)) //nolint:gosec // deterministic test source

	const trials = 10000
	yWins := 0
	average := 1.5
	for i := 0; i < trials; i++ {
		weights := []float64{
			drawWeight(3, average), // X
			drawWeight(0, average), // Y
		}
		if pickWeighted(rng, weights) == 1 {
			yWins++
		}
	}

	ratio := float64(yWins) / float64(trials)
	require.Greater(t, ratio, 0.60, "Y won only %.1f%% of trials", ratio*100)
}
