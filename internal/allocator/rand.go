package allocator

import (
	"github.com/osse101/GuildRaffle_Go/internal/utils"
)

// defaultRand backs production draws with the shared math/rand helper.
// A seeded *math/rand.Rand satisfies Rand directly for reproducible runs.
type defaultRand struct{}

func (defaultRand) Float64() float64 {
	return utils.RandomFloat()
}
