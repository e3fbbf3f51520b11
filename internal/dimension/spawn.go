package dimension

import (
	"math/rand"

	"github.com/arkadyvolkov/tui-ascend/internal/core"
)

// obstacleColor draws a spawn color: black with the given chance,
// otherwise uniform over the chromatic colors and white.
func obstacleColor(rng *rand.Rand, blackChance float64) core.Color {
	if rng.Float64() < blackChance {
		return core.Black
	}
	return core.PlayerColors[rng.Intn(len(core.PlayerColors))]
}
