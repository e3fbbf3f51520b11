// Package dimension implements the seven gameplay variants of the
// dimensional engine and the factory that constructs them. Each variant
// owns private tuning state and implements the shared lifecycle contract
// against the shared GameState and the geometry kernels.
package dimension

import (
	"github.com/arkadyvolkov/tui-ascend/internal/core"
	"github.com/arkadyvolkov/tui-ascend/internal/render"
	"github.com/arkadyvolkov/tui-ascend/internal/state"
)

// Module is the lifecycle contract every dimension variant implements.
// Exactly one module is active at a time; it is the sole writer of the
// GameState it was initialized with, and the driver completes one
// module's frame before handing mutation rights to the next one's Init.
type Module interface {
	// Dimension returns the variant identifier.
	Dimension() state.Dimension

	// Init resets the GameState's per-dimension fields (kinematic
	// arity, entity list) and the module's own counters. Called once
	// on entry; the entity list always starts empty.
	Init(s *state.GameState)

	// Update advances module-private timers, spawns/moves/retires
	// entities, evaluates collisions, and applies the outcome ladder.
	// Within one call the order is fixed: spawn, advance, collide,
	// retire — a just-spawned entity is never collision-tested at its
	// spawn edge in the same frame.
	Update(s *state.GameState, in core.InputFrame, dt float64)

	// Render draws the current frame to the surface.
	Render(dst render.Surface, s *state.GameState)

	// CheckAscension reports whether the variant's success counter
	// has crossed its threshold.
	CheckAscension(s *state.GameState) bool

	// CheckDeath reports whether the run is over. Uniform: true iff
	// saturation <= 0, except the infinite stage which never dies.
	CheckDeath(s *state.GameState) bool

	// SpawnEntities produces the module's next batch of generic
	// entities using the injected randomness source. Variants whose
	// obstacles are module-private (walls, clouds) return nil.
	SpawnEntities() []state.Entity
}
