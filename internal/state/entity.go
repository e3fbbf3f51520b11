package state

import (
	"github.com/arkadyvolkov/tui-ascend/internal/core"
	"github.com/arkadyvolkov/tui-ascend/internal/geometry"
)

// Entity is a generic per-frame obstacle living in the shared entity list.
// A dimension module spawns entities, advances them, and retires them by
// filtering the list; no entity outlives its dimension's active lifetime.
type Entity struct {
	ID       uint64
	Color    core.Color
	Position [3]float64
	Velocity [3]float64
	Rotation [3]float64
	Size     float64
}

// Wall is a plane-dimension obstacle: an approaching barrier with a
// shaped hole the player must fit through. Walls live in a module-private
// list, not in GameState.Entities, because their collision rule differs
// from generic entity contact.
type Wall struct {
	ID           uint64
	Color        core.Color
	Depth        float64 // distance to the pass plane
	Speed        float64
	HoleType     geometry.Shape
	HoleRotation float64
	HoleScale    float64
	HoleOffset   float64 // lateral center of the hole
}

// Cloud is a nebula-dimension obstacle: a drifting density field the
// player merges with. Module-private for the same reason as Wall.
type Cloud struct {
	ID       uint64
	Color    core.Color
	Distance float64
	Speed    float64
	Density  float64 // target density in [0,1]
	Size     float64
}
