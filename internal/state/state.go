// Package state defines the shared mutable game state and the per-frame
// entity model. Exactly one dimension module owns write access to a
// GameState at a time; switching dimensions re-initializes the arity of
// the kinematic fields to whatever the incoming module expects.
package state

import "github.com/arkadyvolkov/tui-ascend/internal/core"

// Dimension identifies one of the seven gameplay variants.
type Dimension int

const (
	Point Dimension = iota
	Line
	Plane
	Space
	Fold
	Nebula
	Infinite
)

// Dimensions lists the variants in ascension order.
var Dimensions = []Dimension{Point, Line, Plane, Space, Fold, Nebula, Infinite}

// String returns the level identifier: "0" through "5", or "infinite".
func (d Dimension) String() string {
	switch d {
	case Infinite:
		return "infinite"
	case Point, Line, Plane, Space, Fold, Nebula:
		return string(rune('0' + d))
	default:
		return "unknown"
	}
}

// Title returns the display name of the dimension.
func (d Dimension) Title() string {
	switch d {
	case Point:
		return "Point"
	case Line:
		return "Line"
	case Plane:
		return "Plane"
	case Space:
		return "Space"
	case Fold:
		return "Fold"
	case Nebula:
		return "Nebula"
	case Infinite:
		return "Infinite"
	default:
		return "Unknown"
	}
}

// Next returns the dimension entered on ascension. The infinite stage has
// no successor; the driver loops it back to Point on its own clock.
func (d Dimension) Next() Dimension {
	if d >= Nebula {
		return Infinite
	}
	return d + 1
}

// RenderMode selects between geometric and flat/symbolic rendering.
// Consumed only by render code, never by gameplay logic.
type RenderMode int

const (
	RenderGeometric RenderMode = iota
	RenderFlat
)

// ExcessState is a render-only flag derived by the driver from streak and
// death transitions.
type ExcessState int

const (
	ExcessNone ExcessState = iota
	ExcessRedshift
	ExcessBlackhole
)

// GameState is the single shared mutable record for one match. It is
// owned by the progression driver and mutated only by the active
// dimension module (plus the driver's own external concerns: player
// color, render mode, excess state).
//
// Position, Velocity and Rotation are fixed-size arrays with explicit
// active-axis counts rather than ragged slices; Axes and RotAxes say how
// many leading components the current dimension uses (0 in the point and
// infinite dimensions).
type GameState struct {
	Position [3]float64
	Velocity [3]float64
	Rotation [3]float64
	Axes     int
	RotAxes  int

	Color      core.Color
	Saturation float64 // health in [0,1]; 0 is death
	Streak     int
	Score      int

	Entities []Entity

	Dimension   Dimension
	RenderMode  RenderMode
	ExcessState ExcessState

	// Fields used only by specific higher dimensions.
	Scale          float64 // fold: player radial scale
	Density        float64 // nebula: player density in [0,1]
	Symbol         string  // flat-mode glyph for the player
	StillnessTimer float64 // infinite: seconds spent still
}

// New returns a GameState ready for the first Init call of a run.
func New() *GameState {
	return &GameState{
		Color:      core.White,
		Saturation: 1,
		Symbol:     "·",
	}
}

// ResetKinematics zeroes the kinematic arrays and records the arity the
// active dimension uses. Every module's Init goes through here.
func (s *GameState) ResetKinematics(axes, rotAxes int) {
	s.Position = [3]float64{}
	s.Velocity = [3]float64{}
	s.Rotation = [3]float64{}
	s.Axes = axes
	s.RotAxes = rotAxes
}

// AddSaturation adjusts saturation by delta, clamped to [0,1].
func (s *GameState) AddSaturation(delta float64) {
	s.Saturation = core.ClampF(s.Saturation+delta, 0, 1)
}

// Dead reports whether the run is over. Uniform across dimensions; only
// the infinite stage overrides it at the module level.
func (s *GameState) Dead() bool {
	return s.Saturation <= 0
}
