// Package driver owns the frame-stepped progression of a run: it holds
// the shared GameState, instantiates dimension modules through the
// factory, and performs the level transitions (advance on ascension,
// reset on death, loop back to dimension 0 after the infinite stage).
package driver

import (
	"math/rand"

	"github.com/arkadyvolkov/tui-ascend/internal/config"
	"github.com/arkadyvolkov/tui-ascend/internal/core"
	"github.com/arkadyvolkov/tui-ascend/internal/dimension"
	"github.com/arkadyvolkov/tui-ascend/internal/events"
	"github.com/arkadyvolkov/tui-ascend/internal/render"
	"github.com/arkadyvolkov/tui-ascend/internal/state"
)

// blackholeDuration is how long the death flash stays on screen.
const blackholeDuration = 1.5

// Driver runs one match. It is the single external mutator of the
// GameState besides the active module: it owns player color cycling,
// render-mode toggling, and the excess-state flags.
type Driver struct {
	tuning config.Tuning
	bus    *events.Bus
	rng    *rand.Rand

	state  *state.GameState
	module dimension.Module

	start      state.Dimension
	colorIdx   int
	bestStreak int
	deepest    state.Dimension

	blackholeTimer float64
}

// New creates a driver starting at the given dimension with a seeded
// randomness source. The same seed replays the same run.
func New(start state.Dimension, tuning config.Tuning, bus *events.Bus, seed int64) *Driver {
	d := &Driver{
		tuning: tuning,
		bus:    bus,
		rng:    rand.New(rand.NewSource(seed)),
		start:  start,
	}
	d.restart(start)
	return d
}

// restart builds a fresh GameState and module; used at creation, on
// death, and when the infinite stage loops back. The deepest tally
// survives rebirths.
func (d *Driver) restart(at state.Dimension) {
	d.state = state.New()
	d.state.Color = core.PlayerColors[d.colorIdx]
	d.module = dimension.New(at, d.tuning, d.bus, d.rng)
	d.module.Init(d.state)
	if at > d.deepest {
		d.deepest = at
	}
}

// State exposes the shared state for rendering and status display.
// Callers must not mutate it.
func (d *Driver) State() *state.GameState { return d.state }

// BestStreak returns the highest streak seen this run.
func (d *Driver) BestStreak() int { return d.bestStreak }

// Deepest returns the furthest dimension reached since the driver was
// created, across rebirths.
func (d *Driver) Deepest() state.Dimension { return d.deepest }

// Step advances the simulation by dt seconds. Non-positive dt frames are
// dropped here: modules assume a sane clock.
func (d *Driver) Step(in core.InputFrame, dt float64) {
	if dt <= 0 {
		return
	}

	d.module.Update(d.state, in, dt)

	if d.state.Streak > d.bestStreak {
		d.bestStreak = d.state.Streak
	}
	d.updateExcess(dt)

	switch {
	case d.module.CheckDeath(d.state):
		d.bus.Publish(events.Drop{
			From:       d.state.Dimension,
			Score:      d.state.Score,
			BestStreak: d.bestStreak,
		})
		d.blackholeTimer = blackholeDuration
		d.bestStreak = 0
		d.bus.Publish(events.Rebirth{})
		d.restart(state.Point)

	case d.module.CheckAscension(d.state):
		next := d.state.Dimension.Next()
		d.bus.Publish(events.Ascend{To: next})
		if next > d.deepest {
			d.deepest = next
		}
		d.switchTo(next)

	case d.state.Dimension == state.Infinite &&
		d.state.StillnessTimer >= d.tuning.Infinite.Hold:
		d.bus.Publish(events.Rebirth{})
		d.restart(state.Point)
	}
}

// switchTo hands mutation rights to a fresh module. The outgoing
// module's frame has fully completed by the time this runs; Init
// re-arms the kinematic arity and empties the entity list.
func (d *Driver) switchTo(next state.Dimension) {
	d.module = dimension.New(next, d.tuning, d.bus, d.rng)
	d.module.Init(d.state)
}

// updateExcess derives the render-only excess flag: redshift at high
// streak, blackhole briefly after a death.
func (d *Driver) updateExcess(dt float64) {
	if d.blackholeTimer > 0 {
		d.blackholeTimer -= dt
		d.state.ExcessState = state.ExcessBlackhole
		return
	}
	if d.tuning.RedshiftStreak > 0 && d.state.Streak >= d.tuning.RedshiftStreak {
		d.state.ExcessState = state.ExcessRedshift
	} else {
		d.state.ExcessState = state.ExcessNone
	}
}

// Render draws the active module's frame plus driver-level excess
// effects.
func (d *Driver) Render(dst render.Surface) {
	d.module.Render(dst, d.state)

	switch d.state.ExcessState {
	case state.ExcessRedshift:
		dst.Distort(float64(d.state.Streak), 0.4)
	case state.ExcessBlackhole:
		dst.Tunnel(0, core.Black, 1)
		dst.Vignette(1)
	}
}

// CycleColor steps the player's color through the selectable palette.
// Color is an external input concern, not a module one.
func (d *Driver) CycleColor(step int) {
	n := len(core.PlayerColors)
	d.colorIdx = ((d.colorIdx+step)%n + n) % n
	d.state.Color = core.PlayerColors[d.colorIdx]
	d.bus.Publish(events.Shift{Color: d.state.Color})
}

// SetColor selects a specific palette color.
func (d *Driver) SetColor(c core.Color) {
	for i, pc := range core.PlayerColors {
		if pc == c {
			d.colorIdx = i
			d.state.Color = c
			d.bus.Publish(events.Shift{Color: c})
			return
		}
	}
}

// ToggleRenderMode flips between geometric and flat rendering.
func (d *Driver) ToggleRenderMode() {
	if d.state.RenderMode == state.RenderGeometric {
		d.state.RenderMode = state.RenderFlat
	} else {
		d.state.RenderMode = state.RenderGeometric
	}
}
