package dimension

import (
	"fmt"
	"math/rand"

	"github.com/arkadyvolkov/tui-ascend/internal/config"
	"github.com/arkadyvolkov/tui-ascend/internal/core"
	"github.com/arkadyvolkov/tui-ascend/internal/events"
	"github.com/arkadyvolkov/tui-ascend/internal/geometry"
	"github.com/arkadyvolkov/tui-ascend/internal/render"
	"github.com/arkadyvolkov/tui-ascend/internal/state"
)

// pointModule is dimension 0: the player has no degrees of freedom and
// plays pure timing. A border color cycles on a beat; on every beat the
// player's color is judged against it. Eight consecutive perfect or
// white beats ascend; a single miss resets the consecutive counter to 0.
type pointModule struct {
	cfg config.PointTuning
	bus *events.Bus
	rng *rand.Rand

	beatTimer   float64
	borderColor core.Color
	consecutive int
}

func newPoint(cfg config.PointTuning, bus *events.Bus, rng *rand.Rand) *pointModule {
	return &pointModule{cfg: cfg, bus: bus, rng: rng}
}

func (m *pointModule) Dimension() state.Dimension { return state.Point }

func (m *pointModule) Init(s *state.GameState) {
	s.ResetKinematics(0, 0)
	s.Entities = nil
	s.Dimension = state.Point
	s.Symbol = "·"

	m.beatTimer = 0
	m.consecutive = 0
	m.borderColor = obstacleColor(m.rng, m.cfg.BlackChance)
}

func (m *pointModule) Update(s *state.GameState, _ core.InputFrame, dt float64) {
	if m.cfg.BeatInterval <= 0 {
		return
	}
	m.beatTimer += dt
	for m.beatTimer >= m.cfg.BeatInterval {
		m.beatTimer -= m.cfg.BeatInterval
		m.beat(s)
	}
}

// beat judges the player against the current border color, then cycles it.
func (m *pointModule) beat(s *state.GameState) {
	m.bus.Publish(events.Beat{Color: m.borderColor})

	var o core.Outcome
	if m.borderColor == core.Black {
		// No dodge exists in dimension 0; the void beat is lethal.
		o = core.OutcomeVoid
	} else {
		o = core.GradeOutcome(core.MatchColors(s.Color, m.borderColor))
	}

	if applyOutcome(s, o, m.cfg.Ladder, m.bus) {
		m.consecutive++
	} else {
		m.consecutive = 0
	}

	m.borderColor = obstacleColor(m.rng, m.cfg.BlackChance)
}

func (m *pointModule) CheckAscension(_ *state.GameState) bool {
	return m.consecutive >= m.cfg.AscendBeats
}

func (m *pointModule) CheckDeath(s *state.GameState) bool {
	return s.Dead()
}

func (m *pointModule) SpawnEntities() []state.Entity { return nil }

func (m *pointModule) Render(dst render.Surface, s *state.GameState) {
	w, h := dst.Size()
	cx, cy := float64(w)/2, float64(h)/2

	// Border frame in the beat color.
	frame := []geometry.Point{
		{X: 1, Y: 1}, {X: float64(w - 2), Y: 1},
		{X: float64(w - 2), Y: float64(h - 2)}, {X: 1, Y: float64(h - 2)},
	}
	dst.StrokeShape(frame, m.borderColor)

	// The player point pulses with the beat.
	pulse := 1 - m.beatTimer/m.cfg.BeatInterval
	if s.RenderMode == state.RenderFlat {
		dst.GlowText(w/2, h/2, s.Symbol, s.Color, pulse)
	} else {
		dst.Glow(cx, cy, 2+pulse*3, s.Color, 0.4+0.6*pulse)
	}

	dst.GlowText(2, 0, fmt.Sprintf("beat %d/%d", m.consecutive, m.cfg.AscendBeats), core.White, 0)
	dst.Vignette(0.5)
}
