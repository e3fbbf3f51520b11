package dimension

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/arkadyvolkov/tui-ascend/internal/config"
	"github.com/arkadyvolkov/tui-ascend/internal/core"
	"github.com/arkadyvolkov/tui-ascend/internal/events"
	"github.com/arkadyvolkov/tui-ascend/internal/geometry"
	"github.com/arkadyvolkov/tui-ascend/internal/render"
	"github.com/arkadyvolkov/tui-ascend/internal/state"
)

// foldModule is dimension 4: rings expand and contract while approaching
// their phase point; the player tunes a radial scale and two rotation
// axes. A ring phasing in is judged on size proximity and color
// resonance together. Twelve successful phases ascend.
type foldModule struct {
	cfg config.FoldTuning
	bus *events.Bus
	rng *rand.Rand

	ringTimer float64
	phases    int
	nextID    uint64
}

func newFold(cfg config.FoldTuning, bus *events.Bus, rng *rand.Rand) *foldModule {
	return &foldModule{cfg: cfg, bus: bus, rng: rng}
}

func (m *foldModule) Dimension() state.Dimension { return state.Fold }

// foldPhaseTime is how long a ring takes to reach its phase point.
const foldPhaseTime = 3.0

func (m *foldModule) Init(s *state.GameState) {
	s.ResetKinematics(0, 2)
	s.Dimension = state.Fold
	s.Entities = nil
	s.Symbol = "◯"
	s.Scale = (m.cfg.MinScale + m.cfg.MaxScale) / 2

	m.ringTimer = 0
	m.phases = 0
}

func (m *foldModule) Update(s *state.GameState, in core.InputFrame, dt float64) {
	m.steer(s, in, dt)

	// Spawn.
	m.ringTimer += dt
	if m.ringTimer >= m.cfg.RingInterval {
		m.ringTimer -= m.cfg.RingInterval
		s.Entities = append(s.Entities, m.SpawnEntities()...)
	}

	// Advance: the phase countdown runs in Position[0]; the ring radius
	// breathes in Size at the ring's own rate.
	for i := range s.Entities {
		e := &s.Entities[i]
		e.Position[0] -= dt
		e.Size += e.Velocity[0] * dt
		if e.Size < m.cfg.MinScale || e.Size > m.cfg.MaxScale {
			e.Velocity[0] = -e.Velocity[0]
			e.Size = core.ClampF(e.Size, m.cfg.MinScale, m.cfg.MaxScale)
		}
	}

	// Phase-in events, then retire.
	kept := s.Entities[:0]
	for _, e := range s.Entities {
		if e.Position[0] > 0 {
			kept = append(kept, e)
			continue
		}
		m.phase(s, e)
	}
	s.Entities = kept
}

// steer drives radial scale and the two rotation axes.
func (m *foldModule) steer(s *state.GameState, in core.InputFrame, dt float64) {
	if in.Expand {
		s.Scale += m.cfg.ScaleSpeed * dt
	}
	if in.Contract {
		s.Scale -= m.cfg.ScaleSpeed * dt
	}
	s.Scale = core.ClampF(s.Scale, m.cfg.MinScale, m.cfg.MaxScale)

	if in.RotateLeft {
		s.Rotation[0] -= m.cfg.RotateSpeed * dt
	}
	if in.RotateRight {
		s.Rotation[0] += m.cfg.RotateSpeed * dt
	}
	if in.Up {
		s.Rotation[1] += m.cfg.RotateSpeed * dt
	}
	if in.Down {
		s.Rotation[1] -= m.cfg.RotateSpeed * dt
	}
	s.Rotation[0] = geometry.NormalizeAngle(s.Rotation[0])
	s.Rotation[1] = geometry.NormalizeAngle(s.Rotation[1])
}

// phase judges a ring reaching its phase point: size within tolerance
// and color resonance make a success; one of the two earns partial.
func (m *foldModule) phase(s *state.GameState, e state.Entity) {
	if e.Color == core.Black {
		applyOutcome(s, core.OutcomeVoid, m.cfg.Ladder, m.bus)
		return
	}

	sized := math.Abs(e.Size-s.Scale) <= m.cfg.SizeTolerance
	grade := core.MatchColors(s.Color, e.Color)

	var o core.Outcome
	switch {
	case sized && grade.Success():
		o = core.GradeOutcome(grade)
	case sized || grade.Success():
		o = core.OutcomePartial
	default:
		o = core.OutcomeMismatch
	}

	if applyOutcome(s, o, m.cfg.Ladder, m.bus) {
		m.phases++
	}
}

func (m *foldModule) CheckAscension(_ *state.GameState) bool {
	return m.phases >= m.cfg.AscendPhases
}

func (m *foldModule) CheckDeath(s *state.GameState) bool {
	return s.Dead()
}

func (m *foldModule) SpawnEntities() []state.Entity {
	m.nextID++
	growth := m.cfg.RingSpeed
	if m.rng.Intn(2) == 0 {
		growth = -growth
	}
	return []state.Entity{{
		ID:       m.nextID,
		Color:    obstacleColor(m.rng, 0.06),
		Position: [3]float64{foldPhaseTime},
		Velocity: [3]float64{growth},
		Size:     m.cfg.MinScale + m.rng.Float64()*(m.cfg.MaxScale-m.cfg.MinScale),
	}}
}

func (m *foldModule) Render(dst render.Surface, s *state.GameState) {
	w, h := dst.Size()
	cx, cy := float64(w)/2, float64(h)/2

	// World scale units map onto surface cells.
	cell := func(units float64) float64 { return units / m.cfg.MaxScale * (float64(h)/2 - 2) }

	for _, e := range s.Entities {
		urgency := 1 - e.Position[0]/foldPhaseTime
		ring := geometry.Transform(geometry.Vertices(geometry.Circle), cell(e.Size), s.Rotation[1], cx, cy)
		// Terminal cells are taller than wide; stretch x to look round.
		for i := range ring {
			ring[i].X = cx + (ring[i].X-cx)*2
		}
		if s.RenderMode == state.RenderFlat {
			dst.GlowText(int(cx), int(cy-cell(e.Size)), "◌", e.Color, urgency)
		} else {
			dst.StrokeShape(ring, e.Color)
		}
	}

	// Player shell.
	shell := geometry.Transform(geometry.Vertices(geometry.Circle), cell(s.Scale), s.Rotation[0], cx, cy)
	for i := range shell {
		shell[i].X = cx + (shell[i].X-cx)*2
	}
	dst.StrokeShape(shell, s.Color)
	dst.Glow(cx, cy, 1.5, s.Color, 0.8)

	dst.GlowText(2, 0, fmt.Sprintf("phase %d/%d  scale %.0f", m.phases, m.cfg.AscendPhases, s.Scale), core.White, 0)
	dst.Vignette(0.3)
}
