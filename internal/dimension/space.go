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

// spaceModule is dimension 3: rotated triangles approach in depth while
// the player drifts on two axes with momentum-smoothed movement. A
// triangle crossing the contact plane within reach is judged on rotation
// alignment and color resonance together; one criterion alone earns
// partial credit, dodging it entirely is a miss.
type spaceModule struct {
	cfg config.SpaceTuning
	bus *events.Bus
	rng *rand.Rand

	spawnTimer float64
	passes     int
	nextID     uint64
}

func newSpace(cfg config.SpaceTuning, bus *events.Bus, rng *rand.Rand) *spaceModule {
	return &spaceModule{cfg: cfg, bus: bus, rng: rng}
}

func (m *spaceModule) Dimension() state.Dimension { return state.Space }

const (
	spaceSpawnDepth = 120.0
	spaceSpan       = 40.0 // player movement bound on each axis
)

func (m *spaceModule) Init(s *state.GameState) {
	s.ResetKinematics(2, 1)
	s.Dimension = state.Space
	s.Entities = nil
	s.Symbol = "▲"

	m.spawnTimer = 0
	m.passes = 0
}

func (m *spaceModule) Update(s *state.GameState, in core.InputFrame, dt float64) {
	m.steer(s, in, dt)

	// Spawn.
	m.spawnTimer += dt
	if m.spawnTimer >= m.cfg.SpawnInterval {
		m.spawnTimer -= m.cfg.SpawnInterval
		s.Entities = append(s.Entities, m.SpawnEntities()...)
	}

	// Advance: depth shrinks; obstacle rotation keeps spinning.
	for i := range s.Entities {
		s.Entities[i].Position[2] += s.Entities[i].Velocity[2] * dt
		s.Entities[i].Rotation[0] = geometry.NormalizeAngle(
			s.Entities[i].Rotation[0] + s.Entities[i].Velocity[0]*dt)
	}

	// Collide at the contact plane, then retire.
	kept := s.Entities[:0]
	for _, e := range s.Entities {
		if e.Position[2] > 0 {
			kept = append(kept, e)
			continue
		}
		m.contact(s, e)
	}
	s.Entities = kept
}

// steer integrates acceleration and applies momentum decay, so movement
// glides instead of stopping with the key.
func (m *spaceModule) steer(s *state.GameState, in core.InputFrame, dt float64) {
	if in.Left {
		s.Velocity[0] -= m.cfg.MoveAccel * dt
	}
	if in.Right {
		s.Velocity[0] += m.cfg.MoveAccel * dt
	}
	if in.Up {
		s.Velocity[1] -= m.cfg.MoveAccel * dt
	}
	if in.Down {
		s.Velocity[1] += m.cfg.MoveAccel * dt
	}

	decay := math.Pow(m.cfg.Momentum, dt)
	s.Velocity[0] *= decay
	s.Velocity[1] *= decay

	s.Position[0] = core.ClampF(s.Position[0]+s.Velocity[0]*dt, -spaceSpan, spaceSpan)
	s.Position[1] = core.ClampF(s.Position[1]+s.Velocity[1]*dt, -spaceSpan, spaceSpan)

	if in.RotateLeft {
		s.Rotation[0] -= m.cfg.RotateSpeed * dt
	}
	if in.RotateRight {
		s.Rotation[0] += m.cfg.RotateSpeed * dt
	}
	s.Rotation[0] = geometry.NormalizeAngle(s.Rotation[0])
}

// contact judges a triangle crossing the contact plane.
func (m *spaceModule) contact(s *state.GameState, e state.Entity) {
	dx := e.Position[0] - s.Position[0]
	dy := e.Position[1] - s.Position[1]
	reached := math.Hypot(dx, dy) <= m.cfg.ContactRadius+e.Size

	if !reached {
		// The triangle slid past unengaged.
		applyOutcome(s, core.OutcomeMismatch, m.cfg.Ladder, m.bus)
		return
	}

	if e.Color == core.Black {
		applyOutcome(s, core.OutcomeVoid, m.cfg.Ladder, m.bus)
		return
	}

	aligned := geometry.RotationError(geometry.Triangle, s.Rotation[0], e.Rotation[0]) <= m.cfg.AlignTolerance
	grade := core.MatchColors(s.Color, e.Color)

	var o core.Outcome
	switch {
	case aligned && grade.Success():
		o = core.GradeOutcome(grade)
	case aligned || grade.Success():
		o = core.OutcomePartial
	default:
		o = core.OutcomeMismatch
	}

	if applyOutcome(s, o, m.cfg.Ladder, m.bus) {
		m.passes++
	}
}

func (m *spaceModule) CheckAscension(_ *state.GameState) bool {
	return m.passes >= m.cfg.AscendPasses
}

func (m *spaceModule) CheckDeath(s *state.GameState) bool {
	return s.Dead()
}

func (m *spaceModule) SpawnEntities() []state.Entity {
	m.nextID++
	return []state.Entity{{
		ID:    m.nextID,
		Color: obstacleColor(m.rng, 0.05),
		Position: [3]float64{
			(m.rng.Float64()*2 - 1) * spaceSpan * 0.6,
			(m.rng.Float64()*2 - 1) * spaceSpan * 0.6,
			spaceSpawnDepth,
		},
		Velocity: [3]float64{
			(m.rng.Float64() - 0.5) * 2, // slow spin, rad/s
			0,
			-m.cfg.ApproachSpeed,
		},
		Rotation: [3]float64{m.rng.Float64() * 2 * math.Pi},
		Size:     5,
	}}
}

func (m *spaceModule) Render(dst render.Surface, s *state.GameState) {
	w, h := dst.Size()
	cx, cy := float64(w)/2, float64(h)/2

	// Project world xy onto the surface; depth scales size and offset.
	for _, e := range s.Entities {
		prox := 1 - e.Position[2]/spaceSpawnDepth
		if prox < 0.05 {
			continue
		}
		px := cx + (e.Position[0]-s.Position[0])*prox*0.6
		py := cy + (e.Position[1]-s.Position[1])*prox*0.3
		tri := geometry.Transform(geometry.Vertices(geometry.Triangle), e.Size*prox, e.Rotation[0], px, py)
		if s.RenderMode == state.RenderFlat {
			dst.GlowText(int(px), int(py), "▲", e.Color, prox)
		} else {
			dst.StrokeShape(tri, e.Color)
		}
	}

	player := geometry.Transform(geometry.Vertices(geometry.Triangle), 3, s.Rotation[0], cx, cy)
	dst.FillShape(player, s.Color)

	dst.GlowText(2, 0, fmt.Sprintf("pass %d/%d", m.passes, m.cfg.AscendPasses), core.White, 0)
	dst.Tunnel(float64(m.passes), core.Blue, 0.15)
}
