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

// nebulaModule is dimension 5: density clouds drift toward the player,
// who tunes density, scale, and rotation. A merge succeeds when the
// density difference is within tolerance and the colors resonate. Clouds
// are module-private: their collision rule is the merge, not contact.
type nebulaModule struct {
	cfg config.NebulaTuning
	bus *events.Bus
	rng *rand.Rand

	clouds     []state.Cloud
	cloudTimer float64
	merges     int
	nextID     uint64
}

func newNebula(cfg config.NebulaTuning, bus *events.Bus, rng *rand.Rand) *nebulaModule {
	return &nebulaModule{cfg: cfg, bus: bus, rng: rng}
}

func (m *nebulaModule) Dimension() state.Dimension { return state.Nebula }

const cloudSpawnDistance = 80.0

func (m *nebulaModule) Init(s *state.GameState) {
	s.ResetKinematics(0, 1)
	s.Dimension = state.Nebula
	s.Entities = nil
	s.Symbol = "※"
	s.Density = 0.5
	s.Scale = 10

	m.clouds = nil
	m.cloudTimer = 0
	m.merges = 0
}

func (m *nebulaModule) Update(s *state.GameState, in core.InputFrame, dt float64) {
	m.steer(s, in, dt)

	// Spawn.
	m.cloudTimer += dt
	if m.cloudTimer >= m.cfg.CloudInterval {
		m.cloudTimer -= m.cfg.CloudInterval
		m.clouds = append(m.clouds, m.spawnCloud())
	}

	// Advance.
	for i := range m.clouds {
		m.clouds[i].Distance -= m.clouds[i].Speed * dt
	}

	// Merge, then retire.
	kept := m.clouds[:0]
	for _, c := range m.clouds {
		if c.Distance > 0 {
			kept = append(kept, c)
			continue
		}
		m.merge(s, c)
	}
	m.clouds = kept
}

func (m *nebulaModule) steer(s *state.GameState, in core.InputFrame, dt float64) {
	if in.DensityUp {
		s.Density += m.cfg.DensityRate * dt
	}
	if in.DensityDown {
		s.Density -= m.cfg.DensityRate * dt
	}
	s.Density = core.ClampF(s.Density, 0, 1)

	if in.Expand {
		s.Scale += m.cfg.ScaleSpeed * dt
	}
	if in.Contract {
		s.Scale -= m.cfg.ScaleSpeed * dt
	}
	s.Scale = core.ClampF(s.Scale, 4, 30)

	if in.RotateLeft {
		s.Rotation[0] -= m.cfg.RotateSpeed * dt
	}
	if in.RotateRight {
		s.Rotation[0] += m.cfg.RotateSpeed * dt
	}
	s.Rotation[0] = geometry.NormalizeAngle(s.Rotation[0])
}

// merge judges a cloud reaching the player.
func (m *nebulaModule) merge(s *state.GameState, c state.Cloud) {
	if c.Color == core.Black {
		applyOutcome(s, core.OutcomeVoid, m.cfg.Ladder, m.bus)
		return
	}

	dense := math.Abs(c.Density-s.Density) <= m.cfg.DensityTolerance
	grade := core.MatchColors(s.Color, c.Color)

	var o core.Outcome
	switch {
	case dense && grade.Success():
		o = core.GradeOutcome(grade)
	case dense || grade.Success():
		o = core.OutcomePartial
	default:
		o = core.OutcomeMismatch
	}

	if applyOutcome(s, o, m.cfg.Ladder, m.bus) {
		m.merges++
	}
}

func (m *nebulaModule) CheckAscension(_ *state.GameState) bool {
	return m.merges >= m.cfg.AscendMerges
}

func (m *nebulaModule) CheckDeath(s *state.GameState) bool {
	return s.Dead()
}

func (m *nebulaModule) SpawnEntities() []state.Entity { return nil }

func (m *nebulaModule) spawnCloud() state.Cloud {
	m.nextID++
	return state.Cloud{
		ID:       m.nextID,
		Color:    obstacleColor(m.rng, 0.08),
		Distance: cloudSpawnDistance,
		Speed:    m.cfg.DriftSpeed,
		Density:  m.rng.Float64(),
		Size:     6 + m.rng.Float64()*8,
	}
}

func (m *nebulaModule) Render(dst render.Surface, s *state.GameState) {
	w, h := dst.Size()
	cx, cy := float64(w)/2, float64(h)/2

	for _, c := range m.clouds {
		prox := 1 - c.Distance/cloudSpawnDistance
		// Clouds condense from the edge toward the player.
		x := cx + (1-prox)*(cx-4)
		if s.RenderMode == state.RenderFlat {
			dst.GlowText(int(x), int(cy), "※", c.Color, c.Density)
		} else {
			dst.Glow(x, cy, c.Size*prox+2, c.Color, 0.3+0.7*c.Density)
		}
	}

	// The player cloud: glow radius tracks scale, intensity tracks density.
	dst.Glow(cx/2, cy, s.Scale/3+1, s.Color, 0.2+0.8*s.Density)

	dst.GlowText(2, 0, fmt.Sprintf("merge %d/%d  density %.2f", m.merges, m.cfg.AscendMerges, s.Density), core.White, 0)
	dst.Distort(s.Rotation[0], 0.3)
}
