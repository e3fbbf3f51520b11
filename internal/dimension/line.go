package dimension

import (
	"fmt"
	"math/rand"

	"github.com/arkadyvolkov/tui-ascend/internal/config"
	"github.com/arkadyvolkov/tui-ascend/internal/core"
	"github.com/arkadyvolkov/tui-ascend/internal/events"
	"github.com/arkadyvolkov/tui-ascend/internal/render"
	"github.com/arkadyvolkov/tui-ascend/internal/state"
)

// lineModule is dimension 1: points travel along a single axis toward
// the player's fixed origin and are judged by color resonance at
// contact. Each success extends the player's accumulated line; the line
// reaching its target length ascends. A black point zeroes saturation at
// contact unless the phase input is held — the only dodge in the game.
type lineModule struct {
	cfg config.LineTuning
	bus *events.Bus
	rng *rand.Rand

	spawnTimer float64
	lineLength float64
	nextID     uint64
}

func newLine(cfg config.LineTuning, bus *events.Bus, rng *rand.Rand) *lineModule {
	return &lineModule{cfg: cfg, bus: bus, rng: rng}
}

func (m *lineModule) Dimension() state.Dimension { return state.Line }

// lineSpawnDistance is where new points appear on the axis.
const lineSpawnDistance = 100.0

func (m *lineModule) Init(s *state.GameState) {
	s.ResetKinematics(1, 0)
	s.Entities = nil
	s.Dimension = state.Line
	s.Symbol = "—"

	m.spawnTimer = 0
	m.lineLength = 0
}

func (m *lineModule) Update(s *state.GameState, in core.InputFrame, dt float64) {
	// Spawn.
	m.spawnTimer += dt
	if m.spawnTimer >= m.cfg.SpawnInterval {
		m.spawnTimer -= m.cfg.SpawnInterval
		s.Entities = append(s.Entities, m.SpawnEntities()...)
	}

	// Advance.
	for i := range s.Entities {
		s.Entities[i].Position[0] += s.Entities[i].Velocity[0] * dt
	}

	// Collide, then retire resolved and passed entities in one filter.
	kept := s.Entities[:0]
	for _, e := range s.Entities {
		if e.Position[0] > m.cfg.ContactRadius {
			kept = append(kept, e)
			continue
		}
		m.contact(s, e, in)
	}
	s.Entities = kept
}

// contact resolves one point reaching the player.
func (m *lineModule) contact(s *state.GameState, e state.Entity, in core.InputFrame) {
	if e.Color == core.Black {
		if in.Phase {
			// Phased through: the point passes without an outcome.
			return
		}
		applyOutcome(s, core.OutcomeVoid, m.cfg.Ladder, m.bus)
		return
	}

	o := core.GradeOutcome(core.MatchColors(s.Color, e.Color))
	if applyOutcome(s, o, m.cfg.Ladder, m.bus) {
		m.lineLength += m.cfg.SegmentLength
	}
}

func (m *lineModule) CheckAscension(_ *state.GameState) bool {
	return m.lineLength >= m.cfg.TargetLength
}

func (m *lineModule) CheckDeath(s *state.GameState) bool {
	return s.Dead()
}

func (m *lineModule) SpawnEntities() []state.Entity {
	m.nextID++
	return []state.Entity{{
		ID:       m.nextID,
		Color:    obstacleColor(m.rng, m.cfg.BlackChance),
		Position: [3]float64{lineSpawnDistance},
		Velocity: [3]float64{-m.cfg.ApproachSpeed},
		Size:     1,
	}}
}

func (m *lineModule) Render(dst render.Surface, s *state.GameState) {
	w, h := dst.Size()
	cy := h / 2
	originX := 6.0

	// The accumulated line grows from the origin.
	grown := int(m.lineLength / m.cfg.TargetLength * float64(w-12))
	for x := 0; x < grown; x++ {
		dst.GlowText(int(originX)+x, cy, "─", s.Color, 0)
	}

	// Approaching points, scaled onto the remaining width.
	for _, e := range s.Entities {
		x := originX + e.Position[0]/lineSpawnDistance*float64(w-12)
		if s.RenderMode == state.RenderFlat {
			dst.GlowText(int(x), cy, "●", e.Color, 0)
		} else {
			dst.Glow(x, float64(cy), 1.5, e.Color, 0.8)
		}
	}

	dst.Glow(originX, float64(cy), 2, s.Color, 1)
	dst.GlowText(2, 0, fmt.Sprintf("line %.0f/%.0f", m.lineLength, m.cfg.TargetLength), core.White, 0)
	dst.Scanlines(0.3)
}
