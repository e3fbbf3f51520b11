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

// planeModule is dimension 2: walls with shaped holes approach the
// player, who moves laterally, rotates continuously, and cycles through
// the shape archetypes. A pass succeeds when the shape type matches, the
// rotation matches up to the archetype's symmetry, and the silhouette
// sits inside the hole. Walls live in a module-private list because
// their collision rule is the shape-fit test, not generic contact.
type planeModule struct {
	cfg config.PlaneTuning
	bus *events.Bus
	rng *rand.Rand

	walls     []state.Wall
	wallTimer float64
	passes    int
	nextID    uint64

	shape geometry.Shape
	// Shape cycling is a single-press intent: holding the key must not
	// spin through the archetypes, so edges are tracked here.
	prevHeld, nextHeld bool
}

func newPlane(cfg config.PlaneTuning, bus *events.Bus, rng *rand.Rand) *planeModule {
	return &planeModule{cfg: cfg, bus: bus, rng: rng}
}

func (m *planeModule) Dimension() state.Dimension { return state.Plane }

const (
	wallSpawnDepth   = 100.0
	planeLateralSpan = 30.0 // player movement bound, world units
)

func (m *planeModule) Init(s *state.GameState) {
	s.ResetKinematics(1, 1)
	s.Entities = nil
	s.Dimension = state.Plane
	s.Symbol = "□"

	m.walls = nil
	m.wallTimer = 0
	m.passes = 0
	m.shape = geometry.Circle
	m.prevHeld, m.nextHeld = false, false
}

// SetShape overrides the player's archetype; used when re-entering the
// dimension from the menu with a preferred silhouette.
func (m *planeModule) SetShape(sh geometry.Shape) { m.shape = sh }

// Shape returns the player's current archetype.
func (m *planeModule) Shape() geometry.Shape { return m.shape }

func (m *planeModule) Update(s *state.GameState, in core.InputFrame, dt float64) {
	m.steer(s, in, dt)

	// Spawn.
	m.wallTimer += dt
	if m.wallTimer >= m.cfg.WallInterval {
		m.wallTimer -= m.cfg.WallInterval
		m.walls = append(m.walls, m.spawnWall())
	}

	// Advance.
	for i := range m.walls {
		m.walls[i].Depth -= m.walls[i].Speed * dt
	}

	// Collide at the pass plane, then retire.
	kept := m.walls[:0]
	for _, w := range m.walls {
		if w.Depth > 0 {
			kept = append(kept, w)
			continue
		}
		m.pass(s, w)
	}
	m.walls = kept
}

// steer applies lateral movement, rotation, and debounced shape cycling.
func (m *planeModule) steer(s *state.GameState, in core.InputFrame, dt float64) {
	if in.Left {
		s.Position[0] -= m.cfg.LateralSpeed * dt
	}
	if in.Right {
		s.Position[0] += m.cfg.LateralSpeed * dt
	}
	s.Position[0] = core.ClampF(s.Position[0], -planeLateralSpan, planeLateralSpan)

	if in.RotateLeft {
		s.Rotation[0] -= m.cfg.RotateSpeed * dt
	}
	if in.RotateRight {
		s.Rotation[0] += m.cfg.RotateSpeed * dt
	}
	s.Rotation[0] = geometry.NormalizeAngle(s.Rotation[0])

	if in.CyclePrev && !m.prevHeld {
		m.cycleShape(s, -1)
	}
	if in.CycleNext && !m.nextHeld {
		m.cycleShape(s, 1)
	}
	m.prevHeld = in.CyclePrev
	m.nextHeld = in.CycleNext
}

func (m *planeModule) cycleShape(s *state.GameState, step int) {
	n := len(geometry.Shapes)
	idx := 0
	for i, sh := range geometry.Shapes {
		if sh == m.shape {
			idx = i
			break
		}
	}
	m.shape = geometry.Shapes[((idx+step)%n+n)%n]
	m.bus.Publish(events.Shift{Color: s.Color})
}

func (m *planeModule) spawnWall() state.Wall {
	m.nextID++
	return state.Wall{
		ID:           m.nextID,
		Color:        obstacleColor(m.rng, 0),
		Depth:        wallSpawnDepth,
		Speed:        m.cfg.WallSpeed,
		HoleType:     geometry.Shapes[m.rng.Intn(len(geometry.Shapes))],
		HoleRotation: m.rng.Float64() * 2 * math.Pi,
		HoleScale:    m.cfg.HoleHalfWidth,
		HoleOffset:   (m.rng.Float64()*2 - 1) * planeLateralSpan * 0.7,
	}
}

// pass evaluates the player silhouette against a wall that reached the
// pass plane. Full match needs type, symmetry-aware rotation, and
// lateral containment; right type with a mostly-covered silhouette is
// partial credit.
func (m *planeModule) pass(s *state.GameState, w state.Wall) {
	rotMatch := geometry.RotationsMatch(m.shape, s.Rotation[0], w.HoleRotation, m.cfg.RotationTolerance)

	silhouette := geometry.Transform(geometry.Vertices(m.shape), w.HoleScale*0.8, s.Rotation[0], s.Position[0], 0)
	hole := geometry.Transform(geometry.Vertices(w.HoleType), w.HoleScale, w.HoleRotation, w.HoleOffset, 0)
	fit := geometry.ShapeFit(m.shape, w.HoleType, silhouette, hole, m.cfg.FitTolerance)

	var o core.Outcome
	switch {
	case fit.TypeMatch && rotMatch && fit.Contained:
		// Wall color is cosmetic in this dimension; the fit decides.
		o = core.OutcomePerfect
	case fit.TypeMatch && fit.Coverage >= 0.5:
		o = core.OutcomePartial
	default:
		o = core.OutcomeMismatch
	}

	if applyOutcome(s, o, m.cfg.Ladder, m.bus) {
		m.passes++
	}
}

func (m *planeModule) CheckAscension(_ *state.GameState) bool {
	return m.passes >= m.cfg.AscendPasses
}

func (m *planeModule) CheckDeath(s *state.GameState) bool {
	return s.Dead()
}

func (m *planeModule) SpawnEntities() []state.Entity { return nil }

func (m *planeModule) Render(dst render.Surface, s *state.GameState) {
	w, h := dst.Size()
	cx, cy := float64(w)/2, float64(h)/2

	// Walls draw back to front, scaled by proximity.
	for i := len(m.walls) - 1; i >= 0; i-- {
		wall := m.walls[i]
		prox := 1 - wall.Depth/wallSpawnDepth // 0 far, 1 at the plane
		scale := wall.HoleScale * prox * 0.6
		if scale < 0.5 {
			continue
		}
		hole := geometry.Transform(geometry.Vertices(wall.HoleType), scale, wall.HoleRotation,
			cx+wall.HoleOffset*prox, cy)
		dst.StrokeShape(hole, wall.Color)
	}

	// Player silhouette at the pass plane.
	sil := geometry.Transform(geometry.Vertices(m.shape), m.cfg.HoleHalfWidth*0.5, s.Rotation[0],
		cx+s.Position[0], cy)
	if s.RenderMode == state.RenderFlat {
		dst.GlowText(int(cx+s.Position[0]), int(cy), s.Symbol, s.Color, 0.5)
	} else {
		dst.FillShape(sil, s.Color)
	}

	dst.GlowText(2, 0, fmt.Sprintf("pass %d/%d  shape %s", m.passes, m.cfg.AscendPasses, m.shape), core.White, 0)
	dst.Vignette(0.4)
}
