package dimension

import (
	"math"
	"math/rand"
	"testing"

	"github.com/arkadyvolkov/tui-ascend/internal/config"
	"github.com/arkadyvolkov/tui-ascend/internal/core"
	"github.com/arkadyvolkov/tui-ascend/internal/events"
	"github.com/arkadyvolkov/tui-ascend/internal/geometry"
	"github.com/arkadyvolkov/tui-ascend/internal/state"
)

func newPlaneForTest() (*planeModule, *state.GameState) {
	m := newPlane(config.DefaultTuning().Plane, events.NewBus(), rand.New(rand.NewSource(11)))
	s := state.New()
	m.Init(s)
	return m, s
}

// testWall builds a wall already at the pass plane.
func testWall(hole geometry.Shape, rotation, offset float64) state.Wall {
	return state.Wall{
		ID:           1,
		Color:        core.Blue,
		Depth:        0,
		Speed:        1,
		HoleType:     hole,
		HoleRotation: rotation,
		HoleScale:    8,
		HoleOffset:   offset,
	}
}

func TestPlaneSquareQuarterTurnIsFullMatch(t *testing.T) {
	// A square hole rotated a quarter turn is an exact symmetry rotation
	// of the player's unrotated square: centered, this must be a full
	// match.
	m, s := newPlaneForTest()
	m.SetShape(geometry.Square)
	s.Rotation[0] = 0
	s.Position[0] = 0
	s.Saturation = 0.5

	m.pass(s, testWall(geometry.Square, math.Pi/2, 0))

	if s.Saturation <= 0.5 {
		t.Errorf("saturation = %v, expected increase on full match", s.Saturation)
	}
	if s.Streak != 1 {
		t.Errorf("streak = %d, expected 1", s.Streak)
	}
	if m.passes != 1 {
		t.Errorf("passes = %d, expected 1", m.passes)
	}
}

func TestPlaneWrongRotationIsPartial(t *testing.T) {
	m, s := newPlaneForTest()
	m.SetShape(geometry.Square)
	s.Rotation[0] = math.Pi / 4 // an eighth turn never aligns a square
	s.Saturation = 1
	s.Streak = 5

	m.pass(s, testWall(geometry.Square, 0, 0))

	if s.Streak != 0 {
		t.Errorf("streak = %d, expected reset", s.Streak)
	}
	if s.Saturation != 1-m.cfg.Ladder.PartialPenalty {
		t.Errorf("saturation = %v, expected partial penalty", s.Saturation)
	}
	if m.passes != 0 {
		t.Error("partial credit must not count as a pass")
	}
}

func TestPlaneWrongShapeIsMismatch(t *testing.T) {
	m, s := newPlaneForTest()
	m.SetShape(geometry.Triangle)
	s.Saturation = 1

	m.pass(s, testWall(geometry.Square, 0, 0))

	if s.Saturation != 1-m.cfg.Ladder.MismatchPenalty {
		t.Errorf("saturation = %v, expected mismatch penalty", s.Saturation)
	}
}

func TestPlaneOffCenterMissesHole(t *testing.T) {
	m, s := newPlaneForTest()
	m.SetShape(geometry.Square)
	s.Rotation[0] = 0
	s.Position[0] = 0

	// Hole far to the side: right shape and rotation, wrong place.
	m.pass(s, testWall(geometry.Square, 0, 25))

	if m.passes != 0 {
		t.Error("a silhouette outside the hole must not pass")
	}
	if s.Streak != 0 {
		t.Errorf("streak = %d, expected reset", s.Streak)
	}
}

func TestPlaneCircleIgnoresRotation(t *testing.T) {
	m, s := newPlaneForTest()
	m.SetShape(geometry.Circle)
	s.Rotation[0] = 1.234

	m.pass(s, testWall(geometry.Circle, 4.321, 0))

	if m.passes != 1 {
		t.Error("circle must match any hole rotation")
	}
}

func TestPlaneShapeCyclingDebounce(t *testing.T) {
	m, s := newPlaneForTest()
	start := m.Shape()

	held := core.InputFrame{CycleNext: true}
	m.Update(s, held, 0.01)
	first := m.Shape()
	if first == start {
		t.Fatal("cycle input should advance the shape")
	}

	// Holding the key across frames must not cycle again.
	m.Update(s, held, 0.01)
	if m.Shape() != first {
		t.Error("held cycle key must not re-trigger")
	}

	// Releasing and pressing again advances once more.
	m.Update(s, core.InputFrame{}, 0.01)
	m.Update(s, held, 0.01)
	if m.Shape() == first {
		t.Error("re-press after release should cycle")
	}
}

func TestPlaneAscensionThreshold(t *testing.T) {
	m, s := newPlaneForTest()
	m.SetShape(geometry.Square)

	for i := 0; i < m.cfg.AscendPasses; i++ {
		if m.CheckAscension(s) {
			t.Fatalf("ascended after %d passes", i)
		}
		m.pass(s, testWall(geometry.Square, 0, 0))
	}
	if !m.CheckAscension(s) {
		t.Errorf("expected ascension after %d passes", m.cfg.AscendPasses)
	}
}

func TestPlaneRotationNormalizedInSteering(t *testing.T) {
	m, s := newPlaneForTest()
	for range 100 {
		m.steer(s, core.InputFrame{RotateRight: true}, 0.1)
	}
	if s.Rotation[0] < 0 || s.Rotation[0] >= 2*math.Pi {
		t.Errorf("rotation %v left [0, 2π)", s.Rotation[0])
	}
}
