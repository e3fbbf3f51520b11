package dimension

import (
	"math/rand"
	"testing"

	"github.com/arkadyvolkov/tui-ascend/internal/config"
	"github.com/arkadyvolkov/tui-ascend/internal/core"
	"github.com/arkadyvolkov/tui-ascend/internal/events"
	"github.com/arkadyvolkov/tui-ascend/internal/state"
)

func newLineForTest() (*lineModule, *state.GameState) {
	m := newLine(config.DefaultTuning().Line, events.NewBus(), rand.New(rand.NewSource(5)))
	s := state.New()
	m.Init(s)
	return m, s
}

// placeAtContact puts a single entity just inside the contact radius so
// the next update resolves it.
func placeAtContact(s *state.GameState, c core.Color) {
	s.Entities = []state.Entity{{
		ID:       1,
		Color:    c,
		Position: [3]float64{0.5},
		Velocity: [3]float64{-1},
	}}
}

func TestLineBlackContactWithoutPhaseIsLethal(t *testing.T) {
	m, s := newLineForTest()
	s.Color = core.Red
	s.Saturation = 1
	placeAtContact(s, core.Black)

	m.Update(s, core.InputFrame{}, 0.01)

	if s.Saturation != 0 {
		t.Errorf("saturation = %v, expected exactly 0", s.Saturation)
	}
	if len(s.Entities) != 0 {
		t.Error("black entity must be removed at contact")
	}
	if !m.CheckDeath(s) {
		t.Error("death must be flagged on the next check")
	}
}

func TestLinePhaseDodgesBlack(t *testing.T) {
	m, s := newLineForTest()
	s.Color = core.Red
	s.Streak = 4
	placeAtContact(s, core.Black)

	m.Update(s, core.InputFrame{Phase: true}, 0.01)

	if s.Saturation != 1 {
		t.Errorf("saturation = %v after dodge, expected untouched", s.Saturation)
	}
	if s.Streak != 4 {
		t.Errorf("streak = %d after dodge, expected preserved", s.Streak)
	}
	if len(s.Entities) != 0 {
		t.Error("dodged entity must still be retired")
	}
	if m.CheckDeath(s) {
		t.Error("dodge must avoid death")
	}
}

func TestLinePerfectContactGrowsLine(t *testing.T) {
	m, s := newLineForTest()
	s.Color = core.Green
	placeAtContact(s, core.Green)

	m.Update(s, core.InputFrame{}, 0.01)

	if m.lineLength != m.cfg.SegmentLength {
		t.Errorf("lineLength = %v, expected %v", m.lineLength, m.cfg.SegmentLength)
	}
	if s.Streak != 1 {
		t.Errorf("streak = %d, expected 1", s.Streak)
	}
}

func TestLineMismatchDoesNotGrow(t *testing.T) {
	m, s := newLineForTest()
	s.Color = core.Green
	s.Streak = 3
	placeAtContact(s, core.Blue)

	m.Update(s, core.InputFrame{}, 0.01)

	if m.lineLength != 0 {
		t.Errorf("lineLength = %v after mismatch, expected 0", m.lineLength)
	}
	if s.Streak != 0 {
		t.Errorf("streak = %d after mismatch, expected 0", s.Streak)
	}
}

func TestLineAscendsAtTargetLength(t *testing.T) {
	m, s := newLineForTest()
	s.Color = core.Green

	contacts := int(m.cfg.TargetLength / m.cfg.SegmentLength)
	for i := 0; i < contacts; i++ {
		if m.CheckAscension(s) {
			t.Fatalf("ascended after %d contacts", i)
		}
		placeAtContact(s, core.Green)
		m.Update(s, core.InputFrame{}, 0.01)
	}
	if !m.CheckAscension(s) {
		t.Errorf("expected ascension at line length %v", m.cfg.TargetLength)
	}
}

func TestLineSpawnAdvanceRetireOrdering(t *testing.T) {
	m, s := newLineForTest()

	// One full spawn interval produces exactly one entity, and it is not
	// collision-tested at its spawn edge in the same frame.
	m.Update(s, core.InputFrame{}, m.cfg.SpawnInterval)
	if len(s.Entities) != 1 {
		t.Fatalf("entities = %d after one interval, expected 1", len(s.Entities))
	}
	if s.Entities[0].Position[0] >= lineSpawnDistance {
		t.Error("spawned entity should have advanced within the same frame")
	}
	if s.Saturation != 1 || s.Streak != 0 {
		t.Error("no outcome should resolve for a just-spawned entity")
	}
}

func TestLineEmptyEntityListTolerated(t *testing.T) {
	m, s := newLineForTest()
	s.Entities = nil
	m.Update(s, core.InputFrame{}, 0.01) // must not panic
}
