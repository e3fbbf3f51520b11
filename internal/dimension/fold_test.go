package dimension

import (
	"math/rand"
	"testing"

	"github.com/arkadyvolkov/tui-ascend/internal/config"
	"github.com/arkadyvolkov/tui-ascend/internal/core"
	"github.com/arkadyvolkov/tui-ascend/internal/events"
	"github.com/arkadyvolkov/tui-ascend/internal/state"
)

func newFoldForTest() (*foldModule, *state.GameState) {
	m := newFold(config.DefaultTuning().Fold, events.NewBus(), rand.New(rand.NewSource(23)))
	s := state.New()
	m.Init(s)
	return m, s
}

// ringAt builds a ring entity at its phase point with the given radius.
func ringAt(c core.Color, size float64) state.Entity {
	return state.Entity{ID: 1, Color: c, Position: [3]float64{0}, Size: size}
}

func TestFoldSizeWithinToleranceMatches(t *testing.T) {
	m, s := newFoldForTest()
	s.Color = core.Red
	s.Scale = 100

	m.phase(s, ringAt(core.Red, 100+m.cfg.SizeTolerance))

	if m.phases != 1 {
		t.Errorf("phases = %d, expected boundary size to match", m.phases)
	}
}

func TestFoldSizeBeyondToleranceIsPartial(t *testing.T) {
	m, s := newFoldForTest()
	s.Color = core.Red
	s.Scale = 100
	s.Saturation = 1

	m.phase(s, ringAt(core.Red, 100+m.cfg.SizeTolerance+1))

	if m.phases != 0 {
		t.Error("oversize ring must not count as a phase")
	}
	if s.Saturation != 1-m.cfg.Ladder.PartialPenalty {
		t.Errorf("saturation = %v, expected partial penalty (color alone)", s.Saturation)
	}
}

func TestFoldNeitherCriterionIsMismatch(t *testing.T) {
	m, s := newFoldForTest()
	s.Color = core.Red
	s.Scale = 100
	s.Saturation = 1

	m.phase(s, ringAt(core.Green, 170))

	if s.Saturation != 1-m.cfg.Ladder.MismatchPenalty {
		t.Errorf("saturation = %v, expected mismatch penalty", s.Saturation)
	}
}

func TestFoldBlackRingIsLethal(t *testing.T) {
	m, s := newFoldForTest()
	m.phase(s, ringAt(core.Black, 100))

	if s.Saturation != 0 || !m.CheckDeath(s) {
		t.Errorf("saturation = %v, expected lethal void", s.Saturation)
	}
}

func TestFoldScaleClampedToBounds(t *testing.T) {
	m, s := newFoldForTest()

	for range 1000 {
		m.steer(s, core.InputFrame{Expand: true}, 0.1)
	}
	if s.Scale != m.cfg.MaxScale {
		t.Errorf("scale = %v, expected clamp at %v", s.Scale, m.cfg.MaxScale)
	}

	for range 1000 {
		m.steer(s, core.InputFrame{Contract: true}, 0.1)
	}
	if s.Scale != m.cfg.MinScale {
		t.Errorf("scale = %v, expected clamp at %v", s.Scale, m.cfg.MinScale)
	}
}

func TestFoldAscensionThreshold(t *testing.T) {
	m, s := newFoldForTest()
	s.Color = core.Red
	s.Scale = 100

	for i := 0; i < m.cfg.AscendPhases; i++ {
		if m.CheckAscension(s) {
			t.Fatalf("ascended after %d phases", i)
		}
		m.phase(s, ringAt(core.Red, 100))
	}
	if !m.CheckAscension(s) {
		t.Errorf("expected ascension after %d phases", m.cfg.AscendPhases)
	}
}
