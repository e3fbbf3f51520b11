package dimension

import (
	"testing"

	"github.com/arkadyvolkov/tui-ascend/internal/config"
	"github.com/arkadyvolkov/tui-ascend/internal/core"
	"github.com/arkadyvolkov/tui-ascend/internal/state"
)

func TestInfiniteNeverAscendsNorDies(t *testing.T) {
	m := newInfinite(config.DefaultTuning().Infinite)
	s := state.New()
	m.Init(s)

	s.Saturation = 0 // even at zero saturation the infinite stage persists
	for range 100 {
		m.Update(s, core.InputFrame{}, 1.0)
	}

	if m.CheckAscension(s) {
		t.Error("infinite stage must never ascend")
	}
	if m.CheckDeath(s) {
		t.Error("infinite stage must never die")
	}
}

func TestInfiniteStillnessAccumulates(t *testing.T) {
	m := newInfinite(config.DefaultTuning().Infinite)
	s := state.New()
	m.Init(s)

	if s.StillnessTimer != 0 {
		t.Fatalf("Init should zero the stillness timer, got %v", s.StillnessTimer)
	}

	m.Update(s, core.InputFrame{Left: true, Phase: true}, 2.5)
	m.Update(s, core.InputFrame{}, 2.5)

	if s.StillnessTimer != 5 {
		t.Errorf("stillness = %v, expected 5 (input must not affect it)", s.StillnessTimer)
	}
}

func TestInfiniteInitResetsCountdown(t *testing.T) {
	m := newInfinite(config.DefaultTuning().Infinite)
	s := state.New()
	m.Init(s)

	m.Update(s, core.InputFrame{}, 6)
	m.Init(s) // the driver may cancel the countdown by re-invoking Init

	if s.StillnessTimer != 0 {
		t.Errorf("stillness = %v after re-Init, expected 0", s.StillnessTimer)
	}
}
