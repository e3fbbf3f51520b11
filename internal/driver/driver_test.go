package driver

import (
	"testing"

	"github.com/arkadyvolkov/tui-ascend/internal/config"
	"github.com/arkadyvolkov/tui-ascend/internal/core"
	"github.com/arkadyvolkov/tui-ascend/internal/events"
	"github.com/arkadyvolkov/tui-ascend/internal/state"
)

func newDriverForTest(start state.Dimension) (*Driver, *events.Bus) {
	bus := events.NewBus()
	return New(start, config.DefaultTuning(), bus, 99), bus
}

func TestDriverStartsAtRequestedDimension(t *testing.T) {
	d, _ := newDriverForTest(state.Plane)
	if d.State().Dimension != state.Plane {
		t.Errorf("dimension = %v, expected Plane", d.State().Dimension)
	}
}

func TestDriverRejectsNonPositiveDt(t *testing.T) {
	d, _ := newDriverForTest(state.Point)
	before := *d.State()

	d.Step(core.InputFrame{}, 0)
	d.Step(core.InputFrame{}, -0.016)

	after := d.State()
	if after.Saturation != before.Saturation || after.Score != before.Score {
		t.Error("non-positive dt must be dropped without mutating state")
	}
}

func TestDriverDeathResetsToPointAndEmits(t *testing.T) {
	d, bus := newDriverForTest(state.Line)

	var names []string
	bus.Subscribe(func(e events.Event) {
		names = append(names, e.Name())
	})
	var drop events.Drop
	bus.Subscribe(func(e events.Event) {
		if ev, ok := e.(events.Drop); ok {
			drop = ev
		}
	})

	// Force a lethal contact: a black point at the player with no phase.
	st := d.State()
	st.Score = 420
	st.Entities = []state.Entity{{
		ID:       1,
		Color:    core.Black,
		Position: [3]float64{0.5},
		Velocity: [3]float64{-1},
	}}
	d.Step(core.InputFrame{}, 0.01)

	if got := d.State().Dimension; got != state.Point {
		t.Errorf("dimension = %v after death, expected reset to Point", got)
	}
	if d.State().Saturation != 1 {
		t.Errorf("saturation = %v after rebirth, expected 1", d.State().Saturation)
	}

	var sawDrop, sawRebirth bool
	for _, n := range names {
		if n == "drop" {
			sawDrop = true
		}
		if n == "rebirth" {
			sawRebirth = true
		}
	}
	if !sawDrop || !sawRebirth {
		t.Errorf("events = %v, expected drop and rebirth", names)
	}
	if drop.From != state.Line || drop.Score != 420 {
		t.Errorf("drop payload = %+v, expected From=Line Score=420", drop)
	}
}

func TestDriverAscensionAdvances(t *testing.T) {
	d, bus := newDriverForTest(state.Point)

	var ascend events.Ascend
	bus.Subscribe(func(e events.Event) {
		if ev, ok := e.(events.Ascend); ok {
			ascend = ev
		}
	})

	// Keep up the color chase until the point dimension ascends.
	// The beat border color is random, so follow it via beat events.
	var border core.Color
	bus.Subscribe(func(e events.Event) {
		if b, ok := e.(events.Beat); ok {
			border = b.Color
		}
	})

	tuning := config.DefaultTuning()
	deadline := 10000
	for d.State().Dimension == state.Point && deadline > 0 {
		if border != core.Black {
			d.SetColor(core.White) // white resonates with everything
		}
		d.Step(core.InputFrame{}, tuning.Point.BeatInterval)
		deadline--
	}

	if d.State().Dimension != state.Line {
		t.Fatalf("dimension = %v, expected ascension to Line", d.State().Dimension)
	}
	if ascend.To != state.Line {
		t.Errorf("ascend payload = %+v, expected To=Line", ascend)
	}
	if d.State().Axes != 1 || d.State().RotAxes != 0 {
		t.Errorf("arity = %d/%d after switch, expected 1/0", d.State().Axes, d.State().RotAxes)
	}
}

func TestDriverInfiniteLoopsBackToPoint(t *testing.T) {
	d, bus := newDriverForTest(state.Infinite)

	reborn := false
	bus.Subscribe(func(e events.Event) {
		if _, ok := e.(events.Rebirth); ok {
			reborn = true
		}
	})

	hold := config.DefaultTuning().Infinite.Hold
	for i := 0.0; i < hold+1; i += 0.1 {
		d.Step(core.InputFrame{}, 0.1)
	}

	if !reborn {
		t.Error("expected rebirth after the stillness hold")
	}
	if d.State().Dimension != state.Point {
		t.Errorf("dimension = %v, expected loop back to Point", d.State().Dimension)
	}
}

func TestDriverTalliesSurviveRebirth(t *testing.T) {
	d, _ := newDriverForTest(state.Line)

	d.State().Streak = 5
	d.Step(core.InputFrame{}, 0.001)
	if d.BestStreak() != 5 {
		t.Fatalf("best streak = %d, expected 5", d.BestStreak())
	}
	if d.Deepest() != state.Line {
		t.Fatalf("deepest = %v, expected Line", d.Deepest())
	}

	d.State().Entities = []state.Entity{{
		ID:       1,
		Color:    core.Black,
		Position: [3]float64{0.5},
		Velocity: [3]float64{-1},
	}}
	d.Step(core.InputFrame{}, 0.01)

	if d.State().Dimension != state.Point {
		t.Fatalf("dimension = %v after death, expected Point", d.State().Dimension)
	}
	if d.BestStreak() != 0 {
		t.Errorf("best streak = %d after death, expected reset to 0", d.BestStreak())
	}
	if d.Deepest() != state.Line {
		t.Errorf("deepest = %v after rebirth, expected Line to persist", d.Deepest())
	}
}

func TestDriverColorCycling(t *testing.T) {
	d, bus := newDriverForTest(state.Point)

	var shifts int
	bus.Subscribe(func(e events.Event) {
		if _, ok := e.(events.Shift); ok {
			shifts++
		}
	})

	first := d.State().Color
	d.CycleColor(1)
	if d.State().Color == first {
		t.Error("cycle must change the player color")
	}

	for range len(core.PlayerColors) - 1 {
		d.CycleColor(1)
	}
	if d.State().Color != first {
		t.Error("a full cycle must return to the starting color")
	}
	if shifts != len(core.PlayerColors) {
		t.Errorf("shift events = %d, expected %d", shifts, len(core.PlayerColors))
	}
}

func TestDriverRedshiftExcess(t *testing.T) {
	d, _ := newDriverForTest(state.Infinite) // infinite: no outcomes interfere
	d.State().Streak = config.DefaultTuning().RedshiftStreak

	d.Step(core.InputFrame{}, 0.01)

	if d.State().ExcessState != state.ExcessRedshift {
		t.Errorf("excess = %v, expected redshift at high streak", d.State().ExcessState)
	}
}

func TestDriverRenderModeToggle(t *testing.T) {
	d, _ := newDriverForTest(state.Point)

	d.ToggleRenderMode()
	if d.State().RenderMode != state.RenderFlat {
		t.Error("expected flat mode after toggle")
	}
	d.ToggleRenderMode()
	if d.State().RenderMode != state.RenderGeometric {
		t.Error("expected geometric mode after second toggle")
	}
}
