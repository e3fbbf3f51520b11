package tui

import (
	"strings"
	"testing"

	"github.com/arkadyvolkov/tui-ascend/internal/config"
	"github.com/arkadyvolkov/tui-ascend/internal/core"
	"github.com/arkadyvolkov/tui-ascend/internal/state"
)

func TestStatusLineShowsRunTallies(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Seed = 7
	m := NewPlayModel(state.Line, nil, cfg, config.DefaultTuning())

	m.driver.State().Streak = 5
	m.driver.Step(core.InputFrame{}, 0.001)

	line := m.statusLine()
	if !strings.Contains(line, "best 5") {
		t.Errorf("status line %q missing the best-streak tally", line)
	}

	// Death resets the run to Point; the line keeps the furthest reach.
	m.driver.State().Entities = []state.Entity{{
		ID:       1,
		Color:    core.Black,
		Position: [3]float64{0.5},
		Velocity: [3]float64{-1},
	}}
	m.driver.Step(core.InputFrame{}, 0.01)

	line = m.statusLine()
	if !strings.Contains(line, "Point") {
		t.Errorf("status line %q should show the reborn dimension", line)
	}
	if !strings.Contains(line, "peak Line") {
		t.Errorf("status line %q missing the furthest reach", line)
	}
}

func TestSaturationBarWidth(t *testing.T) {
	if got := saturationBar(0.5, 10); len([]rune(got)) != 10 {
		t.Errorf("bar %q should be exactly 10 runes", got)
	}
	if got := saturationBar(-1, 10); strings.ContainsRune(got, '█') {
		t.Errorf("bar %q should be empty for negative saturation", got)
	}
}
