package dimension

import (
	"testing"

	"github.com/arkadyvolkov/tui-ascend/internal/config"
	"github.com/arkadyvolkov/tui-ascend/internal/core"
	"github.com/arkadyvolkov/tui-ascend/internal/events"
	"github.com/arkadyvolkov/tui-ascend/internal/state"
)

var testLadder = config.Ladder{
	BaseScore:       10,
	SaturationGain:  0.05,
	PartialPenalty:  0.1,
	MismatchPenalty: 0.2,
}

func TestOutcomeLadderPerfectRun(t *testing.T) {
	s := state.New()
	s.Saturation = 0.5

	prevSat := s.Saturation
	for i := 1; i <= 30; i++ {
		applyOutcome(s, core.OutcomePerfect, testLadder, nil)

		if s.Saturation < prevSat {
			t.Fatalf("saturation decreased on perfect outcome: %v -> %v", prevSat, s.Saturation)
		}
		if s.Saturation > 1 {
			t.Fatalf("saturation exceeded cap: %v", s.Saturation)
		}
		if s.Streak != i {
			t.Fatalf("streak = %d after %d perfects", s.Streak, i)
		}
		prevSat = s.Saturation
	}

	// Score is base * streak per rung: 10 * (1+2+...+30).
	if want := 10 * 30 * 31 / 2; s.Score != want {
		t.Errorf("score = %d, expected %d", s.Score, want)
	}
}

func TestOutcomeLadderResets(t *testing.T) {
	tests := []struct {
		name    string
		outcome core.Outcome
		satDrop float64
	}{
		{"partial resets streak", core.OutcomePartial, testLadder.PartialPenalty},
		{"mismatch resets streak", core.OutcomeMismatch, testLadder.MismatchPenalty},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := state.New()
			s.Streak = 7
			s.Saturation = 0.9

			applyOutcome(s, tc.outcome, testLadder, nil)

			if s.Streak != 0 {
				t.Errorf("streak = %d, expected 0", s.Streak)
			}
			if want := 0.9 - tc.satDrop; s.Saturation != want {
				t.Errorf("saturation = %v, expected %v", s.Saturation, want)
			}
		})
	}
}

func TestOutcomeLadderVoid(t *testing.T) {
	s := state.New()
	s.Streak = 12
	s.Saturation = 1

	applyOutcome(s, core.OutcomeVoid, testLadder, nil)

	if s.Saturation != 0 {
		t.Errorf("saturation = %v, expected exactly 0", s.Saturation)
	}
	if s.Streak != 0 {
		t.Errorf("streak = %d, expected 0", s.Streak)
	}
	if !s.Dead() {
		t.Error("void outcome must flag death")
	}
}

func TestOutcomeEventEmission(t *testing.T) {
	bus := events.NewBus()
	var got []core.Outcome
	bus.Subscribe(func(e events.Event) {
		if m, ok := e.(events.Match); ok {
			got = append(got, m.Result)
		}
	})

	s := state.New()
	applyOutcome(s, core.OutcomePerfect, testLadder, bus)
	applyOutcome(s, core.OutcomeMismatch, testLadder, bus)

	if len(got) != 2 || got[0] != core.OutcomePerfect || got[1] != core.OutcomeMismatch {
		t.Errorf("match events = %v", got)
	}
}

func TestWhiteCountsAsSuccess(t *testing.T) {
	s := state.New()
	applyOutcome(s, core.OutcomeWhite, testLadder, nil)
	if s.Streak != 1 {
		t.Errorf("white outcome should increment streak, got %d", s.Streak)
	}
}
