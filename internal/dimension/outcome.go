package dimension

import (
	"github.com/arkadyvolkov/tui-ascend/internal/config"
	"github.com/arkadyvolkov/tui-ascend/internal/core"
	"github.com/arkadyvolkov/tui-ascend/internal/events"
	"github.com/arkadyvolkov/tui-ascend/internal/state"
)

// applyOutcome applies exactly one rung of the four-outcome ladder to the
// shared state, with the magnitudes the dimension was tuned with, and
// publishes the match event. It returns whether the outcome counts
// toward the dimension's success threshold.
func applyOutcome(s *state.GameState, o core.Outcome, lad config.Ladder, bus *events.Bus) bool {
	switch {
	case o.Success():
		s.AddSaturation(lad.SaturationGain)
		s.Streak++
		s.Score += lad.BaseScore * s.Streak
	case o == core.OutcomeVoid:
		s.Saturation = 0
		s.Streak = 0
	case o == core.OutcomePartial:
		s.AddSaturation(-lad.PartialPenalty)
		s.Streak = 0
	default:
		s.AddSaturation(-lad.MismatchPenalty)
		s.Streak = 0
	}

	bus.Publish(events.Match{Result: o, Color: s.Color})
	return o.Success()
}
