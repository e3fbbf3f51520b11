// Package events carries gameplay transitions to external listeners
// (audio, telemetry, UI flashes). The simulation is single-threaded and
// frame-stepped, so the bus is a plain synchronous fan-out: publishing
// calls every subscriber before returning.
package events

import (
	"github.com/arkadyvolkov/tui-ascend/internal/core"
	"github.com/arkadyvolkov/tui-ascend/internal/state"
)

// Event is implemented by all gameplay event payloads.
type Event interface {
	gameEvent()
	// Name returns the event identifier consumed by listeners
	// ("beat", "match", "ascend", "drop", "rebirth", "shift").
	Name() string
}

// Beat is emitted by the point dimension on every beat tick.
type Beat struct {
	Color core.Color // the border color the beat was judged against
}

func (Beat) gameEvent()   {}
func (Beat) Name() string { return "beat" }

// Match is emitted whenever a discrete outcome resolves on the ladder.
type Match struct {
	Result core.Outcome
	Color  core.Color // player color at the moment of the match
}

func (Match) gameEvent()   {}
func (Match) Name() string { return "match" }

// Ascend is emitted when a dimension's success threshold is crossed.
type Ascend struct {
	To state.Dimension
}

func (Ascend) gameEvent()   {}
func (Ascend) Name() string { return "ascend" }

// Drop is emitted when saturation hits zero and the run ends. The
// payload carries the final tallies so listeners (storage, telemetry)
// need not track them separately.
type Drop struct {
	From       state.Dimension
	Score      int
	BestStreak int
}

func (Drop) gameEvent()   {}
func (Drop) Name() string { return "drop" }

// Rebirth is emitted when the run returns to dimension 0, either after
// death or after the infinite stage completes its stillness hold.
type Rebirth struct{}

func (Rebirth) gameEvent()   {}
func (Rebirth) Name() string { return "rebirth" }

// Shift is emitted when the player cycles color or shape.
type Shift struct {
	Color core.Color
}

func (Shift) gameEvent()   {}
func (Shift) Name() string { return "shift" }

// Listener consumes published events.
type Listener func(Event)

// Bus is a synchronous event fan-out. The zero value is usable; a nil
// *Bus is also safe to publish to, so gameplay code never has to check.
type Bus struct {
	listeners []Listener
}

// NewBus returns an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a listener for all subsequent events.
func (b *Bus) Subscribe(l Listener) {
	b.listeners = append(b.listeners, l)
}

// Publish delivers the event to every listener in subscription order.
func (b *Bus) Publish(e Event) {
	if b == nil {
		return
	}
	for _, l := range b.listeners {
		l(e)
	}
}
