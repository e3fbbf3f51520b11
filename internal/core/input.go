package core

// InputFrame is the input record sampled once per simulation tick.
// Fields are plain booleans so dimension modules can read intents without
// knowing the key bindings that produced them. Single-press semantics
// (such as the shape-cycle debounce) are the consuming module's job,
// not the input source's.
type InputFrame struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool

	RotateLeft  bool
	RotateRight bool

	// CyclePrev/CycleNext step through the shape archetypes.
	CyclePrev bool
	CycleNext bool

	// Expand/Contract drive the radial scale in the fold dimension.
	Expand   bool
	Contract bool

	DensityUp   bool
	DensityDown bool

	// Phase is the timed dodge input; only the line dimension consumes it.
	Phase bool
}

// Any reports whether any gameplay intent is set this frame.
func (f InputFrame) Any() bool {
	return f != InputFrame{}
}
