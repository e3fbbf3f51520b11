// Package core provides fundamental types for the dimensional engine.
// It contains no external dependencies (especially no Bubble Tea) to keep
// gameplay logic pure and testable.
package core

// Color represents a chromatic state of the player or of an obstacle.
// White matches any chromatic color; black is the void and is handled by
// each dimension's instant-death special case before comparison.
type Color int

const (
	Red Color = iota
	Green
	Blue
	White
	Black
)

// PlayerColors lists the colors the player can cycle through.
// Black is never selectable.
var PlayerColors = []Color{Red, Green, Blue, White}

// String returns the lowercase color name.
func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "unknown"
	}
}

// Chromatic reports whether c is one of the three hue colors.
func (c Color) Chromatic() bool {
	return c == Red || c == Green || c == Blue
}

// MatchGrade is the qualitative outcome of comparing two colors.
type MatchGrade int

const (
	// Perfect means both operands are the same chromatic color.
	Perfect MatchGrade = iota
	// WhiteMatch means either operand is white and the other is not black.
	WhiteMatch
	// Mismatch means two distinct chromatic colors.
	Mismatch
	// Void means a black operand reached the comparator. Modules are
	// expected to special-case black before calling MatchColors, so this
	// value is a defensive fallback, not a gameplay signal.
	Void
)

// String returns a short name for the grade, used in event payloads.
func (g MatchGrade) String() string {
	switch g {
	case Perfect:
		return "perfect"
	case WhiteMatch:
		return "white"
	case Mismatch:
		return "mismatch"
	case Void:
		return "void"
	default:
		return "unknown"
	}
}

// Success reports whether the grade counts as a successful outcome
// (perfect or white) on the outcome ladder.
func (g MatchGrade) Success() bool {
	return g == Perfect || g == WhiteMatch
}

// MatchColors grades the resonance between the player's color and another.
// Identical chromatic colors are Perfect; a white operand paired with
// anything non-black is WhiteMatch; two distinct chromatic colors are a
// Mismatch. Black on either side yields Void.
func MatchColors(player, other Color) MatchGrade {
	if player == Black || other == Black {
		return Void
	}
	if player == other {
		if player == White {
			return WhiteMatch
		}
		return Perfect
	}
	if player == White || other == White {
		return WhiteMatch
	}
	return Mismatch
}
