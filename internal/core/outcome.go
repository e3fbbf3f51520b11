package core

// Outcome is one rung of the four-outcome ladder every dimension applies
// to a discrete event (beat tick, collision, pass). Perfect and white
// both count as success; partial means the right category with a wrong
// secondary attribute (rotation, size, density, offset); void is the
// black instant-death case.
type Outcome int

const (
	OutcomePerfect Outcome = iota
	OutcomeWhite
	OutcomePartial
	OutcomeMismatch
	OutcomeVoid
)

// String returns the outcome name used in event payloads.
func (o Outcome) String() string {
	switch o {
	case OutcomePerfect:
		return "perfect"
	case OutcomeWhite:
		return "white"
	case OutcomePartial:
		return "partial"
	case OutcomeMismatch:
		return "mismatch"
	case OutcomeVoid:
		return "void"
	default:
		return "unknown"
	}
}

// Success reports whether the outcome sits on the winning rung.
func (o Outcome) Success() bool {
	return o == OutcomePerfect || o == OutcomeWhite
}

// GradeOutcome lifts a pure color comparison onto the ladder, for
// dimensions whose match has no secondary attribute.
func GradeOutcome(g MatchGrade) Outcome {
	switch g {
	case Perfect:
		return OutcomePerfect
	case WhiteMatch:
		return OutcomeWhite
	case Void:
		return OutcomeVoid
	default:
		return OutcomeMismatch
	}
}
