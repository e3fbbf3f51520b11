package geometry

import "math"

// Rotation tolerances used by the dimension modules. Walls in the plane
// dimension demand the tighter fit; depth-projected triangles allow a
// slightly looser one.
const (
	RotationToleranceTight = 0.3
	RotationToleranceLoose = 0.4
)

// NormalizeAngle wraps an angle into [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// AngularDistance returns the minimal absolute distance between two
// angles, wrapping correctly across the 2π boundary.
func AngularDistance(a, b float64) float64 {
	d := math.Abs(NormalizeAngle(a) - NormalizeAngle(b))
	if d > math.Pi {
		d = 2*math.Pi - d
	}
	return d
}

// RotationsMatch reports whether a player rotation matches a target
// rotation for the given archetype, within tolerance, accounting for the
// archetype's rotational symmetry: every rotation of the player angle by
// a multiple of the symmetry step is an equivalent candidate, and the
// minimum angular distance over all candidates decides the match. A
// circle matches at any rotation.
func RotationsMatch(s Shape, player, target, tolerance float64) bool {
	return RotationError(s, player, target) <= tolerance
}

// RotationError returns the minimal angular distance between the player
// rotation and the target over all symmetry-equivalent player rotations.
// Returns 0 for the circle.
func RotationError(s Shape, player, target float64) float64 {
	order := s.SymmetryOrder()
	if order == 0 {
		return 0
	}
	step := 2 * math.Pi / float64(order)
	best := math.Inf(1)
	for k := range order {
		d := AngularDistance(player+step*float64(k), target)
		if d < best {
			best = d
		}
	}
	return best
}
