// Package geometry provides the pure shape-matching kernels used by the
// dimension modules: archetype vertex generation, rigid transforms, convex
// polygon overlap (separating axis), point-in-polygon testing, and
// symmetry-aware rotation matching. The package holds no state and uses
// only the math stdlib.
package geometry

import "math"

// circleSegments approximates the circle archetype as a regular 16-gon.
const circleSegments = 16

// Point is a 2-D vertex.
type Point struct {
	X, Y float64
}

// Shape identifies one of the five closed polygon archetypes.
type Shape int

const (
	Circle Shape = iota
	Square
	Triangle
	Diamond
	Star
)

// Shapes lists the archetypes in cycling order for player shape selection.
var Shapes = []Shape{Circle, Square, Triangle, Diamond, Star}

// String returns the lowercase archetype name.
func (s Shape) String() string {
	switch s {
	case Circle:
		return "circle"
	case Square:
		return "square"
	case Triangle:
		return "triangle"
	case Diamond:
		return "diamond"
	case Star:
		return "star"
	default:
		return "unknown"
	}
}

// ParseShape maps a shape identifier to an archetype, falling back to the
// circle for unrecognized identifiers.
func ParseShape(name string) Shape {
	switch name {
	case "square":
		return Square
	case "triangle":
		return Triangle
	case "diamond":
		return Diamond
	case "star":
		return Star
	default:
		return Circle
	}
}

// SymmetryOrder returns the intrinsic rotational symmetry order of the
// archetype. The circle returns 0, meaning fully symmetric: any rotation
// of a circle is equivalent to any other. These exact values are load
// bearing for rotation matching; changing them breaks shape gameplay
// silently.
func (s Shape) SymmetryOrder() int {
	switch s {
	case Circle:
		return 0
	case Square:
		return 4
	case Triangle:
		return 3
	case Diamond:
		return 2
	case Star:
		return 5
	default:
		return 0
	}
}

// Vertices generates the archetype outline at unit scale, centered at the
// origin. Unrecognized shapes fall back to the circle.
func Vertices(s Shape) []Point {
	switch s {
	case Square:
		return []Point{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	case Triangle:
		// Equilateral, apex up.
		return regular(3, 1, math.Pi/2)
	case Diamond:
		return []Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	case Star:
		return star(5, 1, 0.5, math.Pi/2)
	default:
		return regular(circleSegments, 1, 0)
	}
}

// regular generates an n-gon of the given radius with the first vertex at
// the given phase angle.
func regular(n int, radius, phase float64) []Point {
	pts := make([]Point, n)
	for i := range n {
		a := phase + 2*math.Pi*float64(i)/float64(n)
		pts[i] = Point{X: radius * math.Cos(a), Y: radius * math.Sin(a)}
	}
	return pts
}

// star generates a star outline alternating between outer and inner radii.
func star(points int, outer, inner, phase float64) []Point {
	pts := make([]Point, 0, points*2)
	step := math.Pi / float64(points)
	for i := range points * 2 {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := phase + step*float64(i)
		pts = append(pts, Point{X: r * math.Cos(a), Y: r * math.Sin(a)})
	}
	return pts
}

// Transform applies a uniform scale, a rotation, and a translation to the
// outline, in that order, returning a new slice.
func Transform(pts []Point, scale, rotation, dx, dy float64) []Point {
	sin, cos := math.Sincos(rotation)
	out := make([]Point, len(pts))
	for i, p := range pts {
		x := p.X * scale
		y := p.Y * scale
		out[i] = Point{
			X: x*cos - y*sin + dx,
			Y: x*sin + y*cos + dy,
		}
	}
	return out
}

// Centroid returns the arithmetic mean of the outline vertices.
func Centroid(pts []Point) Point {
	var c Point
	if len(pts) == 0 {
		return c
	}
	for _, p := range pts {
		c.X += p.X
		c.Y += p.Y
	}
	c.X /= float64(len(pts))
	c.Y /= float64(len(pts))
	return c
}
