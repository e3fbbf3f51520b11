package geometry

import "math"

// PolygonsOverlap reports whether two convex polygons intersect, using the
// separating axis test: both outlines are projected onto every candidate
// edge-normal axis of both polygons; a single axis with disjoint projected
// intervals proves the polygons apart.
func PolygonsOverlap(a, b []Point) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	return !hasSeparatingAxis(a, b) && !hasSeparatingAxis(b, a)
}

// hasSeparatingAxis tests the edge normals of polygon a against both
// polygons' projections.
func hasSeparatingAxis(a, b []Point) bool {
	for i := range a {
		p1 := a[i]
		p2 := a[(i+1)%len(a)]
		// Edge normal; no need to normalize for interval comparison.
		axis := Point{X: -(p2.Y - p1.Y), Y: p2.X - p1.X}

		minA, maxA := project(a, axis)
		minB, maxB := project(b, axis)
		if maxA < minB || maxB < minA {
			return true
		}
	}
	return false
}

// project returns the min and max of the outline projected onto the axis.
func project(pts []Point, axis Point) (min, max float64) {
	min = math.Inf(1)
	max = math.Inf(-1)
	for _, p := range pts {
		d := p.X*axis.X + p.Y*axis.Y
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max
}

// CirclesOverlap special-cases circle–circle intersection as a distance
// comparison, which is cheaper and numerically stabler than running the
// separating axis test over two 16-gons.
func CirclesOverlap(c1 Point, r1 float64, c2 Point, r2 float64) bool {
	dx := c2.X - c1.X
	dy := c2.Y - c1.Y
	sum := r1 + r2
	return dx*dx+dy*dy <= sum*sum
}

// PointInPolygon reports whether the point lies inside the outline, using
// the standard ray-crossing parity test.
func PointInPolygon(p Point, poly []Point) bool {
	inside := false
	n := len(poly)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := poly[i], poly[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) &&
			p.X < (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
	}
	return inside
}
