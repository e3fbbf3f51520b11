package geometry

// Fit is the result of testing a player silhouette against a hole outline.
// Contained and TypeMatch carry the authoritative match/no-match contract;
// Coverage is a softer overlap-severity measure some call sites use for
// partial-credit feedback.
type Fit struct {
	TypeMatch bool
	Contained bool
	// Coverage is the fraction of silhouette vertices inside the
	// enlarged hole outline, in [0,1].
	Coverage float64
}

// Pass reports whether the silhouette fully fits the hole: right archetype
// and every vertex inside the enlarged outline.
func (f Fit) Pass() bool {
	return f.TypeMatch && f.Contained
}

// ShapeFit tests whether a transformed player silhouette fits a hole.
// The hole outline is enlarged by the tolerance fraction about its
// centroid before the point-in-polygon tests, so a silhouette touching
// the hole boundary still counts as inside.
func ShapeFit(playerType, holeType Shape, silhouette, hole []Point, tolerance float64) Fit {
	fit := Fit{TypeMatch: playerType == holeType}
	if len(silhouette) == 0 || len(hole) == 0 {
		return fit
	}

	c := Centroid(hole)
	enlarged := make([]Point, len(hole))
	for i, p := range hole {
		enlarged[i] = Point{
			X: c.X + (p.X-c.X)*(1+tolerance),
			Y: c.Y + (p.Y-c.Y)*(1+tolerance),
		}
	}

	inside := 0
	for _, p := range silhouette {
		if PointInPolygon(p, enlarged) {
			inside++
		}
	}
	fit.Coverage = float64(inside) / float64(len(silhouette))
	fit.Contained = inside == len(silhouette)
	return fit
}
