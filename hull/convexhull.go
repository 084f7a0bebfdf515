package hull

import (
	"github.com/arvo-stacks/rupert/geom"
	"github.com/arvo-stacks/rupert/vector"
)

// mergeCoincident merges points whose separation is not provably positive
// into a single conservative enclosure (their component-wise Hull), so a
// cluster of points the interval arithmetic cannot tell apart collapses to
// one hull vertex instead of spuriously inflating the tournament below
// (spec.md §4.F).
func mergeCoincident(points []vector.Vector2) []vector.Vector2 {
	out := make([]vector.Vector2, 0, len(points))
	for _, p := range points {
		merged := false
		for i, q := range out {
			if !p.Sub(q).LengthSq().IsPositive() {
				out[i] = out[i].Hull(p)
				merged = true
				break
			}
		}
		if !merged {
			out = append(out, p)
		}
	}
	return out
}

// seed picks the point with the provably-greatest X coordinate as the gift
// wrap's starting vertex — any rightmost point is always on the hull. Ties
// the interval arithmetic cannot resolve keep the first point found; that is
// safe here because the tournament below, not the seed choice, is what has
// to be exact.
func seed(points []vector.Vector2) vector.Vector2 {
	best := points[0]
	for _, p := range points[1:] {
		if p.X.Gt(best.X) {
			best = p
		}
	}
	return best
}

// ConvexHull gift-wraps points into a counterclockwise geom.Polygon
// (spec.md §4.F). From the current hull vertex it runs a tournament over
// every remaining point: a candidate q survives only while no other point r
// is provably clockwise of the current->q edge; when the turn direction
// can't be resolved (collinear or too close to call) the farther point wins,
// which only ever grows the enclosure, never shrinks it. The walk is capped
// at len(points)+1 steps; exceeding that (a point set the tournament cannot
// close back on the seed) is reported as ErrDegenerateEdge.
func ConvexHull(points []vector.Vector2) (geom.Polygon, error) {
	pts := mergeCoincident(points)
	if len(pts) < 2 {
		return geom.Polygon{}, geom.ErrEmptyPolygon
	}
	if len(pts) == 2 {
		// Degenerate/colinear input (spec.md §9): two surviving points still
		// form a legitimate hull, just one with two edges instead of three or
		// more — geom.NewPolygon's wraparound construction already gives the
		// forward (pts[0]->pts[1]) and reverse (pts[1]->pts[0]) edge pair.
		return geom.NewPolygon(pts), nil
	}

	start := seed(pts)
	hullPts := []vector.Vector2{start}
	current := start

	for step := 0; step <= len(pts); step++ {
		candidate := pts[0]
		if sameVertex(candidate, current) {
			candidate = pts[1]
		}
		for _, r := range pts {
			if sameVertex(r, current) || sameVertex(r, candidate) {
				continue
			}
			cross := candidate.Sub(current).Cross(r.Sub(current))
			switch {
			case cross.IsNegative():
				candidate = r
			case !cross.IsPositive():
				dCand := candidate.Sub(current).LengthSq()
				dR := r.Sub(current).LengthSq()
				if dR.Gt(dCand) {
					candidate = r
				}
			}
		}
		if sameVertex(candidate, start) {
			return geom.NewPolygon(hullPts), nil
		}
		hullPts = append(hullPts, candidate)
		current = candidate
	}
	return geom.Polygon{}, geom.ErrDegenerateEdge
}

// sameVertex reports whether a and b are the identical slice element (by
// value, not by provable geometric coincidence) — used only to exclude the
// current/candidate vertices themselves from the tournament, never as a
// geometric predicate.
func sameVertex(a, b vector.Vector2) bool {
	return a.X.Mid() == b.X.Mid() && a.Y.Mid() == b.Y.Mid()
}
