package hull

import (
	"math"

	"github.com/arvo-stacks/rupert/boxindex"
	"github.com/arvo-stacks/rupert/geom"
	"github.com/arvo-stacks/rupert/interval"
	"github.com/arvo-stacks/rupert/vector"
)

// Rotate2D encloses the in-plane rotation (w.x*cos(alpha)-w.y*sin(alpha),
// w.x*sin(alpha)+w.y*cos(alpha)) via naive interval evaluation. spec.md
// §4.D only spells out the project() identity; the rotation hull generalizes
// it directly to a pure 2D rotation (the outer Rz(alpha) stage of spec.md
// §3's Matrix.ProjectionRotation), so the same harmonic machinery applies
// verbatim with (w.x, -w.y) / (w.y, w.x) in place of (y, -x) / (x, y).
func Rotate2D(w vector.Vector2, alpha interval.Interval) vector.Vector2 {
	rx := geom.TrivialHarmonic(w.X, w.Y.Neg(), alpha)
	ry := geom.TrivialHarmonic(w.Y, w.X, alpha)
	return vector.NewVector2(rx, ry)
}

// CombinedRotate2D is Rotate2D via the combined-harmonic reparametrization.
func CombinedRotate2D(w vector.Vector2, alpha interval.Interval) vector.Vector2 {
	rx := geom.CombinedHarmonic(w.X, w.Y.Neg(), alpha)
	ry := geom.CombinedHarmonic(w.Y, w.X, alpha)
	return vector.NewVector2(rx, ry)
}

// RotationHullTrivial rotates w over the box's alpha range via naive
// evaluation and returns the axis-aligned rectangle.
func RotationHullTrivial(k interval.Kernel, w vector.Vector2, alpha interval.Interval) []vector.Vector2 {
	return rectangleOf(k, Rotate2D(w, alpha))
}

// RotationHullCombined rotates w over the box's alpha range via the
// combined-harmonic form and returns the axis-aligned rectangle.
func RotationHullCombined(k interval.Kernel, w vector.Vector2, alpha interval.Interval) []vector.Vector2 {
	return rectangleOf(k, CombinedRotate2D(w, alpha))
}

// RotationHullPolygon is the resolution-R sampled variant of the rotation
// hull, by direct analogy to ProjectionHullPolygon: 2R equally spaced
// sample angles plus the two endpoints, each sample widened by
// sec(alpha.rad()/R); degrades to RotationHullCombined when alpha.Len() >
// R*pi/2.
func RotationHullPolygon(k interval.Kernel, w vector.Vector2, alpha interval.Interval, resolutionR int) []vector.Vector2 {
	if resolutionR < 1 {
		resolutionR = 1
	}
	if alpha.Len() > float64(resolutionR)*math.Pi/2 {
		return RotationHullCombined(k, w, alpha)
	}
	lo, hi := alpha.Min(), alpha.Max()
	r := resolutionR
	width := (hi - lo) / float64(2*r)
	secScale := 1 / math.Cos(alpha.Rad()/float64(r))

	points := make([]vector.Vector2, 0, 2*r+2)
	sample := func(angle, scale float64) vector.Vector2 {
		a := k.FromBounds(angle, angle)
		rx := geom.TrivialHarmonic(w.X, w.Y.Neg(), a)
		ry := geom.TrivialHarmonic(w.Y, w.X, a)
		if scale != 1 {
			s := k.FromBounds(scale, scale)
			rx, ry = rx.Mul(s), ry.Mul(s)
		}
		return vector.NewVector2(k.FromBounds(rx.Mid(), rx.Mid()), k.FromBounds(ry.Mid(), ry.Mid()))
	}
	points = append(points, sample(lo, 1), sample(hi, 1))
	for i := 0; i < 2*r; i++ {
		mid := lo + (float64(i)+0.5)*width
		points = append(points, sample(mid, secScale))
	}
	return points
}

// ExpandByRotation applies the rotation hull (chosen precision tier) to
// every point of a projection-hull point set and flattens the result,
// implementing spec.md §4.H.1's "for each point in that hull, further
// expand with rotation_hull_polygon".
func ExpandByRotation(k interval.Kernel, points []vector.Vector2, box boxindex.Box3, resolutionR int) []vector.Vector2 {
	alpha := box.AlphaInterval(k)
	var out []vector.Vector2
	for _, p := range points {
		out = append(out, RotationHullPolygon(k, p, alpha, resolutionR)...)
	}
	return out
}
