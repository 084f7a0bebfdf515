package hull

import (
	"math"

	"github.com/arvo-stacks/rupert/boxindex"
	"github.com/arvo-stacks/rupert/geom"
	"github.com/arvo-stacks/rupert/interval"
	"github.com/arvo-stacks/rupert/vector"
)

// Project and CombinedProject are re-exported from geom so hull/ callers
// never need to import geom just to evaluate the projection identity.
var (
	Project         = geom.Project
	CombinedProject = geom.CombinedProject
)

// rectangleOf returns the 4 axis-aligned corners of w's bounding box, CCW
// from (minX,minY) — the "take the axis-aligned rectangle" step shared by
// TrivialHull and CombinedHull (spec.md §4.D).
func rectangleOf(k interval.Kernel, w vector.Vector2) []vector.Vector2 {
	minX, maxX := w.X.Min(), w.X.Max()
	minY, maxY := w.Y.Min(), w.Y.Max()
	pt := func(x, y float64) vector.Vector2 {
		return vector.NewVector2(k.FromBounds(x, x), k.FromBounds(y, y))
	}
	return []vector.Vector2{pt(minX, minY), pt(maxX, minY), pt(maxX, maxY), pt(minX, maxY)}
}

// TrivialHull encloses v's projection over box by naive interval
// evaluation, then returns the axis-aligned rectangle of the result
// (spec.md §4.D "Trivial hull").
func TrivialHull(k interval.Kernel, v vector.Vector3, box boxindex.Box2) []vector.Vector2 {
	theta, phi := box.ThetaInterval(k), box.PhiInterval(k)
	w := Project(v, theta, phi)
	return rectangleOf(k, w)
}

// CombinedHull encloses v's projection over box via the combined-harmonic
// reparametrization, then returns the axis-aligned rectangle (spec.md
// §4.D "Combined hull").
func CombinedHull(k interval.Kernel, v vector.Vector3, box boxindex.Box2) []vector.Vector2 {
	theta, phi := box.ThetaInterval(k), box.PhiInterval(k)
	w := CombinedProject(v, theta, phi)
	return rectangleOf(k, w)
}

// ProjectionHullPolygon is the resolution-N polygon hull (spec.md §4.D):
// subdivides theta into 2N equal sub-intervals, samples the midpoint of
// each (widened by sec(theta.rad()/N) to conservatively cover the sampled
// arc), includes the two theta endpoints, and for every such planar
// rotated vector w emits points spanning phi via combined_harmonic(w.y,
// -z, phi). Degrades to CombinedHull when theta.Len() > N*pi/2, where the
// sampling approximation is no longer sound.
//
// Point budget: each of the 2N midpoints, and each of the 2 theta
// endpoints alike, contributes the pair (w.x, h.min()) and (w.x, h.max()) —
// matching original_source/cpp/src/global_solver/helpers.hpp:99-109
// (projected_orientation_hull), which emits both harmonic bounds for every
// rotated_vector sample including the endpoints: a zero theta-uncertainty
// at the endpoint does not make phi's spread vanish, so dropping one bound
// there would under-build the hull. (2N+2)*2 = 4N+4 points total.
func ProjectionHullPolygon(k interval.Kernel, v vector.Vector3, box boxindex.Box2, resolutionN int) []vector.Vector2 {
	theta := box.ThetaInterval(k)
	phi := box.PhiInterval(k)
	if resolutionN < 1 {
		resolutionN = 1
	}
	if theta.Len() > float64(resolutionN)*math.Pi/2 {
		return CombinedHull(k, v, box)
	}

	lo, hi := theta.Min(), theta.Max()
	n := resolutionN
	width := (hi - lo) / float64(2*n)
	secScale := 1 / math.Cos(theta.Rad()/float64(n))

	x, y, z := v.X, v.Y, v.Z
	points := make([]vector.Vector2, 0, 4*n+4)

	rotateAt := func(angle float64, scale float64) (wx, wy interval.Interval) {
		a := k.FromBounds(angle, angle)
		wx = geom.TrivialHarmonic(y, x.Neg(), a)
		wy = geom.TrivialHarmonic(x, y, a)
		if scale != 1 {
			s := k.FromBounds(scale, scale)
			wx = wx.Mul(s)
			wy = wy.Mul(s)
		}
		return wx, wy
	}

	emit := func(wx, wy interval.Interval, yVal float64) {
		points = append(points, vector.NewVector2(k.FromBounds(wx.Mid(), wx.Mid()), k.FromBounds(yVal, yVal)))
	}

	for _, endpoint := range []float64{lo, hi} {
		wx, wy := rotateAt(endpoint, 1)
		h := geom.CombinedHarmonic(wy, z.Neg(), phi)
		emit(wx, wy, h.Min())
		emit(wx, wy, h.Max())
	}

	for i := 0; i < 2*n; i++ {
		mid := lo + (float64(i)+0.5)*width
		wx, wy := rotateAt(mid, secScale)
		h := geom.CombinedHarmonic(wy, z.Neg(), phi)
		emit(wx, wy, h.Min())
		emit(wx, wy, h.Max())
	}

	return points
}
