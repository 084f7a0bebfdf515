package hull_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvo-stacks/rupert/boxindex"
	"github.com/arvo-stacks/rupert/geom"
	"github.com/arvo-stacks/rupert/hull"
	"github.com/arvo-stacks/rupert/interval"
	"github.com/arvo-stacks/rupert/vector"
)

func exact(k interval.Kernel, x float64) interval.Interval { return k.FromBounds(x, x) }

func vec3(k interval.Kernel, x, y, z float64) vector.Vector3 {
	return vector.NewVector3(exact(k, x), exact(k, y), exact(k, z))
}

func vec2(k interval.Kernel, x, y float64) vector.Vector2 {
	return vector.NewVector2(exact(k, x), exact(k, y))
}

// TestProjectionHullPolygon_ContainsSamples ASSERTS the polygon hull's
// convex closure contains the exact projection at both the box's
// theta/phi endpoints and its midpoint (spec.md §8 "hull correctness").
func TestProjectionHullPolygon_ContainsSamples(t *testing.T) {
	k := interval.NewFastKernel()
	v := vec3(k, 1, 0.5, -0.3)
	box := boxindex.RootBox2()

	points := hull.ProjectionHullPolygon(k, v, box, 4)
	poly, err := hull.ConvexHull(points)
	require.NoError(t, err)

	theta, phi := box.ThetaInterval(k), box.PhiInterval(k)
	for _, angle := range [][2]float64{
		{theta.Min(), phi.Min()},
		{theta.Max(), phi.Max()},
		{theta.Mid(), phi.Mid()},
	} {
		w := hull.Project(v, exact(k, angle[0]), exact(k, angle[1]))
		assert.False(t, poly.Outside(w), "sample at theta=%v phi=%v must not be outside the hull", angle[0], angle[1])
	}
}

// TestTrivialHull_CollapsesForNarrowBox ASSERTS a depth-15 box (a few
// 1e-4 rad wide on each axis) collapses the hull to within 1e-3 of a
// single point.
func TestTrivialHull_CollapsesForNarrowBox(t *testing.T) {
	k := interval.NewFastKernel()
	v := vec3(k, 1, 0, 0)
	box := boxindex.Box2{Theta: boxindex.Range{Depth: boxindex.MaxDepth - 1, Bits: 0}, Phi: boxindex.Range{Depth: boxindex.MaxDepth - 1, Bits: 0}}

	rect := hull.TrivialHull(k, v, box)
	require.Len(t, rect, 4)
	for _, p := range rect {
		assert.InDelta(t, rect[0].X.Mid(), p.X.Mid(), 1e-3)
		assert.InDelta(t, rect[0].Y.Mid(), p.Y.Mid(), 1e-3)
	}
}

// TestRotationHullPolygon_ContainsEndpoints ASSERTS the rotation hull
// contains the exact rotation at both of alpha's endpoints.
func TestRotationHullPolygon_ContainsEndpoints(t *testing.T) {
	k := interval.NewFastKernel()
	w := vec2(k, 0.7, -0.2)
	alpha := boxindex.RootRange().Scale(k, k.Tau())

	points := hull.RotationHullPolygon(k, w, alpha, 4)
	poly, err := hull.ConvexHull(points)
	require.NoError(t, err)

	for _, a := range []float64{alpha.Min(), alpha.Max(), alpha.Mid()} {
		r := hull.Rotate2D(w, exact(k, a))
		assert.False(t, poly.Outside(r))
	}
}

// TestConvexHull_Square ASSERTS the gift wrap recovers a simple square's
// four corners as a simple CCW loop.
func TestConvexHull_Square(t *testing.T) {
	k := interval.NewFastKernel()
	pts := []vector.Vector2{
		vec2(k, 0, 0), vec2(k, 2, 0), vec2(k, 2, 2), vec2(k, 0, 2),
		vec2(k, 1, 1), // interior point must not appear on the hull
	}
	poly, err := hull.ConvexHull(pts)
	require.NoError(t, err)
	assert.Len(t, poly.Edges, 4)
	assert.True(t, poly.Inside(vec2(k, 1, 1)))
	assert.True(t, poly.Outside(vec2(k, 3, 3)))
}

// TestConvexHull_CollinearPointsKeepFarthest ASSERTS collinear candidates on
// the same ray resolve to the farthest point, never shrinking the hull.
func TestConvexHull_CollinearPointsKeepFarthest(t *testing.T) {
	k := interval.NewFastKernel()
	pts := []vector.Vector2{
		vec2(k, 0, 0), vec2(k, 1, 0), vec2(k, 2, 0), // collinear along the bottom edge
		vec2(k, 2, 2), vec2(k, 0, 2),
	}
	poly, err := hull.ConvexHull(pts)
	require.NoError(t, err)
	assert.True(t, poly.Inside(vec2(k, 1, 1)))
	assert.False(t, poly.Outside(vec2(k, 0.5, 0)))
}

// TestConvexHull_TooFewPoints ASSERTS input that merges to fewer than 2
// distinct points (here two coincident points) is reported as
// ErrEmptyPolygon rather than panicking.
func TestConvexHull_TooFewPoints(t *testing.T) {
	k := interval.NewFastKernel()
	_, err := hull.ConvexHull([]vector.Vector2{vec2(k, 0, 0), vec2(k, 0, 0)})
	assert.ErrorIs(t, err, geom.ErrEmptyPolygon)
}

// TestProjectionHullPolygon_WideBoxDegradesToCombined ASSERTS a theta range
// wider than resolutionN*pi/2 falls back to the combined-harmonic rectangle
// rather than sampling unsoundly.
func TestProjectionHullPolygon_WideBoxDegradesToCombined(t *testing.T) {
	k := interval.NewFastKernel()
	v := vec3(k, 1, 1, 1)
	box := boxindex.RootBox2() // full [0,2pi) x [0,pi)

	got := hull.ProjectionHullPolygon(k, v, box, 1)
	want := hull.CombinedHull(k, v, box)
	require.Len(t, got, len(want))
	for i := range got {
		assert.InDelta(t, want[i].X.Mid(), got[i].X.Mid(), 1e-9)
		assert.InDelta(t, want[i].Y.Mid(), got[i].Y.Mid(), 1e-9)
	}
}

var _ = math.Pi
