package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arvo-stacks/rupert/geom"
	"github.com/arvo-stacks/rupert/interval"
	"github.com/arvo-stacks/rupert/vector"
)

func p2(k interval.Kernel, x, y float64) vector.Vector2 {
	return vector.NewVector2(k.FromBounds(x, x), k.FromBounds(y, y))
}

func unitSquare(k interval.Kernel) geom.Polygon {
	return geom.NewPolygon([]vector.Vector2{
		p2(k, 0, 0), p2(k, 1, 0), p2(k, 1, 1), p2(k, 0, 1),
	})
}

// TestPolygon_Inside_Outside ASSERTS the canonical interior/exterior points
// of a unit square are classified correctly (spec.md §4.B).
func TestPolygon_Inside_Outside(t *testing.T) {
	k := interval.NewFastKernel()
	sq := unitSquare(k)

	assert.True(t, sq.Inside(p2(k, 0.5, 0.5)))
	assert.False(t, sq.Inside(p2(k, 1.5, 0.5)))

	assert.True(t, sq.Outside(p2(k, 2, 2)))
	assert.False(t, sq.Outside(p2(k, 0.5, 0.5)))
}

// TestEdge_Orientation ASSERTS CCW/CW classification against a known edge.
func TestEdge_Orientation(t *testing.T) {
	k := interval.NewFastKernel()
	e := geom.NewEdge(p2(k, 0, 0), p2(k, 1, 0))
	assert.Equal(t, geom.CCW, e.Orientation(p2(k, 0.5, 1)))
	assert.Equal(t, geom.CW, e.Orientation(p2(k, 0.5, -1)))
	assert.Equal(t, geom.Collinear, e.Orientation(p2(k, 2, 0)))
}

// TestEdge_Avoids_DisjointSegments ASSERTS two segments with no possible
// overlap are provably disjoint.
func TestEdge_Avoids_DisjointSegments(t *testing.T) {
	k := interval.NewFastKernel()
	e1 := geom.NewEdge(p2(k, 0, 0), p2(k, 1, 0))
	e2 := geom.NewEdge(p2(k, 5, 5), p2(k, 6, 6))
	assert.True(t, e1.Avoids(e2))
}

// TestEdge_Avoids_CrossingSegments ASSERTS that segments which actually
// cross are never reported as avoiding (no false positives).
func TestEdge_Avoids_CrossingSegments(t *testing.T) {
	k := interval.NewFastKernel()
	e1 := geom.NewEdge(p2(k, 0, 0), p2(k, 1, 1))
	e2 := geom.NewEdge(p2(k, 0, 1), p2(k, 1, 0))
	assert.False(t, e1.Avoids(e2))
}

// TestPolyhedron_SymmetryGroup_Cube ASSERTS the cube's rotation group has
// the expected order (24) and every member maps vertices onto vertices.
func TestPolyhedron_SymmetryGroup_Cube(t *testing.T) {
	k := interval.NewFastKernel()
	var verts []vector.Vector3
	for _, sx := range []float64{-0.5, 0.5} {
		for _, sy := range []float64{-0.5, 0.5} {
			for _, sz := range []float64{-0.5, 0.5} {
				verts = append(verts, vector.NewVector3(k.FromBounds(sx, sx), k.FromBounds(sy, sy), k.FromBounds(sz, sz)))
			}
		}
	}
	ph := geom.NewPolyhedron(verts)
	group := ph.SymmetryGroup(k)
	assert.Equal(t, 24, len(group))
}
