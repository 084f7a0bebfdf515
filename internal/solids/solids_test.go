package solids_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arvo-stacks/rupert/interval"
	"github.com/arvo-stacks/rupert/internal/solids"
)

// TestVertexCounts ASSERTS each generator returns the vertex count its
// named solid has.
func TestVertexCounts(t *testing.T) {
	k := interval.NewFastKernel()
	assert.Len(t, solids.Cube(k, 0.5), 8)
	assert.Len(t, solids.Tetrahedron(k, 0.5), 4)
	assert.Len(t, solids.Octahedron(k, 1), 6)
	assert.Len(t, solids.Dodecahedron(k, 1), 20)
	assert.Len(t, solids.Icosahedron(k, 1), 12)
}

// TestDodecahedronCircumradius ASSERTS every generated vertex lies at
// distance r from the origin (within floating tolerance), confirming the
// scale factor normalizes the raw golden-ratio coordinates correctly.
func TestDodecahedronCircumradius(t *testing.T) {
	k := interval.NewFastKernel()
	const r = 2.5
	for _, v := range solids.Dodecahedron(k, r) {
		got := v.X.Mid()*v.X.Mid() + v.Y.Mid()*v.Y.Mid() + v.Z.Mid()*v.Z.Mid()
		assert.InDelta(t, r*r, got, 1e-9)
	}
}

// TestIcosahedronCircumradius mirrors TestDodecahedronCircumradius for the
// icosahedron generator.
func TestIcosahedronCircumradius(t *testing.T) {
	k := interval.NewFastKernel()
	const r = 1.75
	for _, v := range solids.Icosahedron(k, r) {
		got := v.X.Mid()*v.X.Mid() + v.Y.Mid()*v.Y.Mid() + v.Z.Mid()*v.Z.Mid()
		assert.InDelta(t, r*r, got, 1e-9)
	}
}
