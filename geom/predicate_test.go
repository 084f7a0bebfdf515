package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arvo-stacks/rupert/geom"
	"github.com/arvo-stacks/rupert/interval"
	"github.com/arvo-stacks/rupert/vector"
)

func exactG(k interval.Kernel, x float64) interval.Interval { return k.FromBounds(x, x) }

func vec3G(k interval.Kernel, x, y, z float64) vector.Vector3 {
	return vector.NewVector3(exactG(k, x), exactG(k, y), exactG(k, z))
}

func square(k interval.Kernel, half float64) geom.Polygon {
	return geom.NewPolygon([]vector.Vector2{
		vector.NewVector2(exactG(k, -half), exactG(k, -half)),
		vector.NewVector2(exactG(k, half), exactG(k, -half)),
		vector.NewVector2(exactG(k, half), exactG(k, half)),
		vector.NewVector2(exactG(k, -half), exactG(k, half)),
	})
}

// TestProjectedVertexOutsidePolygonAdvanced_FarVertexProvenOutside ASSERTS a
// vertex whose entire projected box lies far outside a small hole shadow is
// proven outside.
func TestProjectedVertexOutsidePolygonAdvanced_FarVertexProvenOutside(t *testing.T) {
	k := interval.NewFastKernel()
	v := vec3G(k, 10, 10, 10)
	theta := exactG(k, 0.01)
	phi := exactG(k, 0.01)
	h := square(k, 0.1)
	assert.True(t, geom.ProjectedVertexOutsidePolygonAdvanced(k, h, v, theta, phi))
}

// TestProjectedVertexOutsidePolygonAdvanced_InteriorVertexNotProven ASSERTS
// a vertex whose projection lands inside the hole shadow is never reported
// as outside.
func TestProjectedVertexOutsidePolygonAdvanced_InteriorVertexNotProven(t *testing.T) {
	k := interval.NewFastKernel()
	v := vec3G(k, 0, 0, 0)
	theta := exactG(k, 0.01)
	phi := exactG(k, 0.01)
	h := square(k, 5)
	assert.False(t, geom.ProjectedVertexOutsidePolygonAdvanced(k, h, v, theta, phi))
}

// TestProjectedVertexOutsidePolygonAdvanced_WideThetaFallsBack ASSERTS a
// theta box wider than pi/2 uses the direct combined-projection fallback
// rather than the 8-witness construction.
func TestProjectedVertexOutsidePolygonAdvanced_WideThetaFallsBack(t *testing.T) {
	k := interval.NewFastKernel()
	v := vec3G(k, 10, 10, 10)
	theta := k.FromBounds(0, 2)
	phi := exactG(k, 0.01)
	h := square(k, 0.1)
	want := h.Outside(geom.CombinedProject(v, theta, phi))
	assert.Equal(t, want, geom.ProjectedVertexOutsidePolygonAdvanced(k, h, v, theta, phi))
}
