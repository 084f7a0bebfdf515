package vector_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arvo-stacks/rupert/interval"
	"github.com/arvo-stacks/rupert/vector"
)

func pt(k interval.Kernel, x float64) interval.Interval { return k.FromBounds(x, x) }

// TestMatrix3_RotZ_PreservesLength ASSERTS that rotating a unit vector
// about Z keeps its length enclosure at 1 (spec.md §3 Matrix: rotation
// about each axis).
func TestMatrix3_RotZ_PreservesLength(t *testing.T) {
	k := interval.NewFastKernel()
	theta := k.FromBounds(0.3, 0.3)
	r := vector.RotZ(k, theta)
	v := vector.NewVector3(pt(k, 1), pt(k, 0), pt(k, 0))
	rv := v.MulMatrix3(r)
	length := rv.Length()
	assert.InDelta(t, 1.0, length.Mid(), 1e-6)
}

// TestComposeOrientation_Identity ASSERTS theta=phi=0 yields the identity
// rotation.
func TestComposeOrientation_Identity(t *testing.T) {
	k := interval.NewFastKernel()
	zero := k.FromBounds(0, 0)
	r := vector.ComposeOrientation(k, zero, zero)
	v := vector.NewVector3(pt(k, 1), pt(k, 2), pt(k, 3))
	rv := v.MulMatrix3(r)
	assert.InDelta(t, 1.0, rv.X.Mid(), 1e-6)
	assert.InDelta(t, 2.0, rv.Y.Mid(), 1e-6)
	assert.InDelta(t, 3.0, rv.Z.Mid(), 1e-6)
}

// TestCosAngleBetween_SameOrientation ASSERTS the cosine-of-angle between a
// matrix and itself (via Relative) is 1.
func TestCosAngleBetween_SameOrientation(t *testing.T) {
	k := interval.NewFastKernel()
	theta := k.FromBounds(0.7, 0.7)
	phi := k.FromBounds(0.2, 0.2)
	r := vector.ComposeOrientation(k, theta, phi)
	rel := vector.Relative(r, r)
	cos := rel.CosAngleBetween(k)
	assert.InDelta(t, 1.0, cos.Mid(), 1e-6)
}

// TestVector2_Cross_Orientation ASSERTS the sign of Cross matches the
// geometric CCW/CW orientation of two vectors.
func TestVector2_Cross_Orientation(t *testing.T) {
	k := interval.NewFastKernel()
	a := vector.NewVector2(pt(k, 1), pt(k, 0))
	b := vector.NewVector2(pt(k, 0), pt(k, 1))
	cross := a.Cross(b)
	assert.True(t, cross.IsPositive())
	assert.InDelta(t, 1.0, cross.Mid(), 1e-9)
	assert.InDelta(t, math.Pi/2, math.Atan2(b.Y.Mid(), b.X.Mid())-math.Atan2(a.Y.Mid(), a.X.Mid()), 1e-9)
}
