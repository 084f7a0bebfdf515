package geom

import (
	"github.com/arvo-stacks/rupert/interval"
	"github.com/arvo-stacks/rupert/vector"
)

// Project encloses the identity project(v, theta, phi) = (-x sin(theta) +
// y cos(theta), (x cos(theta)+y sin(theta)) cos(phi) - z sin(phi)) via
// naive interval evaluation (spec.md §4.D).
func Project(v vector.Vector3, theta, phi interval.Interval) vector.Vector2 {
	x, y, z := v.X, v.Y, v.Z
	px := TrivialHarmonic(y, x.Neg(), theta)
	inner := TrivialHarmonic(x, y, theta)
	py := TrivialHarmonic(inner, z.Neg(), phi)
	return vector.NewVector2(px, py)
}

// CombinedProject encloses the same identity using the combined-harmonic
// reparametrization at both the theta and phi stage, tighter than Project.
func CombinedProject(v vector.Vector3, theta, phi interval.Interval) vector.Vector2 {
	x, y, z := v.X, v.Y, v.Z
	px := CombinedHarmonic(y, x.Neg(), theta)
	inner := CombinedHarmonic(x, y, theta)
	py := CombinedHarmonic(inner, z.Neg(), phi)
	return vector.NewVector2(px, py)
}
