package vector

import "github.com/arvo-stacks/rupert/interval"

// Vector2 is a pair of Intervals, the enclosure this module's 2D geometry
// (geom.Edge, geom.Polygon) is built from.
type Vector2 struct {
	X, Y interval.Interval
}

// NewVector2 builds a Vector2 from two Intervals of the same backend.
func NewVector2(x, y interval.Interval) Vector2 { return Vector2{X: x, Y: y} }

func (v Vector2) Add(o Vector2) Vector2 { return Vector2{v.X.Add(o.X), v.Y.Add(o.Y)} }
func (v Vector2) Sub(o Vector2) Vector2 { return Vector2{v.X.Sub(o.X), v.Y.Sub(o.Y)} }
func (v Vector2) Neg() Vector2          { return Vector2{v.X.Neg(), v.Y.Neg()} }

// Scale multiplies both components by a scalar Interval.
func (v Vector2) Scale(s interval.Interval) Vector2 {
	return Vector2{v.X.Mul(s), v.Y.Mul(s)}
}

// Dot returns the interval-valued dot product.
func (v Vector2) Dot(o Vector2) interval.Interval {
	return v.X.Mul(o.X).Add(v.Y.Mul(o.Y))
}

// Cross returns the scalar (z-component) cross product v x o; its sign
// decides orientation (spec.md §4.B).
func (v Vector2) Cross(o Vector2) interval.Interval {
	return v.X.Mul(o.Y).Sub(v.Y.Mul(o.X))
}

// LengthSq returns the squared length, cheaper and exact enough for most
// comparisons (Edge.avoids uses it to sidestep a Sqrt).
func (v Vector2) LengthSq() interval.Interval {
	return v.X.Sqr().Add(v.Y.Sqr())
}

// Length returns the (rounded-outward) Euclidean length.
func (v Vector2) Length() interval.Interval {
	return v.LengthSq().Sqrt()
}

// Hull returns the per-component hull of v and o, the smallest Vector2 box
// containing both.
func (v Vector2) Hull(o Vector2) Vector2 {
	return Vector2{v.X.Hull(o.X), v.Y.Hull(o.Y)}
}
