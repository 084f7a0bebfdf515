package vector

import "github.com/arvo-stacks/rupert/interval"

// Vector3 is a triple of Intervals: the polyhedron vertex representation
// throughout this module.
type Vector3 struct {
	X, Y, Z interval.Interval
}

// NewVector3 builds a Vector3 from three Intervals of the same backend.
func NewVector3(x, y, z interval.Interval) Vector3 { return Vector3{X: x, Y: y, Z: z} }

func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{v.X.Add(o.X), v.Y.Add(o.Y), v.Z.Add(o.Z)}
}
func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{v.X.Sub(o.X), v.Y.Sub(o.Y), v.Z.Sub(o.Z)}
}
func (v Vector3) Neg() Vector3 { return Vector3{v.X.Neg(), v.Y.Neg(), v.Z.Neg()} }

// Scale multiplies every component by a scalar Interval.
func (v Vector3) Scale(s interval.Interval) Vector3 {
	return Vector3{v.X.Mul(s), v.Y.Mul(s), v.Z.Mul(s)}
}

func (v Vector3) Dot(o Vector3) interval.Interval {
	return v.X.Mul(o.X).Add(v.Y.Mul(o.Y)).Add(v.Z.Mul(o.Z))
}

// Cross returns the interval-valued 3D cross product v x o.
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		X: v.Y.Mul(o.Z).Sub(v.Z.Mul(o.Y)),
		Y: v.Z.Mul(o.X).Sub(v.X.Mul(o.Z)),
		Z: v.X.Mul(o.Y).Sub(v.Y.Mul(o.X)),
	}
}

func (v Vector3) LengthSq() interval.Interval {
	return v.X.Sqr().Add(v.Y.Sqr()).Add(v.Z.Sqr())
}

func (v Vector3) Length() interval.Interval { return v.LengthSq().Sqrt() }

// Hull returns the per-component hull of v and o.
func (v Vector3) Hull(o Vector3) Vector3 {
	return Vector3{v.X.Hull(o.X), v.Y.Hull(o.Y), v.Z.Hull(o.Z)}
}

// MulMatrix3 returns M*v (matrix-vector product).
func (v Vector3) MulMatrix3(m Matrix3) Vector3 {
	return Vector3{
		X: m[0][0].Mul(v.X).Add(m[0][1].Mul(v.Y)).Add(m[0][2].Mul(v.Z)),
		Y: m[1][0].Mul(v.X).Add(m[1][1].Mul(v.Y)).Add(m[1][2].Mul(v.Z)),
		Z: m[2][0].Mul(v.X).Add(m[2][1].Mul(v.Y)).Add(m[2][2].Mul(v.Z)),
	}
}
