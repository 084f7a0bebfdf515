package vector

import "github.com/arvo-stacks/rupert/interval"

// Matrix3 is a row-major 3x3 interval-valued matrix: M[row][col].
type Matrix3 [3][3]interval.Interval

// Identity3 returns the 3x3 identity matrix over kernel k.
func Identity3(k interval.Kernel) Matrix3 {
	zero, one := k.Zero(), k.FromInt(1)
	return Matrix3{
		{one, zero, zero},
		{zero, one, zero},
		{zero, zero, one},
	}
}

// RotX returns the interval enclosure of the rotation-about-X matrix for
// every concrete angle in phi.
func RotX(k interval.Kernel, phi interval.Interval) Matrix3 {
	c, s := phi.Cos(), phi.Sin()
	zero, one := k.Zero(), k.FromInt(1)
	return Matrix3{
		{one, zero, zero},
		{zero, c, s.Neg()},
		{zero, s, c},
	}
}

// RotZ returns the interval enclosure of the rotation-about-Z matrix for
// every concrete angle in theta.
func RotZ(k interval.Kernel, theta interval.Interval) Matrix3 {
	c, s := theta.Cos(), theta.Sin()
	zero, one := k.Zero(), k.FromInt(1)
	return Matrix3{
		{c, s.Neg(), zero},
		{s, c, zero},
		{zero, zero, one},
	}
}

// Mul returns the matrix product m*o.
func (m Matrix3) Mul(o Matrix3) Matrix3 {
	var r Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum := m[i][0].Mul(o[0][j])
			sum = sum.Add(m[i][1].Mul(o[1][j]))
			sum = sum.Add(m[i][2].Mul(o[2][j]))
			r[i][j] = sum
		}
	}
	return r
}

// Transpose returns the matrix transpose.
func (m Matrix3) Transpose() Matrix3 {
	var r Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[j][i] = m[i][j]
		}
	}
	return r
}

// ComposeOrientation returns R = Rx(phi) . Rz(theta), the hole/plug
// orientation matrix parameterized by (theta, phi) (spec.md §3 Matrix).
func ComposeOrientation(k interval.Kernel, theta, phi interval.Interval) Matrix3 {
	return RotX(k, phi).Mul(RotZ(k, theta))
}

// ProjectionRotation returns Rz(alpha) . R, applying the in-plane rotation
// alpha after orientation R.
func ProjectionRotation(k interval.Kernel, alpha interval.Interval, r Matrix3) Matrix3 {
	return RotZ(k, alpha).Mul(r)
}

// Relative returns B . A^T, the rotation carrying orientation A to B.
func Relative(a, b Matrix3) Matrix3 {
	return b.Mul(a.Transpose())
}

// Trace returns the sum of the diagonal.
func (m Matrix3) Trace() interval.Interval {
	return m[0][0].Add(m[1][1]).Add(m[2][2])
}

// CosAngleBetween returns (tr(M)-1)/2, the cosine of the rotation angle of
// M (spec.md §3 Matrix).
func (m Matrix3) CosAngleBetween(k interval.Kernel) interval.Interval {
	return m.Trace().Sub(k.FromInt(1)).Div(k.FromInt(2))
}
