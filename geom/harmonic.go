package geom

import "github.com/arvo-stacks/rupert/interval"

// CombinedHarmonic encloses A*cos(angle) + B*sin(angle) via the
// re-parametrization A*cos(angle)+B*sin(angle) = amplitude*cos(angle-psi),
// psi = atan(B/A), amplitude = sign(A)*sqrt(A^2+B^2), which rounds tighter
// than evaluating the naive product (spec.md §4.D "Combined harmonic").
// Falls back to the sin-pivoted form (amplitude carrying the sign of B)
// when A is not provably nonzero (division by a near-zero A is unsound),
// and to naive evaluation when neither A nor B is provably nonzero.
func CombinedHarmonic(A, B, angle interval.Interval) interval.Interval {
	amplitude := A.Sqr().Add(B.Sqr()).Sqrt()
	if A.IsNonzero() {
		psi := B.Div(A).Atan()
		if A.IsNegative() {
			amplitude = amplitude.Neg()
		}
		return amplitude.Mul(angle.Sub(psi).Cos())
	}
	if B.IsNonzero() {
		psi := A.Div(B).Atan()
		if B.IsNegative() {
			amplitude = amplitude.Neg()
		}
		return amplitude.Mul(angle.Add(psi).Sin())
	}
	return A.Mul(angle.Cos()).Add(B.Mul(angle.Sin()))
}

// TrivialHarmonic encloses A*cos(angle) + B*sin(angle) by direct
// multiplication, with no reparametrization.
func TrivialHarmonic(A, B, angle interval.Interval) interval.Interval {
	return A.Mul(angle.Cos()).Add(B.Mul(angle.Sin()))
}
