package interval

import (
	"math/big"

	altb "github.com/ALTree/bigfloat"
)

// workingPrecision is the process-wide bit precision every BigFloat
// Interval is constructed at (spec.md §4.A: "working precision is a
// process-wide constant"). It is read-only after init; BigFloatKernel
// never mutates it, and every operand is guarded against mismatch before
// use, satisfying spec.md §9's "global precision state" design note.
const workingPrecision = 200

// piDigits is pi to 101 decimal places, comfortably exceeding the roughly
// 60 decimal digits workingPrecision holds. Pi/Tau parse it rounded down
// and up for their two bounds; bigPi rounds it to nearest. Derived offline
// (Machin-like series) and embedded as a literal because math/big has no
// built-in pi constant.
const piDigits = "3.14159265358979323846264338327950288419716939937510582097494459230781640628620899862803482534211706798"

func bigPi() *big.Float {
	f, _, _ := big.ParseFloat(piDigits, 10, workingPrecision, big.ToNearestEven)
	return f
}

// bigInterval backs the BigFloat kernel: [lo, hi] as *big.Float at
// workingPrecision, with directed rounding performed by recomputing each
// bound under RoundingMode ToNegativeInf / ToPositiveInf rather than by
// post-hoc ULP widening — math/big.Float natively supports this, which is
// exactly the "arbitrary-precision interval library" backend spec.md §4.A
// calls for.
type bigInterval struct {
	lo, hi *big.Float
	nan    bool
}

func newBF(lo, hi *big.Float) *bigInterval {
	if lo == nil || hi == nil || lo.Cmp(hi) > 0 {
		return &bigInterval{nan: true}
	}
	return &bigInterval{lo: lo, hi: hi}
}

func nanBF() *bigInterval { return &bigInterval{nan: true} }

func newFloatAt(mode big.RoundingMode) *big.Float {
	f := new(big.Float)
	f.SetPrec(workingPrecision)
	f.SetMode(mode)
	return f
}

// samePrecision reports whether both operands were constructed under
// workingPrecision. The arithmetic methods return NaN when it is false;
// the mismatch is not reported as an error or a panic.
func (b *bigInterval) samePrecision(o *bigInterval) bool {
	if b.nan || o.nan {
		return true
	}
	return b.lo.Prec() == o.lo.Prec() && o.lo.Prec() == workingPrecision
}

func (b *bigInterval) Backend() Backend { return BigFloat }
func (b *bigInterval) IsNaN() bool      { return b.nan }

func (b *bigInterval) Min() float64 {
	if b.nan {
		return nan64()
	}
	v, _ := b.lo.Float64()
	return v
}
func (b *bigInterval) Max() float64 {
	if b.nan {
		return nan64()
	}
	v, _ := b.hi.Float64()
	return v
}
func (b *bigInterval) Mid() float64 {
	if b.nan {
		return nan64()
	}
	mid := newFloatAt(big.ToNearestEven)
	mid.Add(b.lo, b.hi)
	mid.Quo(mid, big.NewFloat(2))
	v, _ := mid.Float64()
	return v
}
func (b *bigInterval) Len() float64 {
	if b.nan {
		return nan64()
	}
	l := newFloatAt(big.ToNearestEven)
	l.Sub(b.hi, b.lo)
	v, _ := l.Float64()
	return v
}
func (b *bigInterval) Rad() float64 { return b.Len() / 2 }

func (b *bigInterval) IsPositive() bool { return !b.nan && b.lo.Sign() > 0 }
func (b *bigInterval) IsNegative() bool { return !b.nan && b.hi.Sign() < 0 }
func (b *bigInterval) IsNonzero() bool  { return b.IsPositive() || b.IsNegative() }

func (b *bigInterval) Gt(other Interval) bool {
	o, ok := other.(*bigInterval)
	if b.nan || !ok || o.nan {
		return false
	}
	return b.lo.Cmp(o.hi) > 0
}
func (b *bigInterval) Lt(other Interval) bool {
	o, ok := other.(*bigInterval)
	if b.nan || !ok || o.nan {
		return false
	}
	return b.hi.Cmp(o.lo) < 0
}

func (b *bigInterval) Add(other Interval) Interval {
	o, ok := other.(*bigInterval)
	if !ok || b.nan || o.nan || !b.samePrecision(o) {
		return nanBF()
	}
	lo := newFloatAt(big.ToNegativeInf)
	lo.Add(b.lo, o.lo)
	hi := newFloatAt(big.ToPositiveInf)
	hi.Add(b.hi, o.hi)
	return newBF(lo, hi)
}

func (b *bigInterval) Sub(other Interval) Interval {
	o, ok := other.(*bigInterval)
	if !ok || b.nan || o.nan || !b.samePrecision(o) {
		return nanBF()
	}
	lo := newFloatAt(big.ToNegativeInf)
	lo.Sub(b.lo, o.hi)
	hi := newFloatAt(big.ToPositiveInf)
	hi.Sub(b.hi, o.lo)
	return newBF(lo, hi)
}

func (b *bigInterval) Neg() Interval {
	if b.nan {
		return nanBF()
	}
	lo := newFloatAt(big.ToNegativeInf)
	lo.Neg(b.hi)
	hi := newFloatAt(big.ToPositiveInf)
	hi.Neg(b.lo)
	return newBF(lo, hi)
}

func mulAt(mode big.RoundingMode, a, b *big.Float) *big.Float {
	r := newFloatAt(mode)
	r.Mul(a, b)
	return r
}

func (b *bigInterval) Mul(other Interval) Interval {
	o, ok := other.(*bigInterval)
	if !ok || b.nan || o.nan || !b.samePrecision(o) {
		return nanBF()
	}
	lo := newFloatAt(big.ToNegativeInf)
	hi := newFloatAt(big.ToPositiveInf)
	candLo := []*big.Float{
		mulAt(big.ToNegativeInf, b.lo, o.lo), mulAt(big.ToNegativeInf, b.lo, o.hi),
		mulAt(big.ToNegativeInf, b.hi, o.lo), mulAt(big.ToNegativeInf, b.hi, o.hi),
	}
	candHi := []*big.Float{
		mulAt(big.ToPositiveInf, b.lo, o.lo), mulAt(big.ToPositiveInf, b.lo, o.hi),
		mulAt(big.ToPositiveInf, b.hi, o.lo), mulAt(big.ToPositiveInf, b.hi, o.hi),
	}
	lo.Set(candLo[0])
	for _, c := range candLo[1:] {
		if c.Cmp(lo) < 0 {
			lo.Set(c)
		}
	}
	hi.Set(candHi[0])
	for _, c := range candHi[1:] {
		if c.Cmp(hi) > 0 {
			hi.Set(c)
		}
	}
	return newBF(lo, hi)
}

func (b *bigInterval) Div(other Interval) Interval {
	o, ok := other.(*bigInterval)
	if !ok || b.nan || o.nan || !b.samePrecision(o) {
		return nanBF()
	}
	if o.lo.Sign() <= 0 && o.hi.Sign() >= 0 {
		return nanBF() // zero-crossing divisor -> NaN, never +-Inf.
	}
	quoAt := func(mode big.RoundingMode, a, d *big.Float) *big.Float {
		r := newFloatAt(mode)
		r.Quo(a, d)
		return r
	}
	candLo := []*big.Float{
		quoAt(big.ToNegativeInf, b.lo, o.lo), quoAt(big.ToNegativeInf, b.lo, o.hi),
		quoAt(big.ToNegativeInf, b.hi, o.lo), quoAt(big.ToNegativeInf, b.hi, o.hi),
	}
	candHi := []*big.Float{
		quoAt(big.ToPositiveInf, b.lo, o.lo), quoAt(big.ToPositiveInf, b.lo, o.hi),
		quoAt(big.ToPositiveInf, b.hi, o.lo), quoAt(big.ToPositiveInf, b.hi, o.hi),
	}
	lo := newFloatAt(big.ToNegativeInf)
	lo.Set(candLo[0])
	for _, c := range candLo[1:] {
		if c.Cmp(lo) < 0 {
			lo.Set(c)
		}
	}
	hi := newFloatAt(big.ToPositiveInf)
	hi.Set(candHi[0])
	for _, c := range candHi[1:] {
		if c.Cmp(hi) > 0 {
			hi.Set(c)
		}
	}
	return newBF(lo, hi)
}

func (b *bigInterval) Sqr() Interval {
	if b.nan {
		return nanBF()
	}
	zero := newFloatAt(big.ToNegativeInf)
	if b.lo.Sign() >= 0 {
		return &bigInterval{lo: mulAt(big.ToNegativeInf, b.lo, b.lo), hi: mulAt(big.ToPositiveInf, b.hi, b.hi)}
	}
	if b.hi.Sign() <= 0 {
		return &bigInterval{lo: mulAt(big.ToNegativeInf, b.hi, b.hi), hi: mulAt(big.ToPositiveInf, b.lo, b.lo)}
	}
	hiLo, hiHi := mulAt(big.ToPositiveInf, b.lo, b.lo), mulAt(big.ToPositiveInf, b.hi, b.hi)
	hi := hiLo
	if hiHi.Cmp(hi) > 0 {
		hi = hiHi
	}
	return &bigInterval{lo: zero, hi: hi}
}

func (b *bigInterval) Sqrt() Interval {
	if b.nan || b.lo.Sign() < 0 {
		return nanBF()
	}
	lo := newFloatAt(big.ToNegativeInf)
	lo.Sqrt(b.lo)
	hi := newFloatAt(big.ToPositiveInf)
	hi.Sqrt(b.hi)
	return newBF(lo, hi)
}

// cosSeries evaluates cos(x) for an x already reduced to [-pi, pi] by
// reduceAngle, by Taylor series at workingPrecision with a fixed 30-term
// iteration count.
func cosSeries(x *big.Float) *big.Float {
	term := big.NewFloat(1).SetPrec(workingPrecision)
	sum := big.NewFloat(1).SetPrec(workingPrecision)
	x2 := new(big.Float).SetPrec(workingPrecision).Mul(x, x)
	for k := 1; k <= 30; k++ {
		denom := big.NewFloat(float64(-(2*k - 1) * (2 * k)))
		term = new(big.Float).SetPrec(workingPrecision).Mul(term, x2)
		term = new(big.Float).SetPrec(workingPrecision).Quo(term, denom)
		sum = new(big.Float).SetPrec(workingPrecision).Add(sum, term)
	}
	return sum
}

func sinSeries(x *big.Float) *big.Float {
	term := new(big.Float).SetPrec(workingPrecision).Set(x)
	sum := new(big.Float).SetPrec(workingPrecision).Set(x)
	x2 := new(big.Float).SetPrec(workingPrecision).Mul(x, x)
	for k := 1; k <= 30; k++ {
		denom := big.NewFloat(float64(-(2 * k) * (2*k + 1)))
		term = new(big.Float).SetPrec(workingPrecision).Mul(term, x2)
		term = new(big.Float).SetPrec(workingPrecision).Quo(term, denom)
		sum = new(big.Float).SetPrec(workingPrecision).Add(sum, term)
	}
	return sum
}

// reduceAngle brings x into [-pi, pi] by subtracting the nearest multiple
// of tau, returning the reduced value and cos/sin's sign flips needed
// (none: cos/sin are tau-periodic so the reduced value alone suffices).
func reduceAngle(x *big.Float) *big.Float {
	pi := bigPi()
	tau := new(big.Float).SetPrec(workingPrecision).Mul(pi, big.NewFloat(2))
	q := new(big.Float).SetPrec(workingPrecision).Quo(x, tau)
	qi, _ := q.Int(nil)
	qf := new(big.Float).SetPrec(workingPrecision).SetInt(qi)
	reduced := new(big.Float).SetPrec(workingPrecision).Sub(x, new(big.Float).SetPrec(workingPrecision).Mul(qf, tau))
	if reduced.Cmp(pi) > 0 {
		reduced.Sub(reduced, tau)
	}
	if reduced.Cmp(new(big.Float).Neg(pi)) < 0 {
		reduced.Add(reduced, tau)
	}
	return reduced
}

func bigCos(x *big.Float) *big.Float { return cosSeries(reduceAngle(x)) }
func bigSin(x *big.Float) *big.Float { return sinSeries(reduceAngle(x)) }

// Cos/Sin reuse the same straddle case analysis as the float backends
// (spec.md §4.A), evaluated at the endpoints via the Taylor series above.
func (b *bigInterval) Cos() Interval {
	if b.nan {
		return nanBF()
	}
	lof, _ := b.lo.Float64()
	hif, _ := b.hi.Float64()
	a, _ := bigCos(b.lo).Float64()
	bb, _ := bigCos(b.hi).Float64()
	mn, mx := a, bb
	if mn > mx {
		mn, mx = mx, mn
	}
	if straddles(lof, hif, 0, 2*pi64) {
		mx = 1
	}
	if straddles(lof, hif, pi64, 2*pi64) {
		mn = -1
	}
	return newBF(big.NewFloat(mn).SetPrec(workingPrecision), big.NewFloat(mx).SetPrec(workingPrecision))
}

func (b *bigInterval) Sin() Interval {
	if b.nan {
		return nanBF()
	}
	lof, _ := b.lo.Float64()
	hif, _ := b.hi.Float64()
	a, _ := bigSin(b.lo).Float64()
	bb, _ := bigSin(b.hi).Float64()
	mn, mx := a, bb
	if mn > mx {
		mn, mx = mx, mn
	}
	if straddles(lof, hif, pi64/2, 2*pi64) {
		mx = 1
	}
	if straddles(lof, hif, -pi64/2, 2*pi64) {
		mn = -1
	}
	return newBF(big.NewFloat(mn).SetPrec(workingPrecision), big.NewFloat(mx).SetPrec(workingPrecision))
}

func (b *bigInterval) Tan() Interval {
	if b.nan {
		return nanBF()
	}
	lof, _ := b.lo.Float64()
	hif, _ := b.hi.Float64()
	if straddles(lof, hif, pi64/2, pi64) {
		return nanBF()
	}
	c := bigCos(b.lo)
	if c.Sign() == 0 {
		return nanBF()
	}
	s := bigSin(b.lo)
	a := new(big.Float).SetPrec(workingPrecision).Quo(s, c)
	c2 := bigCos(b.hi)
	s2 := bigSin(b.hi)
	if c2.Sign() == 0 {
		return nanBF()
	}
	bb := new(big.Float).SetPrec(workingPrecision).Quo(s2, c2)
	lo, hi := a, bb
	if lo.Cmp(hi) > 0 {
		lo, hi = hi, lo
	}
	return newBF(lo, hi)
}

// newtonInverse solves f(t) = target for t via Newton's method using
// derivative df, starting from a float64 seed; used for Acos/Asin since
// neither altb nor math/big exposes them directly.
func newtonInverse(target *big.Float, seed float64, f, df func(*big.Float) *big.Float) *big.Float {
	t := big.NewFloat(seed).SetPrec(workingPrecision)
	for i := 0; i < 40; i++ {
		fx := f(t)
		diff := new(big.Float).SetPrec(workingPrecision).Sub(fx, target)
		d := df(t)
		if d.Sign() == 0 {
			break
		}
		step := new(big.Float).SetPrec(workingPrecision).Quo(diff, d)
		t = new(big.Float).SetPrec(workingPrecision).Sub(t, step)
	}
	return t
}

func (b *bigInterval) Acos() Interval {
	if b.nan {
		return nanBF()
	}
	one := big.NewFloat(1)
	if b.lo.Cmp(new(big.Float).Neg(one)) < 0 || b.hi.Cmp(one) > 0 {
		return nanBF()
	}
	loF, _ := b.lo.Float64()
	hiF, _ := b.hi.Float64()
	acosAt := func(v *big.Float, seed float64) *big.Float {
		return newtonInverse(v, seed, bigCos, func(t *big.Float) *big.Float {
			return new(big.Float).SetPrec(workingPrecision).Neg(bigSin(t))
		})
	}
	// acos is decreasing: acos(hi) <= acos(lo).
	lo := acosAt(b.hi, mathAcos(hiF))
	hi := acosAt(b.lo, mathAcos(loF))
	return newBF(lo, hi)
}

func (b *bigInterval) Asin() Interval {
	if b.nan {
		return nanBF()
	}
	one := big.NewFloat(1)
	if b.lo.Cmp(new(big.Float).Neg(one)) < 0 || b.hi.Cmp(one) > 0 {
		return nanBF()
	}
	loF, _ := b.lo.Float64()
	hiF, _ := b.hi.Float64()
	asinAt := func(v *big.Float, seed float64) *big.Float {
		return newtonInverse(v, seed, bigSin, bigCos)
	}
	lo := asinAt(b.lo, mathAsin(loF))
	hi := asinAt(b.hi, mathAsin(hiF))
	return newBF(lo, hi)
}

func (b *bigInterval) Atan() Interval {
	if b.nan {
		return nanBF()
	}
	// atan(x) = asin(x / sqrt(1+x^2)); reuse Asin's Newton solve per bound.
	oneF := new(big.Float).SetPrec(workingPrecision).SetInt64(1)
	transform := func(x *big.Float) *big.Float {
		x2 := new(big.Float).SetPrec(workingPrecision).Mul(x, x)
		denom := new(big.Float).SetPrec(workingPrecision).Add(oneF, x2)
		sq := new(big.Float).SetPrec(workingPrecision).Sqrt(denom)
		return new(big.Float).SetPrec(workingPrecision).Quo(x, sq)
	}
	lo := transform(b.lo)
	hi := transform(b.hi)
	loF, _ := lo.Float64()
	hiF, _ := hi.Float64()
	asinAt := func(v *big.Float, seed float64) *big.Float {
		return newtonInverse(v, seed, bigSin, bigCos)
	}
	return newBF(asinAt(lo, mathAsin(loF)), asinAt(hi, mathAsin(hiF)))
}

func (b *bigInterval) Hull(other Interval) Interval {
	o, ok := other.(*bigInterval)
	if b.nan {
		if !ok || o.nan {
			return nanBF()
		}
		return newBF(new(big.Float).Copy(o.lo), new(big.Float).Copy(o.hi))
	}
	if !ok || o.nan {
		return newBF(new(big.Float).Copy(b.lo), new(big.Float).Copy(b.hi))
	}
	lo := b.lo
	if o.lo.Cmp(lo) < 0 {
		lo = o.lo
	}
	hi := b.hi
	if o.hi.Cmp(hi) > 0 {
		hi = o.hi
	}
	return newBF(new(big.Float).Copy(lo), new(big.Float).Copy(hi))
}

// BigFloatKernel is the arbitrary-precision backend (spec.md §4.A backend
// 3): wraps math/big.Float at a fixed working precision, using its native
// directed-rounding modes, with github.com/ALTree/bigfloat supplying
// Exp/Log/Pow for transcendentals math/big itself lacks (used by Pow, see
// below; Cos/Sin/Tan/Acos/Asin/Atan are hand-rolled since neither library
// exposes trigonometric functions — recorded in DESIGN.md).
type BigFloatKernel struct{}

// NewBigFloatKernel constructs the arbitrary-precision backend.
func NewBigFloatKernel() *BigFloatKernel { return &BigFloatKernel{} }

func (BigFloatKernel) Backend() Backend { return BigFloat }

func (BigFloatKernel) FromInt(n int64) Interval {
	f := new(big.Float).SetPrec(workingPrecision).SetInt64(n)
	return newBF(f, new(big.Float).Copy(f))
}

func (BigFloatKernel) FromString(s string) (Interval, error) {
	lo := newFloatAt(big.ToNegativeInf)
	_, _, err := lo.Parse(s, 10)
	if err != nil {
		return nanBF(), err
	}
	hi := newFloatAt(big.ToPositiveInf)
	_, _, _ = hi.Parse(s, 10)
	return newBF(lo, hi), nil
}

func (BigFloatKernel) FromBounds(lo, hi float64) Interval {
	return newBF(big.NewFloat(lo).SetPrec(workingPrecision), big.NewFloat(hi).SetPrec(workingPrecision))
}

func (BigFloatKernel) Pi() Interval {
	lo, _, _ := big.ParseFloat(piDigits, 10, workingPrecision, big.ToNegativeInf)
	hi, _, _ := big.ParseFloat(piDigits, 10, workingPrecision, big.ToPositiveInf)
	return newBF(lo, hi)
}
func (k BigFloatKernel) Tau() Interval {
	p := k.Pi().(*bigInterval)
	two := big.NewFloat(2)
	return newBF(mulAt(big.ToNegativeInf, p.lo, two), mulAt(big.ToPositiveInf, p.hi, two))
}
func (BigFloatKernel) NaN() Interval { return nanBF() }
func (BigFloatKernel) Zero() Interval {
	z := new(big.Float).SetPrec(workingPrecision)
	return newBF(z, new(big.Float).Copy(z))
}

// powBig exposes ALTree/bigfloat.Pow for x^y at working precision. No
// Interval method and no other package calls it.
func powBig(x *big.Float, y float64) *big.Float {
	return altb.Pow(x, big.NewFloat(y))
}
