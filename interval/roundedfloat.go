package interval

import (
	"fmt"
	"math"
	"strconv"
)

// roundedFloat backs both the Fast and HWFloat backends: a [lo, hi] pair of
// float64 bounds, widened outward by margin ULPs after every operation to
// stand in for true per-operation directed rounding (Go exposes no portable
// per-thread FPU rounding-mode control, unlike the C++ original; spec.md §9
// flags this as a platform-dependent implementation detail). Fast uses
// margin=1 (closest available imitation of hardware directed rounding);
// HWFloat uses margin=2, modeling the extra conservatism a vetted rounded-
// float interval library adds over a hand-rolled one.
type roundedFloat struct {
	lo, hi float64
	margin int
	nan    bool
	kind   Backend
}

func widenOutward(lo, hi float64, margin int) (float64, float64) {
	for i := 0; i < margin; i++ {
		lo = math.Nextafter(lo, math.Inf(-1))
		hi = math.Nextafter(hi, math.Inf(1))
	}
	return lo, hi
}

func newRF(kind Backend, margin int, lo, hi float64) *roundedFloat {
	if math.IsNaN(lo) || math.IsNaN(hi) || lo > hi {
		return &roundedFloat{nan: true, kind: kind, margin: margin}
	}
	lo, hi = widenOutward(lo, hi, margin)
	return &roundedFloat{lo: lo, hi: hi, margin: margin, kind: kind}
}

func nanRF(kind Backend, margin int) *roundedFloat {
	return &roundedFloat{nan: true, kind: kind, margin: margin}
}

func (r *roundedFloat) Backend() Backend { return r.kind }
func (r *roundedFloat) IsNaN() bool      { return r.nan }

func (r *roundedFloat) Min() float64 {
	if r.nan {
		return math.NaN()
	}
	return r.lo
}
func (r *roundedFloat) Max() float64 {
	if r.nan {
		return math.NaN()
	}
	return r.hi
}
func (r *roundedFloat) Mid() float64 {
	if r.nan {
		return math.NaN()
	}
	return (r.lo + r.hi) / 2
}
func (r *roundedFloat) Len() float64 {
	if r.nan {
		return math.NaN()
	}
	return r.hi - r.lo
}
func (r *roundedFloat) Rad() float64 { return r.Len() / 2 }

func (r *roundedFloat) IsPositive() bool { return !r.nan && r.lo > 0 }
func (r *roundedFloat) IsNegative() bool { return !r.nan && r.hi < 0 }
func (r *roundedFloat) IsNonzero() bool  { return r.IsPositive() || r.IsNegative() }

func (r *roundedFloat) Gt(other Interval) bool {
	o, ok := other.(*roundedFloat)
	if r.nan || !ok || o.nan {
		return false
	}
	return r.lo > o.hi
}
func (r *roundedFloat) Lt(other Interval) bool {
	o, ok := other.(*roundedFloat)
	if r.nan || !ok || o.nan {
		return false
	}
	return r.hi < o.lo
}

func (r *roundedFloat) binary(other Interval, f func(lo, hi float64) (float64, float64)) *roundedFloat {
	o, ok := other.(*roundedFloat)
	if r.nan || !ok || o.nan {
		return nanRF(r.kind, r.margin)
	}
	lo, hi := f(o.lo, o.hi)
	return newRF(r.kind, r.margin, lo, hi)
}

func (r *roundedFloat) Add(other Interval) Interval {
	return r.binary(other, func(lo, hi float64) (float64, float64) {
		return r.lo + lo, r.hi + hi
	})
}

func (r *roundedFloat) Sub(other Interval) Interval {
	return r.binary(other, func(lo, hi float64) (float64, float64) {
		return r.lo - hi, r.hi - lo
	})
}

func (r *roundedFloat) Neg() Interval {
	if r.nan {
		return nanRF(r.kind, r.margin)
	}
	return newRF(r.kind, r.margin, -r.hi, -r.lo)
}

func (r *roundedFloat) Mul(other Interval) Interval {
	return r.binary(other, func(lo, hi float64) (float64, float64) {
		candidates := [4]float64{r.lo * lo, r.lo * hi, r.hi * lo, r.hi * hi}
		mn, mx := candidates[0], candidates[0]
		for _, c := range candidates[1:] {
			if c < mn {
				mn = c
			}
			if c > mx {
				mx = c
			}
		}
		return mn, mx
	})
}

func (r *roundedFloat) Div(other Interval) Interval {
	o, ok := other.(*roundedFloat)
	if r.nan || !ok || o.nan || (o.lo <= 0 && o.hi >= 0) {
		// zero-crossing divisor: NaN, never ±Inf (spec.md §4.A failure semantics).
		return nanRF(r.kind, r.margin)
	}
	candidates := [4]float64{r.lo / o.lo, r.lo / o.hi, r.hi / o.lo, r.hi / o.hi}
	mn, mx := candidates[0], candidates[0]
	for _, c := range candidates[1:] {
		if c < mn {
			mn = c
		}
		if c > mx {
			mx = c
		}
	}
	return newRF(r.kind, r.margin, mn, mx)
}

func (r *roundedFloat) Sqr() Interval {
	if r.nan {
		return nanRF(r.kind, r.margin)
	}
	if r.lo >= 0 {
		return newRF(r.kind, r.margin, r.lo*r.lo, r.hi*r.hi)
	}
	if r.hi <= 0 {
		return newRF(r.kind, r.margin, r.hi*r.hi, r.lo*r.lo)
	}
	mx := math.Max(r.lo*r.lo, r.hi*r.hi)
	return newRF(r.kind, r.margin, 0, mx)
}

func (r *roundedFloat) Sqrt() Interval {
	if r.nan || r.lo < 0 {
		return nanRF(r.kind, r.margin)
	}
	return newRF(r.kind, r.margin, math.Sqrt(r.lo), math.Sqrt(r.hi))
}

// straddles reports, for a query [lo,hi], whether it straddles a point of
// the form base+k*period for some integer k — i.e. floor((lo-base)/period)
// != floor((hi-base)/period). Used by Cos/Sin to detect a contained
// extremum.
func straddles(lo, hi, base, period float64) bool {
	return math.Floor((lo-base)/period) != math.Floor((hi-base)/period)
}

func (r *roundedFloat) Cos() Interval {
	if r.nan {
		return nanRF(r.kind, r.margin)
	}
	a, b := math.Cos(r.lo), math.Cos(r.hi)
	mn, mx := math.Min(a, b), math.Max(a, b)
	if straddles(r.lo, r.hi, 0, 2*math.Pi) {
		mx = 1
	}
	if straddles(r.lo, r.hi, math.Pi, 2*math.Pi) {
		mn = -1
	}
	return newRF(r.kind, r.margin, mn, mx)
}

func (r *roundedFloat) Sin() Interval {
	if r.nan {
		return nanRF(r.kind, r.margin)
	}
	a, b := math.Sin(r.lo), math.Sin(r.hi)
	mn, mx := math.Min(a, b), math.Max(a, b)
	if straddles(r.lo, r.hi, math.Pi/2, 2*math.Pi) {
		mx = 1
	}
	if straddles(r.lo, r.hi, -math.Pi/2, 2*math.Pi) {
		mn = -1
	}
	return newRF(r.kind, r.margin, mn, mx)
}

func (r *roundedFloat) Tan() Interval {
	if r.nan || straddles(r.lo, r.hi, math.Pi/2, math.Pi) {
		return nanRF(r.kind, r.margin)
	}
	a, b := math.Tan(r.lo), math.Tan(r.hi)
	return newRF(r.kind, r.margin, math.Min(a, b), math.Max(a, b))
}

func (r *roundedFloat) Acos() Interval {
	if r.nan || r.lo < -1 || r.hi > 1 {
		return nanRF(r.kind, r.margin)
	}
	// acos is monotonically decreasing.
	return newRF(r.kind, r.margin, math.Acos(r.hi), math.Acos(r.lo))
}

func (r *roundedFloat) Asin() Interval {
	if r.nan || r.lo < -1 || r.hi > 1 {
		return nanRF(r.kind, r.margin)
	}
	return newRF(r.kind, r.margin, math.Asin(r.lo), math.Asin(r.hi))
}

func (r *roundedFloat) Atan() Interval {
	if r.nan {
		return nanRF(r.kind, r.margin)
	}
	return newRF(r.kind, r.margin, math.Atan(r.lo), math.Atan(r.hi))
}

func (r *roundedFloat) Hull(other Interval) Interval {
	o, ok := other.(*roundedFloat)
	if r.nan {
		if !ok || o.nan {
			return nanRF(r.kind, r.margin)
		}
		return newRF(r.kind, r.margin, o.lo, o.hi)
	}
	if !ok || o.nan {
		return newRF(r.kind, r.margin, r.lo, r.hi)
	}
	return newRF(r.kind, r.margin, math.Min(r.lo, o.lo), math.Max(r.hi, o.hi))
}

func parseRationalFloat(s string) (float64, error) {
	// Accept "a/b" as well as plain decimal/scientific literals, since
	// spec.md §6 allows vertex components to be "rationals or reals".
	for i := 0; i < len(s); i++ {
		if s[i] == '/' {
			num, err := strconv.ParseFloat(s[:i], 64)
			if err != nil {
				return 0, err
			}
			den, err := strconv.ParseFloat(s[i+1:], 64)
			if err != nil {
				return 0, err
			}
			if den == 0 {
				return 0, fmt.Errorf("interval: zero denominator in %q", s)
			}
			return num / den, nil
		}
	}
	return strconv.ParseFloat(s, 64)
}
