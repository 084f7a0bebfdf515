package interval

import "math"

// HWFloatKernel stands in for "wraps an existing rounded-float interval
// library" (spec.md §4.A backend 2): same float64 representation as
// FastKernel, but widened by a larger safety margin, matching the extra
// conservatism a standalone vetted interval library typically carries over
// a hand-rolled one. No such third-party package appears anywhere in the
// retrieval pack (see DESIGN.md); this backend exists so the module still
// exercises the three-backend contract and the "backend agreement"
// testable property (spec.md §8) without inventing a dependency that was
// never retrieved.
type HWFloatKernel struct{}

// NewHWFloatKernel constructs the wrapped-library-style backend.
func NewHWFloatKernel() *HWFloatKernel { return &HWFloatKernel{} }

func (HWFloatKernel) Backend() Backend { return HWFloat }

func (HWFloatKernel) FromInt(n int64) Interval {
	v := float64(n)
	return newRF(HWFloat, 2, v, v)
}

func (HWFloatKernel) FromString(s string) (Interval, error) {
	v, err := parseRationalFloat(s)
	if err != nil {
		return nanRF(HWFloat, 2), err
	}
	return newRF(HWFloat, 2, v, v), nil
}

func (HWFloatKernel) FromBounds(lo, hi float64) Interval {
	return newRF(HWFloat, 2, lo, hi)
}

func (HWFloatKernel) Pi() Interval  { return newRF(HWFloat, 2, math.Pi, math.Pi) }
func (HWFloatKernel) Tau() Interval { return newRF(HWFloat, 2, 2*math.Pi, 2*math.Pi) }
func (HWFloatKernel) NaN() Interval { return nanRF(HWFloat, 2) }
func (HWFloatKernel) Zero() Interval {
	return newRF(HWFloat, 2, 0, 0)
}
