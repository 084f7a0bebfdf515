package interval

import "math"

// FastKernel is the hardware-float backend: bounds are plain float64,
// widened outward by a single ULP per operation (roundedFloat, margin=1).
// It is the cheapest backend. The box processor and pipeline run on
// whichever Kernel the caller configures; there is no automatic fallback
// from one backend to another.
type FastKernel struct{}

// NewFastKernel constructs the hardware-float backend.
func NewFastKernel() *FastKernel { return &FastKernel{} }

func (FastKernel) Backend() Backend { return Fast }

func (FastKernel) FromInt(n int64) Interval {
	v := float64(n)
	return newRF(Fast, 1, v, v)
}

func (FastKernel) FromString(s string) (Interval, error) {
	v, err := parseRationalFloat(s)
	if err != nil {
		return nanRF(Fast, 1), err
	}
	return newRF(Fast, 1, v, v), nil
}

func (FastKernel) FromBounds(lo, hi float64) Interval {
	return newRF(Fast, 1, lo, hi)
}

func (FastKernel) Pi() Interval  { return newRF(Fast, 1, math.Pi, math.Pi) }
func (FastKernel) Tau() Interval { return newRF(Fast, 1, 2*math.Pi, 2*math.Pi) }
func (FastKernel) NaN() Interval { return nanRF(Fast, 1) }
func (FastKernel) Zero() Interval {
	return newRF(Fast, 1, 0, 0)
}
