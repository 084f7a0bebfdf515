package boxindex

import (
	"errors"
	"fmt"

	"github.com/arvo-stacks/rupert/interval"
)

// MaxDepth is D_max (spec.md §3: "Depth cap D_max ~ 16"). A Range at this
// depth cannot be further subdivided; Parts() reports overflow instead.
const MaxDepth = 16

// ErrOverflow is the recoverable "cannot further refine" signal surfaced by
// Parts() when depth == MaxDepth (spec.md §4.C).
var ErrOverflow = errors.New("boxindex: range already at maximum depth")

// Range is the dyadic index `(depth, bits)` representing the half-open
// sub-interval [bits/2^depth, (bits+1)/2^depth) of [0,1) (spec.md §3).
type Range struct {
	Depth uint8
	Bits  uint32
}

// RootRange is the full [0,1) range at depth 0.
func RootRange() Range { return Range{Depth: 0, Bits: 0} }

// Parts returns the two children of r: depth+1, bits doubled and doubled+1.
// Returns ErrOverflow (r unchanged — caller reports r as terminal/residual)
// when r is already at MaxDepth.
func (r Range) Parts() (Range, Range, error) {
	if r.Depth >= MaxDepth {
		return r, r, ErrOverflow
	}
	return Range{Depth: r.Depth + 1, Bits: r.Bits * 2},
		Range{Depth: r.Depth + 1, Bits: r.Bits*2 + 1},
		nil
}

// IsOverflow reports whether r is at the depth cap.
func (r Range) IsOverflow() bool { return r.Depth >= MaxDepth }

// Pack encodes r onto the wire as a single integer `2^depth | bits`, whose
// leading one-bit recovers the depth (spec.md §3).
func (r Range) Pack() uint32 {
	return (uint32(1) << r.Depth) | r.Bits
}

// Unpack decodes a packed range, recovering depth from the position of the
// leading one-bit.
func Unpack(packed uint32) (Range, error) {
	if packed == 0 {
		return Range{}, fmt.Errorf("boxindex: invalid packed range 0")
	}
	depth := 0
	for p := packed; p > 1; p >>= 1 {
		depth++
	}
	bits := packed - (uint32(1) << depth)
	return Range{Depth: uint8(depth), Bits: bits}, nil
}

// Fraction returns the exact rational enclosure [bits/2^depth,
// (bits+1)/2^depth) as an Interval via k — a narrow, exact enclosure since
// both endpoints are exactly representable dyadic rationals.
func (r Range) Fraction(k interval.Kernel) interval.Interval {
	denom := float64(uint64(1) << r.Depth)
	lo := float64(r.Bits) / denom
	hi := float64(r.Bits+1) / denom
	return k.FromBounds(lo, hi)
}

// Scale returns r's fraction scaled by factor (e.g. Tau() for theta/alpha,
// Pi() for phi), yielding the angular Interval enclosure.
func (r Range) Scale(k interval.Kernel, factor interval.Interval) interval.Interval {
	return r.Fraction(k).Mul(factor)
}

// Less implements the priority-queue ordering of spec.md §3: shallower
// boxes first, then lexicographically by bits.
func (r Range) Less(o Range) bool {
	if r.Depth != o.Depth {
		return r.Depth < o.Depth
	}
	return r.Bits < o.Bits
}
