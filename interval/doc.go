// Package interval implements the rigorous interval-arithmetic kernel the
// rest of this module is built on: every downstream geometric predicate is
// sound only because every Interval operation here returns a result that
// provably contains the image of every concrete real value in its inputs.
//
// Three interchangeable backends implement the same Kernel/Interval
// contract:
//
//   - Fast       — float64 bounds, outward-rounded by one ULP per operation.
//   - HWFloat     — float64 bounds, outward-rounded by a wider safety margin,
//     standing in for a separately-vetted rounded-float interval library.
//   - BigFloat    — arbitrary-precision bounds (math/big.Float) using the
//     type's native directed-rounding modes, for when float64 rounding
//     error would swallow the result.
//
// Soundness contract (tested in property_test.go): for every supported
// operation f and every concrete x in I, f(x) is contained in I.f().
// NaN propagates through every operation. Division by a zero-crossing
// interval yields NaN rather than ±Inf, so finite interval arithmetic never
// produces an accidental ∞·0.
//
// Callers select one Kernel at process start and thread it through; nothing
// in this package holds global mutable state except BigFloat's process-wide
// working precision (see bigfloat.go).
package interval
