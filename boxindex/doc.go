// Package boxindex implements the dyadic subdivision index (Range) and the
// Box2/Box3 tuples built from it, tiling the angular search space S1, S2xS1,
// and S2xS2xS1 (spec.md §3 Range, Box2, Box3).
//
// Range arithmetic is pure bit manipulation: constructing, subdividing, and
// packing a Range never touches floating point. Only Fraction and Scale
// (mapping a Range to its Interval enclosure) cross into the interval
// package.
package boxindex
