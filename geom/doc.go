// Package geom implements the interval-safe geometric primitives the prover
// reasons about: Edge (an ordered pair of Vector2), Polygon (a convex,
// counterclockwise loop of Edges), and Polyhedron (a vertex set whose
// convex hull is implicit).
//
// Every predicate here is conservative: a "true" result is a machine-
// checked proof (spec.md glossary: "provably"); a "false" result never
// implies the opposite holds, only that the proof did not go through at
// the calling backend's precision.
package geom
