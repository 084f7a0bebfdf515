// Package boxproc implements the box processor (spec.md §4.H): a pure
// function of (configuration, one 3-box B) that builds the hole shadow
// polygon, runs the inner 2-box subdivision against it, and reports either
// an elimination certificate, a passage witness (B is not terminal), or a
// subdivision into 8 children when the inner iteration budget runs out
// before either outcome is reached.
//
// Process never mutates shared state: the polyhedron vertex handles it
// reads are immutable after configuration (spec.md §9 "reference-counted
// polyhedron vertices"), so it is safe to call concurrently from every
// pipeline worker.
package boxproc
