package geom

import "errors"

// ErrDegenerateEdge indicates a hull or polygon construction produced a
// zero-length edge that could not be merged away — spec.md §4.F failure
// semantics and §7 category 3 (fatal, abort worker, log the vertex set).
var ErrDegenerateEdge = errors.New("geom: degenerate (zero-length) edge")

// ErrEmptyPolygon indicates an operation required at least one edge.
var ErrEmptyPolygon = errors.New("geom: polygon has no edges")
