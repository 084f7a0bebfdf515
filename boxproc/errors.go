package boxproc

import (
	"fmt"

	"github.com/arvo-stacks/rupert/boxindex"
)

// HullError reports a hole-shadow hull construction failure: a zero-length
// edge the gift wrap could not merge away, or a tournament that never
// closed (spec.md §7 category 3 — fatal, abort the worker, log the vertex
// set that triggered it).
type HullError struct {
	Stage string // "hole-shadow" today; room for future hull sites
	Box   boxindex.Box3
	Err   error
}

func (e *HullError) Error() string {
	return fmt.Sprintf("boxproc: %s hull construction failed for box %+v: %v", e.Stage, e.Box, e.Err)
}

func (e *HullError) Unwrap() error { return e.Err }
