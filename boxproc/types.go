package boxproc

import (
	"github.com/arvo-stacks/rupert/boxindex"
	"github.com/arvo-stacks/rupert/geom"
	"github.com/arvo-stacks/rupert/interval"
)

// State names the per-box state machine of spec.md §4.H: "states = {fresh,
// shadowed, inner-running, eliminated, non-terminal, budget-exhausted}".
// Process runs the fresh->shadowed->inner-running transitions internally
// in one call and returns only a terminal or re-queue state; fresh and
// shadowed never escape Process itself, but are named here so the pipeline
// can report "where a box was" in logs without guessing.
type State int

const (
	StateFresh State = iota
	StateShadowed
	StateInnerRunning
	StateEliminated
	StateNonTerminal
	StateBudgetExhausted
)

// String renders the state name for logs.
func (s State) String() string {
	switch s {
	case StateFresh:
		return "fresh"
	case StateShadowed:
		return "shadowed"
	case StateInnerRunning:
		return "inner-running"
	case StateEliminated:
		return "eliminated"
	case StateNonTerminal:
		return "non-terminal"
	case StateBudgetExhausted:
		return "budget-exhausted"
	default:
		return "unknown"
	}
}

// Config bundles the inputs Process needs beyond the single 3-box it
// consumes (spec.md §6 configuration, restricted to what the box processor
// itself reads).
type Config struct {
	Kernel interval.Kernel
	Hole   *geom.Polyhedron
	Plug   *geom.Polyhedron

	// ProjectionResolution / RotationResolution are r_proj/r_rot, the N
	// passed to hull.ProjectionHullPolygon / hull.RotationHullPolygon
	// (spec.md §4.D, §6).
	ProjectionResolution int
	RotationResolution   int

	// RectangleIterationLimit is N_inner, the per-3-box inner 2-box
	// iteration cap (spec.md §4.H, §6). 0 = unlimited.
	RectangleIterationLimit int

	// SymmetrySkip enables the optional termination shortcut of spec.md
	// §4.H.3.a. SymmetryEpsilon is the angular-distance budget it's judged
	// against; <= 0 disables the skip regardless of SymmetrySkip.
	SymmetrySkip    bool
	SymmetryEpsilon float64
}

// Outcome is what Process reports for one 3-box.
type Outcome struct {
	State State

	// Certificate is set only when State == StateEliminated.
	Certificate *boxindex.EliminatedBox3

	// Children is set when State == StateNonTerminal (passage witnessed) or
	// StateBudgetExhausted (re-queued as 8 fresh children); nil otherwise.
	Children []boxindex.Box3

	// Residual marks a box that hit the depth cap before being eliminated,
	// witnessed, or further subdivided (spec.md §4.H.4, §7 category 1) — it
	// is neither a certificate nor a re-queue; the caller routes it to the
	// residual log (SPEC_FULL §3 item 3).
	Residual bool

	// Witness carries the midpoint orientation that witnessed a passage
	// (State == StateNonTerminal), purely informational (SPEC_FULL §3
	// item 4) — never consulted for control flow.
	Witness *boxindex.Orientation5
}
