package pipeline

import "go.uber.org/atomic"

// idleGate detects when the outer work queue is genuinely, permanently
// empty rather than merely empty at one instant (spec.md §4.I "Suspension
// points"/"Ordering guarantees"). No single worker can tell the difference
// between "queue is drained" and "queue is momentarily empty, another
// worker is about to refill it" — a worker only knows its own state.
//
// The invariant this relies on: a worker calls markBusy before it pops a
// box and markIdle only after every child/requeue push that processing box
// produced has already landed in the outer queue. So if every worker is
// simultaneously idle, none of them has outstanding work that could still
// repopulate the queue — combined with an empty queue size, that is proof
// the search is complete, not a momentary coincidence.
type idleGate struct {
	total int64
	idle  atomic.Int64
}

func newIdleGate(total int) *idleGate {
	g := &idleGate{total: int64(total)}
	g.idle.Store(g.total) // every worker starts parked, before its first Pop
	return g
}

func (g *idleGate) markBusy() { g.idle.Dec() }
func (g *idleGate) markIdle() { g.idle.Inc() }

// allIdle reports whether every worker is currently parked.
func (g *idleGate) allIdle() bool {
	return g.idle.Load() >= g.total
}
