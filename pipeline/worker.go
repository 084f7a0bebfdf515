package pipeline

import (
	"context"
	"log"
	"time"

	"github.com/arvo-stacks/rupert/boxindex"
	"github.com/arvo-stacks/rupert/boxproc"
	"github.com/arvo-stacks/rupert/queue"
)

// idlePollInterval is how long a worker parks after observing an empty
// outer queue before trying again (spec.md §4.I "Suspension points": a
// worker with nothing to do must not spin).
const idlePollInterval = 2 * time.Millisecond

// workerLoop repeatedly pops a 3-box from outer, runs boxproc.Process on
// it, and routes the outcome to certs, back onto outer, or to residuals —
// following the teacher's context.Context-as-cancellation idiom
// (flow.Dinic checks ctx at the top of every outer iteration). It returns
// when ctx is canceled or Process returns a fatal error.
func workerLoop(
	ctx context.Context,
	bcfg boxproc.Config,
	outer *queue.Box3PriorityQueue,
	certs *queue.CertificateFIFO,
	residuals *residualSink,
	gate *idleGate,
	logger *log.Logger,
	debug bool,
) error {
	idle := true // newIdleGate counts every worker as parked at the start
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if idle {
			gate.markBusy()
			idle = false
		}
		b, ok := outer.Pop()
		if !ok {
			gate.markIdle()
			idle = true
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(idlePollInterval):
			}
			continue
		}

		outcome, err := boxproc.Process(bcfg, b)
		if err != nil {
			return err
		}
		if debug {
			logger.Printf("pipeline: processed box theta=%v phi=%v alpha=%v -> %s", b.Theta, b.Phi, b.Alpha, outcome.State)
		}

		if err := route(b, outcome, outer, certs, residuals); err != nil {
			return err
		}
	}
}

// route dispatches one Process outcome to its destination (spec.md §4.H's
// state machine, terminal edges only — Process already ran the internal
// fresh/shadowed/inner-running transitions).
func route(b boxindex.Box3, outcome boxproc.Outcome, outer *queue.Box3PriorityQueue, certs *queue.CertificateFIFO, residuals *residualSink) error {
	switch {
	case outcome.Residual:
		return residuals.push(b)
	case outcome.State == boxproc.StateEliminated:
		certs.Push(*outcome.Certificate)
		return nil
	case len(outcome.Children) > 0:
		outer.PushAll(outcome.Children)
		return nil
	default:
		return residuals.push(b)
	}
}
