package pipeline

import (
	"context"
	"log"
	"time"

	"github.com/arvo-stacks/rupert/queue"
	"github.com/arvo-stacks/rupert/store"
)

// exportPollInterval is how often the exporter checks the certificate
// queue size and the drained condition.
const exportPollInterval = 10 * time.Millisecond

// drainCertificates appends every currently queued certificate to certLog.
func drainCertificates(certs *queue.CertificateFIFO, certLog *store.CertificateLog) error {
	pending := certs.PopAll()
	if len(pending) == 0 {
		return nil
	}
	return certLog.Append(pending)
}

// exporterLoop drains certs into certLog whenever it grows past threshold,
// and watches for either of the two ways a run ends:
//
//   - runCtx is canceled (the caller's external stop signal, spec.md
//     §4.I): exporterLoop stops and reports StoppedCheckpointed.
//   - the outer queue is observed drained (idleGate.allIdle() and
//     outer.Size() == 0 at the same instant): every box reachable from
//     the root has a terminal outcome, so exporterLoop cancels workerCancel
//     to stop the workers and reports CompletedCover.
//
// exporterLoop does NOT write the checkpoint itself: that has to happen
// only after every worker has actually stopped (so an in-flight Process
// call's children/certificate are not lost mid-checkpoint), which only the
// caller (Run, after group.Wait()) can guarantee.
func exporterLoop(
	runCtx context.Context,
	workerCancel context.CancelFunc,
	outer *queue.Box3PriorityQueue,
	certs *queue.CertificateFIFO,
	certLog *store.CertificateLog,
	gate *idleGate,
	logger *log.Logger,
	exportThreshold int,
) (ExitCode, error) {
	ticker := time.NewTicker(exportPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-runCtx.Done():
			logger.Printf("pipeline: stop requested")
			return StoppedCheckpointed, nil

		case <-ticker.C:
			if certs.Size() >= exportThreshold {
				if err := drainCertificates(certs, certLog); err != nil {
					return FatalError, &RunError{Stage: "certificate-drain", Err: err}
				}
			}
			if gate.allIdle() && outer.Size() == 0 {
				workerCancel()
				logger.Printf("pipeline: outer queue drained, cover complete")
				return CompletedCover, nil
			}
		}
	}
}
