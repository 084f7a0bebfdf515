package pipeline

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/arvo-stacks/rupert/boxindex"
	"github.com/arvo-stacks/rupert/boxproc"
	"github.com/arvo-stacks/rupert/geom"
	"github.com/arvo-stacks/rupert/queue"
	"github.com/arvo-stacks/rupert/store"
)

// Run is the library entry point of spec.md §6: it validates cfg, writes
// (or reuses) the durable header, restores the outer queue from a prior
// checkpoint or seeds it with the root 3-box, then runs cfg.ThreadCount
// workers and one exporter until either the queue drains or ctx is
// canceled.
//
// Run never calls os.Exit or touches signals — that belongs to the
// caller, per spec.md §1's non-goal on process lifecycle; ctx cancellation
// is the one stop signal Run reacts to (see doc.go).
func Run(ctx context.Context, cfg Config, opts ...Option) (ExitCode, error) {
	rc := newRunConfig(opts)

	if err := cfg.validate(); err != nil {
		return FatalError, &RunError{Stage: "validate-config", Err: err}
	}

	if err := writeHeaderOnce(cfg); err != nil {
		return FatalError, &RunError{Stage: "write-header", Err: err}
	}

	outer := queue.NewBox3PriorityQueue()
	pending, hadCheckpoint, err := store.ReadCheckpoint(cfg.checkpointPath())
	if errors.Is(err, store.ErrTornCheckpoint) {
		rc.logger.Printf("pipeline: checkpoint is truncated, ignoring it")
		err = nil
	}
	if err != nil {
		return FatalError, &RunError{Stage: "read-checkpoint", Err: err}
	}
	if hadCheckpoint {
		outer.PushAll(pending)
		rc.logger.Printf("pipeline: resumed from checkpoint with %d pending boxes", len(pending))
	} else {
		outer.Push(boxindex.RootBox3())
		rc.logger.Printf("pipeline: starting fresh from the root box")
	}

	certLog, err := store.OpenCertificateLog(cfg.certificateLogPath())
	if err != nil {
		return FatalError, &RunError{Stage: "open-certificate-log", Err: err}
	}
	defer certLog.Close()

	residualLog, err := store.OpenResidualLog(cfg.residualLogPath())
	if err != nil {
		return FatalError, &RunError{Stage: "open-residual-log", Err: err}
	}
	defer residualLog.Close()

	bcfg := boxproc.Config{
		Kernel:                  cfg.Kernel,
		Hole:                    cfg.Hole,
		Plug:                    cfg.Plug,
		ProjectionResolution:    cfg.ProjectionResolution,
		RotationResolution:      cfg.RotationResolution,
		RectangleIterationLimit: cfg.RectangleIterationLimit,
		SymmetrySkip:            cfg.SymmetrySkip,
	}
	if cfg.SymmetrySkip {
		bcfg.SymmetryEpsilon = cfg.Epsilon
	}

	certs := queue.NewCertificateFIFO()
	residuals := newResidualSink(residualLog)
	gate := newIdleGate(cfg.ThreadCount)

	workerCtx, workerCancel := context.WithCancel(ctx)
	defer workerCancel()

	group, groupCtx := errgroup.WithContext(workerCtx)
	for i := 0; i < cfg.ThreadCount; i++ {
		group.Go(func() error {
			return workerLoop(groupCtx, bcfg, outer, certs, residuals, gate, rc.logger, rc.debug)
		})
	}

	exitCode, exportErr := exporterLoop(ctx, workerCancel, outer, certs, certLog, gate, rc.logger, cfg.ExportSizeThreshold)

	// Stop the workers (idempotent if exporterLoop already did, on the
	// cover-complete path) and let every in-flight Process call finish and
	// route its outcome before we touch the outer queue or certificate
	// queue again.
	workerCancel()
	waitErr := group.Wait()

	if exportErr != nil {
		return FatalError, exportErr
	}

	if err := drainCertificates(certs, certLog); err != nil {
		return FatalError, &RunError{Stage: "final-certificate-drain", Err: err}
	}

	if exitCode == StoppedCheckpointed {
		pending := outer.PopAll()
		if err := store.WriteCheckpoint(cfg.checkpointPath(), pending); err != nil {
			return FatalError, &RunError{Stage: "write-checkpoint", Err: err}
		}
		rc.logger.Printf("pipeline: checkpointed %d pending boxes", len(pending))
	}

	if waitErr != nil {
		return FatalError, &RunError{Stage: "worker", Err: waitErr}
	}
	return exitCode, nil
}

// writeHeaderOnce writes the run header if it does not already exist —
// resuming from a checkpoint must not overwrite the header a prior
// invocation already wrote for this hole/plug pair.
func writeHeaderOnce(cfg Config) error {
	path := cfg.headerPath()
	if _, err := store.ReadHeader(path); err == nil {
		return nil
	}
	return store.WriteHeader(path, store.Header{
		Backend:              cfg.Kernel.Backend(),
		Hole:                 polyhedronToVertices(cfg.Hole),
		Plug:                 polyhedronToVertices(cfg.Plug),
		Epsilon:              cfg.Epsilon,
		ProjectionResolution: uint32(cfg.ProjectionResolution),
		RotationResolution:   uint32(cfg.RotationResolution),
		SymmetrySkipEnabled:  cfg.SymmetrySkip,
	})
}

// polyhedronToVertices lowers a geom.Polyhedron's exact-point vertices to
// the wire-level store.Vertex (store never depends on interval.Kernel; see
// store.Vertex's doc comment).
func polyhedronToVertices(p *geom.Polyhedron) []store.Vertex {
	out := make([]store.Vertex, len(p.Vertices))
	for i, v := range p.Vertices {
		out[i] = store.Vertex{v.X.Mid(), v.Y.Mid(), v.Z.Mid()}
	}
	return out
}

