package pipeline

import (
	"sync"

	"github.com/arvo-stacks/rupert/boxindex"
	"github.com/arvo-stacks/rupert/store"
)

// residualSink serializes concurrent worker writes to the residual log
// (spec.md §4.H.4's residuals are rare — one depth-capped box at a time —
// so a plain mutex around the append is simpler than routing them through
// another queue.CertificateFIFO-shaped structure for a low-volume path).
type residualSink struct {
	mu  sync.Mutex
	log *store.ResidualLog
}

func newResidualSink(log *store.ResidualLog) *residualSink {
	return &residualSink{log: log}
}

func (s *residualSink) push(b boxindex.Box3) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.log.Append([]boxindex.Box3{b})
}
