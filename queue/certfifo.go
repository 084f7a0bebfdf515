package queue

import (
	"sync"

	"github.com/arvo-stacks/rupert/boxindex"
)

// CertificateFIFO is the concurrent FIFO the exporter drains
// (spec.md §4.G, §4.I): workers push EliminatedBox3 certificates as they
// complete them; the exporter pops/popAlls them in the order pushed, so
// certificates appear in the log in push order (spec.md §4.I "Ordering
// guarantees" (i)).
type CertificateFIFO struct {
	mu    sync.Mutex
	items []boxindex.EliminatedBox3
}

// NewCertificateFIFO returns an empty queue.
func NewCertificateFIFO() *CertificateFIFO { return &CertificateFIFO{} }

// Push appends cert to the tail.
func (q *CertificateFIFO) Push(cert boxindex.EliminatedBox3) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, cert)
}

// PushAll appends certs in order to the tail.
func (q *CertificateFIFO) PushAll(certs []boxindex.EliminatedBox3) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, certs...)
}

// Pop removes and returns the head certificate; ok is false on an empty
// queue.
func (q *CertificateFIFO) Pop() (cert boxindex.EliminatedBox3, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return boxindex.EliminatedBox3{}, false
	}
	cert = q.items[0]
	q.items = q.items[1:]
	return cert, true
}

// PopAll drains and returns every pending certificate in push order,
// emptying the queue.
func (q *CertificateFIFO) PopAll() []boxindex.EliminatedBox3 {
	q.mu.Lock()
	defer q.mu.Unlock()
	drained := q.items
	q.items = nil
	return drained
}

// Size returns the number of pending certificates.
func (q *CertificateFIFO) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
