package queue

import (
	"container/heap"
	"sync"

	"github.com/arvo-stacks/rupert/boxindex"
)

// box3Heap is a min-heap of boxindex.Box3 ordered by Box3.Less (shallower
// boxes first), the same heap.Interface shape as the teacher's nodePQ/edgePQ.
type box3Heap []boxindex.Box3

func (h box3Heap) Len() int            { return len(h) }
func (h box3Heap) Less(i, j int) bool  { return h[i].Less(h[j]) }
func (h box3Heap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *box3Heap) Push(x interface{}) { *h = append(*h, x.(boxindex.Box3)) }
func (h *box3Heap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Box3PriorityQueue is the concurrent max-priority queue the outer work pool
// pops hole-orientation boxes from (spec.md §4.G): shallower boxes are
// popped first, ties broken lexicographically (Box3.Less). Safe for
// concurrent use by multiple worker goroutines.
type Box3PriorityQueue struct {
	mu   sync.Mutex
	heap box3Heap
}

// NewBox3PriorityQueue returns an empty queue.
func NewBox3PriorityQueue() *Box3PriorityQueue { return &Box3PriorityQueue{} }

// Push inserts task, restoring the heap invariant.
func (q *Box3PriorityQueue) Push(task boxindex.Box3) {
	q.mu.Lock()
	defer q.mu.Unlock()
	heap.Push(&q.heap, task)
}

// PushAll inserts every task in tasks.
func (q *Box3PriorityQueue) PushAll(tasks []boxindex.Box3) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for _, t := range tasks {
		heap.Push(&q.heap, t)
	}
}

// Pop removes and returns the highest-priority (shallowest) task; ok is
// false when the queue was empty. Workers observing ok==false should park
// briefly rather than spin (spec.md §4.I "Suspension points").
func (q *Box3PriorityQueue) Pop() (task boxindex.Box3, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.heap.Len() == 0 {
		return boxindex.Box3{}, false
	}
	return heap.Pop(&q.heap).(boxindex.Box3), true
}

// PopAll drains and returns every pending task in priority order, emptying
// the queue — used by pipeline.Run, after the workers have stopped, to
// collect the pending boxes for the final checkpoint (spec.md §4.I).
func (q *Box3PriorityQueue) PopAll() []boxindex.Box3 {
	q.mu.Lock()
	defer q.mu.Unlock()
	drained := make([]boxindex.Box3, 0, q.heap.Len())
	for q.heap.Len() > 0 {
		drained = append(drained, heap.Pop(&q.heap).(boxindex.Box3))
	}
	return drained
}

// Size returns the number of pending tasks.
func (q *Box3PriorityQueue) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.heap.Len()
}
