package queue

import "github.com/arvo-stacks/rupert/boxindex"

// Box2FIFO is the serial (single-goroutine) FIFO queue the inner
// plug-orientation subdivision drains (spec.md §4.G, §4.H): no locking,
// used only from the one worker goroutine that owns it.
type Box2FIFO struct {
	items []boxindex.Box2
}

// NewBox2FIFO returns an empty queue.
func NewBox2FIFO() *Box2FIFO { return &Box2FIFO{} }

// Push appends task to the tail.
func (q *Box2FIFO) Push(task boxindex.Box2) { q.items = append(q.items, task) }

// PushAll appends tasks in order to the tail.
func (q *Box2FIFO) PushAll(tasks []boxindex.Box2) { q.items = append(q.items, tasks...) }

// Pop removes and returns the head task; ok is false on an empty queue.
func (q *Box2FIFO) Pop() (task boxindex.Box2, ok bool) {
	if len(q.items) == 0 {
		return boxindex.Box2{}, false
	}
	task = q.items[0]
	q.items = q.items[1:]
	return task, true
}

// PopAll drains and returns every pending task, emptying the queue.
func (q *Box2FIFO) PopAll() []boxindex.Box2 {
	drained := q.items
	q.items = nil
	return drained
}

// Size returns the number of pending tasks.
func (q *Box2FIFO) Size() int { return len(q.items) }
