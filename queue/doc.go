// Package queue implements the uniform work-queue contract shared by the
// outer 3-box pool, the inner 2-box subdivision, and the certificate drain:
// push, pop, pushAll, popAll, size (spec.md §4.G). Its three concrete
// types are combinations of two axes:
//
//   - serial vs concurrent   (internal mutex or none)
//   - FIFO vs max-priority   (insertion order, or an ordering on the task)
//
// The inner 2-box subdivision uses the serial Box2FIFO; the outer 3-box
// work pool uses the concurrent Box3PriorityQueue; the certificate drain
// uses the concurrent CertificateFIFO.
package queue
