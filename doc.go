// Package rupert is a verified interval-arithmetic branch-and-bound prover
// for Rupert's problem: does a convex polyhedron admit an orientation in
// which a congruent copy of itself can pass through it?
//
// 🚀 What is rupert?
//
//	A nested interval branch-and-bound search over the 5-dimensional
//	orientation space S²×S²×S¹ (hole orientation + in-plane rotation, plug
//	orientation), where every pruning decision is backed by rigorous
//	outward-rounded interval arithmetic rather than floating-point heuristics.
//
// ✨ Why interval arithmetic?
//
//   - Sound        — an elimination certificate is a machine-checked proof,
//     never a floating-point approximation that might be wrong near a
//     boundary.
//   - Resumable    — the outer search state is a checkpointed queue of
//     unfinished orientation boxes plus an append-only log of eliminated
//     ones; a run stopped through its context writes the checkpoint, and
//     the next run resumes from it.
//   - Swappable    — the same geometric code runs over three interchangeable
//     Number/Interval backends (hardware float, a wider-margin hardware
//     interval, arbitrary precision) selected once at process start.
//
// Everything is organized bottom-up under subpackages:
//
//	interval/ — Number/Interval kernel, three backends
//	vector/   — Vector2, Vector3, Matrix3 over an Interval backend
//	geom/     — Edge, Polygon, Polyhedron, avoids/outside/inside predicates
//	boxindex/ — dyadic Range index, Box2/Box3/EliminatedBox3
//	hull/     — projection/rotation hulls, gift-wrap convex hull
//	queue/    — serial and concurrent FIFO/priority task queues
//	boxproc/  — per-3-box processor: hole shadow, inner subdivision, state machine
//	pipeline/ — worker pool, exporter, checkpoint/restore, Run entry point
//	store/    — binary log codec: header, certificate log, checkpoint
//
// Configuration parsing, serialization beyond the wire schema, debug
// visualization, and process-level signal handling are deliberately out of
// scope for this module; callers wire those in around pipeline.Run.
package rupert
