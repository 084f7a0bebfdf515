// Package pipeline wires the outer 3-box work queue, a pool of worker
// goroutines each running boxproc.Process, an exporter goroutine that
// persists certificates and the pending-queue checkpoint, and the
// external-stop/restart machinery of spec.md §4.I, §5.
//
// Run is the library-level entry point spec.md §6 describes: "run(config)
// -> exit_code where exit_code in {completed_cover, stopped_checkpointed,
// fatal_error}". Everything spec.md §1 lists as deliberately out of scope
// (configuration parsing, signal handling, process lifecycle) lives above
// this package, in the caller: Run accepts a Config, which it validates
// itself, and a context.Context whose cancellation is the one external-stop signal it
// reacts to, following the teacher's own context.Context-as-cancellation
// idiom (flow.Dinic/EdmondsKarp/FordFulkerson).
package pipeline
