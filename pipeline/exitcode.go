package pipeline

// ExitCode is the three-way result spec.md §6 names: "run(config) ->
// exit_code where exit_code in {completed_cover, stopped_checkpointed,
// fatal_error}".
type ExitCode int

const (
	// CompletedCover means the outer queue drained to empty: every 3-box
	// reachable from the root was eliminated, witnessed as a passage, or
	// recorded as a residual — the search is exhaustive up to the
	// configured depth cap.
	CompletedCover ExitCode = iota

	// StoppedCheckpointed means ctx was canceled before the queue drained;
	// the pending outer queue was written to the checkpoint file and the
	// run can be resumed from it.
	StoppedCheckpointed

	// FatalError means Run returned before either of the above — the
	// accompanying error names the cause (spec.md §7 category 4).
	FatalError
)

// String renders the exit code name for logs.
func (e ExitCode) String() string {
	switch e {
	case CompletedCover:
		return "completed_cover"
	case StoppedCheckpointed:
		return "stopped_checkpointed"
	case FatalError:
		return "fatal_error"
	default:
		return "unknown"
	}
}
