package pipeline

import "fmt"

// RunError wraps a fatal error with the stage that produced it, the same
// shape as boxproc.HullError/store.Error.
type RunError struct {
	Stage string
	Err   error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("pipeline: %s: %v", e.Stage, e.Err)
}

func (e *RunError) Unwrap() error { return e.Err }
