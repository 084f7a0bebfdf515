package store

import (
	"io"
	"os"

	"github.com/arvo-stacks/rupert/boxindex"
)

// ResidualLog is the append-only log of 3-boxes that hit the depth cap
// without being eliminated or witnessed (spec.md §4.H.4's "residual",
// made a first-class output by SPEC_FULL §3 item 3 — the distilled spec
// only says these are "reported", without naming a sink).
type ResidualLog struct {
	path string
	f    *os.File
}

// OpenResidualLog opens (creating if necessary) the residual log at path
// for appending.
func OpenResidualLog(path string) (*ResidualLog, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, &Error{Op: "open-residual-log", Path: path, Err: err}
	}
	return &ResidualLog{path: path, f: f}, nil
}

// Append writes boxes to the tail of the log and flushes to stable
// storage.
func (l *ResidualLog) Append(boxes []boxindex.Box3) error {
	for _, b := range boxes {
		if err := writeBox3(l.f, b); err != nil {
			return &Error{Op: "append-residuals", Path: l.path, Err: err}
		}
	}
	if err := l.f.Sync(); err != nil {
		return &Error{Op: "append-residuals", Path: l.path, Err: err}
	}
	return nil
}

// Close closes the underlying file.
func (l *ResidualLog) Close() error { return l.f.Close() }

// ReadResidualLog reads every residual 3-box in path, in append order.
func ReadResidualLog(path string) ([]boxindex.Box3, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &Error{Op: "read-residual-log", Path: path, Err: err}
	}
	defer f.Close()

	var boxes []boxindex.Box3
	for {
		b, err := readBox3(f)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &Error{Op: "read-residual-log", Path: path, Err: err}
		}
		boxes = append(boxes, b)
	}
	return boxes, nil
}
