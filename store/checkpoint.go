package store

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/arvo-stacks/rupert/boxindex"
)

// ErrTornCheckpoint is returned by ReadCheckpoint when the file exists but
// is shorter than its own declared length — the crash-recovery signal of
// spec.md §7 category 5 ("a torn checkpoint is detected at restore by size
// mismatch and causes the pipeline to start from the root"). The caller
// should treat this exactly like "no checkpoint" rather than propagate it
// as fatal.
var ErrTornCheckpoint = errors.New("store: checkpoint file is truncated")

// WriteCheckpoint atomically rewrites path with the given pending 3-boxes
// (spec.md §4.I: "Checkpoint is written after the workers have drained").
// It writes to a temp file in the same directory, syncs it, then renames
// it over path — rename is atomic on the same filesystem, so a reader
// never observes a partially-written checkpoint through this path; a
// process killed before the rename leaves the previous checkpoint at path
// (and possibly the temp file). A file at path shorter than its declared
// length, however it came about, is reported by ReadCheckpoint as
// ErrTornCheckpoint.
func WriteCheckpoint(path string, pending []boxindex.Box3) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".checkpoint-*.tmp")
	if err != nil {
		return &Error{Op: "write-checkpoint", Path: path, Err: err}
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) // no-op once the rename below succeeds

	if err := writeUint32(tmp, uint32(len(pending))); err != nil {
		tmp.Close()
		return &Error{Op: "write-checkpoint", Path: path, Err: err}
	}
	for _, b := range pending {
		if err := writeBox3(tmp, b); err != nil {
			tmp.Close()
			return &Error{Op: "write-checkpoint", Path: path, Err: err}
		}
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return &Error{Op: "write-checkpoint", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &Error{Op: "write-checkpoint", Path: path, Err: err}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return &Error{Op: "write-checkpoint", Path: path, Err: err}
	}
	return nil
}

// ReadCheckpoint reads the pending 3-box queue from path. ok is false (with
// a nil error) when no checkpoint exists yet — the pipeline should seed
// from a single root 3-box (spec.md §4.I "Startup"). ErrTornCheckpoint
// signals a size-mismatched (crash-truncated) file — the caller handles it
// identically to "no checkpoint".
func ReadCheckpoint(path string) (pending []boxindex.Box3, ok bool, err error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, &Error{Op: "read-checkpoint", Path: path, Err: err}
	}
	defer f.Close()

	n, err := readUint32(f)
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, false, ErrTornCheckpoint
		}
		return nil, false, &Error{Op: "read-checkpoint", Path: path, Err: err}
	}

	boxes := make([]boxindex.Box3, n)
	for i := range boxes {
		b, err := readBox3(f)
		if err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return nil, false, ErrTornCheckpoint
			}
			return nil, false, &Error{Op: "read-checkpoint", Path: path, Err: err}
		}
		boxes[i] = b
	}
	return boxes, true, nil
}
