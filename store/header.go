package store

import (
	"io"
	"os"

	"github.com/arvo-stacks/rupert/interval"
)

// Header is written once, truncating, at the start of a run (spec.md
// §4.J). Alongside the hole/plug polyhedra themselves, SPEC_FULL §3 item 2
// adds the exact run parameters a certificate log needs to be
// self-describing: the epsilon and resolutions actually used, and which
// interval backend produced the certificates (spec.md §9's open question
// on recording the configuration used).
type Header struct {
	Backend              interval.Backend
	Hole, Plug           []Vertex
	Epsilon              float64
	ProjectionResolution uint32
	RotationResolution   uint32
	SymmetrySkipEnabled  bool
}

// WriteHeader truncates path and writes h to it.
func WriteHeader(path string, h Header) error {
	f, err := os.Create(path)
	if err != nil {
		return &Error{Op: "write-header", Path: path, Err: err}
	}
	defer f.Close()

	if err := writeHeader(f, h); err != nil {
		return &Error{Op: "write-header", Path: path, Err: err}
	}
	return nil
}

func writeHeader(w io.Writer, h Header) error {
	if err := writeUint32(w, uint32(h.Backend)); err != nil {
		return err
	}
	if err := writePolyhedron(w, h.Hole); err != nil {
		return err
	}
	if err := writePolyhedron(w, h.Plug); err != nil {
		return err
	}
	if err := writeFloat64(w, h.Epsilon); err != nil {
		return err
	}
	if err := writeUint32(w, h.ProjectionResolution); err != nil {
		return err
	}
	if err := writeUint32(w, h.RotationResolution); err != nil {
		return err
	}
	flag := uint32(0)
	if h.SymmetrySkipEnabled {
		flag = 1
	}
	return writeUint32(w, flag)
}

// ReadHeader reads a Header previously written by WriteHeader.
func ReadHeader(path string) (Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return Header{}, &Error{Op: "read-header", Path: path, Err: err}
	}
	defer f.Close()

	h, err := readHeader(f)
	if err != nil {
		return Header{}, &Error{Op: "read-header", Path: path, Err: err}
	}
	return h, nil
}

func readHeader(r io.Reader) (Header, error) {
	backend, err := readUint32(r)
	if err != nil {
		return Header{}, err
	}
	hole, err := readPolyhedron(r)
	if err != nil {
		return Header{}, err
	}
	plug, err := readPolyhedron(r)
	if err != nil {
		return Header{}, err
	}
	eps, err := readFloat64(r)
	if err != nil {
		return Header{}, err
	}
	projRes, err := readUint32(r)
	if err != nil {
		return Header{}, err
	}
	rotRes, err := readUint32(r)
	if err != nil {
		return Header{}, err
	}
	flag, err := readUint32(r)
	if err != nil {
		return Header{}, err
	}
	return Header{
		Backend:              interval.Backend(backend),
		Hole:                 hole,
		Plug:                 plug,
		Epsilon:              eps,
		ProjectionResolution: projRes,
		RotationResolution:   rotRes,
		SymmetrySkipEnabled:  flag != 0,
	}, nil
}
