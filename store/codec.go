package store

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/arvo-stacks/rupert/boxindex"
)

// Vertex is the wire representation of one Vector3: 3 float64 (spec.md
// §4.J "vertex = 3 x float64"). Decoupled from interval.Interval/
// vector.Vector3 so this package never depends on a chosen Kernel — the
// caller reconstructs exact-point Intervals from these bounds.
type Vertex [3]float64

func writeUint32(w io.Writer, v uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

func readUint32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

func writeFloat64(w io.Writer, v float64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
	_, err := w.Write(buf[:])
	return err
}

func readFloat64(r io.Reader) (float64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(buf[:])), nil
}

func writeVertex(w io.Writer, v Vertex) error {
	for _, c := range v {
		if err := writeFloat64(w, c); err != nil {
			return err
		}
	}
	return nil
}

func readVertex(r io.Reader) (Vertex, error) {
	var v Vertex
	for i := range v {
		c, err := readFloat64(r)
		if err != nil {
			return Vertex{}, err
		}
		v[i] = c
	}
	return v, nil
}

// writePolyhedron writes size32 followed by N vertices (spec.md §4.J
// "polyhedron = size32 followed by N vertices").
func writePolyhedron(w io.Writer, vertices []Vertex) error {
	if err := writeUint32(w, uint32(len(vertices))); err != nil {
		return err
	}
	for _, v := range vertices {
		if err := writeVertex(w, v); err != nil {
			return err
		}
	}
	return nil
}

func readPolyhedron(r io.Reader) ([]Vertex, error) {
	n, err := readUint32(r)
	if err != nil {
		return nil, err
	}
	vertices := make([]Vertex, n)
	for i := range vertices {
		v, err := readVertex(r)
		if err != nil {
			return nil, err
		}
		vertices[i] = v
	}
	return vertices, nil
}

// writeRange writes a packed dyadic Range (see doc.go for the uint16 ->
// uint32 wire-width resolution).
func writeRange(w io.Writer, r boxindex.Range) error {
	return writeUint32(w, r.Pack())
}

func readRange(r io.Reader) (boxindex.Range, error) {
	packed, err := readUint32(r)
	if err != nil {
		return boxindex.Range{}, err
	}
	return boxindex.Unpack(packed)
}

// writeBox2 writes (theta, phi) (spec.md §4.J "box2 = 2 x range16").
func writeBox2(w io.Writer, b boxindex.Box2) error {
	if err := writeRange(w, b.Theta); err != nil {
		return err
	}
	return writeRange(w, b.Phi)
}

func readBox2(r io.Reader) (boxindex.Box2, error) {
	theta, err := readRange(r)
	if err != nil {
		return boxindex.Box2{}, err
	}
	phi, err := readRange(r)
	if err != nil {
		return boxindex.Box2{}, err
	}
	return boxindex.Box2{Theta: theta, Phi: phi}, nil
}

// writeBox3 writes (theta, phi, alpha) (spec.md §4.J "box3 = 3 x range16").
func writeBox3(w io.Writer, b boxindex.Box3) error {
	if err := writeRange(w, b.Theta); err != nil {
		return err
	}
	if err := writeRange(w, b.Phi); err != nil {
		return err
	}
	return writeRange(w, b.Alpha)
}

func readBox3(r io.Reader) (boxindex.Box3, error) {
	theta, err := readRange(r)
	if err != nil {
		return boxindex.Box3{}, err
	}
	phi, err := readRange(r)
	if err != nil {
		return boxindex.Box3{}, err
	}
	alpha, err := readRange(r)
	if err != nil {
		return boxindex.Box3{}, err
	}
	return boxindex.Box3{Theta: theta, Phi: phi, Alpha: alpha}, nil
}

// writeEliminatedBox3 writes box3, size32, that many box2 (spec.md §4.J
// "eliminated_box3 = box3, size32, that many box2").
func writeEliminatedBox3(w io.Writer, c boxindex.EliminatedBox3) error {
	if err := writeBox3(w, c.Box3); err != nil {
		return err
	}
	if err := writeUint32(w, uint32(len(c.Plug2Boxs))); err != nil {
		return err
	}
	for _, b2 := range c.Plug2Boxs {
		if err := writeBox2(w, b2); err != nil {
			return err
		}
	}
	return nil
}

func readEliminatedBox3(r io.Reader) (boxindex.EliminatedBox3, error) {
	b3, err := readBox3(r)
	if err != nil {
		return boxindex.EliminatedBox3{}, err
	}
	n, err := readUint32(r)
	if err != nil {
		return boxindex.EliminatedBox3{}, err
	}
	boxes := make([]boxindex.Box2, n)
	for i := range boxes {
		b2, err := readBox2(r)
		if err != nil {
			return boxindex.EliminatedBox3{}, err
		}
		boxes[i] = b2
	}
	return boxindex.EliminatedBox3{Box3: b3, Plug2Boxs: boxes}, nil
}
