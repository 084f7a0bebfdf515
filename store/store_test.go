package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvo-stacks/rupert/boxindex"
	"github.com/arvo-stacks/rupert/interval"
	"github.com/arvo-stacks/rupert/store"
)

func sampleHeader() store.Header {
	return store.Header{
		Backend:              interval.Fast,
		Hole:                 []store.Vertex{{-0.5, -0.5, -0.5}, {0.5, 0.5, 0.5}},
		Plug:                 []store.Vertex{{-0.5, -0.5, -0.5}, {0.5, 0.5, 0.5}},
		Epsilon:              0.0005,
		ProjectionResolution: 4,
		RotationResolution:   2,
		SymmetrySkipEnabled:  true,
	}
}

// TestHeader_RoundTrip ASSERTS a written header reads back identically,
// including the SPEC_FULL-added run-parameter fields.
func TestHeader_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "polyhedra.bin")
	want := sampleHeader()
	require.NoError(t, store.WriteHeader(path, want))

	got, err := store.ReadHeader(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// TestHeader_WriteTruncates ASSERTS a second WriteHeader call overwrites
// (not appends to) an existing header file.
func TestHeader_WriteTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "polyhedra.bin")
	big := sampleHeader()
	big.Hole = append(big.Hole, store.Vertex{1, 2, 3})
	require.NoError(t, store.WriteHeader(path, big))

	small := sampleHeader()
	require.NoError(t, store.WriteHeader(path, small))

	got, err := store.ReadHeader(path)
	require.NoError(t, err)
	assert.Equal(t, small, got)
}

func sampleCertificate() boxindex.EliminatedBox3 {
	b3 := boxindex.RootBox3()
	children, _ := b3.Parts()
	return boxindex.EliminatedBox3{
		Box3:      b3,
		Plug2Boxs: []boxindex.Box2{boxindex.RootBox2(), {Theta: children[0].Theta, Phi: children[0].Phi}},
	}
}

// TestCertificateLog_AppendAndRead ASSERTS certificates appended across
// multiple calls read back in push order.
func TestCertificateLog_AppendAndRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "certificates.bin")
	log, err := store.OpenCertificateLog(path)
	require.NoError(t, err)

	c1 := sampleCertificate()
	require.NoError(t, log.Append([]boxindex.EliminatedBox3{c1}))

	c2 := sampleCertificate()
	c2.Box3.Theta = boxindex.Range{Depth: 1, Bits: 1}
	require.NoError(t, log.Append([]boxindex.EliminatedBox3{c2}))
	require.NoError(t, log.Close())

	got, err := store.ReadCertificateLog(path)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, c1, got[0])
	assert.Equal(t, c2, got[1])
}

// TestCertificateLog_MissingFileReadsEmpty ASSERTS reading a log that was
// never created returns an empty slice, not an error.
func TestCertificateLog_MissingFileReadsEmpty(t *testing.T) {
	got, err := store.ReadCertificateLog(filepath.Join(t.TempDir(), "absent.bin"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

// TestResidualLog_AppendAndRead ASSERTS residual 3-boxes round-trip.
func TestResidualLog_AppendAndRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "residual.bin")
	log, err := store.OpenResidualLog(path)
	require.NoError(t, err)
	b := boxindex.RootBox3()
	require.NoError(t, log.Append([]boxindex.Box3{b}))
	require.NoError(t, log.Close())

	got, err := store.ReadResidualLog(path)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, b, got[0])
}

// TestCheckpoint_RoundTrip ASSERTS a written checkpoint of pending 3-boxes
// reads back identically.
func TestCheckpoint_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checkpoint.bin")
	root := boxindex.RootBox3()
	children, ok := root.Parts()
	require.True(t, ok)
	want := children[:]

	require.NoError(t, store.WriteCheckpoint(path, want))

	got, ok, err := store.ReadCheckpoint(path)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, got)
}

// TestCheckpoint_MissingFileReportsNotOK ASSERTS no checkpoint existing
// yet is reported as ok=false with a nil error (spec.md §4.I "Startup").
func TestCheckpoint_MissingFileReportsNotOK(t *testing.T) {
	_, ok, err := store.ReadCheckpoint(filepath.Join(t.TempDir(), "absent.bin"))
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestCheckpoint_TornFileDetected ASSERTS a checkpoint truncated mid-record
// (simulating a crash between writes) is reported as ErrTornCheckpoint
// rather than silently misread.
func TestCheckpoint_TornFileDetected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checkpoint.bin")
	root := boxindex.RootBox3()
	children, ok := root.Parts()
	require.True(t, ok)
	require.NoError(t, store.WriteCheckpoint(path, children[:]))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	truncated := raw[:len(raw)-5]
	require.NoError(t, os.WriteFile(path, truncated, 0o644))

	_, ok, err = store.ReadCheckpoint(path)
	assert.False(t, ok)
	assert.ErrorIs(t, err, store.ErrTornCheckpoint)
}
