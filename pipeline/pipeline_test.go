package pipeline_test

import (
	"context"
	"log"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvo-stacks/rupert/geom"
	"github.com/arvo-stacks/rupert/interval"
	"github.com/arvo-stacks/rupert/pipeline"
	"github.com/arvo-stacks/rupert/store"
	"github.com/arvo-stacks/rupert/vector"
)

func cube(k interval.Kernel, half float64) *geom.Polyhedron {
	var verts []vector.Vector3
	for _, sx := range []float64{-half, half} {
		for _, sy := range []float64{-half, half} {
			for _, sz := range []float64{-half, half} {
				verts = append(verts, vector.NewVector3(k.FromBounds(sx, sx), k.FromBounds(sy, sy), k.FromBounds(sz, sz)))
			}
		}
	}
	return geom.NewPolyhedron(verts)
}

func baseConfig(t *testing.T, hole, plug *geom.Polyhedron) pipeline.Config {
	t.Helper()
	return pipeline.Config{
		Kernel:                  interval.NewFastKernel(),
		Hole:                    hole,
		Plug:                    plug,
		ThreadCount:             2,
		RectangleIterationLimit: 64,
		ProjectionResolution:    4,
		RotationResolution:      2,
		ExportSizeThreshold:     4,
		Epsilon:                 1e-6,
		Directory:               t.TempDir(),
	}
}

// TestRun_ValidatesConfig ASSERTS an invalid Config is rejected before any
// file touches disk.
func TestRun_ValidatesConfig(t *testing.T) {
	cfg := pipeline.Config{}
	code, err := pipeline.Run(context.Background(), cfg)
	assert.Error(t, err)
	assert.Equal(t, pipeline.FatalError, code)
}

// TestRun_WideHoleStopsAtDeadline ASSERTS a hole ten times the plug's size
// never drains the outer queue: every plug vertex is so far inside the
// shadow that elimination never triggers, each 3-box's inner search
// witnesses a passage, and a witnessed passage re-queues the 3-box's 8
// children, so the 5s deadline stops the run with StoppedCheckpointed.
func TestRun_WideHoleStopsAtDeadline(t *testing.T) {
	k := interval.NewFastKernel()
	hole := cube(k, 5.0)
	plug := cube(k, 0.5)
	cfg := baseConfig(t, hole, plug)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	code, err := pipeline.Run(ctx, cfg, pipeline.WithLogger(log.New(testingWriter{t}, "", 0)))
	require.NoError(t, err)
	assert.Equal(t, pipeline.StoppedCheckpointed, code)

	header, err := store.ReadHeader(filepath.Join(cfg.Directory, "polyhedra.bin"))
	require.NoError(t, err)
	assert.Len(t, header.Hole, 8)
	assert.Len(t, header.Plug, 8)
}

// TestRun_ExternalStopCheckpoints ASSERTS canceling ctx before the search
// finishes reports StoppedCheckpointed and leaves a checkpoint file a
// subsequent Run can resume from.
func TestRun_ExternalStopCheckpoints(t *testing.T) {
	k := interval.NewFastKernel()
	hole := cube(k, 0.51)
	plug := cube(k, 0.5)
	cfg := baseConfig(t, hole, plug)
	cfg.ThreadCount = 1
	cfg.RectangleIterationLimit = 4

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	code, err := pipeline.Run(ctx, cfg)
	require.NoError(t, err)
	assert.Equal(t, pipeline.StoppedCheckpointed, code)

	_, ok, err := store.ReadCheckpoint(filepath.Join(cfg.Directory, "checkpoint.bin"))
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestRun_ResumesFromCheckpoint ASSERTS a second Run against the same
// directory picks up the checkpointed boxes instead of restarting from the
// root.
func TestRun_ResumesFromCheckpoint(t *testing.T) {
	k := interval.NewFastKernel()
	hole := cube(k, 0.51)
	plug := cube(k, 0.5)
	cfg := baseConfig(t, hole, plug)
	cfg.ThreadCount = 1
	cfg.RectangleIterationLimit = 4

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := pipeline.Run(ctx, cfg)
	require.NoError(t, err)

	longCtx, longCancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer longCancel()
	code, err := pipeline.Run(longCtx, cfg)
	require.NoError(t, err)
	assert.NotEqual(t, pipeline.FatalError, code)
}

type testingWriter struct{ t *testing.T }

func (w testingWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}
