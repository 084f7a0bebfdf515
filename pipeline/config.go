package pipeline

import (
	"errors"
	"path/filepath"

	"github.com/arvo-stacks/rupert/geom"
	"github.com/arvo-stacks/rupert/interval"
)

// Sentinel validation errors, named per failing field (spec.md §6
// configuration table); Config.validate returns the first one encountered,
// following the ordered-numbered-validation idiom of dijkstra.Dijkstra /
// matrix's Eigen/LU ("Stage 1: validate input").
var (
	ErrNilKernel          = errors.New("pipeline: Kernel must not be nil")
	ErrEmptyHole          = errors.New("pipeline: Hole must have at least 4 vertices")
	ErrEmptyPlug          = errors.New("pipeline: Plug must have at least 4 vertices")
	ErrInvalidThreadCount = errors.New("pipeline: ThreadCount must be >= 1")
	ErrInvalidResolution  = errors.New("pipeline: ProjectionResolution and RotationResolution must be >= 1")
	ErrInvalidExportSize  = errors.New("pipeline: ExportSizeThreshold must be >= 1")
	ErrEmptyDirectory     = errors.New("pipeline: Directory must not be empty")
)

// Config is the caller-constructed run configuration (spec.md §6); Run
// validates it before touching disk. Configuration PARSING is explicitly out of core scope
// (spec.md §1); Config is the parsed result the caller hands to Run.
type Config struct {
	Kernel     interval.Kernel
	Hole, Plug *geom.Polyhedron

	ThreadCount             int // >= 1
	BoxIterationLimit       int // not read by Run: no cap on processed 3-boxes is applied
	RectangleIterationLimit int // per-3-box inner 2-box cap; 0 = unlimited
	ProjectionResolution    int // >= 1, r_proj
	RotationResolution      int // >= 1, r_rot
	ExportSizeThreshold     int // certificate queue size that triggers a drain
	Epsilon                 float64
	SymmetrySkip            bool

	Directory          string
	HeaderName         string // default "polyhedra.bin"
	CheckpointName     string // default "checkpoint.bin"
	CertificateLogName string // default "certificates.bin"
	ResidualLogName    string // default "residual.bin"
}

// validate runs the ordered checks of spec.md §6's configuration table,
// returning the first violation found.
func (c Config) validate() error {
	// 1. Kernel must be present: every downstream component threads it
	// through as a dependency, never a global (spec.md §9).
	if c.Kernel == nil {
		return ErrNilKernel
	}
	// 2. Hole/Plug vertex sets must be non-degenerate: fewer than 4 points
	// cannot bound a polyhedron (spec.md §3 Polyhedron).
	if c.Hole == nil || len(c.Hole.Vertices) < 4 {
		return ErrEmptyHole
	}
	if c.Plug == nil || len(c.Plug.Vertices) < 4 {
		return ErrEmptyPlug
	}
	// 3. Worker count.
	if c.ThreadCount < 1 {
		return ErrInvalidThreadCount
	}
	// 4. Resolutions.
	if c.ProjectionResolution < 1 || c.RotationResolution < 1 {
		return ErrInvalidResolution
	}
	// 5. Export threshold.
	if c.ExportSizeThreshold < 1 {
		return ErrInvalidExportSize
	}
	// 6. Durable-state directory.
	if c.Directory == "" {
		return ErrEmptyDirectory
	}
	return nil
}

func (c Config) headerPath() string {
	return filepath.Join(c.Directory, orDefault(c.HeaderName, "polyhedra.bin"))
}

func (c Config) checkpointPath() string {
	return filepath.Join(c.Directory, orDefault(c.CheckpointName, "checkpoint.bin"))
}

func (c Config) certificateLogPath() string {
	return filepath.Join(c.Directory, orDefault(c.CertificateLogName, "certificates.bin"))
}

func (c Config) residualLogPath() string {
	return filepath.Join(c.Directory, orDefault(c.ResidualLogName, "residual.bin"))
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
