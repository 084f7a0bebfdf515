package pipeline

import "log"

// Option customizes a Run invocation by mutating a runConfig before the
// worker pool starts, the same functional-options shape as
// builder.BuilderOption.
type Option func(*runConfig)

type runConfig struct {
	logger *log.Logger
	debug  bool
}

func newRunConfig(opts []Option) *runConfig {
	rc := &runConfig{logger: log.Default()}
	for _, o := range opts {
		o(rc)
	}
	return rc
}

// WithLogger overrides the default *log.Logger. Panics on nil to surface
// the mistake immediately rather than silently discarding log output.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("pipeline: WithLogger(nil)")
	}
	return func(rc *runConfig) {
		rc.logger = l
	}
}

// WithDebug enables verbose per-box logging (every Process call, not just
// state transitions that change queue contents).
func WithDebug(enabled bool) Option {
	return func(rc *runConfig) {
		rc.debug = enabled
	}
}
