// Package pathcount defines the sentinel errors, options and result types of
// the shortest-path counter.
package pathcount

import (
	"errors"
	"io"
	"log/slog"
	"math"
	"math/big"
)

// Sentinel errors returned by Count and Counts.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("pathcount: graph is nil")

	// ErrEmptyVertexID indicates that the source or target ID is empty.
	ErrEmptyVertexID = errors.New("pathcount: vertex ID is empty")

	// ErrUnknownVertex indicates that the source or target was never
	// referenced by the graph. It is distinct from ErrNoPathExists: the
	// vertex is absent, not merely unreachable.
	ErrUnknownVertex = errors.New("pathcount: unknown vertex")

	// ErrNoPathExists indicates the frontier was exhausted (or cut off by
	// MaxDistance) without the target ever receiving a path count.
	ErrNoPathExists = errors.New("pathcount: no path exists")

	// ErrDistanceOverflow indicates a cumulative weight exceeded math.MaxInt64.
	ErrDistanceOverflow = errors.New("pathcount: cumulative distance overflows int64")

	// ErrBadMaxDistance indicates WithMaxDistance was given a negative value.
	ErrBadMaxDistance = errors.New("pathcount: MaxDistance must be non-negative")
)

// Options configures a counting run.
//
//   - EarlyTermination: stop once popped entries are strictly longer than the
//     finalized distance of the target. Default true. Never changes the result.
//   - MaxDistance: entries whose cumulative weight exceeds this value are
//     never enqueued. Default math.MaxInt64 (no cap).
//   - Logger: receives debug-level traces of the run. Default discards.
type Options struct {
	EarlyTermination bool
	MaxDistance      int64
	Logger           *slog.Logger
}

// Option represents a functional option for configuring Count.
type Option func(*Options)

// DefaultOptions returns the options used when no Option is supplied.
func DefaultOptions() Options {
	return Options{
		EarlyTermination: true,
		MaxDistance:      math.MaxInt64,
		Logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithoutEarlyTermination processes the whole frontier instead of stopping
// once every remaining entry is longer than the best path to the target.
// Useful to cross-check that pruning leaves counts untouched.
func WithoutEarlyTermination() Option {
	return func(o *Options) {
		o.EarlyTermination = false
	}
}

// WithMaxDistance caps exploration: entries heavier than max are dropped.
// Targets beyond the cap are reported as ErrNoPathExists.
// Panics if max < 0.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithLogger routes debug traces (frontier pops, pruning) to logger.
// A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

// Stats describes the work performed by one run.
type Stats struct {
	Pushes int  // frontier entries enqueued
	Pops   int  // frontier entries dequeued
	Pruned bool // the early-termination rule fired
}

// Result is the outcome of counting shortest paths from Source to Target.
type Result struct {
	Source   string
	Target   string
	Distance int64    // minimum total weight from Source to Target
	Paths    *big.Int // number of distinct paths of weight Distance
	Stats    Stats
}
