// Package centrality defines core types and configuration options for the
// gas-weighted shortest-path and centrality engine.
//
// Options:
//
//	– Source / SourceID: starting vertex (address or arena ID; one is required).
//	– WithTraversal:     reuse a Traversal's buffers; it is reset at run start.
//	– WithMode:          centrality accumulation policy (see Mode).
//	– WithLogger:        *zap.Logger for run diagnostics (default no-op).
//	– WithMetrics:       prometheus collectors updated after every run.
//
// Errors (sentinel):
//
//	– ErrEmptySource       if neither Source nor SourceID was given.
//	– ErrNilGraph          if the graph pointer is nil.
//	– ErrVertexNotFound    if the source is not a vertex of the graph.
//	– ErrUnknownMode       if ParseMode gets an unknown name.
package centrality

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/gasgraph/core"
)

// Sentinel errors returned by Run.
var (
	// ErrEmptySource indicates that no source vertex was configured.
	ErrEmptySource = errors.New("centrality: source vertex is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Run.
	ErrNilGraph = errors.New("centrality: graph is nil")

	// ErrVertexNotFound indicates that the source vertex does not exist in the graph.
	ErrVertexNotFound = errors.New("centrality: source vertex not found in graph")

	// ErrUnknownMode indicates an unrecognised accumulation mode name.
	ErrUnknownMode = errors.New("centrality: unknown accumulation mode")
)

// Mode selects how centrality is accumulated along accepted relaxations.
//
// Both modes accept a relaxation when candidate <= distance, so every
// equal-cost predecessor contributes.
//
// ModeShortestPaths   – a strictly shorter path clears the vertex's accumulator
//
//	and parent set first, and each predecessor contributes once. The result is
//	centrality(v) = Σ centrality(u) over the shortest-path predecessors of v.
//
// ModeEveryRelaxation – every accepted relaxation adds centrality(u) and nothing
//
//	is ever cleared, so superseded longer paths keep their contribution.
type Mode int

const (
	// ModeShortestPaths sums contributions over final shortest-path predecessors.
	ModeShortestPaths Mode = iota

	// ModeEveryRelaxation sums contributions over every accepted relaxation.
	ModeEveryRelaxation
)

// String returns the configuration name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeShortestPaths:
		return "shortest"
	case ModeEveryRelaxation:
		return "every"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode maps a configuration name to a Mode.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "shortest", "shortest-paths":
		return ModeShortestPaths, nil
	case "every", "every-relaxation":
		return ModeEveryRelaxation, nil
	default:
		return ModeShortestPaths, fmt.Errorf("%w: %q", ErrUnknownMode, name)
	}
}

// Options configures a run.
type Options struct {
	Source    string          // address of the source vertex
	SourceID  core.VertexID   // arena ID of the source; wins over Source when set
	Traversal *core.Traversal // optional reusable per-run state
	Mode      Mode            // accumulation policy
	Logger    *zap.Logger     // diagnostics sink
	Metrics   *Metrics        // optional collectors
}

// Option represents a functional option for configuring Run.
type Option func(*Options)

// Source sets the source vertex by address.
func Source(address string) Option {
	return func(o *Options) {
		o.Source = address
	}
}

// SourceID sets the source vertex by arena ID.
func SourceID(id core.VertexID) Option {
	return func(o *Options) {
		o.SourceID = id
	}
}

// WithTraversal makes the run write into t instead of allocating.
// The returned Result then shares t.
func WithTraversal(t *core.Traversal) Option {
	return func(o *Options) {
		o.Traversal = t
	}
}

// WithMode selects the accumulation policy.
func WithMode(m Mode) Option {
	return func(o *Options) {
		o.Mode = m
	}
}

// WithLogger sets the logger; nil keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics sets the collectors updated after each run.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) {
		o.Metrics = m
	}
}

// DefaultOptions returns Options with no source, ModeShortestPaths and a no-op logger.
func DefaultOptions() Options {
	return Options{
		SourceID: core.NoVertex,
		Mode:     ModeShortestPaths,
		Logger:   zap.NewNop(),
	}
}
