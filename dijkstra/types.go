// SPDX-License-Identifier: MIT

package dijkstra

import (
	"context"
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Search.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the specified source vertex does not exist
	// in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that an edge cost below zero was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge cost encountered")

	// ErrBadMaxHops indicates that MaxHops was set to a negative value.
	ErrBadMaxHops = errors.New("dijkstra: MaxHops must be non-negative")

	// ErrNoGoal indicates that Search was called without a goal predicate.
	ErrNoGoal = errors.New("dijkstra: goal predicate is nil")

	// ErrNoPath indicates that no reachable vertex satisfies the goal.
	ErrNoPath = errors.New("dijkstra: no reachable vertex satisfies the goal")
)

// CostFunc maps an edge weight to a traversal cost. It must be monotonic in
// whatever sense the caller optimizes and never return a negative value.
type CostFunc func(weight int64) int64

// Identity is the default CostFunc: cost equals weight.
func Identity(weight int64) int64 { return weight }

// StrongestFirst returns a CostFunc that turns strength into cost:
// cost = maxWeight + 1 − weight. Every hop costs at least 1, the strongest
// edge costs exactly 1, and weaker edges cost more. Weights above maxWeight
// are clamped to cost 1.
func StrongestFirst(maxWeight int64) CostFunc {
	if maxWeight < 0 {
		maxWeight = 0
	}
	if maxWeight == math.MaxInt64 {
		maxWeight--
	}

	return func(weight int64) int64 {
		if weight > maxWeight {
			return 1
		}

		return maxWeight + 1 - weight
	}
}

// Options configures a Search.
//
// Source  – starting vertex ID (must be non-empty and present in the graph).
// Cost    – weight → cost transform. Default Identity.
// Goal    – stop predicate; required.
// MaxHops – longest route, in edges, that may be returned. 0 means no limit.
// Ctx     – checked before each vertex is settled.
type Options struct {
	Source  string
	Cost    CostFunc
	Goal    func(id string) bool
	MaxHops int
	Ctx     context.Context

	err error // first invalid option, surfaced by Search
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// Source sets the starting vertex ID.
func Source(str string) Option {
	return func(o *Options) {
		o.Source = str
	}
}

// WithMaxHops bounds the number of edges on the returned route. The bound
// is exact: the cheapest route of at most n edges is found even when a
// cheaper but longer one exists. A negative n is reported as ErrBadMaxHops.
func WithMaxHops(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = ErrBadMaxHops

			return
		}
		o.MaxHops = n
	}
}

// WithContext sets the context checked for cancellation. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithCost sets the weight → cost transform. nil keeps the current one.
func WithCost(fn CostFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Cost = fn
		}
	}
}

// WithGoal sets the predicate that ends a Search.
func WithGoal(fn func(id string) bool) Option {
	return func(o *Options) {
		o.Goal = fn
	}
}

// DefaultOptions returns Options for the given source with Identity cost,
// no hop limit, no goal and a Background context.
func DefaultOptions(source string) Options {
	return Options{
		Source: source,
		Cost:   Identity,
		Ctx:    context.Background(),
	}
}

// Path is the result of a goal-directed Search.
type Path struct {
	// Target is the goal vertex reached.
	Target string

	// Vertices lists the route from Source to Target, both inclusive.
	Vertices []string

	// Cost is the cumulative cost of the route.
	Cost int64
}
