// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// Option configures a search. An invalid Option is recorded and surfaced
// as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds the search parameters.
type Options struct {
	// Ctx is checked before every visit.
	Ctx context.Context

	// MaxDepth, if > 0, is the deepest hop count that is visited.
	// 0 means no limit.
	MaxDepth int

	// Goal, if set, ends the search at the first visited vertex for which it
	// returns true.
	Goal func(id string) bool

	err error
}

// DefaultOptions returns a Background context, no depth limit and no goal.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the context checked for cancellation. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits the search to vertices at most d hops from the start.
// d == 0 removes the limit; d < 0 is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)

			return
		}
		o.MaxDepth = d
	}
}

// WithGoal stops the traversal at the first visited vertex satisfying fn.
func WithGoal(fn func(id string) bool) Option {
	return func(o *Options) {
		o.Goal = fn
	}
}

// Result holds the outcome of a traversal.
type Result struct {
	// Order lists visited vertices in visit sequence.
	Order []string

	// Depth maps every discovered vertex to its hop distance from the start,
	// including vertices discovered but not yet visited when a goal matched.
	Depth map[string]int

	// Parent maps every discovered vertex except the start to its predecessor.
	Parent map[string]string

	// Found is the goal vertex reached, or "" when none matched.
	Found string
}

// PathTo reconstructs the route from the start vertex to dest.
// Returns an error if dest was not discovered.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}
	path := make([]string, r.Depth[dest]+1)
	cur := dest
	for i := len(path) - 1; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}
