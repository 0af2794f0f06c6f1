// SPDX-License-Identifier: MIT

package dfs

import (
	"errors"

	"github.com/katalvlaran/campusnet/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the specified start vertex ID
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, startID, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// FilterEdge, if non-nil, is called for each outgoing edge before
	// recursing. Return false to skip the edge.
	FilterEdge func(e *core.Edge) bool

	// FullTraversal, if true, runs DFS from every unvisited vertex in
	// insertion order, covering disconnected parts (forest traversal).
	FullTraversal bool
}

// WithFilterEdge returns an Option that filters outgoing edges.
// If fn(e) == false, the edge is skipped and counted in SkippedEdges.
func WithFilterEdge(fn func(e *core.Edge) bool) Option {
	return func(o *DFSOptions) {
		o.FilterEdge = fn
	}
}

// WithFullTraversal returns an Option that enables forest traversal.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records vertices in the sequence they finished (post-order).
	Order []string

	// Preorder records vertices in the sequence they were discovered.
	Preorder []string

	// Depth maps each vertex ID to its distance (#edges) from its tree root.
	Depth map[string]int

	// Parent maps each vertex ID to the vertex it was discovered from.
	// Roots do not appear in this map.
	Parent map[string]string

	// Visited flags which vertices were reached.
	Visited map[string]bool

	// Roots lists the root of every DFS tree, in traversal order.
	Roots []string

	// Tree maps each vertex ID to the index of its tree in Roots.
	Tree map[string]int

	// SkippedEdges reports how many edges FilterEdge rejected.
	SkippedEdges int
}

// Trees groups the discovered vertices by DFS tree, each group in
// discovery order. Groups follow Roots.
func (r *DFSResult) Trees() [][]string {
	out := make([][]string, len(r.Roots))
	for _, id := range r.Preorder {
		i := r.Tree[id]
		out[i] = append(out[i], id)
	}

	return out
}
