// SPDX-License-Identifier: MIT

// Package core defines the central Graph, Vertex, and Edge types,
// and provides thread-safe primitives for building and querying graphs.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for vertices,
// muEdgeAdj for edges and adjacency), so graphs can be read from many
// goroutines while a single writer builds them.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided Vertex has an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrNegativeWeight indicates a negative weight was supplied to AddEdge.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrLoopNotAllowed indicates an edge from a vertex to itself.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge represents a directed, weighted connection From→To.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the strength or cost of the edge. Always ≥ 0.
	Weight int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMultiEdges permits parallel edges between the same ordered pair of vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// Graph is the core in-memory graph data structure.
//
// muVert protects vertices and vertexOrder; muEdgeAdj protects edgeOrder
// and adjacency. Lock order is always muVert -> muEdgeAdj.
// nextEdgeID is an atomic counter for unique Edge.ID generation.
type Graph struct {
	muVert    sync.RWMutex // guards vertices, vertexOrder
	muEdgeAdj sync.RWMutex // guards edgeOrder, adjacency

	allowMulti bool // allow parallel edges

	nextEdgeID  uint64              // atomic edge ID generator
	vertices    map[string]struct{} // vertex ID set
	vertexOrder []string            // vertex IDs in insertion order
	edgeOrder   []*Edge             // edges in insertion order

	// adjacency[from] holds outgoing edges of from in insertion order.
	adjacency map[string][]*Edge
}

// NewGraph creates a new Graph and applies the given options.
//
// Self-loops are always rejected; parallel edges need WithMultiEdges.
//
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]struct{}),
		adjacency: make(map[string][]*Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
