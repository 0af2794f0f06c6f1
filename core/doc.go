// SPDX-License-Identifier: MIT

// Package core provides the thread-safe, insertion-ordered weighted graph that
// every campusnet algorithm runs on.
//
// The Graph G = (V,E) is directed: an undirected relation is stored as two
// mirrored edges, which keeps per-direction weights explicit and lets callers
// decide whether reciprocity holds. Supported behaviors:
//
//   - Non-negative int64 weights; zero is a valid, traversable weight.
//   - Parallel edges only with WithMultiEdges; self-loops are always rejected.
//   - Deterministic iteration: Vertices(), Edges() and Neighbors() all return
//     results in insertion order, so logs, dumps and searches are reproducible.
//   - Collision-free atomic Edge.ID generation ("e1", "e2", …).
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj).
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error          // O(1), idempotent
//	HasVertex(id string) bool           // O(1)
//	Vertices() []string                 // O(V), insertion order
//	VertexCount() int                   // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to string, weight int64) (edgeID string, err error) // O(1)†
//	Edges() []*Edge                     // O(E), insertion order
//	EdgeCount() int                     // O(1)
//	MaxWeight() int64                   // O(E)
//
//	// Query
//	Neighbors(id string) ([]*Edge, error)    // O(d), outgoing edges in insertion order
//	NeighborIDs(id string) ([]string, error) // O(d), unique, first-seen order
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrNegativeWeight      – weight < 0
//	ErrLoopNotAllowed      – edge from a vertex to itself
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
//
// † amortized constant time: atomic ID generation + map/slice insertion.
package core
