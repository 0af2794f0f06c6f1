// SPDX-License-Identifier: MIT

// Package dfs implements depth-first search (single-source and forest) on
// core.Graph.
//
// Edges are followed in their stored direction and in insertion order, so
// the traversal is deterministic.
//
//   - DFS(g, startID, opts...): traverse from a root, or every tree of the
//     forest with WithFullTraversal
//   - WithFilterEdge skips edges and counts them in SkippedEdges
//   - Trees(): vertices grouped by DFS tree, in discovery order
//
// Complexity: O(V + E) time, O(V) memory for the recursion stack and
// result maps.
//
// Errors: ErrGraphNil if g is nil; ErrStartVertexNotFound if startID is
// missing in single-source mode.
package dfs
