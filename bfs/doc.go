// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph, returning
// hop-count distances, parent links, and visit order.
//
// BFS explores vertices in increasing hop distance from a start vertex,
// following outgoing edges in insertion order. Edge weights are ignored:
// a zero-weight edge is as traversable as any other.
//
// Options:
//
//   - WithContext: cancellation and deadlines.
//   - WithMaxDepth: do not look further than a hop limit.
//   - WithGoal: stop at the first visited vertex satisfying a predicate;
//     Result.Found names it.
//
// Complexity: O(V + E) time, O(V) space.
package bfs
