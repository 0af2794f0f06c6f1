// SPDX-License-Identifier: MIT

// Package socialgraph builds the symmetric, weighted student network.
//
// Build scores every unordered pair {a, b} of a population in both directions
// and connects them with two directed edges a→b and b→a carrying the same
// weight, max(score(a,b), score(b,a)). Every pair is connected, including pairs
// with weight 0: a zero edge has no strength but still counts for
// reachability. Self-loops are never created.
//
// Node and edge order follow the input order, so Dump output and searches are
// reproducible. Rebuilding from an unchanged population yields identical
// weights.
//
// Complexity:
//
//   - Time:  O(n²) score evaluations for n students.
//   - Space: O(n²) edges (the graph is complete).
package socialgraph
