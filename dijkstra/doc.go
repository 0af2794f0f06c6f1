// SPDX-License-Identifier: MIT

// Package dijkstra implements a goal-directed Dijkstra search over
// core.Graph.
//
// Edge costs are derived from edge weights through a cost function
// (identity by default). A cost function lets callers search for the
// strongest route instead of the cheapest one, e.g. cost = max+1 − weight.
// Costs must be non-negative; a negative cost fails fast with
// ErrNegativeWeight.
//
// Complexity:
//
//   - Time:  O((V + E) log V), or O(H·(V + E) log(H·V)) with a hop limit H.
//   - Space: O(V + E) for cost maps and the lazy heap, times H with a limit.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative costs and fail fast.
//   - A hop limit is exact: states are (vertex, hops) pairs, so a costlier
//     route with fewer edges is still found when the cheapest one is too long.
//   - Heap ties are broken by push order, so equal-cost frontiers expand in
//     discovery order and results are deterministic.
//   - The search stops at the first settled vertex that satisfies the goal;
//     that vertex has the minimum cost among all goals.
package dijkstra
