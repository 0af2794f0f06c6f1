// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/Edges/EdgeCount/MaxWeight,
//       plus newEdgeID().
// Determinism:
//   - Edges() returns edges in insertion order.
//   - newEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"fmt"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is a private textual prefix for edge identifiers.
// Ensures stable human-readable IDs like "e1", "e2", ...
const edgeIDPrefix = 'e'

// AddEdge creates a new directed edge from→to with the given weight.
//
// Steps:
//  1. Validate IDs, weight, loops.
//  2. Ensure endpoints via AddVertex (from first, so vertex order follows edge order).
//  3. Lock muEdgeAdj, check multi-edge constraint.
//  4. Generate eid atomically.
//  5. Store in g.edgeOrder and adjacency[from].
//
// Complexity: O(1) amortized; O(d) when multi-edges are disabled (duplicate scan).
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if weight < 0 {
		return "", fmt.Errorf("%w: %s→%s weight=%d", ErrNegativeWeight, from, to, weight)
	}
	if from == to {
		return "", ErrLoopNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti {
		for _, e := range g.adjacency[from] {
			if e.To == to {
				return "", ErrMultiEdgeNotAllowed
			}
		}
	}

	eid := g.newEdgeID()
	e := &Edge{ID: eid, From: from, To: to, Weight: weight}
	g.edgeOrder = append(g.edgeOrder, e)
	g.adjacency[from] = append(g.adjacency[from], e)

	return eid, nil
}

// Edges returns all edges in insertion order.
// The slice is a copy; the *Edge values are live and must be treated as read-only.
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, len(g.edgeOrder))
	copy(out, g.edgeOrder)

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edgeOrder)
}

// MaxWeight returns the largest edge weight in the graph, or 0 if it has no edges.
//
// Complexity: O(E).
func (g *Graph) MaxWeight() int64 {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	var maxW int64
	for _, e := range g.edgeOrder {
		if e.Weight > maxW {
			maxW = e.Weight
		}
	}

	return maxW
}

// newEdgeID returns the next unique edge identifier.
func (g *Graph) newEdgeID() string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 8)
	buf = append(buf, edgeIDPrefix)

	return string(strconv.AppendUint(buf, n, 10))
}
