// SPDX-License-Identifier: MIT

package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/campusnet/core"
)

// Search runs a goal-directed best-first search from Options.Source and
// returns the cheapest route to the first vertex satisfying Options.Goal.
// If the source itself satisfies the goal, the route is just [Source].
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrBadMaxHops).
//  2. Source string must be non-empty (ErrEmptySource).
//  3. g must be non-nil (ErrNilGraph).
//  4. g must contain Source (ErrVertexNotFound).
//  5. No edge may map to a negative cost (ErrNegativeWeight).
//  6. A goal predicate must be set (ErrNoGoal).
//
// ErrNoPath is returned when no reachable vertex satisfies the goal, and the
// context error when Options.Ctx is done before a goal is settled.
func Search(g *core.Graph, opts ...Option) (*Path, error) {
	r, err := newRunner(g, opts)
	if err != nil {
		return nil, err
	}
	if r.options.Goal == nil {
		return nil, ErrNoGoal
	}
	found, ok, err := r.process()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w (source %q)", ErrNoPath, r.options.Source)
	}

	return &Path{
		Target:   found.id,
		Vertices: r.pathTo(found),
		Cost:     r.dist[found],
	}, nil
}

// state is a search node: a vertex reached after a number of hops. Without
// a hop limit hops stays 0, so every vertex has exactly one state.
type state struct {
	id   string
	hops int
}

// runner holds the mutable state for a single search.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[state]int64 // best known cost per state
	prev    map[state]state // predecessor on the best route; absent for the source
	settled map[state]bool
	pq      nodePQ
	seq     uint64 // push counter for deterministic tie-breaking
}

// newRunner validates inputs and prepares the initial state.
func newRunner(g *core.Graph, opts []Option) (*runner, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if cfg.Source == "" {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, ErrVertexNotFound
	}

	// Pre-scan all edges to detect negative costs. Fail fast.
	for _, e := range g.Edges() {
		if c := cfg.Cost(e.Weight); c < 0 {
			return nil, fmt.Errorf("%w: edge %s→%s weight=%d cost=%d", ErrNegativeWeight, e.From, e.To, e.Weight, c)
		}
	}

	n := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[state]int64, n),
		prev:    make(map[state]state, n),
		settled: make(map[state]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	src := state{id: cfg.Source}
	r.dist[src] = 0
	heap.Init(&r.pq)
	r.push(src, 0)

	return r, nil
}

// process settles states cheapest first until a goal vertex is settled or
// the frontier is empty.
func (r *runner) process() (state, bool, error) {
	for r.pq.Len() > 0 {
		if err := r.options.Ctx.Err(); err != nil {
			return state{}, false, err
		}
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.st
		if r.settled[u] {
			continue // stale entry
		}
		r.settled[u] = true

		if r.options.Goal(u.id) {
			return u, true, nil
		}
		if err := r.relax(u); err != nil {
			return state{}, false, err
		}
	}

	return state{}, false, nil
}

// relax improves the costs of u's successors. Assumes r.dist[u] is final.
func (r *runner) relax(u state) error {
	limit := r.options.MaxHops
	if limit > 0 && u.hops >= limit {
		return nil
	}
	neighbors, err := r.g.Neighbors(u.id)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u.id, err)
	}

	for _, e := range neighbors {
		v := state{id: e.To}
		if limit > 0 {
			v.hops = u.hops + 1
		}
		if r.settled[v] {
			continue
		}
		c := r.options.Cost(e.Weight)
		if c < 0 {
			return fmt.Errorf("%w: edge %s→%s cost=%d", ErrNegativeWeight, u.id, v.id, c)
		}
		d := r.dist[u] + c
		if d < r.dist[u] { // overflow
			continue
		}
		// Strictly better only: the first discovered route wins ties.
		if old, seen := r.dist[v]; seen && d >= old {
			continue
		}
		r.dist[v] = d
		r.prev[v] = u
		r.push(v, d)
	}

	return nil
}

// push adds a heap entry stamped with the next sequence number.
func (r *runner) push(st state, dist int64) {
	r.seq++
	heap.Push(&r.pq, &nodeItem{st: st, dist: dist, seq: r.seq})
}

// pathTo walks predecessors back from dest and returns Source → dest.
func (r *runner) pathTo(dest state) []string {
	path := []string{dest.id}
	for cur, ok := r.prev[dest]; ok; cur, ok = r.prev[cur] {
		path = append(path, cur.id)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// nodeItem is a heap entry: a state and its tentative cost.
type nodeItem struct {
	st   state
	dist int64
	seq  uint64 // push order, breaks cost ties
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, seq) ascending.
// Outdated entries stay in the heap and are skipped when popped.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
