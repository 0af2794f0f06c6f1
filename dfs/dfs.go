// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/katalvlaran/campusnet/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph
	opts  DFSOptions
	res   *DFSResult
	tree  int // index of the tree being explored
}

// DFS performs depth-first search on graph g. If opts include
// WithFullTraversal, it covers every vertex; otherwise, it starts only from
// startID. If the graph fails a neighbor lookup the partial result is
// returned with the error.
func DFS(g *core.Graph, startID string, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	var dopts DFSOptions
	for _, fn := range opts {
		fn(&dopts)
	}
	if !dopts.FullTraversal && !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	vertices := g.Vertices()
	res := &DFSResult{
		Order:    make([]string, 0, len(vertices)),
		Preorder: make([]string, 0, len(vertices)),
		Depth:    make(map[string]int, len(vertices)),
		Parent:   make(map[string]string, len(vertices)),
		Visited:  make(map[string]bool, len(vertices)),
		Tree:     make(map[string]int, len(vertices)),
	}
	walker := &dfsWalker{graph: g, opts: dopts, res: res}

	roots := []string{startID}
	if dopts.FullTraversal {
		roots = vertices
	}
	for _, root := range roots {
		if res.Visited[root] {
			continue
		}
		walker.tree = len(res.Roots)
		res.Roots = append(res.Roots, root)
		if err := walker.traverse(root, 0); err != nil {
			return res, err
		}
	}

	return res, nil
}

// traverse visits vertex id at the given depth, recursing into neighbors.
func (w *dfsWalker) traverse(id string, depth int) error {
	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	w.res.Tree[id] = w.tree
	w.res.Preorder = append(w.res.Preorder, id)

	nbs, err := w.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("dfs: Neighbors(%q): %w", id, err)
	}
	for _, e := range nbs {
		if w.opts.FilterEdge != nil && !w.opts.FilterEdge(e) {
			w.res.SkippedEdges++
			continue
		}
		if w.res.Visited[e.To] {
			continue
		}
		w.res.Parent[e.To] = id
		if err = w.traverse(e.To, depth+1); err != nil {
			return err
		}
	}
	w.res.Order = append(w.res.Order, id)

	return nil
}
