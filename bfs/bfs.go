// SPDX-License-Identifier: MIT

package bfs

import (
	"fmt"

	"github.com/katalvlaran/campusnet/core"
)

// BFS explores g from startID one hop layer at a time.
//
// Errors: ErrGraphNil, ErrOptionViolation and ErrStartVertexNotFound before
// the search starts; ErrNeighbors or the context error during it, returned
// together with the partial result.
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	res := &Result{
		Order:  make([]string, 0, n),
		Depth:  map[string]int{startID: 0},
		Parent: make(map[string]string, n),
	}

	layer := []string{startID}
	for depth := 0; len(layer) > 0; depth++ {
		var next []string
		for _, id := range layer {
			if err := o.Ctx.Err(); err != nil {
				return res, err
			}
			res.Order = append(res.Order, id)
			if o.Goal != nil && o.Goal(id) {
				res.Found = id

				return res, nil
			}
			if o.MaxDepth > 0 && depth >= o.MaxDepth {
				continue
			}
			nbrs, err := g.NeighborIDs(id)
			if err != nil {
				return res, fmt.Errorf("%w: neighbors of %q: %v", ErrNeighbors, id, err)
			}
			for _, nb := range nbrs {
				if _, seen := res.Depth[nb]; seen {
					continue
				}
				res.Depth[nb] = depth + 1
				res.Parent[nb] = id
				next = append(next, nb)
			}
		}
		layer = next
	}

	return res, nil
}
