// SPDX-License-Identifier: MIT

package socialgraph

import (
	"github.com/katalvlaran/campusnet/core"
	"github.com/katalvlaran/campusnet/dfs"
	"github.com/katalvlaran/campusnet/student"
)

// Circles groups students connected through ties of at least minWeight.
//
// Groups are the trees of a depth-first forest over node insertion order,
// following edge direction. On a graph produced by Build every edge has an
// equal-weight reverse, so the groups are exactly the connected components.
// Each group lists its members in discovery order; a student without a
// qualifying tie forms a group of its own.
func (sg *Graph) Circles(minWeight int) [][]*student.Student {
	res, err := dfs.DFS(sg.g, "", dfs.WithFullTraversal(),
		dfs.WithFilterEdge(func(e *core.Edge) bool { return e.Weight >= int64(minWeight) }))
	if err != nil {
		// Only context or hook errors are possible, and none are installed.
		return [][]*student.Student{}
	}

	sg.mu.RLock()
	defer sg.mu.RUnlock()
	trees := res.Trees()
	out := make([][]*student.Student, 0, len(trees))
	for _, ids := range trees {
		group := make([]*student.Student, 0, len(ids))
		for _, id := range ids {
			if s, ok := sg.byName[id]; ok {
				group = append(group, s)
			}
		}
		out = append(out, group)
	}

	return out
}
