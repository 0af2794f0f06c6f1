// SPDX-License-Identifier: MIT

package dfs_test

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campusnet/core"
	"github.com/katalvlaran/campusnet/dfs"
)

// buildChain creates a directed chain graph of length n: 0→1→2→…→n-1
func buildChain(n int) *core.Graph {
	g := core.NewGraph()
	for i := 0; i < n-1; i++ {
		_, _ = g.AddEdge("N"+strconv.Itoa(i), "N"+strconv.Itoa(i+1), 0)
	}

	return g
}

// buildBinaryTree creates a complete binary tree of depth d (nodes = 2^d-1).
// IDs: "T-1","T-2",…,"T-N".
func buildBinaryTree(depth int) *core.Graph {
	g := core.NewGraph()
	maxD := (1 << depth) - 1
	for i := 1; i <= maxD; i++ {
		id := fmt.Sprintf("T-%d", i)
		_ = g.AddVertex(id)
		if i > 1 {
			_, _ = g.AddEdge(fmt.Sprintf("T-%d", i/2), id, 0)
		}
	}

	return g
}

// link adds a→b and b→a with weight w.
func link(g *core.Graph, a, b string, w int64) {
	_, _ = g.AddEdge(a, b, w)
	_, _ = g.AddEdge(b, a, w)
}

func TestDFS_NilGraph(t *testing.T) {
	res, err := dfs.DFS(nil, "A")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDFS_StartNotFound(t *testing.T) {
	res, err := dfs.DFS(core.NewGraph(), "X")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestDFS_SingleVertex_NoEdges(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("X"))

	res, err := dfs.DFS(g, "X")
	require.NoError(t, err)
	assert.Equal(t, []string{"X"}, res.Order)
	assert.Equal(t, []string{"X"}, res.Roots)
	assert.True(t, res.Visited["X"])
	assert.Equal(t, 0, res.Depth["X"])
	_, hasParent := res.Parent["X"]
	assert.False(t, hasParent, "start vertex should have no parent")
}

func TestDFS_ChainAndDepthParent(t *testing.T) {
	res, err := dfs.DFS(buildChain(3), "N0")
	require.NoError(t, err)
	assert.Equal(t, []string{"N2", "N1", "N0"}, res.Order)
	assert.Equal(t, []string{"N0", "N1", "N2"}, res.Preorder)
	assert.Equal(t, "N1", res.Parent["N2"])
	assert.Equal(t, 2, res.Depth["N2"])
}

func TestDFS_SingleSourceIgnoresUnreachable(t *testing.T) {
	g := buildChain(5)
	for i := 5; i < 10; i++ {
		require.NoError(t, g.AddVertex("M"+strconv.Itoa(i)))
	}
	res, err := dfs.DFS(g, "N0")
	require.NoError(t, err)
	assert.Equal(t, []string{"N4", "N3", "N2", "N1", "N0"}, res.Order)
	for i := 5; i < 10; i++ {
		assert.False(t, res.Visited["M"+strconv.Itoa(i)])
	}
}

func TestDFS_FullTraversalTrees(t *testing.T) {
	g := core.NewGraph()
	link(g, "A", "B", 1)
	require.NoError(t, g.AddVertex("Z"))
	link(g, "C", "D", 1)
	link(g, "B", "C", 0)

	res, err := dfs.DFS(g, "", dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "Z"}, res.Roots, "C and D hang off B through the zero-weight bridge")

	res, err = dfs.DFS(g, "", dfs.WithFullTraversal(),
		dfs.WithFilterEdge(func(e *core.Edge) bool { return e.Weight > 0 }))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "Z", "C"}, res.Roots)
	assert.Equal(t, [][]string{{"A", "B"}, {"Z"}, {"C", "D"}}, res.Trees())
	assert.Equal(t, 2, res.SkippedEdges)
}

func TestDFS_FilterEdge(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("A", "C", 0)

	res, err := dfs.DFS(g, "A", dfs.WithFilterEdge(func(e *core.Edge) bool {
		return e.To != "C"
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A"}, res.Order)
	assert.False(t, res.Visited["C"], "filtered neighbor should not be visited")
	assert.Equal(t, 1, res.SkippedEdges)
}

func TestDFS_BinaryTree(t *testing.T) {
	const depth = 4 // 15 nodes
	res, err := dfs.DFS(buildBinaryTree(depth), "T-1")
	require.NoError(t, err)
	assert.Len(t, res.Visited, (1<<depth)-1)
	assert.Len(t, res.Order, (1<<depth)-1)
	assert.Equal(t, "T-1", res.Order[len(res.Order)-1], "root must finish last")
}
