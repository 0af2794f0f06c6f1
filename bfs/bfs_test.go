// SPDX-License-Identifier: MIT

package bfs_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/campusnet/bfs"
	"github.com/katalvlaran/campusnet/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// link adds mirrored zero-weight edges along a chain of IDs.
func link(t *testing.T, g *core.Graph, ids ...string) {
	t.Helper()
	for i := 1; i < len(ids); i++ {
		_, err := g.AddEdge(ids[i-1], ids[i], 0)
		require.NoError(t, err)
		_, err = g.AddEdge(ids[i], ids[i-1], 0)
		require.NoError(t, err)
	}
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph()
	_, err = bfs.BFS(g, "missing")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	require.NoError(t, g.AddVertex("A"))
	_, err = bfs.BFS(g, "A", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_OrderAndDepths(t *testing.T) {
	g := core.NewGraph()
	link(t, g, "A", "B", "C", "D")
	link(t, g, "A", "E", "D")

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "E", "C", "D"}, res.Order)
	assert.Equal(t, 2, res.Depth["D"])

	path, err := res.PathTo("D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "E", "D"}, path)

	_, err = res.PathTo("Z")
	assert.Error(t, err)
}

func TestBFS_Goal(t *testing.T) {
	g := core.NewGraph()
	link(t, g, "A", "B", "C", "D")

	res, err := bfs.BFS(g, "A", bfs.WithGoal(func(id string) bool { return id == "C" }))
	require.NoError(t, err)
	assert.Equal(t, "C", res.Found)
	assert.Equal(t, []string{"A", "B", "C"}, res.Order)

	res, err = bfs.BFS(g, "A", bfs.WithGoal(func(id string) bool { return id == "A" }))
	require.NoError(t, err)
	assert.Equal(t, "A", res.Found)

	res, err = bfs.BFS(g, "A", bfs.WithGoal(func(string) bool { return false }))
	require.NoError(t, err)
	assert.Empty(t, res.Found)
	assert.Len(t, res.Order, 4)
}

func TestBFS_MaxDepth(t *testing.T) {
	g := core.NewGraph()
	link(t, g, "A", "B", "C", "D")

	res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Order)
	_, reached := res.Depth["D"]
	assert.False(t, reached)

	// a goal beyond the limit is not found
	res, err = bfs.BFS(g, "A",
		bfs.WithMaxDepth(2),
		bfs.WithGoal(func(id string) bool { return id == "D" }),
	)
	require.NoError(t, err)
	assert.Empty(t, res.Found)

	res, err = bfs.BFS(g, "A",
		bfs.WithMaxDepth(3),
		bfs.WithGoal(func(id string) bool { return id == "D" }),
	)
	require.NoError(t, err)
	assert.Equal(t, "D", res.Found)
}

func TestBFS_Cancellation(t *testing.T) {
	g := core.NewGraph()
	link(t, g, "A", "B", "C")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := bfs.BFS(g, "A", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	assert.Empty(t, res.Order)

	ctx, cancel = context.WithCancel(context.Background())
	defer cancel()
	calls := 0
	res, err = bfs.BFS(g, "A",
		bfs.WithContext(ctx),
		bfs.WithGoal(func(string) bool {
			calls++
			if calls == 2 {
				cancel()
			}
			return false
		}),
	)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []string{"A", "B"}, res.Order)
}

func ExampleBFS() {
	g := core.NewGraph()
	for _, pair := range [][2]string{{"A", "B"}, {"B", "C"}, {"A", "D"}, {"D", "C"}} {
		_, _ = g.AddEdge(pair[0], pair[1], 0)
	}

	res, err := bfs.BFS(g, "A", bfs.WithGoal(func(id string) bool { return id == "C" }))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo(res.Found)
	fmt.Println(path)
	// Output:
	// [A B C]
}
