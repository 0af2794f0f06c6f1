// SPDX-License-Identifier: MIT

// Package core_test verifies vertex/edge lifecycle, ordering and validation contracts.
package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/campusnet/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Common vertex IDs used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
)

func TestAddVertex_IdempotentAndOrdered(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(VertexC))
	require.NoError(t, g.AddVertex(VertexA))
	require.NoError(t, g.AddVertex(VertexC)) // no-op
	require.NoError(t, g.AddVertex(VertexB))

	assert.Equal(t, []string{VertexC, VertexA, VertexB}, g.Vertices())
	assert.Equal(t, 3, g.VertexCount())
	assert.True(t, g.HasVertex(VertexA))
	assert.False(t, g.HasVertex(""))
	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
}

func TestAddEdge_Validation(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddEdge("", VertexB, 1)
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)

	_, err = g.AddEdge(VertexA, VertexB, -1)
	assert.True(t, errors.Is(err, core.ErrNegativeWeight), "got %v", err)

	_, err = g.AddEdge(VertexA, VertexA, 1)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = g.AddEdge(VertexA, VertexB, 1)
	require.NoError(t, err)
	_, err = g.AddEdge(VertexA, VertexB, 2)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	// the reverse direction is a distinct ordered pair
	_, err = g.AddEdge(VertexB, VertexA, 2)
	assert.NoError(t, err)
}

func TestAddEdge_ZeroWeightIsKept(t *testing.T) {
	g := core.NewGraph()
	eid, err := g.AddEdge(VertexA, VertexB, 0)
	require.NoError(t, err)

	nbs, err := g.Neighbors(VertexA)
	require.NoError(t, err)
	require.Len(t, nbs, 1)
	assert.Equal(t, eid, nbs[0].ID)
	assert.Equal(t, int64(0), nbs[0].Weight)

	nbs, err = g.Neighbors(VertexB)
	require.NoError(t, err)
	assert.Empty(t, nbs, "edges are directed")
}

func TestMultiEdges(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())

	_, err := g.AddEdge(VertexA, VertexA, 3)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)
	_, err = g.AddEdge(VertexA, VertexB, 1)
	require.NoError(t, err)
	_, err = g.AddEdge(VertexA, VertexC, 2)
	require.NoError(t, err)
	_, err = g.AddEdge(VertexA, VertexB, 1)
	require.NoError(t, err)

	nbs, err := g.Neighbors(VertexA)
	require.NoError(t, err)
	assert.Len(t, nbs, 3)

	ids, err := g.NeighborIDs(VertexA)
	require.NoError(t, err)
	assert.Equal(t, []string{VertexB, VertexC}, ids)
}

func TestNeighbors_InsertionOrder(t *testing.T) {
	g := core.NewGraph()
	for _, to := range []string{VertexD, VertexB, VertexC} {
		_, err := g.AddEdge(VertexA, to, 1)
		require.NoError(t, err)
	}

	nbs, err := g.Neighbors(VertexA)
	require.NoError(t, err)
	got := make([]string, 0, len(nbs))
	for _, e := range nbs {
		got = append(got, e.To)
	}
	assert.Equal(t, []string{VertexD, VertexB, VertexC}, got)
	assert.Equal(t, []string{VertexA, VertexD, VertexB, VertexC}, g.Vertices())

	_, err = g.Neighbors("missing")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Neighbors("")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestEdges_IDsAndMaxWeight(t *testing.T) {
	g := core.NewGraph()
	assert.Equal(t, int64(0), g.MaxWeight())

	_, _ = g.AddEdge(VertexA, VertexB, 4)
	_, _ = g.AddEdge(VertexB, VertexC, 9)
	_, _ = g.AddEdge(VertexC, VertexA, 2)

	edges := g.Edges()
	require.Len(t, edges, 3)
	assert.Equal(t, "e1", edges[0].ID)
	assert.Equal(t, "e3", edges[2].ID)
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, int64(9), g.MaxWeight())
}
